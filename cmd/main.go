// @title vCard Backend API
// @version 1.0
// @description Personal digital business card: profile store, image migration and vCard export

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "VCARD_BACK-END/docs" // This is required for swagger
	"VCARD_BACK-END/internal/bootstrap"
	"VCARD_BACK-END/internal/config"
	"VCARD_BACK-END/internal/handlers"
	"VCARD_BACK-END/internal/imageenc"
	"VCARD_BACK-END/internal/logger"
	"VCARD_BACK-END/internal/middleware"
	"VCARD_BACK-END/internal/routes"
	"VCARD_BACK-END/internal/storage"
	"VCARD_BACK-END/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	// Open storage and check it once at boot
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 20*time.Second)
	kv, err := storage.Open(openCtx, cfg.Storage, cfg.GetDSN(), zl)
	if err == nil {
		err = kv.Ping(openCtx)
	}
	cancelOpen()
	if err != nil {
		zl.Fatal("storage unavailable", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer kv.Close()

	profiles := store.New(kv, cfg.Storage.Key, zl)
	rec := profiles.Load(context.Background())
	zl.Info("profile loaded", zap.String("name", rec.Name), zap.Int("gallery", len(rec.GalleryImages)))

	encoder := imageenc.New(cfg.Image, nil, zl)

	// Convert image references to data URIs in the background; reads answer
	// 503 until it finishes.
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()
	migrator := bootstrap.NewMigrator(profiles, encoder, zl)
	go func() {
		if err := migrator.Run(appCtx); err != nil {
			zl.Warn("image migration incomplete, will retry on next start", zap.Error(err))
		}
	}()

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Auth:    handlers.NewAuthHandler(&cfg.Auth, zl),
		Health:  handlers.NewHealthHandler(profiles),
		Profile: handlers.NewProfileHandler(profiles, encoder, zl, cfg.Server.MaxUploadBytes),
		Card:    handlers.NewCardHandler(profiles),
	}, &cfg.Auth)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           middleware.RequestLogger(c.Handler(mux), zl),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		zl.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for SIGINT/SIGTERM and shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")
	stopApp()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown error", zap.Error(err))
	}
	zl.Info("server stopped")
}
