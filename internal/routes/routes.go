package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"VCARD_BACK-END/internal/config"
	"VCARD_BACK-END/internal/handlers"
	"VCARD_BACK-END/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth    *handlers.AuthHandler
	Health  *handlers.HealthHandler
	Profile *handlers.ProfileHandler
	Card    *handlers.CardHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(mux *http.ServeMux, h Handlers, authCfg *config.AuthConfig) {
	// Health check routes
	mux.HandleFunc("/healthz", h.Health.HealthCheck)
	mux.HandleFunc("/livez", h.Health.LivenessCheck)
	mux.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("/api/auth/login", h.Auth.Login)

	// Profile routes: reads are public, writes need the owner token
	mux.HandleFunc("/api/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.Profile.Handle(w, r)
			return
		}
		middleware.AuthMiddleware(h.Profile.Handle, authCfg)(w, r)
	})
	mux.HandleFunc("/api/profile/image", middleware.AuthMiddleware(h.Profile.UploadImage, authCfg))
	mux.HandleFunc("/api/profile/gallery", middleware.AuthMiddleware(h.Profile.UploadGalleryImage, authCfg))

	// Card routes
	mux.HandleFunc("/api/card", h.Card.Card)
	mux.HandleFunc("/api/layouts", h.Card.Layouts)
	mux.HandleFunc("/api/vcard", h.Card.VCard)

	// Ops
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Write([]byte("vCard backend is running."))
}
