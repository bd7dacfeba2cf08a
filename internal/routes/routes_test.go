package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"VCARD_BACK-END/internal/config"
	"VCARD_BACK-END/internal/handlers"
	"VCARD_BACK-END/internal/imageenc"
	"VCARD_BACK-END/internal/middleware"
	"VCARD_BACK-END/internal/storage"
	"VCARD_BACK-END/internal/store"
)

func newMux(t *testing.T, authCfg *config.AuthConfig) *http.ServeMux {
	t.Helper()
	logger := zap.NewNop()
	s := store.New(storage.NewMemoryKV(), store.DefaultKey, logger)
	s.Load(context.Background())
	enc := imageenc.New(config.ImageConfig{}, nil, logger)

	mux := http.NewServeMux()
	SetupRoutes(mux, Handlers{
		Auth:    handlers.NewAuthHandler(authCfg, logger),
		Health:  handlers.NewHealthHandler(s),
		Profile: handlers.NewProfileHandler(s, enc, logger, 1<<20),
		Card:    handlers.NewCardHandler(s),
	}, authCfg)
	return mux
}

func TestProfileWritesNeedOwnerToken(t *testing.T) {
	authCfg := &config.AuthConfig{Secret: "s", AccessTokenTTL: time.Hour}
	mux := newMux(t, authCfg)

	// public read
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}

	// write without token
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/profile", strings.NewReader(`{"name":"X"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated PATCH status = %d", rec.Code)
	}

	// write with token
	token, _, err := middleware.GenerateToken(authCfg)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPatch, "/api/profile", strings.NewReader(`{"name":"X"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated PATCH status = %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestPublicRoutes(t *testing.T) {
	mux := newMux(t, &config.AuthConfig{})

	for _, path := range []string{"/healthz", "/livez", "/readyz", "/api/card", "/api/layouts", "/api/vcard", "/metrics", "/"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", path, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d", rec.Code)
	}
}
