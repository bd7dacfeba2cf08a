package handlers

import (
	"context"
	"net/http"
	"time"

	"VCARD_BACK-END/internal/dto"
	"VCARD_BACK-END/internal/store"
	"VCARD_BACK-END/internal/utils"
)

// HealthHandler handles health check related requests
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// HealthCheck handles basic health check (no storage)
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (storage connectivity and image migration)
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: map[string]string{"storage": err.Error()},
		})
		return
	}

	if h.store.Loading() {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "loading",
			Details: map[string]string{"storage": "ok", "images": "encoding"},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]string{"storage": "ok"},
	})
}
