package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"VCARD_BACK-END/internal/config"
	"VCARD_BACK-END/internal/dto"
	"VCARD_BACK-END/internal/middleware"
	"VCARD_BACK-END/internal/utils"
)

// AuthHandler handles owner login
type AuthHandler struct {
	cfg    *config.AuthConfig
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(cfg *config.AuthConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, logger: logger}
}

// Login handles owner login
// @Summary Owner login
// @Description Exchange the owner password for a bearer token used by the settings screen
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 503 {object} dto.ErrorResponse "Login not configured"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.cfg.Secret == "" || h.cfg.OwnerPasswordHash == "" {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Login not configured", "JWT_SECRET and OWNER_PASSWORD_HASH must be set")
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Validate required fields
	if req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Password is required")
		return
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.OwnerPasswordHash), []byte(req.Password)); err != nil {
		h.logger.Warn("owner login rejected", zap.String("remote", r.RemoteAddr))
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Password is incorrect")
		return
	}

	// Generate JWT token
	token, expiresAt, err := middleware.GenerateToken(h.cfg)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
