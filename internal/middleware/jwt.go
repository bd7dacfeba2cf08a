package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"VCARD_BACK-END/internal/config"
	"VCARD_BACK-END/internal/utils"
)

const ownerSubject = "owner"

type ctxKey string

const ownerKey ctxKey = "owner"

// OwnerClaims represents the claims in the owner JWT token
type OwnerClaims struct {
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for the card owner
func GenerateToken(cfg *config.AuthConfig) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.AccessTokenTTL)

	claims := OwnerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   ownerSubject,
			Issuer:    "vcard",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	return signed, expiresAt, err
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, cfg *config.AuthConfig) (*OwnerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OwnerClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithSubject(ownerSubject))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*OwnerClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// AuthMiddleware validates owner JWT tokens in the Authorization header.
// With no secret configured every request passes.
func AuthMiddleware(next http.HandlerFunc, cfg *config.AuthConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.Secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		claims, err := ValidateToken(tokenParts[1], cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), ownerKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// OwnerFromContext returns the verified owner claims, if any
func OwnerFromContext(ctx context.Context) (*OwnerClaims, bool) {
	c, ok := ctx.Value(ownerKey).(*OwnerClaims)
	return c, ok
}
