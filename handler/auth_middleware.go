package handler

import (
	"context"
	"go-taskboard-api/common"
	"go-taskboard-api/service"
	"net/http"
	"strings"
)

type contextKey string

// UserIDKey carries the guard-verified user ID through the request context.
const UserIDKey contextKey = "userID"

// AuthGuard verifies the access token on every protected request before it
// reaches a business handler. It is stateless and safe for concurrent use.
type AuthGuard struct {
	issuer *service.TokenIssuer
}

func NewAuthGuard(issuer *service.TokenIssuer) *AuthGuard {
	return &AuthGuard{issuer: issuer}
}

func (g *AuthGuard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
			err.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
			err.Send(w)
			return
		}

		userID, err := g.issuer.VerifyAccessToken(headerParts[1])
		if err != nil {
			appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
			appErr.Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
