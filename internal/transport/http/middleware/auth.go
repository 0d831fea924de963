package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-finance-api/internal/domain"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// TokenValidator verifies a bearer token and returns its identity claims.
type TokenValidator interface {
	ValidateToken(token string) (domain.Claims, error)
}

// Auth returns middleware that validates the Bearer token and injects claims
// into the request context. An absent header is reported distinctly from an
// invalid token, per the missing-auth / invalid-token split in the domain.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "missing auth")
				return
			}
			claims, err := validator.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts token claims from the request context.
func ClaimsFromContext(ctx context.Context) (domain.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(domain.Claims)
	return c, ok
}
