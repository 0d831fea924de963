package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-finance-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TokenEnvelope wraps a successful login response.
type TokenEnvelope struct {
	AccessToken string `json:"access_token"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// writeDomainError maps the closed domain error taxonomy to HTTP statuses.
// Anything outside the taxonomy is an infrastructure failure: it is logged
// server-side and answered with an opaque 500 so no internals leak.
func writeDomainError(w http.ResponseWriter, err error) {
	var status int
	var msg string
	switch {
	case errors.Is(err, domain.ErrInvalidOtp):
		status, msg = http.StatusUnauthorized, "invalid otp"
	case errors.Is(err, domain.ErrMissingAuth):
		status, msg = http.StatusUnauthorized, "missing auth"
	case errors.Is(err, domain.ErrInvalidToken):
		status, msg = http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, "entity not found"
	case errors.Is(err, domain.ErrConflict):
		status, msg = http.StatusConflict, "entity conflict"
	default:
		slog.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	slog.Debug("request rejected", "err", err)
	writeError(w, status, msg)
}
