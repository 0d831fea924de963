package middleware

import (
	"context"
	"net/http"

	"github.com/go-finance-api/internal/pkg/id"
)

const RequestIDKey contextKey = "request_id"

const requestIDHeader = "X-Request-Id"

// RequestID assigns each request a ULID, echoing an inbound id if the client
// supplied one, and exposes it via header and context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = id.New()
		}
		w.Header().Set(requestIDHeader, rid)
		ctx := context.WithValue(r.Context(), RequestIDKey, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext extracts the request id, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	rid, ok := ctx.Value(RequestIDKey).(string)
	return rid, ok
}
