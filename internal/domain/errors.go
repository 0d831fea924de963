package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking
// infrastructure details; any error that doesn't match a sentinel is treated as
// an opaque infrastructure failure.
var (
	ErrNotFound     = errors.New("entity not found")
	ErrConflict     = errors.New("entity conflict")
	ErrInvalidOtp   = errors.New("invalid otp")
	ErrMissingAuth  = errors.New("missing auth")
	ErrInvalidToken = errors.New("invalid token")
)
