package domain

import "github.com/google/uuid"

// User is an account holder. There is no password: identity is proven by OTP
// and carried by a signed token afterwards.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
