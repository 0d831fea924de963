package domain

import "github.com/google/uuid"

// Claims is the signed token payload: it authenticates exactly one user id.
// Never persisted; created at login and reconstructed on every verification.
type Claims struct {
	Sub uuid.UUID `json:"sub"`
}
