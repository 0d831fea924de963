package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-finance-api/internal/domain"
)

// KVStore is the minimal expiring key-value contract the manager requires.
// Get with delete=true must be atomic with respect to concurrent callers on
// the same key: two racing calls must not both observe the value. That single
// guarantee is the only concurrency control single-use codes rely on.
type KVStore interface {
	// Get returns the live value for key, if any. Absence (missing or
	// expired) is ok=false with a nil error; errors are infrastructure only.
	Get(ctx context.Context, key string, del bool) (value string, ok bool, err error)
	// Set unconditionally stores value under key, replacing any prior entry
	// and its expiration. ttl <= 0 stores without expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) (string, error)
}

// codeBound is the exclusive upper bound of the numeric code space. Codes
// span 000000-699999 after zero padding, ~19.4 bits of entropy.
const codeBound = 700_000

// Manager generates and single-use-validates one-time passwords on top of an
// expiring key-value store. It never delivers codes itself.
type Manager struct {
	store KVStore
	ttl   time.Duration
}

// NewManager returns a Manager storing codes with the given time-to-live.
func NewManager(store KVStore, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// GenerateFor draws a fresh code, stores it under key (overwriting any prior
// code for that key, which resets the TTL) and returns it for delivery.
func (m *Manager) GenerateFor(ctx context.Context, key string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeBound))
	if err != nil {
		return "", fmt.Errorf("draw otp: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())
	return m.store.Set(ctx, key, code, m.ttl)
}

// Validate consumes the stored code for key and compares it to candidate.
// The get-and-delete happens before the comparison, so one stored code buys
// exactly one guess: a wrong candidate still burns the record. Missing,
// expired and mismatched codes all fail with the same error so callers can't
// tell whether a code existed.
func (m *Manager) Validate(ctx context.Context, key, candidate string) error {
	stored, ok, err := m.store.Get(ctx, key, true)
	if err != nil {
		return err
	}
	if !ok || stored != candidate {
		return fmt.Errorf("validate otp: %w", domain.ErrInvalidOtp)
	}
	return nil
}
