package http

import (
	"context"
	"time"

	"github.com/go-finance-api/internal/domain"
	"github.com/google/uuid"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
}

// AccountRepository is the minimal interface the router requires from an account store.
type AccountRepository interface {
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error)
	FindManyByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
	Insert(ctx context.Context, a *domain.Account) (*domain.Account, error)
	FindMovements(ctx context.Context, accountID uuid.UUID) ([]domain.Movement, error)
	InsertMovement(ctx context.Context, m *domain.Movement) (*domain.Movement, error)
}

// KVStore is the expiring key-value store backing OTP issuance.
type KVStore interface {
	Get(ctx context.Context, key string, del bool) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) (string, error)
}

// TokenProvider signs and verifies stateless identity tokens.
type TokenProvider interface {
	Generate(claims domain.Claims) (string, error)
	Validate(token string) (domain.Claims, error)
}

// Mailer delivers messages to a single recipient.
type Mailer interface {
	SendEmail(to, subject, body string) error
}
