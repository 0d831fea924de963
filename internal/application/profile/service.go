package profile

import (
	"context"
	"time"

	"github.com/go-finance-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepository is the minimal user-store contract the profile service needs.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// AccountRepository persists accounts and their movements.
type AccountRepository interface {
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error)
	FindManyByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
	Insert(ctx context.Context, a *domain.Account) (*domain.Account, error)
	FindMovements(ctx context.Context, accountID uuid.UUID) ([]domain.Movement, error)
	// InsertMovement stores the movement and applies its amount to the
	// account balance in a single transaction.
	InsertMovement(ctx context.Context, m *domain.Movement) (*domain.Movement, error)
}

// Service exposes the authenticated user's profile: their accounts and the
// movements on them. Every account access is scoped by owner, so a user can
// never see or mutate another user's accounts.
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetAccounts(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
	GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*domain.Account, error)
	CreateAccount(ctx context.Context, userID uuid.UUID, name string, currency domain.Currency) (*domain.Account, error)
	GetMovements(ctx context.Context, userID, accountID uuid.UUID) ([]domain.Movement, error)
	CreateMovement(ctx context.Context, userID, accountID uuid.UUID, title string, category domain.Category, amount decimal.Decimal) (*domain.Movement, error)
}

type service struct {
	users    UserRepository
	accounts AccountRepository
}

func NewService(users UserRepository, accounts AccountRepository) Service {
	return &service{users: users, accounts: accounts}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *service) GetAccounts(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	return s.accounts.FindManyByUserID(ctx, userID)
}

func (s *service) GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*domain.Account, error) {
	return s.accounts.FindByIDAndUserID(ctx, accountID, userID)
}

func (s *service) CreateAccount(ctx context.Context, userID uuid.UUID, name string, currency domain.Currency) (*domain.Account, error) {
	return s.accounts.Insert(ctx, &domain.Account{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Balance:  decimal.Zero,
		Currency: currency,
	})
}

func (s *service) GetMovements(ctx context.Context, userID, accountID uuid.UUID) ([]domain.Movement, error) {
	// Ownership check first: a foreign account id reads as not-found.
	if _, err := s.accounts.FindByIDAndUserID(ctx, accountID, userID); err != nil {
		return nil, err
	}
	return s.accounts.FindMovements(ctx, accountID)
}

func (s *service) CreateMovement(ctx context.Context, userID, accountID uuid.UUID, title string, category domain.Category, amount decimal.Decimal) (*domain.Movement, error) {
	if _, err := s.accounts.FindByIDAndUserID(ctx, accountID, userID); err != nil {
		return nil, err
	}
	return s.accounts.InsertMovement(ctx, &domain.Movement{
		ID:        uuid.New(),
		AccountID: accountID,
		Timestamp: time.Now().UTC(),
		Title:     title,
		Category:  category,
		Amount:    amount,
	})
}
