package profile

import (
	"context"
	"testing"

	"github.com/go-finance-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockUsers struct{ mock.Mock }

func (m *mockUsers) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAccounts struct{ mock.Mock }

func (m *mockAccounts) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id, userID)
	if a, _ := args.Get(0).(*domain.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccounts) FindManyByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if as, _ := args.Get(0).([]domain.Account); as != nil {
		return as, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccounts) Insert(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, a)
	if out, _ := args.Get(0).(*domain.Account); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccounts) FindMovements(ctx context.Context, accountID uuid.UUID) ([]domain.Movement, error) {
	args := m.Called(ctx, accountID)
	if ms, _ := args.Get(0).([]domain.Movement); ms != nil {
		return ms, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccounts) InsertMovement(ctx context.Context, mv *domain.Movement) (*domain.Movement, error) {
	args := m.Called(ctx, mv)
	if out, _ := args.Get(0).(*domain.Movement); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- tests ---

func TestGetProfile(t *testing.T) {
	userID := uuid.New()
	users := &mockUsers{}
	users.On("FindByID", mock.Anything, userID).Return(&domain.User{ID: userID, Email: "a@b.com"}, nil)

	svc := NewService(users, &mockAccounts{})
	u, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)
}

func TestCreateAccount_StartsAtZeroBalance(t *testing.T) {
	userID := uuid.New()
	accounts := &mockAccounts{}
	accounts.On("Insert", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.UserID == userID && a.Name == "savings" &&
			a.Currency == domain.CurrencyEUR && a.Balance.IsZero() && a.ID != uuid.Nil
	})).Return(&domain.Account{ID: uuid.New(), UserID: userID, Name: "savings", Currency: domain.CurrencyEUR}, nil)

	svc := NewService(&mockUsers{}, accounts)
	_, err := svc.CreateAccount(context.Background(), userID, "savings", domain.CurrencyEUR)
	require.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestGetMovements_ForeignAccountIsNotFound(t *testing.T) {
	userID, accountID := uuid.New(), uuid.New()
	accounts := &mockAccounts{}
	accounts.On("FindByIDAndUserID", mock.Anything, accountID, userID).Return(nil, domain.ErrNotFound)

	svc := NewService(&mockUsers{}, accounts)
	_, err := svc.GetMovements(context.Background(), userID, accountID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	accounts.AssertNotCalled(t, "FindMovements", mock.Anything, mock.Anything)
}

func TestCreateMovement_ChecksOwnershipFirst(t *testing.T) {
	userID, accountID := uuid.New(), uuid.New()
	accounts := &mockAccounts{}
	accounts.On("FindByIDAndUserID", mock.Anything, accountID, userID).
		Return(&domain.Account{ID: accountID, UserID: userID}, nil)
	amount := decimal.RequireFromString("-12.50")
	accounts.On("InsertMovement", mock.Anything, mock.MatchedBy(func(mv *domain.Movement) bool {
		return mv.AccountID == accountID && mv.Title == "groceries" &&
			mv.Category == domain.CategoryShopping && mv.Amount.Equal(amount) &&
			!mv.Timestamp.IsZero()
	})).Return(&domain.Movement{ID: uuid.New(), AccountID: accountID}, nil)

	svc := NewService(&mockUsers{}, accounts)
	_, err := svc.CreateMovement(context.Background(), userID, accountID, "groceries", domain.CategoryShopping, amount)
	require.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestGetMovements_Success(t *testing.T) {
	userID, accountID := uuid.New(), uuid.New()
	movements := []domain.Movement{{ID: uuid.New(), AccountID: accountID, Title: "rent"}}
	accounts := &mockAccounts{}
	accounts.On("FindByIDAndUserID", mock.Anything, accountID, userID).
		Return(&domain.Account{ID: accountID, UserID: userID}, nil)
	accounts.On("FindMovements", mock.Anything, accountID).Return(movements, nil)

	svc := NewService(&mockUsers{}, accounts)
	got, err := svc.GetMovements(context.Background(), userID, accountID)
	require.NoError(t, err)
	assert.Equal(t, movements, got)
}
