package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-finance-api/internal/domain"
	"github.com/go-finance-api/internal/transport/http/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProfileSvc struct{ mock.Mock }

func (m *mockProfileSvc) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) GetAccounts(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if a := args.Get(0); a != nil {
		return a.([]domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if a := args.Get(0); a != nil {
		return a.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) CreateAccount(ctx context.Context, userID uuid.UUID, name string, currency domain.Currency) (*domain.Account, error) {
	args := m.Called(ctx, userID, name, currency)
	if a := args.Get(0); a != nil {
		return a.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) GetMovements(ctx context.Context, userID, accountID uuid.UUID) ([]domain.Movement, error) {
	args := m.Called(ctx, userID, accountID)
	if mv := args.Get(0); mv != nil {
		return mv.([]domain.Movement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) CreateMovement(ctx context.Context, userID, accountID uuid.UUID, title string, category domain.Category, amount decimal.Decimal) (*domain.Movement, error) {
	args := m.Called(ctx, userID, accountID, title, category, amount)
	if mv := args.Get(0); mv != nil {
		return mv.(*domain.Movement), args.Error(1)
	}
	return nil, args.Error(1)
}

// authedRequest builds a request carrying claims and optional chi URL params.
func authedRequest(t *testing.T, method, target string, userID uuid.UUID, body interface{}, params map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), middleware.ClaimsKey, domain.Claims{Sub: userID})
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestGetProfile_ReturnsUser(t *testing.T) {
	userID := uuid.New()
	svc := &mockProfileSvc{}
	svc.On("GetProfile", mock.Anything, userID).Return(&domain.User{ID: userID, Email: "a@b.com"}, nil)
	h := NewProfileHandler(svc)

	rr := httptest.NewRecorder()
	h.GetProfile(rr, authedRequest(t, http.MethodGet, "/", userID, nil, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var user domain.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "a@b.com", user.Email)
}

func TestGetProfile_NoClaimsUnauthorized(t *testing.T) {
	svc := &mockProfileSvc{}
	h := NewProfileHandler(svc)

	rr := httptest.NewRecorder()
	h.GetProfile(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	svc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestCreateAccount_Created(t *testing.T) {
	userID := uuid.New()
	svc := &mockProfileSvc{}
	svc.On("CreateAccount", mock.Anything, userID, "Savings", domain.CurrencyUSD).
		Return(&domain.Account{ID: uuid.New(), UserID: userID, Name: "Savings", Currency: domain.CurrencyUSD}, nil)
	h := NewProfileHandler(svc)

	req := authedRequest(t, http.MethodPost, "/", userID, map[string]string{"name": "Savings", "currency": "USD"}, nil)
	rr := httptest.NewRecorder()
	h.CreateAccount(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	svc.AssertExpectations(t)
}

func TestCreateAccount_UnsupportedCurrency(t *testing.T) {
	userID := uuid.New()
	svc := &mockProfileSvc{}
	h := NewProfileHandler(svc)

	req := authedRequest(t, http.MethodPost, "/", userID, map[string]string{"name": "Savings", "currency": "XAU"}, nil)
	rr := httptest.NewRecorder()
	h.CreateAccount(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAccount_BadIDRejected(t *testing.T) {
	userID := uuid.New()
	svc := &mockProfileSvc{}
	h := NewProfileHandler(svc)

	req := authedRequest(t, http.MethodGet, "/", userID, nil, map[string]string{"account_id": "not-a-uuid"})
	rr := httptest.NewRecorder()
	h.GetAccount(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAccount_ForeignAccountNotFound(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	svc := &mockProfileSvc{}
	svc.On("GetAccount", mock.Anything, userID, accountID).Return(nil, domain.ErrNotFound)
	h := NewProfileHandler(svc)

	req := authedRequest(t, http.MethodGet, "/", userID, nil, map[string]string{"account_id": accountID.String()})
	rr := httptest.NewRecorder()
	h.GetAccount(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateMovement_Created(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	amount := decimal.RequireFromString("-42.50")
	svc := &mockProfileSvc{}
	svc.On("CreateMovement", mock.Anything, userID, accountID, "Electric bill", domain.CategoryBills, amount).
		Return(&domain.Movement{ID: uuid.New(), AccountID: accountID, Title: "Electric bill", Category: domain.CategoryBills, Amount: amount}, nil)
	h := NewProfileHandler(svc)

	body := map[string]interface{}{"title": "Electric bill", "category": "BILLS", "amount": "-42.50"}
	req := authedRequest(t, http.MethodPost, "/", userID, body, map[string]string{"account_id": accountID.String()})
	rr := httptest.NewRecorder()
	h.CreateMovement(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	svc.AssertExpectations(t)
}

func TestCreateMovement_UnsupportedCategory(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	svc := &mockProfileSvc{}
	h := NewProfileHandler(svc)

	body := map[string]interface{}{"title": "Mystery", "category": "GAMBLING", "amount": "1"}
	req := authedRequest(t, http.MethodPost, "/", userID, body, map[string]string{"account_id": accountID.String()})
	rr := httptest.NewRecorder()
	h.CreateMovement(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	svc.AssertNotCalled(t, "CreateMovement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
