package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency codes supported for accounts. Stored as uppercase varchar.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Movement categories. Stored as uppercase varchar.
type Category string

const (
	CategoryGeneric   Category = "GENERIC"
	CategoryBills     Category = "BILLS"
	CategoryShopping  Category = "SHOPPING"
	CategoryIncome    Category = "INCOME"
	CategoryInsurance Category = "INSURANCE"
)

// Account is a money account owned by a user. Balance is maintained by the
// repository as movements are inserted, never recomputed client-side.
type Account struct {
	ID       uuid.UUID       `json:"id"`
	UserID   uuid.UUID       `json:"user_id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
}

// Movement is a single money movement on an account. Amount is signed:
// negative for expenses, positive for income.
type Movement struct {
	ID        uuid.UUID       `json:"id"`
	AccountID uuid.UUID       `json:"account_id"`
	Timestamp time.Time       `json:"timestamp"`
	Title     string          `json:"title"`
	Category  Category        `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
}

// ValidCurrency reports whether c is a supported currency code.
func ValidCurrency(c Currency) bool {
	switch c {
	case CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// ValidCategory reports whether c is a supported movement category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryGeneric, CategoryBills, CategoryShopping, CategoryIncome, CategoryInsurance:
		return true
	}
	return false
}
