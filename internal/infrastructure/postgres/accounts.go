package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-finance-api/internal/domain"
	"github.com/google/uuid"
)

// AccountRepo persists accounts and movements in Postgres.
type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, balance, currency FROM accounts WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&a.ID, &a.UserID, &a.Name, &a.Balance, &a.Currency)
	if err != nil {
		return nil, wrapAccountErr("find account", err)
	}
	return &a, nil
}

func (r *AccountRepo) FindManyByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, balance, currency FROM accounts WHERE user_id = $1 ORDER BY name DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Balance, &a.Currency); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepo) Insert(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	var out domain.Account
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO accounts (id, user_id, name, balance, currency)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, name, balance, currency`,
		a.ID, a.UserID, a.Name, a.Balance, a.Currency,
	).Scan(&out.ID, &out.UserID, &out.Name, &out.Balance, &out.Currency)
	if err != nil {
		return nil, wrapAccountErr("insert account", err)
	}
	return &out, nil
}

func (r *AccountRepo) FindMovements(ctx context.Context, accountID uuid.UUID) ([]domain.Movement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, account_id, timestamp, title, category, amount
		 FROM movements WHERE account_id = $1 ORDER BY timestamp DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	movements := []domain.Movement{}
	for rows.Next() {
		var m domain.Movement
		if err := rows.Scan(&m.ID, &m.AccountID, &m.Timestamp, &m.Title, &m.Category, &m.Amount); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

// InsertMovement stores the movement and applies its amount to the owning
// account's balance in one transaction, so the ledger and the balance can
// never drift apart.
func (r *AccountRepo) InsertMovement(ctx context.Context, m *domain.Movement) (*domain.Movement, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin movement tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var out domain.Movement
	err = tx.QueryRowContext(ctx,
		`INSERT INTO movements (id, account_id, timestamp, title, category, amount)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, account_id, timestamp, title, category, amount`,
		m.ID, m.AccountID, m.Timestamp, m.Title, m.Category, m.Amount,
	).Scan(&out.ID, &out.AccountID, &out.Timestamp, &out.Title, &out.Category, &out.Amount)
	if err != nil {
		return nil, wrapAccountErr("insert movement", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE accounts SET balance = balance + $2 WHERE id = $1`,
		m.AccountID, m.Amount,
	); err != nil {
		return nil, fmt.Errorf("apply movement to balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit movement tx: %w", err)
	}
	return &out, nil
}

func wrapAccountErr(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
