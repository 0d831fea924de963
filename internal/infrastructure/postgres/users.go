package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-finance-api/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserRepo persists users in Postgres.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email)
	if err != nil {
		return nil, wrapUserErr("find user by email", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email)
	if err != nil {
		return nil, wrapUserErr("find user by id", err)
	}
	return &u, nil
}

func (r *UserRepo) Insert(ctx context.Context, u *domain.User) (*domain.User, error) {
	var out domain.User
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (id, email) VALUES ($1, $2) RETURNING id, email`,
		u.ID, u.Email,
	).Scan(&out.ID, &out.Email)
	if err != nil {
		return nil, wrapUserErr("insert user", err)
	}
	return &out, nil
}

func wrapUserErr(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// isUniqueViolation reports whether err is the Postgres unique-violation
// error class (duplicate id or email).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
