package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("user not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// FindByEmail looks a user up by exact (case-sensitive) email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at, updated_at
         FROM users
         WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a credential record and returns its id.
func (r *Repository) Create(ctx context.Context, email, passwordHash string) (string, error) {
	var id string
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO users (email, password_hash)
         VALUES ($1, $2)
         RETURNING id`,
		email, passwordHash,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}
