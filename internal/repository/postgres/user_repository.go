package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/airport-service/internal/domain"
)

type userRepository struct {
	q sqlx.ExtContext
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, is_staff)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	err := sqlx.GetContext(ctx, r.q, &user.CreatedAt, query, user.ID, user.Email, user.PasswordHash, user.IsStaff)
	return translateError(err, "insert user")
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, email, password_hash, is_staff, created_at FROM users WHERE email = $1`
	if err := sqlx.GetContext(ctx, r.q, &u, query, email); err != nil {
		return nil, translateError(err, "get user by email")
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, email, password_hash, is_staff, created_at FROM users WHERE id = $1`
	if err := sqlx.GetContext(ctx, r.q, &u, query, id); err != nil {
		return nil, translateError(err, "get user by id")
	}
	return &u, nil
}
