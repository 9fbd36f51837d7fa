package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/jackc/pgx/v5"
)

// GetUserByUsername returns the first user with the given username.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var result models.User

	defer r.observe("get_user_by_username")()
	query := `SELECT username, email FROM users WHERE username=$1 LIMIT 1`

	err := r.db.QueryRow(ctx, query, username).Scan(&result.Username, &result.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return models.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return result, nil
}

// GetPasswordHash returns the bcrypt hash stored for the given email.
func (r *Repository) GetPasswordHash(ctx context.Context, email string) (string, error) {
	var hash string

	defer r.observe("get_password_hash")()
	query := `SELECT password_hash FROM users WHERE email=$1`

	err := r.db.QueryRow(ctx, query, email).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("credentials for %q: %w", email, ErrNotFound)
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}

	return hash, nil
}

// SaveUser inserts a user or replaces the email and password hash of an existing one.
func (r *Repository) SaveUser(ctx context.Context, user models.User, passwordHash string) error {
	defer r.observe("save_user")()
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET email = $2, password_hash = $3;
	`

	_, err := r.db.Exec(ctx, query, user.Username, user.Email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}
