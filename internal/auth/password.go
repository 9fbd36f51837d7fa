package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/focuslearn/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// HashSource returns the stored bcrypt hash for an email.
type HashSource interface {
	GetPasswordHash(ctx context.Context, email string) (string, error)
}

// PasswordProvider verifies credentials against bcrypt hashes kept next to the users.
type PasswordProvider struct {
	hashes HashSource
}

func NewPasswordProvider(hashes HashSource) *PasswordProvider {
	return &PasswordProvider{hashes: hashes}
}

func (p *PasswordProvider) SignIn(ctx context.Context, email, password string) error {
	hash, err := p.hashes.GetPasswordHash(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %w", ErrLogin, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %w", ErrLogin, err)
	}

	return nil
}

// HashPassword produces the hash stored by PasswordProvider.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}
