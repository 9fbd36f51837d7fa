package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when the provider rejects the email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrLogin is returned when the provider could not give an answer at all.
	ErrLogin = errors.New("login failed")
)

// Provider checks an email/password pair against an identity source.
// A nil error means the credentials are valid.
type Provider interface {
	SignIn(ctx context.Context, email, password string) error
}
