package auth_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/UnknownOlympus/focuslearn/internal/auth"
	"github.com/UnknownOlympus/focuslearn/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hashMap struct {
	hashes map[string]string
	err    error
}

func (h hashMap) GetPasswordHash(_ context.Context, email string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	hash, ok := h.hashes[email]
	if !ok {
		return "", fmt.Errorf("credentials for %q: %w", email, repository.ErrNotFound)
	}
	return hash, nil
}

func TestPasswordProvider_SignIn(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("password")
	require.NoError(t, err)

	provider := auth.NewPasswordProvider(hashMap{hashes: map[string]string{"bob@example.com": hash}})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "bob@example.com", password: "password"},
		{name: "wrong password", email: "bob@example.com", password: "wrong", wantErr: auth.ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@example.com", password: "password", wantErr: auth.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := provider.SignIn(context.Background(), tt.email, tt.password)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPasswordProvider_BackendError(t *testing.T) {
	t.Parallel()

	provider := auth.NewPasswordProvider(hashMap{err: assert.AnError})

	err := provider.SignIn(context.Background(), "bob@example.com", "password")

	require.ErrorIs(t, err, auth.ErrLogin)
	require.ErrorIs(t, err, assert.AnError)
	require.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestPasswordProvider_CorruptHash(t *testing.T) {
	t.Parallel()

	provider := auth.NewPasswordProvider(hashMap{hashes: map[string]string{"bob@example.com": "plain"}})

	err := provider.SignIn(context.Background(), "bob@example.com", "plain")

	require.ErrorIs(t, err, auth.ErrLogin)
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	first, err := auth.HashPassword("secret")
	require.NoError(t, err)
	second, err := auth.HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", first)
	assert.NotEqual(t, first, second, "bcrypt salts every hash")
}
