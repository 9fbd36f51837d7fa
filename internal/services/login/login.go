package login

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/store"
)

var (
	ErrEmptyCredentials  = errors.New("username and password are required")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid credential")
)

// Result is the outcome of a successful login.
type Result struct {
	User     models.User
	Navigate bool
}

type Service struct {
	log     *slog.Logger
	store   store.Store
	metrics *metrics.Metrics
}

func NewService(log *slog.Logger, st store.Store, metrics *metrics.Metrics) *Service {
	return &Service{log: log, store: st, metrics: metrics}
}

// Login resolves the username to an account and checks the password against its email.
// Empty input never reaches the store, and an unknown user is never authenticated.
func (s *Service) Login(ctx context.Context, username, password string) (Result, error) {
	const opn = "Login.Login"
	log := s.log.With(
		slog.String("op", opn),
		slog.String("division", "login"),
		slog.String("username", username),
	)

	if username == "" || password == "" {
		s.count("empty")
		return Result{}, ErrEmptyCredentials
	}

	user, found := s.store.LookupUserByName(ctx, username)
	if !found {
		log.InfoContext(ctx, "Login rejected: unknown user")
		s.count("not_found")
		return Result{}, ErrUserNotFound
	}

	if !s.store.Authenticate(ctx, user.Email, password) {
		log.InfoContext(ctx, "Login rejected: invalid credential")
		s.count("invalid")
		return Result{}, ErrInvalidCredential
	}

	log.InfoContext(ctx, "Login succeeded")
	s.count("success")

	return Result{User: user, Navigate: true}, nil
}

func (s *Service) count(result string) {
	s.metrics.LoginAttempts.WithLabelValues(result).Inc()
}
