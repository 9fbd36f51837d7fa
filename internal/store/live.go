package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/focuslearn/internal/auth"
	"github.com/UnknownOlympus/focuslearn/internal/lib/logger/sl"
	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/repository"
)

var _ Store = (*Live)(nil)

// Live backs the Store with PostgreSQL repositories and an auth.Provider.
// Failures are logged and counted before being turned into negative results.
type Live struct {
	log       *slog.Logger
	users     repository.UserRepoIface
	employees repository.EmployeeRepoIface
	provider  auth.Provider
	metrics   *metrics.Metrics
}

func NewLive(
	log *slog.Logger,
	users repository.UserRepoIface,
	employees repository.EmployeeRepoIface,
	provider auth.Provider,
	metrics *metrics.Metrics,
) *Live {
	return &Live{log: log, users: users, employees: employees, provider: provider, metrics: metrics}
}

func (l *Live) initLogger(opn string) *slog.Logger {
	return l.log.With(
		slog.String("op", opn),
		slog.String("division", "store"),
	)
}

func (l *Live) failure(ctx context.Context, opn string, err error) {
	l.initLogger(opn).ErrorContext(ctx, "Backend failure swallowed", sl.Err(err))
	l.metrics.StoreFailures.WithLabelValues(opn).Inc()
}

func (l *Live) LookupUserByName(ctx context.Context, name string) (models.User, bool) {
	user, err := l.users.GetUserByUsername(ctx, name)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l.failure(ctx, opLookupUser, err)
		}
		return models.User{}, false
	}

	return user, true
}

func (l *Live) Authenticate(ctx context.Context, email, password string) bool {
	err := l.provider.SignIn(ctx, email, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			l.failure(ctx, opAuthenticate, err)
		}
		return false
	}

	return true
}

func (l *Live) ListEmployees(ctx context.Context) []models.TrainingEmployee {
	employees, err := l.employees.ListEmployees(ctx)
	if err != nil {
		l.failure(ctx, opListEmployees, err)
		return []models.TrainingEmployee{}
	}

	return employees
}

func (l *Live) AddEmployee(ctx context.Context, employee models.TrainingEmployee) bool {
	if err := l.employees.SaveEmployee(ctx, employee); err != nil {
		l.failure(ctx, opAddEmployee, err)
		return false
	}

	l.metrics.EmployeesAdded.Inc()
	return true
}
