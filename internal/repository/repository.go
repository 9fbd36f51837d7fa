package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/UnknownOlympus/focuslearn/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// UserRepoIface represents the interface for reading accounts and their credentials.
type UserRepoIface interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetPasswordHash(ctx context.Context, email string) (string, error)
	SaveUser(ctx context.Context, user models.User, passwordHash string) error
}

func NewUserRepository(db Database, metrics *metrics.Metrics) UserRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// EmployeeRepoIface represents the interface for interacting with training employee data in the repository.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.TrainingEmployee, error)
	SaveEmployee(ctx context.Context, employee models.TrainingEmployee) error
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// SyncStatusRepoIface keeps track of the periodic roster import.
type SyncStatusRepoIface interface {
	SaveLastSync(ctx context.Context, syncedAt time.Time, imported int) error
	GetLastSync(ctx context.Context) (time.Time, error)
}

func NewSyncStatusRepository(db Database, metrics *metrics.Metrics) SyncStatusRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// observe starts a DBQueryDuration timer, call the returned func when the query is done.
func (r *Repository) observe(queryType string) func() {
	return metricsTimer(r.metrics, queryType)
}
