package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/parser"
	"github.com/UnknownOlympus/focuslearn/internal/repository"
)

const syncTimeout = 30 * time.Second

// Syncer imports rows of a published training roster that are not stored yet.
// Stored rows are never updated, the roster only ever appends.
type Syncer struct {
	log       *slog.Logger
	employees repository.EmployeeRepoIface
	status    repository.SyncStatusRepoIface
	parser    parser.RosterParserIface
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewSyncer(
	log *slog.Logger,
	employees repository.EmployeeRepoIface,
	status repository.SyncStatusRepoIface,
	rosterParser parser.RosterParserIface,
	metrics *metrics.Metrics,
) *Syncer {
	return &Syncer{
		log:       log,
		employees: employees,
		status:    status,
		parser:    rosterParser,
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *Syncer) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "roster"),
	)
}

// Start runs one import immediately and then one per interval until ctx is done.
// Only the first import is fatal; later failures are logged and retried on the next tick.
func (s *Syncer) Start(ctx context.Context, interval time.Duration) error {
	const opn = "Roster.Start"
	log := s.initLogger(opn)

	lastSync, err := s.status.GetLastSync(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.InfoContext(ctx, "Roster was never imported")
	case err != nil:
		log.WarnContext(ctx, "Failed to read last sync time", "error", err)
	default:
		log.InfoContext(ctx, "Roster was last imported", "at", lastSync)
	}

	// 1. Catch-up mode
	log.InfoContext(ctx, "Starting catch-up import")
	if _, err = s.SyncOnce(ctx); err != nil {
		return fmt.Errorf("failed during catch-up import: %w", err)
	}

	// 2. Maintainance mode
	log.InfoContext(ctx, "Starting maintainance mode", "interval", interval.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.InfoContext(ctx, "Periodic import triggered.")
			if _, err = s.SyncOnce(ctx); err != nil {
				log.ErrorContext(ctx, "Periodic import failed", "error", err)
			}
		case <-ctx.Done():
			log.InfoContext(ctx, "Service shutting down.")
			return nil
		}
	}
}

// SyncOnce fetches the roster and appends rows whose id is not stored yet, in roster order.
// It returns the number of appended rows.
func (s *Syncer) SyncOnce(pctx context.Context) (int, error) {
	const opn = "Roster.SyncOnce"
	log := s.initLogger(opn)

	ctx, cancel := context.WithTimeout(pctx, syncTimeout)
	defer cancel()

	rows, err := s.parser.FetchRoster(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch roster: %w", err)
	}

	stored, err := s.employees.ListEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list stored employees: %w", err)
	}

	fresh := newRows(stored, rows)
	for _, row := range fresh {
		if err = s.employees.SaveEmployee(ctx, row); err != nil {
			return 0, fmt.Errorf("failed to save employee %s: %w", row.ID, err)
		}
		log.DebugContext(ctx, "Employee imported", "id", row.ID, "name", row.Name)
	}

	if s.metrics != nil {
		s.metrics.EmployeesAdded.Add(float64(len(fresh)))
	}

	if err = s.status.SaveLastSync(ctx, s.now(), len(fresh)); err != nil {
		log.WarnContext(ctx, "Failed to record sync time", "error", err)
	}

	log.InfoContext(ctx, "Roster imported", "fetched", len(rows), "value", len(fresh))

	return len(fresh), nil
}

// newRows keeps the roster rows whose id is neither stored nor repeated earlier in the roster.
func newRows(stored, roster []models.TrainingEmployee) []models.TrainingEmployee {
	known := make(map[string]struct{}, len(stored)+len(roster))
	for _, employee := range stored {
		known[employee.ID] = struct{}{}
	}

	fresh := make([]models.TrainingEmployee, 0)
	for _, employee := range roster {
		if _, ok := known[employee.ID]; ok {
			continue
		}
		known[employee.ID] = struct{}{}
		fresh = append(fresh, employee)
	}

	return fresh
}
