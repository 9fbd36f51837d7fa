package training

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/UnknownOlympus/focuslearn/internal/lib/logger/sl"
	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/store"
	"golang.org/x/sync/errgroup"
)

// PageSize is the fixed number of employees shown per page.
const PageSize = 20

var (
	// ErrAddFailed is returned when the store did not accept a new employee.
	ErrAddFailed = errors.New("failed to add employee")
	// ErrSessionClosed is returned for work finished after the session was torn down.
	ErrSessionClosed = errors.New("session closed")
)

// Session holds the employee list and current page of one signed-in user.
//
// The list is only written by Refresh (wholesale replacement) and AddOne (append after a
// confirmed write). Asynchronous actions are bound to the session: Close cancels them and
// drops any result that arrives afterwards. While the session is open there is no ordering
// between concurrent actions, whichever completes last wins.
type Session struct {
	log     *slog.Logger
	store   store.Store
	metrics *metrics.Metrics

	mu          sync.RWMutex
	employees   []models.TrainingEmployee
	currentPage int
	closed      bool

	ctx    context.Context
	cancel context.CancelFunc
	group  errgroup.Group
}

func NewSession(log *slog.Logger, st store.Store, metrics *metrics.Metrics) *Session {
	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		log:         log,
		store:       st,
		metrics:     metrics,
		employees:   []models.TrainingEmployee{},
		currentPage: 1,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (s *Session) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "training"),
	)
}

// Refresh replaces the held list with the store's current content.
// The result is discarded if ctx or the session ends before the store answers.
func (s *Session) Refresh(ctx context.Context) error {
	employees := s.store.ListEmployees(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.employees = slices.Clone(employees)
	if s.employees == nil {
		s.employees = []models.TrainingEmployee{}
	}

	return nil
}

// AddOne writes candidate to the store and appends it locally once the write is confirmed.
// The held list is left untouched when the store rejects the write.
func (s *Session) AddOne(ctx context.Context, candidate models.TrainingEmployee) error {
	if !s.store.AddEmployee(ctx, candidate) {
		return ErrAddFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.employees = append(s.employees, candidate)

	return nil
}

// PageOf returns the employees of the 1-based page, or an empty slice when the page
// lies outside the held data. The page is not clamped.
func (s *Session) PageOf(page int) []models.TrainingEmployee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return pageOf(s.employees, page)
}

func pageOf(employees []models.TrainingEmployee, page int) []models.TrainingEmployee {
	if page < 1 {
		return []models.TrainingEmployee{}
	}

	start := (page - 1) * PageSize
	if start >= len(employees) {
		return []models.TrainingEmployee{}
	}
	end := min(start+PageSize, len(employees))

	return slices.Clone(employees[start:end])
}

// TotalPages returns ceil(count / PageSize). An empty list still has one (empty) page.
func (s *Session) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return totalPages(len(s.employees))
}

func totalPages(count int) int {
	if count == 0 {
		return 1
	}

	return (count + PageSize - 1) / PageSize
}

// Employees returns a copy of the held list.
func (s *Session) Employees() []models.TrainingEmployee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.employees)
}

func (s *Session) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.employees)
}

func (s *Session) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentPage
}

// SetPage stores the page the user is looking at. Bounds are left to the caller.
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentPage = page
}

// Snapshot is a consistent view of a session for rendering.
type Snapshot struct {
	Page       int
	TotalPages int
	Count      int
	Rows       []models.TrainingEmployee
}

// Snapshot returns the current page, its rows and the totals read under a single lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Page:       s.currentPage,
		TotalPages: totalPages(len(s.employees)),
		Count:      len(s.employees),
		Rows:       pageOf(s.employees, s.currentPage),
	}
}

// RefreshAsync starts a refresh bound to the session lifetime.
// It reports false when the session is already closed.
func (s *Session) RefreshAsync() bool {
	return s.spawn("refresh", s.Refresh)
}

// AddOneAsync starts an add bound to the session lifetime. done, if not nil, receives the
// outcome once the action finished.
func (s *Session) AddOneAsync(candidate models.TrainingEmployee, done func(error)) bool {
	return s.spawn("add", func(ctx context.Context) error {
		err := s.AddOne(ctx, candidate)
		if done != nil {
			done(err)
		}
		return err
	})
}

func (s *Session) spawn(action string, work func(ctx context.Context) error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	s.group.Go(func() error {
		const opn = "Session.spawn"
		log := s.initLogger(opn)

		startTime := time.Now()
		err := work(s.ctx)
		s.metrics.ActionDuration.WithLabelValues(action).Observe(time.Since(startTime).Seconds())

		switch {
		case err == nil:
			log.Debug("Action completed", "action", action)
		case errors.Is(err, context.Canceled), errors.Is(err, ErrSessionClosed):
			log.Debug("Action result discarded", "action", action)
		default:
			log.Warn("Action failed", "action", action, sl.Err(err))
		}

		// errors are reported through logs and callbacks, never through the group
		return nil
	})

	return true
}

// Wait blocks until every action started so far has finished.
func (s *Session) Wait() {
	_ = s.group.Wait()
}

// Close cancels in-flight actions, waits for them and refuses new ones.
// Calling Close more than once is safe.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.Wait()
}
