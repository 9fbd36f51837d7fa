package server

import (
	"sync"

	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/services/training"
	"github.com/google/uuid"
)

// SessionFactory creates the training session of a freshly signed-in user.
type SessionFactory func(user models.User) *training.Session

type sessionEntry struct {
	user    models.User
	session *training.Session
}

// Registry owns the open training sessions, keyed by bearer token.
// A session lives from login until logout or shutdown.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	factory  SessionFactory
	metrics  *metrics.Metrics
}

func NewRegistry(factory SessionFactory, metrics *metrics.Metrics) *Registry {
	return &Registry{
		sessions: make(map[string]sessionEntry),
		factory:  factory,
		metrics:  metrics,
	}
}

// Open starts a session for user and returns its token.
func (r *Registry) Open(user models.User) (string, *training.Session) {
	token := uuid.NewString()
	session := r.factory(user)

	r.mu.Lock()
	r.sessions[token] = sessionEntry{user: user, session: session}
	r.mu.Unlock()

	r.metrics.ActiveSessions.Inc()

	return token, session
}

func (r *Registry) Get(token string) (*training.Session, models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[token]
	return entry.session, entry.user, ok
}

// Close tears down the session behind token. It reports false for unknown tokens.
func (r *Registry) Close(token string) bool {
	r.mu.Lock()
	entry, ok := r.sessions[token]
	delete(r.sessions, token)
	r.mu.Unlock()

	if !ok {
		return false
	}

	entry.session.Close()
	r.metrics.ActiveSessions.Dec()

	return true
}

// CloseAll tears down every open session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	entries := r.sessions
	r.sessions = make(map[string]sessionEntry)
	r.mu.Unlock()

	for _, entry := range entries {
		entry.session.Close()
		r.metrics.ActiveSessions.Dec()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
