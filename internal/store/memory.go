package store

import (
	"context"
	"slices"
	"sync"

	"github.com/UnknownOlympus/focuslearn/internal/models"
)

var _ Store = (*Memory)(nil)

// Credential is an account known to the Memory store.
type Credential struct {
	User     models.User
	Password string
}

// Memory is a deterministic in-process Store used for previews and tests.
// Writes always succeed.
type Memory struct {
	mu        sync.RWMutex
	users     []Credential
	employees []models.TrainingEmployee
}

func NewMemory(users []Credential, employees []models.TrainingEmployee) *Memory {
	return &Memory{
		users:     slices.Clone(users),
		employees: slices.Clone(employees),
	}
}

func (m *Memory) LookupUserByName(_ context.Context, name string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, credential := range m.users {
		if credential.User.Username == name {
			return credential.User, true
		}
	}

	return models.User{}, false
}

func (m *Memory) Authenticate(_ context.Context, email, password string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, credential := range m.users {
		if credential.User.Email == email && credential.Password == password {
			return true
		}
	}

	return false
}

func (m *Memory) ListEmployees(_ context.Context) []models.TrainingEmployee {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.TrainingEmployee, len(m.employees))
	copy(out, m.employees)

	return out
}

func (m *Memory) AddEmployee(_ context.Context, employee models.TrainingEmployee) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.employees = append(m.employees, employee)

	return true
}
