package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UnknownOlympus/focuslearn/internal/lib/logger/sl"
	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/server"
	"github.com/UnknownOlympus/focuslearn/internal/services/login"
	"github.com/UnknownOlympus/focuslearn/internal/services/training"
	"github.com/UnknownOlympus/focuslearn/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	router   http.Handler
	registry *server.Registry
}

func newAPIFixture(t *testing.T, st store.Store) apiFixture {
	t.Helper()

	log := sl.Discard()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	registry := server.NewRegistry(func(_ models.User) *training.Session {
		return training.NewSession(log, st, m)
	}, m)
	t.Cleanup(registry.CloseAll)

	api := server.NewAPI(log, login.NewService(log, st, m), registry)

	return apiFixture{router: api.Router(), registry: registry}
}

func memoryStore(rows int) *store.Memory {
	employees := make([]models.TrainingEmployee, rows)
	for i := range employees {
		employees[i] = models.TrainingEmployee{ID: fmt.Sprintf("%d", 1001+i), Name: "n", Status: models.StatusInProgress}
	}
	employees[0].Status = models.StatusCompleted

	return store.NewMemory([]store.Credential{
		{User: models.User{Username: "test", Email: "test@example.com"}, Password: "password"},
	}, employees)
}

func (fx apiFixture) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, target, &payload)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	fx.router.ServeHTTP(rr, req)

	return rr
}

func (fx apiFixture) login(t *testing.T) string {
	t.Helper()

	rr := fx.do(t, http.MethodPost, "/api/login", "", map[string]string{"username": "test", "password": "password"})
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	assert.Equal(t, login.MessageSuccess, body.Message)

	return body.Token
}

type listBody struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	Employees  []struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		Completed bool   `json:"completed"`
	} `json:"employees"`
}

func (fx apiFixture) list(t *testing.T, token, query string) listBody {
	t.Helper()

	rr := fx.do(t, http.MethodGet, "/api/employees"+query, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAPI_LoginOutcomes(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t, memoryStore(2))

	tests := []struct {
		name    string
		body    any
		code    int
		message string
	}{
		{"empty password", map[string]string{"username": "test"}, http.StatusBadRequest, login.MessageEmptyCredentials},
		{"unknown user", map[string]string{"username": "ghost", "password": "x"}, http.StatusUnauthorized, login.MessageUserNotFound},
		{"wrong password", map[string]string{"username": "test", "password": "x"}, http.StatusUnauthorized, login.MessageInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := fx.do(t, http.MethodPost, "/api/login", "", tt.body)

			require.Equal(t, tt.code, rr.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tt.message), rr.Body.String())
		})
	}

	assert.Zero(t, fx.registry.Len())
}

func TestAPI_MalformedLogin(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t, memoryStore(2))

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	fx.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_RequiresSession(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t, memoryStore(2))

	assert.Equal(t, http.StatusUnauthorized, fx.do(t, http.MethodGet, "/api/employees", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, fx.do(t, http.MethodGet, "/api/employees", "nope", nil).Code)
}

func TestAPI_ListAndPaginate(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t, memoryStore(45))
	token := fx.login(t)

	// the login refresh runs in the background
	require.Eventually(t, func() bool {
		return fx.list(t, token, "").Count == 45
	}, time.Second, 5*time.Millisecond)

	first := fx.list(t, token, "")
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 3, first.TotalPages)
	require.Len(t, first.Employees, 20)
	assert.True(t, first.Employees[0].Completed)
	assert.False(t, first.Employees[1].Completed)

	last := fx.list(t, token, "?page=3")
	assert.Equal(t, 3, last.Page)
	require.Len(t, last.Employees, 5)
	assert.Equal(t, "1041", last.Employees[0].ID)

	// the page is remembered
	assert.Equal(t, 3, fx.list(t, token, "").Page)

	beyond := fx.list(t, token, "?page=9")
	assert.Empty(t, beyond.Employees)

	assert.Equal(t, http.StatusBadRequest, fx.do(t, http.MethodGet, "/api/employees?page=x", token, nil).Code)
}

func TestAPI_AddEmployee(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t, memoryStore(2))
	token := fx.login(t)
	require.Eventually(t, func() bool {
		return fx.list(t, token, "").Count == 2
	}, time.Second, 5*time.Millisecond)

	rr := fx.do(t, http.MethodPost, "/api/employees", token, map[string]string{"name": "박민수", "department": "개발부"})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{
		"id": "1003", "name": "박민수", "department": "개발부", "position": "", "course": "",
		"status": "진행 중", "completed": false
	}`, rr.Body.String())

	rr = fx.do(t, http.MethodPost, "/api/employees", token, map[string]string{"department": "개발부"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = fx.do(t, http.MethodPost, "/api/employees?async=true", token, map[string]string{"name": "최지우"})
	assert.Equal(t, http.StatusAccepted, rr.Code)

	require.Eventually(t, func() bool {
		return fx.list(t, token, "").Count == 4
	}, time.Second, 5*time.Millisecond)
}

type rejectingStore struct {
	*store.Memory
}

func (rejectingStore) AddEmployee(_ context.Context, _ models.TrainingEmployee) bool {
	return false
}

func TestAPI_AddEmployeeRejected(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t, rejectingStore{Memory: memoryStore(2)})
	token := fx.login(t)

	rr := fx.do(t, http.MethodPost, "/api/employees", token, map[string]string{"name": "박민수"})

	require.Equal(t, http.StatusBadGateway, rr.Code)
	assert.JSONEq(t, `{"message":"failed to add employee"}`, rr.Body.String())
}

func TestAPI_RefreshAndLogout(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t, memoryStore(2))
	token := fx.login(t)
	require.Equal(t, 1, fx.registry.Len())

	assert.Equal(t, http.StatusAccepted, fx.do(t, http.MethodPost, "/api/employees/refresh", token, nil).Code)

	assert.Equal(t, http.StatusNoContent, fx.do(t, http.MethodPost, "/api/logout", token, nil).Code)
	assert.Zero(t, fx.registry.Len())
	assert.Equal(t, http.StatusUnauthorized, fx.do(t, http.MethodGet, "/api/employees", token, nil).Code)
}
