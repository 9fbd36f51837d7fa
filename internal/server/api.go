package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/focuslearn/internal/lib/logger/sl"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/services/login"
	"github.com/UnknownOlympus/focuslearn/internal/services/training"
	"github.com/gorilla/mux"
)

type ctxKey int

const (
	sessionKey ctxKey = iota
	tokenKey
)

// API exposes login and the training status list as JSON over HTTP.
type API struct {
	log      *slog.Logger
	login    *login.Service
	registry *Registry
}

func NewAPI(log *slog.Logger, loginService *login.Service, registry *Registry) *API {
	return &API{
		log:      log.With(slog.String("division", "api")),
		login:    loginService,
		registry: registry,
	}
}

// Router wires the API routes.
func (a *API) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/login", a.handleLogin).Methods(http.MethodPost)

	authed := router.PathPrefix("/api").Subrouter()
	authed.Use(a.requireSession)
	authed.HandleFunc("/logout", a.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/employees", a.handleListEmployees).Methods(http.MethodGet)
	authed.HandleFunc("/employees", a.handleAddEmployee).Methods(http.MethodPost)
	authed.HandleFunc("/employees/refresh", a.handleRefresh).Methods(http.MethodPost)

	return router
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type employeeView struct {
	models.TrainingEmployee
	Completed bool `json:"completed"`
}

type listResponse struct {
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Count      int            `json:"count"`
	Employees  []employeeView `json:"employees"`
}

func (a *API) handleLogin(writer http.ResponseWriter, req *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		a.writeJSON(req.Context(), writer, http.StatusBadRequest, messageResponse{Message: "malformed request body"})
		return
	}

	result, err := a.login.Login(req.Context(), body.Username, body.Password)
	message := login.StatusMessage(err)

	switch {
	case err == nil:
	case errors.Is(err, login.ErrEmptyCredentials):
		a.writeJSON(req.Context(), writer, http.StatusBadRequest, loginResponse{Message: message})
		return
	default:
		a.writeJSON(req.Context(), writer, http.StatusUnauthorized, loginResponse{Message: message})
		return
	}

	token, session := a.registry.Open(result.User)
	session.RefreshAsync()

	a.writeJSON(req.Context(), writer, http.StatusOK, loginResponse{
		Token:    token,
		Username: result.User.Username,
		Message:  message,
	})
}

func (a *API) handleLogout(writer http.ResponseWriter, req *http.Request) {
	token, _ := req.Context().Value(tokenKey).(string)
	a.registry.Close(token)

	writer.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListEmployees(writer http.ResponseWriter, req *http.Request) {
	session := sessionFrom(req.Context())

	if raw := req.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			a.writeJSON(req.Context(), writer, http.StatusBadRequest, messageResponse{Message: "page must be a number"})
			return
		}
		session.SetPage(page)
	}

	snapshot := session.Snapshot()
	response := listResponse{
		Page:       snapshot.Page,
		TotalPages: snapshot.TotalPages,
		Count:      snapshot.Count,
		Employees:  make([]employeeView, 0, len(snapshot.Rows)),
	}
	for _, row := range snapshot.Rows {
		response.Employees = append(response.Employees, newEmployeeView(row))
	}

	a.writeJSON(req.Context(), writer, http.StatusOK, response)
}

func (a *API) handleAddEmployee(writer http.ResponseWriter, req *http.Request) {
	session := sessionFrom(req.Context())

	var candidate training.Candidate
	if err := json.NewDecoder(req.Body).Decode(&candidate); err != nil {
		a.writeJSON(req.Context(), writer, http.StatusBadRequest, messageResponse{Message: "malformed request body"})
		return
	}

	employee, err := session.Build(candidate)
	if err != nil {
		a.writeJSON(req.Context(), writer, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}

	if req.URL.Query().Get("async") == "true" {
		if !session.AddOneAsync(employee, nil) {
			a.writeJSON(req.Context(), writer, http.StatusGone, messageResponse{Message: training.ErrSessionClosed.Error()})
			return
		}
		a.writeJSON(req.Context(), writer, http.StatusAccepted, newEmployeeView(employee))
		return
	}

	if err = session.AddOne(req.Context(), employee); err != nil {
		a.log.WarnContext(req.Context(), "Employee was not added", "id", employee.ID, sl.Err(err))
		a.writeJSON(req.Context(), writer, http.StatusBadGateway, messageResponse{Message: err.Error()})
		return
	}

	a.writeJSON(req.Context(), writer, http.StatusCreated, newEmployeeView(employee))
}

func (a *API) handleRefresh(writer http.ResponseWriter, req *http.Request) {
	if !sessionFrom(req.Context()).RefreshAsync() {
		a.writeJSON(req.Context(), writer, http.StatusGone, messageResponse{Message: training.ErrSessionClosed.Error()})
		return
	}

	writer.WriteHeader(http.StatusAccepted)
}

func (a *API) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		token, found := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
		if !found || token == "" {
			a.writeJSON(req.Context(), writer, http.StatusUnauthorized, messageResponse{Message: "missing bearer token"})
			return
		}

		session, _, ok := a.registry.Get(token)
		if !ok {
			a.writeJSON(req.Context(), writer, http.StatusUnauthorized, messageResponse{Message: "unknown session"})
			return
		}

		ctx := context.WithValue(req.Context(), sessionKey, session)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(writer, req.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *training.Session {
	session, _ := ctx.Value(sessionKey).(*training.Session)
	return session
}

func newEmployeeView(employee models.TrainingEmployee) employeeView {
	return employeeView{TrainingEmployee: employee, Completed: employee.IsCompleted()}
}

func (a *API) writeJSON(ctx context.Context, writer http.ResponseWriter, code int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(code)
	if err := json.NewEncoder(writer).Encode(body); err != nil {
		a.log.ErrorContext(ctx, "Failed to write response", sl.Err(err))
	}
}
