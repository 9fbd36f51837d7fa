// Package store defines the data access boundary of the application.
//
// Implementations never return errors: a backend failure is reported the same way as a
// legitimate miss (absent user, rejected credentials, empty list, failed write).
package store

import (
	"context"

	"github.com/UnknownOlympus/focuslearn/internal/models"
)

// Store is the data access port used by the login flow and the training sessions.
type Store interface {
	// LookupUserByName returns the first user with the given username.
	LookupUserByName(ctx context.Context, name string) (models.User, bool)
	// Authenticate reports whether the email/password pair is valid.
	Authenticate(ctx context.Context, email, password string) bool
	// ListEmployees returns every training employee in insertion order.
	ListEmployees(ctx context.Context) []models.TrainingEmployee
	// AddEmployee appends an employee and reports whether the write succeeded.
	AddEmployee(ctx context.Context, employee models.TrainingEmployee) bool
}

const (
	opLookupUser    = "lookup_user"
	opAuthenticate  = "authenticate"
	opListEmployees = "list_employees"
	opAddEmployee   = "add_employee"
)
