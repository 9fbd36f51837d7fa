package training

import (
	"errors"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/focuslearn/internal/models"
)

// ErrEmptyName is returned for a candidate without a name.
var ErrEmptyName = errors.New("employee name is required")

// idPrefix matches the identifiers handed out by the mobile client ("100" + running count).
const idPrefix = "100"

// Candidate is the user input for a new training employee.
type Candidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Course     string `json:"course"`
	Status     string `json:"status"`
}

// Build turns a candidate into an employee ready for AddOne. An empty status becomes
// "in progress" and an empty ID is derived from the held count. Identifiers are not
// checked for uniqueness.
func (s *Session) Build(candidate Candidate) (models.TrainingEmployee, error) {
	name := strings.TrimSpace(candidate.Name)
	if name == "" {
		return models.TrainingEmployee{}, ErrEmptyName
	}

	employee := models.TrainingEmployee{
		ID:         strings.TrimSpace(candidate.ID),
		Name:       name,
		Department: strings.TrimSpace(candidate.Department),
		Position:   strings.TrimSpace(candidate.Position),
		Course:     strings.TrimSpace(candidate.Course),
		Status:     strings.TrimSpace(candidate.Status),
	}

	if employee.Status == "" {
		employee.Status = models.StatusInProgress
	}
	if employee.ID == "" {
		employee.ID = idPrefix + strconv.Itoa(s.Count()+1)
	}

	return employee, nil
}
