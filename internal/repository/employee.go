package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/focuslearn/internal/models"
)

// ListEmployees returns every training employee in insertion order.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.TrainingEmployee, error) {
	defer r.observe("list_employees")()
	query := `SELECT id, name, department, position, course, status FROM training_employees ORDER BY seq`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.TrainingEmployee, 0)
	for rows.Next() {
		var employee models.TrainingEmployee
		if err = rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Department,
			&employee.Position,
			&employee.Course,
			&employee.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// SaveEmployee appends a training employee. Identifiers are not unique, so nothing is deduplicated.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.TrainingEmployee) error {
	defer r.observe("save_employee")()
	query := `
		INSERT INTO training_employees (id, name, department, position, course, status)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.db.Exec(ctx, query,
		employee.ID, employee.Name, employee.Department, employee.Position, employee.Course, employee.Status)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}

	return nil
}
