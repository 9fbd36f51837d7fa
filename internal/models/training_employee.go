package models

const (
	// StatusCompleted is the only status value rendered differently by clients.
	StatusCompleted = "완료"
	// StatusInProgress is used when a new record is created without an explicit status.
	StatusInProgress = "진행 중"
)

// TrainingEmployee represents the compliance-training status of a single employee.
type TrainingEmployee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Course     string `json:"course"`
	Status     string `json:"status"`
}

// IsCompleted reports whether the employee has finished the assigned course.
func (e TrainingEmployee) IsCompleted() bool {
	return e.Status == StatusCompleted
}
