package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/UnknownOlympus/focuslearn/internal/auth"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/repository"
	"github.com/UnknownOlympus/focuslearn/internal/store"
	"github.com/tamathecxder/randomail"
)

var ErrEmptyUser = errors.New("username and password are required")

// ReferenceEmployees returns the two rows every preview starts with.
func ReferenceEmployees() []models.TrainingEmployee {
	return []models.TrainingEmployee{
		{ID: "1001", Name: "김철수", Department: "인사부", Position: "사원", Course: "개인정보보호법", Status: models.StatusCompleted},
		{ID: "1002", Name: "이영희", Department: "영업부", Position: "대리", Course: "산업안전법", Status: models.StatusInProgress},
	}
}

var (
	demoDepartments = []string{"인사부", "영업부", "개발부", "재무부", "총무부"}
	demoPositions   = []string{"사원", "대리", "과장", "차장", "부장"}
	demoCourses     = []string{"개인정보보호법", "산업안전법", "성희롱 예방", "장애인 인식개선", "퇴직연금"}
)

// DemoEmployees deterministically generates n rows whose ids continue after the reference rows.
// Every third row is completed.
func DemoEmployees(n int) []models.TrainingEmployee {
	employees := make([]models.TrainingEmployee, 0, max(n, 0))
	offset := len(ReferenceEmployees())

	for idx := range max(n, 0) {
		seq := offset + idx + 1
		status := models.StatusInProgress
		if seq%3 == 0 {
			status = models.StatusCompleted
		}

		employees = append(employees, models.TrainingEmployee{
			ID:         "100" + strconv.Itoa(seq),
			Name:       "직원 " + strconv.Itoa(seq),
			Department: demoDepartments[idx%len(demoDepartments)],
			Position:   demoPositions[idx%len(demoPositions)],
			Course:     demoCourses[idx%len(demoCourses)],
			Status:     status,
		})
	}

	return employees
}

// Account is a user together with the plain password it signs in with.
type Account struct {
	User     models.User
	Password string
}

// NewAccount validates the input and generates a placeholder email when none is given.
func NewAccount(log *slog.Logger, username, email, password string) (Account, error) {
	if username == "" || password == "" {
		return Account{}, ErrEmptyUser
	}

	if email == "" {
		email = randomail.GenerateRandomEmail()
		log.Info("Email was not specified, generated a random one", "username", username, "email", email)
	}

	return Account{User: models.User{Username: username, Email: email}, Password: password}, nil
}

// Memory builds the in-memory backend with the reference rows, n demo rows and the given accounts.
func Memory(n int, accounts ...Account) *store.Memory {
	credentials := make([]store.Credential, 0, len(accounts))
	for _, account := range accounts {
		credentials = append(credentials, store.Credential{User: account.User, Password: account.Password})
	}

	return store.NewMemory(credentials, append(ReferenceEmployees(), DemoEmployees(n)...))
}

// Postgres writes accounts (with bcrypt hashes) and employees through the repositories.
func Postgres(
	ctx context.Context,
	log *slog.Logger,
	users repository.UserRepoIface,
	employees repository.EmployeeRepoIface,
	accounts []Account,
	rows []models.TrainingEmployee,
) error {
	const opn = "Seed.Postgres"
	log = log.With(slog.String("op", opn), slog.String("division", "seed"))

	for _, account := range accounts {
		hash, err := auth.HashPassword(account.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password of %s: %w", account.User.Username, err)
		}
		if err = users.SaveUser(ctx, account.User, hash); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", account.User.Username, err)
		}
		log.InfoContext(ctx, "User seeded", "username", account.User.Username, "email", account.User.Email)
	}

	for _, row := range rows {
		if err := employees.SaveEmployee(ctx, row); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", row.ID, err)
		}
	}
	log.InfoContext(ctx, "Employees seeded", "value", len(rows))

	return nil
}
