package training_test

import (
	"testing"

	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/services/training"
	"github.com/UnknownOlympus/focuslearn/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	session := newSession(store.NewMemory(nil, seeded(2)))
	defer session.Close()
	require.NoError(t, session.Refresh(t.Context()))

	t.Run("fills defaults", func(t *testing.T) {
		employee, err := session.Build(training.Candidate{Name: "  박민수 ", Department: "개발부"})

		require.NoError(t, err)
		assert.Equal(t, models.TrainingEmployee{
			ID:         "1003",
			Name:       "박민수",
			Department: "개발부",
			Status:     models.StatusInProgress,
		}, employee)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		employee, err := session.Build(training.Candidate{
			ID: "A-7", Name: "최지우", Position: "부장", Course: "산업안전법", Status: models.StatusCompleted,
		})

		require.NoError(t, err)
		assert.Equal(t, "A-7", employee.ID)
		assert.True(t, employee.IsCompleted())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := session.Build(training.Candidate{Department: "개발부"})

		require.ErrorIs(t, err, training.ErrEmptyName)
	})
}
