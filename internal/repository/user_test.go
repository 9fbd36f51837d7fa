package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	getUserByUsernameQuery = `SELECT username, email FROM users WHERE username=$1 LIMIT 1`
	getPasswordHashQuery   = `SELECT password_hash FROM users WHERE email=$1`
	saveUserQuery          = `INSERT INTO users (username, email, password_hash)`
)

func TestGetUserByUsername_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	expected := models.User{Username: "bob", Email: "bob@example.com"}
	mock.ExpectQuery(regexp.QuoteMeta(getUserByUsernameQuery)).
		WithArgs("bob").
		WillReturnRows(pgxmock.NewRows([]string{"username", "email"}).AddRow(expected.Username, expected.Email))

	repo := repository.NewUserRepository(mock, newTestMetrics())
	actual, err := repo.GetUserByUsername(context.Background(), "bob")

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getUserByUsernameQuery)).
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{"username", "email"}))

	repo := repository.NewUserRepository(mock, newTestMetrics())
	actual, err := repo.GetUserByUsername(context.Background(), "ghost")

	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, models.User{}, actual)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getUserByUsernameQuery)).
		WithArgs("bob").
		WillReturnError(assert.AnError)

	repo := repository.NewUserRepository(mock, newTestMetrics())
	_, err = repo.GetUserByUsername(context.Background(), "bob")

	require.EqualError(t, err, "failed to get user by username: "+assert.AnError.Error())
	require.NotErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPasswordHash(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(getPasswordHashQuery)).
			WithArgs("bob@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"password_hash"}).AddRow("$2a$10$hash"))

		repo := repository.NewUserRepository(mock, newTestMetrics())
		hash, err := repo.GetPasswordHash(context.Background(), "bob@example.com")

		require.NoError(t, err)
		assert.Equal(t, "$2a$10$hash", hash)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(getPasswordHashQuery)).
			WithArgs("nobody@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"password_hash"}))

		repo := repository.NewUserRepository(mock, newTestMetrics())
		_, err = repo.GetPasswordHash(context.Background(), "nobody@example.com")

		require.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(getPasswordHashQuery)).
			WithArgs("bob@example.com").
			WillReturnError(assert.AnError)

		repo := repository.NewUserRepository(mock, newTestMetrics())
		_, err = repo.GetPasswordHash(context.Background(), "bob@example.com")

		require.ErrorIs(t, err, assert.AnError)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaveUser(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	user := models.User{Username: "bob", Email: "bob@example.com"}
	mock.ExpectExec(regexp.QuoteMeta(saveUserQuery)).
		WithArgs(user.Username, user.Email, "hash").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(saveUserQuery)).
		WithArgs(user.Username, user.Email, "hash").
		WillReturnError(assert.AnError)

	repo := repository.NewUserRepository(mock, newTestMetrics())

	require.NoError(t, repo.SaveUser(context.Background(), user, "hash"))
	require.EqualError(t, repo.SaveUser(context.Background(), user, "hash"),
		"failed to save user: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
