package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-academy/academy-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestCreateRegistration(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectQuery("INSERT INTO registrations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	reg := &models.Registration{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "555-0100",
	}
	err := repo.Create(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, int64(42), reg.ID)
	assert.False(t, reg.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRegistrationDuplicateEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectQuery("INSERT INTO registrations").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.Registration{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "555-0100",
	})
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRegistrations(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	now := time.Now()
	columns := []string{"id", "full_name", "email", "phone_number", "contact_method", "age", "skill_category", "experience", "employment_status", "lecture_time", "learning_method", "motivation", "created_at"}
	rows := sqlmock.NewRows(columns).
		AddRow(int64(2), "B", "b@example.com", "2", "", "", "", "", "", "", "", "", now).
		AddRow(int64(1), "A", "a@example.com", "1", "", "", "", "", "", "", "", "", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM registrations ORDER BY created_at DESC LIMIT 20 OFFSET 0").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM registrations")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	registrations, total, err := repo.List(context.Background(), models.RegistrationFilter{})
	require.NoError(t, err)
	assert.Len(t, registrations, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, int64(2), registrations[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
