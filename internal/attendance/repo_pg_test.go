package attendance

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepoInsertMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendance_records")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "attendance_records_student_id_session_id_key"})

	repo := &PGRepo{DB: db}
	err = repo.Insert(context.Background(), Record{ID: "r1", StudentID: "s1", SessionID: "sess1", Status: StatusPresent, CheckInTime: time.Now()})
	assert.ErrorIs(t, err, ErrDuplicateCheckIn)
}

func TestPGRepoListByStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "student_id", "session_id", "status", "check_in_time"}).
		AddRow("r2", "s1", "sess2", StatusLate, now).
		AddRow("r1", "s1", "sess1", StatusPresent, now.Add(-24*time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_records")).
		WithArgs("s1", 30).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	out, err := repo.ListByStudent(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "r2", out[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
