package recommendations

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGInteractionsRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recommendation_interactions")).
		WithArgs("i1", "u1", "rule-attendance", ActionViewed, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGInteractionsRepo{DB: db}
	err = repo.Insert(context.Background(), Interaction{
		ID:               "i1",
		UserID:           "u1",
		RecommendationID: "rule-attendance",
		Action:           ActionViewed,
		CreatedAt:        created,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGInteractionsRepoInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recommendation_interactions")).
		WillReturnError(errors.New("connection reset"))

	repo := &PGInteractionsRepo{DB: db}
	err = repo.Insert(context.Background(), Interaction{ID: "i1"})
	assert.Error(t, err)
}
