package attendance

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateCheckIn means a record already exists for the same student and session.
	ErrDuplicateCheckIn = errors.New("already checked in for this session")
)

type Repo interface {
	Insert(ctx context.Context, record Record) error
	ListByStudent(ctx context.Context, studentID string, limit int) ([]Record, error)
}
