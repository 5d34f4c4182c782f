package schedule

import "context"

type Repo interface {
	ListByStudent(ctx context.Context, studentID string) ([]Entry, error)
}
