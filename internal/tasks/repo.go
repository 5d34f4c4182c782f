package tasks

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "task not found" }

type Repo interface {
	Create(ctx context.Context, task Task) error
	GetByID(ctx context.Context, taskID string) (Task, error)
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, taskID string) error
	ListByStudent(ctx context.Context, studentID string, limit int) ([]Task, error)
}
