package tasks

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, task Task) error {
	const query = `
INSERT INTO tasks (id, student_id, title, description, status, priority, due_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		task.ID,
		task.StudentID,
		task.Title,
		nullableString(task.Description),
		task.Status,
		task.Priority,
		task.DueDate,
		task.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, taskID string) (Task, error) {
	const query = `
SELECT id, student_id, title, description, status, priority, due_date, created_at, updated_at
FROM tasks
WHERE id = $1
LIMIT 1`
	task, err := scanTask(r.DB.QueryRowContext(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *PGRepo) Update(ctx context.Context, task Task) error {
	const query = `
UPDATE tasks
SET title = $2, description = $3, status = $4, priority = $5, due_date = $6, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		task.ID,
		task.Title,
		nullableString(task.Description),
		task.Status,
		task.Priority,
		task.DueDate,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, taskID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]Task, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
SELECT id, student_id, title, description, status, priority, due_date, created_at, updated_at
FROM tasks
WHERE student_id = $1
ORDER BY due_date ASC NULLS LAST, created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (Task, error) {
	var task Task
	var description sql.NullString
	var dueDate sql.NullTime
	if err := row.Scan(
		&task.ID,
		&task.StudentID,
		&task.Title,
		&description,
		&task.Status,
		&task.Priority,
		&dueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return Task{}, err
	}
	if description.Valid {
		task.Description = description.String
	}
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}
	return task, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
