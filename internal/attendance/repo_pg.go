package attendance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, record Record) error {
	const query = `
INSERT INTO attendance_records (id, student_id, session_id, status, check_in_time)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.StudentID,
		record.SessionID,
		record.Status,
		record.CheckInTime,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCheckIn
		}
		return err
	}
	return nil
}

func (r *PGRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 30
	}
	const query = `
SELECT id, student_id, session_id, status, check_in_time
FROM attendance_records
WHERE student_id = $1
ORDER BY check_in_time DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.SessionID, &rec.Status, &rec.CheckInTime); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
