package schedule

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) ListByStudent(ctx context.Context, studentID string) ([]Entry, error) {
	const query = `
SELECT s.id, s.student_id, s.class_id, c.name, s.weekday
FROM schedules s
JOIN classes c ON c.id = s.class_id
WHERE s.student_id = $1
ORDER BY s.weekday, c.name`
	rows, err := r.DB.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.StudentID, &e.ClassID, &e.ClassName, &e.Weekday); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
