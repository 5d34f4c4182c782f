package profiles

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (id, email, full_name, role, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = EXCLUDED.full_name,
  picture_url = EXCLUDED.picture_url,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		profile.ID,
		profile.Email,
		nullableString(profile.FullName),
		profile.Role,
		nullableString(profile.PictureURL),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, profileID string) (Profile, error) {
	const query = `
SELECT id, email, full_name, role, picture_url, created_at, updated_at
FROM profiles
WHERE id = $1
LIMIT 1`
	var profile Profile
	var fullName sql.NullString
	var pictureURL sql.NullString
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, profileID).Scan(
		&profile.ID,
		&profile.Email,
		&fullName,
		&profile.Role,
		&pictureURL,
		&profile.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if fullName.Valid {
		profile.FullName = fullName.String
	}
	if pictureURL.Valid {
		profile.PictureURL = pictureURL.String
	}
	if updatedAt.Valid {
		profile.UpdatedAt = updatedAt.Time
	} else {
		profile.UpdatedAt = time.Now().UTC()
	}
	return profile, nil
}

func (r *PGRepo) ListByRole(ctx context.Context, role string, limit, offset int) ([]Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
SELECT id, email, full_name, role, picture_url, created_at, updated_at
FROM profiles
WHERE role = $1
ORDER BY full_name NULLS LAST, id
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, role, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var profile Profile
		var fullName sql.NullString
		var pictureURL sql.NullString
		if err := rows.Scan(
			&profile.ID,
			&profile.Email,
			&fullName,
			&profile.Role,
			&pictureURL,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if fullName.Valid {
			profile.FullName = fullName.String
		}
		if pictureURL.Valid {
			profile.PictureURL = pictureURL.String
		}
		out = append(out, profile)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
