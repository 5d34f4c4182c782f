package profiles

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// UpsertFromLogin records or refreshes a profile after an OAuth login.
// New profiles default to the student role; existing roles are preserved.
func (s *Service) UpsertFromLogin(ctx context.Context, profile Profile) (Profile, error) {
	if strings.TrimSpace(profile.ID) == "" {
		return Profile{}, errors.New("profile id is required")
	}
	existing, err := s.repo.GetByID(ctx, profile.ID)
	switch {
	case err == nil:
		profile.Role = existing.Role
	case errors.Is(err, ErrNotFound):
		if profile.Role == "" {
			profile.Role = RoleStudent
		}
	default:
		return Profile{}, err
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return Profile{}, err
	}
	return s.repo.GetByID(ctx, profile.ID)
}

func (s *Service) GetByID(ctx context.Context, profileID string) (Profile, error) {
	if profileID == "" {
		return Profile{}, errors.New("profileID is required")
	}
	return s.repo.GetByID(ctx, profileID)
}

// ListStudents returns student profiles for counselor views.
func (s *Service) ListStudents(ctx context.Context, limit, offset int) ([]Profile, error) {
	return s.repo.ListByRole(ctx, RoleStudent, limit, offset)
}
