package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

// CheckIn records one attendance event. A second check-in for the same
// session is rejected with ErrDuplicateCheckIn.
func (s *Service) CheckIn(ctx context.Context, studentID, sessionID, status string) (Record, error) {
	if studentID == "" || sessionID == "" {
		return Record{}, errors.New("studentID and sessionID are required")
	}
	if status == "" {
		status = StatusPresent
	}
	if !ValidStatus(status) {
		return Record{}, errors.New("invalid attendance status")
	}
	record := Record{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		SessionID:   sessionID,
		Status:      status,
		CheckInTime: time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Recent returns the student's most recent records, newest first.
func (s *Service) Recent(ctx context.Context, studentID string, limit int) ([]Record, error) {
	if studentID == "" {
		return nil, errors.New("studentID is required")
	}
	return s.Repo.ListByStudent(ctx, studentID, limit)
}

// Summary summarizes the student's recent attendance window.
func (s *Service) Summary(ctx context.Context, studentID string, window int) (Summary, error) {
	records, err := s.Recent(ctx, studentID, window)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records), nil
}
