package tasks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("task belongs to another student")

type Service struct {
	Repo Repo
}

type CreateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

type UpdateInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

func (s *Service) Create(ctx context.Context, studentID string, in CreateInput) (Task, error) {
	if studentID == "" {
		return Task{}, errors.New("studentID is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return Task{}, errors.New("title is required")
	}
	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return Task{}, errors.New("invalid priority")
	}
	now := time.Now().UTC()
	task := Task{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Status:      StatusPending,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (s *Service) Update(ctx context.Context, studentID, taskID string, in UpdateInput) (Task, error) {
	task, err := s.Repo.GetByID(ctx, taskID)
	if err != nil {
		return Task{}, err
	}
	if task.StudentID != studentID {
		return Task{}, ErrForbidden
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return Task{}, errors.New("title cannot be empty")
		}
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		if !ValidStatus(*in.Status) {
			return Task{}, errors.New("invalid status")
		}
		task.Status = *in.Status
	}
	if in.Priority != nil {
		if !ValidPriority(*in.Priority) {
			return Task{}, errors.New("invalid priority")
		}
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (s *Service) Delete(ctx context.Context, studentID, taskID string) error {
	task, err := s.Repo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.StudentID != studentID {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, taskID)
}

func (s *Service) List(ctx context.Context, studentID string) ([]Task, error) {
	if studentID == "" {
		return nil, errors.New("studentID is required")
	}
	return s.Repo.ListByStudent(ctx, studentID, 100)
}

// Summary summarizes the student's tasks as of now.
func (s *Service) Summary(ctx context.Context, studentID string) (Summary, error) {
	items, err := s.List(ctx, studentID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items, time.Now().UTC()), nil
}
