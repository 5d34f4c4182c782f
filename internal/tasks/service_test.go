package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateDefaultsAndValidation(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	task, err := svc.Create(context.Background(), "s1", CreateInput{Title: "  Read chapter 4  "})
	require.NoError(t, err)
	assert.Equal(t, "Read chapter 4", task.Title)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)

	_, err = svc.Create(context.Background(), "s1", CreateInput{Title: "   "})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), "s1", CreateInput{Title: "x", Priority: "urgent"})
	assert.Error(t, err)
}

func TestUpdateEnforcesOwnership(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	task, err := svc.Create(context.Background(), "s1", CreateInput{Title: "Essay draft"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "s2", task.ID, UpdateInput{Status: strPtr(StatusCompleted)})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(context.Background(), "s1", task.ID, UpdateInput{Status: strPtr(StatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	task, err := svc.Create(context.Background(), "s1", CreateInput{Title: "Lab report"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), "s2", task.ID), ErrForbidden)
	assert.NoError(t, svc.Delete(context.Background(), "s1", task.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), "s1", task.ID), ErrNotFound)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, Task{Status: StatusPending, DueDate: &past}.IsOverdue(now))
	assert.False(t, Task{Status: StatusCompleted, DueDate: &past}.IsOverdue(now))
	assert.False(t, Task{Status: StatusPending, DueDate: &future}.IsOverdue(now))
	assert.False(t, Task{Status: StatusPending}.IsOverdue(now))
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	items := []Task{
		{Status: StatusCompleted},
		{Status: StatusCompleted},
		{Status: StatusPending, DueDate: &past},
		{Status: StatusInProgress},
	}
	sum := Summarize(items, now)
	assert.Equal(t, 4, sum.TotalTasks)
	assert.Equal(t, 2, sum.CompletedCount)
	assert.Equal(t, 1, sum.PendingCount)
	assert.Equal(t, 1, sum.OverdueCount)
	assert.InDelta(t, 50.0, sum.CompletionRate, 0.01)
}

func TestSummarizeEmptyList(t *testing.T) {
	sum := Summarize(nil, time.Now())
	assert.InDelta(t, 100.0, sum.CompletionRate, 0.01)
}
