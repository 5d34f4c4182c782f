package interventions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-backend/internal/attendance"
	"campus-backend/internal/llm"
	"campus-backend/internal/profiles"
	"campus-backend/internal/tasks"
)

type stubGenerator struct {
	items []Suggestion
	err   error
}

func (s stubGenerator) GenerateInterventions(ctx context.Context, input GenerateInput, count int) ([]Suggestion, error) {
	return s.items, s.err
}

func seedStudent(t *testing.T, repo *profiles.MemoryRepo, id, name string) {
	t.Helper()
	err := repo.Upsert(context.Background(), profiles.Profile{
		ID:       id,
		Email:    id + "@campus.test",
		FullName: name,
		Role:     profiles.RoleStudent,
	})
	require.NoError(t, err)
}

func newTestService(gen Generator) (*Service, *profiles.MemoryRepo, *attendance.MemoryRepo) {
	p := profiles.NewMemoryRepo()
	a := attendance.NewMemoryRepo()
	return NewService(p, a, tasks.NewMemoryRepo(), gen), p, a
}

func TestSuggestUnknownStudent(t *testing.T) {
	svc, _, _ := newTestService(nil)
	_, err := svc.Suggest(context.Background(), "missing", "")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestSuggestPrefersLLMTier(t *testing.T) {
	llmOut := []Suggestion{{
		ID:          "ai-1",
		Type:        TypeBehavioral,
		Title:       "Routine Reset",
		Description: "Rebuild the morning routine around the first class.",
		Urgency:     UrgencySoon,
	}}
	svc, p, _ := newTestService(stubGenerator{items: llmOut})
	seedStudent(t, p, "s1", "Ada Jones")

	result, err := svc.Suggest(context.Background(), "s1", "")
	require.NoError(t, err)
	assert.Equal(t, TierLLM, result.Tier)
	assert.Equal(t, llmOut, result.Suggestions)
}

func TestSuggestFallsBackToRules(t *testing.T) {
	svc, p, a := newTestService(stubGenerator{err: llm.Transport(errors.New("timeout"))})
	seedStudent(t, p, "s1", "Ada Jones")

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		status := attendance.StatusAbsent
		if i == 0 {
			status = attendance.StatusPresent
		}
		err := a.Insert(context.Background(), attendance.Record{
			ID:          uuid.NewString(),
			StudentID:   "s1",
			SessionID:   uuid.NewString(),
			Status:      status,
			CheckInTime: base.Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
	}

	result, err := svc.Suggest(context.Background(), "s1", "missed three in a row")
	require.NoError(t, err)
	assert.Equal(t, TierRules, result.Tier)
	require.NotEmpty(t, result.Suggestions)
	assert.Equal(t, TypeAttendance, result.Suggestions[0].Type)
	assert.InDelta(t, 25.0, result.Student.AttendanceRate, 0.01)
}

func TestSuggestNilGeneratorUsesRules(t *testing.T) {
	svc, p, _ := newTestService(nil)
	seedStudent(t, p, "s1", "Ben Okoro")

	result, err := svc.Suggest(context.Background(), "s1", "")
	require.NoError(t, err)
	assert.Equal(t, TierRules, result.Tier)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, UrgencyMonitoring, result.Suggestions[0].Urgency)
}
