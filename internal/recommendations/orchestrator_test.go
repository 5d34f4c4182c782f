package recommendations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-backend/internal/llm"
)

type stubFeatures struct {
	features FeatureSet
	err      error
}

func (s stubFeatures) Aggregate(ctx context.Context, studentID string) (FeatureSet, error) {
	return s.features, s.err
}

type stubGenerator struct {
	items []Recommendation
	err   error
	calls int
}

func (s *stubGenerator) GenerateRecommendations(ctx context.Context, features FeatureSet, recommendationType string, count int) ([]Recommendation, error) {
	s.calls++
	return s.items, s.err
}

func llmItems(n int) []Recommendation {
	out := make([]Recommendation, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Recommendation{
			ID:          "ai-" + string(rune('1'+i)),
			Type:        TypeStudyTip,
			Title:       "Tip",
			Description: "Do the thing.",
			Priority:    PriorityMedium,
			Actionable:  true,
		})
	}
	return out
}

func TestGenerateForUnknownStudentUsesDefaults(t *testing.T) {
	orch := NewOrchestrator(stubFeatures{err: ErrStudentNotFound}, &stubGenerator{items: llmItems(2)})
	result := orch.GenerateFor(context.Background(), "missing")
	assert.Equal(t, TierDefaults, result.Tier)
	assert.Equal(t, DefaultRecommendations(), result.Recommendations)
}

func TestGenerateForPrefersLLMTier(t *testing.T) {
	gen := &stubGenerator{items: llmItems(6)}
	orch := NewOrchestrator(stubFeatures{features: FeatureSet{StudentID: "s1", AttendanceRate: 50}}, gen)

	result := orch.GenerateFor(context.Background(), "s1")
	assert.Equal(t, TierLLM, result.Tier)
	require.Len(t, result.Recommendations, MaxRecommendations)
	assert.Equal(t, llmItems(6)[:MaxRecommendations], result.Recommendations)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateForFallsBackOnUpstreamError(t *testing.T) {
	gen := &stubGenerator{err: llm.Unparsable(errors.New("no array"))}
	features := FeatureSet{StudentID: "s1", AttendanceRate: 60}
	orch := NewOrchestrator(stubFeatures{features: features}, gen)

	result := orch.GenerateFor(context.Background(), "s1")
	assert.Equal(t, TierRules, result.Tier)
	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, TypeAttendanceImprovement, result.Recommendations[0].Type)
}

func TestGenerateForFallsBackOnEmptyLLMResult(t *testing.T) {
	gen := &stubGenerator{items: nil}
	orch := NewOrchestrator(stubFeatures{features: FeatureSet{StudentID: "s1", AttendanceRate: 95}}, gen)

	result := orch.GenerateFor(context.Background(), "s1")
	assert.Equal(t, TierRules, result.Tier)
}

func TestGenerateForHealthyStudentWithoutGenerator(t *testing.T) {
	features := FeatureSet{StudentID: "s1", AttendanceRate: 95, Tasks: []TaskFeature{
		{Status: "completed"}, {Status: "completed"}, {Status: "completed"},
		{Status: "completed"}, {Status: "completed"}, {Status: "completed"},
		{Status: "completed"}, {Status: "completed"}, {Status: "completed"},
		{Status: "pending"},
	}}
	orch := NewOrchestrator(stubFeatures{features: features}, nil)

	result := orch.GenerateFor(context.Background(), "s1")
	assert.Equal(t, TierRules, result.Tier)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, TypeStudyTip, result.Recommendations[0].Type)
}

func TestGenerateForNeverEmptyAlwaysBounded(t *testing.T) {
	cases := []struct {
		name string
		orch *Orchestrator
	}{
		{"not found", NewOrchestrator(stubFeatures{err: ErrStudentNotFound}, nil)},
		{"llm transport error", NewOrchestrator(stubFeatures{features: FeatureSet{StudentID: "s1", AttendanceRate: 10}}, &stubGenerator{err: llm.Transport(errors.New("timeout"))})},
		{"llm ok", NewOrchestrator(stubFeatures{features: FeatureSet{StudentID: "s1", AttendanceRate: 90}}, &stubGenerator{items: llmItems(1)})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.orch.GenerateFor(context.Background(), "s1")
			assert.GreaterOrEqual(t, len(result.Recommendations), 1)
			assert.LessOrEqual(t, len(result.Recommendations), MaxRecommendations)
		})
	}
}
