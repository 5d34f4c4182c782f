package recommendations

import (
	"context"
	"errors"
	"time"

	"campus-backend/internal/shared/metrics"
	"campus-backend/internal/shared/telemetry"
)

// Tier identifies which waterfall stage produced a result.
type Tier string

const (
	TierLLM      Tier = "llm"
	TierRules    Tier = "rules"
	TierDefaults Tier = "defaults"
)

// Generator is the model-backed generation capability. Implementations are
// expected to be unreliable: any error advances the waterfall.
type Generator interface {
	GenerateRecommendations(ctx context.Context, features FeatureSet, recommendationType string, count int) ([]Recommendation, error)
}

// FeatureSource abstracts the aggregator for the orchestrator.
type FeatureSource interface {
	Aggregate(ctx context.Context, studentID string) (FeatureSet, error)
}

// Result is one generation outcome with the tier that produced it.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Tier            Tier             `json:"tier"`
}

// Orchestrator runs the three-tier waterfall: model call, then rule engine,
// then static defaults. Generator may be nil, which skips the model tier.
type Orchestrator struct {
	Features  FeatureSource
	Generator Generator
}

func NewOrchestrator(features FeatureSource, generator Generator) *Orchestrator {
	return &Orchestrator{Features: features, Generator: generator}
}

// GenerateFor produces a bounded, non-empty recommendation list for one
// student. Every expected failure mode is recovered internally by advancing
// the waterfall; the caller never sees an error, only the defaults tier.
func (o *Orchestrator) GenerateFor(ctx context.Context, studentID string) Result {
	features, err := o.Features.Aggregate(ctx, studentID)
	if err != nil {
		if !errors.Is(err, ErrStudentNotFound) {
			telemetry.Error("recommendations.aggregate_failed", map[string]any{"student_id": studentID, "error": err.Error()})
		}
		return o.finish(studentID, DefaultRecommendations(), TierDefaults)
	}

	if o.Generator != nil {
		start := time.Now()
		items, err := o.Generator.GenerateRecommendations(ctx, features, "diverse", MaxRecommendations)
		metrics.ObserveLLMDurationMs(float64(time.Since(start).Milliseconds()))
		switch {
		case err != nil:
			telemetry.Info("recommendations.llm_tier_skipped", map[string]any{"student_id": studentID, "reason": err.Error()})
		case len(items) == 0:
			telemetry.Info("recommendations.llm_tier_empty", map[string]any{"student_id": studentID})
		default:
			return o.finish(studentID, truncate(items), TierLLM)
		}
	}

	if items := Evaluate(features, time.Now().UTC()); len(items) > 0 {
		return o.finish(studentID, truncate(items), TierRules)
	}

	return o.finish(studentID, DefaultRecommendations(), TierDefaults)
}

func (o *Orchestrator) finish(studentID string, items []Recommendation, tier Tier) Result {
	metrics.IncRecommendationTier(string(tier))
	telemetry.Info("recommendations.generated", map[string]any{
		"student_id": studentID,
		"tier":       string(tier),
		"count":      len(items),
	})
	return Result{Recommendations: truncate(items), Tier: tier}
}

func truncate(items []Recommendation) []Recommendation {
	if len(items) > MaxRecommendations {
		return items[:MaxRecommendations]
	}
	return items
}
