package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"campus-backend/internal/interventions"
	"campus-backend/internal/llm"
	"campus-backend/internal/recommendations"
)

// parsedItem is the loose shape of one model-produced item. Every field is
// optional at the parse boundary; normalization promotes it to the strict
// domain shape or drops it. The loose type never leaks past this package.
type parsedItem struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Priority        string `json:"priority"`
	Actionable      *bool  `json:"actionable"`
	EstimatedImpact string `json:"estimated_impact"`
	Category        string `json:"category"`
	Approach        string `json:"approach"`
	Urgency         string `json:"urgency"`
	ExpectedOutcome string `json:"expected_outcome"`
	FollowUp        string `json:"follow_up"`
}

// GenerateRecommendations implements the recommendations generator contract.
func (c *Client) GenerateRecommendations(ctx context.Context, features recommendations.FeatureSet, recommendationType string, count int) ([]recommendations.Recommendation, error) {
	if count <= 0 {
		count = recommendations.MaxRecommendations
	}
	content, err := c.complete(ctx, buildRecommendationPrompt(features, recommendationType, count))
	if err != nil {
		return nil, err
	}
	items, err := parseItems(content)
	if err != nil {
		return nil, err
	}
	return normalizeRecommendations(items, count), nil
}

// GenerateInterventions implements the interventions generator contract.
func (c *Client) GenerateInterventions(ctx context.Context, input interventions.GenerateInput, count int) ([]interventions.Suggestion, error) {
	if count <= 0 {
		count = interventions.MaxSuggestions
	}
	content, err := c.complete(ctx, buildInterventionPrompt(input, count))
	if err != nil {
		return nil, err
	}
	items, err := parseItems(content)
	if err != nil {
		return nil, err
	}
	return normalizeSuggestions(items, count), nil
}

// parseItems locates the JSON array in free-text model output and decodes it.
// An empty array is a valid (empty) result; anything unlocatable or
// undecodable is an unparsable upstream failure, never a guess.
func parseItems(content string) ([]parsedItem, error) {
	raw, ok := llm.ExtractJSONArray(content)
	if !ok {
		return nil, llm.Unparsable(fmt.Errorf("no JSON array in model output"))
	}
	var items []parsedItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, llm.Unparsable(fmt.Errorf("decode model output: %w", err))
	}
	return items, nil
}

// normalizeRecommendations promotes loose items to the strict shape. Missing
// id, type, priority, and actionable get defaults; items without a title or
// description are dropped rather than invented.
func normalizeRecommendations(items []parsedItem, count int) []recommendations.Recommendation {
	out := make([]recommendations.Recommendation, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		description := strings.TrimSpace(item.Description)
		if title == "" || description == "" {
			continue
		}
		rec := recommendations.Recommendation{
			ID:              strings.TrimSpace(item.ID),
			Type:            strings.TrimSpace(item.Type),
			Title:           title,
			Description:     description,
			Priority:        strings.TrimSpace(item.Priority),
			Actionable:      true,
			EstimatedImpact: strings.TrimSpace(item.EstimatedImpact),
			Category:        strings.TrimSpace(item.Category),
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("ai-%d", len(out)+1)
		}
		if !recommendations.ValidType(rec.Type) {
			rec.Type = recommendations.TypeStudyTip
		}
		if !recommendations.ValidPriority(rec.Priority) {
			rec.Priority = recommendations.PriorityMedium
		}
		if item.Actionable != nil {
			rec.Actionable = *item.Actionable
		}
		out = append(out, rec)
		if len(out) == count {
			break
		}
	}
	return out
}

// normalizeSuggestions is the intervention-side analogue.
func normalizeSuggestions(items []parsedItem, count int) []interventions.Suggestion {
	out := make([]interventions.Suggestion, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		description := strings.TrimSpace(item.Description)
		if title == "" || description == "" {
			continue
		}
		sug := interventions.Suggestion{
			ID:              strings.TrimSpace(item.ID),
			Type:            strings.TrimSpace(item.Type),
			Title:           title,
			Description:     description,
			Approach:        strings.TrimSpace(item.Approach),
			Urgency:         strings.TrimSpace(item.Urgency),
			ExpectedOutcome: strings.TrimSpace(item.ExpectedOutcome),
			FollowUp:        strings.TrimSpace(item.FollowUp),
		}
		if sug.ID == "" {
			sug.ID = fmt.Sprintf("ai-%d", len(out)+1)
		}
		if !interventions.ValidType(sug.Type) {
			sug.Type = interventions.TypePersonal
		}
		if !interventions.ValidUrgency(sug.Urgency) {
			sug.Urgency = interventions.UrgencyMonitoring
		}
		out = append(out, sug)
		if len(out) == count {
			break
		}
	}
	return out
}

var (
	_ recommendations.Generator = (*Client)(nil)
	_ interventions.Generator   = (*Client)(nil)
)
