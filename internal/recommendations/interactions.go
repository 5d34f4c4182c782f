package recommendations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Interaction actions.
const (
	ActionViewed    = "viewed"
	ActionDismissed = "dismissed"
	ActionActedUpon = "acted_upon"
)

// Interaction records a user's reaction to a shown recommendation. Pure
// telemetry: duplicates are stored as-is, nothing reads these back on the
// generation path.
type Interaction struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	RecommendationID string    `json:"recommendationId"`
	Action           string    `json:"action"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ValidAction reports whether a is a known interaction action.
func ValidAction(a string) bool {
	switch a {
	case ActionViewed, ActionDismissed, ActionActedUpon:
		return true
	default:
		return false
	}
}

type InteractionsRepo interface {
	Insert(ctx context.Context, interaction Interaction) error
}

// Tracker appends interaction records. No dedup, no read-modify-write;
// at-least-once is acceptable for telemetry.
type Tracker struct {
	Repo InteractionsRepo
}

func NewTracker(repo InteractionsRepo) *Tracker {
	return &Tracker{Repo: repo}
}

// Record stores one interaction with a server-assigned id and timestamp.
// Store failures are returned to the caller: telemetry loss stays visible.
func (t *Tracker) Record(ctx context.Context, userID, recommendationID, action string) (Interaction, error) {
	if strings.TrimSpace(recommendationID) == "" {
		return Interaction{}, fmt.Errorf("recommendation id is required")
	}
	if !ValidAction(action) {
		return Interaction{}, fmt.Errorf("unknown interaction action %q", action)
	}
	interaction := Interaction{
		ID:               uuid.NewString(),
		UserID:           userID,
		RecommendationID: recommendationID,
		Action:           action,
		CreatedAt:        time.Now().UTC(),
	}
	if err := t.Repo.Insert(ctx, interaction); err != nil {
		return Interaction{}, fmt.Errorf("store interaction: %w", err)
	}
	return interaction, nil
}
