package recommendations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRecordsDuplicates(t *testing.T) {
	repo := NewMemoryInteractionsRepo()
	tracker := NewTracker(repo)

	first, err := tracker.Record(context.Background(), "u1", "rule-attendance", ActionDismissed)
	require.NoError(t, err)
	second, err := tracker.Record(context.Background(), "u1", "rule-attendance", ActionDismissed)
	require.NoError(t, err)

	// Telemetry, not a ledger: the same interaction twice means two rows.
	stored := repo.All()
	require.Len(t, stored, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, ActionDismissed, stored[0].Action)
	assert.Equal(t, ActionDismissed, stored[1].Action)
}

func TestTrackerRejectsUnknownAction(t *testing.T) {
	tracker := NewTracker(NewMemoryInteractionsRepo())
	_, err := tracker.Record(context.Background(), "u1", "rule-attendance", "starred")
	assert.Error(t, err)
}

func TestTrackerRequiresRecommendationID(t *testing.T) {
	tracker := NewTracker(NewMemoryInteractionsRepo())
	_, err := tracker.Record(context.Background(), "u1", "  ", ActionViewed)
	assert.Error(t, err)
}

func TestTrackerAssignsIDAndTimestamp(t *testing.T) {
	tracker := NewTracker(NewMemoryInteractionsRepo())
	interaction, err := tracker.Record(context.Background(), "u1", "default-study", ActionViewed)
	require.NoError(t, err)
	assert.NotEmpty(t, interaction.ID)
	assert.False(t, interaction.CreatedAt.IsZero())
	assert.Equal(t, "u1", interaction.UserID)
}
