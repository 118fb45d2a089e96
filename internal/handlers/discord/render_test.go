package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybot/tally/internal/expr"
	"github.com/tallybot/tally/internal/models"
	"github.com/tallybot/tally/internal/services/counting"
)

func TestRenderLeaderboardEntries(t *testing.T) {
	entries := []*models.UserStats{
		{UserID: "user-a", UserName: "Alice", SuccessfulCounts: 40, FailedAttempts: 10},
		{UserID: "user-b", UserName: "Bob", SuccessfulCounts: 30},
		{UserID: "user-c", UserName: "Carol", SuccessfulCounts: 20},
		{UserID: "user-d", UserName: "Dave", SuccessfulCounts: 10},
	}

	rendered := renderLeaderboardEntries(entries)

	// Medals for the podium, numbers after that
	assert.Contains(t, rendered, "🥇 **Alice**: 40 counts")
	assert.Contains(t, rendered, "🥈 **Bob**: 30 counts")
	assert.Contains(t, rendered, "🥉 **Carol**: 20 counts")
	assert.Contains(t, rendered, "4. **Dave**: 10 counts")

	// Accuracy rides along when there are attempts
	assert.Contains(t, rendered, "80% accuracy")
}

func TestRenderLeaderboardEntriesFallsBackToUserID(t *testing.T) {
	rendered := renderLeaderboardEntries([]*models.UserStats{
		{UserID: "user-x", SuccessfulCounts: 3},
	})

	assert.Contains(t, rendered, "user-x")
}

func TestRenderRecentClaims(t *testing.T) {
	events := []*models.CountEvent{
		{UserName: "Alice", Expression: "sqrt(49)", Accepted: true, Count: 7},
		{UserName: "Bob", Expression: "9", Accepted: false, Expected: 8},
		{UserName: "Carol", Expression: "100", Accepted: true, Count: 100, Milestone: "count_100"},
	}

	rendered := renderRecentClaims(events)

	assert.Contains(t, rendered, "✅ `sqrt(49)` by **Alice** = 7")
	assert.Contains(t, rendered, "❌ `9` by **Bob** (wanted 8)")
	assert.Contains(t, rendered, "✅ `100` by **Carol** = 100 🎉")
}

func TestRenderRecentClaimsWhenEmpty(t *testing.T) {
	rendered := renderRecentClaims(nil)

	assert.Contains(t, rendered, "first number is 1")
}

func TestRenderUserStatsFields(t *testing.T) {
	fields := renderUserStatsFields(&models.UserStats{
		UserID:           "user-a",
		UserName:         "Alice",
		SuccessfulCounts: 12,
		FailedAttempts:   3,
		TotalComplexity:  40,
	})

	require.Len(t, fields, 3)
	assert.Equal(t, "12", fields[0].Value)
	assert.Equal(t, "3", fields[1].Value)
	assert.Equal(t, "40", fields[2].Value)
}

func TestRenderSummaryDescription(t *testing.T) {
	rendered := renderSummaryDescription(&counting.GetStatsSummaryOutput{
		Global: &models.GlobalStats{
			TotalMessages:       100,
			TotalAccepted:       80,
			TotalRejected:       20,
			HighestCountReached: 57,
		},
		State: &models.GameState{
			CurrentCount:  41,
			CurrentStreak: 3,
			BestStreak:    9,
		},
		TopEntries: []*models.UserStats{
			{UserName: "Alice", SuccessfulCounts: 40},
		},
	})

	assert.Contains(t, rendered, "**Current count:** 41")
	assert.Contains(t, rendered, "**Next number:** 42")
	assert.Contains(t, rendered, "**Streak:** 3 (best 9)")
	assert.Contains(t, rendered, "**Attempts:** 100 (80 accepted, 20 rejected)")
	assert.Contains(t, rendered, "**Highest count reached:** 57")
	assert.Contains(t, rendered, "**Alice**")
}

func TestEvalErrorText(t *testing.T) {
	assert.Contains(t, evalErrorText("pow(2,3)", expr.ErrDisallowed), "allowed list")
	assert.Contains(t, evalErrorText("1/0", expr.ErrDomain), "no numeric answer")
	assert.Contains(t, evalErrorText("10^400", expr.ErrOverflow), "blows past")
	assert.Contains(t, evalErrorText("hello", expr.ErrUnparseable), "couldn't parse")
}
