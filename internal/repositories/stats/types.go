package stats

import "github.com/tallybot/tally/internal/models"

// ApplyCountEventInput contains parameters for recording a count attempt
type ApplyCountEventInput struct {
	Event *models.CountEvent
}

// GetUserStatsInput contains parameters for retrieving a contributor's record
type GetUserStatsInput struct {
	UserID string
}

// GetGlobalStatsInput contains parameters for retrieving channel-wide totals
type GetGlobalStatsInput struct{}

// GetLeaderboardInput contains parameters for retrieving the leaderboard
type GetLeaderboardInput struct {
	Limit int
}

// GetLeaderboardOutput contains the ranked contributor records
type GetLeaderboardOutput struct {
	Entries []*models.UserStats
}
