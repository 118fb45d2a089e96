package stats

import (
	"context"

	"github.com/tallybot/tally/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tallybot/tally/internal/repositories/stats Repository

// Repository defines the interface for counting statistics persistence
type Repository interface {
	// ApplyCountEvent folds one processed count attempt into the stored totals
	ApplyCountEvent(ctx context.Context, input *ApplyCountEventInput) error

	// GetUserStats retrieves one contributor's lifetime record
	GetUserStats(ctx context.Context, input *GetUserStatsInput) (*models.UserStats, error)

	// GetGlobalStats retrieves the channel-wide totals
	GetGlobalStats(ctx context.Context, input *GetGlobalStatsInput) (*models.GlobalStats, error)

	// GetLeaderboard retrieves the top contributors by accepted counts
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
