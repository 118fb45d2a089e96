package counting

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/tallybot/tally/internal/services/counting Service

// Service defines the interface for the counting game
type Service interface {
	// Start loads the persisted game state and begins processing messages
	Start(ctx context.Context) error

	// Stop finishes the queued messages and shuts the worker down
	Stop(ctx context.Context) error

	// HandleCountMessage runs one chat message through the game.
	// Messages are judged strictly in submission order.
	HandleCountMessage(ctx context.Context, input *HandleCountMessageInput) (*HandleCountMessageOutput, error)

	// EvaluateExpression evaluates an expression without touching the game
	EvaluateExpression(ctx context.Context, input *EvaluateExpressionInput) (*EvaluateExpressionOutput, error)

	// GetGameState returns a snapshot of the current game state
	GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error)

	// GetUserStats returns one contributor's lifetime record
	GetUserStats(ctx context.Context, input *GetUserStatsInput) (*GetUserStatsOutput, error)

	// GetStatsSummary returns the game-wide totals and current state
	GetStatsSummary(ctx context.Context, input *GetStatsSummaryInput) (*GetStatsSummaryOutput, error)

	// GetLeaderboard returns contributors ranked by accepted counts
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetRecentClaims returns the most recent processed attempts
	GetRecentClaims(ctx context.Context, input *GetRecentClaimsInput) (*GetRecentClaimsOutput, error)

	// ResetCount starts the game over from zero, keeping lifetime stats
	ResetCount(ctx context.Context, input *ResetCountInput) (*ResetCountOutput, error)

	// GetHelp returns the game rules
	GetHelp(ctx context.Context, input *GetHelpInput) (*GetHelpOutput, error)
}
