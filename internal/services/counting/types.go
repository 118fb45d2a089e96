package counting

import (
	"time"

	"github.com/tallybot/tally/internal/analytics"
	"github.com/tallybot/tally/internal/common/clock"
	"github.com/tallybot/tally/internal/common/uuid"
	"github.com/tallybot/tally/internal/expr"
	"github.com/tallybot/tally/internal/models"
	stateRepo "github.com/tallybot/tally/internal/repositories/gamestate"
	historyRepo "github.com/tallybot/tally/internal/repositories/history"
	statsRepo "github.com/tallybot/tally/internal/repositories/stats"
	"github.com/tallybot/tally/internal/services/messaging"
)

const (
	// DefaultMilestoneInterval celebrates every Nth count
	DefaultMilestoneInterval = 100

	// DefaultStreakMilestoneInterval celebrates every Nth best streak
	DefaultStreakMilestoneInterval = 10

	// DefaultEpsilon is the tolerance used when matching an evaluated
	// value against the expected integer
	DefaultEpsilon = 1e-9

	// DefaultQueueSize bounds how many messages may wait for the worker
	DefaultQueueSize = 256

	// DefaultLeaderboardSize caps leaderboard requests
	DefaultLeaderboardSize = 10
)

// Config holds configuration for the counting service
type Config struct {
	// MilestoneInterval is the count interval that triggers a
	// celebration, e.g. 100 celebrates 100, 200, 300
	MilestoneInterval int64

	// StreakMilestoneInterval is the best-streak interval that earns
	// a callout
	StreakMilestoneInterval int

	// ResetStreakOnMiss resets the running streak to zero whenever an
	// attempt is rejected. Off by default: a miss costs the author a
	// failed attempt but the streak survives.
	ResetStreakOnMiss bool

	// Epsilon is the tolerance used when matching an evaluated value
	// against the expected integer
	Epsilon float64

	// QueueSize bounds the number of messages waiting for the worker
	QueueSize int

	// LeaderboardSize caps how many entries a leaderboard request returns
	LeaderboardSize int

	// Repository dependencies
	StateRepo   stateRepo.Repository
	StatsRepo   statsRepo.Repository
	HistoryRepo historyRepo.Repository

	// Service dependencies
	Evaluator expr.Evaluator
	Messages  messaging.Service
	Clock     clock.Clock
	UUIDGen   uuid.UUID

	// Emitter publishes analytics events. Leave nil to disable.
	Emitter analytics.Emitter
}

// Outcome is the judgement of a single count attempt
type Outcome struct {
	// Accepted indicates whether the attempt advanced the count
	Accepted bool

	// Reason classifies the judgement
	Reason models.Reason

	// Expected is the number the attempt needed to match
	Expected int64

	// Count is the current count after the attempt was processed
	Count int64

	// Complexity is the expression's complexity score, zero when it
	// failed to evaluate
	Complexity int

	// Streak is the current streak after the attempt was processed
	Streak int

	// BestStreak is the best streak after the attempt was processed
	BestStreak int

	// NewBestStreak indicates this attempt set a new best streak
	NewBestStreak bool

	// StreakLost is how much running streak a rejection wiped out.
	// Always zero unless ResetStreakOnMiss is set.
	StreakLost int

	// Milestone names a milestone crossed by this attempt, empty when none
	Milestone string
}

// HandleCountMessageInput contains one chat message to run through the game
type HandleCountMessageInput struct {
	// MessageID is the chat platform's ID for the message
	MessageID string

	// ChannelID is the channel the message was posted in
	ChannelID string

	// AuthorID is the chat user ID of the sender
	AuthorID string

	// AuthorName is the display name of the sender
	AuthorName string

	// Text is the raw message content
	Text string

	// Timestamp is when the message was sent. Zero means use the
	// service clock.
	Timestamp time.Time
}

// HandleCountMessageOutput describes how the game judged a message
type HandleCountMessageOutput struct {
	// Outcome is the judgement in machine-readable form
	Outcome *Outcome

	// Reply is an optional message to post back to the channel
	Reply string

	// Reactions are emoji to attach to the processed message
	Reactions []string
}

// EvaluateExpressionInput contains an expression to evaluate outside the game
type EvaluateExpressionInput struct {
	Expression string
}

// EvaluateExpressionOutput contains the evaluation result
type EvaluateExpressionOutput struct {
	// Value is the evaluated numeric result
	Value float64

	// Complexity is the expression's complexity score
	Complexity int

	// Reply is a formatted rendering of the result
	Reply string
}

// GetGameStateInput contains parameters for reading the game state
type GetGameStateInput struct{}

// GetGameStateOutput contains a snapshot of the game state
type GetGameStateOutput struct {
	State *models.GameState
}

// GetUserStatsInput contains parameters for reading one contributor's record
type GetUserStatsInput struct {
	UserID string
}

// GetUserStatsOutput contains a contributor's lifetime record
type GetUserStatsOutput struct {
	Stats *models.UserStats
}

// GetStatsSummaryInput contains parameters for the stats summary
type GetStatsSummaryInput struct{}

// GetStatsSummaryOutput contains the game-wide totals and current state
type GetStatsSummaryOutput struct {
	Global *models.GlobalStats
	State  *models.GameState

	// TopEntries are the leading contributors, best first
	TopEntries []*models.UserStats
}

// GetLeaderboardInput contains parameters for the leaderboard
type GetLeaderboardInput struct {
	// Limit caps how many entries are returned. Zero means the
	// configured default.
	Limit int
}

// GetLeaderboardOutput contains the ranked contributors
type GetLeaderboardOutput struct {
	Entries []*models.UserStats
}

// GetRecentClaimsInput contains parameters for reading recent attempts
type GetRecentClaimsInput struct {
	// Limit caps how many attempts are returned. Zero means the
	// configured default.
	Limit int
}

// GetRecentClaimsOutput contains the most recent attempts, newest first
type GetRecentClaimsOutput struct {
	Events []*models.CountEvent
}

// ResetCountInput contains parameters for resetting the count
type ResetCountInput struct {
	// RequestedBy is the display name of whoever asked for the reset
	RequestedBy string
}

// ResetCountOutput contains the result of a reset
type ResetCountOutput struct {
	// PreviousCount is the count before the reset
	PreviousCount int64

	// Reply is an announcement to post back to the channel
	Reply string
}

// GetHelpInput contains parameters for the help text
type GetHelpInput struct{}

// GetHelpOutput contains the game rules
type GetHelpOutput struct {
	Text string
}
