package messaging

import (
	"github.com/tallybot/tally/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a plain, factual tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// Config contains configuration for the messaging service
type Config struct {
	// PreferredTone selects which message pools replies are drawn from
	PreferredTone MessageTone

	// Seed pins the random message choice, for tests
	Seed int64
}

// GetMilestoneMessageInput contains parameters for a milestone message
type GetMilestoneMessageInput struct {
	// UserName is the display name of the contributor who hit the milestone
	UserName string

	// Count is the milestone count that was reached
	Count int64

	// Streak is the channel's current streak
	Streak int

	// NewBestStreak indicates the channel just set a new best streak
	NewBestStreak bool
}

// GetMilestoneMessageOutput contains the generated milestone message
type GetMilestoneMessageOutput struct {
	Message string
}

// GetRejectedMessageInput contains parameters for a rejection reply
type GetRejectedMessageInput struct {
	// UserName is the display name of the contributor who missed
	UserName string

	// Reason classifies why the attempt was rejected
	Reason models.Reason

	// Expected is the number the attempt needed to match
	Expected int64

	// StreakLost is the streak that ended with the miss, zero if none did
	StreakLost int
}

// GetRejectedMessageOutput contains the generated rejection reply
type GetRejectedMessageOutput struct {
	Message string
}

// GetResetMessageInput contains parameters for a reset announcement
type GetResetMessageInput struct {
	// RequestedBy is the display name of whoever asked for the reset
	RequestedBy string

	// PreviousCount is the count before the reset
	PreviousCount int64
}

// GetResetMessageOutput contains the generated reset announcement
type GetResetMessageOutput struct {
	Message string
}

// GetEvalResultMessageInput contains parameters for an evaluation reply
type GetEvalResultMessageInput struct {
	// Expression is the raw expression that was evaluated
	Expression string

	// Value is the evaluated result
	Value float64

	// Complexity is the expression's complexity score
	Complexity int
}

// GetEvalResultMessageOutput contains the generated evaluation reply
type GetEvalResultMessageOutput struct {
	Message string
}
