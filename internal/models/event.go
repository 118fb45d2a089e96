package models

import (
	"time"
)

// Reason classifies the outcome of a single count attempt
type Reason string

const (
	// ReasonAccepted indicates the claim matched the expected number
	ReasonAccepted Reason = "accepted"

	// ReasonWrongValue indicates the expression evaluated to the wrong number
	ReasonWrongValue Reason = "wrong_value"

	// ReasonNotANumber indicates the expression produced no usable number
	ReasonNotANumber Reason = "not_a_number"

	// ReasonSameUserTwice indicates the contributor also made the previous count
	ReasonSameUserTwice Reason = "same_user_twice"

	// ReasonDisallowedExpression indicates the expression used a construct outside the allowed grammar
	ReasonDisallowedExpression Reason = "disallowed_expression"

	// ReasonUnparseable indicates the message could not be read as an expression
	ReasonUnparseable Reason = "unparseable"
)

// CountEvent records one processed count attempt
type CountEvent struct {
	// ID is the unique identifier for the event
	ID string

	// ChannelID is the Discord channel the attempt was made in
	ChannelID string

	// UserID is the Discord user ID of the contributor
	UserID string

	// UserName is the display name of the contributor
	UserName string

	// Expression is the raw message text that was evaluated
	Expression string

	// Accepted indicates whether the attempt advanced the count
	Accepted bool

	// Reason classifies the outcome
	Reason Reason

	// Count is the current count after the attempt was processed
	Count int64

	// Expected is the number the attempt needed to match
	Expected int64

	// Complexity is the complexity score of the expression, zero when it failed to evaluate
	Complexity int

	// Streak is the current streak after the attempt was processed
	Streak int

	// BestStreak is the best streak after the attempt was processed
	BestStreak int

	// Milestone names a milestone crossed by this attempt, empty when none
	Milestone string

	// Timestamp is when the attempt was processed
	Timestamp time.Time
}
