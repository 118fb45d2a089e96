package models

import (
	"time"
)

// GameState represents the live position of the counting game
type GameState struct {
	// CurrentCount is the most recent successfully counted number
	CurrentCount int64

	// LastContributorID is the Discord user ID of the last accepted contributor
	LastContributorID string

	// CurrentStreak is the number of consecutive accepted counts since the last reset
	CurrentStreak int

	// BestStreak is the longest streak the channel has ever reached
	BestStreak int

	// UpdatedAt is when the state last changed
	UpdatedAt time.Time
}

// NextExpected returns the number the next contributor has to claim
func (s *GameState) NextExpected() int64 {
	return s.CurrentCount + 1
}

// Clone returns a copy of the state safe to hand to other goroutines
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}

	clone := *s
	return &clone
}
