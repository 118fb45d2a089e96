package models

// UserStats represents a single contributor's lifetime counting record
type UserStats struct {
	// UserID is the Discord user ID of the contributor
	UserID string

	// UserName is the display name last seen for the contributor
	UserName string

	// SuccessfulCounts is the number of accepted count attempts
	SuccessfulCounts int64

	// FailedAttempts is the number of rejected count attempts
	FailedAttempts int64

	// TotalComplexity is the summed complexity score of all accepted expressions
	TotalComplexity int64
}

// TotalAttempts returns the number of count attempts the user has made
func (s *UserStats) TotalAttempts() int64 {
	return s.SuccessfulCounts + s.FailedAttempts
}

// Accuracy returns the fraction of attempts that were accepted, in [0, 1]
func (s *UserStats) Accuracy() float64 {
	total := s.TotalAttempts()
	if total == 0 {
		return 0
	}

	return float64(s.SuccessfulCounts) / float64(total)
}

// AverageComplexity returns the mean complexity score of accepted expressions
func (s *UserStats) AverageComplexity() float64 {
	if s.SuccessfulCounts == 0 {
		return 0
	}

	return float64(s.TotalComplexity) / float64(s.SuccessfulCounts)
}

// GlobalStats represents channel-wide counting totals
type GlobalStats struct {
	// TotalMessages is the number of count attempts processed
	TotalMessages int64

	// TotalAccepted is the number of accepted count attempts
	TotalAccepted int64

	// TotalRejected is the number of rejected count attempts
	TotalRejected int64

	// HighestCountReached is the largest count the channel has ever hit
	HighestCountReached int64

	// BestStreak is the longest streak the channel has ever reached
	BestStreak int
}
