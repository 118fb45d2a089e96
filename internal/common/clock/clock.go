package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/tallybot/tally/internal/common/clock Clock

// Clock abstracts time.Now so services can be tested with a fixed time
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New creates a system-backed clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
