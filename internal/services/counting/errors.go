package counting

// CountingError is a custom error type for counting-related errors
type CountingError string

// Error implements the error interface
func (e CountingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        CountingError = "config cannot be nil"
	ErrNilStateRepo     CountingError = "game state repository cannot be nil"
	ErrNilStatsRepo     CountingError = "stats repository cannot be nil"
	ErrNilHistoryRepo   CountingError = "history repository cannot be nil"
	ErrNilEvaluator     CountingError = "evaluator cannot be nil"
	ErrNilMessages      CountingError = "messaging service cannot be nil"
	ErrNilClock         CountingError = "clock cannot be nil"
	ErrNilUUIDGenerator CountingError = "UUID generator cannot be nil"
	ErrNotStarted       CountingError = "counting service is not started"
	ErrAlreadyStarted   CountingError = "counting service is already started"
	ErrQueueFull        CountingError = "message queue is full"
	ErrShutdown         CountingError = "counting service is shutting down"
	ErrProcessingFailed CountingError = "message processing failed"
)
