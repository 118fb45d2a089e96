package history

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tallybot/tally/internal/repositories/history Repository

// Repository defines the interface for the rolling count attempt ledger
type Repository interface {
	// AddEvent appends a processed count attempt to the ledger
	AddEvent(ctx context.Context, input *AddEventInput) error

	// GetRecent retrieves the most recent count attempts, newest first
	GetRecent(ctx context.Context, input *GetRecentInput) (*GetRecentOutput, error)
}
