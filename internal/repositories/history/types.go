package history

import "github.com/tallybot/tally/internal/models"

// AddEventInput contains parameters for appending to the ledger
type AddEventInput struct {
	Event *models.CountEvent
}

// GetRecentInput contains parameters for reading the ledger
type GetRecentInput struct {
	Limit int
}

// GetRecentOutput contains the most recent count attempts, newest first
type GetRecentOutput struct {
	Events []*models.CountEvent
}
