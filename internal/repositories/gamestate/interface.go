package gamestate

import (
	"context"

	"github.com/tallybot/tally/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tallybot/tally/internal/repositories/gamestate Repository

// Repository defines the interface for game state persistence
type Repository interface {
	// SaveState persists the current game state snapshot
	SaveState(ctx context.Context, input *SaveStateInput) error

	// GetState retrieves the last saved game state snapshot
	GetState(ctx context.Context, input *GetStateInput) (*models.GameState, error)
}
