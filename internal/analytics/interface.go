package analytics

import (
	"github.com/tallybot/tally/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_emitter.go github.com/tallybot/tally/internal/analytics Emitter

// Emitter publishes counting events to an analytics pipeline.
// Emission is fire and forget so a slow or absent pipeline never
// holds up message processing.
type Emitter interface {
	// EmitCountEvent publishes a processed count attempt
	EmitCountEvent(event *models.CountEvent)

	// EmitMilestone publishes a named milestone reached by the game
	EmitMilestone(milestone string, event *models.CountEvent)

	// Close flushes any buffered events and releases the producer
	Close() error
}
