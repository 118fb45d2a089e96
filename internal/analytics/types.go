package analytics

import (
	"time"

	"github.com/tallybot/tally/internal/models"
)

const (
	// DefaultTopic is the Kafka topic counting events are published to
	DefaultTopic = "tally-count-events"
)

// EventKind distinguishes payloads on the analytics topic
type EventKind string

const (
	KindCount     EventKind = "count"
	KindMilestone EventKind = "milestone"
)

// Config holds the configuration for the Kafka emitter
type Config struct {
	// Brokers lists the Kafka broker addresses. Leave empty to
	// disable analytics entirely.
	Brokers []string

	// Topic overrides DefaultTopic when set
	Topic string
}

// Envelope is the wire format published to the analytics topic
type Envelope struct {
	Kind      EventKind          `json:"kind"`
	Milestone string             `json:"milestone,omitempty"`
	Event     *models.CountEvent `json:"event"`
	EmittedAt time.Time          `json:"emittedAt"`
}
