package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tallybot/tally/internal/models"
)

const (
	// historyKey holds the rolling ledger of recent count attempts
	historyKey = "count:history"

	// maxHistoryLength caps how many attempts the ledger keeps
	maxHistoryLength = 100
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddEvent appends a count attempt to the ledger, trimming old entries
func (r *redisRepository) AddEvent(ctx context.Context, input *AddEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	event := input.Event
	if event.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	// Marshal the event to JSON
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal count event: %w", err)
	}

	// Push and trim in one transaction so the ledger never grows unbounded
	pipe := r.client.Pipeline()
	pipe.LPush(ctx, historyKey, eventJSON)
	pipe.LTrim(ctx, historyKey, 0, maxHistoryLength-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add count event: %w", err)
	}

	return nil
}

// GetRecent retrieves the most recent count attempts, newest first
func (r *redisRepository) GetRecent(ctx context.Context, input *GetRecentInput) (*GetRecentOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 || limit > maxHistoryLength {
		limit = maxHistoryLength
	}

	items, err := r.client.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get count history: %w", err)
	}

	// Unmarshal each entry
	events := make([]*models.CountEvent, 0, len(items))
	for _, item := range items {
		var event models.CountEvent
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal count event: %w", err)
		}

		events = append(events, &event)
	}

	return &GetRecentOutput{
		Events: events,
	}, nil
}
