package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/tallybot/tally/internal/models"
)

const (
	// Key prefixes for Redis
	userStatsKeyPrefix = "count:user:"
	globalStatsKey     = "count:global"
	leaderboardKey     = "count:leaderboard"

	// defaultLeaderboardSize is how many entries a leaderboard query
	// returns when the input does not set a limit
	defaultLeaderboardSize = 10
)

// Hash fields for user stats
const (
	fieldUserName         = "user_name"
	fieldSuccessfulCounts = "successful_counts"
	fieldFailedAttempts   = "failed_attempts"
	fieldTotalComplexity  = "total_complexity"
)

// Hash fields for global stats
const (
	fieldTotalMessages = "total_messages"
	fieldTotalAccepted = "total_accepted"
	fieldTotalRejected = "total_rejected"
	fieldHighestCount  = "highest_count"
	fieldBestStreak    = "best_streak"
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
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

// ApplyCountEvent folds one processed count attempt into the stored totals
func (r *redisRepository) ApplyCountEvent(ctx context.Context, input *ApplyCountEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	event := input.Event
	if event.UserID == "" {
		return errors.New("event user ID cannot be empty")
	}

	// Read the current high-water marks first. Updates are serialized by
	// the caller, so read-then-write is safe here.
	current, err := r.client.HGetAll(ctx, globalStatsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read global stats: %w", err)
	}

	highestCount := parseField(current, fieldHighestCount)
	bestStreak := parseField(current, fieldBestStreak)

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Per-user totals
	userKey := fmt.Sprintf("%s%s", userStatsKeyPrefix, event.UserID)
	if event.UserName != "" {
		pipe.HSet(ctx, userKey, fieldUserName, event.UserName)
	}

	if event.Accepted {
		pipe.HIncrBy(ctx, userKey, fieldSuccessfulCounts, 1)
		pipe.HIncrBy(ctx, userKey, fieldTotalComplexity, int64(event.Complexity))
		pipe.ZIncrBy(ctx, leaderboardKey, 1, event.UserID)
	} else {
		pipe.HIncrBy(ctx, userKey, fieldFailedAttempts, 1)
	}

	// Channel-wide totals
	pipe.HIncrBy(ctx, globalStatsKey, fieldTotalMessages, 1)
	if event.Accepted {
		pipe.HIncrBy(ctx, globalStatsKey, fieldTotalAccepted, 1)
	} else {
		pipe.HIncrBy(ctx, globalStatsKey, fieldTotalRejected, 1)
	}

	if event.Count > highestCount {
		pipe.HSet(ctx, globalStatsKey, fieldHighestCount, event.Count)
	}

	if int64(event.BestStreak) > bestStreak {
		pipe.HSet(ctx, globalStatsKey, fieldBestStreak, event.BestStreak)
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to apply count event: %w", err)
	}

	return nil
}

// GetUserStats retrieves one contributor's lifetime record from Redis
func (r *redisRepository) GetUserStats(ctx context.Context, input *GetUserStatsInput) (*models.UserStats, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userStatsKeyPrefix, input.UserID)
	fields, err := r.client.HGetAll(ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	// A contributor with no history gets a zeroed record
	return &models.UserStats{
		UserID:           input.UserID,
		UserName:         fields[fieldUserName],
		SuccessfulCounts: parseField(fields, fieldSuccessfulCounts),
		FailedAttempts:   parseField(fields, fieldFailedAttempts),
		TotalComplexity:  parseField(fields, fieldTotalComplexity),
	}, nil
}

// GetGlobalStats retrieves the channel-wide totals from Redis
func (r *redisRepository) GetGlobalStats(ctx context.Context, input *GetGlobalStatsInput) (*models.GlobalStats, error) {
	fields, err := r.client.HGetAll(ctx, globalStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get global stats: %w", err)
	}

	return &models.GlobalStats{
		TotalMessages:       parseField(fields, fieldTotalMessages),
		TotalAccepted:       parseField(fields, fieldTotalAccepted),
		TotalRejected:       parseField(fields, fieldTotalRejected),
		HighestCountReached: parseField(fields, fieldHighestCount),
		BestStreak:          int(parseField(fields, fieldBestStreak)),
	}, nil
}

// GetLeaderboard retrieves the top contributors by accepted counts
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}

	// Top user IDs by accepted counts
	members, err := r.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(members) == 0 {
		return &GetLeaderboardOutput{
			Entries: []*models.UserStats{},
		}, nil
	}

	// Fetch the full record for each ranked contributor
	entries := make([]*models.UserStats, 0, len(members))
	for _, member := range members {
		userID, ok := member.Member.(string)
		if !ok {
			continue
		}

		stats, err := r.GetUserStats(ctx, &GetUserStatsInput{UserID: userID})
		if err != nil {
			return nil, err
		}

		entries = append(entries, stats)
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// parseField reads an integer hash field that may be missing
func parseField(fields map[string]string, name string) int64 {
	n, err := strconv.ParseInt(fields[name], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
