package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, int64(100), cfg.MilestoneInterval)
	assert.Equal(t, 10, cfg.StreakMilestoneInterval)
	assert.False(t, cfg.ResetStreakOnMiss)
	assert.Equal(t, 1e-9, cfg.Epsilon)
	assert.Equal(t, 256, cfg.QueueSize)
	assert.Equal(t, 10, cfg.LeaderboardSize)
	assert.Equal(t, "funny", cfg.ReplyTone)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("GAME_CHANNEL_ID", "channel-42")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("MILESTONE_INTERVAL", "250")
	t.Setenv("RESET_STREAK_ON_MISS", "true")
	t.Setenv("EVAL_EPSILON", "0.001")
	t.Setenv("QUEUE_SIZE", "64")
	t.Setenv("REPLY_TONE", "neutral")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "channel-42", cfg.GameChannelID)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, int64(250), cfg.MilestoneInterval)
	assert.True(t, cfg.ResetStreakOnMiss)
	assert.Equal(t, 0.001, cfg.Epsilon)
	assert.Equal(t, 64, cfg.QueueSize)
	assert.Equal(t, "neutral", cfg.ReplyTone)
}

func TestLoadRequiresDiscordToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}
