package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the bot
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
	GameChannelID string `env:"GAME_CHANNEL_ID"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Kafka analytics. No brokers means analytics stays off.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"`

	// Game rules
	MilestoneInterval       int64   `env:"MILESTONE_INTERVAL" envDefault:"100"`
	StreakMilestoneInterval int     `env:"STREAK_MILESTONE_INTERVAL" envDefault:"10"`
	ResetStreakOnMiss       bool    `env:"RESET_STREAK_ON_MISS" envDefault:"false"`
	Epsilon                 float64 `env:"EVAL_EPSILON" envDefault:"1e-9"`

	// Expression ceilings, zero means the evaluator's defaults
	ExprMaxDepth int `env:"EXPR_MAX_DEPTH"`
	ExprMaxNodes int `env:"EXPR_MAX_NODES"`

	// Throughput
	QueueSize       int `env:"QUEUE_SIZE" envDefault:"256"`
	LeaderboardSize int `env:"LEADERBOARD_SIZE" envDefault:"10"`

	// ReplyTone selects the reply flavor, funny or neutral
	ReplyTone string `env:"REPLY_TONE" envDefault:"funny"`
}

// Load reads the configuration from the environment. A .env file in
// the working directory is folded in first when present.
func Load() (*Config, error) {
	// A missing .env is fine, deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
