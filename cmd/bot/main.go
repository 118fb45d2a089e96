package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tallybot/tally/internal/analytics"
	"github.com/tallybot/tally/internal/common/clock"
	"github.com/tallybot/tally/internal/common/uuid"
	"github.com/tallybot/tally/internal/config"
	"github.com/tallybot/tally/internal/expr"
	"github.com/tallybot/tally/internal/handlers/discord"
	"github.com/tallybot/tally/internal/repositories/gamestate"
	"github.com/tallybot/tally/internal/repositories/history"
	"github.com/tallybot/tally/internal/repositories/stats"
	"github.com/tallybot/tally/internal/services/counting"
	"github.com/tallybot/tally/internal/services/messaging"
)

func main() {
	// Load configuration from the environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	stateRepo, err := gamestate.NewRedis(&gamestate.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game state repository: %v", err)
	}

	statsRepo, err := stats.NewRedis(&stats.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create stats repository: %v", err)
	}

	historyRepo, err := history.NewRedis(&history.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create history repository: %v", err)
	}

	// Initialize the expression evaluator
	evaluator, err := expr.New(&expr.Config{
		MaxDepth: cfg.ExprMaxDepth,
		MaxNodes: cfg.ExprMaxNodes,
	})
	if err != nil {
		log.Fatalf("Failed to create expression evaluator: %v", err)
	}

	// Initialize the messaging service
	messages, err := messaging.NewService(&messaging.Config{
		PreferredTone: messaging.MessageTone(cfg.ReplyTone),
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize analytics. The game runs fine without it.
	emitter, err := analytics.NewKafka(&analytics.Config{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	if err != nil {
		log.Printf("Analytics disabled: %v", err)
		emitter = nil
	}

	// Initialize the counting service
	countingSvc, err := counting.New(&counting.Config{
		MilestoneInterval:       cfg.MilestoneInterval,
		StreakMilestoneInterval: cfg.StreakMilestoneInterval,
		ResetStreakOnMiss:       cfg.ResetStreakOnMiss,
		Epsilon:                 cfg.Epsilon,
		QueueSize:               cfg.QueueSize,
		LeaderboardSize:         cfg.LeaderboardSize,
		StateRepo:               stateRepo,
		StatsRepo:               statsRepo,
		HistoryRepo:             historyRepo,
		Evaluator:               evaluator,
		Messages:                messages,
		Clock:                   clock.New(),
		UUIDGen:                 uuid.New(),
		Emitter:                 emitter,
	})
	if err != nil {
		log.Fatalf("Failed to create counting service: %v", err)
	}

	// Load the game and start the worker
	if err := countingSvc.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start counting service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:           cfg.DiscordToken,
		ApplicationID:   cfg.ApplicationID,
		GuildID:         cfg.GuildID,
		GameChannelID:   cfg.GameChannelID,
		CountingService: countingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Stop taking messages, then let the worker drain what is queued
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := countingSvc.Stop(stopCtx); err != nil {
		log.Printf("Error stopping counting service: %v", err)
	}

	if emitter != nil {
		if err := emitter.Close(); err != nil {
			log.Printf("Error closing analytics: %v", err)
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}
