package counting

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/tallybot/tally/internal/analytics"
	"github.com/tallybot/tally/internal/common/clock"
	"github.com/tallybot/tally/internal/common/uuid"
	"github.com/tallybot/tally/internal/expr"
	"github.com/tallybot/tally/internal/models"
	stateRepo "github.com/tallybot/tally/internal/repositories/gamestate"
	historyRepo "github.com/tallybot/tally/internal/repositories/history"
	statsRepo "github.com/tallybot/tally/internal/repositories/stats"
	"github.com/tallybot/tally/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	config *Config

	stateRepo   stateRepo.Repository
	statsRepo   statsRepo.Repository
	historyRepo historyRepo.Repository

	evaluator expr.Evaluator
	messages  messaging.Service
	emitter   analytics.Emitter
	clock     clock.Clock
	uuidGen   uuid.UUID

	gate     *gate
	finished chan struct{}

	// state is owned by the worker goroutine. Everyone else reads the
	// published snapshot.
	state    *models.GameState
	snapshot atomic.Pointer[models.GameState]

	mu      sync.Mutex
	started bool
}

// New creates a new counting service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.StateRepo == nil {
		return nil, ErrNilStateRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}

	if cfg.Evaluator == nil {
		return nil, ErrNilEvaluator
	}

	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGen == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Fill in defaults for unset settings
	settings := *cfg
	if settings.MilestoneInterval <= 0 {
		settings.MilestoneInterval = DefaultMilestoneInterval
	}
	if settings.StreakMilestoneInterval <= 0 {
		settings.StreakMilestoneInterval = DefaultStreakMilestoneInterval
	}
	if settings.Epsilon <= 0 {
		settings.Epsilon = DefaultEpsilon
	}
	if settings.QueueSize <= 0 {
		settings.QueueSize = DefaultQueueSize
	}
	if settings.LeaderboardSize <= 0 {
		settings.LeaderboardSize = DefaultLeaderboardSize
	}

	return &service{
		config:      &settings,
		stateRepo:   cfg.StateRepo,
		statsRepo:   cfg.StatsRepo,
		historyRepo: cfg.HistoryRepo,
		evaluator:   cfg.Evaluator,
		messages:    cfg.Messages,
		emitter:     cfg.Emitter,
		clock:       cfg.Clock,
		uuidGen:     cfg.UUIDGen,
		gate:        newGate(settings.QueueSize),
		finished:    make(chan struct{}),
	}, nil
}

// Start loads the persisted game state and begins processing messages
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	state, err := s.stateRepo.GetState(ctx, &stateRepo.GetStateInput{})
	if err != nil {
		if !errors.Is(err, stateRepo.ErrStateNotFound) {
			return fmt.Errorf("failed to load game state: %w", err)
		}

		// First run, start the game from zero
		state = &models.GameState{
			UpdatedAt: s.clock.Now(),
		}
	}

	s.state = state
	s.publishSnapshot()

	s.started = true
	go s.runWorker()

	log.Printf("Counting game ready at %d, next expected %d", s.state.CurrentCount, s.state.NextExpected())

	return nil
}

// Stop closes the queue, lets the worker finish what is already
// queued, and returns once it has drained
func (s *service) Stop(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	if !started {
		return ErrNotStarted
	}

	s.gate.close()

	select {
	case <-s.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HandleCountMessage runs one chat message through the game
func (s *service) HandleCountMessage(ctx context.Context, input *HandleCountMessageInput) (*HandleCountMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !s.isStarted() {
		return nil, ErrNotStarted
	}

	item := &queueItem{
		ctx:   ctx,
		input: input,
		done:  make(chan queueResult, 1),
	}

	if err := s.gate.submit(item); err != nil {
		return nil, err
	}

	select {
	case result := <-item.done:
		return result.output, result.err
	case <-ctx.Done():
		// The worker still processes the item; done is buffered so it
		// never blocks on the abandoned result.
		return nil, ctx.Err()
	}
}

// EvaluateExpression evaluates an expression without touching the
// game. It runs on the caller's goroutine, not through the queue.
func (s *service) EvaluateExpression(ctx context.Context, input *EvaluateExpressionInput) (*EvaluateExpressionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	result, err := s.evaluator.Evaluate(ctx, &expr.EvaluateInput{
		Expression: input.Expression,
	})
	if err != nil {
		return nil, err
	}

	reply, err := s.messages.GetEvalResultMessage(ctx, &messaging.GetEvalResultMessageInput{
		Expression: input.Expression,
		Value:      result.Value,
		Complexity: result.Complexity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format result: %w", err)
	}

	return &EvaluateExpressionOutput{
		Value:      result.Value,
		Complexity: result.Complexity,
		Reply:      reply.Message,
	}, nil
}

// GetGameState returns a snapshot of the current game state
func (s *service) GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error) {
	state := s.snapshot.Load()
	if state == nil {
		return nil, ErrNotStarted
	}

	return &GetGameStateOutput{
		State: state.Clone(),
	}, nil
}

// GetUserStats returns one contributor's lifetime record
func (s *service) GetUserStats(ctx context.Context, input *GetUserStatsInput) (*GetUserStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	stats, err := s.statsRepo.GetUserStats(ctx, &statsRepo.GetUserStatsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	return &GetUserStatsOutput{
		Stats: stats,
	}, nil
}

// GetStatsSummary returns the game-wide totals and current state
func (s *service) GetStatsSummary(ctx context.Context, input *GetStatsSummaryInput) (*GetStatsSummaryOutput, error) {
	state := s.snapshot.Load()
	if state == nil {
		return nil, ErrNotStarted
	}

	global, err := s.statsRepo.GetGlobalStats(ctx, &statsRepo.GetGlobalStatsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get global stats: %w", err)
	}

	leaders, err := s.statsRepo.GetLeaderboard(ctx, &statsRepo.GetLeaderboardInput{
		Limit: s.config.LeaderboardSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetStatsSummaryOutput{
		Global:     global,
		State:      state.Clone(),
		TopEntries: leaders.Entries,
	}, nil
}

// GetLeaderboard returns contributors ranked by accepted counts
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := s.config.LeaderboardSize
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	leaders, err := s.statsRepo.GetLeaderboard(ctx, &statsRepo.GetLeaderboardInput{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetLeaderboardOutput{
		Entries: leaders.Entries,
	}, nil
}

// GetRecentClaims returns the most recent processed attempts
func (s *service) GetRecentClaims(ctx context.Context, input *GetRecentClaimsInput) (*GetRecentClaimsOutput, error) {
	limit := DefaultLeaderboardSize
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	recent, err := s.historyRepo.GetRecent(ctx, &historyRepo.GetRecentInput{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recent claims: %w", err)
	}

	return &GetRecentClaimsOutput{
		Events: recent.Events,
	}, nil
}

// ResetCount starts the game over from zero. The reset rides the same
// queue as game messages so it cannot interleave with a validation.
func (s *service) ResetCount(ctx context.Context, input *ResetCountInput) (*ResetCountOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !s.isStarted() {
		return nil, ErrNotStarted
	}

	item := &queueItem{
		ctx:   ctx,
		reset: input,
		done:  make(chan queueResult, 1),
	}

	if err := s.gate.submit(item); err != nil {
		return nil, err
	}

	select {
	case result := <-item.done:
		return result.resetOutput, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GetHelp returns the game rules
func (s *service) GetHelp(ctx context.Context, input *GetHelpInput) (*GetHelpOutput, error) {
	return &GetHelpOutput{
		Text: helpText,
	}, nil
}

func (s *service) isStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.started
}

// publishSnapshot makes the worker's state visible to readers
func (s *service) publishSnapshot() {
	s.snapshot.Store(s.state.Clone())
}

const helpText = `**How to play**
Post the next number in the game channel. If the count is at 41, the next message must equal 42.

**Expressions count too**
Any of these claim 42: 42, 6*7, sqrt(1764), 41+1, fact(4)+18. Allowed: + - * / ^ !, parentheses, and the functions sqrt, cbrt, abs, floor, ceil, round, sin, cos, tan, log, log2, log10, fact.

**The rules**
- The claim must equal the current count plus one, or it counts as a failed attempt.
- Nobody counts twice in a row. Let someone else go.
- Fancier correct answers earn complexity points on the leaderboard.

**Commands**
/tally eval - try an expression without touching the count
/tally stats - your numbers, or the game totals
/tally leaderboard - top contributors
/tally recent - the last few claims
/tally reset - start over from zero (lifetime stats survive)
/tally help - this message`
