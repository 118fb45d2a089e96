package counting

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tallybot/tally/internal/common/clock"
	"github.com/tallybot/tally/internal/common/uuid"
	"github.com/tallybot/tally/internal/expr"
	stateRepo "github.com/tallybot/tally/internal/repositories/gamestate"
	historyRepo "github.com/tallybot/tally/internal/repositories/history"
	statsRepo "github.com/tallybot/tally/internal/repositories/stats"
	"github.com/tallybot/tally/internal/services/messaging"
)

func TestGateDeliversInSubmissionOrder(t *testing.T) {
	g := newGate(16)

	for i := 0; i < 5; i++ {
		err := g.submit(&queueItem{
			input: &HandleCountMessageInput{MessageID: strconv.Itoa(i)},
			done:  make(chan queueResult, 1),
		})
		require.NoError(t, err)
	}
	g.close()

	var got []string
	for item := range g.items {
		got = append(got, item.input.MessageID)
	}

	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, got)
}

func TestGateRejectsWhenFull(t *testing.T) {
	g := newGate(1)

	require.NoError(t, g.submit(&queueItem{done: make(chan queueResult, 1)}))

	err := g.submit(&queueItem{done: make(chan queueResult, 1)})
	assert.Equal(t, ErrQueueFull, err)
}

func TestGateRejectsAfterClose(t *testing.T) {
	g := newGate(4)
	g.close()

	err := g.submit(&queueItem{done: make(chan queueResult, 1)})
	assert.Equal(t, ErrShutdown, err)
}

func TestGateStillDeliversQueuedItemsAfterClose(t *testing.T) {
	g := newGate(4)

	item := &queueItem{done: make(chan queueResult, 1)}
	require.NoError(t, g.submit(item))
	g.close()

	received, ok := <-g.items
	require.True(t, ok)
	assert.Same(t, item, received)

	_, ok = <-g.items
	assert.False(t, ok)
}

func TestGateCloseIsIdempotent(t *testing.T) {
	g := newGate(4)

	g.close()
	g.close()
}

// SequentialProcessingTestSuite runs the whole game against a real
// evaluator and real Redis-backed repositories
type SequentialProcessingTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	service Service
	ctx     context.Context
}

func (s *SequentialProcessingTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.ctx = context.Background()

	s.service = s.newService()
	s.Require().NoError(s.service.Start(s.ctx))
}

func (s *SequentialProcessingTestSuite) TearDownTest() {
	_ = s.service.Stop(s.ctx)
	s.client.Close()
	s.mr.Close()
}

// newService wires a counting service with real dependencies on top
// of the suite's Redis server
func (s *SequentialProcessingTestSuite) newService() Service {
	gameStateRepo, err := stateRepo.NewRedis(&stateRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	countStatsRepo, err := statsRepo.NewRedis(&statsRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	claimsRepo, err := historyRepo.NewRedis(&historyRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	evaluator, err := expr.New(&expr.Config{})
	s.Require().NoError(err)

	messages, err := messaging.NewService(&messaging.Config{Seed: 1})
	s.Require().NoError(err)

	svc, err := New(&Config{
		StateRepo:   gameStateRepo,
		StatsRepo:   countStatsRepo,
		HistoryRepo: claimsRepo,
		Evaluator:   evaluator,
		Messages:    messages,
		Clock:       clock.New(),
		UUIDGen:     uuid.New(),
	})
	s.Require().NoError(err)

	return svc
}

// countTo plays n accepted counts from two alternating users
func (s *SequentialProcessingTestSuite) countTo(n int64) {
	users := []string{"user-a", "user-b"}

	for i := int64(1); i <= n; i++ {
		author := users[i%2]

		output, err := s.service.HandleCountMessage(s.ctx, &HandleCountMessageInput{
			MessageID:  fmt.Sprintf("msg-%d", i),
			ChannelID:  "channel-1",
			AuthorID:   author,
			AuthorName: author,
			Text:       strconv.FormatInt(i, 10),
		})
		s.Require().NoError(err)
		s.Require().True(output.Outcome.Accepted, "count %d should be accepted", i)
		s.Require().Equal(i, output.Outcome.Count)
	}
}

func TestSequentialProcessingSuite(t *testing.T) {
	suite.Run(t, new(SequentialProcessingTestSuite))
}

func (s *SequentialProcessingTestSuite) TestCountsToFiftyWithAlternatingUsers() {
	s.countTo(50)

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{})
	s.Require().NoError(err)
	s.Equal(int64(50), state.State.CurrentCount)
	s.Equal(50, state.State.CurrentStreak)
	s.Equal(50, state.State.BestStreak)
	s.Equal("user-a", state.State.LastContributorID)

	summary, err := s.service.GetStatsSummary(s.ctx, &GetStatsSummaryInput{})
	s.Require().NoError(err)
	s.Equal(int64(50), summary.Global.TotalMessages)
	s.Equal(int64(50), summary.Global.TotalAccepted)
	s.Equal(int64(0), summary.Global.TotalRejected)
	s.Equal(int64(50), summary.Global.HighestCountReached)
	s.Equal(50, summary.Global.BestStreak)

	// The two contributors split the counts evenly
	s.Require().Len(summary.TopEntries, 2)
	s.Equal(int64(25), summary.TopEntries[0].SuccessfulCounts)
	s.Equal(int64(25), summary.TopEntries[1].SuccessfulCounts)
}

func (s *SequentialProcessingTestSuite) TestExpressionsAdvanceTheCount() {
	claims := []struct {
		author string
		text   string
	}{
		{"user-a", "1"},
		{"user-b", "3-1"},
		{"user-a", "sqrt(9)"},
		{"user-b", "2^2"},
		{"user-a", "fact(5)/24"},
	}

	for i, claim := range claims {
		output, err := s.service.HandleCountMessage(s.ctx, &HandleCountMessageInput{
			MessageID:  fmt.Sprintf("msg-%d", i),
			ChannelID:  "channel-1",
			AuthorID:   claim.author,
			AuthorName: claim.author,
			Text:       claim.text,
		})
		s.Require().NoError(err)
		s.Require().True(output.Outcome.Accepted, "claim %q should be accepted", claim.text)
	}

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{})
	s.Require().NoError(err)
	s.Equal(int64(5), state.State.CurrentCount)
}

func (s *SequentialProcessingTestSuite) TestMissesAndTurnOrderEndToEnd() {
	play := []struct {
		author   string
		text     string
		accepted bool
	}{
		{"user-a", "1", true},
		{"user-b", "5", false},  // wrong number, expected 2
		{"user-b", "2", true},   // a failed attempt does not take the turn
		{"user-b", "3", false},  // but an accepted one does
		{"user-a", "3", true},
	}

	for i, claim := range play {
		output, err := s.service.HandleCountMessage(s.ctx, &HandleCountMessageInput{
			MessageID:  fmt.Sprintf("msg-%d", i),
			ChannelID:  "channel-1",
			AuthorID:   claim.author,
			AuthorName: claim.author,
			Text:       claim.text,
		})
		s.Require().NoError(err)
		s.Require().Equal(claim.accepted, output.Outcome.Accepted, "claim %d", i)
	}

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{})
	s.Require().NoError(err)
	s.Equal(int64(3), state.State.CurrentCount)
	s.Equal(3, state.State.CurrentStreak)

	summary, err := s.service.GetStatsSummary(s.ctx, &GetStatsSummaryInput{})
	s.Require().NoError(err)
	s.Equal(int64(5), summary.Global.TotalMessages)
	s.Equal(int64(3), summary.Global.TotalAccepted)
	s.Equal(int64(2), summary.Global.TotalRejected)
}

func (s *SequentialProcessingTestSuite) TestConcurrentSubmissionsAreSerialized() {
	const workers = 16

	// Every worker claims a distinct number from a distinct user, all
	// at once
	outputs := make([]*HandleCountMessageOutput, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()

			output, err := s.service.HandleCountMessage(s.ctx, &HandleCountMessageInput{
				MessageID:  fmt.Sprintf("msg-%d", n),
				ChannelID:  "channel-1",
				AuthorID:   fmt.Sprintf("user-%02d", n),
				AuthorName: fmt.Sprintf("User %d", n),
				Text:       strconv.Itoa(n + 1),
			})
			if err == nil {
				outputs[n] = output
			}
		}(i)
	}
	wg.Wait()

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{})
	s.Require().NoError(err)
	final := state.State.CurrentCount

	// Every message got a verdict
	accepted := int64(0)
	for n, output := range outputs {
		s.Require().NotNil(output, "message %d got no verdict", n)
		if output.Outcome.Accepted {
			accepted++
		}
	}

	// However the submissions interleaved, the accepted claims are
	// exactly 1 through the final count: one message per step, no
	// skips, no double counting
	s.Equal(final, accepted)
	s.GreaterOrEqual(final, int64(1))
	for n, output := range outputs {
		value := int64(n + 1)
		s.Equal(value <= final, output.Outcome.Accepted, "claim %d", value)
		if output.Outcome.Accepted {
			s.Equal(value, output.Outcome.Count)
		}
	}

	summary, err := s.service.GetStatsSummary(s.ctx, &GetStatsSummaryInput{})
	s.Require().NoError(err)
	s.Equal(int64(workers), summary.Global.TotalMessages)
	s.Equal(accepted, summary.Global.TotalAccepted)
	s.Equal(int64(workers)-accepted, summary.Global.TotalRejected)
}

func (s *SequentialProcessingTestSuite) TestRestartResumesFromPersistedState() {
	s.countTo(3)

	s.Require().NoError(s.service.Stop(s.ctx))

	// A new service over the same Redis picks the game up where it
	// stopped
	restarted := s.newService()
	s.Require().NoError(restarted.Start(s.ctx))
	defer func() { _ = restarted.Stop(s.ctx) }()

	state, err := restarted.GetGameState(s.ctx, &GetGameStateInput{})
	s.Require().NoError(err)
	s.Equal(int64(3), state.State.CurrentCount)

	output, err := restarted.HandleCountMessage(s.ctx, &HandleCountMessageInput{
		MessageID:  "msg-after-restart",
		ChannelID:  "channel-1",
		AuthorID:   "user-c",
		AuthorName: "user-c",
		Text:       "4",
	})
	s.Require().NoError(err)
	s.True(output.Outcome.Accepted)
	s.Equal(int64(4), output.Outcome.Count)
}

func (s *SequentialProcessingTestSuite) TestEvalOnlyLeavesTheGameAlone() {
	s.countTo(2)

	output, err := s.service.EvaluateExpression(s.ctx, &EvaluateExpressionInput{
		Expression: "2^10",
	})
	s.Require().NoError(err)
	s.Equal(float64(1024), output.Value)
	s.Contains(output.Reply, "1024")

	// The game did not move and nothing was recorded
	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{})
	s.Require().NoError(err)
	s.Equal(int64(2), state.State.CurrentCount)

	summary, err := s.service.GetStatsSummary(s.ctx, &GetStatsSummaryInput{})
	s.Require().NoError(err)
	s.Equal(int64(2), summary.Global.TotalMessages)
}

func (s *SequentialProcessingTestSuite) TestResetStartsTheGameOver() {
	s.countTo(7)

	output, err := s.service.ResetCount(s.ctx, &ResetCountInput{RequestedBy: "Moderator"})
	s.Require().NoError(err)
	s.Equal(int64(7), output.PreviousCount)
	s.NotEmpty(output.Reply)

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{})
	s.Require().NoError(err)
	s.Equal(int64(0), state.State.CurrentCount)
	s.Empty(state.State.LastContributorID)
	s.Equal(0, state.State.CurrentStreak)
	s.Equal(7, state.State.BestStreak)

	// Anyone may open the new game
	first, err := s.service.HandleCountMessage(s.ctx, &HandleCountMessageInput{
		MessageID:  "msg-after-reset",
		ChannelID:  "channel-1",
		AuthorID:   "user-a",
		AuthorName: "user-a",
		Text:       "1",
	})
	s.Require().NoError(err)
	s.True(first.Outcome.Accepted)
}
