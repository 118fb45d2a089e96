package counting

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/tallybot/tally/internal/expr"
	"github.com/tallybot/tally/internal/models"
	stateRepo "github.com/tallybot/tally/internal/repositories/gamestate"
	historyRepo "github.com/tallybot/tally/internal/repositories/history"
	statsRepo "github.com/tallybot/tally/internal/repositories/stats"
	"github.com/tallybot/tally/internal/services/messaging"
)

// runWorker drains the queue until the gate closes. All game state
// reads and writes happen on this goroutine, so attempts are judged
// one at a time in arrival order.
func (s *service) runWorker() {
	defer close(s.finished)

	for item := range s.gate.items {
		item.done <- s.handle(item)
	}
}

// handle dispatches one queued request. A panic in one request is
// returned as that request's error and the worker keeps draining.
func (s *service) handle(item *queueItem) (result queueResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic while processing queue item: %v", r)
			result = queueResult{err: fmt.Errorf("%w: %v", ErrProcessingFailed, r)}
		}
	}()

	if item.reset != nil {
		output, err := s.applyReset(item.ctx, item.reset)
		return queueResult{resetOutput: output, err: err}
	}

	output, err := s.process(item.ctx, item.input)
	return queueResult{output: output, err: err}
}

// process judges one game message and applies its effects
func (s *service) process(ctx context.Context, input *HandleCountMessageInput) (*HandleCountMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	now := input.Timestamp
	if now.IsZero() {
		now = s.clock.Now()
	}

	reason, complexity := s.decide(ctx, input)
	outcome, stateChanged := s.apply(reason, complexity, input.AuthorID, now)

	event := &models.CountEvent{
		ID:         s.uuidGen.NewUUID(),
		ChannelID:  input.ChannelID,
		UserID:     input.AuthorID,
		UserName:   input.AuthorName,
		Expression: input.Text,
		Accepted:   outcome.Accepted,
		Reason:     outcome.Reason,
		Count:      outcome.Count,
		Expected:   outcome.Expected,
		Complexity: outcome.Complexity,
		Streak:     outcome.Streak,
		BestStreak: outcome.BestStreak,
		Milestone:  outcome.Milestone,
		Timestamp:  now,
	}

	s.persist(ctx, event, stateChanged)
	s.emit(event)

	return &HandleCountMessageOutput{
		Outcome:   outcome,
		Reply:     s.buildReply(ctx, input, outcome),
		Reactions: reactionsFor(outcome),
	}, nil
}

// decide classifies a message against the current state without
// mutating anything. Checks run in fixed order: evaluation first,
// then turn order, then the value itself.
func (s *service) decide(ctx context.Context, input *HandleCountMessageInput) (models.Reason, int) {
	result, err := s.evaluator.Evaluate(ctx, &expr.EvaluateInput{
		Expression: input.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, expr.ErrDisallowed):
			return models.ReasonDisallowedExpression, 0
		case errors.Is(err, expr.ErrDomain), errors.Is(err, expr.ErrOverflow):
			return models.ReasonNotANumber, 0
		default:
			return models.ReasonUnparseable, 0
		}
	}

	if s.state.LastContributorID != "" && s.state.LastContributorID == input.AuthorID {
		return models.ReasonSameUserTwice, result.Complexity
	}

	if math.Abs(result.Value-float64(s.state.NextExpected())) >= s.config.Epsilon {
		return models.ReasonWrongValue, result.Complexity
	}

	return models.ReasonAccepted, result.Complexity
}

// apply folds a judged attempt into the game state and reports
// whether the state changed
func (s *service) apply(reason models.Reason, complexity int, authorID string, now time.Time) (*Outcome, bool) {
	outcome := &Outcome{
		Reason:     reason,
		Expected:   s.state.NextExpected(),
		Complexity: complexity,
	}

	if reason != models.ReasonAccepted {
		changed := false
		if s.config.ResetStreakOnMiss && s.state.CurrentStreak > 0 {
			outcome.StreakLost = s.state.CurrentStreak
			s.state.CurrentStreak = 0
			s.state.UpdatedAt = now
			s.publishSnapshot()
			changed = true
		}

		outcome.Count = s.state.CurrentCount
		outcome.Streak = s.state.CurrentStreak
		outcome.BestStreak = s.state.BestStreak

		return outcome, changed
	}

	outcome.Accepted = true

	s.state.CurrentCount = outcome.Expected
	s.state.LastContributorID = authorID
	s.state.CurrentStreak++
	if s.state.CurrentStreak > s.state.BestStreak {
		s.state.BestStreak = s.state.CurrentStreak
		outcome.NewBestStreak = true
	}
	s.state.UpdatedAt = now
	s.publishSnapshot()

	outcome.Count = s.state.CurrentCount
	outcome.Streak = s.state.CurrentStreak
	outcome.BestStreak = s.state.BestStreak
	outcome.Milestone = s.milestoneFor(outcome.Count, outcome.Streak, outcome.NewBestStreak)

	return outcome, true
}

// milestoneFor names the milestone an accepted count crossed, if any.
// Round counts take precedence over streak milestones.
func (s *service) milestoneFor(count int64, streak int, newBest bool) string {
	if count%s.config.MilestoneInterval == 0 {
		return fmt.Sprintf("count_%d", count)
	}

	if newBest && streak%s.config.StreakMilestoneInterval == 0 {
		return fmt.Sprintf("streak_%d", streak)
	}

	return ""
}

// persist saves the state and folds the event into the durable
// records. Failures are logged and never stop the worker.
func (s *service) persist(ctx context.Context, event *models.CountEvent, stateChanged bool) {
	if stateChanged {
		err := s.stateRepo.SaveState(ctx, &stateRepo.SaveStateInput{
			State: s.state,
		})
		if err != nil {
			log.Printf("Error saving game state at count %d: %v", s.state.CurrentCount, err)
		}
	}

	err := s.statsRepo.ApplyCountEvent(ctx, &statsRepo.ApplyCountEventInput{
		Event: event,
	})
	if err != nil {
		log.Printf("Error applying stats for event %s: %v", event.ID, err)
	}

	err = s.historyRepo.AddEvent(ctx, &historyRepo.AddEventInput{
		Event: event,
	})
	if err != nil {
		log.Printf("Error appending event %s to history: %v", event.ID, err)
	}
}

// emit publishes the event to analytics when an emitter is wired
func (s *service) emit(event *models.CountEvent) {
	if s.emitter == nil {
		return
	}

	s.emitter.EmitCountEvent(event)

	if event.Milestone != "" {
		s.emitter.EmitMilestone(event.Milestone, event)
	}
}

// buildReply renders the channel reply for an outcome. Accepted counts
// stay quiet unless they hit a milestone; rejections always explain
// themselves. A messaging failure falls back to a plain rendering.
func (s *service) buildReply(ctx context.Context, input *HandleCountMessageInput, outcome *Outcome) string {
	if outcome.Accepted {
		if outcome.Milestone == "" {
			return ""
		}

		reply, err := s.messages.GetMilestoneMessage(ctx, &messaging.GetMilestoneMessageInput{
			UserName:      input.AuthorName,
			Count:         outcome.Count,
			Streak:        outcome.Streak,
			NewBestStreak: outcome.NewBestStreak,
		})
		if err != nil {
			log.Printf("Error building milestone reply: %v", err)
			return fmt.Sprintf("🎉 We reached %d!", outcome.Count)
		}

		return reply.Message
	}

	reply, err := s.messages.GetRejectedMessage(ctx, &messaging.GetRejectedMessageInput{
		UserName:   input.AuthorName,
		Reason:     outcome.Reason,
		Expected:   outcome.Expected,
		StreakLost: outcome.StreakLost,
	})
	if err != nil {
		log.Printf("Error building rejection reply: %v", err)
		return fmt.Sprintf("That didn't count. The next number is %d.", outcome.Expected)
	}

	return reply.Message
}

// reactionsFor picks the emoji acknowledgement for an outcome
func reactionsFor(outcome *Outcome) []string {
	if !outcome.Accepted {
		return []string{"❌"}
	}

	if outcome.Milestone != "" {
		return []string{"✅", "🎉"}
	}

	return []string{"✅"}
}

// applyReset starts the game over. The new state is persisted before
// the in-memory state is replaced, so a failed save leaves the game
// untouched. Lifetime stats and the best streak survive a reset.
func (s *service) applyReset(ctx context.Context, input *ResetCountInput) (*ResetCountOutput, error) {
	previous := s.state.CurrentCount

	reset := s.state.Clone()
	reset.CurrentCount = 0
	reset.LastContributorID = ""
	reset.CurrentStreak = 0
	reset.UpdatedAt = s.clock.Now()

	err := s.stateRepo.SaveState(ctx, &stateRepo.SaveStateInput{
		State: reset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save reset state: %w", err)
	}

	s.state = reset
	s.publishSnapshot()

	log.Printf("Count reset from %d by %s", previous, input.RequestedBy)

	reply, err := s.messages.GetResetMessage(ctx, &messaging.GetResetMessageInput{
		RequestedBy:   input.RequestedBy,
		PreviousCount: previous,
	})
	if err != nil {
		log.Printf("Error building reset reply: %v", err)
		return &ResetCountOutput{
			PreviousCount: previous,
			Reply:         fmt.Sprintf("Count reset. The next number is 1. (was %d)", previous),
		}, nil
	}

	return &ResetCountOutput{
		PreviousCount: previous,
		Reply:         reply.Message,
	}, nil
}
