package messaging

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/tallybot/tally/internal/models"
)

// service implements the Service interface
type service struct {
	tone MessageTone

	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	tone := ToneFunny
	var seed int64

	if cfg != nil {
		if cfg.PreferredTone != "" {
			tone = cfg.PreferredTone
		}
		seed = cfg.Seed
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &service{
		tone: tone,
		rand: rand.New(source),
	}, nil
}

// GetMilestoneMessage returns a celebratory message for a milestone count
func (s *service) GetMilestoneMessage(ctx context.Context, input *GetMilestoneMessageInput) (*GetMilestoneMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	if s.tone == ToneNeutral {
		messages = []string{
			fmt.Sprintf("Milestone reached: %d (counted by %s).", input.Count, input.UserName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("🎉 %s just landed on %d! Someone frame this message.", input.UserName, input.Count),
			fmt.Sprintf("BIG NUMBER ALERT: %d, courtesy of %s!", input.Count, input.UserName),
			fmt.Sprintf("%s carried us all the way to %d. The counting gods are pleased.", input.UserName, input.Count),
			fmt.Sprintf("That's %d! Take a bow, %s.", input.Count, input.UserName),
			fmt.Sprintf("🎉 %d reached! %s gets the glory, everyone else gets to keep counting.", input.Count, input.UserName),
		}
	}

	// Select a random message
	message := messages[s.rand.Intn(len(messages))]

	if input.NewBestStreak && input.Streak > 0 {
		message += fmt.Sprintf(" That's a new best streak of %d!", input.Streak)
	}

	return &GetMilestoneMessageOutput{
		Message: message,
	}, nil
}

// GetRejectedMessage returns a reply explaining why a count was rejected
func (s *service) GetRejectedMessage(ctx context.Context, input *GetRejectedMessageInput) (*GetRejectedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	if s.tone == ToneNeutral {
		messages = s.neutralRejections(input)
	} else {
		// Select messages based on the rejection reason
		switch input.Reason {
		case models.ReasonWrongValue:
			messages = []string{
				fmt.Sprintf("❌ %s, that's not it. The count needed %d.", input.UserName, input.Expected),
				fmt.Sprintf("So close, %s! Except not close at all. We needed %d.", input.UserName, input.Expected),
				fmt.Sprintf("Math is hard, %s. The next number was %d.", input.UserName, input.Expected),
				fmt.Sprintf("%s broke the chain! We were looking for %d.", input.UserName, input.Expected),
			}
		case models.ReasonSameUserTwice:
			messages = []string{
				fmt.Sprintf("Easy there, %s! Someone else has to count before you go again.", input.UserName),
				fmt.Sprintf("One at a time, %s. Let somebody else have a turn.", input.UserName),
				fmt.Sprintf("%s, you can't count twice in a row. Greedy!", input.UserName),
				fmt.Sprintf("Tag out, %s! The rules say alternate.", input.UserName),
			}
		case models.ReasonUnparseable:
			messages = []string{
				fmt.Sprintf("%s, that's not even math. The count needed %d.", input.UserName, input.Expected),
				fmt.Sprintf("I can't read that, %s. Numbers only, or at least valid math.", input.UserName),
				fmt.Sprintf("%s sent something my parser filed under 'nope'. We needed %d.", input.UserName, input.Expected),
			}
		case models.ReasonDisallowedExpression:
			messages = []string{
				fmt.Sprintf("Nice try, %s, but that expression is off the menu.", input.UserName),
				fmt.Sprintf("%s is getting too fancy. Stick to the allowed operators!", input.UserName),
				fmt.Sprintf("The counting rules don't cover whatever that was, %s.", input.UserName),
			}
		case models.ReasonNotANumber:
			messages = []string{
				fmt.Sprintf("%s, that math broke the universe. No usable number came out.", input.UserName),
				fmt.Sprintf("%s's expression exploded mid-calculation. The count needed %d.", input.UserName, input.Expected),
				fmt.Sprintf("Infinity is not a counting number, %s. We needed %d.", input.UserName, input.Expected),
			}
		default:
			messages = []string{
				fmt.Sprintf("That didn't count, %s. The next number is %d.", input.UserName, input.Expected),
			}
		}
	}

	// Select a random message
	message := messages[s.rand.Intn(len(messages))]

	// A long streak deserves a eulogy
	if input.StreakLost >= 5 {
		message += fmt.Sprintf(" A %d-count streak dies with it.", input.StreakLost)
	}

	return &GetRejectedMessageOutput{
		Message: message,
	}, nil
}

// neutralRejections builds the plain-tone rejection pool
func (s *service) neutralRejections(input *GetRejectedMessageInput) []string {
	switch input.Reason {
	case models.ReasonWrongValue:
		return []string{
			fmt.Sprintf("Wrong number, %s. Expected %d.", input.UserName, input.Expected),
		}
	case models.ReasonSameUserTwice:
		return []string{
			fmt.Sprintf("You cannot count twice in a row, %s. Expected %d from someone else.", input.UserName, input.Expected),
		}
	case models.ReasonUnparseable:
		return []string{
			fmt.Sprintf("Could not parse that as an expression, %s. Expected %d.", input.UserName, input.Expected),
		}
	case models.ReasonDisallowedExpression:
		return []string{
			fmt.Sprintf("That expression uses constructs that are not allowed, %s.", input.UserName),
		}
	case models.ReasonNotANumber:
		return []string{
			fmt.Sprintf("That expression did not produce a usable number, %s. Expected %d.", input.UserName, input.Expected),
		}
	}

	return []string{
		fmt.Sprintf("That did not count, %s. Expected %d.", input.UserName, input.Expected),
	}
}

// GetResetMessage returns an announcement for a count reset
func (s *service) GetResetMessage(ctx context.Context, input *GetResetMessageInput) (*GetResetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	if s.tone == ToneNeutral {
		messages = []string{
			fmt.Sprintf("Count reset by %s. Previous count: %d. The next number is 1.", input.RequestedBy, input.PreviousCount),
		}
	} else {
		messages = []string{
			fmt.Sprintf("🔁 %s wiped the slate clean at %d. Fresh start, everyone. The next number is 1!", input.RequestedBy, input.PreviousCount),
			fmt.Sprintf("Hard reset by %s! The count was %d. It is now very much not %d.", input.RequestedBy, input.PreviousCount, input.PreviousCount),
			fmt.Sprintf("The count is back to zero, thanks to %s. It was %d. Start from 1!", input.RequestedBy, input.PreviousCount),
		}
	}

	// Select a random message
	message := messages[s.rand.Intn(len(messages))]

	return &GetResetMessageOutput{
		Message: message,
	}, nil
}

// GetEvalResultMessage returns the reply for an evaluation-only request.
// Unlike the game replies this is deterministic, since people use it to
// check their math.
func (s *service) GetEvalResultMessage(ctx context.Context, input *GetEvalResultMessageInput) (*GetEvalResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := fmt.Sprintf("🧮 `%s` = **%s**", input.Expression, FormatValue(input.Value))
	if input.Complexity > 0 {
		message += fmt.Sprintf(" (complexity %d)", input.Complexity)
	}

	return &GetEvalResultMessageOutput{
		Message: message,
	}, nil
}

// FormatValue renders a result the way people write numbers in chat:
// integers without a decimal point, everything else in compact form
func FormatValue(value float64) string {
	rounded := math.Round(value)
	if math.Abs(value-rounded) < 1e-9 && math.Abs(value) < 1e15 {
		return strconv.FormatInt(int64(rounded), 10)
	}

	return strconv.FormatFloat(value, 'g', -1, 64)
}
