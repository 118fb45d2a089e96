package expr

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_evaluator.go -package=mocks github.com/tallybot/tally/internal/expr Evaluator

// Evaluator defines the interface for turning message text into a number
type Evaluator interface {
	// Evaluate parses and computes an arithmetic expression
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)
}
