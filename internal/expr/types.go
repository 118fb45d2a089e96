package expr

const (
	// DefaultMaxDepth is the nesting ceiling used when the config does not set one
	DefaultMaxDepth = 16

	// DefaultMaxNodes is the size ceiling used when the config does not set one
	DefaultMaxNodes = 64
)

// Config holds configuration for the evaluator
type Config struct {
	// MaxDepth is how deeply parentheses and function calls may nest
	MaxDepth int

	// MaxNodes is the largest number of parsed nodes an expression may contain
	MaxNodes int
}

// EvaluateInput contains parameters for evaluating an expression
type EvaluateInput struct {
	Expression string
}

// EvaluateOutput contains the result of evaluating an expression
type EvaluateOutput struct {
	// Value is the numeric result
	Value float64

	// Complexity scores how elaborate the expression was. A bare number
	// scores zero; operators, functions and nesting raise the score.
	Complexity int
}
