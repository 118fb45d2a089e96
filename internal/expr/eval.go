package expr

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// factorials stay representable in a float64 up to 170!
const maxFactorial = 170

// tolerance when deciding whether a factorial argument is an integer
const factorialEpsilon = 1e-9

// evaluator implements the Evaluator interface with a fixed grammar
type evaluator struct {
	maxDepth int
	maxNodes int
}

// New creates an evaluator enforcing the configured ceilings
func New(cfg *Config) (*evaluator, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	maxNodes := cfg.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	return &evaluator{
		maxDepth: maxDepth,
		maxNodes: maxNodes,
	}, nil
}

// Evaluate parses and computes an arithmetic expression
func (e *evaluator) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	trimmed := strings.TrimSpace(input.Expression)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrUnparseable)
	}

	tokens, err := newLexer(trimmed).tokens()
	if err != nil {
		return nil, err
	}

	root, err := newParser(tokens, e.maxDepth).parse()
	if err != nil {
		return nil, err
	}

	nodes, depth := measure(root)
	if nodes > e.maxNodes {
		return nil, fmt.Errorf("%w: expression has %d terms, the limit is %d", ErrDisallowed, nodes, e.maxNodes)
	}

	value, err := eval(root)
	if err != nil {
		return nil, err
	}

	return &EvaluateOutput{
		Value:      value,
		Complexity: score(root, depth),
	}, nil
}

func eval(n node) (float64, error) {
	switch v := n.(type) {
	case *numberNode:
		return v.value, nil

	case *negateNode:
		operand, err := eval(v.operand)
		if err != nil {
			return 0, err
		}
		return -operand, nil

	case *binaryNode:
		return evalBinary(v)

	case *callNode:
		arg, err := eval(v.arg)
		if err != nil {
			return 0, err
		}
		return evalCall(v.name, arg)
	}

	return 0, fmt.Errorf("%w: unknown expression node", ErrUnparseable)
}

func evalBinary(n *binaryNode) (float64, error) {
	left, err := eval(n.left)
	if err != nil {
		return 0, err
	}

	right, err := eval(n.right)
	if err != nil {
		return 0, err
	}

	var result float64
	switch n.op {
	case tokenPlus:
		result = left + right
	case tokenMinus:
		result = left - right
	case tokenStar:
		result = left * right
	case tokenSlash:
		if right == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrDomain)
		}
		result = left / right
	case tokenCaret:
		result = math.Pow(left, right)
	default:
		return 0, fmt.Errorf("%w: unknown operator", ErrUnparseable)
	}

	return checkRange(result)
}

func evalCall(name string, arg float64) (float64, error) {
	fn, ok := functions[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown function %q", ErrDisallowed, name)
	}

	value, err := fn(arg)
	if err != nil {
		return 0, err
	}

	return checkRange(value)
}

// checkRange rejects values that left the representable range
func checkRange(value float64) (float64, error) {
	if math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: result exceeds the float64 range", ErrOverflow)
	}

	if math.IsNaN(value) {
		return 0, fmt.Errorf("%w: result is not a number", ErrDomain)
	}

	return value, nil
}

// functions is the fixed allow-list. Anything not listed here is
// rejected at parse time.
var functions = map[string]func(float64) (float64, error){
	"sqrt":  squareRoot,
	"cbrt":  plain(math.Cbrt),
	"abs":   plain(math.Abs),
	"floor": plain(math.Floor),
	"ceil":  plain(math.Ceil),
	"round": plain(math.Round),
	"log":   logarithm("log", math.Log),
	"log2":  logarithm("log2", math.Log2),
	"log10": logarithm("log10", math.Log10),
	"sin":   plain(math.Sin),
	"cos":   plain(math.Cos),
	"tan":   plain(math.Tan),
	"fact":  factorial,
}

func isAllowedFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

func normalizeFunction(name string) string {
	return strings.ToLower(name)
}

// plain adapts a total function into the table signature
func plain(fn func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		return fn(x), nil
	}
}

// logarithm wraps a log variant with its positive-argument domain check
func logarithm(name string, fn func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if x <= 0 {
			return 0, fmt.Errorf("%w: %s of a non-positive number", ErrDomain, name)
		}
		return fn(x), nil
	}
}

func squareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: square root of a negative number", ErrDomain)
	}
	return math.Sqrt(x), nil
}

func factorial(x float64) (float64, error) {
	rounded := math.Round(x)
	if math.Abs(x-rounded) > factorialEpsilon || rounded < 0 {
		return 0, fmt.Errorf("%w: factorial needs a non-negative integer", ErrDomain)
	}

	if rounded > maxFactorial {
		return 0, fmt.Errorf("%w: factorial of %d", ErrOverflow, int64(rounded))
	}

	result := 1.0
	for i := 2.0; i <= rounded; i++ {
		result *= i
	}

	return result, nil
}
