package expr

import "errors"

var (
	// ErrUnparseable is returned when the input cannot be read as an expression
	ErrUnparseable = errors.New("expression cannot be parsed")

	// ErrDisallowed is returned when the expression uses a construct outside the
	// allowed grammar, or exceeds the nesting or size ceilings
	ErrDisallowed = errors.New("expression uses a disallowed construct")

	// ErrDomain is returned when evaluation is undefined for the given operands,
	// such as division by zero or the square root of a negative number
	ErrDomain = errors.New("expression is undefined for these values")

	// ErrOverflow is returned when the result exceeds the representable range
	ErrOverflow = errors.New("expression result is too large")
)
