package rules

import "errors"

// Configuration errors. Rule evaluation itself never returns an error;
// failures there are data (Result). Errors are reserved for constraints
// that cannot be compiled into a rule at all.
var (
	// ErrInvalidRange is returned when a range constraint has min > max.
	ErrInvalidRange = errors.New("invalid range constraint")

	// ErrInvalidPattern is returned when a pattern constraint does not compile.
	ErrInvalidPattern = errors.New("invalid pattern constraint")

	// ErrUnknownConstraint is returned for a constraint kind the compiler
	// does not recognize.
	ErrUnknownConstraint = errors.New("unknown constraint kind")
)
