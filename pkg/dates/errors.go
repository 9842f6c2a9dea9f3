package dates

import "errors"

var (
	// ErrOutOfRange is returned for a component that names no real
	// calendar day, such as day 0 or month 13.
	ErrOutOfRange = errors.New("date component out of range")

	// ErrMalformed is returned for text that is not in YYYY-MM-DD form.
	ErrMalformed = errors.New("malformed date")
)
