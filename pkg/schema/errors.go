package schema

import "errors"

var (
	// ErrParse is returned when a ruleset document cannot be read.
	ErrParse = errors.New("failed to parse ruleset document")

	// ErrNoFields is returned for a document that defines no fields.
	ErrNoFields = errors.New("ruleset defines no fields")

	// ErrUnknownComponent is returned when the named OpenAPI component
	// schema does not exist.
	ErrUnknownComponent = errors.New("unknown component schema")
)
