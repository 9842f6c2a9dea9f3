// Package rules provides pure, composable field evaluators for form input.
//
// A Rule maps a raw Value to a Result; there is no hidden state, no I/O and
// no panics, so rules are trivially goroutine-safe and deterministic. Rules
// compose with Compose, which short-circuits on the first failure — placing
// Required ahead of a range check guarantees a missing value never produces
// a misleading range message.
//
// Raw input is modeled as a tagged Value (absent, string or number) rather
// than an untyped any, so presence and emptiness have exact meanings:
// numeric zero is a present value, only absent fields and empty strings are
// treated as missing.
//
// # Usage
//
//	weight := rules.Compose(rules.Required(), rules.InRange(66, 440))
//	res := weight(rules.NumberValue(445))
//	// res.Valid == false, res.Message == "Must be between 66 and 440"
//
// Constraints offer a declarative alternative: a closed set of constraint
// kinds (required, range, length, pattern, choice) compiled into a Rule by
// CompileConstraints. Invalid configuration — an inverted range, a pattern
// that does not compile — is reported as an error from the compiler, never
// as a panic at evaluation time. Schema loaders in pkg/schema produce these
// constraints from YAML and OpenAPI documents.
//
// # Error Handling
//
// Validation failure is data: a failing Result with a human-readable
// Message plus a translation Key and Values for localization (see
// pkg/i18n). Go errors are reserved for misconfiguration.
package rules
