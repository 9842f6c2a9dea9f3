package rules

// Result is the outcome of evaluating a single rule against a value.
// Message is non-empty exactly when Valid is false. Key and Values carry
// translation metadata for consumers that localize messages; the default
// Message is always usable as-is.
type Result struct {
	Valid   bool
	Message string
	Key     string
	Values  map[string]any
}

// OK returns a passing result.
func OK() Result {
	return Result{Valid: true}
}

// Fail returns a failing result with a human-readable message.
func Fail(message string) Result {
	return Result{Message: message}
}

// FailKeyed returns a failing result carrying a translation key and the
// values needed to render a localized message.
func FailKeyed(message, key string, values map[string]any) Result {
	return Result{Message: message, Key: key, Values: values}
}
