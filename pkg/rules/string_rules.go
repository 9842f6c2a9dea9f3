package rules

import (
	"fmt"
	"regexp"
)

// MinLen fails when the string form of the value is shorter than min runes.
func MinLen(min int) Rule {
	return func(v Value) Result {
		if len([]rune(v.Str())) < min {
			return FailKeyed(
				fmt.Sprintf("Must be at least %d characters", min),
				"validation.min_length",
				map[string]any{"min": min},
			)
		}
		return OK()
	}
}

// MaxLen fails when the string form of the value is longer than max runes.
func MaxLen(max int) Rule {
	return func(v Value) Result {
		if len([]rune(v.Str())) > max {
			return FailKeyed(
				fmt.Sprintf("Must be at most %d characters", max),
				"validation.max_length",
				map[string]any{"max": max},
			)
		}
		return OK()
	}
}

// Matches fails when the string form of the value does not match the
// pattern. The pattern is compiled by the caller so that a bad expression
// surfaces as a configuration error instead of a panic at evaluation time;
// description names the expected format in the failure message.
func Matches(re *regexp.Regexp, description string) Rule {
	return func(v Value) Result {
		if !re.MatchString(v.Str()) {
			return FailKeyed(
				fmt.Sprintf("Must match %s format", description),
				"validation.pattern",
				map[string]any{"description": description},
			)
		}
		return OK()
	}
}
