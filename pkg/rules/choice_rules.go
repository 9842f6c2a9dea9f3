package rules

import (
	"fmt"
	"strings"
)

// OneOf fails when the string form of the value is not one of the allowed
// options. Comparison is exact; normalize case upstream if needed.
func OneOf(allowed ...string) Rule {
	return func(v Value) Result {
		s := v.Str()
		for _, a := range allowed {
			if s == a {
				return OK()
			}
		}
		return FailKeyed(
			fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")),
			"validation.one_of",
			map[string]any{"allowed": allowed},
		)
	}
}
