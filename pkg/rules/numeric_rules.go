package rules

import "fmt"

// Number fails when the value cannot be read as a finite number.
// Compose it ahead of range checks when input arrives as free text.
func Number() Rule {
	return func(v Value) Result {
		if _, ok := v.Num(); !ok {
			return FailKeyed("Must be a number", "validation.number", nil)
		}
		return OK()
	}
}

// InRange fails when the numeric value falls outside [min, max]; both
// bounds are inclusive. Non-numeric input fails closed with a
// must-be-a-number message rather than a misleading range message.
func InRange(min, max float64) Rule {
	return func(v Value) Result {
		n, ok := v.Num()
		if !ok {
			return FailKeyed("Must be a number", "validation.number", nil)
		}
		if n < min || n > max {
			return FailKeyed(
				fmt.Sprintf("Must be between %s and %s", formatNumber(min), formatNumber(max)),
				"validation.range",
				map[string]any{"min": formatNumber(min), "max": formatNumber(max)},
			)
		}
		return OK()
	}
}

// Min fails when the numeric value is below the minimum.
func Min(min float64) Rule {
	return func(v Value) Result {
		n, ok := v.Num()
		if !ok {
			return FailKeyed("Must be a number", "validation.number", nil)
		}
		if n < min {
			return FailKeyed(
				fmt.Sprintf("Must be at least %s", formatNumber(min)),
				"validation.min",
				map[string]any{"min": formatNumber(min)},
			)
		}
		return OK()
	}
}

// Max fails when the numeric value is above the maximum.
func Max(max float64) Rule {
	return func(v Value) Result {
		n, ok := v.Num()
		if !ok {
			return FailKeyed("Must be a number", "validation.number", nil)
		}
		if n > max {
			return FailKeyed(
				fmt.Sprintf("Must be at most %s", formatNumber(max)),
				"validation.max",
				map[string]any{"max": formatNumber(max)},
			)
		}
		return OK()
	}
}

// Positive fails when the numeric value is zero or negative.
func Positive() Rule {
	return func(v Value) Result {
		n, ok := v.Num()
		if !ok {
			return FailKeyed("Must be a number", "validation.number", nil)
		}
		if n <= 0 {
			return FailKeyed("Must be positive", "validation.positive", nil)
		}
		return OK()
	}
}
