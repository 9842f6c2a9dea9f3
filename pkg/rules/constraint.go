package rules

import (
	"fmt"
	"regexp"
)

// Constraint is one member of the closed set of declarative field
// constraints. Constraints are data; CompileConstraints turns a set of
// them into an executable Rule. The set is sealed so that every kind is
// handled exhaustively at compile time.
type Constraint interface {
	constraint()
}

// RequiredConstraint marks a field as mandatory.
type RequiredConstraint struct{}

// RangeConstraint bounds a numeric field inclusively on both sides.
type RangeConstraint struct {
	Min, Max float64
}

// MinConstraint bounds a numeric field from below.
type MinConstraint struct {
	Value float64
}

// MaxConstraint bounds a numeric field from above.
type MaxConstraint struct {
	Value float64
}

// MinLenConstraint requires at least N characters.
type MinLenConstraint struct {
	N int
}

// MaxLenConstraint allows at most N characters.
type MaxLenConstraint struct {
	N int
}

// PatternConstraint requires the value to match a regular expression.
// Description names the expected format in failure messages; when empty
// the pattern itself is used.
type PatternConstraint struct {
	Pattern     string
	Description string
}

// ChoiceConstraint restricts the value to a fixed set of options.
type ChoiceConstraint struct {
	Options []string
}

func (RequiredConstraint) constraint() {}
func (RangeConstraint) constraint()    {}
func (MinConstraint) constraint()      {}
func (MaxConstraint) constraint()      {}
func (MinLenConstraint) constraint()   {}
func (MaxLenConstraint) constraint()   {}
func (PatternConstraint) constraint()  {}
func (ChoiceConstraint) constraint()   {}

// NewRange builds a RangeConstraint, rejecting an inverted range as a
// configuration error instead of panicking or silently swapping bounds.
func NewRange(min, max float64) (RangeConstraint, error) {
	if min > max {
		return RangeConstraint{}, fmt.Errorf("%w: min %s > max %s", ErrInvalidRange, formatNumber(min), formatNumber(max))
	}
	return RangeConstraint{Min: min, Max: max}, nil
}

// CompileConstraints builds a single Rule from a set of constraints.
// Presence always runs first, so a missing value reports "Required" and
// never a range or format message. Fields without a RequiredConstraint
// are treated as optional: empty input passes, supplied input is checked.
func CompileConstraints(cs ...Constraint) (Rule, error) {
	var required bool
	var checks []Rule

	for _, c := range cs {
		switch c := c.(type) {
		case RequiredConstraint:
			required = true
		case RangeConstraint:
			if c.Min > c.Max {
				return nil, fmt.Errorf("%w: min %s > max %s", ErrInvalidRange, formatNumber(c.Min), formatNumber(c.Max))
			}
			checks = append(checks, InRange(c.Min, c.Max))
		case MinConstraint:
			checks = append(checks, Min(c.Value))
		case MaxConstraint:
			checks = append(checks, Max(c.Value))
		case MinLenConstraint:
			checks = append(checks, MinLen(c.N))
		case MaxLenConstraint:
			checks = append(checks, MaxLen(c.N))
		case PatternConstraint:
			re, err := regexp.Compile(c.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, c.Pattern, err)
			}
			desc := c.Description
			if desc == "" {
				desc = c.Pattern
			}
			checks = append(checks, Matches(re, desc))
		case ChoiceConstraint:
			checks = append(checks, OneOf(c.Options...))
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownConstraint, c)
		}
	}

	rest := Compose(checks...)
	if required {
		return Compose(Required(), rest), nil
	}
	return Optional(rest), nil
}
