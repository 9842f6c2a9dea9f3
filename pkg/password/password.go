// Package password checks password complexity and scores strength for
// strength-meter style feedback. Checks report through rules.Result like
// every other field evaluator; nothing here hashes or stores secrets.
package password

import (
	"fmt"
	"unicode"

	"github.com/formcheck/formcheck/pkg/rules"
)

// Policy describes the complexity a password must meet.
type Policy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinClasses       int
}

// DefaultPolicy returns an 8-128 character policy requiring three of the
// four character classes.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:  8,
		MaxLength:  128,
		MinClasses: 3,
	}
}

type classes struct {
	upper, lower, digit, special bool
}

func (c classes) count() int {
	n := 0
	for _, has := range []bool{c.upper, c.lower, c.digit, c.special} {
		if has {
			n++
		}
	}
	return n
}

func classify(password string) classes {
	var c classes
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		case unicode.IsSpace(r):
		default:
			c.special = true
		}
	}
	return c
}

// Check evaluates a password against a policy.
func Check(password string, p Policy) rules.Result {
	fail := func(msg string) rules.Result {
		return rules.FailKeyed(msg, "validation.password", map[string]any{
			"min_length": p.MinLength,
			"max_length": p.MaxLength,
		})
	}

	n := len([]rune(password))
	if n < p.MinLength {
		return fail(fmt.Sprintf("Must be at least %d characters", p.MinLength))
	}
	if p.MaxLength > 0 && n > p.MaxLength {
		return fail(fmt.Sprintf("Must be at most %d characters", p.MaxLength))
	}

	c := classify(password)
	switch {
	case p.RequireUppercase && !c.upper:
		return fail("Must contain an uppercase letter")
	case p.RequireLowercase && !c.lower:
		return fail("Must contain a lowercase letter")
	case p.RequireDigits && !c.digit:
		return fail("Must contain a digit")
	case p.RequireSpecial && !c.special:
		return fail("Must contain a special character")
	}

	if c.count() < p.MinClasses {
		return fail(fmt.Sprintf("Must mix at least %d character types", p.MinClasses))
	}
	if IsCommon(password) {
		return fail("Too common")
	}
	return rules.OK()
}

// Rule adapts a policy check to a field rule.
func Rule(p Policy) rules.Rule {
	return func(v rules.Value) rules.Result {
		return Check(v.Str(), p)
	}
}
