package form

import (
	"sort"

	"github.com/formcheck/formcheck/pkg/rules"
)

// State holds the current raw values of a form, keyed by field name.
// It is created fresh per form session, mutated by the caller on every
// edit, and discarded when the form is submitted or abandoned. Indexing
// a missing field yields an absent value.
type State map[string]rules.Value

// FieldRule evaluates one field given its raw value and the full form
// state. The state parameter supports rules that depend on a companion
// field; plain rules ignore it.
type FieldRule func(value rules.Value, state State) rules.Result

// RuleSet maps field names to their evaluators. The set of fields to
// evaluate comes from the RuleSet, not the State: a field with a rule but
// no value is evaluated as absent.
type RuleSet map[string]FieldRule

// Field adapts a plain rule into a FieldRule.
func Field(r rules.Rule) FieldRule {
	return func(v rules.Value, _ State) rules.Result {
		return r(v)
	}
}

// Dependent selects the rule for a field from a companion field's value at
// evaluation time. This is how unit-dependent ranges work: the weight
// field's bounds are picked from the current value of the units field.
func Dependent(companion string, pick func(companion rules.Value) rules.Rule) FieldRule {
	return func(v rules.Value, state State) rules.Result {
		return pick(state[companion])(v)
	}
}

// Validity is the outcome of evaluating a whole form: one Result per
// field plus the derived overall flag. It is recomputed fully on every
// evaluation and never persisted.
type Validity struct {
	Fields map[string]rules.Result
	Valid  bool
}

// Evaluate runs every field in the rule set against the state and derives
// overall validity. An empty rule set is vacuously valid.
func Evaluate(state State, rs RuleSet) Validity {
	v := Validity{Fields: make(map[string]rules.Result, len(rs)), Valid: true}
	for name, rule := range rs {
		res := rule(state[name], state)
		v.Fields[name] = res
		if !res.Valid {
			v.Valid = false
		}
	}
	return v
}

// IsValid reports whether every field passed. Empty validity (no fields)
// is valid.
func IsValid(v Validity) bool {
	return v.Valid
}

// OK is the method form of IsValid.
func (v Validity) OK() bool {
	return v.Valid
}

// Messages returns the failure message per failing field. The library
// deliberately keeps the full per-field map; consumers needing a single
// summary derive it themselves, e.g. with First.
func (v Validity) Messages() map[string]string {
	out := make(map[string]string)
	for name, res := range v.Fields {
		if !res.Valid {
			out[name] = res.Message
		}
	}
	return out
}

// First returns the first failing field in lexical order, for consumers
// that want one summary line. ok is false when the form is valid.
func (v Validity) First() (field, message string, ok bool) {
	names := make([]string, 0, len(v.Fields))
	for name, res := range v.Fields {
		if !res.Valid {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", "", false
	}
	sort.Strings(names)
	return names[0], v.Fields[names[0]].Message, true
}
