package form

import (
	"maps"

	"github.com/formcheck/formcheck/pkg/rules"
	"github.com/formcheck/formcheck/pkg/sanitizer"
)

// TranslateFunc renders a localized message from a translation key and its
// values. Returning an empty string keeps the rule's default message.
type TranslateFunc func(key string, values map[string]any) string

// Validator binds a rule set to optional normalization and translation.
// Construct one explicitly and pass it to consumers; there is no package
// level instance, so tests stay isolated.
type Validator struct {
	rules     RuleSet
	normalize *sanitizer.Normalizer
	translate TranslateFunc
}

// Option configures a Validator.
type Option func(*Validator)

// WithNormalizer applies per-field normalization to string values before
// rules run.
func WithNormalizer(n *sanitizer.Normalizer) Option {
	return func(v *Validator) { v.normalize = n }
}

// WithTranslator localizes failure messages. The field name is added to
// the translation values under "field".
func WithTranslator(t TranslateFunc) Option {
	return func(v *Validator) { v.translate = t }
}

// New builds a Validator over the given rule set.
func New(rs RuleSet, opts ...Option) *Validator {
	v := &Validator{rules: rs}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Evaluate normalizes the state, runs every field rule and localizes any
// failure messages. The input state is not mutated.
func (v *Validator) Evaluate(state State) Validity {
	if v.normalize != nil {
		state = v.normalized(state)
	}

	out := Evaluate(state, v.rules)
	if v.translate == nil {
		return out
	}

	for name, res := range out.Fields {
		if res.Valid || res.Key == "" {
			continue
		}
		values := maps.Clone(res.Values)
		if values == nil {
			values = make(map[string]any, 1)
		}
		values["field"] = name
		if msg := v.translate(res.Key, values); msg != "" {
			res.Message = msg
			out.Fields[name] = res
		}
	}
	return out
}

// normalized cleans every string value in the state, not just ruled
// fields: companion fields consulted by dependent rules need the same
// treatment. The caller's state is left untouched.
func (v *Validator) normalized(state State) State {
	clean := make(State, len(state))
	for name, val := range state {
		if val.IsString() {
			clean[name] = rules.StringValue(v.normalize.Normalize(name, val.Str()))
			continue
		}
		clean[name] = val
	}
	return clean
}
