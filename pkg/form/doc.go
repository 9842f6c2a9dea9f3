// Package form aggregates per-field rule results into whole-form validity.
//
// The caller supplies a State (raw values keyed by field name) and a
// RuleSet (an evaluator per field); Evaluate runs every field independently
// and derives a single overall flag. The full per-field map is always
// returned — nothing is collapsed, so consumers can always tell which
// field failed and why.
//
//	rs := form.RuleSet{
//		"name":   form.Field(rules.Required()),
//		"weight": form.Field(rules.Compose(rules.Required(), rules.InRange(66, 440))),
//	}
//	v := form.Evaluate(form.State{"name": rules.StringValue("John")}, rs)
//	v.OK() // false: weight is missing
//
// Dependent wires a field's rule to a companion field's current value,
// which is how unit-dependent ranges are expressed (pounds vs kilograms
// selecting different bounds for the same weight field).
//
// Validator adds optional input normalization (pkg/sanitizer) and message
// localization (pkg/i18n) around the same pure evaluation. Instances are
// constructed explicitly and passed to consumers; the package holds no
// shared state.
package form
