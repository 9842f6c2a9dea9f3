package schema

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/formcheck/formcheck/pkg/form"
	"github.com/formcheck/formcheck/pkg/rules"
)

// Schema is a compiled set of per-field constraints, ready to be turned
// into a form rule set.
type Schema struct {
	fields map[string][]rules.Constraint
}

type rangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type fieldSpec struct {
	Required bool       `yaml:"required"`
	Range    *rangeSpec `yaml:"range"`
	Min      *float64   `yaml:"min"`
	Max      *float64   `yaml:"max"`
	MinLen   *int       `yaml:"min_len"`
	MaxLen   *int       `yaml:"max_len"`
	Pattern  string     `yaml:"pattern"`
	OneOf    []string   `yaml:"one_of"`
}

type document struct {
	Fields map[string]fieldSpec `yaml:"fields"`
}

// Parse reads a YAML ruleset document:
//
//	fields:
//	  name:   {required: true}
//	  weight: {required: true, range: {min: 66, max: 440}}
//	  units:  {required: true, one_of: [lb, kg]}
//
// Misconfiguration — an inverted range, an empty document — is reported
// as an error at parse time, before any value is ever evaluated.
func Parse(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(doc.Fields) == 0 {
		return nil, ErrNoFields
	}

	s := &Schema{fields: make(map[string][]rules.Constraint, len(doc.Fields))}
	for name, spec := range doc.Fields {
		cs, err := spec.constraints()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		s.fields[name] = cs
	}
	return s, nil
}

func (f fieldSpec) constraints() ([]rules.Constraint, error) {
	var cs []rules.Constraint
	if f.Required {
		cs = append(cs, rules.RequiredConstraint{})
	}
	if f.Range != nil {
		r, err := rules.NewRange(f.Range.Min, f.Range.Max)
		if err != nil {
			return nil, err
		}
		cs = append(cs, r)
	}
	if f.Min != nil {
		cs = append(cs, rules.MinConstraint{Value: *f.Min})
	}
	if f.Max != nil {
		cs = append(cs, rules.MaxConstraint{Value: *f.Max})
	}
	if f.MinLen != nil {
		cs = append(cs, rules.MinLenConstraint{N: *f.MinLen})
	}
	if f.MaxLen != nil {
		cs = append(cs, rules.MaxLenConstraint{N: *f.MaxLen})
	}
	if f.Pattern != "" {
		cs = append(cs, rules.PatternConstraint{Pattern: f.Pattern})
	}
	if len(f.OneOf) > 0 {
		cs = append(cs, rules.ChoiceConstraint{Options: f.OneOf})
	}
	return cs, nil
}

// Fields returns the schema's field names in lexical order.
func (s *Schema) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Constraints returns the constraint set for one field, nil when the
// field is unknown.
func (s *Schema) Constraints(field string) []rules.Constraint {
	return s.fields[field]
}

// RuleSet compiles every field's constraints into a form rule set.
func (s *Schema) RuleSet() (form.RuleSet, error) {
	rs := make(form.RuleSet, len(s.fields))
	for name, cs := range s.fields {
		rule, err := rules.CompileConstraints(cs...)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		rs[name] = form.Field(rule)
	}
	return rs, nil
}
