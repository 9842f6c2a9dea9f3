package schema

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/formcheck/formcheck/pkg/rules"
)

// FromOpenAPI derives a Schema from one named component schema of an
// OpenAPI 3 document. The keywords required, minimum, maximum, minLength,
// maxLength, pattern and enum map onto the corresponding constraint
// kinds; everything else is ignored.
func FromOpenAPI(ctx context.Context, data []byte, component string) (*Schema, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if doc.Components == nil {
		return nil, fmt.Errorf("%w: document has no components", ErrUnknownComponent)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}
	src := ref.Value

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	s := &Schema{fields: make(map[string][]rules.Constraint, len(src.Properties))}
	for name, propRef := range src.Properties {
		if propRef == nil || propRef.Value == nil {
			continue
		}
		cs, err := propertyConstraints(propRef.Value, required[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		s.fields[name] = cs
	}
	if len(s.fields) == 0 {
		return nil, ErrNoFields
	}
	return s, nil
}

func propertyConstraints(prop *openapi3.Schema, required bool) ([]rules.Constraint, error) {
	var cs []rules.Constraint
	if required {
		cs = append(cs, rules.RequiredConstraint{})
	}

	switch {
	case prop.Min != nil && prop.Max != nil:
		r, err := rules.NewRange(*prop.Min, *prop.Max)
		if err != nil {
			return nil, err
		}
		cs = append(cs, r)
	case prop.Min != nil:
		cs = append(cs, rules.MinConstraint{Value: *prop.Min})
	case prop.Max != nil:
		cs = append(cs, rules.MaxConstraint{Value: *prop.Max})
	}

	if prop.MinLength != 0 {
		cs = append(cs, rules.MinLenConstraint{N: int(prop.MinLength)})
	}
	if prop.MaxLength != nil {
		cs = append(cs, rules.MaxLenConstraint{N: int(*prop.MaxLength)})
	}
	if prop.Pattern != "" {
		cs = append(cs, rules.PatternConstraint{Pattern: prop.Pattern})
	}
	if len(prop.Enum) > 0 {
		options := make([]string, 0, len(prop.Enum))
		for _, v := range prop.Enum {
			options = append(options, fmt.Sprint(v))
		}
		cs = append(cs, rules.ChoiceConstraint{Options: options})
	}
	return cs, nil
}
