package sanitizer

// Normalizer holds named per-field string pipelines plus a pipeline
// applied to every field. Build one with NewNormalizer and chained Use
// and Field calls, then plug it into a form validator.
type Normalizer struct {
	global []func(string) string
	fields map[string][]func(string) string
}

// NewNormalizer returns an empty Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{fields: make(map[string][]func(string) string)}
}

// Use appends transforms applied to every field, before any field-specific
// ones.
func (n *Normalizer) Use(transforms ...func(string) string) *Normalizer {
	n.global = append(n.global, transforms...)
	return n
}

// Field appends transforms for one named field.
func (n *Normalizer) Field(name string, transforms ...func(string) string) *Normalizer {
	n.fields[name] = append(n.fields[name], transforms...)
	return n
}

// Normalize runs a field's raw string input through the global pipeline
// and then the field's own pipeline.
func (n *Normalizer) Normalize(field, raw string) string {
	out := Apply(raw, n.global...)
	return Apply(out, n.fields[field]...)
}
