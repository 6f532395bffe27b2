// Package api models a discovery document as a tree of template-ready code
// objects. The emission layer reads every node through the same contract: a
// name/value lookup plus a handful of lazily computed naming properties.
package api

// Template is the base for every object the emission layer can read. It
// behaves like a dictionary so generated-code templates can reference any
// discovery field by name, and it keeps an untouched deep copy of the
// original definition for passes that need pre-annotation values.
type Template struct {
	values map[string]any
	raw    map[string]any
}

// NewTemplate wraps a definition mapping. The live values start as a shallow
// copy of def; raw is a deep copy that never changes afterwards.
func NewTemplate(def map[string]any) *Template {
	values := make(map[string]any, len(def))
	for k, v := range def {
		values[k] = v
	}
	return &Template{
		values: values,
		raw:    deepCopyMap(def),
	}
}

// Value returns the current value for name and whether it is present.
func (t *Template) Value(name string) (any, bool) {
	v, ok := t.values[name]
	return v, ok
}

// TemplateValue returns the current value for name, or nil if absent.
func (t *Template) TemplateValue(name string) any {
	return t.values[name]
}

// StringValue returns the value for name if it is a non-empty string.
func (t *Template) StringValue(name string) string {
	s, _ := t.values[name].(string)
	return s
}

// SetTemplateValue adds or replaces a name/value pair.
func (t *Template) SetTemplateValue(name string, value any) {
	t.values[name] = value
}

// DeleteTemplateValue removes a name/value pair if present.
func (t *Template) DeleteTemplateValue(name string) {
	delete(t.values, name)
}

// Values returns the live name/value mapping. Mutations through the returned
// map are visible to templates.
func (t *Template) Values() map[string]any {
	return t.values
}

// Raw returns the immutable snapshot of the original definition.
func (t *Template) Raw() map[string]any {
	return t.raw
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return deepCopyMap(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}
