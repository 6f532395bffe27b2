package api

// DataValue pairs a literal value (a parameter default, an enum constant)
// with the concrete data type it must be rendered as. Rendering itself is
// deferred to the active language model; the value only guarantees that its
// type has been fully resolved.
type DataValue struct {
	*CodeObject
	value    any
	dataType DataType
	metadata map[string]any
}

// NewDataValue wraps value with the type carried by source. The type is
// resolved through any schema references, so the stored type is always the
// concrete one even when the discovery document used an alias.
func NewDataValue(value any, source DataType) *DataValue {
	return newDataValue(value, source.Node(), source)
}

// NewDataValueFor is NewDataValue for elements that wrap their type behind a
// data_type indirection, i.e. properties and parameters.
func NewDataValueFor(value any, el Element) *DataValue {
	return newDataValue(value, el.Node(), el.DataType())
}

func newDataValue(value any, src *CodeObject, dt DataType) *DataValue {
	co, _ := NewCodeObject(map[string]any{}, src.Owner(), src.Parent(), nil)
	// Share the source node's template values so the emission layer sees the
	// same annotations through the value as through the element itself.
	co.Template.values = src.Values()

	d := &DataValue{
		CodeObject: co,
		value:      value,
		dataType:   ConcreteDataType(dt),
		metadata:   map[string]any{},
	}
	co.typer = d
	return d
}

// Literal returns the wrapped literal value.
func (d *DataValue) Literal() any { return d.value }

// SetLiteral replaces the wrapped literal value.
func (d *DataValue) SetLiteral(value any) { d.value = value }

// DataType returns the resolved concrete data type.
func (d *DataValue) DataType() DataType { return d.dataType }

// Metadata is an open mapping for generator-specific annotations.
func (d *DataValue) Metadata() map[string]any { return d.metadata }

// SetLanguageModel overrides the model on the value and pushes the override
// down to the data type, so CodeType resolution stays consistent with the
// model the literal will be rendered under.
func (d *DataValue) SetLanguageModel(lm LanguageModel) {
	d.CodeObject.SetLanguageModel(lm)
	d.dataType.SetLanguageModel(lm)
}

func (d *DataValue) resolveCodeType() string {
	// An override set on the value wins over whatever the type would inherit.
	if d.languageModel != nil {
		d.dataType.SetLanguageModel(d.languageModel)
	}
	return d.dataType.CodeType()
}
