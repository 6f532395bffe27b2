package api

import "github.com/apiarylab/clientgen/internal/names"

// DataType is a node describing the type of a property or parameter. The
// concrete kinds are JSON-schema primitives, array and map wrappers around a
// base type, references to named schemas, and object schemas themselves.
type DataType interface {
	// Node returns the underlying code object.
	Node() *CodeObject

	// JSONType is the JSON-schema primitive kind ("string", "array", ...).
	JSONType() string

	// JSONFormat is the optional JSON-schema format refinement ("int64", ...).
	JSONFormat() string

	// CodeType is the resolved target-language type name.
	CodeType() string

	// SetLanguageModel overrides the language model used for resolution.
	SetLanguageModel(LanguageModel)
}

// CollectionDataType is a DataType wrapping a base element type.
type CollectionDataType interface {
	DataType
	Base() DataType
}

// Element is the surface annotation passes work against: anything that wires
// a data type into the tree and can be flagged with template values.
// Properties and method parameters both qualify.
type Element interface {
	Node() *CodeObject
	DataType() DataType
	SetTemplateValue(name string, value any)
	// Container returns the node owning this element's type scope: the
	// enclosing schema for a property, the method for a parameter.
	Container() *CodeObject
}

// LeafDataType strips array and map wrapping layers by following the
// base-type chain until a non-collection type is reached. Every consumer of
// (type, format) pairs must unwrap first; collections have no format of
// their own.
func LeafDataType(dt DataType) DataType {
	for {
		c, ok := dt.(CollectionDataType)
		if !ok {
			return dt
		}
		dt = c.Base()
	}
}

// ConcreteDataType follows schema-reference indirection until a real type is
// reached.
func ConcreteDataType(dt DataType) DataType {
	for {
		ref, ok := dt.(*SchemaRef)
		if !ok {
			return dt
		}
		dt = ref.Referenced()
	}
}

// PrimitiveDataType is a scalar JSON-schema type, e.g. {type: string,
// format: int64}.
type PrimitiveDataType struct {
	*CodeObject
}

// NewPrimitiveDataType builds a primitive from its schema fragment.
func NewPrimitiveDataType(def map[string]any, owner *API, parent *CodeObject) (*PrimitiveDataType, error) {
	co, err := NewCodeObject(def, owner, parent, nil)
	if err != nil {
		return nil, err
	}
	t := &PrimitiveDataType{CodeObject: co}
	co.typer = t
	return t, nil
}

func (t *PrimitiveDataType) Node() *CodeObject { return t.CodeObject }

func (t *PrimitiveDataType) JSONType() string {
	if jt := t.StringValue("type"); jt != "" {
		return jt
	}
	return "string"
}

func (t *PrimitiveDataType) JSONFormat() string { return t.StringValue("format") }

func (t *PrimitiveDataType) resolveCodeType() string {
	if lm := t.LanguageModel(); lm != nil {
		return lm.CodeTypeFromDef(t.Values())
	}
	return names.CamelCase(t.JSONType())
}

// ArrayDataType wraps a base type as "array of base".
type ArrayDataType struct {
	*CodeObject
	base DataType
}

// NewArrayDataType wraps base in an array. An unparented base node is
// adopted under the array so language-model inheritance flows through it;
// named schemas keep their class-nesting parent.
func NewArrayDataType(base DataType, owner *API, parent *CodeObject) (*ArrayDataType, error) {
	co, err := NewCodeObject(map[string]any{"type": "array"}, owner, parent, nil)
	if err != nil {
		return nil, err
	}
	t := &ArrayDataType{CodeObject: co, base: base}
	co.typer = t
	adopt(co, base)
	return t, nil
}

// adopt parents an anonymous data-type node under holder. Nodes that already
// have a parent (named schemas nested for class scoping, shared references)
// are left where they are.
func adopt(holder *CodeObject, dt DataType) {
	if dt.Node().Parent() == nil {
		dt.Node().SetParent(holder)
	}
}

func (t *ArrayDataType) Node() *CodeObject  { return t.CodeObject }
func (t *ArrayDataType) JSONType() string   { return "array" }
func (t *ArrayDataType) JSONFormat() string { return "" }
func (t *ArrayDataType) Base() DataType     { return t.base }

func (t *ArrayDataType) resolveCodeType() string {
	lm := t.LanguageModel()
	if lm == nil {
		return ""
	}
	return lm.CodeTypeForArrayOf(t.base.CodeType())
}

// MapDataType wraps a base type as "map of string to base".
type MapDataType struct {
	*CodeObject
	base DataType
}

// NewMapDataType wraps base in a string-keyed map.
func NewMapDataType(base DataType, owner *API, parent *CodeObject) (*MapDataType, error) {
	co, err := NewCodeObject(map[string]any{"type": "map"}, owner, parent, nil)
	if err != nil {
		return nil, err
	}
	t := &MapDataType{CodeObject: co, base: base}
	co.typer = t
	adopt(co, base)
	return t, nil
}

func (t *MapDataType) Node() *CodeObject  { return t.CodeObject }
func (t *MapDataType) JSONType() string   { return "map" }
func (t *MapDataType) JSONFormat() string { return "" }
func (t *MapDataType) Base() DataType     { return t.base }

func (t *MapDataType) resolveCodeType() string {
	lm := t.LanguageModel()
	if lm == nil {
		return ""
	}
	return lm.CodeTypeForMapOf(t.base.CodeType())
}

// SchemaRef is a $ref to a named schema. References are created during the
// first load pass and bound once all schemas exist.
type SchemaRef struct {
	*CodeObject
	refName    string
	referenced DataType
}

// NewSchemaRef records an unresolved reference to refName.
func NewSchemaRef(refName string, owner *API, parent *CodeObject) (*SchemaRef, error) {
	co, err := NewCodeObject(map[string]any{"$ref": refName}, owner, parent, nil)
	if err != nil {
		return nil, err
	}
	t := &SchemaRef{CodeObject: co, refName: refName}
	co.typer = t
	return t, nil
}

func (t *SchemaRef) Node() *CodeObject { return t.CodeObject }

// RefName returns the referenced schema's discovery name.
func (t *SchemaRef) RefName() string { return t.refName }

// Referenced returns the bound target type, or nil before binding.
func (t *SchemaRef) Referenced() DataType { return t.referenced }

func (t *SchemaRef) bind(target DataType) { t.referenced = target }

func (t *SchemaRef) JSONType() string {
	if t.referenced == nil {
		return "object"
	}
	return t.referenced.JSONType()
}

func (t *SchemaRef) JSONFormat() string {
	if t.referenced == nil {
		return ""
	}
	return t.referenced.JSONFormat()
}

func (t *SchemaRef) resolveCodeType() string {
	if t.referenced == nil {
		return names.CamelCase(t.refName)
	}
	return t.referenced.CodeType()
}

// Schema is an object schema: a model class with named properties. Nested
// anonymous object properties become child schemas, so a schema's parent
// chain reflects target-language class nesting.
type Schema struct {
	*CodeObject
	properties []*Property
}

// NewSchema builds an object schema. className must already be the
// disambiguated safe class name for this scope.
func NewSchema(def map[string]any, owner *API, parent *CodeObject, className string) (*Schema, error) {
	co, err := NewCodeObject(def, owner, parent, nil)
	if err != nil {
		return nil, err
	}
	s := &Schema{CodeObject: co}
	co.typer = s
	s.SetTemplateValue("className", className)
	s.SetTemplateValue("safeClassName", className)
	return s, nil
}

func (s *Schema) Node() *CodeObject  { return s.CodeObject }
func (s *Schema) JSONType() string   { return "object" }
func (s *Schema) JSONFormat() string { return "" }

// Properties returns the schema's properties in discovery order.
func (s *Schema) Properties() []*Property { return s.properties }

func (s *Schema) addProperty(p *Property) { s.properties = append(s.properties, p) }

func (s *Schema) resolveCodeType() string { return s.StringValue("className") }

func (s *Schema) resolveSafeCodeType() string {
	if name := s.StringValue("safeClassName"); name != "" {
		return name
	}
	return s.StringValue("className")
}

// Property is a named field of an object schema.
type Property struct {
	*CodeObject
	schema   *Schema
	dataType DataType
}

// NewProperty builds a property of schema with the given wire name and data
// type. Anonymous data-type nodes are parented under the property.
func NewProperty(def map[string]any, schema *Schema, wireName string, dt DataType) (*Property, error) {
	if def == nil {
		def = map[string]any{}
	}
	def["wireName"] = wireName
	co, err := NewCodeObject(def, schema.Owner(), schema.CodeObject, nil)
	if err != nil {
		return nil, err
	}
	p := &Property{CodeObject: co, schema: schema, dataType: dt}
	co.typer = p
	adopt(co, dt)
	schema.addProperty(p)
	return p, nil
}

func (p *Property) Node() *CodeObject      { return p.CodeObject }
func (p *Property) DataType() DataType     { return p.dataType }
func (p *Property) Container() *CodeObject { return p.schema.CodeObject }

// OwnerSchema returns the schema this property belongs to.
func (p *Property) OwnerSchema() *Schema { return p.schema }

func (p *Property) resolveCodeType() string { return p.dataType.CodeType() }
