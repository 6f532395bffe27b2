package api

import (
	"fmt"
	"sort"

	"github.com/apiarylab/clientgen/internal/names"
)

// API is the root of the model: the discovery document's resources, methods
// and schemas as a single code-object tree, anchored to a module hierarchy.
type API struct {
	*CodeObject

	resources   []*Resource
	schemas     map[string]DataType
	schemaOrder []string

	topModule   *Module
	apiModule   *Module
	modelModule *Module

	pendingRefs []*SchemaRef
}

// Name returns the API's discovery name.
func (a *API) Name() string { return a.StringValue("name") }

// Resources returns the top-level resources in deterministic order.
func (a *API) Resources() []*Resource { return a.resources }

// SchemaNamed looks up a named schema.
func (a *API) SchemaNamed(name string) (DataType, bool) {
	dt, ok := a.schemas[name]
	return dt, ok
}

// ApiModule returns the module the API class itself lives in.
func (a *API) ApiModule() *Module { return a.apiModule }

// ModelModule returns the module generated model classes live in. Language
// generators may re-path it (e.g. Java nests models under "model") before
// its name is first read.
func (a *API) ModelModule() *Module { return a.modelModule }

// ModelClasses returns every named object schema in discovery order.
func (a *API) ModelClasses() []*Schema {
	var out []*Schema
	for _, name := range a.schemaOrder {
		if s, ok := a.schemas[name].(*Schema); ok {
			out = append(out, s)
		}
	}
	return out
}

// TopLevelModelClasses returns the model classes that are not nested inside
// another model. Named schemas that are arrays are excluded; they render as
// collections of their element type, not as classes.
func (a *API) TopLevelModelClasses() []*Schema {
	var out []*Schema
	for _, s := range a.ModelClasses() {
		if s.Parent() == nil {
			out = append(out, s)
		}
	}
	return out
}

// Resource is a group of methods (and possibly nested resources).
type Resource struct {
	*CodeObject
	methods   []*Method
	resources []*Resource
}

// Methods returns the resource's methods in deterministic order.
func (r *Resource) Methods() []*Method { return r.methods }

// Resources returns nested sub-resources.
func (r *Resource) Resources() []*Resource { return r.resources }

// Method is a single callable API operation.
type Method struct {
	*CodeObject
	parameters []*Parameter
	request    DataType
	response   DataType
}

// Parameters returns the method's parameters, required ones first in the
// document's parameterOrder, the rest sorted by wire name.
func (m *Method) Parameters() []*Parameter { return m.parameters }

// Request returns the request body type, or nil.
func (m *Method) Request() DataType { return m.request }

// Response returns the response type, or nil.
func (m *Method) Response() DataType { return m.response }

// Parameter is a query or path parameter of a method.
type Parameter struct {
	*CodeObject
	method   *Method
	dataType DataType
}

func (p *Parameter) Node() *CodeObject      { return p.CodeObject }
func (p *Parameter) DataType() DataType     { return p.dataType }
func (p *Parameter) Container() *CodeObject { return p.method.CodeObject }

// Method returns the owning method.
func (p *Parameter) Method() *Method { return p.method }

func (p *Parameter) resolveCodeType() string { return p.dataType.CodeType() }

// NewAPI builds the full model tree from a decoded discovery document. The
// language model is attached to the root so every node inherits it; module
// anchors are created for the API class and its model classes.
func NewAPI(doc map[string]any, lm LanguageModel) (*API, error) {
	name, _ := doc["name"].(string)
	if err := names.ValidateName(name); err != nil {
		return nil, fmt.Errorf("api name: %w", err)
	}

	co, err := NewCodeObject(doc, nil, nil, lm)
	if err != nil {
		return nil, fmt.Errorf("api %q: %w", name, err)
	}
	a := &API{
		CodeObject: co,
		schemas:    map[string]DataType{},
	}
	a.owner = a
	a.SetTemplateValue("name", name)
	a.SetTemplateValue("className", names.CamelCase(name))
	// The ancestor-collision walk in ToSafeClassName matches on safeClassName,
	// so the root must carry one or a resource named like the API would nest a
	// class inside an identically named class.
	a.SetTemplateValue("safeClassName", names.CamelCase(name))

	ownerName, _ := doc["ownerName"].(string)
	ownerDomain, _ := doc["ownerDomain"].(string)
	if a.topModule = ModuleFromDef(doc); a.topModule == nil {
		a.topModule = NewModule("", ownerName, ownerDomain, nil, nil)
	}
	a.topModule.SetLanguageModel(lm)
	a.apiModule = NewModule(name, "", "", a.topModule, nil)
	a.modelModule = NewModule("", "", "", a.apiModule, nil)
	a.SetModule(a.apiModule)

	if err := a.buildSchemas(doc); err != nil {
		return nil, err
	}
	if err := a.buildResources(doc); err != nil {
		return nil, err
	}
	if err := a.bindReferences(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *API) buildSchemas(doc map[string]any) error {
	defs, _ := doc["schemas"].(map[string]any)
	for _, name := range sortedKeys(defs) {
		def, ok := defs[name].(map[string]any)
		if !ok {
			return fmt.Errorf("schema %q: definition is not an object", name)
		}
		def["wireName"] = name
		dt, err := a.buildDataType(def, name, nil)
		if err != nil {
			return fmt.Errorf("schema %q: %w", name, err)
		}
		dt.Node().SetModule(a.modelModule)
		a.schemas[name] = dt
		a.schemaOrder = append(a.schemaOrder, name)
	}
	return nil
}

// buildDataType turns a JSON-schema fragment into a data type node. scope is
// the enclosing schema's node, used for class-name disambiguation of nested
// object types.
func (a *API) buildDataType(def map[string]any, wireName string, scope *CodeObject) (DataType, error) {
	if refName, ok := def["$ref"].(string); ok {
		ref, err := NewSchemaRef(refName, a, nil)
		if err != nil {
			return nil, err
		}
		a.pendingRefs = append(a.pendingRefs, ref)
		return ref, nil
	}

	jsonType, _ := def["type"].(string)
	switch jsonType {
	case "array":
		items, _ := def["items"].(map[string]any)
		if items == nil {
			return nil, fmt.Errorf("array %q has no items", wireName)
		}
		base, err := a.buildDataType(items, wireName, scope)
		if err != nil {
			return nil, err
		}
		return NewArrayDataType(base, a, nil)

	case "object":
		if props, ok := def["properties"].(map[string]any); ok {
			return a.buildSchema(def, wireName, scope, props)
		}
		if ap, ok := def["additionalProperties"].(map[string]any); ok {
			base, err := a.buildDataType(ap, wireName, scope)
			if err != nil {
				return nil, err
			}
			return NewMapDataType(base, a, nil)
		}
		return NewPrimitiveDataType(def, a, nil)

	default:
		return NewPrimitiveDataType(def, a, nil)
	}
}

func (a *API) buildSchema(def map[string]any, wireName string, scope *CodeObject, props map[string]any) (*Schema, error) {
	className := names.CamelCase(wireName)
	if lm := a.LanguageModel(); lm != nil {
		className = lm.ToSafeClassName(wireName, a, scope)
	}
	s, err := NewSchema(def, a, scope, className)
	if err != nil {
		return nil, err
	}
	for _, propName := range sortedKeys(props) {
		propDef, ok := props[propName].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("property %q: definition is not an object", propName)
		}
		dt, err := a.buildDataType(propDef, propName, s.CodeObject)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", propName, err)
		}
		if _, err := NewProperty(propDef, s, propName, dt); err != nil {
			return nil, fmt.Errorf("property %q: %w", propName, err)
		}
	}
	return s, nil
}

func (a *API) buildResources(doc map[string]any) error {
	defs, _ := doc["resources"].(map[string]any)
	resources, err := a.buildResourceList(defs, a.CodeObject)
	if err != nil {
		return err
	}
	a.resources = resources
	return nil
}

func (a *API) buildResourceList(defs map[string]any, parent *CodeObject) ([]*Resource, error) {
	var out []*Resource
	for _, name := range sortedKeys(defs) {
		def, ok := defs[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("resource %q: definition is not an object", name)
		}
		def["wireName"] = name
		r, err := a.buildResource(def, parent)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", name, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (a *API) buildResource(def map[string]any, parent *CodeObject) (*Resource, error) {
	co, err := NewCodeObject(def, a, parent, nil)
	if err != nil {
		return nil, err
	}
	r := &Resource{CodeObject: co}

	methodDefs, _ := def["methods"].(map[string]any)
	for _, name := range sortedKeys(methodDefs) {
		mdef, ok := methodDefs[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("method %q: definition is not an object", name)
		}
		mdef["wireName"] = name
		m, err := a.buildMethod(mdef, r.CodeObject)
		if err != nil {
			return nil, fmt.Errorf("method %q: %w", name, err)
		}
		r.methods = append(r.methods, m)
	}

	nested, _ := def["resources"].(map[string]any)
	if len(nested) > 0 {
		subs, err := a.buildResourceList(nested, r.CodeObject)
		if err != nil {
			return nil, err
		}
		r.resources = subs
	}
	return r, nil
}

func (a *API) buildMethod(def map[string]any, parent *CodeObject) (*Method, error) {
	co, err := NewCodeObject(def, a, parent, nil)
	if err != nil {
		return nil, err
	}
	m := &Method{CodeObject: co}

	paramDefs, _ := def["parameters"].(map[string]any)
	for _, name := range parameterOrder(def, paramDefs) {
		pdef, ok := paramDefs[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parameter %q: definition is not an object", name)
		}
		pdef["wireName"] = name
		dt, err := a.buildDataType(pdef, name, m.CodeObject)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		pco, err := NewCodeObject(pdef, a, m.CodeObject, nil)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		p := &Parameter{CodeObject: pco, method: m, dataType: dt}
		pco.typer = p
		adopt(pco, dt)
		m.parameters = append(m.parameters, p)
	}

	if m.request, err = a.buildBodyType(def, "request"); err != nil {
		return nil, err
	}
	if m.response, err = a.buildBodyType(def, "response"); err != nil {
		return nil, err
	}
	return m, nil
}

func (a *API) buildBodyType(def map[string]any, key string) (DataType, error) {
	body, ok := def[key].(map[string]any)
	if !ok {
		return nil, nil
	}
	dt, err := a.buildDataType(body, key, nil)
	if err != nil {
		return nil, fmt.Errorf("%s type: %w", key, err)
	}
	return dt, nil
}

// bindReferences resolves every $ref recorded during the build against the
// named schemas. A dangling reference is a structural error.
func (a *API) bindReferences() error {
	for _, ref := range a.pendingRefs {
		target, ok := a.schemas[ref.RefName()]
		if !ok {
			return fmt.Errorf("unresolved schema reference %q", ref.RefName())
		}
		ref.bind(target)
	}
	return nil
}

// parameterOrder returns parameter names with the document's declared
// parameterOrder first and the remainder sorted by name.
func parameterOrder(def map[string]any, params map[string]any) []string {
	var out []string
	seen := map[string]bool{}
	if order, ok := def["parameterOrder"].([]any); ok {
		for _, v := range order {
			if name, ok := v.(string); ok && params[name] != nil && !seen[name] {
				out = append(out, name)
				seen[name] = true
			}
		}
	}
	var rest []string
	for name := range params {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
