package language

import "github.com/apiarylab/clientgen/internal/api"

// Annotate runs the language-specific annotation passes over a model tree:
// import aggregation for every property and parameter, and the 64-bit JSON
// string-encoding flag. Generators call this once before emission.
func Annotate(a *api.API, m Model) {
	for _, s := range a.ModelClasses() {
		annotateSchema(s, m)
	}
	for _, r := range a.Resources() {
		annotateResource(r, m)
	}
}

func annotateSchema(s *api.Schema, m Model) {
	for _, p := range s.Properties() {
		annotateElement(p, m)
		// Anonymous object properties become nested classes with their own
		// properties to annotate. Named schemas reached through references
		// are handled at the top level.
		leaf := api.ConcreteDataType(api.LeafDataType(p.DataType()))
		if nested, ok := leaf.(*api.Schema); ok && nested.Parent() != nil {
			annotateSchema(nested, m)
		}
	}
}

func annotateResource(r *api.Resource, m Model) {
	for _, method := range r.Methods() {
		for _, p := range method.Parameters() {
			annotateElement(p, m)
		}
	}
	for _, sub := range r.Resources() {
		annotateResource(sub, m)
	}
}

// annotateElement resolves one element's leaf type through the language
// table, registering required imports on the owning top-level type and
// setting any template flags the mapping declares.
func annotateElement(el api.Element, m Model) {
	leaf := api.LeafDataType(el.DataType())
	if mapping, ok := m.Mapping(leaf.JSONType(), leaf.JSONFormat()); ok {
		mgr := ImportManagerFor(el.Container(), m.SupportsNestedClasses())
		for _, imp := range mapping.Imports {
			mgr.Add(imp)
		}
		for _, flag := range mapping.TemplateFlags {
			el.SetTemplateValue(flag, true)
		}
	}
	if RequiresJSONString(el.DataType()) {
		el.SetTemplateValue(JSONStringFlag, true)
	}
}
