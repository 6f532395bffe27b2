package api

import (
	"strings"

	"github.com/apiarylab/clientgen/internal/names"
)

// stubModel is a minimal LanguageModel for exercising the tree machinery
// without pulling in a real language.
type stubModel struct {
	name string
}

func newStubModel() *stubModel { return &stubModel{name: "stub"} }

func (m *stubModel) Name() string                { return m.name }
func (m *stubModel) ClassNameDelimiter() string  { return "." }
func (m *stubModel) ModuleNameDelimiter() string { return "." }
func (m *stubModel) SupportsNestedClasses() bool { return true }
func (m *stubModel) CodeTypeForVoid() string     { return "Void" }

func (m *stubModel) CodeTypeFromDef(def map[string]any) string {
	jsonType, _ := def["type"].(string)
	if jsonType == "" {
		jsonType = "string"
	}
	if format, _ := def["format"].(string); format == "int64" {
		return "Long"
	}
	return names.CamelCase(jsonType)
}

func (m *stubModel) CodeTypeForArrayOf(typeName string) string {
	return "List<" + typeName + ">"
}

func (m *stubModel) CodeTypeForMapOf(typeName string) string {
	return "Map<String, " + typeName + ">"
}

func (m *stubModel) ToMemberName(wire string, owner *API) string {
	return names.LowerFirst(names.CamelCase(wire))
}

func (m *stubModel) ToSafeClassName(wire string, owner *API, parent *CodeObject) string {
	safe := names.CamelCase(wire)
	if parent != nil {
		for _, ancestor := range parent.FullPath() {
			if ancestor.StringValue("safeClassName") == safe {
				safe = parent.StringValue("className") + safe
			}
		}
	}
	return safe
}

func (m *stubModel) DefaultContainerPath(ownerName, ownerDomain string) string {
	return strings.Join(names.ReversedDomainComponents(ownerDomain), "/")
}

func (m *stubModel) RenderLiteral(v *DataValue) (string, error) {
	return "", nil
}

// mustCodeObject builds a node or fails the caller's assertion by panicking;
// only used with definitions known to be valid.
func mustCodeObject(def map[string]any, parent *CodeObject, lm LanguageModel) *CodeObject {
	co, err := NewCodeObject(def, nil, parent, lm)
	if err != nil {
		panic(err)
	}
	return co
}
