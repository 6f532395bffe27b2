// Package java generates Java client-library source from an API model.
package java

import (
	"github.com/apiarylab/clientgen/internal/api"
	"github.com/apiarylab/clientgen/internal/language"
	"github.com/apiarylab/clientgen/internal/names"
)

const jsonStringImport = "com.google.api.client.json.JsonString"

// javaKeywords are the identifiers the compiler reserves outright.
var javaKeywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while",
}

// specialClassNames collide with members of the generated classes' runtime
// base class (GenericData extends AbstractMap<String, Object>), so they are
// treated as reserved even though the compiler would accept them.
var specialClassNames = []string{"entry"}

// builtinTypeNames are boxed-type and literal names that cannot serve as
// generated class names without shadowing something.
var builtinTypeNames = []string{"float", "integer", "object", "string", "true", "false"}

// typeTable maps JSON-schema primitives to Java types. Long is preferred
// over UnsignedInteger for uint32 because it autoboxes; 64-bit integers
// carried as JSON strings additionally flag the element for string encoding.
var typeTable = language.Table{
	{Type: "any"}:                         {CodeType: "Object", Imports: []string{"java.lang.Object"}},
	{Type: "boolean"}:                     {CodeType: "Boolean", Imports: []string{"java.lang.Boolean"}},
	{Type: "integer", Format: "int16"}:    {CodeType: "Short", Imports: []string{"java.lang.Short"}},
	{Type: "integer", Format: "int32"}:    {CodeType: "Integer", Imports: []string{"java.lang.Integer"}},
	{Type: "integer", Format: "uint32"}:   {CodeType: "Long", Imports: []string{"java.lang.Long"}},
	{Type: "number", Format: "double"}:    {CodeType: "Double", Imports: []string{"java.lang.Double"}},
	{Type: "number", Format: "float"}:     {CodeType: "Float", Imports: []string{"java.lang.Float"}},
	{Type: "object"}:                      {CodeType: "Object", Imports: []string{"java.lang.Object"}},
	{Type: "string"}:                      {CodeType: "String", Imports: []string{"java.lang.String"}},
	{Type: "string", Format: "byte"}:      {CodeType: "String", Imports: []string{"java.lang.String"}},
	{Type: "string", Format: "date"}:      {CodeType: "DateTime", Imports: []string{"com.google.api.client.util.DateTime"}},
	{Type: "string", Format: "date-time"}: {CodeType: "DateTime", Imports: []string{"com.google.api.client.util.DateTime"}},
	{Type: "string", Format: "int64"}: {
		CodeType:      "Long",
		Imports:       []string{"java.lang.Long", jsonStringImport},
		TemplateFlags: []string{language.JSONStringFlag},
	},
	{Type: "string", Format: "uint64"}: {
		CodeType:      "UnsignedLong",
		Imports:       []string{"com.google.common.primitives.UnsignedLong", jsonStringImport},
		TemplateFlags: []string{language.JSONStringFlag},
	},
}

// Model is the Java language model.
type Model struct {
	*language.Base
}

// NewModel builds the Java model with its static tables.
func NewModel() *Model {
	return &Model{
		Base: &language.Base{
			LanguageName: "java",
			ClassDelim:   ".",
			ModuleDelim:  ".",
			Nested:       true,
			Reserved:     language.ReservedSet(javaKeywords, specialClassNames, builtinTypeNames),
			Types:        typeTable,
			IntFormats: map[string]string{
				"Short":   "%d",
				"Integer": "%d",
				"Long":    "%dL",
			},
			ArrayOf:  "java.util.List<%s>",
			MapOf:    "java.util.Map<String, %s>",
			VoidType: "Void",
		},
	}
}

// DefaultContainerPath places Google-owned APIs under the canonical client
// package; everyone else gets the reversed owner domain.
func (m *Model) DefaultContainerPath(ownerName, ownerDomain string) string {
	if ownerDomain == "google.com" {
		return "com/google/api/services"
	}
	return m.Base.DefaultContainerPath(ownerName, ownerDomain)
}

// PropertyGetter returns the getter call for a property, e.g. ".getXyz()"
// for xyz.
func (m *Model) PropertyGetter(propName string) string {
	return m.ClassNameDelimiter() + "get" + names.CamelCase(propName) + "()"
}

var _ language.Model = (*Model)(nil)
var _ api.LanguageModel = (*Model)(nil)
