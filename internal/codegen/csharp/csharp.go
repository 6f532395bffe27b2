// Package csharp generates C# client-library source from an API model.
package csharp

import (
	"fmt"
	"strings"

	"github.com/apiarylab/clientgen/internal/api"
	"github.com/apiarylab/clientgen/internal/codegen"
	"github.com/apiarylab/clientgen/internal/codegen/writer"
	"github.com/apiarylab/clientgen/internal/language"
	"github.com/apiarylab/clientgen/internal/names"
)

func init() {
	codegen.DefaultRegistry.Register("csharp", func() codegen.Generator {
		return NewGenerator()
	})
	// cs is an alias for csharp
	codegen.DefaultRegistry.Register("cs", func() codegen.Generator {
		return NewGenerator()
	})
}

var csharpKeywords = []string{
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch", "char",
	"checked", "class", "const", "continue", "decimal", "default", "delegate",
	"do", "double", "else", "enum", "event", "explicit", "extern", "false",
	"finally", "fixed", "float", "for", "foreach", "goto", "if", "implicit",
	"in", "int", "interface", "internal", "is", "lock", "long", "namespace",
	"new", "null", "object", "operator", "out", "override", "params",
	"private", "protected", "public", "readonly", "ref", "return", "sbyte",
	"sealed", "short", "sizeof", "stackalloc", "static", "string", "struct",
	"switch", "this", "throw", "true", "try", "typeof", "uint", "ulong",
	"unchecked", "unsafe", "ushort", "using", "virtual", "void", "volatile",
	"while",
}

var typeTable = language.Table{
	{Type: "any"}:                       {CodeType: "object"},
	{Type: "boolean"}:                   {CodeType: "bool"},
	{Type: "integer", Format: "int16"}:  {CodeType: "short"},
	{Type: "integer", Format: "int32"}:  {CodeType: "int"},
	{Type: "integer", Format: "uint32"}: {CodeType: "long"},
	{Type: "number", Format: "double"}:  {CodeType: "double"},
	{Type: "number", Format: "float"}:   {CodeType: "float"},
	{Type: "object"}:                    {CodeType: "object"},
	{Type: "string"}:                    {CodeType: "string"},
	{Type: "string", Format: "byte"}:    {CodeType: "string"},
	{Type: "string", Format: "date"}:    {CodeType: "System.DateTime", Imports: []string{"System"}},
	{Type: "string", Format: "date-time"}: {
		CodeType: "System.DateTime",
		Imports:  []string{"System"},
	},
	{Type: "string", Format: "int64"}: {
		CodeType:      "long",
		TemplateFlags: []string{language.JSONStringFlag},
	},
	{Type: "string", Format: "uint64"}: {
		CodeType:      "ulong",
		TemplateFlags: []string{language.JSONStringFlag},
	},
}

// Model is the C# language model.
type Model struct {
	*language.Base
}

// NewModel builds the C# model with its static tables.
func NewModel() *Model {
	return &Model{
		Base: &language.Base{
			LanguageName: "csharp",
			ClassDelim:   ".",
			ModuleDelim:  ".",
			Nested:       true,
			Reserved:     language.ReservedSet(csharpKeywords),
			Types:        typeTable,
			IntFormats: map[string]string{
				"short": "%d",
				"int":   "%d",
				"long":  "%dL",
				"ulong": "%dUL",
			},
			ArrayOf:  "System.Collections.Generic.IList<%s>",
			MapOf:    "System.Collections.Generic.IDictionary<string, %s>",
			VoidType: "void",
		},
	}
}

// ToMemberName differs from the base: C# members are Pascal-cased, so the
// camel-cased form keeps its leading capital.
func (m *Model) ToMemberName(wire string, owner *api.API) string {
	camel := names.CamelCase(wire)
	if _, reserved := m.Reserved[strings.ToLower(camel)]; reserved {
		return names.CamelCase(ownerName(owner)) + camel
	}
	return camel
}

func ownerName(owner *api.API) string {
	if owner == nil {
		return ""
	}
	return owner.Name()
}

// Generator emits C# model classes, one file per top-level class.
type Generator struct {
	model *Model
}

// NewGenerator creates a C# generator with a fresh language model.
func NewGenerator() *Generator {
	return &Generator{model: NewModel()}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "csharp"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".cs"
}

// Model returns the C# language model
func (g *Generator) Model() language.Model {
	return g.model
}

// Generate annotates the model for C# and renders one source file per
// top-level model class inside a namespace block.
func (g *Generator) Generate(a *api.API) ([]codegen.File, error) {
	a.SetLanguageModel(g.model)
	if err := a.ModelModule().SetPath("Data"); err != nil {
		return nil, fmt.Errorf("place model module: %w", err)
	}
	language.Annotate(a, g.model)

	ns, err := a.ModelModule().Name()
	if err != nil {
		return nil, err
	}
	dir, err := a.ModelModule().Path()
	if err != nil {
		return nil, err
	}

	var files []codegen.File
	for _, s := range a.TopLevelModelClasses() {
		w := writer.NewWriter("    ")
		if imports := language.ImportManagerFor(s.Node(), true).Imports(); len(imports) > 0 {
			for _, imp := range imports {
				w.WriteLinef("using %s;", imp)
			}
			w.BlankLine()
		}
		w.WriteLinef("namespace %s {", ns)
		w.Indent()
		g.writeClass(w, s)
		w.Dedent()
		w.WriteLine("}")

		files = append(files, codegen.File{
			Path:    dir + "/" + s.StringValue("className") + g.FileExtension(),
			Content: w.Bytes(),
		})
	}
	return files, nil
}

func (g *Generator) writeClass(w *writer.Writer, s *api.Schema) {
	w.WriteDocComment("", "/// ", "", s.StringValue("description"))
	w.WriteLinef("public sealed class %s {", s.StringValue("className"))
	w.Indent()

	var nested []*api.Schema
	for i, p := range s.Properties() {
		if i > 0 {
			w.BlankLine()
		}
		w.WriteDocComment("", "/// ", "", p.StringValue("description"))
		w.WriteLinef("public %s %s { get; set; }", p.CodeType(), p.CodeName())

		leaf := api.ConcreteDataType(api.LeafDataType(p.DataType()))
		if inner, ok := leaf.(*api.Schema); ok && inner.Parent() != nil {
			nested = append(nested, inner)
		}
	}
	for _, inner := range nested {
		w.BlankLine()
		g.writeClass(w, inner)
	}

	w.Dedent()
	w.WriteLine("}")
}
