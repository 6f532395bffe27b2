package java

import (
	"fmt"

	"github.com/apiarylab/clientgen/internal/api"
	"github.com/apiarylab/clientgen/internal/codegen"
	"github.com/apiarylab/clientgen/internal/codegen/writer"
	"github.com/apiarylab/clientgen/internal/language"
)

func init() {
	codegen.DefaultRegistry.Register("java", func() codegen.Generator {
		return NewGenerator()
	})
}

// Generator emits Java client-library source: one file per top-level model
// class under the API's model module, plus the service class with its
// resource operation groups.
type Generator struct {
	model *Model
}

// NewGenerator creates a Java generator with a fresh language model.
func NewGenerator() *Generator {
	return &Generator{model: NewModel()}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "java"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".java"
}

// Model returns the Java language model
func (g *Generator) Model() language.Model {
	return g.model
}

// Generate annotates the model for Java and renders the sources. Java nests
// model classes in a module under the API, so the model module is re-pathed
// before any name is read.
func (g *Generator) Generate(a *api.API) ([]codegen.File, error) {
	a.SetLanguageModel(g.model)
	if err := a.ModelModule().SetPath("model"); err != nil {
		return nil, fmt.Errorf("place model module: %w", err)
	}
	language.Annotate(a, g.model)

	files, err := g.modelFiles(a)
	if err != nil {
		return nil, err
	}
	service, err := g.serviceFile(a)
	if err != nil {
		return nil, err
	}
	return append(files, service), nil
}

func (g *Generator) modelFiles(a *api.API) ([]codegen.File, error) {
	pkg, err := a.ModelModule().Name()
	if err != nil {
		return nil, err
	}
	dir, err := a.ModelModule().Path()
	if err != nil {
		return nil, err
	}

	var files []codegen.File
	for _, s := range a.TopLevelModelClasses() {
		w := writer.NewWriter("  ")
		w.WriteLinef("package %s;", pkg)
		w.BlankLine()

		if imports := language.ImportManagerFor(s.Node(), true).Imports(); len(imports) > 0 {
			for _, imp := range imports {
				w.WriteLinef("import %s;", imp)
			}
			w.BlankLine()
		}

		g.writeModelClass(w, s, true)
		files = append(files, codegen.File{
			Path:    dir + "/" + s.StringValue("className") + g.FileExtension(),
			Content: w.Bytes(),
		})
	}
	return files, nil
}

func (g *Generator) writeModelClass(w *writer.Writer, s *api.Schema, topLevel bool) {
	w.WriteDocComment("/**", " * ", " */", s.StringValue("description"))
	modifier := "public final class"
	if !topLevel {
		modifier = "public static final class"
	}
	w.WriteLinef("%s %s {", modifier, s.StringValue("className"))
	w.Indent()

	var nested []*api.Schema
	for i, p := range s.Properties() {
		if i > 0 {
			w.BlankLine()
		}
		w.WriteDocComment("/**", " * ", " */", p.StringValue("description"))
		if p.TemplateValue(language.JSONStringFlag) == true {
			w.WriteLine("@JsonString")
		}
		w.WriteLinef("private %s %s;", p.CodeType(), p.CodeName())

		leaf := api.ConcreteDataType(api.LeafDataType(p.DataType()))
		if inner, ok := leaf.(*api.Schema); ok && inner.Parent() != nil {
			nested = append(nested, inner)
		}
	}

	for _, inner := range nested {
		w.BlankLine()
		g.writeModelClass(w, inner, false)
	}

	w.Dedent()
	w.WriteLine("}")
}

func (g *Generator) serviceFile(a *api.API) (codegen.File, error) {
	pkg, err := a.ApiModule().Name()
	if err != nil {
		return codegen.File{}, err
	}
	dir, err := a.ApiModule().Path()
	if err != nil {
		return codegen.File{}, err
	}
	className := a.StringValue("className")

	w := writer.NewWriter("  ")
	w.WriteLinef("package %s;", pkg)
	w.BlankLine()

	// Method parameter types register their imports on the API root node.
	if imports := language.ImportManagerFor(a.CodeObject, true).Imports(); len(imports) > 0 {
		for _, imp := range imports {
			w.WriteLinef("import %s;", imp)
		}
		w.BlankLine()
	}

	w.WriteDocComment("/**", " * ", " */", a.StringValue("description"))
	w.WriteLinef("public class %s {", className)
	w.Indent()
	for i, r := range a.Resources() {
		if i > 0 {
			w.BlankLine()
		}
		g.writeResource(w, a, r)
	}
	w.Dedent()
	w.WriteLine("}")

	return codegen.File{
		Path:    dir + "/" + className + g.FileExtension(),
		Content: w.Bytes(),
	}, nil
}

// writeResource emits a resource as a nested operation group: a class
// holding one stub per method. Nested resources nest their groups.
func (g *Generator) writeResource(w *writer.Writer, a *api.API, r *api.Resource) {
	className := g.model.ToSafeClassName(r.StringValue("wireName"), a, r.Parent())
	r.SetTemplateValue("className", className)
	// Record the disambiguated name so nested resources named like this one
	// collide in the ancestor walk and get re-prefixed.
	r.SetTemplateValue("safeClassName", className)

	w.WriteDocComment("/**", " * ", " */", r.StringValue("description"))
	w.WriteLinef("public class %s {", className)
	w.Indent()
	for i, m := range r.Methods() {
		if i > 0 {
			w.BlankLine()
		}
		g.writeMethod(w, m)
	}
	for _, sub := range r.Resources() {
		w.BlankLine()
		g.writeResource(w, a, sub)
	}
	w.Dedent()
	w.WriteLine("}")
}

func (g *Generator) writeMethod(w *writer.Writer, m *api.Method) {
	w.WriteDocComment("/**", " * ", " */", m.StringValue("description"))

	returnType := g.model.CodeTypeForVoid()
	if m.Response() != nil {
		returnType = m.Response().CodeType()
	}

	w.Writef("public %s %s(", returnType, m.CodeName())
	for i, p := range m.Parameters() {
		if i > 0 {
			w.Write(", ")
		}
		w.Writef("%s %s", p.CodeType(), p.CodeName())
	}
	if m.Request() != nil {
		if len(m.Parameters()) > 0 {
			w.Write(", ")
		}
		w.Writef("%s content", m.Request().CodeType())
	}
	w.WriteLine(") {")
	w.Indent()
	w.WriteLine("throw new UnsupportedOperationException();")
	w.Dedent()
	w.WriteLine("}")
}
