// Package codegen drives client-library generation: a registry of
// language-specific generators that each turn an API model tree into
// generated source files.
package codegen

import (
	"github.com/apiarylab/clientgen/internal/api"
	"github.com/apiarylab/clientgen/internal/language"
)

// File is one generated source file, with a path relative to the output
// root.
type File struct {
	Path    string
	Content []byte
}

// Generator is the interface all language-specific generators implement.
type Generator interface {
	// Generate annotates the model and renders the client library sources.
	Generate(a *api.API) ([]File, error)

	// Language returns the name of the target language (e.g. "java").
	Language() string

	// FileExtension returns the extension for generated files (e.g. ".java").
	FileExtension() string

	// Model returns the language model generation runs under. Callers build
	// the API tree against it so names are resolved consistently.
	Model() language.Model
}
