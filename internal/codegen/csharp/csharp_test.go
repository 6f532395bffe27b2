package csharp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarylab/clientgen/internal/api"
)

const storeDoc = `{
  "name": "bookstore",
  "ownerName": "Example",
  "ownerDomain": "example.com",
  "schemas": {
    "Book": {
      "type": "object",
      "description": "A book in the store.",
      "properties": {
        "title": {"type": "string"},
        "isbn": {"type": "string", "format": "int64"},
        "published": {"type": "string", "format": "date-time"}
      }
    }
  }
}`

func TestGenerate_ModelFiles(t *testing.T) {
	// Test plan:
	// - One file per top-level class under the Data namespace directory
	// - Members are Pascal-cased inside a namespace block
	// - date-time maps to System.DateTime and pulls in the using directive

	g := NewGenerator()
	a, err := api.Load([]byte(storeDoc), g.Model())
	require.NoError(t, err)

	files, err := g.Generate(a)
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "com/example/bookstore/Data/Book.cs", files[0].Path)
	src := string(files[0].Content)

	assert.True(t, strings.HasPrefix(src, "using System;\n"))
	assert.Contains(t, src, "namespace com.example.bookstore.Data {")
	assert.Contains(t, src, "public sealed class Book {")
	assert.Contains(t, src, "/// A book in the store.")

	assert.Contains(t, src, "public string Title { get; set; }")
	assert.Contains(t, src, "public long Isbn { get; set; }")
	assert.Contains(t, src, "public System.DateTime Published { get; set; }")
}

func TestModel_PascalCaseMembers(t *testing.T) {
	// Test plan:
	// - Member names keep their leading capital
	// - Reserved words are disambiguated with the API name

	m := NewModel()
	a, err := api.NewAPI(map[string]any{"name": "bookstore"}, m)
	require.NoError(t, err)

	assert.Equal(t, "MaxResults", m.ToMemberName("max-results", a))
	assert.Equal(t, "BookstoreClass", m.ToMemberName("class", a))
}
