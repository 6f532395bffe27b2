package language

import (
	"sort"

	"github.com/apiarylab/clientgen/internal/api"
)

// importManagerKey is the template value the per-type import registry is
// cached under.
const importManagerKey = "importManager"

// ImportManager collects the import declarations one generated type needs,
// de-duplicating as type resolution runs.
type ImportManager struct {
	seen map[string]struct{}
}

// NewImportManager creates an empty registry.
func NewImportManager() *ImportManager {
	return &ImportManager{seen: map[string]struct{}{}}
}

// Add records an import requirement. Duplicates are absorbed.
func (m *ImportManager) Add(path string) {
	m.seen[path] = struct{}{}
}

// Imports returns the collected imports sorted for stable emission.
func (m *ImportManager) Imports() []string {
	out := make([]string, 0, len(m.seen))
	for imp := range m.seen {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

// ImportManagerFor returns the import registry owning node's imports,
// creating and caching it on first use. When the language supports nested
// model classes, inner types delegate to their outermost ancestor's registry
// (imports belong to the file of the top-level class); otherwise each type
// keeps its own.
func ImportManagerFor(node *api.CodeObject, supportsNested bool) *ImportManager {
	if supportsNested {
		node = node.FindTopParent()
	}
	if v := node.TemplateValue(importManagerKey); v != nil {
		if m, ok := v.(*ImportManager); ok {
			return m
		}
	}
	m := NewImportManager()
	node.SetTemplateValue(importManagerKey, m)
	return m
}
