package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apiarylab/clientgen/internal/names"
)

// ErrModuleFrozen reports a usage-ordering bug: SetPath was called after the
// module's name had already been read and cached.
var ErrModuleFrozen = errors.New("module is frozen after first Name read")

// Module represents a namespace or package: a '/'-delimited file-system style
// path plus a language-rendered dotted name. A generator anchors the top of
// the model to a module and hangs child modules (the API's own module, its
// "model" module for schemas) beneath it.
//
// Modules are mutable up until the first time Name is evaluated. The freeze
// exists to catch a single Module instance being accidentally shared by nodes
// of different parentage: once a rendered name is out, changing the path
// would let two readers see inconsistent placements.
type Module struct {
	*CodeObject

	parentModule *Module
	path         string
	ownerName    string
	ownerDomain  string

	name   string
	frozen bool
}

// NewModule creates a module with the given '/'-delimited path segment. The
// owner domain is sanitized for use in paths. parent and lm are optional;
// a parentless module derives its base path from the owner via the language
// model.
func NewModule(path, ownerName, ownerDomain string, parent *Module, lm LanguageModel) *Module {
	var parentNode *CodeObject
	if parent != nil {
		parentNode = parent.CodeObject
	}
	co, _ := NewCodeObject(map[string]any{}, nil, parentNode, lm)
	return &Module{
		CodeObject:   co,
		parentModule: parent,
		path:         path,
		ownerName:    ownerName,
		ownerDomain:  names.SanitizeDomain(ownerDomain),
	}
}

// ModuleFromDef builds a Module from the "library_definition" section of a
// discovery definition, or returns nil if there is none.
func ModuleFromDef(def map[string]any) *Module {
	lib, ok := def["library_definition"].(map[string]any)
	if !ok {
		return nil
	}
	path, _ := lib["modulePath"].(string)
	owner, _ := lib["owner"].(string)
	domain, _ := lib["domain"].(string)
	return NewModule(path, owner, domain, nil, nil)
}

// SetPath replaces the module's path segment. Legal any number of times
// before the first Name read; afterwards it fails with ErrModuleFrozen.
func (m *Module) SetPath(path string) error {
	if m.frozen {
		return fmt.Errorf("SetPath(%q): %w", path, ErrModuleFrozen)
	}
	m.path = path
	return nil
}

// Path returns the '/'-delimited path: the parent module's path (or the
// language default container path for the owner, when parentless) joined
// with this module's own segment. Empty segments are skipped.
func (m *Module) Path() (string, error) {
	var base string
	if m.parentModule != nil {
		p, err := m.parentModule.Path()
		if err != nil {
			return "", err
		}
		base = p
	} else {
		lm := m.LanguageModel()
		if lm == nil {
			return "", fmt.Errorf("no language model to derive container path for module %q", m.path)
		}
		base = lm.DefaultContainerPath(m.ownerName, m.ownerDomain)
	}
	parts := make([]string, 0, 2)
	for _, p := range []string{base, m.path} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/"), nil
}

// Name returns the language-rendered module name: the path with '/' replaced
// by the module-name delimiter. Computed once; the first successful read
// freezes the module.
func (m *Module) Name() (string, error) {
	if m.frozen {
		return m.name, nil
	}
	lm := m.LanguageModel()
	if lm == nil {
		return "", fmt.Errorf("no language model to render name for module %q", m.path)
	}
	path, err := m.Path()
	if err != nil {
		return "", err
	}
	m.name = strings.ReplaceAll(path, "/", lm.ModuleNameDelimiter())
	m.frozen = true
	return m.name, nil
}
