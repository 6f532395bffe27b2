package api

import (
	"errors"
	"fmt"

	"github.com/apiarylab/clientgen/internal/names"
)

// ErrNoModule reports a structural modeling bug: a node was asked for its
// module but neither it nor any ancestor was anchored to one.
var ErrNoModule = errors.New("code object has no module")

// typeResolver is implemented by nodes that carry a language-dependent code
// type (properties, parameters, data types, data values).
type typeResolver interface {
	resolveCodeType() string
}

// safeTypeResolver is implemented by nodes whose code type has a separately
// disambiguated "safe" form.
type safeTypeResolver interface {
	resolveSafeCodeType() string
}

// CodeObject is a template object that corresponds to an element of generated
// code: a class, a method, a variable. Nodes form a tree mirroring the
// discovery document; naming properties are computed lazily on first read and
// then cached, so the tree is expected to be fully built and annotated before
// the emission layer starts reading.
type CodeObject struct {
	*Template

	owner    *API
	parent   *CodeObject
	children []*CodeObject

	languageModel LanguageModel
	module        *Module
	foundModule   *Module

	typer typeResolver
}

// NewCodeObject builds a node from a discovery definition. The description
// field, if present, is stripped of HTML and sanitized at construction;
// sanitization failure degrades to an empty comment. A wireName that fails
// validation fails construction, since it would poison every derived name.
func NewCodeObject(def map[string]any, owner *API, parent *CodeObject, lm LanguageModel) (*CodeObject, error) {
	c := &CodeObject{
		Template:      NewTemplate(def),
		owner:         owner,
		languageModel: lm,
	}
	c.SetParent(parent)

	if wire := c.StringValue("wireName"); wire != "" {
		if err := names.ValidateName(wire); err != nil {
			return nil, fmt.Errorf("invalid wire name: %w", err)
		}
	}
	if d := c.StringValue("description"); d != "" {
		clean, err := names.SanitizeComment(names.StripHTML(d))
		if err != nil {
			clean = ""
		}
		c.SetTemplateValue("description", clean)
	}
	return c, nil
}

// Owner returns the API this element belongs to.
func (c *CodeObject) Owner() *API {
	return c.owner
}

// Parent returns the current parent, or nil for a root.
func (c *CodeObject) Parent() *CodeObject {
	return c.parent
}

// Children returns the ordered child list.
func (c *CodeObject) Children() []*CodeObject {
	return c.children
}

// SetParent moves this node under a new parent, keeping both sides of the
// relation consistent: the node is removed from its old parent's child list
// and appended to the new one's. A node has at most one parent at any time.
func (c *CodeObject) SetParent(parent *CodeObject) {
	if c.parent != nil {
		kids := c.parent.children
		for i, child := range kids {
			if child == c {
				c.parent.children = append(kids[:i], kids[i+1:]...)
				break
			}
		}
	}
	c.parent = parent
	if c.parent != nil {
		c.parent.children = append(c.parent.children, c)
	}
}

// Ancestors returns the chain from the ultimate root down to the immediate
// parent. A root returns an empty chain.
func (c *CodeObject) Ancestors() []*CodeObject {
	if c.parent == nil {
		return nil
	}
	return append(c.parent.Ancestors(), c.parent)
}

// FullPath returns Ancestors plus the node itself.
func (c *CodeObject) FullPath() []*CodeObject {
	return append(c.Ancestors(), c)
}

// FindTopParent returns the outermost ancestor, or the node itself for a
// root. Import aggregation uses this to find the registry owner for nested
// types.
func (c *CodeObject) FindTopParent() *CodeObject {
	if c.parent != nil {
		return c.parent.FindTopParent()
	}
	return c
}

// SetModule anchors this node to a module directly.
func (c *CodeObject) SetModule(m *Module) {
	c.module = m
}

// Module returns the module this node belongs in: the first explicitly
// assigned module found walking self then ancestors, memoized on first
// success. A tree with no anchored module is a modeling bug and fails rather
// than degrading, since silent fallback would only hide the broken generator.
func (c *CodeObject) Module() (*Module, error) {
	if c.foundModule != nil {
		return c.foundModule, nil
	}
	if c.module != nil {
		c.foundModule = c.module
		return c.module, nil
	}
	if c.parent != nil {
		m, err := c.parent.Module()
		if err != nil {
			return nil, err
		}
		c.foundModule = m
		return m, nil
	}
	name := c.StringValue("wireName")
	if name == "" {
		name = "<unnamed>"
	}
	return nil, fmt.Errorf("%w: %s", ErrNoModule, name)
}

// LanguageModel returns the nearest language model by walking the parent
// chain, memoizing the result after the first successful lookup. Returns nil
// if no ancestor carries one.
func (c *CodeObject) LanguageModel() LanguageModel {
	if c.languageModel != nil {
		return c.languageModel
	}
	if c.parent != nil {
		c.languageModel = c.parent.LanguageModel()
	}
	return c.languageModel
}

// SetLanguageModel replaces the (possibly memoized) language model. This is
// the one cached property that may be overridden after the fact; derived
// names already computed under the old model stay as they are.
func (c *CodeObject) SetLanguageModel(lm LanguageModel) {
	c.languageModel = lm
}

// CodeName returns a member-style identifier for this node, derived from its
// wire-format name by the active language model on first read and cached in
// the template values. The cached value survives a later language-model
// swap; callers needing a re-derivation must clear the "codeName" template
// value themselves.
func (c *CodeObject) CodeName() string {
	if name := c.StringValue("codeName"); name != "" {
		return name
	}
	name := c.StringValue("wireName")
	if lm := c.LanguageModel(); lm != nil {
		name = lm.ToMemberName(name, c.owner)
	}
	c.SetTemplateValue("codeName", name)
	return name
}

// ClassName returns the best available class-style name for this node:
// the disambiguated className if one was assigned, else the cached codeName,
// else the plain discovery name.
func (c *CodeObject) ClassName() string {
	if name := c.StringValue("className"); name != "" {
		return name
	}
	if name := c.StringValue("codeName"); name != "" {
		return name
	}
	return c.StringValue("name")
}

// RelativeClassName builds the qualified class name of this node relative to
// other, walking the parent chain and joining segments with the language
// model's class-name delimiter. The recursion contributes nothing from other
// upward, so passing an ancestor yields the intra-class nested name; passing
// nil yields the package-relative name.
func (c *CodeObject) RelativeClassName(other *CodeObject) string {
	if c == other {
		return ""
	}
	full := ""
	if c.parent != nil {
		full = c.parent.RelativeClassName(other)
	}
	if full != "" {
		if lm := c.LanguageModel(); lm != nil {
			full += lm.ClassNameDelimiter()
		}
	}
	return full + c.ClassName()
}

// PackageRelativeClassName returns the qualified class name without the
// module prefix.
func (c *CodeObject) PackageRelativeClassName() string {
	return c.RelativeClassName(nil)
}

// FullClassName returns the fully qualified class name: the owning module's
// rendered name, the class-name delimiter, then the package-relative name.
func (c *CodeObject) FullClassName() (string, error) {
	m, err := c.Module()
	if err != nil {
		return "", err
	}
	moduleName, err := m.Name()
	if err != nil {
		return "", err
	}
	lm := c.LanguageModel()
	if lm == nil {
		return "", fmt.Errorf("no language model for %q", c.StringValue("wireName"))
	}
	return moduleName + lm.ClassNameDelimiter() + c.RelativeClassName(nil), nil
}

// CodeType returns the target-language type for this node: an explicitly set
// "codeType" template value wins, otherwise the node's own resolution. Only
// meaningful for nodes that carry a data type.
func (c *CodeObject) CodeType() string {
	if v := c.StringValue("codeType"); v != "" {
		return v
	}
	if c.typer != nil {
		return c.typer.resolveCodeType()
	}
	return ""
}

// SafeCodeType is the collision-disambiguated variant of CodeType.
func (c *CodeObject) SafeCodeType() string {
	if v := c.StringValue("safeCodeType"); v != "" {
		return v
	}
	if s, ok := c.typer.(safeTypeResolver); ok {
		return s.resolveSafeCodeType()
	}
	return c.CodeType()
}
