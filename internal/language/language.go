// Package language defines the contract a target language plugs into the
// generator with, plus a shared table-driven base implementation. Concrete
// languages compose the base by delegation and override only what differs,
// so adding a language is mostly a matter of filling in tables.
package language

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apiarylab/clientgen/internal/api"
	"github.com/apiarylab/clientgen/internal/names"
)

// JSONStringFlag is the template value marking an element whose 64-bit
// numeric value must be wire-encoded as a JSON string to avoid precision
// loss in serializers that round-trip through doubles.
const JSONStringFlag = "requiresJsonString"

// Key identifies a JSON-schema primitive: its type plus optional format.
type Key struct {
	Type   string
	Format string
}

// TypeMapping describes how one (type, format) pair lands in the target
// language: the type name to emit, the imports it drags in, and any template
// flags that must be set on elements of this type (e.g. the 64-bit
// string-encoding marker).
type TypeMapping struct {
	CodeType      string
	Imports       []string
	TemplateFlags []string
}

// Table maps JSON-schema primitives to their target-language treatment.
// Tables are built once at model construction and never mutated afterwards.
type Table map[Key]TypeMapping

// Model is the full per-language strategy surface: everything the code
// object tree needs (api.LanguageModel) plus table access for annotation
// passes.
type Model interface {
	api.LanguageModel

	// Mapping looks up the treatment of a (type, format) pair.
	Mapping(jsonType, jsonFormat string) (TypeMapping, bool)
}

// Base is a table-driven api.LanguageModel implementation. A concrete
// language embeds *Base with its tables filled in and overrides individual
// methods where its rules diverge.
type Base struct {
	LanguageName string
	ClassDelim   string
	ModuleDelim  string
	Nested       bool

	// Reserved holds lower-cased identifiers that cannot be used as class or
	// member names: keywords, built-in type names, special-cased names.
	Reserved map[string]struct{}

	// Types is the (type, format) resolution table.
	Types Table

	// IntFormats maps resolved integer code types to their literal format
	// (e.g. "Long" -> "%dL"). A numeric literal whose code type is absent
	// here is a type mismatch and fails rendering.
	IntFormats map[string]string

	// ArrayOf, MapOf and VoidType shape collection and void type names.
	ArrayOf  string
	MapOf    string
	VoidType string
}

func (b *Base) Name() string                { return b.LanguageName }
func (b *Base) ClassNameDelimiter() string  { return b.ClassDelim }
func (b *Base) ModuleNameDelimiter() string { return b.ModuleDelim }
func (b *Base) SupportsNestedClasses() bool { return b.Nested }
func (b *Base) CodeTypeForVoid() string     { return b.VoidType }

func (b *Base) CodeTypeForArrayOf(typeName string) string {
	return fmt.Sprintf(b.ArrayOf, typeName)
}

func (b *Base) CodeTypeForMapOf(typeName string) string {
	return fmt.Sprintf(b.MapOf, typeName)
}

// Mapping implements Model.
func (b *Base) Mapping(jsonType, jsonFormat string) (TypeMapping, bool) {
	m, ok := b.Types[Key{Type: jsonType, Format: jsonFormat}]
	return m, ok
}

// CodeTypeFromDef resolves a schema fragment through the type table. The
// JSON type defaults to "string"; an unmapped pair degrades to the
// camel-cased JSON type rather than failing, so documents that grow new
// primitives before the table does still generate something readable.
func (b *Base) CodeTypeFromDef(def map[string]any) string {
	jsonType, _ := def["type"].(string)
	if jsonType == "" {
		jsonType = "string"
	}
	jsonFormat, _ := def["format"].(string)
	if m, ok := b.Mapping(jsonType, jsonFormat); ok {
		return m.CodeType
	}
	return names.CamelCase(jsonType)
}

// ToMemberName camel-cases a wire name into a variable-style identifier. If
// the lower-cased form is reserved, the owning API's name is prepended to
// step around the collision.
func (b *Base) ToMemberName(wire string, owner *api.API) string {
	camel := names.CamelCase(wire)
	if b.isReserved(camel) {
		return b.apiPrefix(owner) + camel
	}
	return names.LowerFirst(camel)
}

// ToSafeClassName camel-cases a wire name into a class identifier. A
// candidate matching an ancestor's class name is re-prefixed with the
// immediate parent's class name; a reserved candidate is prefixed with the
// API's name. The prefixed forms can no longer collide with the reserved
// set, which keeps the operation idempotent.
func (b *Base) ToSafeClassName(wire string, owner *api.API, parent *api.CodeObject) string {
	safe := names.CamelCase(wire)
	if parent != nil {
		for _, ancestor := range parent.FullPath() {
			if ancestor.StringValue("safeClassName") == safe {
				safe = parent.StringValue("className") + safe
			}
		}
	}
	if b.isReserved(safe) {
		safe = b.apiPrefix(owner) + names.CamelCase(wire)
	}
	return safe
}

// DefaultContainerPath places a parentless module under the owner's reversed
// domain ("example.com" -> "com/example").
func (b *Base) DefaultContainerPath(ownerName, ownerDomain string) string {
	return strings.Join(names.ReversedDomainComponents(ownerDomain), "/")
}

// RenderLiteral formats a data value in target syntax. Booleans render as
// their lower-cased text. Integers look up a literal format by the value's
// resolved code type and fail hard on an unknown one; that mismatch means
// the model itself is wrong, not the document. Strings render quoted.
func (b *Base) RenderLiteral(v *api.DataValue) (string, error) {
	leaf := api.LeafDataType(v.DataType())
	switch leaf.JSONType() {
	case "boolean":
		return b.renderBool(v)
	case "integer":
		return b.renderInt(v)
	case "string":
		if f := leaf.JSONFormat(); f == "int64" || f == "uint64" {
			return b.renderInt(v)
		}
		return strconv.Quote(fmt.Sprint(v.Literal())), nil
	default:
		return "", fmt.Errorf("no literal rendering for json type %q", leaf.JSONType())
	}
}

func (b *Base) renderBool(v *api.DataValue) (string, error) {
	switch val := v.Literal().(type) {
	case bool:
		return strconv.FormatBool(val), nil
	case string:
		parsed, err := strconv.ParseBool(strings.ToLower(val))
		if err != nil {
			return "", fmt.Errorf("data value %q is not a boolean", val)
		}
		return strconv.FormatBool(parsed), nil
	default:
		return "", fmt.Errorf("data value %v (%T) is not a boolean", val, val)
	}
}

func (b *Base) renderInt(v *api.DataValue) (string, error) {
	codeType := v.CodeType()
	format, ok := b.IntFormats[codeType]
	if !ok {
		return "", fmt.Errorf("data value %v does not resolve to a known %s integer code type (got %q)",
			v.Literal(), b.LanguageName, codeType)
	}
	n, err := toInt64(v.Literal())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, n), nil
}

func toInt64(v any) (int64, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case float64:
		return int64(val), nil
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("data value %q is not an integer", val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("data value %v (%T) is not an integer", val, val)
	}
}

func (b *Base) isReserved(name string) bool {
	_, ok := b.Reserved[strings.ToLower(name)]
	return ok
}

func (b *Base) apiPrefix(owner *api.API) string {
	if owner == nil {
		return ""
	}
	return names.CamelCase(owner.Name())
}

// ReservedSet builds a lookup set from word lists, lower-casing everything.
func ReservedSet(lists ...[]string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, list := range lists {
		for _, w := range list {
			out[strings.ToLower(w)] = struct{}{}
		}
	}
	return out
}

// RequiresJSONString reports whether a data type must be wire-encoded as a
// JSON string to avoid 64-bit precision loss, after unwrapping any
// collection layers.
func RequiresJSONString(dt api.DataType) bool {
	leaf := api.LeafDataType(dt)
	if leaf.JSONType() != "string" {
		return false
	}
	f := leaf.JSONFormat()
	return f == "int64" || f == "uint64"
}
