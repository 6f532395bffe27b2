package api

// LanguageModel is the strategy a code object consults when it has to turn
// wire-format names and JSON-schema types into legal target-language source.
// Implementations are pure: they hold read-only tables built at selection
// time and are shared by reference across the whole tree.
type LanguageModel interface {
	// Name identifies the target language ("java", "csharp", ...).
	Name() string

	// ClassNameDelimiter joins nested class-name segments ("." for Java).
	ClassNameDelimiter() string

	// ModuleNameDelimiter joins module path segments in a rendered module
	// name ("." for Java packages).
	ModuleNameDelimiter() string

	// SupportsNestedClasses reports whether inner model classes are legal, in
	// which case nested types share their outermost ancestor's imports.
	SupportsNestedClasses() bool

	// CodeTypeFromDef resolves a JSON-schema fragment ("type" plus optional
	// "format", type defaulting to "string") to a target type name. Unmapped
	// pairs degrade to the camel-cased JSON type; this never fails.
	CodeTypeFromDef(def map[string]any) string

	// CodeTypeForArrayOf returns the syntax for an array of typeName.
	CodeTypeForArrayOf(typeName string) string

	// CodeTypeForMapOf returns the syntax for a string-keyed map of typeName.
	CodeTypeForMapOf(typeName string) string

	// CodeTypeForVoid returns the type name used for responseless methods.
	CodeTypeForVoid() string

	// ToMemberName converts a wire-format name into a variable-style
	// identifier, disambiguating reserved words with the owning API's name.
	ToMemberName(wire string, owner *API) string

	// ToSafeClassName converts a wire-format name into a class identifier,
	// disambiguating against reserved words and against identically named
	// ancestors of parent.
	ToSafeClassName(wire string, owner *API, parent *CodeObject) string

	// DefaultContainerPath derives the root module path for an API owner.
	DefaultContainerPath(ownerName, ownerDomain string) string

	// RenderLiteral formats a DataValue as target-language literal text.
	// Numeric values whose resolved code type is not in the literal table
	// fail with a type-mismatch error.
	RenderLiteral(v *DataValue) (string, error)
}
