package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarylab/clientgen/internal/api"
)

func testBase() *Base {
	return &Base{
		LanguageName: "test",
		ClassDelim:   ".",
		ModuleDelim:  ".",
		Nested:       true,
		Reserved:     ReservedSet([]string{"new", "class", "Entry"}),
		Types: Table{
			{Type: "string"}:                    {CodeType: "String"},
			{Type: "boolean"}:                   {CodeType: "Boolean"},
			{Type: "integer", Format: "int32"}:  {CodeType: "Integer"},
			{Type: "integer", Format: "int16"}:  {CodeType: "Short"},
			{Type: "integer", Format: "uint32"}: {CodeType: "UnsignedInteger"},
			{Type: "string", Format: "int64"}: {
				CodeType:      "Long",
				Imports:       []string{"com.example.json.JsonString"},
				TemplateFlags: []string{JSONStringFlag},
			},
		},
		IntFormats: map[string]string{
			"Short":   "%d",
			"Integer": "%d",
			"Long":    "%dL",
		},
		ArrayOf:  "List<%s>",
		MapOf:    "Map<String, %s>",
		VoidType: "Void",
	}
}

func testAPI(t *testing.T, b *Base) *api.API {
	t.Helper()
	a, err := api.NewAPI(map[string]any{"name": "library"}, b)
	require.NoError(t, err)
	return a
}

func TestBase_Mapping(t *testing.T) {
	// Test plan:
	// - Exact (type, format) pairs hit
	// - A format the table lacks misses rather than falling back

	b := testBase()
	m, ok := b.Mapping("string", "int64")
	require.True(t, ok)
	assert.Equal(t, "Long", m.CodeType)
	assert.Equal(t, []string{"com.example.json.JsonString"}, m.Imports)

	_, ok = b.Mapping("integer", "int64")
	assert.False(t, ok)
	_, ok = b.Mapping("string", "")
	assert.True(t, ok)
}

func TestBase_CodeTypeFromDef(t *testing.T) {
	// Test plan:
	// - Missing type defaults to string
	// - Unmapped pairs degrade to the camel-cased JSON type

	b := testBase()
	assert.Equal(t, "String", b.CodeTypeFromDef(map[string]any{}))
	assert.Equal(t, "Integer", b.CodeTypeFromDef(map[string]any{"type": "integer", "format": "int32"}))
	assert.Equal(t, "Number", b.CodeTypeFromDef(map[string]any{"type": "number", "format": "double"}))
}

func TestBase_ToMemberName(t *testing.T) {
	// Test plan:
	// - Wire names camel-case with a lowered first letter
	// - Reserved words get the API name prepended

	b := testBase()
	a := testAPI(t, b)

	assert.Equal(t, "maxResults", b.ToMemberName("max-results", a))
	assert.Equal(t, "etag", b.ToMemberName("etag", a))

	// Test: "new" is reserved, so the owning API's name steps around it
	assert.Equal(t, "LibraryNew", b.ToMemberName("new", a))
}

func TestBase_ToSafeClassName(t *testing.T) {
	// Test plan:
	// - Plain names camel-case
	// - A name matching an ancestor class is prefixed with the parent class
	// - Reserved names are prefixed with the API name
	// - The operation is idempotent on its own output

	b := testBase()
	a := testAPI(t, b)

	assert.Equal(t, "Item", b.ToSafeClassName("item", a, nil))
	assert.Equal(t, "LibraryClass", b.ToSafeClassName("class", a, nil))

	outer, err := api.NewSchema(map[string]any{"wireName": "record"}, a, nil, "Record")
	require.NoError(t, err)

	safe := b.ToSafeClassName("record", a, outer.Node())
	assert.Equal(t, "RecordRecord", safe)

	// Test: re-running on the disambiguated name changes nothing
	assert.Equal(t, "RecordRecord", b.ToSafeClassName("RecordRecord", a, outer.Node()))
}

func TestBase_DefaultContainerPath(t *testing.T) {
	b := testBase()
	assert.Equal(t, "com/example", b.DefaultContainerPath("Example", "example.com"))
	assert.Equal(t, "", b.DefaultContainerPath("Example", ""))
}

func TestBase_RenderLiteral_Booleans(t *testing.T) {
	// Test plan:
	// - Native and string-typed booleans render lower-cased
	// - Junk fails

	b := testBase()
	dt, err := api.NewPrimitiveDataType(map[string]any{"type": "boolean"}, nil, nil)
	require.NoError(t, err)
	dt.SetLanguageModel(b)

	out, err := b.RenderLiteral(api.NewDataValue(true, dt))
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = b.RenderLiteral(api.NewDataValue("False", dt))
	require.NoError(t, err)
	assert.Equal(t, "false", out)

	_, err = b.RenderLiteral(api.NewDataValue("maybe", dt))
	require.Error(t, err)
}

func TestBase_RenderLiteral_Integers(t *testing.T) {
	// Test plan:
	// - The literal format follows the resolved code type
	// - 64-bit string-encoded integers render with the Long suffix
	// - A numeric value with no format entry is a type mismatch

	b := testBase()

	int32Type, err := api.NewPrimitiveDataType(map[string]any{"type": "integer", "format": "int32"}, nil, nil)
	require.NoError(t, err)
	int32Type.SetLanguageModel(b)
	out, err := b.RenderLiteral(api.NewDataValue(5, int32Type))
	require.NoError(t, err)
	assert.Equal(t, "5", out)

	longType, err := api.NewPrimitiveDataType(map[string]any{"type": "string", "format": "int64"}, nil, nil)
	require.NoError(t, err)
	longType.SetLanguageModel(b)
	out, err = b.RenderLiteral(api.NewDataValue("5", longType))
	require.NoError(t, err)
	assert.Equal(t, "5L", out)

	// Test: a code type with no literal format entry is a model mismatch
	oddType, err := api.NewPrimitiveDataType(map[string]any{"type": "integer", "format": "uint32"}, nil, nil)
	require.NoError(t, err)
	oddType.SetLanguageModel(b)
	_, err = b.RenderLiteral(api.NewDataValue(5, oddType))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer code type")
}

func TestBase_RenderLiteral_Strings(t *testing.T) {
	// Test: plain strings render quoted
	b := testBase()
	dt, err := api.NewPrimitiveDataType(map[string]any{"type": "string"}, nil, nil)
	require.NoError(t, err)
	dt.SetLanguageModel(b)

	out, err := b.RenderLiteral(api.NewDataValue(`shelf "a"`, dt))
	require.NoError(t, err)
	assert.Equal(t, `"shelf \"a\""`, out)
}

func TestBase_RenderLiteral_UnsupportedType(t *testing.T) {
	// Test: object-typed values have no literal form
	b := testBase()
	s, err := api.NewSchema(map[string]any{"wireName": "record"}, nil, nil, "Record")
	require.NoError(t, err)
	_, err = b.RenderLiteral(api.NewDataValue("x", s))
	require.Error(t, err)
}

func TestRequiresJSONString(t *testing.T) {
	// Test plan:
	// - string/int64 and string/uint64 require JSON string encoding
	// - Collection wrapping is unwrapped first
	// - Plain strings and 32-bit integers do not

	long, err := api.NewPrimitiveDataType(map[string]any{"type": "string", "format": "int64"}, nil, nil)
	require.NoError(t, err)
	assert.True(t, RequiresJSONString(long))

	ulong, err := api.NewPrimitiveDataType(map[string]any{"type": "string", "format": "uint64"}, nil, nil)
	require.NoError(t, err)
	assert.True(t, RequiresJSONString(ulong))

	arr, err := api.NewArrayDataType(long, nil, nil)
	require.NoError(t, err)
	assert.True(t, RequiresJSONString(arr))

	plain, err := api.NewPrimitiveDataType(map[string]any{"type": "string"}, nil, nil)
	require.NoError(t, err)
	assert.False(t, RequiresJSONString(plain))

	int32Type, err := api.NewPrimitiveDataType(map[string]any{"type": "integer", "format": "int32"}, nil, nil)
	require.NoError(t, err)
	assert.False(t, RequiresJSONString(int32Type))
}

func TestReservedSet(t *testing.T) {
	// Test: lists merge and lookups are case-insensitive via lower-casing
	set := ReservedSet([]string{"New"}, []string{"class"})
	_, ok := set["new"]
	assert.True(t, ok)
	_, ok = set["class"]
	assert.True(t, ok)
	_, ok = set["New"]
	assert.False(t, ok)
}
