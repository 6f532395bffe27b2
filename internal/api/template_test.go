package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_ValueAccess(t *testing.T) {
	// Test plan:
	// - Read present and absent values
	// - StringValue only returns strings
	// - Set and delete round-trip

	tpl := NewTemplate(map[string]any{
		"name":  "books",
		"count": 3,
	})

	v, ok := tpl.Value("name")
	require.True(t, ok)
	assert.Equal(t, "books", v)

	_, ok = tpl.Value("missing")
	assert.False(t, ok)
	assert.Nil(t, tpl.TemplateValue("missing"))

	// Test: StringValue on a non-string yields empty
	assert.Equal(t, "", tpl.StringValue("count"))
	assert.Equal(t, "books", tpl.StringValue("name"))

	tpl.SetTemplateValue("extra", "x")
	assert.Equal(t, "x", tpl.StringValue("extra"))
	tpl.DeleteTemplateValue("extra")
	assert.Nil(t, tpl.TemplateValue("extra"))
}

func TestTemplate_RawIsImmutableSnapshot(t *testing.T) {
	// Test plan:
	// - Mutating live values never shows through Raw
	// - Nested maps in the source definition are deep-copied

	nested := map[string]any{"format": "int64"}
	def := map[string]any{
		"name":   "books",
		"schema": nested,
	}
	tpl := NewTemplate(def)

	tpl.SetTemplateValue("name", "changed")
	tpl.SetTemplateValue("added", true)

	assert.Equal(t, "books", tpl.Raw()["name"])
	assert.Nil(t, tpl.Raw()["added"])

	// Test: mutating the original nested map does not leak into raw
	nested["format"] = "uint64"
	rawNested := tpl.Raw()["schema"].(map[string]any)
	assert.Equal(t, "int64", rawNested["format"])
}

func TestTemplate_ValuesIsLive(t *testing.T) {
	// Test: mutations through Values() are visible to lookups
	tpl := NewTemplate(map[string]any{})
	tpl.Values()["direct"] = "yes"
	assert.Equal(t, "yes", tpl.StringValue("direct"))
}
