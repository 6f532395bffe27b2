package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarylab/clientgen/internal/api"
)

func annotatedAPI(t *testing.T, b *Base) *api.API {
	t.Helper()
	a, err := api.NewAPI(map[string]any{
		"name": "library",
		"schemas": map[string]any{
			"Record": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "format": "int64"},
					"title": map[string]any{"type": "string"},
					"meta": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"size": map[string]any{"type": "string", "format": "int64"},
						},
					},
				},
			},
		},
		"resources": map[string]any{
			"records": map[string]any{
				"methods": map[string]any{
					"list": map[string]any{
						"parameters": map[string]any{
							"maxBytes": map[string]any{"type": "string", "format": "int64"},
						},
					},
				},
			},
		},
	}, b)
	require.NoError(t, err)
	Annotate(a, b)
	return a
}

func TestAnnotate_SetsJSONStringFlags(t *testing.T) {
	// Test plan:
	// - 64-bit string-encoded properties get the flag, others do not
	// - Nested class properties are annotated too
	// - Method parameters are annotated like properties

	b := testBase()
	a := annotatedAPI(t, b)

	record := a.TopLevelModelClasses()[0]
	props := record.Properties()
	require.Len(t, props, 3)

	// sorted: id, meta, title
	assert.Equal(t, true, props[0].TemplateValue(JSONStringFlag))
	assert.Nil(t, props[2].TemplateValue(JSONStringFlag))

	nested := api.ConcreteDataType(api.LeafDataType(props[1].DataType())).(*api.Schema)
	require.Len(t, nested.Properties(), 1)
	assert.Equal(t, true, nested.Properties()[0].TemplateValue(JSONStringFlag))

	param := a.Resources()[0].Methods()[0].Parameters()[0]
	assert.Equal(t, true, param.TemplateValue(JSONStringFlag))
}

func TestAnnotate_AggregatesImportsOnTopLevelClass(t *testing.T) {
	// Test: imports from nested properties land on the outer class registry
	b := testBase()
	a := annotatedAPI(t, b)

	record := a.TopLevelModelClasses()[0]
	imports := ImportManagerFor(record.Node(), b.SupportsNestedClasses()).Imports()
	assert.Equal(t, []string{"com.example.json.JsonString"}, imports)
}
