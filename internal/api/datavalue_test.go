package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataValue_ResolvesThroughReferences(t *testing.T) {
	// Test plan:
	// - The stored type is the concrete one even when built from a $ref
	// - Literal round-trips through Set

	s, err := NewSchema(map[string]any{"wireName": "record"}, nil, nil, "Record")
	require.NoError(t, err)
	ref, err := NewSchemaRef("Record", nil, nil)
	require.NoError(t, err)
	ref.bind(s)

	v := NewDataValue("x", ref)
	assert.Same(t, DataType(s), v.DataType())

	assert.Equal(t, "x", v.Literal())
	v.SetLiteral(42)
	assert.Equal(t, 42, v.Literal())
	assert.NotNil(t, v.Metadata())
}

func TestDataValueFor_SharesElementAnnotations(t *testing.T) {
	// Test plan:
	// - A value built for a property sees the property's template values
	// - Annotations set later on the property show through the value

	s, err := NewSchema(map[string]any{"wireName": "book"}, nil, nil, "Book")
	require.NoError(t, err)
	dt, err := NewPrimitiveDataType(map[string]any{"type": "boolean"}, nil, nil)
	require.NoError(t, err)
	p, err := NewProperty(map[string]any{}, s, "in-print", dt)
	require.NoError(t, err)

	v := NewDataValueFor(true, p)
	p.SetTemplateValue("requiresJsonString", true)
	assert.Equal(t, true, v.TemplateValue("requiresJsonString"))
}

func TestDataValue_LanguageModelOverridePropagates(t *testing.T) {
	// Test: the override reaches the data type so CodeType stays consistent
	lm := newStubModel()
	dt, err := NewPrimitiveDataType(map[string]any{"type": "string", "format": "int64"}, nil, nil)
	require.NoError(t, err)

	v := NewDataValue("123", dt)
	v.SetLanguageModel(lm)
	assert.Equal(t, "Long", v.CodeType())
	assert.Equal(t, "Long", dt.CodeType())
}
