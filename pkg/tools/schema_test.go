package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateArgsRequiredFields(t *testing.T) {
	schema := objectSchema(map[string]any{
		"device_name": stringProp(""),
		"command":     stringProp(""),
	}, "device_name", "command")

	err := validateArgs(schema, map[string]any{"device_name": "core-rtr-01"})
	assert.EqualError(t, err, "Missing required field: command")

	err = validateArgs(schema, map[string]any{
		"device_name": "core-rtr-01",
		"command":     "show version",
	})
	assert.NoError(t, err)
}

func TestValidateArgsPrimitiveTypes(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":    map[string]any{"type": "string"},
			"count":   map[string]any{"type": "integer"},
			"ratio":   map[string]any{"type": "number"},
			"enabled": map[string]any{"type": "boolean"},
			"tags":    map[string]any{"type": "array"},
			"meta":    map[string]any{"type": "object"},
		},
	}

	assert.NoError(t, validateArgs(schema, map[string]any{
		"name":    "edge-sw-02",
		"count":   float64(3), // JSON numbers decode as float64
		"ratio":   0.5,
		"enabled": true,
		"tags":    []any{"a", "b"},
		"meta":    map[string]any{"k": "v"},
	}))

	assert.EqualError(t, validateArgs(schema, map[string]any{"count": 2.5}),
		"Invalid type for field: count (expected integer)")
	assert.EqualError(t, validateArgs(schema, map[string]any{"enabled": "yes"}),
		"Invalid type for field: enabled (expected boolean)")
}

func TestValidateArgsUnknownFieldsIgnored(t *testing.T) {
	schema := objectSchema(map[string]any{"query": stringProp("")}, "query")

	assert.NoError(t, validateArgs(schema, map[string]any{
		"query": "bgp flap",
		"extra": 99,
	}))
}

func TestValidateArgsNilSchemaAndNilValues(t *testing.T) {
	assert.NoError(t, validateArgs(nil, map[string]any{"anything": 1}))

	schema := objectSchema(map[string]any{"name": stringProp("")})
	assert.NoError(t, validateArgs(schema, map[string]any{"name": nil}))
}
