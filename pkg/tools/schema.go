package tools

import "fmt"

// validateArgs checks args against a JSON-Schema object: required-field
// presence and primitive type match. Deeper schema features (patterns,
// ranges, nested object shapes) are the handler's concern.
func validateArgs(schema map[string]any, args map[string]any) error {
	if schema == nil {
		return nil
	}
	if args == nil {
		args = map[string]any{}
	}

	if required, ok := schema["required"].([]any); ok {
		for _, f := range required {
			name, ok := f.(string)
			if !ok {
				continue
			}
			if _, present := args[name]; !present {
				return fmt.Errorf("Missing required field: %s", name)
			}
		}
	}
	if required, ok := schema["required"].([]string); ok {
		for _, name := range required {
			if _, present := args[name]; !present {
				return fmt.Errorf("Missing required field: %s", name)
			}
		}
	}

	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		return nil
	}
	for name, raw := range args {
		prop, ok := properties[name].(map[string]any)
		if !ok {
			continue
		}
		want, ok := prop["type"].(string)
		if !ok {
			continue
		}
		if !typeMatches(want, raw) {
			return fmt.Errorf("Invalid type for field: %s (expected %s)", name, want)
		}
	}
	return nil
}

// typeMatches checks a value against a JSON-Schema primitive type name.
// JSON numbers decode as float64; integers accept whole floats.
func typeMatches(want string, v any) bool {
	if v == nil {
		return true
	}
	switch want {
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "number":
		switch v.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case "integer":
		switch n := v.(type) {
		case int, int32, int64:
			return true
		case float64:
			return n == float64(int64(n))
		case float32:
			return n == float32(int64(n))
		}
		return false
	case "array":
		switch v.(type) {
		case []any, []string:
			return true
		}
		return false
	case "object":
		_, ok := v.(map[string]any)
		return ok
	default:
		return true
	}
}
