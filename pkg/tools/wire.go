package tools

// Schema is the vendor-neutral wire shape of a tool declaration. The LLM
// client translates it to each provider's function/tool declaration format.
type Schema struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// Schemas returns the wire schemas for the named tools (nil names = full
// catalog), in the same order Subset returns them.
func (r *Registry) Schemas(names []string) []Schema {
	selected := r.Subset(names)
	out := make([]Schema, len(selected))
	for i, t := range selected {
		schema := t.InputSchema
		if schema == nil {
			schema = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		out[i] = Schema{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schema,
		}
	}
	return out
}
