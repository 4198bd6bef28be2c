package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentAction holds the schema definition for one tool invocation made by an
// agent. The action history is what ResumeWithApproval replays from.
type AgentAction struct {
	ent.Schema
}

// Fields of the AgentAction.
func (AgentAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("sequence_number").
			Comment("Session-scoped action order"),
		field.String("tool_call_id").
			Comment("Provider-issued tool call ID, echoed back in the tool result"),
		field.String("tool_name"),
		field.JSON("tool_args", map[string]interface{}{}).
			Optional(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Serialized tools.Result"),
		field.Bool("success").
			Default(false),
		field.String("risk_level").
			Default("low"),
		field.String("approval_id").
			Optional().
			Nillable().
			Comment("Set when this action paused for approval"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentAction.
func (AgentAction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("actions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentAction.
func (AgentAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence_number"),
		index.Fields("approval_id"),
	}
}
