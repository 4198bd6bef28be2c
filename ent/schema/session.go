package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for an agent conversation session.
// One session is owned by exactly one executor run at a time; its message
// and action lists are append-only conversation state.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("agent_type").
			Comment("Agent type driving this session (e.g. 'triage', 'bgp')"),
		field.Enum("status").
			Values("active", "awaiting_approval", "completed", "error").
			Default("active"),
		field.String("trigger_type").
			Optional().
			Comment("What started the session: 'alert', 'chat', 'handoff'"),
		field.String("trigger_id").
			Optional().
			Comment("ID of the triggering entity (alert ID, parent session ID)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.String("end_reason").
			Optional().
			Nillable().
			Comment("Terminal event that ended the session (final_response, handoff, error)"),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("actions", AgentAction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approvals", PendingApproval.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_type"),
		index.Fields("status", "created_at"),
		index.Fields("trigger_type", "trigger_id"),
	}
}
