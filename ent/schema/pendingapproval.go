package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingApproval holds the schema definition for a human approval gate.
// The row is the durable pause: it must survive process restarts because
// the approval decision may arrive arbitrarily late.
type PendingApproval struct {
	ent.Schema
}

// Fields of the PendingApproval.
func (PendingApproval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("action_id").
			Comment("AgentAction that paused on this approval"),
		field.String("tool_name"),
		field.JSON("tool_args", map[string]interface{}{}).
			Optional(),
		field.String("risk_level").
			Default("high"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired").
			Default("pending"),
		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.String("decided_by").
			Optional().
			Nillable(),
		field.String("decision_reason").
			Optional().
			Nillable(),
	}
}

// Edges of the PendingApproval.
func (PendingApproval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("approvals").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PendingApproval.
func (PendingApproval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("session_id", "status"),
		index.Fields("status", "expires_at"),
	}
}
