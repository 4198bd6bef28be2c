package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert holds the schema definition for an ingested network alert.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.String("severity").
			Default("warning"),
		field.String("source").
			Comment("Originating system (snmp, syslog, webhook, manual)"),
		field.String("device").
			Optional(),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("new", "processing", "triaged", "noise", "escalated",
				"incident_created", "resolved", "investigated", "error").
			Default("new"),
		field.String("incident_id").
			Optional().
			Nillable(),
		field.Bool("skip_ai").
			Default(false).
			Comment("Skip automated workflow processing"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker that claimed this alert"),
		field.Time("claimed_at").
			Optional().
			Nillable().
			Comment("When a worker claimed this alert, for stale-claim requeue"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("acknowledged_at").
			Optional().
			Nillable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Alert.
func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("workflow_logs", WorkflowLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("device"),
		index.Fields("status", "created_at"),
	}
}
