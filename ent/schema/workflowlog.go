package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowLog holds the schema definition for one alert's triage→resolution
// trace. Audit only; never read back into agent reasoning.
type WorkflowLog struct {
	ent.Schema
}

// Fields of the WorkflowLog.
func (WorkflowLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("alert_id").
			Immutable(),
		field.String("status").
			Default("running").
			Comment("running, completed, error"),
		field.String("outcome").
			Optional().
			Comment("Final disposition (noise, resolved, incident_created, ...)"),
		field.Text("summary").
			Optional(),
		field.Int("total_input_tokens").
			Default(0),
		field.Int("total_output_tokens").
			Default(0),
		field.Float("estimated_cost").
			Default(0).
			Comment("USD estimate derived from token counts"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the WorkflowLog.
func (WorkflowLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("alert", Alert.Type).
			Ref("workflow_logs").
			Field("alert_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", WorkflowStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowLog.
func (WorkflowLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("alert_id"),
		index.Fields("status"),
	}
}
