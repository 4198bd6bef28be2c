package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowStep holds the schema definition for one phase of a workflow
// (triage or specialist), tied to the agent session that ran it.
type WorkflowStep struct {
	ent.Schema
}

// Fields of the WorkflowStep.
func (WorkflowStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.Int("step_index"),
		field.String("phase").
			Comment("triage or specialist"),
		field.String("agent_type"),
		field.String("session_id").
			Optional(),
		field.String("outcome").
			Optional(),
		field.Text("summary").
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WorkflowStep.
func (WorkflowStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", WorkflowLog.Type).
			Ref("steps").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowStep.
func (WorkflowStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "step_index"),
	}
}
