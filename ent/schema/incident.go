package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for a human-facing incident ticket,
// created when an agent determines follow-up is required.
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("severity").
			Default("warning"),
		field.String("status").
			Default("open"),
		field.String("source").
			Optional().
			Comment("What created the incident (agent, workflow, manual)"),
		field.JSON("affected_devices", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
