package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for one conversation message.
// Append-only; sequence_number is the conversation order seen by the LLM.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("sequence_number").
			Comment("Session-scoped conversation order"),
		field.Enum("role").
			Values("system", "user", "assistant", "tool"),
		field.Text("content"),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional().
			Comment("For assistant messages: tool calls issued by the LLM [{id, name, arguments}]"),
		field.String("tool_call_id").
			Optional().
			Nillable().
			Comment("For tool messages: links the result to the originating call"),
		field.String("tool_name").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence_number"),
	}
}
