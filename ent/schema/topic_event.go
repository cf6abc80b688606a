package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicEvent records a topic being studied in a session.
type TopicEvent struct {
	ent.Schema
}

func (TopicEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TopicEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning study session"),
		field.String("topic").
			NotEmpty().
			Comment("Normalized topic name"),
	}
}

func (TopicEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
	}
}
