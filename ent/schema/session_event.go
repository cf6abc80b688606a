package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records study session lifecycle actions.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the study session"),
		field.String("session_name").
			NotEmpty().
			Comment("Display name at the time of the event"),
		field.String("action").
			NotEmpty().
			Comment("create, switch, rename, or delete"),
		field.String("detail").
			Default("").
			Comment("Extra context, e.g. the new name on rename"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
