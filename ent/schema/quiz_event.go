package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a submitted quiz with its score.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("UUID of the quiz"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning study session"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the quiz was generated for"),
		field.String("kind").
			NotEmpty().
			Comment("mcq, tf, fill, or mixed"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Int("num_questions").
			Comment("Questions in the quiz"),
		field.Int("score").
			Comment("Correct answers"),
		field.Int("total").
			Comment("Total answerable questions"),
		field.Float("percent").
			Comment("Score as a percentage of total"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
	}
}
