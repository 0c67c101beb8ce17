package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered practice question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question bank ID"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill this answer was folded into"),
		field.Int("difficulty").
			Comment("Question difficulty 1..5"),
		field.JSON("selected", []string{}).
			Optional().
			Comment("Option IDs the learner picked"),
		field.Bool("correct").
			Comment("Whether the selection matched the answer key"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
		index.Fields("correct"),
	}
}
