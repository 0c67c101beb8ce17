package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records practice session boundaries (start/complete).
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
			Comment("UUID grouping events in a session"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill the session practiced"),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.Int("questions_served").
			Default(0).
			Comment("Total questions (on complete only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
