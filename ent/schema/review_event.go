package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one flashcard grading and the scheduling result.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			NotEmpty().
			Comment("Flashcard the grade applies to"),
		field.String("grade").
			NotEmpty().
			Comment("fail, hard, or easy"),
		field.Int("interval_minutes").
			Comment("Interval produced by the grade"),
		field.Float("ease_factor").
			Comment("Ease after the update"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("grade"),
	}
}
