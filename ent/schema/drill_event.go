package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillEvent records one answered cluster drill.
type DrillEvent struct {
	ent.Schema
}

func (DrillEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DrillEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("cluster_id").
			NotEmpty().
			Comment("Word cluster the drill belongs to"),
		field.String("drill_id").
			NotEmpty().
			Comment("Drill within the cluster"),
		field.String("drill_type").
			NotEmpty().
			Comment("shade_distinction, intensity_ordering, ..."),
		field.Bool("correct").
			Comment("Whether the selection matched the answer key"),
		field.JSON("words", []string{}).
			Optional().
			Comment("Cluster words the drill exercised"),
	}
}

func (DrillEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cluster_id"),
		index.Fields("correct"),
	}
}
