package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionEvent is the audit trail of adaptation decisions. One row
// per applied trigger, clamped no-ops included.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("decision_id").NotEmpty().Unique(),
		field.String("learner_id").NotEmpty(),
		field.String("curriculum_id").NotEmpty(),
		field.String("trigger").
			Comment("consecutive_failure, consecutive_success, low_rate, high_rate"),
		field.String("topic").NotEmpty(),
		field.String("task_id").Default(""),
		field.String("action").
			Comment("What the engine did: reduce_difficulty, inject_recap, slow_pacing, ..."),
		field.Bool("clamped").
			Default(false).
			Comment("True when the attempted change hit a floor or ceiling"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("trigger"),
	}
}
