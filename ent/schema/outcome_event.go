package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutcomeEvent records one observed task outcome. The log is append
// only; rolling stats and review schedules are rebuilt from it.
type OutcomeEvent struct {
	ent.Schema
}

func (OutcomeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OutcomeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("task_id").NotEmpty(),
		field.Bool("passed"),
		field.Float("score").Default(0),
		field.Int("time_spent_minutes").Default(0),
	}
}

func (OutcomeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("topic"),
	}
}
