package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CurriculumDoc stores the whole curriculum document for a learner.
// The engine works on the document in memory and writes it back after
// every build or adaptation; last write wins.
type CurriculumDoc struct {
	ent.Schema
}

func (CurriculumDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Comment("Owning learner; one active curriculum per learner"),
		field.String("curriculum_id").
			NotEmpty().
			Comment("Stable document identifier across versions"),
		field.Int64("version").
			Default(0).
			Comment("Document version, incremented on every mutation"),
		field.JSON("data", map[string]any{}).
			Comment("Full curriculum document as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (CurriculumDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
