// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CurriculumDoc is the predicate function for curriculumdoc builders.
type CurriculumDoc func(*sql.Selector)

// DecisionEvent is the predicate function for decisionevent builders.
type DecisionEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// OutcomeEvent is the predicate function for outcomeevent builders.
type OutcomeEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
