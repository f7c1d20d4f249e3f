// Code generated by ent, DO NOT EDIT.

package outcomeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pathwise/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTopic, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTaskID, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldPassed, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldScore, v))
}

// TimeSpentMinutes applies equality check predicate on the "time_spent_minutes" field. It's identical to TimeSpentMinutesEQ.
func TimeSpentMinutes(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldTopic, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldTaskID, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldPassed, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldScore, v))
}

// TimeSpentMinutesEQ applies the EQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesEQ(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesNEQ applies the NEQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNEQ(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesIn applies the In predicate on the "time_spent_minutes" field.
func TimeSpentMinutesIn(vs ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesNotIn applies the NotIn predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNotIn(vs ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesGT applies the GT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGT(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesGTE applies the GTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGTE(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLT applies the LT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLT(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLTE applies the LTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLTE(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldTimeSpentMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.NotPredicates(p))
}
