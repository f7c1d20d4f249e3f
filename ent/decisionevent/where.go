// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pathwise/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// DecisionID applies equality check predicate on the "decision_id" field. It's identical to DecisionIDEQ.
func DecisionID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDecisionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldLearnerID, v))
}

// CurriculumID applies equality check predicate on the "curriculum_id" field. It's identical to CurriculumIDEQ.
func CurriculumID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldCurriculumID, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTrigger, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTopic, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTaskID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldAction, v))
}

// Clamped applies equality check predicate on the "clamped" field. It's identical to ClampedEQ.
func Clamped(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldClamped, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DecisionIDEQ applies the EQ predicate on the "decision_id" field.
func DecisionIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDecisionID, v))
}

// DecisionIDNEQ applies the NEQ predicate on the "decision_id" field.
func DecisionIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldDecisionID, v))
}

// DecisionIDIn applies the In predicate on the "decision_id" field.
func DecisionIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldDecisionID, vs...))
}

// DecisionIDNotIn applies the NotIn predicate on the "decision_id" field.
func DecisionIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldDecisionID, vs...))
}

// DecisionIDGT applies the GT predicate on the "decision_id" field.
func DecisionIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldDecisionID, v))
}

// DecisionIDGTE applies the GTE predicate on the "decision_id" field.
func DecisionIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldDecisionID, v))
}

// DecisionIDLT applies the LT predicate on the "decision_id" field.
func DecisionIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldDecisionID, v))
}

// DecisionIDLTE applies the LTE predicate on the "decision_id" field.
func DecisionIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldDecisionID, v))
}

// DecisionIDContains applies the Contains predicate on the "decision_id" field.
func DecisionIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldDecisionID, v))
}

// DecisionIDHasPrefix applies the HasPrefix predicate on the "decision_id" field.
func DecisionIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldDecisionID, v))
}

// DecisionIDHasSuffix applies the HasSuffix predicate on the "decision_id" field.
func DecisionIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldDecisionID, v))
}

// DecisionIDEqualFold applies the EqualFold predicate on the "decision_id" field.
func DecisionIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldDecisionID, v))
}

// DecisionIDContainsFold applies the ContainsFold predicate on the "decision_id" field.
func DecisionIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldDecisionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// CurriculumIDEQ applies the EQ predicate on the "curriculum_id" field.
func CurriculumIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldCurriculumID, v))
}

// CurriculumIDNEQ applies the NEQ predicate on the "curriculum_id" field.
func CurriculumIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldCurriculumID, v))
}

// CurriculumIDIn applies the In predicate on the "curriculum_id" field.
func CurriculumIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldCurriculumID, vs...))
}

// CurriculumIDNotIn applies the NotIn predicate on the "curriculum_id" field.
func CurriculumIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldCurriculumID, vs...))
}

// CurriculumIDGT applies the GT predicate on the "curriculum_id" field.
func CurriculumIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldCurriculumID, v))
}

// CurriculumIDGTE applies the GTE predicate on the "curriculum_id" field.
func CurriculumIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldCurriculumID, v))
}

// CurriculumIDLT applies the LT predicate on the "curriculum_id" field.
func CurriculumIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldCurriculumID, v))
}

// CurriculumIDLTE applies the LTE predicate on the "curriculum_id" field.
func CurriculumIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldCurriculumID, v))
}

// CurriculumIDContains applies the Contains predicate on the "curriculum_id" field.
func CurriculumIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldCurriculumID, v))
}

// CurriculumIDHasPrefix applies the HasPrefix predicate on the "curriculum_id" field.
func CurriculumIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldCurriculumID, v))
}

// CurriculumIDHasSuffix applies the HasSuffix predicate on the "curriculum_id" field.
func CurriculumIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldCurriculumID, v))
}

// CurriculumIDEqualFold applies the EqualFold predicate on the "curriculum_id" field.
func CurriculumIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldCurriculumID, v))
}

// CurriculumIDContainsFold applies the ContainsFold predicate on the "curriculum_id" field.
func CurriculumIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldCurriculumID, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldTopic, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldTaskID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldAction, v))
}

// ClampedEQ applies the EQ predicate on the "clamped" field.
func ClampedEQ(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldClamped, v))
}

// ClampedNEQ applies the NEQ predicate on the "clamped" field.
func ClampedNEQ(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldClamped, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.NotPredicates(p))
}
