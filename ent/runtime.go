// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pathwise/pathwise/ent/curriculumdoc"
	"github.com/pathwise/pathwise/ent/decisionevent"
	"github.com/pathwise/pathwise/ent/llmrequestevent"
	"github.com/pathwise/pathwise/ent/outcomeevent"
	"github.com/pathwise/pathwise/ent/schema"
	"github.com/pathwise/pathwise/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	curriculumdocFields := schema.CurriculumDoc{}.Fields()
	_ = curriculumdocFields
	// curriculumdocDescLearnerID is the schema descriptor for learner_id field.
	curriculumdocDescLearnerID := curriculumdocFields[0].Descriptor()
	// curriculumdoc.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	curriculumdoc.LearnerIDValidator = curriculumdocDescLearnerID.Validators[0].(func(string) error)
	// curriculumdocDescCurriculumID is the schema descriptor for curriculum_id field.
	curriculumdocDescCurriculumID := curriculumdocFields[1].Descriptor()
	// curriculumdoc.CurriculumIDValidator is a validator for the "curriculum_id" field. It is called by the builders before save.
	curriculumdoc.CurriculumIDValidator = curriculumdocDescCurriculumID.Validators[0].(func(string) error)
	// curriculumdocDescVersion is the schema descriptor for version field.
	curriculumdocDescVersion := curriculumdocFields[2].Descriptor()
	// curriculumdoc.DefaultVersion holds the default value on creation for the version field.
	curriculumdoc.DefaultVersion = curriculumdocDescVersion.Default.(int64)
	// curriculumdocDescUpdatedAt is the schema descriptor for updated_at field.
	curriculumdocDescUpdatedAt := curriculumdocFields[4].Descriptor()
	// curriculumdoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	curriculumdoc.DefaultUpdatedAt = curriculumdocDescUpdatedAt.Default.(func() time.Time)
	// curriculumdoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	curriculumdoc.UpdateDefaultUpdatedAt = curriculumdocDescUpdatedAt.UpdateDefault.(func() time.Time)
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	// decisioneventDescDecisionID is the schema descriptor for decision_id field.
	decisioneventDescDecisionID := decisioneventFields[0].Descriptor()
	// decisionevent.DecisionIDValidator is a validator for the "decision_id" field. It is called by the builders before save.
	decisionevent.DecisionIDValidator = decisioneventDescDecisionID.Validators[0].(func(string) error)
	// decisioneventDescLearnerID is the schema descriptor for learner_id field.
	decisioneventDescLearnerID := decisioneventFields[1].Descriptor()
	// decisionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	decisionevent.LearnerIDValidator = decisioneventDescLearnerID.Validators[0].(func(string) error)
	// decisioneventDescCurriculumID is the schema descriptor for curriculum_id field.
	decisioneventDescCurriculumID := decisioneventFields[2].Descriptor()
	// decisionevent.CurriculumIDValidator is a validator for the "curriculum_id" field. It is called by the builders before save.
	decisionevent.CurriculumIDValidator = decisioneventDescCurriculumID.Validators[0].(func(string) error)
	// decisioneventDescTopic is the schema descriptor for topic field.
	decisioneventDescTopic := decisioneventFields[4].Descriptor()
	// decisionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	decisionevent.TopicValidator = decisioneventDescTopic.Validators[0].(func(string) error)
	// decisioneventDescTaskID is the schema descriptor for task_id field.
	decisioneventDescTaskID := decisioneventFields[5].Descriptor()
	// decisionevent.DefaultTaskID holds the default value on creation for the task_id field.
	decisionevent.DefaultTaskID = decisioneventDescTaskID.Default.(string)
	// decisioneventDescClamped is the schema descriptor for clamped field.
	decisioneventDescClamped := decisioneventFields[7].Descriptor()
	// decisionevent.DefaultClamped holds the default value on creation for the clamped field.
	decisionevent.DefaultClamped = decisioneventDescClamped.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescPrompt is the schema descriptor for prompt field.
	llmrequesteventDescPrompt := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultPrompt holds the default value on creation for the prompt field.
	llmrequestevent.DefaultPrompt = llmrequesteventDescPrompt.Default.(string)
	outcomeeventMixin := schema.OutcomeEvent{}.Mixin()
	outcomeeventMixinFields0 := outcomeeventMixin[0].Fields()
	_ = outcomeeventMixinFields0
	outcomeeventFields := schema.OutcomeEvent{}.Fields()
	_ = outcomeeventFields
	// outcomeeventDescTimestamp is the schema descriptor for timestamp field.
	outcomeeventDescTimestamp := outcomeeventMixinFields0[1].Descriptor()
	// outcomeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	outcomeevent.DefaultTimestamp = outcomeeventDescTimestamp.Default.(func() time.Time)
	// outcomeeventDescLearnerID is the schema descriptor for learner_id field.
	outcomeeventDescLearnerID := outcomeeventFields[0].Descriptor()
	// outcomeevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	outcomeevent.LearnerIDValidator = outcomeeventDescLearnerID.Validators[0].(func(string) error)
	// outcomeeventDescTopic is the schema descriptor for topic field.
	outcomeeventDescTopic := outcomeeventFields[1].Descriptor()
	// outcomeevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	outcomeevent.TopicValidator = outcomeeventDescTopic.Validators[0].(func(string) error)
	// outcomeeventDescTaskID is the schema descriptor for task_id field.
	outcomeeventDescTaskID := outcomeeventFields[2].Descriptor()
	// outcomeevent.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	outcomeevent.TaskIDValidator = outcomeeventDescTaskID.Validators[0].(func(string) error)
	// outcomeeventDescScore is the schema descriptor for score field.
	outcomeeventDescScore := outcomeeventFields[4].Descriptor()
	// outcomeevent.DefaultScore holds the default value on creation for the score field.
	outcomeevent.DefaultScore = outcomeeventDescScore.Default.(float64)
	// outcomeeventDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	outcomeeventDescTimeSpentMinutes := outcomeeventFields[5].Descriptor()
	// outcomeevent.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	outcomeevent.DefaultTimeSpentMinutes = outcomeeventDescTimeSpentMinutes.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescLearnerID is the schema descriptor for learner_id field.
	snapshotDescLearnerID := snapshotFields[0].Descriptor()
	// snapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	snapshot.LearnerIDValidator = snapshotDescLearnerID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
