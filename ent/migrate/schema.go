// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CurriculumDocsColumns holds the columns for the "curriculum_docs" table.
	CurriculumDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "curriculum_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CurriculumDocsTable holds the schema information for the "curriculum_docs" table.
	CurriculumDocsTable = &schema.Table{
		Name:       "curriculum_docs",
		Columns:    CurriculumDocsColumns,
		PrimaryKey: []*schema.Column{CurriculumDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "curriculumdoc_learner_id",
				Unique:  false,
				Columns: []*schema.Column{CurriculumDocsColumns[1]},
			},
		},
	}
	// DecisionEventsColumns holds the columns for the "decision_events" table.
	DecisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "curriculum_id", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "clamped", Type: field.TypeBool, Default: false},
	}
	// DecisionEventsTable holds the schema information for the "decision_events" table.
	DecisionEventsTable = &schema.Table{
		Name:       "decision_events",
		Columns:    DecisionEventsColumns,
		PrimaryKey: []*schema.Column{DecisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[1]},
			},
			{
				Name:    "decisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[2]},
			},
			{
				Name:    "decisionevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[4]},
			},
			{
				Name:    "decisionevent_trigger",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// OutcomeEventsColumns holds the columns for the "outcome_events" table.
	OutcomeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "time_spent_minutes", Type: field.TypeInt, Default: 0},
	}
	// OutcomeEventsTable holds the schema information for the "outcome_events" table.
	OutcomeEventsTable = &schema.Table{
		Name:       "outcome_events",
		Columns:    OutcomeEventsColumns,
		PrimaryKey: []*schema.Column{OutcomeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outcomeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[1]},
			},
			{
				Name:    "outcomeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[2]},
			},
			{
				Name:    "outcomeevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[3]},
			},
			{
				Name:    "outcomeevent_topic",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CurriculumDocsTable,
		DecisionEventsTable,
		LlmRequestEventsTable,
		OutcomeEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
