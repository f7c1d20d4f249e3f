package store

import (
	"context"
	"time"

	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/spacedrep"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// CurriculumRepo persists whole curriculum documents keyed by learner,
// with last-write-wins semantics.
type CurriculumRepo interface {
	// Save upserts the learner's curriculum document.
	Save(ctx context.Context, c *curriculum.Curriculum) error

	// ByLearner loads the learner's curriculum, or nil when none exists.
	ByLearner(ctx context.Context, learnerID string) (*curriculum.Curriculum, error)

	// Delete removes the learner's curriculum.
	Delete(ctx context.Context, learnerID string) error
}

// SnapshotData is the derived planning state captured per learner.
// Everything in it is rebuildable from the outcome log; the snapshot
// only saves the replay.
type SnapshotData struct {
	Version  int                     `json:"version"`
	Schedule *spacedrep.SnapshotData `json:"schedule,omitempty"`
}

// Snapshot is a point-in-time capture of one learner's derived state.
type Snapshot struct {
	ID        int
	LearnerID string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot stamped with the current sequence.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the learner's most recent snapshot, or nil if
	// none exist.
	Latest(ctx context.Context, learnerID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, learnerID string, keep int) error
}

// OutcomeEventData is one task outcome to append to the log.
type OutcomeEventData struct {
	LearnerID string
	Record    curriculum.PerformanceRecord
}

// DecisionEventData is one adaptation decision to append to the audit
// trail.
type DecisionEventData struct {
	DecisionID   string
	LearnerID    string
	CurriculumID string
	Trigger      string
	Topic        string
	TaskID       string
	Action       string
	Clamped      bool
}

// DecisionRecord is a decision read back from the audit trail.
type DecisionRecord struct {
	Sequence  int64
	Timestamp time.Time
	DecisionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Prompt       string
}

// LLMRequestRecord is an LLM request event read back from the log.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events. All
// event types share one global sequence.
type EventRepo interface {
	// AppendOutcome records a task outcome.
	AppendOutcome(ctx context.Context, data OutcomeEventData) error

	// Outcomes returns the learner's outcomes in append order.
	Outcomes(ctx context.Context, learnerID string, opts QueryOpts) ([]curriculum.PerformanceRecord, error)

	// AppendDecision records an adaptation decision.
	AppendDecision(ctx context.Context, data DecisionEventData) error

	// Decisions returns the learner's decisions in append order.
	Decisions(ctx context.Context, learnerID string, opts QueryOpts) ([]DecisionRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMRequests returns recent LLM call events, newest first.
	LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
}
