package adapt

import (
	"time"

	"github.com/pathwise/pathwise/internal/curriculum"
)

// Action names what the engine did in response to a trigger.
type Action string

const (
	ActionReduceDifficulty   Action = "reduce_difficulty"
	ActionIncreaseDifficulty Action = "increase_difficulty"
	ActionInjectRecap        Action = "inject_recap"
	ActionInjectStretch      Action = "inject_stretch"
	ActionSlowPacing         Action = "slow_pacing"
	ActionAcceleratePacing   Action = "accelerate_pacing"
)

// Decision is the immutable audit record of one adaptation event. One
// is produced per Apply call even when the net curriculum change was
// clamped to a no-op; Clamped records that case. A decision carries
// everything Replay needs to reproduce the same curriculum mutation.
type Decision struct {
	ID           string    `json:"id"`
	CurriculumID string    `json:"curriculum_id"`
	Trigger      string    `json:"trigger"`
	Topic        string    `json:"topic"`
	TaskID       string    `json:"task_id,omitempty"`
	Action       Action    `json:"action"`
	Clamped      bool      `json:"clamped,omitempty"`
	AppliedAt    time.Time `json:"applied_at"`
}

func newDecision(c *curriculum.Curriculum, trigger, topic, taskID string, at time.Time) Decision {
	return Decision{
		ID:           curriculum.NewID(),
		CurriculumID: c.ID,
		Trigger:      trigger,
		Topic:        topic,
		TaskID:       taskID,
		AppliedAt:    at,
	}
}
