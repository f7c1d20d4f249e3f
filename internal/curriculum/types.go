package curriculum

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a curriculum.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusArchived  Status = "archived"
)

// TaskType classifies what the learner does in a task.
type TaskType string

const (
	TaskRead  TaskType = "read"
	TaskWatch TaskType = "watch"
	TaskCode  TaskType = "code"
	TaskQuiz  TaskType = "quiz"
)

// IsPractice reports whether the task type counts toward the
// practice ratio (hands-on work, not passive consumption).
func (t TaskType) IsPractice() bool {
	return t == TaskCode || t == TaskQuiz
}

// TaskStatus is the lifecycle state of a single task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskSkipped    TaskStatus = "skipped"
	TaskAdapted    TaskStatus = "adapted"
)

// Task is a single unit of learner work within a module.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Type             TaskType   `json:"type"`
	Status           TaskStatus `json:"status"`
	Difficulty       int        `json:"difficulty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	IsReview         bool       `json:"is_review,omitempty"`
	IsMiniProject    bool       `json:"is_mini_project,omitempty"`
	Intro            bool       `json:"intro,omitempty"`
}

// Module is an ordered sequence of tasks on a single topic.
type Module struct {
	ID             string   `json:"id"`
	Topic          string   `json:"topic"`
	Domain         string   `json:"domain"`
	Title          string   `json:"title"`
	Difficulty     int      `json:"difficulty"`
	EstimatedHours float64  `json:"estimated_hours"`
	Prerequisites  []string `json:"prerequisites,omitempty"`
	Optional       bool     `json:"optional,omitempty"`
	Tasks          []Task   `json:"tasks"`
}

// PracticeRatio returns the fraction of tasks in the module that are
// practice-type (code or quiz). Returns 0 for an empty module.
func (m *Module) PracticeRatio() float64 {
	if len(m.Tasks) == 0 {
		return 0
	}
	practice := 0
	for _, t := range m.Tasks {
		if t.Type.IsPractice() {
			practice++
		}
	}
	return float64(practice) / float64(len(m.Tasks))
}

// Completed reports whether every non-skipped task in the module is done.
func (m *Module) Completed() bool {
	if len(m.Tasks) == 0 {
		return false
	}
	for _, t := range m.Tasks {
		if t.Status != TaskCompleted && t.Status != TaskSkipped {
			return false
		}
	}
	return true
}

// Curriculum is the versioned planning document the engine produces and
// adapts. It is passed by value between calls; callers own persistence
// and concurrency control.
type Curriculum struct {
	ID                 string    `json:"id"`
	LearnerID          string    `json:"learner_id"`
	Status             Status    `json:"status"`
	Modules            []Module  `json:"modules"`
	CurrentModuleIndex int       `json:"current_module_index"`
	OverallProgress    float64   `json:"overall_progress"`
	Version            int64     `json:"version"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// UsedFallback is set when any module came from the template
	// library instead of the content source.
	UsedFallback bool `json:"used_fallback,omitempty"`

	// OverBudget is set when the curriculum could not be fitted to the
	// learner's time budget even after trimming optional modules.
	OverBudget bool `json:"over_budget,omitempty"`

	// WeeklyTaskTarget is the pacing target adjusted by the adaptation
	// engine. Zero means the builder default was never adjusted.
	WeeklyTaskTarget int `json:"weekly_task_target,omitempty"`

	// PausedForRecap holds the ID of a recap task that must be completed
	// before progression to the next module resumes.
	PausedForRecap string `json:"paused_for_recap,omitempty"`
}

// TotalHours sums the estimated hours across all modules.
func (c *Curriculum) TotalHours() float64 {
	var total float64
	for i := range c.Modules {
		total += c.Modules[i].EstimatedHours
	}
	return total
}

// ModuleForTopic returns the first module at or after index from whose
// topic matches, or -1 if none.
func (c *Curriculum) ModuleForTopic(topic string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(c.Modules); i++ {
		if c.Modules[i].Topic == topic {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy. Adaptation works on a clone so the caller's
// snapshot is never mutated in place.
func (c *Curriculum) Clone() *Curriculum {
	out := *c
	out.Modules = make([]Module, len(c.Modules))
	for i, m := range c.Modules {
		cm := m
		cm.Prerequisites = append([]string(nil), m.Prerequisites...)
		cm.Tasks = append([]Task(nil), m.Tasks...)
		out.Modules[i] = cm
	}
	return &out
}

// RecomputeProgress recalculates OverallProgress from task statuses.
func (c *Curriculum) RecomputeProgress() {
	total, done := 0, 0
	for i := range c.Modules {
		for _, t := range c.Modules[i].Tasks {
			total++
			if t.Status == TaskCompleted || t.Status == TaskSkipped {
				done++
			}
		}
	}
	if total == 0 {
		c.OverallProgress = 0
		return
	}
	c.OverallProgress = float64(done) / float64(total)
}

// NewID returns a fresh entity identifier.
func NewID() string {
	return uuid.NewString()
}

// PerformanceRecord is one observed task outcome, produced by the
// external evaluation collaborator. Append-only.
type PerformanceRecord struct {
	Topic            string    `json:"topic"`
	TaskID           string    `json:"task_id"`
	Passed           bool      `json:"passed"`
	Score            float64   `json:"score"`
	TimeSpentMinutes int       `json:"time_spent_minutes"`
	Timestamp        time.Time `json:"timestamp"`
}

// ModuleCandidate is the raw module/task material returned by a content
// source or the template library, before the builder orders, pads, and
// fits it into a curriculum.
type ModuleCandidate struct {
	Topic          string          `json:"topic"`
	Title          string          `json:"title"`
	Difficulty     int             `json:"difficulty"`
	EstimatedHours float64         `json:"estimated_hours"`
	Prerequisites  []string        `json:"prerequisites,omitempty"`
	Optional       bool            `json:"optional,omitempty"`
	Tasks          []TaskCandidate `json:"tasks"`
}

// TaskCandidate is a task inside a ModuleCandidate.
type TaskCandidate struct {
	Title            string   `json:"title"`
	Type             TaskType `json:"type"`
	Difficulty       int      `json:"difficulty"`
	EstimatedMinutes int      `json:"estimated_minutes"`
}
