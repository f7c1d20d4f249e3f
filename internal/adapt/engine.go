// Package adapt mutates a live curriculum in response to performance
// triggers. Every mutation works on a clone of the input document and
// produces exactly one audit decision, so callers can persist both and
// later replay the decision log to reconstruct any curriculum state.
package adapt

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/performance"
	"github.com/pathwise/pathwise/internal/templates"
)

const (
	difficultyFloor   = 1
	difficultyCeiling = 10
)

// Config tunes the adaptation engine.
type Config struct {
	// PacingStep is the fraction by which the weekly task target moves
	// on a pacing trigger.
	PacingStep float64
	// MiniProjectRun is how many consecutive compatible completed
	// modules earn a mini-project.
	MiniProjectRun int
	// RecapMinutes and StretchMinutes size injected tasks.
	RecapMinutes   int
	StretchMinutes int
}

func DefaultConfig() Config {
	return Config{
		PacingStep:     0.20,
		MiniProjectRun: 3,
		RecapMinutes:   20,
		StretchMinutes: 35,
	}
}

// Engine applies triggers to curricula.
type Engine struct {
	config Config
	now    func() time.Time
}

func NewEngine(config Config) *Engine {
	if config.PacingStep <= 0 {
		config.PacingStep = DefaultConfig().PacingStep
	}
	if config.MiniProjectRun <= 0 {
		config.MiniProjectRun = DefaultConfig().MiniProjectRun
	}
	if config.RecapMinutes <= 0 {
		config.RecapMinutes = DefaultConfig().RecapMinutes
	}
	if config.StretchMinutes <= 0 {
		config.StretchMinutes = DefaultConfig().StretchMinutes
	}
	return &Engine{config: config, now: time.Now}
}

// Apply consumes a trigger and returns the adapted curriculum plus the
// audit decision. The input document is never mutated.
func (e *Engine) Apply(c *curriculum.Curriculum, trig performance.Trigger) (*curriculum.Curriculum, Decision) {
	return e.applyAt(c, trig, e.now())
}

// Replay re-applies a recorded decision to a curriculum snapshot. Given
// the same snapshot the original Apply saw, it reproduces the same
// resulting document, injected task IDs included.
func (e *Engine) Replay(c *curriculum.Curriculum, d Decision) *curriculum.Curriculum {
	trig := performance.Trigger{Topic: d.Topic, TaskID: d.TaskID}
	switch d.Trigger {
	case performance.ConsecutiveFailure.String():
		trig.Kind = performance.ConsecutiveFailure
	case performance.ConsecutiveSuccess.String():
		trig.Kind = performance.ConsecutiveSuccess
	case performance.LowCompletionRate.String():
		trig.Kind = performance.LowCompletionRate
	case performance.HighCompletionRate.String():
		trig.Kind = performance.HighCompletionRate
	default:
		return c.Clone()
	}
	out, _ := e.applyAt(c, trig, d.AppliedAt)
	return out
}

func (e *Engine) applyAt(c *curriculum.Curriculum, trig performance.Trigger, at time.Time) (*curriculum.Curriculum, Decision) {
	out := c.Clone()
	d := newDecision(c, trig.Kind.String(), trig.Topic, trig.TaskID, at)

	switch trig.Kind {
	case performance.ConsecutiveFailure:
		e.reduceAndRecap(out, trig, &d)
	case performance.ConsecutiveSuccess:
		e.raiseAndStretch(out, trig, &d)
	case performance.LowCompletionRate:
		e.slowPacing(out, trig, &d)
	case performance.HighCompletionRate:
		e.acceleratePacing(out, trig, &d)
	}

	out.Version++
	out.UpdatedAt = at
	out.RecomputeProgress()
	return out, d
}

// reduceAndRecap lowers the struggling module's difficulty one step,
// inserts a recap task right after the failed task, and pauses
// progression until the recap is completed.
func (e *Engine) reduceAndRecap(c *curriculum.Curriculum, trig performance.Trigger, d *Decision) {
	d.Action = ActionReduceDifficulty

	idx := moduleFor(c, trig.Topic)
	if idx < 0 {
		d.Clamped = true
		return
	}
	m := &c.Modules[idx]

	if m.Difficulty > difficultyFloor {
		m.Difficulty--
	} else {
		// Already at the floor. The recap still goes in and the
		// decision records that the difficulty change was clamped.
		d.Clamped = true
		d.Action = ActionInjectRecap
	}

	recap := curriculum.Task{
		ID:               syntheticID(m.ID, "recap", trig.TaskID),
		Title:            "Recap: " + m.Topic + " fundamentals",
		Type:             curriculum.TaskQuiz,
		Status:           curriculum.TaskPending,
		Difficulty:       m.Difficulty,
		EstimatedMinutes: e.config.RecapMinutes,
		IsReview:         true,
	}
	pos := taskIndex(m, trig.TaskID) + 1
	if pos == 0 {
		pos = len(m.Tasks)
	}
	m.Tasks = insertTask(m.Tasks, pos, recap)
	c.PausedForRecap = recap.ID
}

// raiseAndStretch raises the next module on the topic one step, drops
// pending duplicate-explanation tasks, and adds one stretch task.
func (e *Engine) raiseAndStretch(c *curriculum.Curriculum, trig performance.Trigger, d *Decision) {
	d.Action = ActionIncreaseDifficulty

	cur := moduleFor(c, trig.Topic)
	if cur < 0 {
		d.Clamped = true
		return
	}
	// Prefer the learner's next encounter with the topic; fall back to
	// the current module when this is the last one covering it.
	idx := c.ModuleForTopic(trig.Topic, cur+1)
	if idx < 0 {
		idx = cur
	}
	m := &c.Modules[idx]

	if m.Difficulty < difficultyCeiling {
		m.Difficulty++
	} else {
		d.Clamped = true
		d.Action = ActionInjectStretch
	}

	removeRedundant(m)

	stretch := curriculum.Task{
		ID:               syntheticID(m.ID, "stretch", trig.TaskID),
		Title:            "Stretch: beyond " + m.Topic,
		Type:             curriculum.TaskCode,
		Status:           curriculum.TaskPending,
		Difficulty:       min(difficultyCeiling, m.Difficulty+1),
		EstimatedMinutes: e.config.StretchMinutes,
	}
	m.Tasks = append(m.Tasks, stretch)
}

// slowPacing cuts the weekly task target by the pacing step and adds
// one extra practice task to the struggling module.
func (e *Engine) slowPacing(c *curriculum.Curriculum, trig performance.Trigger, d *Decision) {
	d.Action = ActionSlowPacing

	target := int(math.Floor(float64(c.WeeklyTaskTarget) * (1 - e.config.PacingStep)))
	if target < 1 {
		target = 1
	}
	if target == c.WeeklyTaskTarget {
		d.Clamped = true
	}
	c.WeeklyTaskTarget = target

	idx := moduleFor(c, trig.Topic)
	if idx < 0 {
		return
	}
	m := &c.Modules[idx]

	title := "Extra practice: " + m.Topic
	minutes := e.config.StretchMinutes
	taskType := curriculum.TaskCode
	if cands := templates.PracticeTasks(m.Domain, m.Difficulty, 1); len(cands) > 0 {
		title = cands[0].Title
		minutes = cands[0].EstimatedMinutes
		taskType = cands[0].Type
	}
	m.Tasks = append(m.Tasks, curriculum.Task{
		ID:               syntheticID(m.ID, "extra-practice", trig.TaskID),
		Title:            title,
		Type:             taskType,
		Status:           curriculum.TaskPending,
		Difficulty:       m.Difficulty,
		EstimatedMinutes: minutes,
	})
}

// acceleratePacing raises the weekly task target by the pacing step and
// skips the topic's remaining introductory tasks. Skipped tasks keep
// their place in the module so the history stays inspectable.
func (e *Engine) acceleratePacing(c *curriculum.Curriculum, trig performance.Trigger, d *Decision) {
	d.Action = ActionAcceleratePacing

	target := int(math.Ceil(float64(c.WeeklyTaskTarget) * (1 + e.config.PacingStep)))
	if target == c.WeeklyTaskTarget {
		d.Clamped = true
	}
	c.WeeklyTaskTarget = target

	for i := range c.Modules {
		if c.Modules[i].Topic != trig.Topic {
			continue
		}
		m := &c.Modules[i]
		for j := range m.Tasks {
			t := &m.Tasks[j]
			if t.Status == curriculum.TaskPending && t.Intro {
				t.Status = curriculum.TaskSkipped
			}
		}
	}
}

// moduleFor locates the topic's module, searching from the learner's
// current position first so earlier completed modules on a repeated
// topic are not picked up.
func moduleFor(c *curriculum.Curriculum, topic string) int {
	if idx := c.ModuleForTopic(topic, c.CurrentModuleIndex); idx >= 0 {
		return idx
	}
	return c.ModuleForTopic(topic, 0)
}

// removeRedundant drops pending explanation tasks the learner no longer
// needs: repeated titles and introductory tasks past the first.
func removeRedundant(m *curriculum.Module) {
	seen := make(map[string]bool)
	introKept := false
	kept := m.Tasks[:0]
	for _, t := range m.Tasks {
		key := strings.ToLower(strings.TrimSpace(t.Title))
		redundant := false
		if t.Status == curriculum.TaskPending && !t.Type.IsPractice() {
			if seen[key] {
				redundant = true
			} else if t.Intro && introKept {
				redundant = true
			}
		}
		if redundant {
			continue
		}
		seen[key] = true
		if t.Intro && t.Status == curriculum.TaskPending {
			introKept = true
		}
		kept = append(kept, t)
	}
	m.Tasks = kept
}

func taskIndex(m *curriculum.Module, taskID string) int {
	for i := range m.Tasks {
		if m.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

func insertTask(tasks []curriculum.Task, pos int, t curriculum.Task) []curriculum.Task {
	tasks = append(tasks, curriculum.Task{})
	copy(tasks[pos+1:], tasks[pos:])
	tasks[pos] = t
	return tasks
}

// syntheticID derives a stable identifier for an injected task, so
// replaying a decision against the same snapshot regenerates the same
// task, ID included.
func syntheticID(parts ...string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(parts, "/"))).String()
}
