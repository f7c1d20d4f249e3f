package adapt

import (
	"encoding/json"
	"testing"

	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/performance"
)

func testCurriculum() *curriculum.Curriculum {
	return &curriculum.Curriculum{
		ID:                 "cur-1",
		LearnerID:          "learner-1",
		Status:             curriculum.StatusActive,
		CurrentModuleIndex: 0,
		WeeklyTaskTarget:   10,
		Modules: []curriculum.Module{
			{
				ID:         "mod-recursion",
				Topic:      "recursion",
				Domain:     "algorithms",
				Difficulty: 5,
				Tasks: []curriculum.Task{
					{ID: "t1", Title: "What recursion is", Type: curriculum.TaskRead, Status: curriculum.TaskCompleted, Intro: true},
					{ID: "t2", Title: "Write a factorial function", Type: curriculum.TaskCode, Status: curriculum.TaskPending},
					{ID: "t3", Title: "Recursion quiz", Type: curriculum.TaskQuiz, Status: curriculum.TaskPending},
				},
			},
			{
				ID:            "mod-trees",
				Topic:         "recursion",
				Domain:        "algorithms",
				Difficulty:    6,
				Prerequisites: []string{"recursion"},
				Tasks: []curriculum.Task{
					{ID: "t4", Title: "Tree traversal intro", Type: curriculum.TaskRead, Status: curriculum.TaskPending, Intro: true},
					{ID: "t5", Title: "Tree traversal intro", Type: curriculum.TaskWatch, Status: curriculum.TaskPending, Intro: true},
					{ID: "t6", Title: "Implement DFS", Type: curriculum.TaskCode, Status: curriculum.TaskPending},
				},
			},
		},
	}
}

func failTrigger(taskID string) performance.Trigger {
	return performance.Trigger{Kind: performance.ConsecutiveFailure, Topic: "recursion", TaskID: taskID}
}

func TestApply_ConsecutiveFailure(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testCurriculum()

	out, d := e.Apply(in, failTrigger("t2"))

	if in.Modules[0].Difficulty != 5 {
		t.Error("Apply mutated the input document")
	}
	m := out.Modules[0]
	if m.Difficulty != 4 {
		t.Errorf("Difficulty = %d, want 4", m.Difficulty)
	}
	if len(m.Tasks) != 4 {
		t.Fatalf("len(Tasks) = %d, want 4", len(m.Tasks))
	}
	recap := m.Tasks[2]
	if !recap.IsReview || recap.Status != curriculum.TaskPending {
		t.Errorf("task after t2 = %+v, want pending review recap", recap)
	}
	if out.PausedForRecap != recap.ID {
		t.Errorf("PausedForRecap = %q, want %q", out.PausedForRecap, recap.ID)
	}
	if d.Action != ActionReduceDifficulty || d.Clamped {
		t.Errorf("decision = %+v, want unclamped %s", d, ActionReduceDifficulty)
	}
	if out.Version != in.Version+1 {
		t.Errorf("Version = %d, want %d", out.Version, in.Version+1)
	}
}

func TestApply_ConsecutiveFailureAtFloor(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testCurriculum()
	in.Modules[0].Difficulty = 1

	out, d := e.Apply(in, failTrigger("t2"))

	if out.Modules[0].Difficulty != 1 {
		t.Errorf("Difficulty = %d, want 1 (floor)", out.Modules[0].Difficulty)
	}
	if !d.Clamped {
		t.Error("decision not marked clamped at the difficulty floor")
	}
	if len(out.Modules[0].Tasks) != 4 {
		t.Error("recap still expected when difficulty is clamped")
	}
}

func TestApply_ConsecutiveSuccess(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testCurriculum()
	trig := performance.Trigger{Kind: performance.ConsecutiveSuccess, Topic: "recursion", TaskID: "t3"}

	out, d := e.Apply(in, trig)

	// The next module on the topic is raised, not the current one.
	if out.Modules[0].Difficulty != 5 {
		t.Errorf("current module Difficulty = %d, want untouched 5", out.Modules[0].Difficulty)
	}
	m := out.Modules[1]
	if m.Difficulty != 7 {
		t.Errorf("next module Difficulty = %d, want 7", m.Difficulty)
	}

	// The duplicate pending intro (t5) is removed, and one stretch
	// task is appended.
	var ids []string
	for _, task := range m.Tasks {
		ids = append(ids, task.ID)
	}
	if len(m.Tasks) != 3 {
		t.Fatalf("tasks = %v, want t4, t6 and a stretch task", ids)
	}
	if m.Tasks[0].ID != "t4" || m.Tasks[1].ID != "t6" {
		t.Errorf("tasks = %v, want duplicate t5 removed", ids)
	}
	stretch := m.Tasks[2]
	if stretch.Type != curriculum.TaskCode || stretch.Difficulty != 8 {
		t.Errorf("stretch task = %+v, want code at difficulty 8", stretch)
	}
	if d.Action != ActionIncreaseDifficulty {
		t.Errorf("Action = %s, want %s", d.Action, ActionIncreaseDifficulty)
	}
}

func TestApply_LowRateSlowsPacing(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testCurriculum()
	trig := performance.Trigger{Kind: performance.LowCompletionRate, Topic: "recursion", TaskID: "t3", Rate: 0.5}

	out, d := e.Apply(in, trig)

	if out.WeeklyTaskTarget != 8 {
		t.Errorf("WeeklyTaskTarget = %d, want 8 (10 slowed by 20%%)", out.WeeklyTaskTarget)
	}
	m := out.Modules[0]
	if len(m.Tasks) != 4 {
		t.Fatalf("len(Tasks) = %d, want 4 with an extra practice task", len(m.Tasks))
	}
	extra := m.Tasks[3]
	if !extra.Type.IsPractice() || extra.Status != curriculum.TaskPending {
		t.Errorf("extra task = %+v, want pending practice", extra)
	}
	if d.Action != ActionSlowPacing {
		t.Errorf("Action = %s, want %s", d.Action, ActionSlowPacing)
	}
}

func TestApply_HighRateAcceleratesAndSkipsIntros(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testCurriculum()
	trig := performance.Trigger{Kind: performance.HighCompletionRate, Topic: "recursion", TaskID: "t3", Rate: 0.95}

	out, d := e.Apply(in, trig)

	if out.WeeklyTaskTarget != 12 {
		t.Errorf("WeeklyTaskTarget = %d, want 12", out.WeeklyTaskTarget)
	}
	// Pending intros across the topic's modules are skipped, never
	// deleted; the completed intro t1 is untouched.
	if got := out.Modules[0].Tasks[0].Status; got != curriculum.TaskCompleted {
		t.Errorf("t1 status = %s, want completed (history preserved)", got)
	}
	for _, id := range []string{"t4", "t5"} {
		task := findTask(t, out, id)
		if task.Status != curriculum.TaskSkipped {
			t.Errorf("%s status = %s, want skipped", id, task.Status)
		}
	}
	if n := len(out.Modules[1].Tasks); n != 3 {
		t.Errorf("len(Tasks) = %d, want 3 (skip marks, no deletions)", n)
	}
	if d.Action != ActionAcceleratePacing {
		t.Errorf("Action = %s, want %s", d.Action, ActionAcceleratePacing)
	}
}

func TestApply_PacingFloor(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testCurriculum()
	in.WeeklyTaskTarget = 1
	trig := performance.Trigger{Kind: performance.LowCompletionRate, Topic: "recursion", TaskID: "t3"}

	out, d := e.Apply(in, trig)
	if out.WeeklyTaskTarget != 1 {
		t.Errorf("WeeklyTaskTarget = %d, want floor 1", out.WeeklyTaskTarget)
	}
	if !d.Clamped {
		t.Error("decision not marked clamped at the pacing floor")
	}
}

func TestReplay_ReproducesApply(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testCurriculum()

	for _, trig := range []performance.Trigger{
		failTrigger("t2"),
		{Kind: performance.ConsecutiveSuccess, Topic: "recursion", TaskID: "t3"},
		{Kind: performance.LowCompletionRate, Topic: "recursion", TaskID: "t3"},
		{Kind: performance.HighCompletionRate, Topic: "recursion", TaskID: "t3"},
	} {
		applied, d := e.Apply(in, trig)
		replayed := e.Replay(in, d)

		a, _ := json.Marshal(applied)
		b, _ := json.Marshal(replayed)
		if string(a) != string(b) {
			t.Errorf("%s: replay diverged from apply\napply:  %s\nreplay: %s", trig.Kind, a, b)
		}
	}
}

func TestInjectMiniProject(t *testing.T) {
	e := NewEngine(DefaultConfig())
	c := runOfCompleted(3, "go")

	out, ok := e.InjectMiniProject(c)
	if !ok {
		t.Fatal("InjectMiniProject = false, want injection after 3 completed modules")
	}
	first := out.Modules[3].Tasks[0]
	if !first.IsMiniProject {
		t.Errorf("first task of module 4 = %+v, want mini-project", first)
	}
	if first.Status != curriculum.TaskPending || first.Type != curriculum.TaskCode {
		t.Errorf("mini-project = %+v, want pending code task", first)
	}

	// Re-running must not stack a second project.
	again, ok := e.InjectMiniProject(out)
	if ok {
		t.Error("second InjectMiniProject = true, want idempotent false")
	}
	if len(again.Modules[3].Tasks) != len(out.Modules[3].Tasks) {
		t.Error("second call changed the task list")
	}
}

func TestInjectMiniProject_TooFewModules(t *testing.T) {
	e := NewEngine(DefaultConfig())
	c := runOfCompleted(2, "go")

	if _, ok := e.InjectMiniProject(c); ok {
		t.Error("InjectMiniProject = true with only 2 completed modules")
	}
}

func TestInjectMiniProject_IncompatibleDomains(t *testing.T) {
	e := NewEngine(DefaultConfig())
	c := runOfCompleted(3, "go")
	c.Modules[1].Domain = "sql"

	if _, ok := e.InjectMiniProject(c); ok {
		t.Error("InjectMiniProject = true across unrelated domains with no prerequisite links")
	}
}

func TestInjectMiniProject_PrerequisiteLinkedRun(t *testing.T) {
	e := NewEngine(DefaultConfig())
	c := runOfCompleted(3, "go")
	c.Modules[1].Domain = "sql"
	c.Modules[1].Prerequisites = []string{c.Modules[0].Topic}
	c.Modules[2].Prerequisites = []string{c.Modules[1].Topic}

	if _, ok := e.InjectMiniProject(c); !ok {
		t.Error("InjectMiniProject = false for a prerequisite-linked run")
	}
}

func runOfCompleted(n int, domain string) *curriculum.Curriculum {
	c := &curriculum.Curriculum{ID: "cur-2", LearnerID: "learner-2", Status: curriculum.StatusActive}
	topics := []string{"basics", "structs", "interfaces", "generics"}
	for i := 0; i <= n; i++ {
		status := curriculum.TaskCompleted
		if i == n {
			status = curriculum.TaskPending
		}
		c.Modules = append(c.Modules, curriculum.Module{
			ID:         "mod-" + topics[i],
			Topic:      topics[i],
			Domain:     domain,
			Difficulty: 3 + i,
			Tasks: []curriculum.Task{
				{ID: curriculum.NewID(), Title: "Exercises: " + topics[i], Type: curriculum.TaskCode, Status: status},
			},
		})
	}
	c.CurrentModuleIndex = n
	return c
}

func findTask(t *testing.T, c *curriculum.Curriculum, id string) curriculum.Task {
	t.Helper()
	for i := range c.Modules {
		for _, task := range c.Modules[i].Tasks {
			if task.ID == id {
				return task
			}
		}
	}
	t.Fatalf("task %s not found", id)
	return curriculum.Task{}
}
