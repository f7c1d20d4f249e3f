package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/pathwise/pathwise/internal/content"
	"github.com/pathwise/pathwise/internal/curriculum"
)

func beginnerContext(goals ...string) *curriculum.LearnerContext {
	return &curriculum.LearnerContext{
		LearnerID:  "learner-1",
		SkillLevel: curriculum.SkillBeginner,
		Goals:      goals,
		TimeBudget: curriculum.TimeBudget{HoursPerWeek: 5},
		Style:      curriculum.StyleMixed,
	}
}

func codeTasks(n int) []curriculum.TaskCandidate {
	var out []curriculum.TaskCandidate
	for range n {
		out = append(out, curriculum.TaskCandidate{
			Title: "drill", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 30,
		})
	}
	return out
}

func TestBuild_ContentSourceDown_FallsBackToTemplates(t *testing.T) {
	// Scenario: beginner wants "loops", generative source unavailable.
	src := &content.FakeSource{Err: errors.New("timeout")}
	b := New(src, DefaultConfig())

	cur, err := b.Build(context.Background(), beginnerContext("loops"))
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if len(cur.Modules) == 0 {
		t.Fatal("expected non-empty curriculum from templates")
	}
	if !cur.UsedFallback {
		t.Error("UsedFallback = false, want true")
	}
	if err := DefaultConfig().Invariants.Check(cur); err != nil {
		t.Errorf("invariants violated: %v", err)
	}
}

func TestBuild_InvalidContext(t *testing.T) {
	b := New(nil, DefaultConfig())
	lc := beginnerContext() // no goals
	_, err := b.Build(context.Background(), lc)
	if !errors.Is(err, curriculum.ErrInvalidLearnerContext) {
		t.Fatalf("Build() = %v, want ErrInvalidLearnerContext", err)
	}
}

func TestBuild_PartialFallback(t *testing.T) {
	// One domain served by the source, the other falls back.
	src := &content.FakeSource{ByTopic: map[string][]curriculum.ModuleCandidate{
		"go": {{Topic: "go-syntax", Title: "Go Syntax", Difficulty: 2, EstimatedHours: 3, Tasks: codeTasks(4)}},
	}}
	b := New(src, DefaultConfig())

	cur, err := b.Build(context.Background(), beginnerContext("go", "react"))
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if !cur.UsedFallback {
		t.Error("UsedFallback = false, want true (react fell back)")
	}
	if cur.ModuleForTopic("go-syntax", 0) == -1 {
		t.Error("source-provided go-syntax module missing")
	}
	if cur.ModuleForTopic("react-components", 0) == -1 {
		t.Error("template react-components module missing")
	}
}

func TestBuild_DifficultySmoothing(t *testing.T) {
	src := &content.FakeSource{ByTopic: map[string][]curriculum.ModuleCandidate{
		"go": {
			{Topic: "go-basics", Title: "Basics", Difficulty: 1, EstimatedHours: 20, Tasks: codeTasks(4)},
			{Topic: "go-hard", Title: "Hard", Difficulty: 8, EstimatedHours: 20, Prerequisites: []string{"go-basics"}, Tasks: codeTasks(4)},
		},
	}}
	b := New(src, DefaultConfig())

	cur, err := b.Build(context.Background(), beginnerContext("go"))
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if err := DefaultConfig().Invariants.Check(cur); err != nil {
		t.Errorf("invariants violated after smoothing: %v", err)
	}
	// Bridges must chain 1 → 8 in steps of at most 2.
	if len(cur.Modules) < 5 {
		t.Errorf("got %d modules, want at least 5 (bridges inserted)", len(cur.Modules))
	}
}

func TestBuild_DifficultySmoothing_Descending(t *testing.T) {
	// Non-monotonic source output: the drills module is far easier than
	// the advanced module it depends on, so prerequisite order forces a
	// steep drop that must be bridged too.
	src := &content.FakeSource{ByTopic: map[string][]curriculum.ModuleCandidate{
		"go": {
			{Topic: "go-basics", Title: "Basics", Difficulty: 1, EstimatedHours: 10, Tasks: codeTasks(4)},
			{Topic: "go-advanced", Title: "Advanced", Difficulty: 5, EstimatedHours: 10, Prerequisites: []string{"go-basics"}, Tasks: codeTasks(4)},
			{Topic: "go-drills", Title: "Drills", Difficulty: 2, EstimatedHours: 10, Prerequisites: []string{"go-advanced"}, Tasks: codeTasks(4)},
		},
	}}
	b := New(src, DefaultConfig())

	cur, err := b.Build(context.Background(), beginnerContext("go"))
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if err := DefaultConfig().Invariants.Check(cur); err != nil {
		t.Errorf("invariants violated after smoothing: %v", err)
	}

	adv := cur.ModuleForTopic("go-advanced", 0)
	drills := cur.ModuleForTopic("go-drills", 0)
	if adv == -1 || drills == -1 {
		t.Fatalf("source modules missing: advanced=%d drills=%d", adv, drills)
	}
	if drills != adv+2 {
		t.Errorf("drills at %d, want %d (one descending bridge after advanced)", drills, adv+2)
	}
	if got := cur.Modules[adv+1].Difficulty; got != 3 {
		t.Errorf("bridge difficulty = %d, want 3", got)
	}
}

func TestBuild_PracticeRatioPadded(t *testing.T) {
	theoryHeavy := []curriculum.TaskCandidate{
		{Title: "read a", Type: curriculum.TaskRead, Difficulty: 2, EstimatedMinutes: 20},
		{Title: "read b", Type: curriculum.TaskRead, Difficulty: 2, EstimatedMinutes: 20},
		{Title: "watch c", Type: curriculum.TaskWatch, Difficulty: 2, EstimatedMinutes: 20},
		{Title: "one drill", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 30},
	}
	src := &content.FakeSource{ByTopic: map[string][]curriculum.ModuleCandidate{
		"go": {{Topic: "go-theory", Title: "Theory", Difficulty: 2, EstimatedHours: 30, Tasks: theoryHeavy}},
	}}
	b := New(src, DefaultConfig())

	cur, err := b.Build(context.Background(), beginnerContext("go"))
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	i := cur.ModuleForTopic("go-theory", 0)
	if i == -1 {
		t.Fatal("go-theory module missing")
	}
	if ratio := cur.Modules[i].PracticeRatio(); ratio < 0.70 {
		t.Errorf("practice ratio = %.2f, want >= 0.70", ratio)
	}
}

func TestBuild_PrerequisiteOrder(t *testing.T) {
	src := &content.FakeSource{ByTopic: map[string][]curriculum.ModuleCandidate{
		// Delivered out of order on purpose.
		"go": {
			{Topic: "late", Title: "Late", Difficulty: 3, EstimatedHours: 15, Prerequisites: []string{"early"}, Tasks: codeTasks(4)},
			{Topic: "early", Title: "Early", Difficulty: 2, EstimatedHours: 15, Tasks: codeTasks(4)},
		},
	}}
	b := New(src, DefaultConfig())

	cur, err := b.Build(context.Background(), beginnerContext("go"))
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	early := cur.ModuleForTopic("early", 0)
	late := cur.ModuleForTopic("late", 0)
	if early == -1 || late == -1 || early > late {
		t.Errorf("prerequisite order wrong: early=%d late=%d", early, late)
	}
}

func TestBuild_OverBudgetFlagged(t *testing.T) {
	src := &content.FakeSource{ByTopic: map[string][]curriculum.ModuleCandidate{
		"go": {
			{Topic: "a", Title: "A", Difficulty: 2, EstimatedHours: 60, Tasks: codeTasks(4)},
			{Topic: "b", Title: "B", Difficulty: 3, EstimatedHours: 60, Prerequisites: []string{"a"}, Tasks: codeTasks(4)},
		},
	}}
	b := New(src, DefaultConfig())

	lc := beginnerContext("go")
	lc.TimeBudget.HoursPerWeek = 2 // 16h budget vs 120h of required modules
	cur, err := b.Build(context.Background(), lc)
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if !cur.OverBudget {
		t.Error("OverBudget = false, want true")
	}
	if len(cur.Modules) == 0 {
		t.Error("best-fit curriculum should still be returned")
	}
}

func TestBuild_OptionalTrimmedToFit(t *testing.T) {
	src := &content.FakeSource{ByTopic: map[string][]curriculum.ModuleCandidate{
		"go": {
			{Topic: "core", Title: "Core", Difficulty: 2, EstimatedHours: 40, Tasks: codeTasks(4)},
			{Topic: "extra", Title: "Extra", Difficulty: 3, EstimatedHours: 40, Optional: true, Tasks: codeTasks(4)},
		},
	}}
	b := New(src, DefaultConfig())

	lc := beginnerContext("go")
	lc.TimeBudget.HoursPerWeek = 5 // 40h budget
	cur, err := b.Build(context.Background(), lc)
	if err != nil {
		t.Fatalf("Build() = %v, want nil", err)
	}
	if cur.ModuleForTopic("extra", 0) != -1 {
		t.Error("optional module should have been trimmed")
	}
	if cur.OverBudget {
		t.Error("OverBudget = true after trimming, want false")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	build := func() *curriculum.Curriculum {
		b := New(&content.FakeSource{Err: errors.New("down")}, DefaultConfig())
		cur, err := b.Build(context.Background(), beginnerContext("loops"))
		if err != nil {
			t.Fatalf("Build() = %v", err)
		}
		return cur
	}

	a, b := build(), build()
	if len(a.Modules) != len(b.Modules) {
		t.Fatalf("module counts differ: %d vs %d", len(a.Modules), len(b.Modules))
	}
	for i := range a.Modules {
		if a.Modules[i].Topic != b.Modules[i].Topic {
			t.Errorf("module %d topic %q vs %q", i, a.Modules[i].Topic, b.Modules[i].Topic)
		}
	}
}
