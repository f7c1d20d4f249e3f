package curriculum

import "testing"

func practiceModule(topic string, difficulty int, prereqs ...string) Module {
	return Module{
		ID:            NewID(),
		Topic:         topic,
		Title:         topic,
		Difficulty:    difficulty,
		Prerequisites: prereqs,
		Tasks: []Task{
			{ID: NewID(), Type: TaskRead, Status: TaskPending, EstimatedMinutes: 15},
			{ID: NewID(), Type: TaskCode, Status: TaskPending, EstimatedMinutes: 30},
			{ID: NewID(), Type: TaskCode, Status: TaskPending, EstimatedMinutes: 30},
			{ID: NewID(), Type: TaskQuiz, Status: TaskPending, EstimatedMinutes: 15},
			{ID: NewID(), Type: TaskQuiz, Status: TaskPending, EstimatedMinutes: 15},
			{ID: NewID(), Type: TaskCode, Status: TaskPending, EstimatedMinutes: 30},
			{ID: NewID(), Type: TaskCode, Status: TaskPending, EstimatedMinutes: 30},
			{ID: NewID(), Type: TaskWatch, Status: TaskPending, EstimatedMinutes: 10},
			{ID: NewID(), Type: TaskCode, Status: TaskPending, EstimatedMinutes: 30},
			{ID: NewID(), Type: TaskQuiz, Status: TaskPending, EstimatedMinutes: 15},
		},
	}
}

func TestCheck_ValidCurriculum(t *testing.T) {
	c := &Curriculum{Modules: []Module{
		practiceModule("a", 2),
		practiceModule("b", 3, "a"),
		practiceModule("c", 5, "b"),
	}}
	if err := DefaultInvariants().Check(c); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestCheck_DifficultyJump(t *testing.T) {
	c := &Curriculum{Modules: []Module{
		practiceModule("a", 2),
		practiceModule("b", 6, "a"),
	}}
	if err := DefaultInvariants().Check(c); err == nil {
		t.Error("Check() = nil, want difficulty jump violation")
	}
}

func TestCheck_ForwardPrerequisite(t *testing.T) {
	c := &Curriculum{Modules: []Module{
		practiceModule("a", 2, "b"),
		practiceModule("b", 3),
	}}
	if err := DefaultInvariants().Check(c); err == nil {
		t.Error("Check() = nil, want prerequisite ordering violation")
	}
}

func TestCheck_TheoryHeavyModule(t *testing.T) {
	m := Module{
		ID: NewID(), Topic: "a", Difficulty: 2,
		Tasks: []Task{
			{ID: NewID(), Type: TaskRead, Status: TaskPending},
			{ID: NewID(), Type: TaskWatch, Status: TaskPending},
			{ID: NewID(), Type: TaskCode, Status: TaskPending},
		},
	}
	c := &Curriculum{Modules: []Module{m}}
	if err := DefaultInvariants().Check(c); err == nil {
		t.Error("Check() = nil, want practice ratio violation")
	}
}

func TestClone_Isolation(t *testing.T) {
	c := &Curriculum{Modules: []Module{practiceModule("a", 2)}}
	clone := c.Clone()
	clone.Modules[0].Tasks[0].Status = TaskCompleted
	if c.Modules[0].Tasks[0].Status == TaskCompleted {
		t.Error("mutating clone changed the original")
	}
}

func TestRecomputeProgress(t *testing.T) {
	m := practiceModule("a", 2)
	m.Tasks[0].Status = TaskCompleted
	m.Tasks[1].Status = TaskSkipped
	c := &Curriculum{Modules: []Module{m}}
	c.RecomputeProgress()
	want := 0.2 // 2 of 10 tasks resolved
	if c.OverallProgress != want {
		t.Errorf("OverallProgress = %v, want %v", c.OverallProgress, want)
	}
}
