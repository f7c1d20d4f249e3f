package curriculum

import (
	"errors"
	"testing"
)

func validContext() *LearnerContext {
	return &LearnerContext{
		LearnerID:  "learner-1",
		SkillLevel: SkillBeginner,
		Goals:      []string{"loops"},
		TimeBudget: TimeBudget{HoursPerWeek: 5, SessionMinutes: 30},
		Style:      StyleMixed,
	}
}

func TestValidate_OK(t *testing.T) {
	lc := validContext()
	if err := lc.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_NoGoals(t *testing.T) {
	lc := validContext()
	lc.Goals = nil
	err := lc.Validate()
	if !errors.Is(err, ErrInvalidLearnerContext) {
		t.Errorf("Validate() = %v, want ErrInvalidLearnerContext", err)
	}
}

func TestValidate_DuplicateGoals(t *testing.T) {
	lc := validContext()
	lc.Goals = []string{"loops", "loops"}
	err := lc.Validate()
	if !errors.Is(err, ErrInvalidLearnerContext) {
		t.Errorf("Validate() = %v, want ErrInvalidLearnerContext", err)
	}
}

func TestValidate_BadSkillLevel(t *testing.T) {
	lc := validContext()
	lc.SkillLevel = "wizard"
	err := lc.Validate()
	if !errors.Is(err, ErrInvalidLearnerContext) {
		t.Errorf("Validate() = %v, want ErrInvalidLearnerContext", err)
	}
}

func TestValidate_SessionLongerThanWeek(t *testing.T) {
	lc := validContext()
	lc.TimeBudget = TimeBudget{HoursPerWeek: 1, SessionMinutes: 120}
	err := lc.Validate()
	if !errors.Is(err, ErrInvalidLearnerContext) {
		t.Errorf("Validate() = %v, want ErrInvalidLearnerContext", err)
	}
}

func TestBudgetHours_DefaultHorizon(t *testing.T) {
	lc := validContext()
	if got := lc.BudgetHours(); got != 40 {
		t.Errorf("BudgetHours() = %v, want 40", got)
	}
}
