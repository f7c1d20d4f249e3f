package curriculum

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SkillLevel is the learner's self-declared starting level.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// LearningStyle is the learner's declared preference for task mix.
type LearningStyle string

const (
	StyleHandsOn LearningStyle = "hands-on"
	StyleTheory  LearningStyle = "theory"
	StyleMixed   LearningStyle = "mixed"
)

// TimeBudget is the learner's weekly time constraint.
type TimeBudget struct {
	HoursPerWeek   float64 `json:"hours_per_week" validate:"gt=0,lte=80"`
	SessionMinutes int     `json:"session_minutes" validate:"omitempty,gte=10,lte=240"`
}

// LearnerContext is the immutable input to a planning call, supplied by
// the external profile collaborator.
type LearnerContext struct {
	LearnerID  string        `json:"learner_id" validate:"required"`
	SkillLevel SkillLevel    `json:"skill_level" validate:"required,oneof=beginner intermediate advanced expert"`
	Goals      []string      `json:"goals" validate:"required,min=1,dive,required"`
	TimeBudget TimeBudget    `json:"time_budget"`
	Style      LearningStyle `json:"learning_style" validate:"required,oneof=hands-on theory mixed"`
	WeeksAhead int           `json:"weeks_ahead" validate:"omitempty,gte=1,lte=52"`
}

// ErrInvalidLearnerContext indicates the profile input is missing or
// contradictory. The build is aborted and nothing is persisted.
var ErrInvalidLearnerContext = errors.New("invalid learner context")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags plus cross-field rules the tags can't
// express. All violations wrap ErrInvalidLearnerContext.
func (lc *LearnerContext) Validate() error {
	if err := validate.Struct(lc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLearnerContext, err)
	}

	seen := make(map[string]bool, len(lc.Goals))
	for _, g := range lc.Goals {
		if seen[g] {
			return fmt.Errorf("%w: duplicate goal %q", ErrInvalidLearnerContext, g)
		}
		seen[g] = true
	}

	// A session longer than the whole weekly budget is contradictory.
	if lc.TimeBudget.SessionMinutes > 0 &&
		float64(lc.TimeBudget.SessionMinutes)/60.0 > lc.TimeBudget.HoursPerWeek {
		return fmt.Errorf("%w: session length %dm exceeds weekly budget %.1fh",
			ErrInvalidLearnerContext, lc.TimeBudget.SessionMinutes, lc.TimeBudget.HoursPerWeek)
	}

	return nil
}

// HorizonWeeks returns the planning horizon, defaulting to 8 weeks.
func (lc *LearnerContext) HorizonWeeks() int {
	if lc.WeeksAhead > 0 {
		return lc.WeeksAhead
	}
	return 8
}

// BudgetHours returns the total hours available over the horizon.
func (lc *LearnerContext) BudgetHours() float64 {
	return lc.TimeBudget.HoursPerWeek * float64(lc.HorizonWeeks())
}
