package curriculum

import "fmt"

// Invariants are the structural rules every freshly built curriculum
// must satisfy. The builder enforces them; tests re-check built output.
// Adaptation mutates difficulty within its own floor and ceiling and is
// not re-validated against these rules.
type Invariants struct {
	MaxDifficultyJump int     // max delta between consecutive modules
	MinPracticeRatio  float64 // min fraction of practice tasks per module
}

// DefaultInvariants returns the standard rule set.
func DefaultInvariants() Invariants {
	return Invariants{
		MaxDifficultyJump: 2,
		MinPracticeRatio:  0.70,
	}
}

// Check verifies the curriculum against the invariants. It returns the
// first violation found, or nil.
func (inv Invariants) Check(c *Curriculum) error {
	if len(c.Modules) == 0 {
		return fmt.Errorf("curriculum has no modules")
	}

	known := make(map[string]bool)
	for i := range c.Modules {
		m := &c.Modules[i]

		if m.Difficulty < 1 || m.Difficulty > 10 {
			return fmt.Errorf("module %d (%s): difficulty %d out of range", i, m.Topic, m.Difficulty)
		}

		if i > 0 {
			delta := m.Difficulty - c.Modules[i-1].Difficulty
			if delta < 0 {
				delta = -delta
			}
			if delta > inv.MaxDifficultyJump {
				return fmt.Errorf("module %d (%s): difficulty jump %d exceeds max %d",
					i, m.Topic, delta, inv.MaxDifficultyJump)
			}
		}

		// Prerequisites must reference earlier modules only: the order
		// is acyclic and strictly sequential.
		for _, p := range m.Prerequisites {
			if !known[p] {
				return fmt.Errorf("module %d (%s): prerequisite %q not satisfied by an earlier module",
					i, m.Topic, p)
			}
		}
		known[m.Topic] = true

		if m.PracticeRatio() < inv.MinPracticeRatio {
			return fmt.Errorf("module %d (%s): practice ratio %.2f below min %.2f",
				i, m.Topic, m.PracticeRatio(), inv.MinPracticeRatio)
		}
	}

	return nil
}
