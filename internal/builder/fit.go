package builder

import (
	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/templates"
)

// fitBudget trims or extends the candidate pool so total estimated
// hours land within tolerance of the learner's budget. Trimming drops
// optional modules first, then nothing — running over after that is a
// warning flag, not a failure. Extension pulls additional template
// modules for the pool's domains.
func (b *Builder) fitBudget(pool []candidate, lc *curriculum.LearnerContext) []candidate {
	budget := lc.BudgetHours()
	tol := b.config.BudgetTolerance
	if budget <= 0 {
		return pool
	}

	total := poolHours(pool)

	// Too big: drop optional modules from the end until within bounds.
	// Anything still over budget is reported, not fixed, so the learner
	// keeps a complete path.
	if total > budget*(1+tol) {
		for i := len(pool) - 1; i >= 0 && total > budget*(1+tol); i-- {
			if !pool[i].Optional {
				continue
			}
			if dependedOn(pool, pool[i].Topic) {
				continue
			}
			total -= candidateHours(pool[i])
			pool = append(pool[:i], pool[i+1:]...)
		}
		return pool
	}

	// Too small: top up with unused template modules from the same
	// domains, keeping the learner's weeks filled.
	if total < budget*(1-tol) {
		present := make(map[string]bool, len(pool))
		domains := make(map[string]bool)
		var domainOrder []string
		for _, c := range pool {
			present[c.Topic] = true
			if !domains[c.domain] {
				domains[c.domain] = true
				domainOrder = append(domainOrder, c.domain)
			}
		}

		for _, d := range domainOrder {
			for _, tmpl := range templates.TemplatesFor(d) {
				if total >= budget*(1-tol) {
					return pool
				}
				if present[tmpl.Topic] {
					continue
				}
				// Skip templates whose prerequisites aren't in the pool;
				// they would dangle after ordering.
				ok := true
				for _, p := range tmpl.Prerequisites {
					if !present[p] {
						ok = false
						break
					}
				}
				if !ok {
					continue
				}
				present[tmpl.Topic] = true
				pool = append(pool, candidate{ModuleCandidate: tmpl, domain: d, fromFallback: true})
				total += candidateHours(pool[len(pool)-1])
			}
		}
	}

	return pool
}

func poolHours(pool []candidate) float64 {
	var total float64
	for _, c := range pool {
		total += candidateHours(c)
	}
	return total
}

// candidateHours prefers the declared estimate, recomputing from task
// minutes when the candidate didn't carry one.
func candidateHours(c candidate) float64 {
	if c.EstimatedHours > 0 {
		return c.EstimatedHours
	}
	minutes := 0
	for _, t := range c.Tasks {
		minutes += t.EstimatedMinutes
	}
	return float64(minutes) / 60.0
}

// dependedOn reports whether any other candidate lists topic as a
// prerequisite. Optional modules that others build on can't be trimmed.
func dependedOn(pool []candidate, topic string) bool {
	for _, c := range pool {
		if c.Topic == topic {
			continue
		}
		for _, p := range c.Prerequisites {
			if p == topic {
				return true
			}
		}
	}
	return false
}

// overBudget reports whether the assembled curriculum still exceeds the
// budget beyond tolerance.
func overBudget(total, budget, tol float64) bool {
	if budget <= 0 {
		return false
	}
	return total > budget*(1+tol)
}

// weeklyTarget derives the initial pacing target from task count and
// planning horizon. The adaptation engine moves it later.
func weeklyTarget(c *curriculum.Curriculum, lc *curriculum.LearnerContext) int {
	tasks := 0
	for i := range c.Modules {
		tasks += len(c.Modules[i].Tasks)
	}
	weeks := lc.HorizonWeeks()
	if weeks <= 0 || tasks == 0 {
		return 0
	}
	target := (tasks + weeks - 1) / weeks
	if target < 1 {
		target = 1
	}
	return target
}
