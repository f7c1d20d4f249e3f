package adapt

import (
	"strings"

	"github.com/pathwise/pathwise/internal/curriculum"
)

const miniProjectMinutes = 90

// InjectMiniProject checks whether the learner has just finished a run
// of consecutive compatible modules and, if so, returns a clone with a
// synthesized mini-project inserted as the first task of the next
// module. Idempotent: a module that already opens with a mini-project
// is left alone.
func (e *Engine) InjectMiniProject(c *curriculum.Curriculum) (*curriculum.Curriculum, bool) {
	n := e.config.MiniProjectRun

	// Modules complete in order, so the candidate run is the tail of
	// the completed prefix.
	end := -1
	for i := range c.Modules {
		if !c.Modules[i].Completed() {
			break
		}
		end = i
	}
	start := end - n + 1
	next := end + 1
	if start < 0 || next >= len(c.Modules) {
		return c, false
	}
	run := c.Modules[start : end+1]
	if !compatible(run) {
		return c, false
	}
	if len(c.Modules[next].Tasks) > 0 && c.Modules[next].Tasks[0].IsMiniProject {
		return c, false
	}

	topics := make([]string, len(run))
	difficulty := difficultyFloor
	for i, m := range run {
		topics[i] = m.Topic
		if m.Difficulty > difficulty {
			difficulty = m.Difficulty
		}
	}

	out := c.Clone()
	m := &out.Modules[next]
	project := curriculum.Task{
		ID:               syntheticID(m.ID, "mini-project", strings.Join(topics, "+")),
		Title:            "Mini-project: " + strings.Join(topics, " + "),
		Type:             curriculum.TaskCode,
		Status:           curriculum.TaskPending,
		Difficulty:       difficulty,
		EstimatedMinutes: miniProjectMinutes,
		IsMiniProject:    true,
	}
	m.Tasks = insertTask(m.Tasks, 0, project)
	out.Version++
	out.RecomputeProgress()
	return out, true
}

// compatible reports whether a run of modules belongs together: either
// they share a domain, or each one lists its predecessor's topic as a
// prerequisite.
func compatible(run []curriculum.Module) bool {
	if len(run) == 0 {
		return false
	}
	sameDomain := true
	for _, m := range run[1:] {
		if m.Domain != run[0].Domain {
			sameDomain = false
			break
		}
	}
	if sameDomain {
		return true
	}
	for i := 1; i < len(run); i++ {
		linked := false
		for _, p := range run[i].Prerequisites {
			if p == run[i-1].Topic {
				linked = true
				break
			}
		}
		if !linked {
			return false
		}
	}
	return true
}
