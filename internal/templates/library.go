// Package templates is the deterministic fallback content source: a
// built-in catalog of module/task templates per domain, used whenever
// the generative content source is unavailable or its output needs
// padding. Lookup never fails — unknown domains resolve to a generic
// fallback set.
package templates

import "github.com/pathwise/pathwise/internal/curriculum"

// TemplatesFor returns the module candidates for a domain. The result
// is a deep copy; callers may mutate it freely. An unknown domain
// returns the generic fallback set.
func TemplatesFor(domain string) []curriculum.ModuleCandidate {
	dt, ok := catalog[domain]
	if !ok {
		dt = catalog[GenericDomain]
	}
	return cloneCandidates(dt.Modules)
}

// PracticeTasks returns up to n practice-type task candidates for a
// domain, drawn from its templates, for padding theory-heavy modules.
// Difficulty is adjusted toward the requested level.
func PracticeTasks(domain string, difficulty, n int) []curriculum.TaskCandidate {
	if n <= 0 {
		return nil
	}

	var out []curriculum.TaskCandidate
	for _, m := range TemplatesFor(domain) {
		for _, t := range m.Tasks {
			if !t.Type.IsPractice() {
				continue
			}
			t.Difficulty = difficulty
			out = append(out, t)
			if len(out) == n {
				return out
			}
		}
	}

	// Template pool exhausted: synthesize plain drills.
	for len(out) < n {
		out = append(out, curriculum.TaskCandidate{
			Title:            "Extra practice drill",
			Type:             curriculum.TaskCode,
			Difficulty:       difficulty,
			EstimatedMinutes: 25,
		})
	}
	return out
}

// Domains returns the known domain names in catalog order.
func Domains() []string {
	out := make([]string, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

func cloneCandidates(in []curriculum.ModuleCandidate) []curriculum.ModuleCandidate {
	out := make([]curriculum.ModuleCandidate, len(in))
	for i, m := range in {
		cm := m
		cm.Prerequisites = append([]string(nil), m.Prerequisites...)
		cm.Tasks = append([]curriculum.TaskCandidate(nil), m.Tasks...)
		out[i] = cm
	}
	return out
}
