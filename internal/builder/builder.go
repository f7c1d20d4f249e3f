// Package builder assembles an ordered curriculum from a learner
// context, choosing generative content where available and the template
// library where not, and enforcing the structural invariants: acyclic
// prerequisite order, bounded difficulty jumps, minimum practice ratio,
// and a total size that fits the learner's time budget.
package builder

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/pathwise/pathwise/internal/content"
	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/templates"
)

// Config tunes the builder.
type Config struct {
	Invariants curriculum.Invariants

	// BudgetTolerance is the acceptable fraction above or below the
	// learner's total time budget. Default 0.10.
	BudgetTolerance float64

	// MaxModulesPerTopic bounds the candidates requested per goal.
	MaxModulesPerTopic int
}

// DefaultConfig returns the standard builder settings.
func DefaultConfig() Config {
	return Config{
		Invariants:         curriculum.DefaultInvariants(),
		BudgetTolerance:    0.10,
		MaxModulesPerTopic: 4,
	}
}

// Builder creates curricula. The content source may be nil, in which
// case everything comes from templates.
type Builder struct {
	source content.Source
	config Config
	now    func() time.Time
}

// New creates a Builder.
func New(source content.Source, cfg Config) *Builder {
	return &Builder{source: source, config: cfg, now: time.Now}
}

// candidate is a module candidate annotated with its origin.
type candidate struct {
	curriculum.ModuleCandidate
	domain       string
	fromFallback bool
}

// Build assembles a curriculum for the learner context. The only fatal
// error is an invalid context; content-source failure degrades to the
// template library per domain and is reported via the UsedFallback flag.
func (b *Builder) Build(ctx context.Context, lc *curriculum.LearnerContext) (*curriculum.Curriculum, error) {
	if err := lc.Validate(); err != nil {
		return nil, err
	}

	pool, usedFallback := b.collect(ctx, lc)

	pool = b.fitBudget(pool, lc)

	ordered := orderCandidates(pool)
	ordered = b.smoothDifficulty(ordered)

	now := b.now()
	cur := &curriculum.Curriculum{
		ID:           curriculum.NewID(),
		LearnerID:    lc.LearnerID,
		Status:       curriculum.StatusDraft,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
		UsedFallback: usedFallback,
	}

	for _, c := range ordered {
		cur.Modules = append(cur.Modules, b.assembleModule(c))
	}

	cur.OverBudget = overBudget(cur.TotalHours(), lc.BudgetHours(), b.config.BudgetTolerance)
	cur.WeeklyTaskTarget = weeklyTarget(cur, lc)

	return cur, nil
}

// collect gathers candidates for every goal, falling back to templates
// per domain. Goals resolving to the same domain are fetched once.
func (b *Builder) collect(ctx context.Context, lc *curriculum.LearnerContext) ([]candidate, bool) {
	var pool []candidate
	usedFallback := false
	seenDomain := make(map[string]bool)

	for _, goal := range lc.Goals {
		domain, _ := templates.MatchDomain(goal)
		if seenDomain[domain] {
			continue
		}
		seenDomain[domain] = true

		cands, err := b.generate(ctx, goal, domain, lc)
		if err != nil {
			cands = templates.TemplatesFor(domain)
			usedFallback = true
		}
		for _, c := range cands {
			pool = append(pool, candidate{ModuleCandidate: c, domain: domain})
		}
	}

	return pool, usedFallback
}

func (b *Builder) generate(ctx context.Context, goal, domain string, lc *curriculum.LearnerContext) ([]curriculum.ModuleCandidate, error) {
	if b.source == nil {
		return nil, content.ErrUnavailable
	}
	return b.source.Generate(ctx, content.Request{
		Topic:      goal,
		Domain:     domain,
		SkillLevel: lc.SkillLevel,
		Style:      lc.Style,
		MaxModules: b.config.MaxModulesPerTopic,
	})
}

// orderCandidates sorts prerequisite-first (Kahn), breaking ties by
// ascending difficulty then pool position, so output is deterministic.
// Prerequisites referencing topics outside the pool are dropped.
func orderCandidates(pool []candidate) []candidate {
	known := make(map[string]int, len(pool))
	for i, c := range pool {
		known[c.Topic] = i
	}

	inDegree := make([]int, len(pool))
	dependents := make(map[int][]int)
	for i := range pool {
		var kept []string
		for _, p := range pool[i].Prerequisites {
			j, ok := known[p]
			if !ok || j == i {
				continue
			}
			kept = append(kept, p)
			inDegree[i]++
			dependents[j] = append(dependents[j], i)
		}
		pool[i].Prerequisites = kept
	}

	var ready []int
	for i, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, i)
		}
	}

	var out []candidate
	for len(ready) > 0 {
		sort.Slice(ready, func(a, b int) bool {
			if pool[ready[a]].Difficulty != pool[ready[b]].Difficulty {
				return pool[ready[a]].Difficulty < pool[ready[b]].Difficulty
			}
			return ready[a] < ready[b]
		})

		i := ready[0]
		ready = ready[1:]
		out = append(out, pool[i])

		for _, d := range dependents[i] {
			inDegree[d]--
			if inDegree[d] == 0 {
				ready = append(ready, d)
			}
		}
	}

	// A prerequisite cycle in generated content leaves nodes unemitted.
	// Append them in pool order with cyclic prereqs cleared rather than
	// rejecting the build.
	if len(out) < len(pool) {
		emitted := make(map[string]bool, len(out))
		for _, c := range out {
			emitted[c.Topic] = true
		}
		for _, c := range pool {
			if !emitted[c.Topic] {
				c.Prerequisites = nil
				out = append(out, c)
				emitted[c.Topic] = true
			}
		}
	}

	return out
}

// smoothDifficulty inserts bridge modules wherever the consecutive
// difficulty delta exceeds the max jump in either direction. Generated
// pools are not always monotonic: a drill module can sit well below the
// advanced module it depends on, and the bound is on the absolute step.
func (b *Builder) smoothDifficulty(ordered []candidate) []candidate {
	maxJump := b.config.Invariants.MaxDifficultyJump
	if maxJump <= 0 || len(ordered) < 2 {
		return ordered
	}

	var out []candidate
	out = append(out, ordered[0])

	for _, c := range ordered[1:] {
		prev := out[len(out)-1]
		for c.Difficulty-prev.Difficulty > maxJump {
			bridge := b.bridgeCandidate(prev, min(prev.Difficulty+maxJump, c.Difficulty))
			out = append(out, bridge)
			prev = bridge
		}
		for prev.Difficulty-c.Difficulty > maxJump {
			bridge := b.bridgeCandidate(prev, max(prev.Difficulty-maxJump, c.Difficulty))
			out = append(out, bridge)
			prev = bridge
		}
		out = append(out, c)
	}

	return out
}

// bridgeCandidate builds an intermediate practice module between two
// difficulty levels, drawn from the previous module's domain templates.
func (b *Builder) bridgeCandidate(prev candidate, difficulty int) candidate {
	tasks := templates.PracticeTasks(prev.domain, difficulty, 4)

	minutes := 0
	for _, t := range tasks {
		minutes += t.EstimatedMinutes
	}

	return candidate{
		ModuleCandidate: curriculum.ModuleCandidate{
			Topic:          prev.Topic + "-bridge",
			Title:          prev.Title + " (consolidation)",
			Difficulty:     difficulty,
			EstimatedHours: float64(minutes) / 60.0,
			Prerequisites:  []string{prev.Topic},
			Tasks:          tasks,
		},
		domain:       prev.domain,
		fromFallback: true,
	}
}

// assembleModule converts a candidate into a concrete module: IDs and
// statuses assigned, practice ratio enforced, hours recomputed.
func (b *Builder) assembleModule(c candidate) curriculum.Module {
	m := curriculum.Module{
		ID:            curriculum.NewID(),
		Topic:         c.Topic,
		Domain:        c.domain,
		Title:         c.Title,
		Difficulty:    c.Difficulty,
		Prerequisites: c.Prerequisites,
		Optional:      c.Optional,
	}

	for _, t := range c.Tasks {
		m.Tasks = append(m.Tasks, curriculum.Task{
			ID:               curriculum.NewID(),
			Title:            t.Title,
			Type:             t.Type,
			Status:           curriculum.TaskPending,
			Difficulty:       t.Difficulty,
			EstimatedMinutes: t.EstimatedMinutes,
			Intro:            !t.Type.IsPractice(),
		})
	}

	b.padPractice(&m)

	// Keep the candidate's declared estimate when it has one — budget
	// fitting already trusted it. Recompute from task minutes otherwise.
	if c.EstimatedHours > 0 {
		m.EstimatedHours = c.EstimatedHours
	} else {
		minutes := 0
		for _, t := range m.Tasks {
			minutes += t.EstimatedMinutes
		}
		m.EstimatedHours = math.Round(float64(minutes)/60.0*10) / 10
	}

	return m
}

// padPractice appends template practice tasks until the module meets
// the minimum practice ratio. Generated content skews theory-heavy
// often enough that this runs on most LLM output.
func (b *Builder) padPractice(m *curriculum.Module) {
	ratio := b.config.Invariants.MinPracticeRatio
	if ratio <= 0 {
		return
	}

	practice, total := 0, len(m.Tasks)
	for _, t := range m.Tasks {
		if t.Type.IsPractice() {
			practice++
		}
	}

	// Smallest x with (practice+x)/(total+x) >= ratio.
	need := int(math.Ceil((ratio*float64(total) - float64(practice)) / (1 - ratio)))
	if need <= 0 {
		return
	}

	for _, t := range templates.PracticeTasks(m.Domain, m.Difficulty, need) {
		m.Tasks = append(m.Tasks, curriculum.Task{
			ID:               curriculum.NewID(),
			Title:            t.Title,
			Type:             t.Type,
			Status:           curriculum.TaskPending,
			Difficulty:       t.Difficulty,
			EstimatedMinutes: t.EstimatedMinutes,
		})
	}
}
