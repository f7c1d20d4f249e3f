// Package engine is the orchestration layer: it wires the builder,
// analyzer, adaptation engine, and review scheduler to the persistence
// repositories, and enforces the one-mutation-in-flight-per-learner
// rule that the planning components themselves do not.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pathwise/pathwise/internal/adapt"
	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/performance"
	"github.com/pathwise/pathwise/internal/spacedrep"
	"github.com/pathwise/pathwise/internal/store"
)

// ErrConcurrentMutation is returned when a build or adapt call arrives
// while another mutation for the same learner is still in flight. The
// caller should retry once the other call finishes.
var ErrConcurrentMutation = errors.New("concurrent curriculum mutation")

// ErrNoCurriculum is returned when an operation needs a stored
// curriculum and the learner has none.
var ErrNoCurriculum = errors.New("no curriculum for learner")

// CurriculumBuilder produces an initial curriculum from a learner
// context. Satisfied by builder.Builder.
type CurriculumBuilder interface {
	Build(ctx context.Context, lc *curriculum.LearnerContext) (*curriculum.Curriculum, error)
}

// Service coordinates planning calls for all learners.
type Service struct {
	builder     CurriculumBuilder
	adapter     *adapt.Engine
	analyzerCfg performance.Config

	curricula store.CurriculumRepo
	events    store.EventRepo
	snapshots store.SnapshotRepo

	now func() time.Time

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewService wires a service from its collaborators.
func NewService(b CurriculumBuilder, a *adapt.Engine, analyzerCfg performance.Config, s *store.Store) *Service {
	return newService(b, a, analyzerCfg, s.CurriculumRepo(), s.EventRepo(), s.SnapshotRepo())
}

func newService(b CurriculumBuilder, a *adapt.Engine, analyzerCfg performance.Config,
	curricula store.CurriculumRepo, events store.EventRepo, snapshots store.SnapshotRepo) *Service {
	return &Service{
		builder:     b,
		adapter:     a,
		analyzerCfg: analyzerCfg,
		curricula:   curricula,
		events:      events,
		snapshots:   snapshots,
		now:         time.Now,
		inFlight:    make(map[string]bool),
	}
}

// acquire claims the learner's mutation slot.
func (s *Service) acquire(learnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[learnerID] {
		return fmt.Errorf("%w: learner %s", ErrConcurrentMutation, learnerID)
	}
	s.inFlight[learnerID] = true
	return nil
}

func (s *Service) release(learnerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, learnerID)
}

// Build plans a fresh curriculum for the learner and persists it.
// An invalid context aborts the call with nothing persisted.
func (s *Service) Build(ctx context.Context, lc *curriculum.LearnerContext) (*curriculum.Curriculum, error) {
	if err := s.acquire(lc.LearnerID); err != nil {
		return nil, err
	}
	defer s.release(lc.LearnerID)

	c, err := s.builder.Build(ctx, lc)
	if err != nil {
		return nil, err
	}
	if err := s.curricula.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("persist curriculum: %w", err)
	}
	return c, nil
}

// Curriculum loads the learner's stored curriculum.
func (s *Service) Curriculum(ctx context.Context, learnerID string) (*curriculum.Curriculum, error) {
	c, err := s.curricula.ByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoCurriculum, learnerID)
	}
	return c, nil
}

// OutcomeResult reports what one recorded outcome caused.
type OutcomeResult struct {
	Curriculum      *curriculum.Curriculum
	Stats           *performance.TopicStats
	Trigger         *performance.Trigger
	Decision        *adapt.Decision
	ModuleCompleted bool
	MiniProject     bool
}

// RecordOutcome folds one task outcome into the learner's state: it
// appends the outcome to the event log, updates the curriculum's task
// status, runs the analyzer over the rebuilt history, applies any
// resulting adaptation, schedules reviews for newly completed topics,
// and persists everything it changed.
func (s *Service) RecordOutcome(ctx context.Context, learnerID string, rec curriculum.PerformanceRecord) (*OutcomeResult, error) {
	if err := s.acquire(learnerID); err != nil {
		return nil, err
	}
	defer s.release(learnerID)

	c, err := s.Curriculum(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}

	// Rebuild the analyzer from the log, then fold in the new outcome.
	// Only the newest record may fire a trigger.
	history, err := s.events.Outcomes(ctx, learnerID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load outcome history: %w", err)
	}
	analyzer := performance.NewAnalyzer(s.analyzerCfg)
	analyzer.Replay(history)
	trig := analyzer.Record(rec)

	if err := s.events.AppendOutcome(ctx, store.OutcomeEventData{LearnerID: learnerID, Record: rec}); err != nil {
		return nil, fmt.Errorf("append outcome: %w", err)
	}

	result := &OutcomeResult{Stats: analyzer.StatsFor(rec.Topic), Trigger: trig}

	c = c.Clone()
	s.applyOutcomeToTasks(c, rec)

	sched, err := s.loadScheduler(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	if trig != nil {
		adapted, decision := s.adapter.Apply(c, *trig)
		c = adapted
		result.Decision = &decision
		err := s.events.AppendDecision(ctx, store.DecisionEventData{
			DecisionID:   decision.ID,
			LearnerID:    learnerID,
			CurriculumID: decision.CurriculumID,
			Trigger:      decision.Trigger,
			Topic:        decision.Topic,
			TaskID:       decision.TaskID,
			Action:       string(decision.Action),
			Clamped:      decision.Clamped,
		})
		if err != nil {
			return nil, fmt.Errorf("append decision: %w", err)
		}
	}

	result.ModuleCompleted = s.advanceModules(c, sched, rec.Timestamp)
	if result.ModuleCompleted {
		if withProject, ok := s.adapter.InjectMiniProject(c); ok {
			c = withProject
			result.MiniProject = true
		}
	}

	c.RecomputeProgress()
	if err := s.curricula.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("persist curriculum: %w", err)
	}
	if err := s.saveScheduler(ctx, learnerID, sched); err != nil {
		return nil, err
	}

	result.Curriculum = c
	return result, nil
}

// applyOutcomeToTasks moves the outcome's task through its lifecycle.
// A pass completes the task (and lifts a recap pause when the recap is
// what passed); a fail leaves it in progress for another attempt.
func (s *Service) applyOutcomeToTasks(c *curriculum.Curriculum, rec curriculum.PerformanceRecord) {
	for i := range c.Modules {
		m := &c.Modules[i]
		for j := range m.Tasks {
			t := &m.Tasks[j]
			if t.ID != rec.TaskID {
				continue
			}
			if rec.Passed {
				t.Status = curriculum.TaskCompleted
				if c.PausedForRecap == t.ID {
					c.PausedForRecap = ""
				}
			} else {
				t.Status = curriculum.TaskInProgress
			}
			return
		}
	}
}

// advanceModules moves the current-module pointer past every module
// that is now complete, registering each completed topic with the
// review scheduler. Progression stops while a recap pause is active.
func (s *Service) advanceModules(c *curriculum.Curriculum, sched *spacedrep.Scheduler, now time.Time) bool {
	if c.PausedForRecap != "" {
		return false
	}
	completed := false
	for c.CurrentModuleIndex < len(c.Modules) {
		m := &c.Modules[c.CurrentModuleIndex]
		if !m.Completed() {
			break
		}
		sched.OnTopicCompleted(m.Topic, now)
		c.CurrentModuleIndex++
		completed = true
	}
	if c.CurrentModuleIndex >= len(c.Modules) && len(c.Modules) > 0 {
		c.Status = curriculum.StatusCompleted
	}
	return completed
}

// DueReviews lists topics due for review, most overdue first.
func (s *Service) DueReviews(ctx context.Context, learnerID string, asOf time.Time) ([]string, error) {
	sched, err := s.loadScheduler(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	return sched.DueReviews(asOf), nil
}

// ReviewOutcome records the result of a topic review and persists the
// updated schedule. Returns the updated entry, or nil for an untracked
// topic.
func (s *Service) ReviewOutcome(ctx context.Context, learnerID, topic string, passed bool) (*spacedrep.Entry, error) {
	if err := s.acquire(learnerID); err != nil {
		return nil, err
	}
	defer s.release(learnerID)

	sched, err := s.loadScheduler(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	entry := sched.OnReviewOutcome(topic, passed, s.now())
	if entry == nil {
		return nil, nil
	}
	if err := s.saveScheduler(ctx, learnerID, sched); err != nil {
		return nil, err
	}
	return entry, nil
}

// Decisions returns the learner's adaptation audit trail.
func (s *Service) Decisions(ctx context.Context, learnerID string) ([]store.DecisionRecord, error) {
	return s.events.Decisions(ctx, learnerID, store.QueryOpts{})
}

// Stats recomputes the learner's per-topic rolling stats from the
// outcome log.
func (s *Service) Stats(ctx context.Context, learnerID string) (map[string]*performance.TopicStats, error) {
	history, err := s.events.Outcomes(ctx, learnerID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load outcome history: %w", err)
	}
	analyzer := performance.NewAnalyzer(s.analyzerCfg)
	analyzer.Replay(history)

	out := make(map[string]*performance.TopicStats)
	for _, topic := range analyzer.Topics() {
		out[topic] = analyzer.StatsFor(topic)
	}
	return out, nil
}

func (s *Service) loadScheduler(ctx context.Context, learnerID string) (*spacedrep.Scheduler, error) {
	snap, err := s.snapshots.Latest(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load schedule snapshot: %w", err)
	}
	if snap == nil {
		return spacedrep.NewScheduler(), nil
	}
	return spacedrep.FromSnapshot(snap.Data.Schedule), nil
}

func (s *Service) saveScheduler(ctx context.Context, learnerID string, sched *spacedrep.Scheduler) error {
	err := s.snapshots.Save(ctx, &store.Snapshot{
		LearnerID: learnerID,
		Timestamp: s.now(),
		Data:      store.SnapshotData{Version: 1, Schedule: sched.Snapshot()},
	})
	if err != nil {
		return fmt.Errorf("save schedule snapshot: %w", err)
	}
	return s.snapshots.Prune(ctx, learnerID, 5)
}
