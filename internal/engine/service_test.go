package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pathwise/pathwise/internal/adapt"
	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/performance"
	"github.com/pathwise/pathwise/internal/store"
)

// In-memory repositories so the service can be exercised without a
// database.

type memCurricula struct {
	m map[string]*curriculum.Curriculum
}

func newMemCurricula() *memCurricula {
	return &memCurricula{m: make(map[string]*curriculum.Curriculum)}
}

func (r *memCurricula) Save(_ context.Context, c *curriculum.Curriculum) error {
	r.m[c.LearnerID] = c.Clone()
	return nil
}

func (r *memCurricula) ByLearner(_ context.Context, learnerID string) (*curriculum.Curriculum, error) {
	c, ok := r.m[learnerID]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

func (r *memCurricula) Delete(_ context.Context, learnerID string) error {
	delete(r.m, learnerID)
	return nil
}

type memEvents struct {
	outcomes  map[string][]curriculum.PerformanceRecord
	decisions map[string][]store.DecisionRecord
}

func newMemEvents() *memEvents {
	return &memEvents{
		outcomes:  make(map[string][]curriculum.PerformanceRecord),
		decisions: make(map[string][]store.DecisionRecord),
	}
}

func (r *memEvents) AppendOutcome(_ context.Context, data store.OutcomeEventData) error {
	r.outcomes[data.LearnerID] = append(r.outcomes[data.LearnerID], data.Record)
	return nil
}

func (r *memEvents) Outcomes(_ context.Context, learnerID string, _ store.QueryOpts) ([]curriculum.PerformanceRecord, error) {
	return append([]curriculum.PerformanceRecord(nil), r.outcomes[learnerID]...), nil
}

func (r *memEvents) AppendDecision(_ context.Context, data store.DecisionEventData) error {
	r.decisions[data.LearnerID] = append(r.decisions[data.LearnerID], store.DecisionRecord{DecisionEventData: data})
	return nil
}

func (r *memEvents) Decisions(_ context.Context, learnerID string, _ store.QueryOpts) ([]store.DecisionRecord, error) {
	return append([]store.DecisionRecord(nil), r.decisions[learnerID]...), nil
}

func (r *memEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (r *memEvents) LLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

type memSnapshots struct {
	m map[string][]*store.Snapshot
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{m: make(map[string][]*store.Snapshot)}
}

func (r *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	cp := *snap
	r.m[snap.LearnerID] = append(r.m[snap.LearnerID], &cp)
	return nil
}

func (r *memSnapshots) Latest(_ context.Context, learnerID string) (*store.Snapshot, error) {
	snaps := r.m[learnerID]
	if len(snaps) == 0 {
		return nil, nil
	}
	return snaps[len(snaps)-1], nil
}

func (r *memSnapshots) Prune(_ context.Context, learnerID string, keep int) error {
	snaps := r.m[learnerID]
	if len(snaps) > keep {
		r.m[learnerID] = snaps[len(snaps)-keep:]
	}
	return nil
}

// stubBuilder returns a canned curriculum, optionally blocking until
// released so concurrent-call behavior can be tested deterministically.
type stubBuilder struct {
	result  *curriculum.Curriculum
	err     error
	started chan struct{}
	release chan struct{}
}

func (b *stubBuilder) Build(_ context.Context, lc *curriculum.LearnerContext) (*curriculum.Curriculum, error) {
	if b.started != nil {
		close(b.started)
	}
	if b.release != nil {
		<-b.release
	}
	if b.err != nil {
		return nil, b.err
	}
	out := b.result.Clone()
	out.LearnerID = lc.LearnerID
	return out, nil
}

func planned() *curriculum.Curriculum {
	return &curriculum.Curriculum{
		ID:               "cur-1",
		Status:           curriculum.StatusActive,
		WeeklyTaskTarget: 10,
		Modules: []curriculum.Module{
			{
				ID: "m1", Topic: "recursion", Domain: "algorithms", Difficulty: 4,
				Tasks: []curriculum.Task{
					{ID: "t1", Title: "Base cases", Type: curriculum.TaskCode, Status: curriculum.TaskPending, Difficulty: 4, EstimatedMinutes: 25},
					{ID: "t2", Title: "Recursive sums", Type: curriculum.TaskQuiz, Status: curriculum.TaskPending, Difficulty: 4, EstimatedMinutes: 20},
				},
			},
			{
				ID: "m2", Topic: "trees", Domain: "algorithms", Difficulty: 5, Prerequisites: []string{"recursion"},
				Tasks: []curriculum.Task{
					{ID: "t3", Title: "Traversals", Type: curriculum.TaskCode, Status: curriculum.TaskPending, Difficulty: 5, EstimatedMinutes: 30},
				},
			},
		},
	}
}

func testService(b CurriculumBuilder) (*Service, *memCurricula, *memEvents) {
	curricula := newMemCurricula()
	events := newMemEvents()
	svc := newService(b, adapt.NewEngine(adapt.DefaultConfig()), performance.DefaultConfig(),
		curricula, events, newMemSnapshots())
	return svc, curricula, events
}

func learnerCtx() *curriculum.LearnerContext {
	return &curriculum.LearnerContext{
		LearnerID:  "learner-1",
		SkillLevel: curriculum.SkillBeginner,
		Goals:      []string{"recursion"},
		TimeBudget: curriculum.TimeBudget{HoursPerWeek: 5, SessionMinutes: 30},
		Style:      curriculum.StyleHandsOn,
	}
}

func TestBuild_Persists(t *testing.T) {
	svc, curricula, _ := testService(&stubBuilder{result: planned()})

	c, err := svc.Build(context.Background(), learnerCtx())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	stored, _ := curricula.ByLearner(context.Background(), "learner-1")
	if stored == nil || stored.ID != c.ID {
		t.Errorf("stored curriculum = %+v, want the built document", stored)
	}
}

func TestBuild_ErrorPersistsNothing(t *testing.T) {
	svc, curricula, _ := testService(&stubBuilder{err: curriculum.ErrInvalidLearnerContext})

	_, err := svc.Build(context.Background(), learnerCtx())
	if !errors.Is(err, curriculum.ErrInvalidLearnerContext) {
		t.Fatalf("Build error = %v, want ErrInvalidLearnerContext", err)
	}
	if stored, _ := curricula.ByLearner(context.Background(), "learner-1"); stored != nil {
		t.Error("failed build persisted a curriculum")
	}
}

func TestBuild_ConcurrentMutationRejected(t *testing.T) {
	b := &stubBuilder{
		result:  planned(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc, _, _ := testService(b)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Build(context.Background(), learnerCtx())
		done <- err
	}()
	<-b.started

	// Second mutation for the same learner while the first is in
	// flight must be rejected, not queued.
	_, err := svc.RecordOutcome(context.Background(), "learner-1", curriculum.PerformanceRecord{Topic: "recursion", TaskID: "t1", Passed: true})
	if !errors.Is(err, ErrConcurrentMutation) {
		t.Errorf("concurrent RecordOutcome error = %v, want ErrConcurrentMutation", err)
	}

	close(b.release)
	if err := <-done; err != nil {
		t.Fatalf("first Build: %v", err)
	}

	// The slot is free again afterwards.
	if _, err := svc.RecordOutcome(context.Background(), "learner-1", curriculum.PerformanceRecord{Topic: "recursion", TaskID: "t1", Passed: true}); err != nil {
		t.Errorf("RecordOutcome after release: %v", err)
	}
}

func TestRecordOutcome_NoCurriculum(t *testing.T) {
	svc, _, _ := testService(&stubBuilder{result: planned()})

	_, err := svc.RecordOutcome(context.Background(), "ghost", curriculum.PerformanceRecord{Topic: "recursion", TaskID: "t1", Passed: true})
	if !errors.Is(err, ErrNoCurriculum) {
		t.Errorf("error = %v, want ErrNoCurriculum", err)
	}
}

func TestRecordOutcome_PassCompletesTask(t *testing.T) {
	svc, _, _ := testService(&stubBuilder{result: planned()})
	ctx := context.Background()
	svc.Build(ctx, learnerCtx())

	res, err := svc.RecordOutcome(ctx, "learner-1", curriculum.PerformanceRecord{Topic: "recursion", TaskID: "t1", Passed: true})
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if got := res.Curriculum.Modules[0].Tasks[0].Status; got != curriculum.TaskCompleted {
		t.Errorf("t1 status = %s, want completed", got)
	}
	if res.Trigger != nil {
		t.Errorf("Trigger = %v, want nil after a single pass", res.Trigger)
	}
}

func TestRecordOutcome_TwoFailuresAdapt(t *testing.T) {
	svc, _, events := testService(&stubBuilder{result: planned()})
	ctx := context.Background()
	svc.Build(ctx, learnerCtx())

	svc.RecordOutcome(ctx, "learner-1", curriculum.PerformanceRecord{Topic: "recursion", TaskID: "t1", Passed: false})
	res, err := svc.RecordOutcome(ctx, "learner-1", curriculum.PerformanceRecord{Topic: "recursion", TaskID: "t1", Passed: false})
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	if res.Trigger == nil || res.Trigger.Kind != performance.ConsecutiveFailure {
		t.Fatalf("Trigger = %v, want consecutive failure", res.Trigger)
	}
	if res.Decision == nil || res.Decision.Action != adapt.ActionReduceDifficulty {
		t.Errorf("Decision = %+v, want reduce_difficulty", res.Decision)
	}
	m := res.Curriculum.Modules[0]
	if m.Difficulty != 3 {
		t.Errorf("module difficulty = %d, want 3", m.Difficulty)
	}
	if res.Curriculum.PausedForRecap == "" {
		t.Error("PausedForRecap not set after failure adaptation")
	}

	decs, _ := events.Decisions(ctx, "learner-1", store.QueryOpts{})
	if len(decs) != 1 {
		t.Fatalf("persisted decisions = %d, want 1", len(decs))
	}
	if decs[0].Trigger != "consecutive_failure" {
		t.Errorf("persisted trigger = %s, want consecutive_failure", decs[0].Trigger)
	}
}

func TestRecordOutcome_ModuleCompletionSchedulesReview(t *testing.T) {
	svc, _, _ := testService(&stubBuilder{result: planned()})
	ctx := context.Background()
	svc.Build(ctx, learnerCtx())

	now := time.Now()
	svc.RecordOutcome(ctx, "learner-1", curriculum.PerformanceRecord{Topic: "recursion", TaskID: "t1", Passed: true, Timestamp: now})
	res, err := svc.RecordOutcome(ctx, "learner-1", curriculum.PerformanceRecord{Topic: "recursion", TaskID: "t2", Passed: true, Timestamp: now})
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	if !res.ModuleCompleted {
		t.Error("ModuleCompleted = false after finishing every task in module 1")
	}
	if res.Curriculum.CurrentModuleIndex != 1 {
		t.Errorf("CurrentModuleIndex = %d, want 1", res.Curriculum.CurrentModuleIndex)
	}

	due, err := svc.DueReviews(ctx, "learner-1", now.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("DueReviews: %v", err)
	}
	if len(due) != 1 || due[0] != "recursion" {
		t.Errorf("DueReviews = %v, want [recursion]", due)
	}
}

func TestReviewOutcome_UntrackedTopic(t *testing.T) {
	svc, _, _ := testService(&stubBuilder{result: planned()})

	entry, err := svc.ReviewOutcome(context.Background(), "learner-1", "nope", true)
	if err != nil {
		t.Fatalf("ReviewOutcome: %v", err)
	}
	if entry != nil {
		t.Errorf("entry = %+v, want nil for untracked topic", entry)
	}
}
