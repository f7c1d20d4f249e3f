package store

import (
	"context"
	"testing"
	"time"

	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/spacedrep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCurriculumSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	// Nothing stored yet.
	got, err := repo.ByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil curriculum when none exists")
	}

	c := &curriculum.Curriculum{
		ID:        "cur-1",
		LearnerID: "learner-1",
		Status:    curriculum.StatusActive,
		Version:   1,
		Modules: []curriculum.Module{
			{
				ID: "m1", Topic: "loops", Domain: "programming-basics", Difficulty: 2,
				Tasks: []curriculum.Task{
					{ID: "t1", Title: "For loops", Type: curriculum.TaskCode, Status: curriculum.TaskPending, Difficulty: 2, EstimatedMinutes: 25},
				},
			},
		},
	}
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.ByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ID != "cur-1" || got.Version != 1 || len(got.Modules) != 1 {
		t.Errorf("loaded curriculum = %+v, want the saved document", got)
	}
	if got.Modules[0].Tasks[0].Type != curriculum.TaskCode {
		t.Errorf("task type = %s, want code", got.Modules[0].Tasks[0].Type)
	}
}

func TestCurriculumSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	c := &curriculum.Curriculum{ID: "cur-1", LearnerID: "learner-1", Status: curriculum.StatusActive, Version: 1}
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("first save: %v", err)
	}
	c.Version = 2
	c.Status = curriculum.StatusPaused
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.ByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Version != 2 || got.Status != curriculum.StatusPaused {
		t.Errorf("loaded Version=%d Status=%s, want last write (2, paused)", got.Version, got.Status)
	}
}

func TestOutcomesAppendOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, passed := range []bool{true, false, true} {
		err := repo.AppendOutcome(ctx, OutcomeEventData{
			LearnerID: "learner-1",
			Record: curriculum.PerformanceRecord{
				Topic:     "loops",
				TaskID:    "t1",
				Passed:    passed,
				Timestamp: time.Now().Add(time.Duration(i) * time.Second),
			},
		})
		if err != nil {
			t.Fatalf("append outcome %d: %v", i, err)
		}
	}
	// Another learner's outcomes must not leak in.
	if err := repo.AppendOutcome(ctx, OutcomeEventData{
		LearnerID: "learner-2",
		Record:    curriculum.PerformanceRecord{Topic: "loops", TaskID: "t9", Passed: false, Timestamp: time.Now()},
	}); err != nil {
		t.Fatalf("append outcome for learner-2: %v", err)
	}

	recs, err := repo.Outcomes(ctx, "learner-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query outcomes: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(Outcomes) = %d, want 3", len(recs))
	}
	want := []bool{true, false, true}
	for i, rec := range recs {
		if rec.Passed != want[i] {
			t.Errorf("Outcomes[%d].Passed = %v, want %v (append order)", i, rec.Passed, want[i])
		}
	}
}

func TestDecisionsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendDecision(ctx, DecisionEventData{
		DecisionID:   "d1",
		LearnerID:    "learner-1",
		CurriculumID: "cur-1",
		Trigger:      "consecutive_failure",
		Topic:        "recursion",
		TaskID:       "t2",
		Action:       "reduce_difficulty",
	})
	if err != nil {
		t.Fatalf("append decision: %v", err)
	}

	decs, err := repo.Decisions(ctx, "learner-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query decisions: %v", err)
	}
	if len(decs) != 1 {
		t.Fatalf("len(Decisions) = %d, want 1", len(decs))
	}
	d := decs[0]
	if d.Trigger != "consecutive_failure" || d.Action != "reduce_difficulty" || d.Clamped {
		t.Errorf("decision = %+v, want the appended record", d)
	}
}

func TestSnapshotLatestAndPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	sched := spacedrep.NewScheduler()
	sched.OnTopicCompleted("loops", time.Now().UTC())

	for i := int64(1); i <= 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			LearnerID: "learner-1",
			Sequence:  i * 10,
			Timestamp: time.Now().UTC(),
			Data:      SnapshotData{Version: 1, Schedule: sched.Snapshot()},
		})
		if err != nil {
			t.Fatalf("save snapshot %d: %v", i, err)
		}
	}

	snap, err = repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Sequence != 30 {
		t.Fatalf("latest = %+v, want sequence 30", snap)
	}
	if snap.Data.Schedule == nil || len(snap.Data.Schedule.Entries) != 1 {
		t.Errorf("snapshot schedule = %+v, want one entry", snap.Data.Schedule)
	}

	if err := repo.Prune(ctx, "learner-1", 1); err != nil {
		t.Fatalf("prune: %v", err)
	}
	snap, err = repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap == nil || snap.Sequence != 30 {
		t.Errorf("latest after prune = %+v, want the newest snapshot kept", snap)
	}
}
