package performance

import (
	"testing"
	"time"

	"github.com/pathwise/pathwise/internal/curriculum"
)

func rec(topic string, passed bool) curriculum.PerformanceRecord {
	return curriculum.PerformanceRecord{
		Topic:     topic,
		TaskID:    curriculum.NewID(),
		Passed:    passed,
		Timestamp: time.Now(),
	}
}

func TestRecord_ConsecutiveFailures(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	if trig := a.Record(rec("goroutines", false)); trig != nil {
		t.Fatalf("first failure fired %v, want nil", trig.Kind)
	}
	trig := a.Record(rec("goroutines", false))
	if trig == nil {
		t.Fatal("second consecutive failure fired no trigger")
	}
	if trig.Kind != ConsecutiveFailure {
		t.Errorf("Kind = %v, want %v", trig.Kind, ConsecutiveFailure)
	}
	if trig.Topic != "goroutines" {
		t.Errorf("Topic = %q, want %q", trig.Topic, "goroutines")
	}
}

func TestRecord_FailuresOnDifferentTopicsDoNotAccumulate(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	a.Record(rec("goroutines", false))
	if trig := a.Record(rec("channels", false)); trig != nil {
		t.Errorf("failure on a different topic fired %v, want nil", trig.Kind)
	}
}

func TestRecord_ConsecutiveSuccesses(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	a.Record(rec("slices", true))
	a.Record(rec("slices", true))
	trig := a.Record(rec("slices", true))
	if trig == nil {
		t.Fatal("third consecutive success fired no trigger")
	}
	if trig.Kind != ConsecutiveSuccess {
		t.Errorf("Kind = %v, want %v", trig.Kind, ConsecutiveSuccess)
	}
}

func TestTriggerKind_String(t *testing.T) {
	// These names are the persisted audit vocabulary and the replay key.
	want := map[TriggerKind]string{
		ConsecutiveFailure: "consecutive_failure",
		ConsecutiveSuccess: "consecutive_success",
		LowCompletionRate:  "low_rate",
		HighCompletionRate: "high_rate",
	}
	for kind, name := range want {
		if got := kind.String(); got != name {
			t.Errorf("%d.String() = %q, want %q", kind, got, name)
		}
	}
}

func TestRecord_FailureResetsSuccessStreak(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	a.Record(rec("closures", true))
	a.Record(rec("closures", true))
	a.Record(rec("closures", true))
	if trig := a.Record(rec("closures", false)); trig != nil {
		t.Errorf("single failure after a success run fired %v, want nil", trig.Kind)
	}

	s := a.StatsFor("closures")
	if s.ConsecutiveSuccesses != 0 {
		t.Errorf("ConsecutiveSuccesses = %d, want 0 after failure", s.ConsecutiveSuccesses)
	}
	if s.ConsecutiveFailures != 1 {
		t.Errorf("ConsecutiveFailures = %d, want 1", s.ConsecutiveFailures)
	}
}

func TestRecord_SuccessResetsFailureStreak(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	a.Record(rec("maps", false))
	a.Record(rec("maps", true))
	if trig := a.Record(rec("maps", false)); trig != nil {
		t.Errorf("interrupted failure streak fired %v, want nil", trig.Kind)
	}
	s := a.StatsFor("maps")
	if s.ConsecutiveFailures != 1 {
		t.Errorf("ConsecutiveFailures = %d, want 1", s.ConsecutiveFailures)
	}
	if s.ConsecutiveSuccesses != 0 {
		t.Errorf("ConsecutiveSuccesses = %d, want 0", s.ConsecutiveSuccesses)
	}
}

func TestRecord_LowRateRequiresFullWindow(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	// Alternate pass and fail so no streak ever forms. The rate sits
	// at 0.5 the whole time but must not fire until ten outcomes are
	// in the window.
	for i := 0; i < 9; i++ {
		trig := a.Record(rec("interfaces", i%2 == 0))
		if trig != nil {
			t.Fatalf("record %d fired %v before the window filled", i+1, trig.Kind)
		}
	}
	trig := a.Record(rec("interfaces", false))
	if trig == nil {
		t.Fatal("full window at 0.5 success rate fired no trigger")
	}
	if trig.Kind != LowCompletionRate {
		t.Errorf("Kind = %v, want %v", trig.Kind, LowCompletionRate)
	}
	if trig.Rate != 0.5 {
		t.Errorf("Rate = %v, want 0.5", trig.Rate)
	}
}

func TestRecord_HighRate(t *testing.T) {
	a := NewAnalyzer(Config{WindowSize: 10, SuccessStreak: 100})

	for i := 0; i < 9; i++ {
		a.Record(rec("errors", true))
	}
	// 10 of 10 passed, streak trigger suppressed by the high streak
	// threshold, so the window rule is what fires.
	trig := a.Record(rec("errors", true))
	if trig == nil {
		t.Fatal("full window at 1.0 success rate fired no trigger")
	}
	if trig.Kind != HighCompletionRate {
		t.Errorf("Kind = %v, want %v", trig.Kind, HighCompletionRate)
	}
}

func TestRecord_FailureStreakOutranksLowRate(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	// Fill the window alternating so it ends on a single failure,
	// then fail once more. Both the streak rule and the low-rate rule
	// now hold; the streak must win.
	for i := 0; i < 10; i++ {
		a.Record(rec("generics", i%2 == 0))
	}
	trig := a.Record(rec("generics", false))
	if trig == nil {
		t.Fatal("no trigger fired")
	}
	if trig.Kind != ConsecutiveFailure {
		t.Errorf("Kind = %v, want %v", trig.Kind, ConsecutiveFailure)
	}
}

func TestRecord_WindowSlides(t *testing.T) {
	a := NewAnalyzer(Config{WindowSize: 4, SuccessStreak: 100, FailureStreak: 100})

	a.Record(rec("testing", false))
	a.Record(rec("testing", false))
	a.Record(rec("testing", true))
	a.Record(rec("testing", true))
	a.Record(rec("testing", true))
	a.Record(rec("testing", true))

	s := a.StatsFor("testing")
	if s.RollingSuccessRate != 1.0 {
		t.Errorf("RollingSuccessRate = %v, want 1.0 after old failures slid out", s.RollingSuccessRate)
	}
	if s.WindowCount != 4 {
		t.Errorf("WindowCount = %d, want 4", s.WindowCount)
	}
}

func TestStatsFor_UnknownTopic(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	if s := a.StatsFor("nope"); s != nil {
		t.Errorf("StatsFor(unknown) = %v, want nil", s)
	}
}

func TestReplay_RebuildsState(t *testing.T) {
	recs := []curriculum.PerformanceRecord{
		rec("http", true),
		rec("http", false),
		rec("http", false),
		rec("json", true),
	}

	a := NewAnalyzer(DefaultConfig())
	for _, r := range recs {
		a.Record(r)
	}
	b := NewAnalyzer(DefaultConfig())
	b.Replay(recs)

	want := a.StatsFor("http")
	got := b.StatsFor("http")
	if got.ConsecutiveFailures != want.ConsecutiveFailures ||
		got.RollingSuccessRate != want.RollingSuccessRate ||
		got.WindowCount != want.WindowCount {
		t.Errorf("replayed stats = %+v, want %+v", got, want)
	}
	if b.StatsFor("json") == nil {
		t.Error("replay dropped topic json")
	}
}
