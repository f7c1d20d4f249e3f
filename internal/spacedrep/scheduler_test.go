package spacedrep

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestOnTopicCompleted_FirstReviewOneDayOut(t *testing.T) {
	s := NewScheduler()
	e := s.OnTopicCompleted("closures", day(0))

	if e.IntervalIndex != 0 {
		t.Errorf("IntervalIndex = %d, want 0", e.IntervalIndex)
	}
	if !e.NextReview.Equal(day(1)) {
		t.Errorf("NextReview = %v, want %v", e.NextReview, day(1))
	}
}

func TestOnTopicCompleted_Idempotent(t *testing.T) {
	s := NewScheduler()
	first := s.OnTopicCompleted("closures", day(0))
	s.OnReviewOutcome("closures", true, day(1))
	again := s.OnTopicCompleted("closures", day(5))

	if again != first {
		t.Error("second completion replaced the entry")
	}
	if again.IntervalIndex != 1 {
		t.Errorf("IntervalIndex = %d, want 1 (preserved)", again.IntervalIndex)
	}
}

func TestOnReviewOutcome_PassClimbsLadder(t *testing.T) {
	// Completed day 0, reviewed successfully day 1: index 0 -> 1,
	// next review 3 days after completion.
	s := NewScheduler()
	s.OnTopicCompleted("closures", day(0))
	e := s.OnReviewOutcome("closures", true, day(1))

	if e.IntervalIndex != 1 {
		t.Errorf("IntervalIndex = %d, want 1", e.IntervalIndex)
	}
	if !e.NextReview.Equal(day(3)) {
		t.Errorf("NextReview = %v, want %v", e.NextReview, day(3))
	}
}

func TestOnReviewOutcome_CappedAtTop(t *testing.T) {
	s := NewScheduler()
	s.OnTopicCompleted("closures", day(0))

	now := day(0)
	for i := range 7 {
		now = now.AddDate(0, 0, Ladder[min(i, MaxIntervalIndex)])
		s.OnReviewOutcome("closures", true, now)
	}

	e := s.Entry("closures")
	if e.IntervalIndex != MaxIntervalIndex {
		t.Errorf("IntervalIndex = %d, want %d", e.IntervalIndex, MaxIntervalIndex)
	}
	if got := e.IntervalDays(); got != 30 {
		t.Errorf("IntervalDays() = %d, want 30", got)
	}
}

func TestOnReviewOutcome_OverduePassSchedulesForward(t *testing.T) {
	// Completed day 0, passed day 1 (next = day 3), then the learner
	// disappears until day 20. The anchor-based date (day 7) is long
	// gone, so the pass re-anchors and the next review lands day 27.
	s := NewScheduler()
	s.OnTopicCompleted("closures", day(0))
	s.OnReviewOutcome("closures", true, day(1))

	e := s.OnReviewOutcome("closures", true, day(20))
	if e.IntervalIndex != 2 {
		t.Errorf("IntervalIndex = %d, want 2", e.IntervalIndex)
	}
	if !e.NextReview.Equal(day(27)) {
		t.Errorf("NextReview = %v, want %v", e.NextReview, day(27))
	}
	if e.NextReview.Before(day(20)) {
		t.Errorf("NextReview = %v is before the review itself", e.NextReview)
	}
}

func TestOnReviewOutcome_FailResetsToBottom(t *testing.T) {
	s := NewScheduler()
	s.OnTopicCompleted("closures", day(0))
	s.OnReviewOutcome("closures", true, day(1))
	s.OnReviewOutcome("closures", true, day(4))

	e := s.OnReviewOutcome("closures", false, day(11))
	if e.IntervalIndex != 0 {
		t.Errorf("IntervalIndex = %d, want 0 after failure", e.IntervalIndex)
	}
	if !e.NextReview.Equal(day(12)) {
		t.Errorf("NextReview = %v, want %v", e.NextReview, day(12))
	}
}

func TestOnReviewOutcome_SuccessNeverMovesReviewEarlier(t *testing.T) {
	s := NewScheduler()
	s.OnTopicCompleted("closures", day(0))
	s.OnReviewOutcome("closures", true, day(1)) // next = day 3

	before := s.Entry("closures").NextReview

	// Re-reviewing the same day climbs another rung, which can only
	// push the date out, never back.
	e := s.OnReviewOutcome("closures", true, day(1))
	if e.NextReview.Before(before) {
		t.Errorf("NextReview moved earlier: %v -> %v", before, e.NextReview)
	}
}

func TestOnReviewOutcome_UntrackedTopic(t *testing.T) {
	s := NewScheduler()
	if e := s.OnReviewOutcome("ghost", true, day(0)); e != nil {
		t.Errorf("OnReviewOutcome(untracked) = %+v, want nil", e)
	}
}

func TestDueReviews_MostOverdueFirst(t *testing.T) {
	s := NewScheduler()
	s.OnTopicCompleted("a", day(0)) // due day 1
	s.OnTopicCompleted("b", day(2)) // due day 3
	s.OnTopicCompleted("c", day(4)) // due day 5

	got := s.DueReviews(day(6))
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("DueReviews = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DueReviews[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDueReviews_TiesBrokenByInsertionOrder(t *testing.T) {
	s := NewScheduler()
	s.OnTopicCompleted("zebra", day(0))
	s.OnTopicCompleted("apple", day(0))

	got := s.DueReviews(day(2))
	if len(got) != 2 || got[0] != "zebra" || got[1] != "apple" {
		t.Errorf("DueReviews = %v, want [zebra apple] (insertion order, not alphabetical)", got)
	}
}

func TestDueReviews_Idempotent(t *testing.T) {
	s := NewScheduler()
	s.OnTopicCompleted("a", day(0))
	s.OnTopicCompleted("b", day(0))

	first := s.DueReviews(day(3))
	second := s.DueReviews(day(3))
	if len(first) != len(second) {
		t.Fatalf("repeated DueReviews differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("repeated DueReviews differ at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestDueReviews_ExcludesNotYetDue(t *testing.T) {
	s := NewScheduler()
	s.OnTopicCompleted("a", day(0))
	s.OnReviewOutcome("a", true, day(1)) // next = day 3

	if got := s.DueReviews(day(2)); len(got) != 0 {
		t.Errorf("DueReviews = %v, want empty", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := NewScheduler()
	s.OnTopicCompleted("zebra", day(0))
	s.OnTopicCompleted("apple", day(0))
	s.OnReviewOutcome("zebra", true, day(1))

	restored := FromSnapshot(s.Snapshot())

	if restored.Len() != 2 {
		t.Fatalf("restored %d entries, want 2", restored.Len())
	}
	e := restored.Entry("zebra")
	if e == nil || e.IntervalIndex != 1 {
		t.Errorf("zebra entry = %+v, want IntervalIndex 1", e)
	}

	// Insertion order must survive persistence.
	a, b := s.DueReviews(day(40)), restored.DueReviews(day(40))
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("due order changed after round trip: %v vs %v", a, b)
		}
	}
}
