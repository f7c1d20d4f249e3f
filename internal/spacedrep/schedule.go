package spacedrep

import "time"

// Ladder is the fixed review interval sequence in days. Index 0 is the
// first review after a topic is completed.
var Ladder = []int{1, 3, 7, 14, 30}

// MaxIntervalIndex is the highest index on the ladder. A topic at the
// top stays there on further successful reviews.
const MaxIntervalIndex = 4

// Entry holds the review schedule state for one topic. Review dates
// are measured from Anchor, the moment the topic was (re)learned, so
// the ladder reads as days since mastery rather than days since the
// last review. A failed review moves the anchor forward.
type Entry struct {
	Topic         string    `json:"topic"`
	IntervalIndex int       `json:"interval_index"`
	Anchor        time.Time `json:"anchor"`
	NextReview    time.Time `json:"next_review"`
	LastReview    time.Time `json:"last_review"`
}

// IsDue reports whether the topic is at or past its review date.
func (e *Entry) IsDue(asOf time.Time) bool {
	return !asOf.Before(e.NextReview)
}

// OverdueDays returns how many days past due the topic is, 0 if not due.
func (e *Entry) OverdueDays(asOf time.Time) float64 {
	if asOf.Before(e.NextReview) {
		return 0
	}
	return asOf.Sub(e.NextReview).Hours() / 24.0
}

// IntervalDays returns the current ladder interval in days.
func (e *Entry) IntervalDays() int {
	if e.IntervalIndex >= len(Ladder) {
		return Ladder[len(Ladder)-1]
	}
	return Ladder[e.IntervalIndex]
}
