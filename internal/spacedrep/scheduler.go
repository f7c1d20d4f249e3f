// Package spacedrep schedules reviews of completed topics along a fixed
// expanding interval ladder. Operations are pure state transitions on
// the scheduler's map; callers drive time explicitly, so everything is
// deterministic and trivially rebuildable from the outcome log.
package spacedrep

import (
	"sort"
	"time"
)

// Scheduler maintains the per-topic review schedule.
type Scheduler struct {
	entries map[string]*Entry

	// order preserves topic insertion order for deterministic
	// tie-breaking in DueReviews.
	order []string
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{entries: make(map[string]*Entry)}
}

// OnTopicCompleted creates the schedule entry for a newly completed
// topic: first review one day out, at the bottom of the ladder. If the
// topic is already tracked, the existing entry is returned unchanged.
func (s *Scheduler) OnTopicCompleted(topic string, now time.Time) *Entry {
	if e, ok := s.entries[topic]; ok {
		return e
	}
	e := &Entry{
		Topic:         topic,
		IntervalIndex: 0,
		Anchor:        now,
		NextReview:    now.AddDate(0, 0, Ladder[0]),
		LastReview:    now,
	}
	s.entries[topic] = e
	s.order = append(s.order, topic)
	return e
}

// OnReviewOutcome advances the entry after a review. A pass climbs one
// ladder step (capped at the top) and schedules the next review at
// anchor plus the new interval, re-anchoring first when that date has
// already passed; a fail resets to the bottom, moves the
// anchor to now, and schedules one day out. Failure is the only
// transition that decreases the interval index. Returns nil for an
// untracked topic.
func (s *Scheduler) OnReviewOutcome(topic string, passed bool, now time.Time) *Entry {
	e, ok := s.entries[topic]
	if !ok {
		return nil
	}

	e.LastReview = now

	if passed {
		if e.IntervalIndex < MaxIntervalIndex {
			e.IntervalIndex++
		}
		next := e.Anchor.AddDate(0, 0, e.IntervalDays())
		// A long-overdue pass re-anchors at the review itself, so the
		// next date lands in the future instead of immediately due.
		if next.Before(now) {
			e.Anchor = now
			next = now.AddDate(0, 0, e.IntervalDays())
		}
		// A success never pulls the review date earlier.
		if next.After(e.NextReview) {
			e.NextReview = next
		}
	} else {
		e.IntervalIndex = 0
		e.Anchor = now
		e.NextReview = now.AddDate(0, 0, Ladder[0])
	}

	return e
}

// DueReviews returns the topics due at asOf, most overdue first, ties
// broken by topic insertion order. Read-only: calling it twice without
// intervening outcomes yields identical output.
func (s *Scheduler) DueReviews(asOf time.Time) []string {
	type due struct {
		topic   string
		overdue float64
		pos     int
	}

	var found []due
	for pos, topic := range s.order {
		e := s.entries[topic]
		if e.IsDue(asOf) {
			found = append(found, due{topic: topic, overdue: e.OverdueDays(asOf), pos: pos})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].overdue != found[j].overdue {
			return found[i].overdue > found[j].overdue
		}
		return found[i].pos < found[j].pos
	})

	out := make([]string, len(found))
	for i, d := range found {
		out[i] = d.topic
	}
	return out
}

// Entry returns the schedule entry for a topic, or nil if untracked.
func (s *Scheduler) Entry(topic string) *Entry {
	return s.entries[topic]
}

// Len returns the number of tracked topics.
func (s *Scheduler) Len() int {
	return len(s.entries)
}
