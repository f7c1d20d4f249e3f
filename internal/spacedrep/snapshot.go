package spacedrep

import "time"

// EntryData is the persisted form of one schedule entry.
type EntryData struct {
	Topic         string `json:"topic"`
	IntervalIndex int    `json:"interval_index"`
	Anchor        string `json:"anchor"`
	NextReview    string `json:"next_review"`
	LastReview    string `json:"last_review"`
}

// SnapshotData is the persisted form of the whole schedule. Entries are
// stored as an ordered list so insertion order survives a round trip.
type SnapshotData struct {
	Entries []EntryData `json:"entries"`
}

// Snapshot exports the schedule for persistence.
func (s *Scheduler) Snapshot() *SnapshotData {
	data := &SnapshotData{}
	for _, topic := range s.order {
		e := s.entries[topic]
		data.Entries = append(data.Entries, EntryData{
			Topic:         e.Topic,
			IntervalIndex: e.IntervalIndex,
			Anchor:        e.Anchor.Format(time.RFC3339),
			NextReview:    e.NextReview.Format(time.RFC3339),
			LastReview:    e.LastReview.Format(time.RFC3339),
		})
	}
	return data
}

// FromSnapshot restores a scheduler from persisted data. Entries with
// unparseable dates are skipped rather than failing the whole restore.
func FromSnapshot(data *SnapshotData) *Scheduler {
	s := NewScheduler()
	if data == nil {
		return s
	}
	for _, ed := range data.Entries {
		anchor, err := time.Parse(time.RFC3339, ed.Anchor)
		if err != nil {
			continue
		}
		next, err := time.Parse(time.RFC3339, ed.NextReview)
		if err != nil {
			continue
		}
		last, err := time.Parse(time.RFC3339, ed.LastReview)
		if err != nil {
			continue
		}
		s.entries[ed.Topic] = &Entry{
			Topic:         ed.Topic,
			IntervalIndex: ed.IntervalIndex,
			Anchor:        anchor,
			NextReview:    next,
			LastReview:    last,
		}
		s.order = append(s.order, ed.Topic)
	}
	return s
}
