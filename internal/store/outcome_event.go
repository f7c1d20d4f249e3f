package store

import (
	"context"
	"fmt"

	"github.com/pathwise/pathwise/ent"
	"github.com/pathwise/pathwise/ent/outcomeevent"
	"github.com/pathwise/pathwise/internal/curriculum"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendOutcome(ctx context.Context, data OutcomeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	rec := data.Record
	builder := r.client.OutcomeEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetTopic(rec.Topic).
		SetTaskID(rec.TaskID).
		SetPassed(rec.Passed).
		SetScore(rec.Score).
		SetTimeSpentMinutes(rec.TimeSpentMinutes)
	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save outcome event: %w", err)
	}
	return nil
}

func (r *eventRepo) Outcomes(ctx context.Context, learnerID string, opts QueryOpts) ([]curriculum.PerformanceRecord, error) {
	q := r.client.OutcomeEvent.Query().
		Where(outcomeevent.LearnerID(learnerID)).
		Order(ent.Asc(outcomeevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(outcomeevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query outcome events: %w", err)
	}

	out := make([]curriculum.PerformanceRecord, len(events))
	for i, e := range events {
		out[i] = curriculum.PerformanceRecord{
			Topic:            e.Topic,
			TaskID:           e.TaskID,
			Passed:           e.Passed,
			Score:            e.Score,
			TimeSpentMinutes: e.TimeSpentMinutes,
			Timestamp:        e.Timestamp,
		}
	}
	return out, nil
}
