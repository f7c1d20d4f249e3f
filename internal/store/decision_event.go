package store

import (
	"context"
	"fmt"

	"github.com/pathwise/pathwise/ent"
	"github.com/pathwise/pathwise/ent/decisionevent"
)

func (r *eventRepo) AppendDecision(ctx context.Context, data DecisionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DecisionEvent.Create().
		SetSequence(seqNum).
		SetDecisionID(data.DecisionID).
		SetLearnerID(data.LearnerID).
		SetCurriculumID(data.CurriculumID).
		SetTrigger(data.Trigger).
		SetTopic(data.Topic).
		SetTaskID(data.TaskID).
		SetAction(data.Action).
		SetClamped(data.Clamped).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save decision event: %w", err)
	}
	return nil
}

func (r *eventRepo) Decisions(ctx context.Context, learnerID string, opts QueryOpts) ([]DecisionRecord, error) {
	q := r.client.DecisionEvent.Query().
		Where(decisionevent.LearnerID(learnerID)).
		Order(ent.Asc(decisionevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(decisionevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decision events: %w", err)
	}

	out := make([]DecisionRecord, len(events))
	for i, e := range events {
		out[i] = DecisionRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			DecisionEventData: DecisionEventData{
				DecisionID:   e.DecisionID,
				LearnerID:    e.LearnerID,
				CurriculumID: e.CurriculumID,
				Trigger:      e.Trigger,
				Topic:        e.Topic,
				TaskID:       e.TaskID,
				Action:       e.Action,
				Clamped:      e.Clamped,
			},
		}
	}
	return out, nil
}
