// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathwise/pathwise/ent/outcomeevent"
)

// OutcomeEventCreate is the builder for creating a OutcomeEvent entity.
type OutcomeEventCreate struct {
	config
	mutation *OutcomeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *OutcomeEventCreate) SetSequence(v int64) *OutcomeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *OutcomeEventCreate) SetTimestamp(v time.Time) *OutcomeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *OutcomeEventCreate) SetNillableTimestamp(v *time.Time) *OutcomeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *OutcomeEventCreate) SetLearnerID(v string) *OutcomeEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *OutcomeEventCreate) SetTopic(v string) *OutcomeEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *OutcomeEventCreate) SetTaskID(v string) *OutcomeEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *OutcomeEventCreate) SetPassed(v bool) *OutcomeEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *OutcomeEventCreate) SetScore(v float64) *OutcomeEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *OutcomeEventCreate) SetNillableScore(v *float64) *OutcomeEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_c *OutcomeEventCreate) SetTimeSpentMinutes(v int) *OutcomeEventCreate {
	_c.mutation.SetTimeSpentMinutes(v)
	return _c
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_c *OutcomeEventCreate) SetNillableTimeSpentMinutes(v *int) *OutcomeEventCreate {
	if v != nil {
		_c.SetTimeSpentMinutes(*v)
	}
	return _c
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_c *OutcomeEventCreate) Mutation() *OutcomeEventMutation {
	return _c.mutation
}

// Save creates the OutcomeEvent in the database.
func (_c *OutcomeEventCreate) Save(ctx context.Context) (*OutcomeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutcomeEventCreate) SaveX(ctx context.Context) *OutcomeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutcomeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := outcomeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := outcomeevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		v := outcomeevent.DefaultTimeSpentMinutes
		_c.mutation.SetTimeSpentMinutes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutcomeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OutcomeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "OutcomeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "OutcomeEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := outcomeevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "OutcomeEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := outcomeevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "OutcomeEvent.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := outcomeevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "OutcomeEvent.passed"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "OutcomeEvent.score"`)}
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		return &ValidationError{Name: "time_spent_minutes", err: errors.New(`ent: missing required field "OutcomeEvent.time_spent_minutes"`)}
	}
	return nil
}

func (_c *OutcomeEventCreate) sqlSave(ctx context.Context) (*OutcomeEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutcomeEventCreate) createSpec() (*OutcomeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OutcomeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outcomeevent.Table, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(outcomeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(outcomeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(outcomeevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(outcomeevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(outcomeevent.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(outcomeevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(outcomeevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
		_node.TimeSpentMinutes = value
	}
	return _node, _spec
}

// OutcomeEventCreateBulk is the builder for creating many OutcomeEvent entities in bulk.
type OutcomeEventCreateBulk struct {
	config
	err      error
	builders []*OutcomeEventCreate
}

// Save creates the OutcomeEvent entities in the database.
func (_c *OutcomeEventCreateBulk) Save(ctx context.Context) ([]*OutcomeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutcomeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutcomeEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OutcomeEventCreateBulk) SaveX(ctx context.Context) []*OutcomeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
