// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathwise/pathwise/ent/decisionevent"
)

// DecisionEventCreate is the builder for creating a DecisionEvent entity.
type DecisionEventCreate struct {
	config
	mutation *DecisionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DecisionEventCreate) SetSequence(v int64) *DecisionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DecisionEventCreate) SetTimestamp(v time.Time) *DecisionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DecisionEventCreate) SetNillableTimestamp(v *time.Time) *DecisionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDecisionID sets the "decision_id" field.
func (_c *DecisionEventCreate) SetDecisionID(v string) *DecisionEventCreate {
	_c.mutation.SetDecisionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *DecisionEventCreate) SetLearnerID(v string) *DecisionEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetCurriculumID sets the "curriculum_id" field.
func (_c *DecisionEventCreate) SetCurriculumID(v string) *DecisionEventCreate {
	_c.mutation.SetCurriculumID(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *DecisionEventCreate) SetTrigger(v string) *DecisionEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *DecisionEventCreate) SetTopic(v string) *DecisionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *DecisionEventCreate) SetTaskID(v string) *DecisionEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *DecisionEventCreate) SetNillableTaskID(v *string) *DecisionEventCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *DecisionEventCreate) SetAction(v string) *DecisionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetClamped sets the "clamped" field.
func (_c *DecisionEventCreate) SetClamped(v bool) *DecisionEventCreate {
	_c.mutation.SetClamped(v)
	return _c
}

// SetNillableClamped sets the "clamped" field if the given value is not nil.
func (_c *DecisionEventCreate) SetNillableClamped(v *bool) *DecisionEventCreate {
	if v != nil {
		_c.SetClamped(*v)
	}
	return _c
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_c *DecisionEventCreate) Mutation() *DecisionEventMutation {
	return _c.mutation
}

// Save creates the DecisionEvent in the database.
func (_c *DecisionEventCreate) Save(ctx context.Context) (*DecisionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionEventCreate) SaveX(ctx context.Context) *DecisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := decisionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		v := decisionevent.DefaultTaskID
		_c.mutation.SetTaskID(v)
	}
	if _, ok := _c.mutation.Clamped(); !ok {
		v := decisionevent.DefaultClamped
		_c.mutation.SetClamped(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DecisionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DecisionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.DecisionID(); !ok {
		return &ValidationError{Name: "decision_id", err: errors.New(`ent: missing required field "DecisionEvent.decision_id"`)}
	}
	if v, ok := _c.mutation.DecisionID(); ok {
		if err := decisionevent.DecisionIDValidator(v); err != nil {
			return &ValidationError{Name: "decision_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.decision_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "DecisionEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := decisionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurriculumID(); !ok {
		return &ValidationError{Name: "curriculum_id", err: errors.New(`ent: missing required field "DecisionEvent.curriculum_id"`)}
	}
	if v, ok := _c.mutation.CurriculumID(); ok {
		if err := decisionevent.CurriculumIDValidator(v); err != nil {
			return &ValidationError{Name: "curriculum_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.curriculum_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "DecisionEvent.trigger"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "DecisionEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := decisionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "DecisionEvent.task_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "DecisionEvent.action"`)}
	}
	if _, ok := _c.mutation.Clamped(); !ok {
		return &ValidationError{Name: "clamped", err: errors.New(`ent: missing required field "DecisionEvent.clamped"`)}
	}
	return nil
}

func (_c *DecisionEventCreate) sqlSave(ctx context.Context) (*DecisionEvent, error) {
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

func (_c *DecisionEventCreate) createSpec() (*DecisionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DecisionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decisionevent.Table, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(decisionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(decisionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.DecisionID(); ok {
		_spec.SetField(decisionevent.FieldDecisionID, field.TypeString, value)
		_node.DecisionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(decisionevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.CurriculumID(); ok {
		_spec.SetField(decisionevent.FieldCurriculumID, field.TypeString, value)
		_node.CurriculumID = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(decisionevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(decisionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(decisionevent.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(decisionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Clamped(); ok {
		_spec.SetField(decisionevent.FieldClamped, field.TypeBool, value)
		_node.Clamped = value
	}
	return _node, _spec
}

// DecisionEventCreateBulk is the builder for creating many DecisionEvent entities in bulk.
type DecisionEventCreateBulk struct {
	config
	err      error
	builders []*DecisionEventCreate
}

// Save creates the DecisionEvent entities in the database.
func (_c *DecisionEventCreateBulk) Save(ctx context.Context) ([]*DecisionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DecisionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionEventMutation)
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
func (_c *DecisionEventCreateBulk) SaveX(ctx context.Context) []*DecisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
