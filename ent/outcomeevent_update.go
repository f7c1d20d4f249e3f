// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathwise/pathwise/ent/outcomeevent"
	"github.com/pathwise/pathwise/ent/predicate"
)

// OutcomeEventUpdate is the builder for updating OutcomeEvent entities.
type OutcomeEventUpdate struct {
	config
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// Where appends a list predicates to the OutcomeEventUpdate builder.
func (_u *OutcomeEventUpdate) Where(ps ...predicate.OutcomeEvent) *OutcomeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *OutcomeEventUpdate) SetLearnerID(v string) *OutcomeEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableLearnerID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *OutcomeEventUpdate) SetTopic(v string) *OutcomeEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableTopic(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *OutcomeEventUpdate) SetTaskID(v string) *OutcomeEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableTaskID(v *string) *OutcomeEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *OutcomeEventUpdate) SetPassed(v bool) *OutcomeEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillablePassed(v *bool) *OutcomeEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *OutcomeEventUpdate) SetScore(v float64) *OutcomeEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableScore(v *float64) *OutcomeEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *OutcomeEventUpdate) AddScore(v float64) *OutcomeEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *OutcomeEventUpdate) SetTimeSpentMinutes(v int) *OutcomeEventUpdate {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *OutcomeEventUpdate) SetNillableTimeSpentMinutes(v *int) *OutcomeEventUpdate {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *OutcomeEventUpdate) AddTimeSpentMinutes(v int) *OutcomeEventUpdate {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_u *OutcomeEventUpdate) Mutation() *OutcomeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutcomeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutcomeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := outcomeevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := outcomeevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := outcomeevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.task_id": %w`, err)}
		}
	}
	return nil
}

func (_u *OutcomeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(outcomeevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(outcomeevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(outcomeevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(outcomeevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(outcomeevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(outcomeevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutcomeEventUpdateOne is the builder for updating a single OutcomeEvent entity.
type OutcomeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *OutcomeEventUpdateOne) SetLearnerID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableLearnerID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *OutcomeEventUpdateOne) SetTopic(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableTopic(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *OutcomeEventUpdateOne) SetTaskID(v string) *OutcomeEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableTaskID(v *string) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *OutcomeEventUpdateOne) SetPassed(v bool) *OutcomeEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillablePassed(v *bool) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *OutcomeEventUpdateOne) SetScore(v float64) *OutcomeEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableScore(v *float64) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *OutcomeEventUpdateOne) AddScore(v float64) *OutcomeEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *OutcomeEventUpdateOne) SetTimeSpentMinutes(v int) *OutcomeEventUpdateOne {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *OutcomeEventUpdateOne) SetNillableTimeSpentMinutes(v *int) *OutcomeEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *OutcomeEventUpdateOne) AddTimeSpentMinutes(v int) *OutcomeEventUpdateOne {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_u *OutcomeEventUpdateOne) Mutation() *OutcomeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutcomeEventUpdate builder.
func (_u *OutcomeEventUpdateOne) Where(ps ...predicate.OutcomeEvent) *OutcomeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutcomeEventUpdateOne) Select(field string, fields ...string) *OutcomeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutcomeEvent entity.
func (_u *OutcomeEventUpdateOne) Save(ctx context.Context) (*OutcomeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeEventUpdateOne) SaveX(ctx context.Context) *OutcomeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutcomeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := outcomeevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := outcomeevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := outcomeevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.task_id": %w`, err)}
		}
	}
	return nil
}

func (_u *OutcomeEventUpdateOne) sqlSave(ctx context.Context) (_node *OutcomeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutcomeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outcomeevent.FieldID)
		for _, f := range fields {
			if !outcomeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outcomeevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(outcomeevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(outcomeevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(outcomeevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(outcomeevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(outcomeevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(outcomeevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	_node = &OutcomeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
