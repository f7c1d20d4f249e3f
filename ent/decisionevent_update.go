// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathwise/pathwise/ent/decisionevent"
	"github.com/pathwise/pathwise/ent/predicate"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecisionID sets the "decision_id" field.
func (_u *DecisionEventUpdate) SetDecisionID(v string) *DecisionEventUpdate {
	_u.mutation.SetDecisionID(v)
	return _u
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableDecisionID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetDecisionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *DecisionEventUpdate) SetLearnerID(v string) *DecisionEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableLearnerID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurriculumID sets the "curriculum_id" field.
func (_u *DecisionEventUpdate) SetCurriculumID(v string) *DecisionEventUpdate {
	_u.mutation.SetCurriculumID(v)
	return _u
}

// SetNillableCurriculumID sets the "curriculum_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableCurriculumID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetCurriculumID(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *DecisionEventUpdate) SetTrigger(v string) *DecisionEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableTrigger(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *DecisionEventUpdate) SetTopic(v string) *DecisionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableTopic(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *DecisionEventUpdate) SetTaskID(v string) *DecisionEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableTaskID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *DecisionEventUpdate) SetAction(v string) *DecisionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableAction(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetClamped sets the "clamped" field.
func (_u *DecisionEventUpdate) SetClamped(v bool) *DecisionEventUpdate {
	_u.mutation.SetClamped(v)
	return _u
}

// SetNillableClamped sets the "clamped" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableClamped(v *bool) *DecisionEventUpdate {
	if v != nil {
		_u.SetClamped(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdate) check() error {
	if v, ok := _u.mutation.DecisionID(); ok {
		if err := decisionevent.DecisionIDValidator(v); err != nil {
			return &ValidationError{Name: "decision_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.decision_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := decisionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurriculumID(); ok {
		if err := decisionevent.CurriculumIDValidator(v); err != nil {
			return &ValidationError{Name: "curriculum_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.curriculum_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := decisionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DecisionID(); ok {
		_spec.SetField(decisionevent.FieldDecisionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(decisionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurriculumID(); ok {
		_spec.SetField(decisionevent.FieldCurriculumID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(decisionevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(decisionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(decisionevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(decisionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Clamped(); ok {
		_spec.SetField(decisionevent.FieldClamped, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetDecisionID sets the "decision_id" field.
func (_u *DecisionEventUpdateOne) SetDecisionID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetDecisionID(v)
	return _u
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableDecisionID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetDecisionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *DecisionEventUpdateOne) SetLearnerID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableLearnerID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurriculumID sets the "curriculum_id" field.
func (_u *DecisionEventUpdateOne) SetCurriculumID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetCurriculumID(v)
	return _u
}

// SetNillableCurriculumID sets the "curriculum_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableCurriculumID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetCurriculumID(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *DecisionEventUpdateOne) SetTrigger(v string) *DecisionEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableTrigger(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *DecisionEventUpdateOne) SetTopic(v string) *DecisionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableTopic(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *DecisionEventUpdateOne) SetTaskID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableTaskID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *DecisionEventUpdateOne) SetAction(v string) *DecisionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableAction(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetClamped sets the "clamped" field.
func (_u *DecisionEventUpdateOne) SetClamped(v bool) *DecisionEventUpdateOne {
	_u.mutation.SetClamped(v)
	return _u
}

// SetNillableClamped sets the "clamped" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableClamped(v *bool) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetClamped(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.DecisionID(); ok {
		if err := decisionevent.DecisionIDValidator(v); err != nil {
			return &ValidationError{Name: "decision_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.decision_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := decisionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurriculumID(); ok {
		if err := decisionevent.CurriculumIDValidator(v); err != nil {
			return &ValidationError{Name: "curriculum_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.curriculum_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := decisionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
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
	if value, ok := _u.mutation.DecisionID(); ok {
		_spec.SetField(decisionevent.FieldDecisionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(decisionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurriculumID(); ok {
		_spec.SetField(decisionevent.FieldCurriculumID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(decisionevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(decisionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(decisionevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(decisionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Clamped(); ok {
		_spec.SetField(decisionevent.FieldClamped, field.TypeBool, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
