// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathwise/pathwise/ent/curriculumdoc"
	"github.com/pathwise/pathwise/ent/predicate"
)

// CurriculumDocUpdate is the builder for updating CurriculumDoc entities.
type CurriculumDocUpdate struct {
	config
	hooks    []Hook
	mutation *CurriculumDocMutation
}

// Where appends a list predicates to the CurriculumDocUpdate builder.
func (_u *CurriculumDocUpdate) Where(ps ...predicate.CurriculumDoc) *CurriculumDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *CurriculumDocUpdate) SetLearnerID(v string) *CurriculumDocUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *CurriculumDocUpdate) SetNillableLearnerID(v *string) *CurriculumDocUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurriculumID sets the "curriculum_id" field.
func (_u *CurriculumDocUpdate) SetCurriculumID(v string) *CurriculumDocUpdate {
	_u.mutation.SetCurriculumID(v)
	return _u
}

// SetNillableCurriculumID sets the "curriculum_id" field if the given value is not nil.
func (_u *CurriculumDocUpdate) SetNillableCurriculumID(v *string) *CurriculumDocUpdate {
	if v != nil {
		_u.SetCurriculumID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *CurriculumDocUpdate) SetVersion(v int64) *CurriculumDocUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CurriculumDocUpdate) SetNillableVersion(v *int64) *CurriculumDocUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CurriculumDocUpdate) AddVersion(v int64) *CurriculumDocUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetData sets the "data" field.
func (_u *CurriculumDocUpdate) SetData(v map[string]interface{}) *CurriculumDocUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CurriculumDocUpdate) SetUpdatedAt(v time.Time) *CurriculumDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CurriculumDocMutation object of the builder.
func (_u *CurriculumDocUpdate) Mutation() *CurriculumDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CurriculumDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CurriculumDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CurriculumDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := curriculumdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurriculumDocUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := curriculumdoc.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumDoc.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurriculumID(); ok {
		if err := curriculumdoc.CurriculumIDValidator(v); err != nil {
			return &ValidationError{Name: "curriculum_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumDoc.curriculum_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CurriculumDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curriculumdoc.Table, curriculumdoc.Columns, sqlgraph.NewFieldSpec(curriculumdoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(curriculumdoc.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurriculumID(); ok {
		_spec.SetField(curriculumdoc.FieldCurriculumID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(curriculumdoc.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(curriculumdoc.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(curriculumdoc.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculumdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculumdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CurriculumDocUpdateOne is the builder for updating a single CurriculumDoc entity.
type CurriculumDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CurriculumDocMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *CurriculumDocUpdateOne) SetLearnerID(v string) *CurriculumDocUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *CurriculumDocUpdateOne) SetNillableLearnerID(v *string) *CurriculumDocUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurriculumID sets the "curriculum_id" field.
func (_u *CurriculumDocUpdateOne) SetCurriculumID(v string) *CurriculumDocUpdateOne {
	_u.mutation.SetCurriculumID(v)
	return _u
}

// SetNillableCurriculumID sets the "curriculum_id" field if the given value is not nil.
func (_u *CurriculumDocUpdateOne) SetNillableCurriculumID(v *string) *CurriculumDocUpdateOne {
	if v != nil {
		_u.SetCurriculumID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *CurriculumDocUpdateOne) SetVersion(v int64) *CurriculumDocUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CurriculumDocUpdateOne) SetNillableVersion(v *int64) *CurriculumDocUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CurriculumDocUpdateOne) AddVersion(v int64) *CurriculumDocUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetData sets the "data" field.
func (_u *CurriculumDocUpdateOne) SetData(v map[string]interface{}) *CurriculumDocUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CurriculumDocUpdateOne) SetUpdatedAt(v time.Time) *CurriculumDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CurriculumDocMutation object of the builder.
func (_u *CurriculumDocUpdateOne) Mutation() *CurriculumDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the CurriculumDocUpdate builder.
func (_u *CurriculumDocUpdateOne) Where(ps ...predicate.CurriculumDoc) *CurriculumDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CurriculumDocUpdateOne) Select(field string, fields ...string) *CurriculumDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CurriculumDoc entity.
func (_u *CurriculumDocUpdateOne) Save(ctx context.Context) (*CurriculumDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumDocUpdateOne) SaveX(ctx context.Context) *CurriculumDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CurriculumDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CurriculumDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := curriculumdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurriculumDocUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := curriculumdoc.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumDoc.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurriculumID(); ok {
		if err := curriculumdoc.CurriculumIDValidator(v); err != nil {
			return &ValidationError{Name: "curriculum_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumDoc.curriculum_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CurriculumDocUpdateOne) sqlSave(ctx context.Context) (_node *CurriculumDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curriculumdoc.Table, curriculumdoc.Columns, sqlgraph.NewFieldSpec(curriculumdoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CurriculumDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, curriculumdoc.FieldID)
		for _, f := range fields {
			if !curriculumdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != curriculumdoc.FieldID {
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
		_spec.SetField(curriculumdoc.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurriculumID(); ok {
		_spec.SetField(curriculumdoc.FieldCurriculumID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(curriculumdoc.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(curriculumdoc.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(curriculumdoc.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculumdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CurriculumDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculumdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
