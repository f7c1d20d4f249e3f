// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathwise/pathwise/ent/curriculumdoc"
	"github.com/pathwise/pathwise/ent/predicate"
)

// CurriculumDocDelete is the builder for deleting a CurriculumDoc entity.
type CurriculumDocDelete struct {
	config
	hooks    []Hook
	mutation *CurriculumDocMutation
}

// Where appends a list predicates to the CurriculumDocDelete builder.
func (_d *CurriculumDocDelete) Where(ps ...predicate.CurriculumDoc) *CurriculumDocDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CurriculumDocDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CurriculumDocDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CurriculumDocDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(curriculumdoc.Table, sqlgraph.NewFieldSpec(curriculumdoc.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CurriculumDocDeleteOne is the builder for deleting a single CurriculumDoc entity.
type CurriculumDocDeleteOne struct {
	_d *CurriculumDocDelete
}

// Where appends a list predicates to the CurriculumDocDelete builder.
func (_d *CurriculumDocDeleteOne) Where(ps ...predicate.CurriculumDoc) *CurriculumDocDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CurriculumDocDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{curriculumdoc.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CurriculumDocDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
