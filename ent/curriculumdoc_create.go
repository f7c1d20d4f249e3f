// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathwise/pathwise/ent/curriculumdoc"
)

// CurriculumDocCreate is the builder for creating a CurriculumDoc entity.
type CurriculumDocCreate struct {
	config
	mutation *CurriculumDocMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *CurriculumDocCreate) SetLearnerID(v string) *CurriculumDocCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetCurriculumID sets the "curriculum_id" field.
func (_c *CurriculumDocCreate) SetCurriculumID(v string) *CurriculumDocCreate {
	_c.mutation.SetCurriculumID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *CurriculumDocCreate) SetVersion(v int64) *CurriculumDocCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CurriculumDocCreate) SetNillableVersion(v *int64) *CurriculumDocCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *CurriculumDocCreate) SetData(v map[string]interface{}) *CurriculumDocCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CurriculumDocCreate) SetUpdatedAt(v time.Time) *CurriculumDocCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CurriculumDocCreate) SetNillableUpdatedAt(v *time.Time) *CurriculumDocCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CurriculumDocMutation object of the builder.
func (_c *CurriculumDocCreate) Mutation() *CurriculumDocMutation {
	return _c.mutation
}

// Save creates the CurriculumDoc in the database.
func (_c *CurriculumDocCreate) Save(ctx context.Context) (*CurriculumDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CurriculumDocCreate) SaveX(ctx context.Context) *CurriculumDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CurriculumDocCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := curriculumdoc.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := curriculumdoc.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CurriculumDocCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "CurriculumDoc.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := curriculumdoc.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumDoc.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurriculumID(); !ok {
		return &ValidationError{Name: "curriculum_id", err: errors.New(`ent: missing required field "CurriculumDoc.curriculum_id"`)}
	}
	if v, ok := _c.mutation.CurriculumID(); ok {
		if err := curriculumdoc.CurriculumIDValidator(v); err != nil {
			return &ValidationError{Name: "curriculum_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumDoc.curriculum_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CurriculumDoc.version"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "CurriculumDoc.data"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CurriculumDoc.updated_at"`)}
	}
	return nil
}

func (_c *CurriculumDocCreate) sqlSave(ctx context.Context) (*CurriculumDoc, error) {
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

func (_c *CurriculumDocCreate) createSpec() (*CurriculumDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &CurriculumDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(curriculumdoc.Table, sqlgraph.NewFieldSpec(curriculumdoc.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(curriculumdoc.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.CurriculumID(); ok {
		_spec.SetField(curriculumdoc.FieldCurriculumID, field.TypeString, value)
		_node.CurriculumID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(curriculumdoc.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(curriculumdoc.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculumdoc.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CurriculumDocCreateBulk is the builder for creating many CurriculumDoc entities in bulk.
type CurriculumDocCreateBulk struct {
	config
	err      error
	builders []*CurriculumDocCreate
}

// Save creates the CurriculumDoc entities in the database.
func (_c *CurriculumDocCreateBulk) Save(ctx context.Context) ([]*CurriculumDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CurriculumDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CurriculumDocMutation)
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
func (_c *CurriculumDocCreateBulk) SaveX(ctx context.Context) []*CurriculumDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
