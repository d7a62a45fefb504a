// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexus-controls/plcforge/ent/generatedcode"
	"github.com/nexus-controls/plcforge/ent/predicate"
)

// GeneratedCodeDelete is the builder for deleting a GeneratedCode entity.
type GeneratedCodeDelete struct {
	config
	hooks    []Hook
	mutation *GeneratedCodeMutation
}

// Where appends a list predicates to the GeneratedCodeDelete builder.
func (_d *GeneratedCodeDelete) Where(ps ...predicate.GeneratedCode) *GeneratedCodeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GeneratedCodeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedCodeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GeneratedCodeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(generatedcode.Table, sqlgraph.NewFieldSpec(generatedcode.FieldID, field.TypeInt))
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

// GeneratedCodeDeleteOne is the builder for deleting a single GeneratedCode entity.
type GeneratedCodeDeleteOne struct {
	_d *GeneratedCodeDelete
}

// Where appends a list predicates to the GeneratedCodeDelete builder.
func (_d *GeneratedCodeDeleteOne) Where(ps ...predicate.GeneratedCode) *GeneratedCodeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GeneratedCodeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{generatedcode.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedCodeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
