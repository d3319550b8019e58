// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/performancestate"
	"github.com/skillissue/engine/ent/predicate"
)

// PerformanceStateDelete is the builder for deleting a PerformanceState entity.
type PerformanceStateDelete struct {
	config
	hooks    []Hook
	mutation *PerformanceStateMutation
}

// Where appends a list predicates to the PerformanceStateDelete builder.
func (_d *PerformanceStateDelete) Where(ps ...predicate.PerformanceState) *PerformanceStateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PerformanceStateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceStateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PerformanceStateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(performancestate.Table, sqlgraph.NewFieldSpec(performancestate.FieldID, field.TypeInt))
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

// PerformanceStateDeleteOne is the builder for deleting a single PerformanceState entity.
type PerformanceStateDeleteOne struct {
	_d *PerformanceStateDelete
}

// Where appends a list predicates to the PerformanceStateDelete builder.
func (_d *PerformanceStateDeleteOne) Where(ps ...predicate.PerformanceState) *PerformanceStateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PerformanceStateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{performancestate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceStateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
