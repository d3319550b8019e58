// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/executiontraceevent"
	"github.com/skillissue/engine/ent/predicate"
)

// ExecutionTraceEventDelete is the builder for deleting a ExecutionTraceEvent entity.
type ExecutionTraceEventDelete struct {
	config
	hooks    []Hook
	mutation *ExecutionTraceEventMutation
}

// Where appends a list predicates to the ExecutionTraceEventDelete builder.
func (_d *ExecutionTraceEventDelete) Where(ps ...predicate.ExecutionTraceEvent) *ExecutionTraceEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExecutionTraceEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExecutionTraceEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExecutionTraceEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(executiontraceevent.Table, sqlgraph.NewFieldSpec(executiontraceevent.FieldID, field.TypeInt))
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

// ExecutionTraceEventDeleteOne is the builder for deleting a single ExecutionTraceEvent entity.
type ExecutionTraceEventDeleteOne struct {
	_d *ExecutionTraceEventDelete
}

// Where appends a list predicates to the ExecutionTraceEventDelete builder.
func (_d *ExecutionTraceEventDeleteOne) Where(ps ...predicate.ExecutionTraceEvent) *ExecutionTraceEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExecutionTraceEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{executiontraceevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExecutionTraceEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
