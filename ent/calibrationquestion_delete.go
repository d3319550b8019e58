// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/calibrationquestion"
	"github.com/skillissue/engine/ent/predicate"
)

// CalibrationQuestionDelete is the builder for deleting a CalibrationQuestion entity.
type CalibrationQuestionDelete struct {
	config
	hooks    []Hook
	mutation *CalibrationQuestionMutation
}

// Where appends a list predicates to the CalibrationQuestionDelete builder.
func (_d *CalibrationQuestionDelete) Where(ps ...predicate.CalibrationQuestion) *CalibrationQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CalibrationQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalibrationQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CalibrationQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(calibrationquestion.Table, sqlgraph.NewFieldSpec(calibrationquestion.FieldID, field.TypeInt))
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

// CalibrationQuestionDeleteOne is the builder for deleting a single CalibrationQuestion entity.
type CalibrationQuestionDeleteOne struct {
	_d *CalibrationQuestionDelete
}

// Where appends a list predicates to the CalibrationQuestionDelete builder.
func (_d *CalibrationQuestionDeleteOne) Where(ps ...predicate.CalibrationQuestion) *CalibrationQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CalibrationQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{calibrationquestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalibrationQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
