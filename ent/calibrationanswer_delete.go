// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/calibrationanswer"
	"github.com/skillissue/engine/ent/predicate"
)

// CalibrationAnswerDelete is the builder for deleting a CalibrationAnswer entity.
type CalibrationAnswerDelete struct {
	config
	hooks    []Hook
	mutation *CalibrationAnswerMutation
}

// Where appends a list predicates to the CalibrationAnswerDelete builder.
func (_d *CalibrationAnswerDelete) Where(ps ...predicate.CalibrationAnswer) *CalibrationAnswerDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CalibrationAnswerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalibrationAnswerDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CalibrationAnswerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(calibrationanswer.Table, sqlgraph.NewFieldSpec(calibrationanswer.FieldID, field.TypeInt))
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

// CalibrationAnswerDeleteOne is the builder for deleting a single CalibrationAnswer entity.
type CalibrationAnswerDeleteOne struct {
	_d *CalibrationAnswerDelete
}

// Where appends a list predicates to the CalibrationAnswerDelete builder.
func (_d *CalibrationAnswerDeleteOne) Where(ps ...predicate.CalibrationAnswer) *CalibrationAnswerDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CalibrationAnswerDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{calibrationanswer.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalibrationAnswerDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
