// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/calibrationanswer"
	"github.com/skillissue/engine/ent/predicate"
)

// CalibrationAnswerUpdate is the builder for updating CalibrationAnswer entities.
type CalibrationAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *CalibrationAnswerMutation
}

// Where appends a list predicates to the CalibrationAnswerUpdate builder.
func (_u *CalibrationAnswerUpdate) Where(ps ...predicate.CalibrationAnswer) *CalibrationAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CalibrationAnswerMutation object of the builder.
func (_u *CalibrationAnswerUpdate) Mutation() *CalibrationAnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalibrationAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalibrationAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalibrationAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalibrationAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalibrationAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(calibrationanswer.Table, calibrationanswer.Columns, sqlgraph.NewFieldSpec(calibrationanswer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ResponseTimeMsCleared() {
		_spec.ClearField(calibrationanswer.FieldResponseTimeMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibrationanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalibrationAnswerUpdateOne is the builder for updating a single CalibrationAnswer entity.
type CalibrationAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalibrationAnswerMutation
}

// Mutation returns the CalibrationAnswerMutation object of the builder.
func (_u *CalibrationAnswerUpdateOne) Mutation() *CalibrationAnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalibrationAnswerUpdate builder.
func (_u *CalibrationAnswerUpdateOne) Where(ps ...predicate.CalibrationAnswer) *CalibrationAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalibrationAnswerUpdateOne) Select(field string, fields ...string) *CalibrationAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalibrationAnswer entity.
func (_u *CalibrationAnswerUpdateOne) Save(ctx context.Context) (*CalibrationAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalibrationAnswerUpdateOne) SaveX(ctx context.Context) *CalibrationAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalibrationAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalibrationAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalibrationAnswerUpdateOne) sqlSave(ctx context.Context) (_node *CalibrationAnswer, err error) {
	_spec := sqlgraph.NewUpdateSpec(calibrationanswer.Table, calibrationanswer.Columns, sqlgraph.NewFieldSpec(calibrationanswer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalibrationAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calibrationanswer.FieldID)
		for _, f := range fields {
			if !calibrationanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calibrationanswer.FieldID {
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
	if _u.mutation.ResponseTimeMsCleared() {
		_spec.ClearField(calibrationanswer.FieldResponseTimeMs, field.TypeInt64)
	}
	_node = &CalibrationAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibrationanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
