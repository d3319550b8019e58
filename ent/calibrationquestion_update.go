// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/calibrationquestion"
	"github.com/skillissue/engine/ent/predicate"
)

// CalibrationQuestionUpdate is the builder for updating CalibrationQuestion entities.
type CalibrationQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *CalibrationQuestionMutation
}

// Where appends a list predicates to the CalibrationQuestionUpdate builder.
func (_u *CalibrationQuestionUpdate) Where(ps ...predicate.CalibrationQuestion) *CalibrationQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *CalibrationQuestionUpdate) SetQuestion(v string) *CalibrationQuestionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *CalibrationQuestionUpdate) SetNillableQuestion(v *string) *CalibrationQuestionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *CalibrationQuestionUpdate) SetOptions(v []string) *CalibrationQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *CalibrationQuestionUpdate) AppendOptions(v []string) *CalibrationQuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (_u *CalibrationQuestionUpdate) SetCorrectOptionIndex(v int) *CalibrationQuestionUpdate {
	_u.mutation.ResetCorrectOptionIndex()
	_u.mutation.SetCorrectOptionIndex(v)
	return _u
}

// SetNillableCorrectOptionIndex sets the "correct_option_index" field if the given value is not nil.
func (_u *CalibrationQuestionUpdate) SetNillableCorrectOptionIndex(v *int) *CalibrationQuestionUpdate {
	if v != nil {
		_u.SetCorrectOptionIndex(*v)
	}
	return _u
}

// AddCorrectOptionIndex adds value to the "correct_option_index" field.
func (_u *CalibrationQuestionUpdate) AddCorrectOptionIndex(v int) *CalibrationQuestionUpdate {
	_u.mutation.AddCorrectOptionIndex(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *CalibrationQuestionUpdate) SetExplanation(v string) *CalibrationQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *CalibrationQuestionUpdate) SetNillableExplanation(v *string) *CalibrationQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the CalibrationQuestionMutation object of the builder.
func (_u *CalibrationQuestionUpdate) Mutation() *CalibrationQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalibrationQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalibrationQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalibrationQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalibrationQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalibrationQuestionUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := calibrationquestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "CalibrationQuestion.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOptionIndex(); ok {
		if err := calibrationquestion.CorrectOptionIndexValidator(v); err != nil {
			return &ValidationError{Name: "correct_option_index", err: fmt.Errorf(`ent: validator failed for field "CalibrationQuestion.correct_option_index": %w`, err)}
		}
	}
	return nil
}

func (_u *CalibrationQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calibrationquestion.Table, calibrationquestion.Columns, sqlgraph.NewFieldSpec(calibrationquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(calibrationquestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(calibrationquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calibrationquestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.CorrectOptionIndex(); ok {
		_spec.SetField(calibrationquestion.FieldCorrectOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectOptionIndex(); ok {
		_spec.AddField(calibrationquestion.FieldCorrectOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(calibrationquestion.FieldExplanation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibrationquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalibrationQuestionUpdateOne is the builder for updating a single CalibrationQuestion entity.
type CalibrationQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalibrationQuestionMutation
}

// SetQuestion sets the "question" field.
func (_u *CalibrationQuestionUpdateOne) SetQuestion(v string) *CalibrationQuestionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *CalibrationQuestionUpdateOne) SetNillableQuestion(v *string) *CalibrationQuestionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *CalibrationQuestionUpdateOne) SetOptions(v []string) *CalibrationQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *CalibrationQuestionUpdateOne) AppendOptions(v []string) *CalibrationQuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (_u *CalibrationQuestionUpdateOne) SetCorrectOptionIndex(v int) *CalibrationQuestionUpdateOne {
	_u.mutation.ResetCorrectOptionIndex()
	_u.mutation.SetCorrectOptionIndex(v)
	return _u
}

// SetNillableCorrectOptionIndex sets the "correct_option_index" field if the given value is not nil.
func (_u *CalibrationQuestionUpdateOne) SetNillableCorrectOptionIndex(v *int) *CalibrationQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectOptionIndex(*v)
	}
	return _u
}

// AddCorrectOptionIndex adds value to the "correct_option_index" field.
func (_u *CalibrationQuestionUpdateOne) AddCorrectOptionIndex(v int) *CalibrationQuestionUpdateOne {
	_u.mutation.AddCorrectOptionIndex(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *CalibrationQuestionUpdateOne) SetExplanation(v string) *CalibrationQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *CalibrationQuestionUpdateOne) SetNillableExplanation(v *string) *CalibrationQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the CalibrationQuestionMutation object of the builder.
func (_u *CalibrationQuestionUpdateOne) Mutation() *CalibrationQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalibrationQuestionUpdate builder.
func (_u *CalibrationQuestionUpdateOne) Where(ps ...predicate.CalibrationQuestion) *CalibrationQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalibrationQuestionUpdateOne) Select(field string, fields ...string) *CalibrationQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalibrationQuestion entity.
func (_u *CalibrationQuestionUpdateOne) Save(ctx context.Context) (*CalibrationQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalibrationQuestionUpdateOne) SaveX(ctx context.Context) *CalibrationQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalibrationQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalibrationQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalibrationQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := calibrationquestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "CalibrationQuestion.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOptionIndex(); ok {
		if err := calibrationquestion.CorrectOptionIndexValidator(v); err != nil {
			return &ValidationError{Name: "correct_option_index", err: fmt.Errorf(`ent: validator failed for field "CalibrationQuestion.correct_option_index": %w`, err)}
		}
	}
	return nil
}

func (_u *CalibrationQuestionUpdateOne) sqlSave(ctx context.Context) (_node *CalibrationQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calibrationquestion.Table, calibrationquestion.Columns, sqlgraph.NewFieldSpec(calibrationquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalibrationQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calibrationquestion.FieldID)
		for _, f := range fields {
			if !calibrationquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calibrationquestion.FieldID {
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
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(calibrationquestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(calibrationquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calibrationquestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.CorrectOptionIndex(); ok {
		_spec.SetField(calibrationquestion.FieldCorrectOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectOptionIndex(); ok {
		_spec.AddField(calibrationquestion.FieldCorrectOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(calibrationquestion.FieldExplanation, field.TypeString, value)
	}
	_node = &CalibrationQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibrationquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
