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
	"github.com/skillissue/engine/ent/calibrationstate"
	"github.com/skillissue/engine/ent/predicate"
)

// CalibrationStateUpdate is the builder for updating CalibrationState entities.
type CalibrationStateUpdate struct {
	config
	hooks    []Hook
	mutation *CalibrationStateMutation
}

// Where appends a list predicates to the CalibrationStateUpdate builder.
func (_u *CalibrationStateUpdate) Where(ps ...predicate.CalibrationState) *CalibrationStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CalibrationStateUpdate) SetStatus(v calibrationstate.Status) *CalibrationStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CalibrationStateUpdate) SetNillableStatus(v *calibrationstate.Status) *CalibrationStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQuestionsGeneratedAt sets the "questions_generated_at" field.
func (_u *CalibrationStateUpdate) SetQuestionsGeneratedAt(v time.Time) *CalibrationStateUpdate {
	_u.mutation.SetQuestionsGeneratedAt(v)
	return _u
}

// SetNillableQuestionsGeneratedAt sets the "questions_generated_at" field if the given value is not nil.
func (_u *CalibrationStateUpdate) SetNillableQuestionsGeneratedAt(v *time.Time) *CalibrationStateUpdate {
	if v != nil {
		_u.SetQuestionsGeneratedAt(*v)
	}
	return _u
}

// ClearQuestionsGeneratedAt clears the value of the "questions_generated_at" field.
func (_u *CalibrationStateUpdate) ClearQuestionsGeneratedAt() *CalibrationStateUpdate {
	_u.mutation.ClearQuestionsGeneratedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CalibrationStateUpdate) SetCompletedAt(v time.Time) *CalibrationStateUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CalibrationStateUpdate) SetNillableCompletedAt(v *time.Time) *CalibrationStateUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CalibrationStateUpdate) ClearCompletedAt() *CalibrationStateUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCalculatedDifficultyTarget sets the "calculated_difficulty_target" field.
func (_u *CalibrationStateUpdate) SetCalculatedDifficultyTarget(v int) *CalibrationStateUpdate {
	_u.mutation.ResetCalculatedDifficultyTarget()
	_u.mutation.SetCalculatedDifficultyTarget(v)
	return _u
}

// SetNillableCalculatedDifficultyTarget sets the "calculated_difficulty_target" field if the given value is not nil.
func (_u *CalibrationStateUpdate) SetNillableCalculatedDifficultyTarget(v *int) *CalibrationStateUpdate {
	if v != nil {
		_u.SetCalculatedDifficultyTarget(*v)
	}
	return _u
}

// AddCalculatedDifficultyTarget adds value to the "calculated_difficulty_target" field.
func (_u *CalibrationStateUpdate) AddCalculatedDifficultyTarget(v int) *CalibrationStateUpdate {
	_u.mutation.AddCalculatedDifficultyTarget(v)
	return _u
}

// ClearCalculatedDifficultyTarget clears the value of the "calculated_difficulty_target" field.
func (_u *CalibrationStateUpdate) ClearCalculatedDifficultyTarget() *CalibrationStateUpdate {
	_u.mutation.ClearCalculatedDifficultyTarget()
	return _u
}

// Mutation returns the CalibrationStateMutation object of the builder.
func (_u *CalibrationStateUpdate) Mutation() *CalibrationStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalibrationStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalibrationStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalibrationStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalibrationStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalibrationStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := calibrationstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CalculatedDifficultyTarget(); ok {
		if err := calibrationstate.CalculatedDifficultyTargetValidator(v); err != nil {
			return &ValidationError{Name: "calculated_difficulty_target", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.calculated_difficulty_target": %w`, err)}
		}
	}
	return nil
}

func (_u *CalibrationStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calibrationstate.Table, calibrationstate.Columns, sqlgraph.NewFieldSpec(calibrationstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(calibrationstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuestionsGeneratedAt(); ok {
		_spec.SetField(calibrationstate.FieldQuestionsGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsGeneratedAtCleared() {
		_spec.ClearField(calibrationstate.FieldQuestionsGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(calibrationstate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(calibrationstate.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CalculatedDifficultyTarget(); ok {
		_spec.SetField(calibrationstate.FieldCalculatedDifficultyTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalculatedDifficultyTarget(); ok {
		_spec.AddField(calibrationstate.FieldCalculatedDifficultyTarget, field.TypeInt, value)
	}
	if _u.mutation.CalculatedDifficultyTargetCleared() {
		_spec.ClearField(calibrationstate.FieldCalculatedDifficultyTarget, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibrationstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalibrationStateUpdateOne is the builder for updating a single CalibrationState entity.
type CalibrationStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalibrationStateMutation
}

// SetStatus sets the "status" field.
func (_u *CalibrationStateUpdateOne) SetStatus(v calibrationstate.Status) *CalibrationStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CalibrationStateUpdateOne) SetNillableStatus(v *calibrationstate.Status) *CalibrationStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQuestionsGeneratedAt sets the "questions_generated_at" field.
func (_u *CalibrationStateUpdateOne) SetQuestionsGeneratedAt(v time.Time) *CalibrationStateUpdateOne {
	_u.mutation.SetQuestionsGeneratedAt(v)
	return _u
}

// SetNillableQuestionsGeneratedAt sets the "questions_generated_at" field if the given value is not nil.
func (_u *CalibrationStateUpdateOne) SetNillableQuestionsGeneratedAt(v *time.Time) *CalibrationStateUpdateOne {
	if v != nil {
		_u.SetQuestionsGeneratedAt(*v)
	}
	return _u
}

// ClearQuestionsGeneratedAt clears the value of the "questions_generated_at" field.
func (_u *CalibrationStateUpdateOne) ClearQuestionsGeneratedAt() *CalibrationStateUpdateOne {
	_u.mutation.ClearQuestionsGeneratedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CalibrationStateUpdateOne) SetCompletedAt(v time.Time) *CalibrationStateUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CalibrationStateUpdateOne) SetNillableCompletedAt(v *time.Time) *CalibrationStateUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CalibrationStateUpdateOne) ClearCompletedAt() *CalibrationStateUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCalculatedDifficultyTarget sets the "calculated_difficulty_target" field.
func (_u *CalibrationStateUpdateOne) SetCalculatedDifficultyTarget(v int) *CalibrationStateUpdateOne {
	_u.mutation.ResetCalculatedDifficultyTarget()
	_u.mutation.SetCalculatedDifficultyTarget(v)
	return _u
}

// SetNillableCalculatedDifficultyTarget sets the "calculated_difficulty_target" field if the given value is not nil.
func (_u *CalibrationStateUpdateOne) SetNillableCalculatedDifficultyTarget(v *int) *CalibrationStateUpdateOne {
	if v != nil {
		_u.SetCalculatedDifficultyTarget(*v)
	}
	return _u
}

// AddCalculatedDifficultyTarget adds value to the "calculated_difficulty_target" field.
func (_u *CalibrationStateUpdateOne) AddCalculatedDifficultyTarget(v int) *CalibrationStateUpdateOne {
	_u.mutation.AddCalculatedDifficultyTarget(v)
	return _u
}

// ClearCalculatedDifficultyTarget clears the value of the "calculated_difficulty_target" field.
func (_u *CalibrationStateUpdateOne) ClearCalculatedDifficultyTarget() *CalibrationStateUpdateOne {
	_u.mutation.ClearCalculatedDifficultyTarget()
	return _u
}

// Mutation returns the CalibrationStateMutation object of the builder.
func (_u *CalibrationStateUpdateOne) Mutation() *CalibrationStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalibrationStateUpdate builder.
func (_u *CalibrationStateUpdateOne) Where(ps ...predicate.CalibrationState) *CalibrationStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalibrationStateUpdateOne) Select(field string, fields ...string) *CalibrationStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalibrationState entity.
func (_u *CalibrationStateUpdateOne) Save(ctx context.Context) (*CalibrationState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalibrationStateUpdateOne) SaveX(ctx context.Context) *CalibrationState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalibrationStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalibrationStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalibrationStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := calibrationstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CalculatedDifficultyTarget(); ok {
		if err := calibrationstate.CalculatedDifficultyTargetValidator(v); err != nil {
			return &ValidationError{Name: "calculated_difficulty_target", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.calculated_difficulty_target": %w`, err)}
		}
	}
	return nil
}

func (_u *CalibrationStateUpdateOne) sqlSave(ctx context.Context) (_node *CalibrationState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calibrationstate.Table, calibrationstate.Columns, sqlgraph.NewFieldSpec(calibrationstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalibrationState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calibrationstate.FieldID)
		for _, f := range fields {
			if !calibrationstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calibrationstate.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(calibrationstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuestionsGeneratedAt(); ok {
		_spec.SetField(calibrationstate.FieldQuestionsGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsGeneratedAtCleared() {
		_spec.ClearField(calibrationstate.FieldQuestionsGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(calibrationstate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(calibrationstate.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CalculatedDifficultyTarget(); ok {
		_spec.SetField(calibrationstate.FieldCalculatedDifficultyTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalculatedDifficultyTarget(); ok {
		_spec.AddField(calibrationstate.FieldCalculatedDifficultyTarget, field.TypeInt, value)
	}
	if _u.mutation.CalculatedDifficultyTargetCleared() {
		_spec.ClearField(calibrationstate.FieldCalculatedDifficultyTarget, field.TypeInt)
	}
	_node = &CalibrationState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calibrationstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
