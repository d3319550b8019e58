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
	"github.com/skillissue/engine/ent/performancestate"
	"github.com/skillissue/engine/ent/predicate"
)

// PerformanceStateUpdate is the builder for updating PerformanceState entities.
type PerformanceStateUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceStateMutation
}

// Where appends a list predicates to the PerformanceStateUpdate builder.
func (_u *PerformanceStateUpdate) Where(ps ...predicate.PerformanceState) *PerformanceStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDifficultyTarget sets the "difficulty_target" field.
func (_u *PerformanceStateUpdate) SetDifficultyTarget(v int) *PerformanceStateUpdate {
	_u.mutation.ResetDifficultyTarget()
	_u.mutation.SetDifficultyTarget(v)
	return _u
}

// SetNillableDifficultyTarget sets the "difficulty_target" field if the given value is not nil.
func (_u *PerformanceStateUpdate) SetNillableDifficultyTarget(v *int) *PerformanceStateUpdate {
	if v != nil {
		_u.SetDifficultyTarget(*v)
	}
	return _u
}

// AddDifficultyTarget adds value to the "difficulty_target" field.
func (_u *PerformanceStateUpdate) AddDifficultyTarget(v int) *PerformanceStateUpdate {
	_u.mutation.AddDifficultyTarget(v)
	return _u
}

// SetStreakCorrect sets the "streak_correct" field.
func (_u *PerformanceStateUpdate) SetStreakCorrect(v int) *PerformanceStateUpdate {
	_u.mutation.ResetStreakCorrect()
	_u.mutation.SetStreakCorrect(v)
	return _u
}

// SetNillableStreakCorrect sets the "streak_correct" field if the given value is not nil.
func (_u *PerformanceStateUpdate) SetNillableStreakCorrect(v *int) *PerformanceStateUpdate {
	if v != nil {
		_u.SetStreakCorrect(*v)
	}
	return _u
}

// AddStreakCorrect adds value to the "streak_correct" field.
func (_u *PerformanceStateUpdate) AddStreakCorrect(v int) *PerformanceStateUpdate {
	_u.mutation.AddStreakCorrect(v)
	return _u
}

// SetStreakIncorrect sets the "streak_incorrect" field.
func (_u *PerformanceStateUpdate) SetStreakIncorrect(v int) *PerformanceStateUpdate {
	_u.mutation.ResetStreakIncorrect()
	_u.mutation.SetStreakIncorrect(v)
	return _u
}

// SetNillableStreakIncorrect sets the "streak_incorrect" field if the given value is not nil.
func (_u *PerformanceStateUpdate) SetNillableStreakIncorrect(v *int) *PerformanceStateUpdate {
	if v != nil {
		_u.SetStreakIncorrect(*v)
	}
	return _u
}

// AddStreakIncorrect adds value to the "streak_incorrect" field.
func (_u *PerformanceStateUpdate) AddStreakIncorrect(v int) *PerformanceStateUpdate {
	_u.mutation.AddStreakIncorrect(v)
	return _u
}

// SetAttemptsTotal sets the "attempts_total" field.
func (_u *PerformanceStateUpdate) SetAttemptsTotal(v int) *PerformanceStateUpdate {
	_u.mutation.ResetAttemptsTotal()
	_u.mutation.SetAttemptsTotal(v)
	return _u
}

// SetNillableAttemptsTotal sets the "attempts_total" field if the given value is not nil.
func (_u *PerformanceStateUpdate) SetNillableAttemptsTotal(v *int) *PerformanceStateUpdate {
	if v != nil {
		_u.SetAttemptsTotal(*v)
	}
	return _u
}

// AddAttemptsTotal adds value to the "attempts_total" field.
func (_u *PerformanceStateUpdate) AddAttemptsTotal(v int) *PerformanceStateUpdate {
	_u.mutation.AddAttemptsTotal(v)
	return _u
}

// SetCorrectTotal sets the "correct_total" field.
func (_u *PerformanceStateUpdate) SetCorrectTotal(v int) *PerformanceStateUpdate {
	_u.mutation.ResetCorrectTotal()
	_u.mutation.SetCorrectTotal(v)
	return _u
}

// SetNillableCorrectTotal sets the "correct_total" field if the given value is not nil.
func (_u *PerformanceStateUpdate) SetNillableCorrectTotal(v *int) *PerformanceStateUpdate {
	if v != nil {
		_u.SetCorrectTotal(*v)
	}
	return _u
}

// AddCorrectTotal adds value to the "correct_total" field.
func (_u *PerformanceStateUpdate) AddCorrectTotal(v int) *PerformanceStateUpdate {
	_u.mutation.AddCorrectTotal(v)
	return _u
}

// SetLastChallengedAt sets the "last_challenged_at" field.
func (_u *PerformanceStateUpdate) SetLastChallengedAt(v time.Time) *PerformanceStateUpdate {
	_u.mutation.SetLastChallengedAt(v)
	return _u
}

// SetNillableLastChallengedAt sets the "last_challenged_at" field if the given value is not nil.
func (_u *PerformanceStateUpdate) SetNillableLastChallengedAt(v *time.Time) *PerformanceStateUpdate {
	if v != nil {
		_u.SetLastChallengedAt(*v)
	}
	return _u
}

// ClearLastChallengedAt clears the value of the "last_challenged_at" field.
func (_u *PerformanceStateUpdate) ClearLastChallengedAt() *PerformanceStateUpdate {
	_u.mutation.ClearLastChallengedAt()
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *PerformanceStateUpdate) SetLastResult(v performancestate.LastResult) *PerformanceStateUpdate {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *PerformanceStateUpdate) SetNillableLastResult(v *performancestate.LastResult) *PerformanceStateUpdate {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *PerformanceStateUpdate) ClearLastResult() *PerformanceStateUpdate {
	_u.mutation.ClearLastResult()
	return _u
}

// Mutation returns the PerformanceStateMutation object of the builder.
func (_u *PerformanceStateUpdate) Mutation() *PerformanceStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceStateUpdate) check() error {
	if v, ok := _u.mutation.DifficultyTarget(); ok {
		if err := performancestate.DifficultyTargetValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_target", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.difficulty_target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakCorrect(); ok {
		if err := performancestate.StreakCorrectValidator(v); err != nil {
			return &ValidationError{Name: "streak_correct", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.streak_correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakIncorrect(); ok {
		if err := performancestate.StreakIncorrectValidator(v); err != nil {
			return &ValidationError{Name: "streak_incorrect", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.streak_incorrect": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptsTotal(); ok {
		if err := performancestate.AttemptsTotalValidator(v); err != nil {
			return &ValidationError{Name: "attempts_total", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.attempts_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectTotal(); ok {
		if err := performancestate.CorrectTotalValidator(v); err != nil {
			return &ValidationError{Name: "correct_total", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.correct_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastResult(); ok {
		if err := performancestate.LastResultValidator(v); err != nil {
			return &ValidationError{Name: "last_result", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.last_result": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancestate.Table, performancestate.Columns, sqlgraph.NewFieldSpec(performancestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DifficultyTarget(); ok {
		_spec.SetField(performancestate.FieldDifficultyTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyTarget(); ok {
		_spec.AddField(performancestate.FieldDifficultyTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCorrect(); ok {
		_spec.SetField(performancestate.FieldStreakCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakCorrect(); ok {
		_spec.AddField(performancestate.FieldStreakCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakIncorrect(); ok {
		_spec.SetField(performancestate.FieldStreakIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakIncorrect(); ok {
		_spec.AddField(performancestate.FieldStreakIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptsTotal(); ok {
		_spec.SetField(performancestate.FieldAttemptsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsTotal(); ok {
		_spec.AddField(performancestate.FieldAttemptsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectTotal(); ok {
		_spec.SetField(performancestate.FieldCorrectTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectTotal(); ok {
		_spec.AddField(performancestate.FieldCorrectTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastChallengedAt(); ok {
		_spec.SetField(performancestate.FieldLastChallengedAt, field.TypeTime, value)
	}
	if _u.mutation.LastChallengedAtCleared() {
		_spec.ClearField(performancestate.FieldLastChallengedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(performancestate.FieldLastResult, field.TypeEnum, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(performancestate.FieldLastResult, field.TypeEnum)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceStateUpdateOne is the builder for updating a single PerformanceState entity.
type PerformanceStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceStateMutation
}

// SetDifficultyTarget sets the "difficulty_target" field.
func (_u *PerformanceStateUpdateOne) SetDifficultyTarget(v int) *PerformanceStateUpdateOne {
	_u.mutation.ResetDifficultyTarget()
	_u.mutation.SetDifficultyTarget(v)
	return _u
}

// SetNillableDifficultyTarget sets the "difficulty_target" field if the given value is not nil.
func (_u *PerformanceStateUpdateOne) SetNillableDifficultyTarget(v *int) *PerformanceStateUpdateOne {
	if v != nil {
		_u.SetDifficultyTarget(*v)
	}
	return _u
}

// AddDifficultyTarget adds value to the "difficulty_target" field.
func (_u *PerformanceStateUpdateOne) AddDifficultyTarget(v int) *PerformanceStateUpdateOne {
	_u.mutation.AddDifficultyTarget(v)
	return _u
}

// SetStreakCorrect sets the "streak_correct" field.
func (_u *PerformanceStateUpdateOne) SetStreakCorrect(v int) *PerformanceStateUpdateOne {
	_u.mutation.ResetStreakCorrect()
	_u.mutation.SetStreakCorrect(v)
	return _u
}

// SetNillableStreakCorrect sets the "streak_correct" field if the given value is not nil.
func (_u *PerformanceStateUpdateOne) SetNillableStreakCorrect(v *int) *PerformanceStateUpdateOne {
	if v != nil {
		_u.SetStreakCorrect(*v)
	}
	return _u
}

// AddStreakCorrect adds value to the "streak_correct" field.
func (_u *PerformanceStateUpdateOne) AddStreakCorrect(v int) *PerformanceStateUpdateOne {
	_u.mutation.AddStreakCorrect(v)
	return _u
}

// SetStreakIncorrect sets the "streak_incorrect" field.
func (_u *PerformanceStateUpdateOne) SetStreakIncorrect(v int) *PerformanceStateUpdateOne {
	_u.mutation.ResetStreakIncorrect()
	_u.mutation.SetStreakIncorrect(v)
	return _u
}

// SetNillableStreakIncorrect sets the "streak_incorrect" field if the given value is not nil.
func (_u *PerformanceStateUpdateOne) SetNillableStreakIncorrect(v *int) *PerformanceStateUpdateOne {
	if v != nil {
		_u.SetStreakIncorrect(*v)
	}
	return _u
}

// AddStreakIncorrect adds value to the "streak_incorrect" field.
func (_u *PerformanceStateUpdateOne) AddStreakIncorrect(v int) *PerformanceStateUpdateOne {
	_u.mutation.AddStreakIncorrect(v)
	return _u
}

// SetAttemptsTotal sets the "attempts_total" field.
func (_u *PerformanceStateUpdateOne) SetAttemptsTotal(v int) *PerformanceStateUpdateOne {
	_u.mutation.ResetAttemptsTotal()
	_u.mutation.SetAttemptsTotal(v)
	return _u
}

// SetNillableAttemptsTotal sets the "attempts_total" field if the given value is not nil.
func (_u *PerformanceStateUpdateOne) SetNillableAttemptsTotal(v *int) *PerformanceStateUpdateOne {
	if v != nil {
		_u.SetAttemptsTotal(*v)
	}
	return _u
}

// AddAttemptsTotal adds value to the "attempts_total" field.
func (_u *PerformanceStateUpdateOne) AddAttemptsTotal(v int) *PerformanceStateUpdateOne {
	_u.mutation.AddAttemptsTotal(v)
	return _u
}

// SetCorrectTotal sets the "correct_total" field.
func (_u *PerformanceStateUpdateOne) SetCorrectTotal(v int) *PerformanceStateUpdateOne {
	_u.mutation.ResetCorrectTotal()
	_u.mutation.SetCorrectTotal(v)
	return _u
}

// SetNillableCorrectTotal sets the "correct_total" field if the given value is not nil.
func (_u *PerformanceStateUpdateOne) SetNillableCorrectTotal(v *int) *PerformanceStateUpdateOne {
	if v != nil {
		_u.SetCorrectTotal(*v)
	}
	return _u
}

// AddCorrectTotal adds value to the "correct_total" field.
func (_u *PerformanceStateUpdateOne) AddCorrectTotal(v int) *PerformanceStateUpdateOne {
	_u.mutation.AddCorrectTotal(v)
	return _u
}

// SetLastChallengedAt sets the "last_challenged_at" field.
func (_u *PerformanceStateUpdateOne) SetLastChallengedAt(v time.Time) *PerformanceStateUpdateOne {
	_u.mutation.SetLastChallengedAt(v)
	return _u
}

// SetNillableLastChallengedAt sets the "last_challenged_at" field if the given value is not nil.
func (_u *PerformanceStateUpdateOne) SetNillableLastChallengedAt(v *time.Time) *PerformanceStateUpdateOne {
	if v != nil {
		_u.SetLastChallengedAt(*v)
	}
	return _u
}

// ClearLastChallengedAt clears the value of the "last_challenged_at" field.
func (_u *PerformanceStateUpdateOne) ClearLastChallengedAt() *PerformanceStateUpdateOne {
	_u.mutation.ClearLastChallengedAt()
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *PerformanceStateUpdateOne) SetLastResult(v performancestate.LastResult) *PerformanceStateUpdateOne {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *PerformanceStateUpdateOne) SetNillableLastResult(v *performancestate.LastResult) *PerformanceStateUpdateOne {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *PerformanceStateUpdateOne) ClearLastResult() *PerformanceStateUpdateOne {
	_u.mutation.ClearLastResult()
	return _u
}

// Mutation returns the PerformanceStateMutation object of the builder.
func (_u *PerformanceStateUpdateOne) Mutation() *PerformanceStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceStateUpdate builder.
func (_u *PerformanceStateUpdateOne) Where(ps ...predicate.PerformanceState) *PerformanceStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceStateUpdateOne) Select(field string, fields ...string) *PerformanceStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceState entity.
func (_u *PerformanceStateUpdateOne) Save(ctx context.Context) (*PerformanceState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceStateUpdateOne) SaveX(ctx context.Context) *PerformanceState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceStateUpdateOne) check() error {
	if v, ok := _u.mutation.DifficultyTarget(); ok {
		if err := performancestate.DifficultyTargetValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_target", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.difficulty_target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakCorrect(); ok {
		if err := performancestate.StreakCorrectValidator(v); err != nil {
			return &ValidationError{Name: "streak_correct", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.streak_correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakIncorrect(); ok {
		if err := performancestate.StreakIncorrectValidator(v); err != nil {
			return &ValidationError{Name: "streak_incorrect", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.streak_incorrect": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptsTotal(); ok {
		if err := performancestate.AttemptsTotalValidator(v); err != nil {
			return &ValidationError{Name: "attempts_total", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.attempts_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectTotal(); ok {
		if err := performancestate.CorrectTotalValidator(v); err != nil {
			return &ValidationError{Name: "correct_total", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.correct_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastResult(); ok {
		if err := performancestate.LastResultValidator(v); err != nil {
			return &ValidationError{Name: "last_result", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.last_result": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceStateUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancestate.Table, performancestate.Columns, sqlgraph.NewFieldSpec(performancestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performancestate.FieldID)
		for _, f := range fields {
			if !performancestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performancestate.FieldID {
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
	if value, ok := _u.mutation.DifficultyTarget(); ok {
		_spec.SetField(performancestate.FieldDifficultyTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyTarget(); ok {
		_spec.AddField(performancestate.FieldDifficultyTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCorrect(); ok {
		_spec.SetField(performancestate.FieldStreakCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakCorrect(); ok {
		_spec.AddField(performancestate.FieldStreakCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakIncorrect(); ok {
		_spec.SetField(performancestate.FieldStreakIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakIncorrect(); ok {
		_spec.AddField(performancestate.FieldStreakIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptsTotal(); ok {
		_spec.SetField(performancestate.FieldAttemptsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsTotal(); ok {
		_spec.AddField(performancestate.FieldAttemptsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectTotal(); ok {
		_spec.SetField(performancestate.FieldCorrectTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectTotal(); ok {
		_spec.AddField(performancestate.FieldCorrectTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastChallengedAt(); ok {
		_spec.SetField(performancestate.FieldLastChallengedAt, field.TypeTime, value)
	}
	if _u.mutation.LastChallengedAtCleared() {
		_spec.ClearField(performancestate.FieldLastChallengedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(performancestate.FieldLastResult, field.TypeEnum, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(performancestate.FieldLastResult, field.TypeEnum)
	}
	_node = &PerformanceState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
