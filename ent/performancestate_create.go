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
)

// PerformanceStateCreate is the builder for creating a PerformanceState entity.
type PerformanceStateCreate struct {
	config
	mutation *PerformanceStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PerformanceStateCreate) SetUserID(v string) *PerformanceStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *PerformanceStateCreate) SetSkillID(v string) *PerformanceStateCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetDifficultyTarget sets the "difficulty_target" field.
func (_c *PerformanceStateCreate) SetDifficultyTarget(v int) *PerformanceStateCreate {
	_c.mutation.SetDifficultyTarget(v)
	return _c
}

// SetNillableDifficultyTarget sets the "difficulty_target" field if the given value is not nil.
func (_c *PerformanceStateCreate) SetNillableDifficultyTarget(v *int) *PerformanceStateCreate {
	if v != nil {
		_c.SetDifficultyTarget(*v)
	}
	return _c
}

// SetStreakCorrect sets the "streak_correct" field.
func (_c *PerformanceStateCreate) SetStreakCorrect(v int) *PerformanceStateCreate {
	_c.mutation.SetStreakCorrect(v)
	return _c
}

// SetNillableStreakCorrect sets the "streak_correct" field if the given value is not nil.
func (_c *PerformanceStateCreate) SetNillableStreakCorrect(v *int) *PerformanceStateCreate {
	if v != nil {
		_c.SetStreakCorrect(*v)
	}
	return _c
}

// SetStreakIncorrect sets the "streak_incorrect" field.
func (_c *PerformanceStateCreate) SetStreakIncorrect(v int) *PerformanceStateCreate {
	_c.mutation.SetStreakIncorrect(v)
	return _c
}

// SetNillableStreakIncorrect sets the "streak_incorrect" field if the given value is not nil.
func (_c *PerformanceStateCreate) SetNillableStreakIncorrect(v *int) *PerformanceStateCreate {
	if v != nil {
		_c.SetStreakIncorrect(*v)
	}
	return _c
}

// SetAttemptsTotal sets the "attempts_total" field.
func (_c *PerformanceStateCreate) SetAttemptsTotal(v int) *PerformanceStateCreate {
	_c.mutation.SetAttemptsTotal(v)
	return _c
}

// SetNillableAttemptsTotal sets the "attempts_total" field if the given value is not nil.
func (_c *PerformanceStateCreate) SetNillableAttemptsTotal(v *int) *PerformanceStateCreate {
	if v != nil {
		_c.SetAttemptsTotal(*v)
	}
	return _c
}

// SetCorrectTotal sets the "correct_total" field.
func (_c *PerformanceStateCreate) SetCorrectTotal(v int) *PerformanceStateCreate {
	_c.mutation.SetCorrectTotal(v)
	return _c
}

// SetNillableCorrectTotal sets the "correct_total" field if the given value is not nil.
func (_c *PerformanceStateCreate) SetNillableCorrectTotal(v *int) *PerformanceStateCreate {
	if v != nil {
		_c.SetCorrectTotal(*v)
	}
	return _c
}

// SetLastChallengedAt sets the "last_challenged_at" field.
func (_c *PerformanceStateCreate) SetLastChallengedAt(v time.Time) *PerformanceStateCreate {
	_c.mutation.SetLastChallengedAt(v)
	return _c
}

// SetNillableLastChallengedAt sets the "last_challenged_at" field if the given value is not nil.
func (_c *PerformanceStateCreate) SetNillableLastChallengedAt(v *time.Time) *PerformanceStateCreate {
	if v != nil {
		_c.SetLastChallengedAt(*v)
	}
	return _c
}

// SetLastResult sets the "last_result" field.
func (_c *PerformanceStateCreate) SetLastResult(v performancestate.LastResult) *PerformanceStateCreate {
	_c.mutation.SetLastResult(v)
	return _c
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_c *PerformanceStateCreate) SetNillableLastResult(v *performancestate.LastResult) *PerformanceStateCreate {
	if v != nil {
		_c.SetLastResult(*v)
	}
	return _c
}

// Mutation returns the PerformanceStateMutation object of the builder.
func (_c *PerformanceStateCreate) Mutation() *PerformanceStateMutation {
	return _c.mutation
}

// Save creates the PerformanceState in the database.
func (_c *PerformanceStateCreate) Save(ctx context.Context) (*PerformanceState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceStateCreate) SaveX(ctx context.Context) *PerformanceState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PerformanceStateCreate) defaults() {
	if _, ok := _c.mutation.DifficultyTarget(); !ok {
		v := performancestate.DefaultDifficultyTarget
		_c.mutation.SetDifficultyTarget(v)
	}
	if _, ok := _c.mutation.StreakCorrect(); !ok {
		v := performancestate.DefaultStreakCorrect
		_c.mutation.SetStreakCorrect(v)
	}
	if _, ok := _c.mutation.StreakIncorrect(); !ok {
		v := performancestate.DefaultStreakIncorrect
		_c.mutation.SetStreakIncorrect(v)
	}
	if _, ok := _c.mutation.AttemptsTotal(); !ok {
		v := performancestate.DefaultAttemptsTotal
		_c.mutation.SetAttemptsTotal(v)
	}
	if _, ok := _c.mutation.CorrectTotal(); !ok {
		v := performancestate.DefaultCorrectTotal
		_c.mutation.SetCorrectTotal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PerformanceState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := performancestate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "PerformanceState.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := performancestate.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyTarget(); !ok {
		return &ValidationError{Name: "difficulty_target", err: errors.New(`ent: missing required field "PerformanceState.difficulty_target"`)}
	}
	if v, ok := _c.mutation.DifficultyTarget(); ok {
		if err := performancestate.DifficultyTargetValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_target", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.difficulty_target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakCorrect(); !ok {
		return &ValidationError{Name: "streak_correct", err: errors.New(`ent: missing required field "PerformanceState.streak_correct"`)}
	}
	if v, ok := _c.mutation.StreakCorrect(); ok {
		if err := performancestate.StreakCorrectValidator(v); err != nil {
			return &ValidationError{Name: "streak_correct", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.streak_correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakIncorrect(); !ok {
		return &ValidationError{Name: "streak_incorrect", err: errors.New(`ent: missing required field "PerformanceState.streak_incorrect"`)}
	}
	if v, ok := _c.mutation.StreakIncorrect(); ok {
		if err := performancestate.StreakIncorrectValidator(v); err != nil {
			return &ValidationError{Name: "streak_incorrect", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.streak_incorrect": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptsTotal(); !ok {
		return &ValidationError{Name: "attempts_total", err: errors.New(`ent: missing required field "PerformanceState.attempts_total"`)}
	}
	if v, ok := _c.mutation.AttemptsTotal(); ok {
		if err := performancestate.AttemptsTotalValidator(v); err != nil {
			return &ValidationError{Name: "attempts_total", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.attempts_total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectTotal(); !ok {
		return &ValidationError{Name: "correct_total", err: errors.New(`ent: missing required field "PerformanceState.correct_total"`)}
	}
	if v, ok := _c.mutation.CorrectTotal(); ok {
		if err := performancestate.CorrectTotalValidator(v); err != nil {
			return &ValidationError{Name: "correct_total", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.correct_total": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastResult(); ok {
		if err := performancestate.LastResultValidator(v); err != nil {
			return &ValidationError{Name: "last_result", err: fmt.Errorf(`ent: validator failed for field "PerformanceState.last_result": %w`, err)}
		}
	}
	return nil
}

func (_c *PerformanceStateCreate) sqlSave(ctx context.Context) (*PerformanceState, error) {
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

func (_c *PerformanceStateCreate) createSpec() (*PerformanceState, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performancestate.Table, sqlgraph.NewFieldSpec(performancestate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(performancestate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(performancestate.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.DifficultyTarget(); ok {
		_spec.SetField(performancestate.FieldDifficultyTarget, field.TypeInt, value)
		_node.DifficultyTarget = value
	}
	if value, ok := _c.mutation.StreakCorrect(); ok {
		_spec.SetField(performancestate.FieldStreakCorrect, field.TypeInt, value)
		_node.StreakCorrect = value
	}
	if value, ok := _c.mutation.StreakIncorrect(); ok {
		_spec.SetField(performancestate.FieldStreakIncorrect, field.TypeInt, value)
		_node.StreakIncorrect = value
	}
	if value, ok := _c.mutation.AttemptsTotal(); ok {
		_spec.SetField(performancestate.FieldAttemptsTotal, field.TypeInt, value)
		_node.AttemptsTotal = value
	}
	if value, ok := _c.mutation.CorrectTotal(); ok {
		_spec.SetField(performancestate.FieldCorrectTotal, field.TypeInt, value)
		_node.CorrectTotal = value
	}
	if value, ok := _c.mutation.LastChallengedAt(); ok {
		_spec.SetField(performancestate.FieldLastChallengedAt, field.TypeTime, value)
		_node.LastChallengedAt = &value
	}
	if value, ok := _c.mutation.LastResult(); ok {
		_spec.SetField(performancestate.FieldLastResult, field.TypeEnum, value)
		_node.LastResult = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PerformanceState.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PerformanceStateUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PerformanceStateCreate) OnConflict(opts ...sql.ConflictOption) *PerformanceStateUpsertOne {
	_c.conflict = opts
	return &PerformanceStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PerformanceState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PerformanceStateCreate) OnConflictColumns(columns ...string) *PerformanceStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PerformanceStateUpsertOne{
		create: _c,
	}
}

type (
	// PerformanceStateUpsertOne is the builder for "upsert"-ing
	//  one PerformanceState node.
	PerformanceStateUpsertOne struct {
		create *PerformanceStateCreate
	}

	// PerformanceStateUpsert is the "OnConflict" setter.
	PerformanceStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetDifficultyTarget sets the "difficulty_target" field.
func (u *PerformanceStateUpsert) SetDifficultyTarget(v int) *PerformanceStateUpsert {
	u.Set(performancestate.FieldDifficultyTarget, v)
	return u
}

// UpdateDifficultyTarget sets the "difficulty_target" field to the value that was provided on create.
func (u *PerformanceStateUpsert) UpdateDifficultyTarget() *PerformanceStateUpsert {
	u.SetExcluded(performancestate.FieldDifficultyTarget)
	return u
}

// AddDifficultyTarget adds v to the "difficulty_target" field.
func (u *PerformanceStateUpsert) AddDifficultyTarget(v int) *PerformanceStateUpsert {
	u.Add(performancestate.FieldDifficultyTarget, v)
	return u
}

// SetStreakCorrect sets the "streak_correct" field.
func (u *PerformanceStateUpsert) SetStreakCorrect(v int) *PerformanceStateUpsert {
	u.Set(performancestate.FieldStreakCorrect, v)
	return u
}

// UpdateStreakCorrect sets the "streak_correct" field to the value that was provided on create.
func (u *PerformanceStateUpsert) UpdateStreakCorrect() *PerformanceStateUpsert {
	u.SetExcluded(performancestate.FieldStreakCorrect)
	return u
}

// AddStreakCorrect adds v to the "streak_correct" field.
func (u *PerformanceStateUpsert) AddStreakCorrect(v int) *PerformanceStateUpsert {
	u.Add(performancestate.FieldStreakCorrect, v)
	return u
}

// SetStreakIncorrect sets the "streak_incorrect" field.
func (u *PerformanceStateUpsert) SetStreakIncorrect(v int) *PerformanceStateUpsert {
	u.Set(performancestate.FieldStreakIncorrect, v)
	return u
}

// UpdateStreakIncorrect sets the "streak_incorrect" field to the value that was provided on create.
func (u *PerformanceStateUpsert) UpdateStreakIncorrect() *PerformanceStateUpsert {
	u.SetExcluded(performancestate.FieldStreakIncorrect)
	return u
}

// AddStreakIncorrect adds v to the "streak_incorrect" field.
func (u *PerformanceStateUpsert) AddStreakIncorrect(v int) *PerformanceStateUpsert {
	u.Add(performancestate.FieldStreakIncorrect, v)
	return u
}

// SetAttemptsTotal sets the "attempts_total" field.
func (u *PerformanceStateUpsert) SetAttemptsTotal(v int) *PerformanceStateUpsert {
	u.Set(performancestate.FieldAttemptsTotal, v)
	return u
}

// UpdateAttemptsTotal sets the "attempts_total" field to the value that was provided on create.
func (u *PerformanceStateUpsert) UpdateAttemptsTotal() *PerformanceStateUpsert {
	u.SetExcluded(performancestate.FieldAttemptsTotal)
	return u
}

// AddAttemptsTotal adds v to the "attempts_total" field.
func (u *PerformanceStateUpsert) AddAttemptsTotal(v int) *PerformanceStateUpsert {
	u.Add(performancestate.FieldAttemptsTotal, v)
	return u
}

// SetCorrectTotal sets the "correct_total" field.
func (u *PerformanceStateUpsert) SetCorrectTotal(v int) *PerformanceStateUpsert {
	u.Set(performancestate.FieldCorrectTotal, v)
	return u
}

// UpdateCorrectTotal sets the "correct_total" field to the value that was provided on create.
func (u *PerformanceStateUpsert) UpdateCorrectTotal() *PerformanceStateUpsert {
	u.SetExcluded(performancestate.FieldCorrectTotal)
	return u
}

// AddCorrectTotal adds v to the "correct_total" field.
func (u *PerformanceStateUpsert) AddCorrectTotal(v int) *PerformanceStateUpsert {
	u.Add(performancestate.FieldCorrectTotal, v)
	return u
}

// SetLastChallengedAt sets the "last_challenged_at" field.
func (u *PerformanceStateUpsert) SetLastChallengedAt(v time.Time) *PerformanceStateUpsert {
	u.Set(performancestate.FieldLastChallengedAt, v)
	return u
}

// UpdateLastChallengedAt sets the "last_challenged_at" field to the value that was provided on create.
func (u *PerformanceStateUpsert) UpdateLastChallengedAt() *PerformanceStateUpsert {
	u.SetExcluded(performancestate.FieldLastChallengedAt)
	return u
}

// ClearLastChallengedAt clears the value of the "last_challenged_at" field.
func (u *PerformanceStateUpsert) ClearLastChallengedAt() *PerformanceStateUpsert {
	u.SetNull(performancestate.FieldLastChallengedAt)
	return u
}

// SetLastResult sets the "last_result" field.
func (u *PerformanceStateUpsert) SetLastResult(v performancestate.LastResult) *PerformanceStateUpsert {
	u.Set(performancestate.FieldLastResult, v)
	return u
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *PerformanceStateUpsert) UpdateLastResult() *PerformanceStateUpsert {
	u.SetExcluded(performancestate.FieldLastResult)
	return u
}

// ClearLastResult clears the value of the "last_result" field.
func (u *PerformanceStateUpsert) ClearLastResult() *PerformanceStateUpsert {
	u.SetNull(performancestate.FieldLastResult)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PerformanceState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PerformanceStateUpsertOne) UpdateNewValues() *PerformanceStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(performancestate.FieldUserID)
		}
		if _, exists := u.create.mutation.SkillID(); exists {
			s.SetIgnore(performancestate.FieldSkillID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PerformanceState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PerformanceStateUpsertOne) Ignore() *PerformanceStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PerformanceStateUpsertOne) DoNothing() *PerformanceStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PerformanceStateCreate.OnConflict
// documentation for more info.
func (u *PerformanceStateUpsertOne) Update(set func(*PerformanceStateUpsert)) *PerformanceStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PerformanceStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetDifficultyTarget sets the "difficulty_target" field.
func (u *PerformanceStateUpsertOne) SetDifficultyTarget(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetDifficultyTarget(v)
	})
}

// AddDifficultyTarget adds v to the "difficulty_target" field.
func (u *PerformanceStateUpsertOne) AddDifficultyTarget(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddDifficultyTarget(v)
	})
}

// UpdateDifficultyTarget sets the "difficulty_target" field to the value that was provided on create.
func (u *PerformanceStateUpsertOne) UpdateDifficultyTarget() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateDifficultyTarget()
	})
}

// SetStreakCorrect sets the "streak_correct" field.
func (u *PerformanceStateUpsertOne) SetStreakCorrect(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetStreakCorrect(v)
	})
}

// AddStreakCorrect adds v to the "streak_correct" field.
func (u *PerformanceStateUpsertOne) AddStreakCorrect(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddStreakCorrect(v)
	})
}

// UpdateStreakCorrect sets the "streak_correct" field to the value that was provided on create.
func (u *PerformanceStateUpsertOne) UpdateStreakCorrect() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateStreakCorrect()
	})
}

// SetStreakIncorrect sets the "streak_incorrect" field.
func (u *PerformanceStateUpsertOne) SetStreakIncorrect(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetStreakIncorrect(v)
	})
}

// AddStreakIncorrect adds v to the "streak_incorrect" field.
func (u *PerformanceStateUpsertOne) AddStreakIncorrect(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddStreakIncorrect(v)
	})
}

// UpdateStreakIncorrect sets the "streak_incorrect" field to the value that was provided on create.
func (u *PerformanceStateUpsertOne) UpdateStreakIncorrect() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateStreakIncorrect()
	})
}

// SetAttemptsTotal sets the "attempts_total" field.
func (u *PerformanceStateUpsertOne) SetAttemptsTotal(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetAttemptsTotal(v)
	})
}

// AddAttemptsTotal adds v to the "attempts_total" field.
func (u *PerformanceStateUpsertOne) AddAttemptsTotal(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddAttemptsTotal(v)
	})
}

// UpdateAttemptsTotal sets the "attempts_total" field to the value that was provided on create.
func (u *PerformanceStateUpsertOne) UpdateAttemptsTotal() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateAttemptsTotal()
	})
}

// SetCorrectTotal sets the "correct_total" field.
func (u *PerformanceStateUpsertOne) SetCorrectTotal(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetCorrectTotal(v)
	})
}

// AddCorrectTotal adds v to the "correct_total" field.
func (u *PerformanceStateUpsertOne) AddCorrectTotal(v int) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddCorrectTotal(v)
	})
}

// UpdateCorrectTotal sets the "correct_total" field to the value that was provided on create.
func (u *PerformanceStateUpsertOne) UpdateCorrectTotal() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateCorrectTotal()
	})
}

// SetLastChallengedAt sets the "last_challenged_at" field.
func (u *PerformanceStateUpsertOne) SetLastChallengedAt(v time.Time) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetLastChallengedAt(v)
	})
}

// UpdateLastChallengedAt sets the "last_challenged_at" field to the value that was provided on create.
func (u *PerformanceStateUpsertOne) UpdateLastChallengedAt() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateLastChallengedAt()
	})
}

// ClearLastChallengedAt clears the value of the "last_challenged_at" field.
func (u *PerformanceStateUpsertOne) ClearLastChallengedAt() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.ClearLastChallengedAt()
	})
}

// SetLastResult sets the "last_result" field.
func (u *PerformanceStateUpsertOne) SetLastResult(v performancestate.LastResult) *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetLastResult(v)
	})
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *PerformanceStateUpsertOne) UpdateLastResult() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateLastResult()
	})
}

// ClearLastResult clears the value of the "last_result" field.
func (u *PerformanceStateUpsertOne) ClearLastResult() *PerformanceStateUpsertOne {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.ClearLastResult()
	})
}

// Exec executes the query.
func (u *PerformanceStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PerformanceStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PerformanceStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PerformanceStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PerformanceStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PerformanceStateCreateBulk is the builder for creating many PerformanceState entities in bulk.
type PerformanceStateCreateBulk struct {
	config
	err      error
	builders []*PerformanceStateCreate
	conflict []sql.ConflictOption
}

// Save creates the PerformanceState entities in the database.
func (_c *PerformanceStateCreateBulk) Save(ctx context.Context) ([]*PerformanceState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PerformanceState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceStateMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *PerformanceStateCreateBulk) SaveX(ctx context.Context) []*PerformanceState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PerformanceState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PerformanceStateUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PerformanceStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *PerformanceStateUpsertBulk {
	_c.conflict = opts
	return &PerformanceStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PerformanceState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PerformanceStateCreateBulk) OnConflictColumns(columns ...string) *PerformanceStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PerformanceStateUpsertBulk{
		create: _c,
	}
}

// PerformanceStateUpsertBulk is the builder for "upsert"-ing
// a bulk of PerformanceState nodes.
type PerformanceStateUpsertBulk struct {
	create *PerformanceStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PerformanceState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PerformanceStateUpsertBulk) UpdateNewValues() *PerformanceStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(performancestate.FieldUserID)
			}
			if _, exists := b.mutation.SkillID(); exists {
				s.SetIgnore(performancestate.FieldSkillID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PerformanceState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PerformanceStateUpsertBulk) Ignore() *PerformanceStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PerformanceStateUpsertBulk) DoNothing() *PerformanceStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PerformanceStateCreateBulk.OnConflict
// documentation for more info.
func (u *PerformanceStateUpsertBulk) Update(set func(*PerformanceStateUpsert)) *PerformanceStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PerformanceStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetDifficultyTarget sets the "difficulty_target" field.
func (u *PerformanceStateUpsertBulk) SetDifficultyTarget(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetDifficultyTarget(v)
	})
}

// AddDifficultyTarget adds v to the "difficulty_target" field.
func (u *PerformanceStateUpsertBulk) AddDifficultyTarget(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddDifficultyTarget(v)
	})
}

// UpdateDifficultyTarget sets the "difficulty_target" field to the value that was provided on create.
func (u *PerformanceStateUpsertBulk) UpdateDifficultyTarget() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateDifficultyTarget()
	})
}

// SetStreakCorrect sets the "streak_correct" field.
func (u *PerformanceStateUpsertBulk) SetStreakCorrect(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetStreakCorrect(v)
	})
}

// AddStreakCorrect adds v to the "streak_correct" field.
func (u *PerformanceStateUpsertBulk) AddStreakCorrect(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddStreakCorrect(v)
	})
}

// UpdateStreakCorrect sets the "streak_correct" field to the value that was provided on create.
func (u *PerformanceStateUpsertBulk) UpdateStreakCorrect() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateStreakCorrect()
	})
}

// SetStreakIncorrect sets the "streak_incorrect" field.
func (u *PerformanceStateUpsertBulk) SetStreakIncorrect(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetStreakIncorrect(v)
	})
}

// AddStreakIncorrect adds v to the "streak_incorrect" field.
func (u *PerformanceStateUpsertBulk) AddStreakIncorrect(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddStreakIncorrect(v)
	})
}

// UpdateStreakIncorrect sets the "streak_incorrect" field to the value that was provided on create.
func (u *PerformanceStateUpsertBulk) UpdateStreakIncorrect() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateStreakIncorrect()
	})
}

// SetAttemptsTotal sets the "attempts_total" field.
func (u *PerformanceStateUpsertBulk) SetAttemptsTotal(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetAttemptsTotal(v)
	})
}

// AddAttemptsTotal adds v to the "attempts_total" field.
func (u *PerformanceStateUpsertBulk) AddAttemptsTotal(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddAttemptsTotal(v)
	})
}

// UpdateAttemptsTotal sets the "attempts_total" field to the value that was provided on create.
func (u *PerformanceStateUpsertBulk) UpdateAttemptsTotal() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateAttemptsTotal()
	})
}

// SetCorrectTotal sets the "correct_total" field.
func (u *PerformanceStateUpsertBulk) SetCorrectTotal(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetCorrectTotal(v)
	})
}

// AddCorrectTotal adds v to the "correct_total" field.
func (u *PerformanceStateUpsertBulk) AddCorrectTotal(v int) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.AddCorrectTotal(v)
	})
}

// UpdateCorrectTotal sets the "correct_total" field to the value that was provided on create.
func (u *PerformanceStateUpsertBulk) UpdateCorrectTotal() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateCorrectTotal()
	})
}

// SetLastChallengedAt sets the "last_challenged_at" field.
func (u *PerformanceStateUpsertBulk) SetLastChallengedAt(v time.Time) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetLastChallengedAt(v)
	})
}

// UpdateLastChallengedAt sets the "last_challenged_at" field to the value that was provided on create.
func (u *PerformanceStateUpsertBulk) UpdateLastChallengedAt() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateLastChallengedAt()
	})
}

// ClearLastChallengedAt clears the value of the "last_challenged_at" field.
func (u *PerformanceStateUpsertBulk) ClearLastChallengedAt() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.ClearLastChallengedAt()
	})
}

// SetLastResult sets the "last_result" field.
func (u *PerformanceStateUpsertBulk) SetLastResult(v performancestate.LastResult) *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.SetLastResult(v)
	})
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *PerformanceStateUpsertBulk) UpdateLastResult() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.UpdateLastResult()
	})
}

// ClearLastResult clears the value of the "last_result" field.
func (u *PerformanceStateUpsertBulk) ClearLastResult() *PerformanceStateUpsertBulk {
	return u.Update(func(s *PerformanceStateUpsert) {
		s.ClearLastResult()
	})
}

// Exec executes the query.
func (u *PerformanceStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PerformanceStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PerformanceStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PerformanceStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
