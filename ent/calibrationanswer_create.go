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
	"github.com/skillissue/engine/ent/calibrationanswer"
)

// CalibrationAnswerCreate is the builder for creating a CalibrationAnswer entity.
type CalibrationAnswerCreate struct {
	config
	mutation *CalibrationAnswerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CalibrationAnswerCreate) SetUserID(v string) *CalibrationAnswerCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *CalibrationAnswerCreate) SetSkillID(v string) *CalibrationAnswerCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CalibrationAnswerCreate) SetDifficulty(v int) *CalibrationAnswerCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSelectedOption sets the "selected_option" field.
func (_c *CalibrationAnswerCreate) SetSelectedOption(v int) *CalibrationAnswerCreate {
	_c.mutation.SetSelectedOption(v)
	return _c
}

// SetCorrectOption sets the "correct_option" field.
func (_c *CalibrationAnswerCreate) SetCorrectOption(v int) *CalibrationAnswerCreate {
	_c.mutation.SetCorrectOption(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *CalibrationAnswerCreate) SetIsCorrect(v bool) *CalibrationAnswerCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *CalibrationAnswerCreate) SetResponseTimeMs(v int64) *CalibrationAnswerCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *CalibrationAnswerCreate) SetNillableResponseTimeMs(v *int64) *CalibrationAnswerCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *CalibrationAnswerCreate) SetAnsweredAt(v time.Time) *CalibrationAnswerCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *CalibrationAnswerCreate) SetNillableAnsweredAt(v *time.Time) *CalibrationAnswerCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// Mutation returns the CalibrationAnswerMutation object of the builder.
func (_c *CalibrationAnswerCreate) Mutation() *CalibrationAnswerMutation {
	return _c.mutation
}

// Save creates the CalibrationAnswer in the database.
func (_c *CalibrationAnswerCreate) Save(ctx context.Context) (*CalibrationAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalibrationAnswerCreate) SaveX(ctx context.Context) *CalibrationAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalibrationAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalibrationAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalibrationAnswerCreate) defaults() {
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		v := calibrationanswer.DefaultAnsweredAt()
		_c.mutation.SetAnsweredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalibrationAnswerCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CalibrationAnswer.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := calibrationanswer.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CalibrationAnswer.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "CalibrationAnswer.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := calibrationanswer.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "CalibrationAnswer.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CalibrationAnswer.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := calibrationanswer.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "CalibrationAnswer.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectedOption(); !ok {
		return &ValidationError{Name: "selected_option", err: errors.New(`ent: missing required field "CalibrationAnswer.selected_option"`)}
	}
	if v, ok := _c.mutation.SelectedOption(); ok {
		if err := calibrationanswer.SelectedOptionValidator(v); err != nil {
			return &ValidationError{Name: "selected_option", err: fmt.Errorf(`ent: validator failed for field "CalibrationAnswer.selected_option": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectOption(); !ok {
		return &ValidationError{Name: "correct_option", err: errors.New(`ent: missing required field "CalibrationAnswer.correct_option"`)}
	}
	if v, ok := _c.mutation.CorrectOption(); ok {
		if err := calibrationanswer.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "CalibrationAnswer.correct_option": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "CalibrationAnswer.is_correct"`)}
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "CalibrationAnswer.answered_at"`)}
	}
	return nil
}

func (_c *CalibrationAnswerCreate) sqlSave(ctx context.Context) (*CalibrationAnswer, error) {
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

func (_c *CalibrationAnswerCreate) createSpec() (*CalibrationAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &CalibrationAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calibrationanswer.Table, sqlgraph.NewFieldSpec(calibrationanswer.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(calibrationanswer.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(calibrationanswer.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(calibrationanswer.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.SelectedOption(); ok {
		_spec.SetField(calibrationanswer.FieldSelectedOption, field.TypeInt, value)
		_node.SelectedOption = value
	}
	if value, ok := _c.mutation.CorrectOption(); ok {
		_spec.SetField(calibrationanswer.FieldCorrectOption, field.TypeInt, value)
		_node.CorrectOption = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(calibrationanswer.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(calibrationanswer.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = &value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(calibrationanswer.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalibrationAnswer.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalibrationAnswerUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalibrationAnswerCreate) OnConflict(opts ...sql.ConflictOption) *CalibrationAnswerUpsertOne {
	_c.conflict = opts
	return &CalibrationAnswerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalibrationAnswer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalibrationAnswerCreate) OnConflictColumns(columns ...string) *CalibrationAnswerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalibrationAnswerUpsertOne{
		create: _c,
	}
}

type (
	// CalibrationAnswerUpsertOne is the builder for "upsert"-ing
	//  one CalibrationAnswer node.
	CalibrationAnswerUpsertOne struct {
		create *CalibrationAnswerCreate
	}

	// CalibrationAnswerUpsert is the "OnConflict" setter.
	CalibrationAnswerUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CalibrationAnswer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CalibrationAnswerUpsertOne) UpdateNewValues() *CalibrationAnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(calibrationanswer.FieldUserID)
		}
		if _, exists := u.create.mutation.SkillID(); exists {
			s.SetIgnore(calibrationanswer.FieldSkillID)
		}
		if _, exists := u.create.mutation.Difficulty(); exists {
			s.SetIgnore(calibrationanswer.FieldDifficulty)
		}
		if _, exists := u.create.mutation.SelectedOption(); exists {
			s.SetIgnore(calibrationanswer.FieldSelectedOption)
		}
		if _, exists := u.create.mutation.CorrectOption(); exists {
			s.SetIgnore(calibrationanswer.FieldCorrectOption)
		}
		if _, exists := u.create.mutation.IsCorrect(); exists {
			s.SetIgnore(calibrationanswer.FieldIsCorrect)
		}
		if _, exists := u.create.mutation.ResponseTimeMs(); exists {
			s.SetIgnore(calibrationanswer.FieldResponseTimeMs)
		}
		if _, exists := u.create.mutation.AnsweredAt(); exists {
			s.SetIgnore(calibrationanswer.FieldAnsweredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalibrationAnswer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalibrationAnswerUpsertOne) Ignore() *CalibrationAnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalibrationAnswerUpsertOne) DoNothing() *CalibrationAnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalibrationAnswerCreate.OnConflict
// documentation for more info.
func (u *CalibrationAnswerUpsertOne) Update(set func(*CalibrationAnswerUpsert)) *CalibrationAnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalibrationAnswerUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CalibrationAnswerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalibrationAnswerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalibrationAnswerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalibrationAnswerUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalibrationAnswerUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalibrationAnswerCreateBulk is the builder for creating many CalibrationAnswer entities in bulk.
type CalibrationAnswerCreateBulk struct {
	config
	err      error
	builders []*CalibrationAnswerCreate
	conflict []sql.ConflictOption
}

// Save creates the CalibrationAnswer entities in the database.
func (_c *CalibrationAnswerCreateBulk) Save(ctx context.Context) ([]*CalibrationAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalibrationAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalibrationAnswerMutation)
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
func (_c *CalibrationAnswerCreateBulk) SaveX(ctx context.Context) []*CalibrationAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalibrationAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalibrationAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalibrationAnswer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalibrationAnswerUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalibrationAnswerCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalibrationAnswerUpsertBulk {
	_c.conflict = opts
	return &CalibrationAnswerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalibrationAnswer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalibrationAnswerCreateBulk) OnConflictColumns(columns ...string) *CalibrationAnswerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalibrationAnswerUpsertBulk{
		create: _c,
	}
}

// CalibrationAnswerUpsertBulk is the builder for "upsert"-ing
// a bulk of CalibrationAnswer nodes.
type CalibrationAnswerUpsertBulk struct {
	create *CalibrationAnswerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalibrationAnswer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CalibrationAnswerUpsertBulk) UpdateNewValues() *CalibrationAnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(calibrationanswer.FieldUserID)
			}
			if _, exists := b.mutation.SkillID(); exists {
				s.SetIgnore(calibrationanswer.FieldSkillID)
			}
			if _, exists := b.mutation.Difficulty(); exists {
				s.SetIgnore(calibrationanswer.FieldDifficulty)
			}
			if _, exists := b.mutation.SelectedOption(); exists {
				s.SetIgnore(calibrationanswer.FieldSelectedOption)
			}
			if _, exists := b.mutation.CorrectOption(); exists {
				s.SetIgnore(calibrationanswer.FieldCorrectOption)
			}
			if _, exists := b.mutation.IsCorrect(); exists {
				s.SetIgnore(calibrationanswer.FieldIsCorrect)
			}
			if _, exists := b.mutation.ResponseTimeMs(); exists {
				s.SetIgnore(calibrationanswer.FieldResponseTimeMs)
			}
			if _, exists := b.mutation.AnsweredAt(); exists {
				s.SetIgnore(calibrationanswer.FieldAnsweredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalibrationAnswer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalibrationAnswerUpsertBulk) Ignore() *CalibrationAnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalibrationAnswerUpsertBulk) DoNothing() *CalibrationAnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalibrationAnswerCreateBulk.OnConflict
// documentation for more info.
func (u *CalibrationAnswerUpsertBulk) Update(set func(*CalibrationAnswerUpsert)) *CalibrationAnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalibrationAnswerUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CalibrationAnswerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CalibrationAnswerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalibrationAnswerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalibrationAnswerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
