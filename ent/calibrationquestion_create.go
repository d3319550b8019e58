// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/calibrationquestion"
)

// CalibrationQuestionCreate is the builder for creating a CalibrationQuestion entity.
type CalibrationQuestionCreate struct {
	config
	mutation *CalibrationQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSkillID sets the "skill_id" field.
func (_c *CalibrationQuestionCreate) SetSkillID(v string) *CalibrationQuestionCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CalibrationQuestionCreate) SetDifficulty(v int) *CalibrationQuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *CalibrationQuestionCreate) SetQuestion(v string) *CalibrationQuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *CalibrationQuestionCreate) SetOptions(v []string) *CalibrationQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (_c *CalibrationQuestionCreate) SetCorrectOptionIndex(v int) *CalibrationQuestionCreate {
	_c.mutation.SetCorrectOptionIndex(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *CalibrationQuestionCreate) SetExplanation(v string) *CalibrationQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *CalibrationQuestionCreate) SetNillableExplanation(v *string) *CalibrationQuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// Mutation returns the CalibrationQuestionMutation object of the builder.
func (_c *CalibrationQuestionCreate) Mutation() *CalibrationQuestionMutation {
	return _c.mutation
}

// Save creates the CalibrationQuestion in the database.
func (_c *CalibrationQuestionCreate) Save(ctx context.Context) (*CalibrationQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalibrationQuestionCreate) SaveX(ctx context.Context) *CalibrationQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalibrationQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalibrationQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalibrationQuestionCreate) defaults() {
	if _, ok := _c.mutation.Explanation(); !ok {
		v := calibrationquestion.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalibrationQuestionCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "CalibrationQuestion.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := calibrationquestion.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "CalibrationQuestion.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CalibrationQuestion.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := calibrationquestion.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "CalibrationQuestion.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "CalibrationQuestion.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := calibrationquestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "CalibrationQuestion.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "CalibrationQuestion.options"`)}
	}
	if _, ok := _c.mutation.CorrectOptionIndex(); !ok {
		return &ValidationError{Name: "correct_option_index", err: errors.New(`ent: missing required field "CalibrationQuestion.correct_option_index"`)}
	}
	if v, ok := _c.mutation.CorrectOptionIndex(); ok {
		if err := calibrationquestion.CorrectOptionIndexValidator(v); err != nil {
			return &ValidationError{Name: "correct_option_index", err: fmt.Errorf(`ent: validator failed for field "CalibrationQuestion.correct_option_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "CalibrationQuestion.explanation"`)}
	}
	return nil
}

func (_c *CalibrationQuestionCreate) sqlSave(ctx context.Context) (*CalibrationQuestion, error) {
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

func (_c *CalibrationQuestionCreate) createSpec() (*CalibrationQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &CalibrationQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calibrationquestion.Table, sqlgraph.NewFieldSpec(calibrationquestion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(calibrationquestion.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(calibrationquestion.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(calibrationquestion.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(calibrationquestion.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectOptionIndex(); ok {
		_spec.SetField(calibrationquestion.FieldCorrectOptionIndex, field.TypeInt, value)
		_node.CorrectOptionIndex = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(calibrationquestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalibrationQuestion.Create().
//		SetSkillID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalibrationQuestionUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalibrationQuestionCreate) OnConflict(opts ...sql.ConflictOption) *CalibrationQuestionUpsertOne {
	_c.conflict = opts
	return &CalibrationQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalibrationQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalibrationQuestionCreate) OnConflictColumns(columns ...string) *CalibrationQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalibrationQuestionUpsertOne{
		create: _c,
	}
}

type (
	// CalibrationQuestionUpsertOne is the builder for "upsert"-ing
	//  one CalibrationQuestion node.
	CalibrationQuestionUpsertOne struct {
		create *CalibrationQuestionCreate
	}

	// CalibrationQuestionUpsert is the "OnConflict" setter.
	CalibrationQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestion sets the "question" field.
func (u *CalibrationQuestionUpsert) SetQuestion(v string) *CalibrationQuestionUpsert {
	u.Set(calibrationquestion.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *CalibrationQuestionUpsert) UpdateQuestion() *CalibrationQuestionUpsert {
	u.SetExcluded(calibrationquestion.FieldQuestion)
	return u
}

// SetOptions sets the "options" field.
func (u *CalibrationQuestionUpsert) SetOptions(v []string) *CalibrationQuestionUpsert {
	u.Set(calibrationquestion.FieldOptions, v)
	return u
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *CalibrationQuestionUpsert) UpdateOptions() *CalibrationQuestionUpsert {
	u.SetExcluded(calibrationquestion.FieldOptions)
	return u
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (u *CalibrationQuestionUpsert) SetCorrectOptionIndex(v int) *CalibrationQuestionUpsert {
	u.Set(calibrationquestion.FieldCorrectOptionIndex, v)
	return u
}

// UpdateCorrectOptionIndex sets the "correct_option_index" field to the value that was provided on create.
func (u *CalibrationQuestionUpsert) UpdateCorrectOptionIndex() *CalibrationQuestionUpsert {
	u.SetExcluded(calibrationquestion.FieldCorrectOptionIndex)
	return u
}

// AddCorrectOptionIndex adds v to the "correct_option_index" field.
func (u *CalibrationQuestionUpsert) AddCorrectOptionIndex(v int) *CalibrationQuestionUpsert {
	u.Add(calibrationquestion.FieldCorrectOptionIndex, v)
	return u
}

// SetExplanation sets the "explanation" field.
func (u *CalibrationQuestionUpsert) SetExplanation(v string) *CalibrationQuestionUpsert {
	u.Set(calibrationquestion.FieldExplanation, v)
	return u
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *CalibrationQuestionUpsert) UpdateExplanation() *CalibrationQuestionUpsert {
	u.SetExcluded(calibrationquestion.FieldExplanation)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CalibrationQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CalibrationQuestionUpsertOne) UpdateNewValues() *CalibrationQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SkillID(); exists {
			s.SetIgnore(calibrationquestion.FieldSkillID)
		}
		if _, exists := u.create.mutation.Difficulty(); exists {
			s.SetIgnore(calibrationquestion.FieldDifficulty)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalibrationQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalibrationQuestionUpsertOne) Ignore() *CalibrationQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalibrationQuestionUpsertOne) DoNothing() *CalibrationQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalibrationQuestionCreate.OnConflict
// documentation for more info.
func (u *CalibrationQuestionUpsertOne) Update(set func(*CalibrationQuestionUpsert)) *CalibrationQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalibrationQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestion sets the "question" field.
func (u *CalibrationQuestionUpsertOne) SetQuestion(v string) *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *CalibrationQuestionUpsertOne) UpdateQuestion() *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.UpdateQuestion()
	})
}

// SetOptions sets the "options" field.
func (u *CalibrationQuestionUpsertOne) SetOptions(v []string) *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *CalibrationQuestionUpsertOne) UpdateOptions() *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.UpdateOptions()
	})
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (u *CalibrationQuestionUpsertOne) SetCorrectOptionIndex(v int) *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.SetCorrectOptionIndex(v)
	})
}

// AddCorrectOptionIndex adds v to the "correct_option_index" field.
func (u *CalibrationQuestionUpsertOne) AddCorrectOptionIndex(v int) *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.AddCorrectOptionIndex(v)
	})
}

// UpdateCorrectOptionIndex sets the "correct_option_index" field to the value that was provided on create.
func (u *CalibrationQuestionUpsertOne) UpdateCorrectOptionIndex() *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.UpdateCorrectOptionIndex()
	})
}

// SetExplanation sets the "explanation" field.
func (u *CalibrationQuestionUpsertOne) SetExplanation(v string) *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.SetExplanation(v)
	})
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *CalibrationQuestionUpsertOne) UpdateExplanation() *CalibrationQuestionUpsertOne {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.UpdateExplanation()
	})
}

// Exec executes the query.
func (u *CalibrationQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalibrationQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalibrationQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalibrationQuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalibrationQuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalibrationQuestionCreateBulk is the builder for creating many CalibrationQuestion entities in bulk.
type CalibrationQuestionCreateBulk struct {
	config
	err      error
	builders []*CalibrationQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the CalibrationQuestion entities in the database.
func (_c *CalibrationQuestionCreateBulk) Save(ctx context.Context) ([]*CalibrationQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalibrationQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalibrationQuestionMutation)
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
func (_c *CalibrationQuestionCreateBulk) SaveX(ctx context.Context) []*CalibrationQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalibrationQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalibrationQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalibrationQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalibrationQuestionUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalibrationQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalibrationQuestionUpsertBulk {
	_c.conflict = opts
	return &CalibrationQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalibrationQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalibrationQuestionCreateBulk) OnConflictColumns(columns ...string) *CalibrationQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalibrationQuestionUpsertBulk{
		create: _c,
	}
}

// CalibrationQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of CalibrationQuestion nodes.
type CalibrationQuestionUpsertBulk struct {
	create *CalibrationQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalibrationQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CalibrationQuestionUpsertBulk) UpdateNewValues() *CalibrationQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SkillID(); exists {
				s.SetIgnore(calibrationquestion.FieldSkillID)
			}
			if _, exists := b.mutation.Difficulty(); exists {
				s.SetIgnore(calibrationquestion.FieldDifficulty)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalibrationQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalibrationQuestionUpsertBulk) Ignore() *CalibrationQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalibrationQuestionUpsertBulk) DoNothing() *CalibrationQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalibrationQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *CalibrationQuestionUpsertBulk) Update(set func(*CalibrationQuestionUpsert)) *CalibrationQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalibrationQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestion sets the "question" field.
func (u *CalibrationQuestionUpsertBulk) SetQuestion(v string) *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *CalibrationQuestionUpsertBulk) UpdateQuestion() *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.UpdateQuestion()
	})
}

// SetOptions sets the "options" field.
func (u *CalibrationQuestionUpsertBulk) SetOptions(v []string) *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *CalibrationQuestionUpsertBulk) UpdateOptions() *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.UpdateOptions()
	})
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (u *CalibrationQuestionUpsertBulk) SetCorrectOptionIndex(v int) *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.SetCorrectOptionIndex(v)
	})
}

// AddCorrectOptionIndex adds v to the "correct_option_index" field.
func (u *CalibrationQuestionUpsertBulk) AddCorrectOptionIndex(v int) *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.AddCorrectOptionIndex(v)
	})
}

// UpdateCorrectOptionIndex sets the "correct_option_index" field to the value that was provided on create.
func (u *CalibrationQuestionUpsertBulk) UpdateCorrectOptionIndex() *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.UpdateCorrectOptionIndex()
	})
}

// SetExplanation sets the "explanation" field.
func (u *CalibrationQuestionUpsertBulk) SetExplanation(v string) *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.SetExplanation(v)
	})
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *CalibrationQuestionUpsertBulk) UpdateExplanation() *CalibrationQuestionUpsertBulk {
	return u.Update(func(s *CalibrationQuestionUpsert) {
		s.UpdateExplanation()
	})
}

// Exec executes the query.
func (u *CalibrationQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CalibrationQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalibrationQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalibrationQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
