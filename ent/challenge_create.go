// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/challenge"
)

// ChallengeCreate is the builder for creating a Challenge entity.
type ChallengeCreate struct {
	config
	mutation *ChallengeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSkillID sets the "skill_id" field.
func (_c *ChallengeCreate) SetSkillID(v string) *ChallengeCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChallengeCreate) SetUserID(v string) *ChallengeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ChallengeCreate) SetDifficulty(v int) *ChallengeCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ChallengeCreate) SetQuestion(v string) *ChallengeCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ChallengeCreate) SetOptions(v []string) *ChallengeCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (_c *ChallengeCreate) SetCorrectOptionIndex(v int) *ChallengeCreate {
	_c.mutation.SetCorrectOptionIndex(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ChallengeCreate) SetExplanation(v string) *ChallengeCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableExplanation(v *string) *ChallengeCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetGeneratorID sets the "generator_id" field.
func (_c *ChallengeCreate) SetGeneratorID(v string) *ChallengeCreate {
	_c.mutation.SetGeneratorID(v)
	return _c
}

// SetNillableGeneratorID sets the "generator_id" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableGeneratorID(v *string) *ChallengeCreate {
	if v != nil {
		_c.SetGeneratorID(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *ChallengeCreate) SetPromptVersion(v string) *ChallengeCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillablePromptVersion(v *string) *ChallengeCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChallengeCreate) SetCreatedAt(v time.Time) *ChallengeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableCreatedAt(v *time.Time) *ChallengeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChallengeCreate) SetID(v string) *ChallengeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableID(v *string) *ChallengeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChallengeMutation object of the builder.
func (_c *ChallengeCreate) Mutation() *ChallengeMutation {
	return _c.mutation
}

// Save creates the Challenge in the database.
func (_c *ChallengeCreate) Save(ctx context.Context) (*Challenge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeCreate) SaveX(ctx context.Context) *Challenge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeCreate) defaults() {
	if _, ok := _c.mutation.Explanation(); !ok {
		v := challenge.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.GeneratorID(); !ok {
		v := challenge.DefaultGeneratorID
		_c.mutation.SetGeneratorID(v)
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		v := challenge.DefaultPromptVersion
		_c.mutation.SetPromptVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := challenge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := challenge.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Challenge.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := challenge.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Challenge.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Challenge.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := challenge.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Challenge.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Challenge.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := challenge.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Challenge.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Challenge.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := challenge.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Challenge.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "Challenge.options"`)}
	}
	if _, ok := _c.mutation.CorrectOptionIndex(); !ok {
		return &ValidationError{Name: "correct_option_index", err: errors.New(`ent: missing required field "Challenge.correct_option_index"`)}
	}
	if v, ok := _c.mutation.CorrectOptionIndex(); ok {
		if err := challenge.CorrectOptionIndexValidator(v); err != nil {
			return &ValidationError{Name: "correct_option_index", err: fmt.Errorf(`ent: validator failed for field "Challenge.correct_option_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Challenge.explanation"`)}
	}
	if _, ok := _c.mutation.GeneratorID(); !ok {
		return &ValidationError{Name: "generator_id", err: errors.New(`ent: missing required field "Challenge.generator_id"`)}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "Challenge.prompt_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Challenge.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := challenge.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Challenge.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ChallengeCreate) sqlSave(ctx context.Context) (*Challenge, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Challenge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChallengeCreate) createSpec() (*Challenge, *sqlgraph.CreateSpec) {
	var (
		_node = &Challenge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challenge.Table, sqlgraph.NewFieldSpec(challenge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(challenge.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(challenge.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(challenge.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(challenge.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(challenge.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectOptionIndex(); ok {
		_spec.SetField(challenge.FieldCorrectOptionIndex, field.TypeInt, value)
		_node.CorrectOptionIndex = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(challenge.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.GeneratorID(); ok {
		_spec.SetField(challenge.FieldGeneratorID, field.TypeString, value)
		_node.GeneratorID = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(challenge.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(challenge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Challenge.Create().
//		SetSkillID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChallengeUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChallengeCreate) OnConflict(opts ...sql.ConflictOption) *ChallengeUpsertOne {
	_c.conflict = opts
	return &ChallengeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Challenge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChallengeCreate) OnConflictColumns(columns ...string) *ChallengeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChallengeUpsertOne{
		create: _c,
	}
}

type (
	// ChallengeUpsertOne is the builder for "upsert"-ing
	//  one Challenge node.
	ChallengeUpsertOne struct {
		create *ChallengeCreate
	}

	// ChallengeUpsert is the "OnConflict" setter.
	ChallengeUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Challenge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(challenge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChallengeUpsertOne) UpdateNewValues() *ChallengeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(challenge.FieldID)
		}
		if _, exists := u.create.mutation.SkillID(); exists {
			s.SetIgnore(challenge.FieldSkillID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(challenge.FieldUserID)
		}
		if _, exists := u.create.mutation.Difficulty(); exists {
			s.SetIgnore(challenge.FieldDifficulty)
		}
		if _, exists := u.create.mutation.Question(); exists {
			s.SetIgnore(challenge.FieldQuestion)
		}
		if _, exists := u.create.mutation.Options(); exists {
			s.SetIgnore(challenge.FieldOptions)
		}
		if _, exists := u.create.mutation.CorrectOptionIndex(); exists {
			s.SetIgnore(challenge.FieldCorrectOptionIndex)
		}
		if _, exists := u.create.mutation.Explanation(); exists {
			s.SetIgnore(challenge.FieldExplanation)
		}
		if _, exists := u.create.mutation.GeneratorID(); exists {
			s.SetIgnore(challenge.FieldGeneratorID)
		}
		if _, exists := u.create.mutation.PromptVersion(); exists {
			s.SetIgnore(challenge.FieldPromptVersion)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(challenge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Challenge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChallengeUpsertOne) Ignore() *ChallengeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChallengeUpsertOne) DoNothing() *ChallengeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChallengeCreate.OnConflict
// documentation for more info.
func (u *ChallengeUpsertOne) Update(set func(*ChallengeUpsert)) *ChallengeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChallengeUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ChallengeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChallengeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChallengeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChallengeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChallengeUpsertOne.ID is not supported by MySQL driver. Use ChallengeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChallengeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChallengeCreateBulk is the builder for creating many Challenge entities in bulk.
type ChallengeCreateBulk struct {
	config
	err      error
	builders []*ChallengeCreate
	conflict []sql.ConflictOption
}

// Save creates the Challenge entities in the database.
func (_c *ChallengeCreateBulk) Save(ctx context.Context) ([]*Challenge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Challenge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeMutation)
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
func (_c *ChallengeCreateBulk) SaveX(ctx context.Context) []*Challenge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Challenge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChallengeUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChallengeCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChallengeUpsertBulk {
	_c.conflict = opts
	return &ChallengeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Challenge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChallengeCreateBulk) OnConflictColumns(columns ...string) *ChallengeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChallengeUpsertBulk{
		create: _c,
	}
}

// ChallengeUpsertBulk is the builder for "upsert"-ing
// a bulk of Challenge nodes.
type ChallengeUpsertBulk struct {
	create *ChallengeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Challenge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(challenge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChallengeUpsertBulk) UpdateNewValues() *ChallengeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(challenge.FieldID)
			}
			if _, exists := b.mutation.SkillID(); exists {
				s.SetIgnore(challenge.FieldSkillID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(challenge.FieldUserID)
			}
			if _, exists := b.mutation.Difficulty(); exists {
				s.SetIgnore(challenge.FieldDifficulty)
			}
			if _, exists := b.mutation.Question(); exists {
				s.SetIgnore(challenge.FieldQuestion)
			}
			if _, exists := b.mutation.Options(); exists {
				s.SetIgnore(challenge.FieldOptions)
			}
			if _, exists := b.mutation.CorrectOptionIndex(); exists {
				s.SetIgnore(challenge.FieldCorrectOptionIndex)
			}
			if _, exists := b.mutation.Explanation(); exists {
				s.SetIgnore(challenge.FieldExplanation)
			}
			if _, exists := b.mutation.GeneratorID(); exists {
				s.SetIgnore(challenge.FieldGeneratorID)
			}
			if _, exists := b.mutation.PromptVersion(); exists {
				s.SetIgnore(challenge.FieldPromptVersion)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(challenge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Challenge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChallengeUpsertBulk) Ignore() *ChallengeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChallengeUpsertBulk) DoNothing() *ChallengeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChallengeCreateBulk.OnConflict
// documentation for more info.
func (u *ChallengeUpsertBulk) Update(set func(*ChallengeUpsert)) *ChallengeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChallengeUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ChallengeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChallengeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChallengeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChallengeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
