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
	"github.com/skillissue/engine/ent/calibrationstate"
)

// CalibrationStateCreate is the builder for creating a CalibrationState entity.
type CalibrationStateCreate struct {
	config
	mutation *CalibrationStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CalibrationStateCreate) SetUserID(v string) *CalibrationStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *CalibrationStateCreate) SetSkillID(v string) *CalibrationStateCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CalibrationStateCreate) SetStatus(v calibrationstate.Status) *CalibrationStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CalibrationStateCreate) SetNillableStatus(v *calibrationstate.Status) *CalibrationStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQuestionsGeneratedAt sets the "questions_generated_at" field.
func (_c *CalibrationStateCreate) SetQuestionsGeneratedAt(v time.Time) *CalibrationStateCreate {
	_c.mutation.SetQuestionsGeneratedAt(v)
	return _c
}

// SetNillableQuestionsGeneratedAt sets the "questions_generated_at" field if the given value is not nil.
func (_c *CalibrationStateCreate) SetNillableQuestionsGeneratedAt(v *time.Time) *CalibrationStateCreate {
	if v != nil {
		_c.SetQuestionsGeneratedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CalibrationStateCreate) SetCompletedAt(v time.Time) *CalibrationStateCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CalibrationStateCreate) SetNillableCompletedAt(v *time.Time) *CalibrationStateCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCalculatedDifficultyTarget sets the "calculated_difficulty_target" field.
func (_c *CalibrationStateCreate) SetCalculatedDifficultyTarget(v int) *CalibrationStateCreate {
	_c.mutation.SetCalculatedDifficultyTarget(v)
	return _c
}

// SetNillableCalculatedDifficultyTarget sets the "calculated_difficulty_target" field if the given value is not nil.
func (_c *CalibrationStateCreate) SetNillableCalculatedDifficultyTarget(v *int) *CalibrationStateCreate {
	if v != nil {
		_c.SetCalculatedDifficultyTarget(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalibrationStateCreate) SetID(v string) *CalibrationStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CalibrationStateCreate) SetNillableID(v *string) *CalibrationStateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CalibrationStateMutation object of the builder.
func (_c *CalibrationStateCreate) Mutation() *CalibrationStateMutation {
	return _c.mutation
}

// Save creates the CalibrationState in the database.
func (_c *CalibrationStateCreate) Save(ctx context.Context) (*CalibrationState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalibrationStateCreate) SaveX(ctx context.Context) *CalibrationState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalibrationStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalibrationStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalibrationStateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := calibrationstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := calibrationstate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalibrationStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CalibrationState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := calibrationstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "CalibrationState.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := calibrationstate.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CalibrationState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := calibrationstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CalculatedDifficultyTarget(); ok {
		if err := calibrationstate.CalculatedDifficultyTargetValidator(v); err != nil {
			return &ValidationError{Name: "calculated_difficulty_target", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.calculated_difficulty_target": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := calibrationstate.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "CalibrationState.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CalibrationStateCreate) sqlSave(ctx context.Context) (*CalibrationState, error) {
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
			return nil, fmt.Errorf("unexpected CalibrationState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalibrationStateCreate) createSpec() (*CalibrationState, *sqlgraph.CreateSpec) {
	var (
		_node = &CalibrationState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calibrationstate.Table, sqlgraph.NewFieldSpec(calibrationstate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(calibrationstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(calibrationstate.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(calibrationstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QuestionsGeneratedAt(); ok {
		_spec.SetField(calibrationstate.FieldQuestionsGeneratedAt, field.TypeTime, value)
		_node.QuestionsGeneratedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(calibrationstate.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CalculatedDifficultyTarget(); ok {
		_spec.SetField(calibrationstate.FieldCalculatedDifficultyTarget, field.TypeInt, value)
		_node.CalculatedDifficultyTarget = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalibrationState.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalibrationStateUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalibrationStateCreate) OnConflict(opts ...sql.ConflictOption) *CalibrationStateUpsertOne {
	_c.conflict = opts
	return &CalibrationStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalibrationState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalibrationStateCreate) OnConflictColumns(columns ...string) *CalibrationStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalibrationStateUpsertOne{
		create: _c,
	}
}

type (
	// CalibrationStateUpsertOne is the builder for "upsert"-ing
	//  one CalibrationState node.
	CalibrationStateUpsertOne struct {
		create *CalibrationStateCreate
	}

	// CalibrationStateUpsert is the "OnConflict" setter.
	CalibrationStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *CalibrationStateUpsert) SetStatus(v calibrationstate.Status) *CalibrationStateUpsert {
	u.Set(calibrationstate.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CalibrationStateUpsert) UpdateStatus() *CalibrationStateUpsert {
	u.SetExcluded(calibrationstate.FieldStatus)
	return u
}

// SetQuestionsGeneratedAt sets the "questions_generated_at" field.
func (u *CalibrationStateUpsert) SetQuestionsGeneratedAt(v time.Time) *CalibrationStateUpsert {
	u.Set(calibrationstate.FieldQuestionsGeneratedAt, v)
	return u
}

// UpdateQuestionsGeneratedAt sets the "questions_generated_at" field to the value that was provided on create.
func (u *CalibrationStateUpsert) UpdateQuestionsGeneratedAt() *CalibrationStateUpsert {
	u.SetExcluded(calibrationstate.FieldQuestionsGeneratedAt)
	return u
}

// ClearQuestionsGeneratedAt clears the value of the "questions_generated_at" field.
func (u *CalibrationStateUpsert) ClearQuestionsGeneratedAt() *CalibrationStateUpsert {
	u.SetNull(calibrationstate.FieldQuestionsGeneratedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CalibrationStateUpsert) SetCompletedAt(v time.Time) *CalibrationStateUpsert {
	u.Set(calibrationstate.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CalibrationStateUpsert) UpdateCompletedAt() *CalibrationStateUpsert {
	u.SetExcluded(calibrationstate.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CalibrationStateUpsert) ClearCompletedAt() *CalibrationStateUpsert {
	u.SetNull(calibrationstate.FieldCompletedAt)
	return u
}

// SetCalculatedDifficultyTarget sets the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsert) SetCalculatedDifficultyTarget(v int) *CalibrationStateUpsert {
	u.Set(calibrationstate.FieldCalculatedDifficultyTarget, v)
	return u
}

// UpdateCalculatedDifficultyTarget sets the "calculated_difficulty_target" field to the value that was provided on create.
func (u *CalibrationStateUpsert) UpdateCalculatedDifficultyTarget() *CalibrationStateUpsert {
	u.SetExcluded(calibrationstate.FieldCalculatedDifficultyTarget)
	return u
}

// AddCalculatedDifficultyTarget adds v to the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsert) AddCalculatedDifficultyTarget(v int) *CalibrationStateUpsert {
	u.Add(calibrationstate.FieldCalculatedDifficultyTarget, v)
	return u
}

// ClearCalculatedDifficultyTarget clears the value of the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsert) ClearCalculatedDifficultyTarget() *CalibrationStateUpsert {
	u.SetNull(calibrationstate.FieldCalculatedDifficultyTarget)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CalibrationState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calibrationstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalibrationStateUpsertOne) UpdateNewValues() *CalibrationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(calibrationstate.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(calibrationstate.FieldUserID)
		}
		if _, exists := u.create.mutation.SkillID(); exists {
			s.SetIgnore(calibrationstate.FieldSkillID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalibrationState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalibrationStateUpsertOne) Ignore() *CalibrationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalibrationStateUpsertOne) DoNothing() *CalibrationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalibrationStateCreate.OnConflict
// documentation for more info.
func (u *CalibrationStateUpsertOne) Update(set func(*CalibrationStateUpsert)) *CalibrationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalibrationStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CalibrationStateUpsertOne) SetStatus(v calibrationstate.Status) *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CalibrationStateUpsertOne) UpdateStatus() *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.UpdateStatus()
	})
}

// SetQuestionsGeneratedAt sets the "questions_generated_at" field.
func (u *CalibrationStateUpsertOne) SetQuestionsGeneratedAt(v time.Time) *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.SetQuestionsGeneratedAt(v)
	})
}

// UpdateQuestionsGeneratedAt sets the "questions_generated_at" field to the value that was provided on create.
func (u *CalibrationStateUpsertOne) UpdateQuestionsGeneratedAt() *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.UpdateQuestionsGeneratedAt()
	})
}

// ClearQuestionsGeneratedAt clears the value of the "questions_generated_at" field.
func (u *CalibrationStateUpsertOne) ClearQuestionsGeneratedAt() *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.ClearQuestionsGeneratedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CalibrationStateUpsertOne) SetCompletedAt(v time.Time) *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CalibrationStateUpsertOne) UpdateCompletedAt() *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CalibrationStateUpsertOne) ClearCompletedAt() *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCalculatedDifficultyTarget sets the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsertOne) SetCalculatedDifficultyTarget(v int) *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.SetCalculatedDifficultyTarget(v)
	})
}

// AddCalculatedDifficultyTarget adds v to the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsertOne) AddCalculatedDifficultyTarget(v int) *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.AddCalculatedDifficultyTarget(v)
	})
}

// UpdateCalculatedDifficultyTarget sets the "calculated_difficulty_target" field to the value that was provided on create.
func (u *CalibrationStateUpsertOne) UpdateCalculatedDifficultyTarget() *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.UpdateCalculatedDifficultyTarget()
	})
}

// ClearCalculatedDifficultyTarget clears the value of the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsertOne) ClearCalculatedDifficultyTarget() *CalibrationStateUpsertOne {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.ClearCalculatedDifficultyTarget()
	})
}

// Exec executes the query.
func (u *CalibrationStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalibrationStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalibrationStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalibrationStateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CalibrationStateUpsertOne.ID is not supported by MySQL driver. Use CalibrationStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalibrationStateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalibrationStateCreateBulk is the builder for creating many CalibrationState entities in bulk.
type CalibrationStateCreateBulk struct {
	config
	err      error
	builders []*CalibrationStateCreate
	conflict []sql.ConflictOption
}

// Save creates the CalibrationState entities in the database.
func (_c *CalibrationStateCreateBulk) Save(ctx context.Context) ([]*CalibrationState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalibrationState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalibrationStateMutation)
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
func (_c *CalibrationStateCreateBulk) SaveX(ctx context.Context) []*CalibrationState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalibrationStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalibrationStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalibrationState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalibrationStateUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalibrationStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalibrationStateUpsertBulk {
	_c.conflict = opts
	return &CalibrationStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalibrationState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalibrationStateCreateBulk) OnConflictColumns(columns ...string) *CalibrationStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalibrationStateUpsertBulk{
		create: _c,
	}
}

// CalibrationStateUpsertBulk is the builder for "upsert"-ing
// a bulk of CalibrationState nodes.
type CalibrationStateUpsertBulk struct {
	create *CalibrationStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalibrationState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calibrationstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalibrationStateUpsertBulk) UpdateNewValues() *CalibrationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(calibrationstate.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(calibrationstate.FieldUserID)
			}
			if _, exists := b.mutation.SkillID(); exists {
				s.SetIgnore(calibrationstate.FieldSkillID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalibrationState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalibrationStateUpsertBulk) Ignore() *CalibrationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalibrationStateUpsertBulk) DoNothing() *CalibrationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalibrationStateCreateBulk.OnConflict
// documentation for more info.
func (u *CalibrationStateUpsertBulk) Update(set func(*CalibrationStateUpsert)) *CalibrationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalibrationStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CalibrationStateUpsertBulk) SetStatus(v calibrationstate.Status) *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CalibrationStateUpsertBulk) UpdateStatus() *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.UpdateStatus()
	})
}

// SetQuestionsGeneratedAt sets the "questions_generated_at" field.
func (u *CalibrationStateUpsertBulk) SetQuestionsGeneratedAt(v time.Time) *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.SetQuestionsGeneratedAt(v)
	})
}

// UpdateQuestionsGeneratedAt sets the "questions_generated_at" field to the value that was provided on create.
func (u *CalibrationStateUpsertBulk) UpdateQuestionsGeneratedAt() *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.UpdateQuestionsGeneratedAt()
	})
}

// ClearQuestionsGeneratedAt clears the value of the "questions_generated_at" field.
func (u *CalibrationStateUpsertBulk) ClearQuestionsGeneratedAt() *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.ClearQuestionsGeneratedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CalibrationStateUpsertBulk) SetCompletedAt(v time.Time) *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CalibrationStateUpsertBulk) UpdateCompletedAt() *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CalibrationStateUpsertBulk) ClearCompletedAt() *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCalculatedDifficultyTarget sets the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsertBulk) SetCalculatedDifficultyTarget(v int) *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.SetCalculatedDifficultyTarget(v)
	})
}

// AddCalculatedDifficultyTarget adds v to the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsertBulk) AddCalculatedDifficultyTarget(v int) *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.AddCalculatedDifficultyTarget(v)
	})
}

// UpdateCalculatedDifficultyTarget sets the "calculated_difficulty_target" field to the value that was provided on create.
func (u *CalibrationStateUpsertBulk) UpdateCalculatedDifficultyTarget() *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.UpdateCalculatedDifficultyTarget()
	})
}

// ClearCalculatedDifficultyTarget clears the value of the "calculated_difficulty_target" field.
func (u *CalibrationStateUpsertBulk) ClearCalculatedDifficultyTarget() *CalibrationStateUpsertBulk {
	return u.Update(func(s *CalibrationStateUpsert) {
		s.ClearCalculatedDifficultyTarget()
	})
}

// Exec executes the query.
func (u *CalibrationStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CalibrationStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalibrationStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalibrationStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
