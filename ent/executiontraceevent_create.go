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
	"github.com/skillissue/engine/ent/executiontraceevent"
)

// ExecutionTraceEventCreate is the builder for creating a ExecutionTraceEvent entity.
type ExecutionTraceEventCreate struct {
	config
	mutation *ExecutionTraceEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ExecutionTraceEventCreate) SetSequence(v int64) *ExecutionTraceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExecutionTraceEventCreate) SetTimestamp(v time.Time) *ExecutionTraceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExecutionTraceEventCreate) SetNillableTimestamp(v *time.Time) *ExecutionTraceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOperation sets the "operation" field.
func (_c *ExecutionTraceEventCreate) SetOperation(v string) *ExecutionTraceEventCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExecutionTraceEventCreate) SetUserID(v string) *ExecutionTraceEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ExecutionTraceEventCreate) SetNillableUserID(v *string) *ExecutionTraceEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *ExecutionTraceEventCreate) SetSkillID(v string) *ExecutionTraceEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_c *ExecutionTraceEventCreate) SetNillableSkillID(v *string) *ExecutionTraceEventCreate {
	if v != nil {
		_c.SetSkillID(*v)
	}
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *ExecutionTraceEventCreate) SetChallengeID(v string) *ExecutionTraceEventCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_c *ExecutionTraceEventCreate) SetNillableChallengeID(v *string) *ExecutionTraceEventCreate {
	if v != nil {
		_c.SetChallengeID(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ExecutionTraceEventCreate) SetSuccess(v bool) *ExecutionTraceEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExecutionTraceEventCreate) SetErrorMessage(v string) *ExecutionTraceEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExecutionTraceEventCreate) SetNillableErrorMessage(v *string) *ExecutionTraceEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionTraceEventCreate) SetDurationMs(v int64) *ExecutionTraceEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExecutionTraceEventCreate) SetNillableDurationMs(v *int64) *ExecutionTraceEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ExecutionTraceEventCreate) SetDetail(v string) *ExecutionTraceEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *ExecutionTraceEventCreate) SetNillableDetail(v *string) *ExecutionTraceEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// Mutation returns the ExecutionTraceEventMutation object of the builder.
func (_c *ExecutionTraceEventCreate) Mutation() *ExecutionTraceEventMutation {
	return _c.mutation
}

// Save creates the ExecutionTraceEvent in the database.
func (_c *ExecutionTraceEventCreate) Save(ctx context.Context) (*ExecutionTraceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionTraceEventCreate) SaveX(ctx context.Context) *ExecutionTraceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionTraceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionTraceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionTraceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := executiontraceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UserID(); !ok {
		v := executiontraceevent.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		v := executiontraceevent.DefaultSkillID
		_c.mutation.SetSkillID(v)
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		v := executiontraceevent.DefaultChallengeID
		_c.mutation.SetChallengeID(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := executiontraceevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := executiontraceevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := executiontraceevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionTraceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExecutionTraceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExecutionTraceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "ExecutionTraceEvent.operation"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExecutionTraceEvent.user_id"`)}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "ExecutionTraceEvent.skill_id"`)}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "ExecutionTraceEvent.challenge_id"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ExecutionTraceEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "ExecutionTraceEvent.error_message"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ExecutionTraceEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "ExecutionTraceEvent.detail"`)}
	}
	return nil
}

func (_c *ExecutionTraceEventCreate) sqlSave(ctx context.Context) (*ExecutionTraceEvent, error) {
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

func (_c *ExecutionTraceEventCreate) createSpec() (*ExecutionTraceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionTraceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executiontraceevent.Table, sqlgraph.NewFieldSpec(executiontraceevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(executiontraceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(executiontraceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(executiontraceevent.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(executiontraceevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(executiontraceevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(executiontraceevent.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(executiontraceevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(executiontraceevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(executiontraceevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(executiontraceevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionTraceEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionTraceEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionTraceEventCreate) OnConflict(opts ...sql.ConflictOption) *ExecutionTraceEventUpsertOne {
	_c.conflict = opts
	return &ExecutionTraceEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionTraceEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionTraceEventCreate) OnConflictColumns(columns ...string) *ExecutionTraceEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionTraceEventUpsertOne{
		create: _c,
	}
}

type (
	// ExecutionTraceEventUpsertOne is the builder for "upsert"-ing
	//  one ExecutionTraceEvent node.
	ExecutionTraceEventUpsertOne struct {
		create *ExecutionTraceEventCreate
	}

	// ExecutionTraceEventUpsert is the "OnConflict" setter.
	ExecutionTraceEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetOperation sets the "operation" field.
func (u *ExecutionTraceEventUpsert) SetOperation(v string) *ExecutionTraceEventUpsert {
	u.Set(executiontraceevent.FieldOperation, v)
	return u
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsert) UpdateOperation() *ExecutionTraceEventUpsert {
	u.SetExcluded(executiontraceevent.FieldOperation)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExecutionTraceEventUpsert) SetUserID(v string) *ExecutionTraceEventUpsert {
	u.Set(executiontraceevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsert) UpdateUserID() *ExecutionTraceEventUpsert {
	u.SetExcluded(executiontraceevent.FieldUserID)
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *ExecutionTraceEventUpsert) SetSkillID(v string) *ExecutionTraceEventUpsert {
	u.Set(executiontraceevent.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsert) UpdateSkillID() *ExecutionTraceEventUpsert {
	u.SetExcluded(executiontraceevent.FieldSkillID)
	return u
}

// SetChallengeID sets the "challenge_id" field.
func (u *ExecutionTraceEventUpsert) SetChallengeID(v string) *ExecutionTraceEventUpsert {
	u.Set(executiontraceevent.FieldChallengeID, v)
	return u
}

// UpdateChallengeID sets the "challenge_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsert) UpdateChallengeID() *ExecutionTraceEventUpsert {
	u.SetExcluded(executiontraceevent.FieldChallengeID)
	return u
}

// SetSuccess sets the "success" field.
func (u *ExecutionTraceEventUpsert) SetSuccess(v bool) *ExecutionTraceEventUpsert {
	u.Set(executiontraceevent.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsert) UpdateSuccess() *ExecutionTraceEventUpsert {
	u.SetExcluded(executiontraceevent.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionTraceEventUpsert) SetErrorMessage(v string) *ExecutionTraceEventUpsert {
	u.Set(executiontraceevent.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsert) UpdateErrorMessage() *ExecutionTraceEventUpsert {
	u.SetExcluded(executiontraceevent.FieldErrorMessage)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *ExecutionTraceEventUpsert) SetDurationMs(v int64) *ExecutionTraceEventUpsert {
	u.Set(executiontraceevent.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsert) UpdateDurationMs() *ExecutionTraceEventUpsert {
	u.SetExcluded(executiontraceevent.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ExecutionTraceEventUpsert) AddDurationMs(v int64) *ExecutionTraceEventUpsert {
	u.Add(executiontraceevent.FieldDurationMs, v)
	return u
}

// SetDetail sets the "detail" field.
func (u *ExecutionTraceEventUpsert) SetDetail(v string) *ExecutionTraceEventUpsert {
	u.Set(executiontraceevent.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsert) UpdateDetail() *ExecutionTraceEventUpsert {
	u.SetExcluded(executiontraceevent.FieldDetail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExecutionTraceEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutionTraceEventUpsertOne) UpdateNewValues() *ExecutionTraceEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(executiontraceevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(executiontraceevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionTraceEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutionTraceEventUpsertOne) Ignore() *ExecutionTraceEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionTraceEventUpsertOne) DoNothing() *ExecutionTraceEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionTraceEventCreate.OnConflict
// documentation for more info.
func (u *ExecutionTraceEventUpsertOne) Update(set func(*ExecutionTraceEventUpsert)) *ExecutionTraceEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionTraceEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetOperation sets the "operation" field.
func (u *ExecutionTraceEventUpsertOne) SetOperation(v string) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertOne) UpdateOperation() *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateOperation()
	})
}

// SetUserID sets the "user_id" field.
func (u *ExecutionTraceEventUpsertOne) SetUserID(v string) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertOne) UpdateUserID() *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateUserID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *ExecutionTraceEventUpsertOne) SetSkillID(v string) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertOne) UpdateSkillID() *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateSkillID()
	})
}

// SetChallengeID sets the "challenge_id" field.
func (u *ExecutionTraceEventUpsertOne) SetChallengeID(v string) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetChallengeID(v)
	})
}

// UpdateChallengeID sets the "challenge_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertOne) UpdateChallengeID() *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateChallengeID()
	})
}

// SetSuccess sets the "success" field.
func (u *ExecutionTraceEventUpsertOne) SetSuccess(v bool) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertOne) UpdateSuccess() *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionTraceEventUpsertOne) SetErrorMessage(v string) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertOne) UpdateErrorMessage() *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ExecutionTraceEventUpsertOne) SetDurationMs(v int64) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ExecutionTraceEventUpsertOne) AddDurationMs(v int64) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertOne) UpdateDurationMs() *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateDurationMs()
	})
}

// SetDetail sets the "detail" field.
func (u *ExecutionTraceEventUpsertOne) SetDetail(v string) *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertOne) UpdateDetail() *ExecutionTraceEventUpsertOne {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateDetail()
	})
}

// Exec executes the query.
func (u *ExecutionTraceEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionTraceEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionTraceEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutionTraceEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutionTraceEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutionTraceEventCreateBulk is the builder for creating many ExecutionTraceEvent entities in bulk.
type ExecutionTraceEventCreateBulk struct {
	config
	err      error
	builders []*ExecutionTraceEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ExecutionTraceEvent entities in the database.
func (_c *ExecutionTraceEventCreateBulk) Save(ctx context.Context) ([]*ExecutionTraceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionTraceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionTraceEventMutation)
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
func (_c *ExecutionTraceEventCreateBulk) SaveX(ctx context.Context) []*ExecutionTraceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionTraceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionTraceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionTraceEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionTraceEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionTraceEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutionTraceEventUpsertBulk {
	_c.conflict = opts
	return &ExecutionTraceEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionTraceEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionTraceEventCreateBulk) OnConflictColumns(columns ...string) *ExecutionTraceEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionTraceEventUpsertBulk{
		create: _c,
	}
}

// ExecutionTraceEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ExecutionTraceEvent nodes.
type ExecutionTraceEventUpsertBulk struct {
	create *ExecutionTraceEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExecutionTraceEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutionTraceEventUpsertBulk) UpdateNewValues() *ExecutionTraceEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(executiontraceevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(executiontraceevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionTraceEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutionTraceEventUpsertBulk) Ignore() *ExecutionTraceEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionTraceEventUpsertBulk) DoNothing() *ExecutionTraceEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionTraceEventCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutionTraceEventUpsertBulk) Update(set func(*ExecutionTraceEventUpsert)) *ExecutionTraceEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionTraceEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetOperation sets the "operation" field.
func (u *ExecutionTraceEventUpsertBulk) SetOperation(v string) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertBulk) UpdateOperation() *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateOperation()
	})
}

// SetUserID sets the "user_id" field.
func (u *ExecutionTraceEventUpsertBulk) SetUserID(v string) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertBulk) UpdateUserID() *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateUserID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *ExecutionTraceEventUpsertBulk) SetSkillID(v string) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertBulk) UpdateSkillID() *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateSkillID()
	})
}

// SetChallengeID sets the "challenge_id" field.
func (u *ExecutionTraceEventUpsertBulk) SetChallengeID(v string) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetChallengeID(v)
	})
}

// UpdateChallengeID sets the "challenge_id" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertBulk) UpdateChallengeID() *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateChallengeID()
	})
}

// SetSuccess sets the "success" field.
func (u *ExecutionTraceEventUpsertBulk) SetSuccess(v bool) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertBulk) UpdateSuccess() *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionTraceEventUpsertBulk) SetErrorMessage(v string) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertBulk) UpdateErrorMessage() *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ExecutionTraceEventUpsertBulk) SetDurationMs(v int64) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ExecutionTraceEventUpsertBulk) AddDurationMs(v int64) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertBulk) UpdateDurationMs() *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateDurationMs()
	})
}

// SetDetail sets the "detail" field.
func (u *ExecutionTraceEventUpsertBulk) SetDetail(v string) *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ExecutionTraceEventUpsertBulk) UpdateDetail() *ExecutionTraceEventUpsertBulk {
	return u.Update(func(s *ExecutionTraceEventUpsert) {
		s.UpdateDetail()
	})
}

// Exec executes the query.
func (u *ExecutionTraceEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutionTraceEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionTraceEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionTraceEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
