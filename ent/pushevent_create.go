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
	"github.com/skillissue/engine/ent/pushevent"
)

// PushEventCreate is the builder for creating a PushEvent entity.
type PushEventCreate struct {
	config
	mutation *PushEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChallengeID sets the "challenge_id" field.
func (_c *PushEventCreate) SetChallengeID(v string) *PushEventCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PushEventCreate) SetStatus(v pushevent.Status) *PushEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PushEventCreate) SetNillableStatus(v *pushevent.Status) *PushEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *PushEventCreate) SetSentAt(v time.Time) *PushEventCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *PushEventCreate) SetNillableSentAt(v *time.Time) *PushEventCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// Mutation returns the PushEventMutation object of the builder.
func (_c *PushEventCreate) Mutation() *PushEventMutation {
	return _c.mutation
}

// Save creates the PushEvent in the database.
func (_c *PushEventCreate) Save(ctx context.Context) (*PushEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PushEventCreate) SaveX(ctx context.Context) *PushEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PushEventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pushevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		v := pushevent.DefaultSentAt()
		_c.mutation.SetSentAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PushEventCreate) check() error {
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "PushEvent.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := pushevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "PushEvent.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PushEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pushevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PushEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "PushEvent.sent_at"`)}
	}
	return nil
}

func (_c *PushEventCreate) sqlSave(ctx context.Context) (*PushEvent, error) {
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

func (_c *PushEventCreate) createSpec() (*PushEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PushEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pushevent.Table, sqlgraph.NewFieldSpec(pushevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(pushevent.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pushevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(pushevent.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushEvent.Create().
//		SetChallengeID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushEventUpsert) {
//			SetChallengeID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushEventCreate) OnConflict(opts ...sql.ConflictOption) *PushEventUpsertOne {
	_c.conflict = opts
	return &PushEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushEventCreate) OnConflictColumns(columns ...string) *PushEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushEventUpsertOne{
		create: _c,
	}
}

type (
	// PushEventUpsertOne is the builder for "upsert"-ing
	//  one PushEvent node.
	PushEventUpsertOne struct {
		create *PushEventCreate
	}

	// PushEventUpsert is the "OnConflict" setter.
	PushEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *PushEventUpsert) SetStatus(v pushevent.Status) *PushEventUpsert {
	u.Set(pushevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushEventUpsert) UpdateStatus() *PushEventUpsert {
	u.SetExcluded(pushevent.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PushEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PushEventUpsertOne) UpdateNewValues() *PushEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ChallengeID(); exists {
			s.SetIgnore(pushevent.FieldChallengeID)
		}
		if _, exists := u.create.mutation.SentAt(); exists {
			s.SetIgnore(pushevent.FieldSentAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PushEventUpsertOne) Ignore() *PushEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushEventUpsertOne) DoNothing() *PushEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushEventCreate.OnConflict
// documentation for more info.
func (u *PushEventUpsertOne) Update(set func(*PushEventUpsert)) *PushEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PushEventUpsertOne) SetStatus(v pushevent.Status) *PushEventUpsertOne {
	return u.Update(func(s *PushEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushEventUpsertOne) UpdateStatus() *PushEventUpsertOne {
	return u.Update(func(s *PushEventUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *PushEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PushEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PushEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PushEventCreateBulk is the builder for creating many PushEvent entities in bulk.
type PushEventCreateBulk struct {
	config
	err      error
	builders []*PushEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PushEvent entities in the database.
func (_c *PushEventCreateBulk) Save(ctx context.Context) ([]*PushEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PushEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PushEventMutation)
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
func (_c *PushEventCreateBulk) SaveX(ctx context.Context) []*PushEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushEventUpsert) {
//			SetChallengeID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PushEventUpsertBulk {
	_c.conflict = opts
	return &PushEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushEventCreateBulk) OnConflictColumns(columns ...string) *PushEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushEventUpsertBulk{
		create: _c,
	}
}

// PushEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PushEvent nodes.
type PushEventUpsertBulk struct {
	create *PushEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PushEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PushEventUpsertBulk) UpdateNewValues() *PushEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ChallengeID(); exists {
				s.SetIgnore(pushevent.FieldChallengeID)
			}
			if _, exists := b.mutation.SentAt(); exists {
				s.SetIgnore(pushevent.FieldSentAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PushEventUpsertBulk) Ignore() *PushEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushEventUpsertBulk) DoNothing() *PushEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushEventCreateBulk.OnConflict
// documentation for more info.
func (u *PushEventUpsertBulk) Update(set func(*PushEventUpsert)) *PushEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PushEventUpsertBulk) SetStatus(v pushevent.Status) *PushEventUpsertBulk {
	return u.Update(func(s *PushEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushEventUpsertBulk) UpdateStatus() *PushEventUpsertBulk {
	return u.Update(func(s *PushEventUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *PushEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PushEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
