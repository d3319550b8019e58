// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillissue/engine/ent/executiontraceevent"
	"github.com/skillissue/engine/ent/predicate"
)

// ExecutionTraceEventUpdate is the builder for updating ExecutionTraceEvent entities.
type ExecutionTraceEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionTraceEventMutation
}

// Where appends a list predicates to the ExecutionTraceEventUpdate builder.
func (_u *ExecutionTraceEventUpdate) Where(ps ...predicate.ExecutionTraceEvent) *ExecutionTraceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *ExecutionTraceEventUpdate) SetOperation(v string) *ExecutionTraceEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdate) SetNillableOperation(v *string) *ExecutionTraceEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExecutionTraceEventUpdate) SetUserID(v string) *ExecutionTraceEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdate) SetNillableUserID(v *string) *ExecutionTraceEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ExecutionTraceEventUpdate) SetSkillID(v string) *ExecutionTraceEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdate) SetNillableSkillID(v *string) *ExecutionTraceEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ExecutionTraceEventUpdate) SetChallengeID(v string) *ExecutionTraceEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdate) SetNillableChallengeID(v *string) *ExecutionTraceEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExecutionTraceEventUpdate) SetSuccess(v bool) *ExecutionTraceEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdate) SetNillableSuccess(v *bool) *ExecutionTraceEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionTraceEventUpdate) SetErrorMessage(v string) *ExecutionTraceEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdate) SetNillableErrorMessage(v *string) *ExecutionTraceEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionTraceEventUpdate) SetDurationMs(v int64) *ExecutionTraceEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdate) SetNillableDurationMs(v *int64) *ExecutionTraceEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionTraceEventUpdate) AddDurationMs(v int64) *ExecutionTraceEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ExecutionTraceEventUpdate) SetDetail(v string) *ExecutionTraceEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdate) SetNillableDetail(v *string) *ExecutionTraceEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// Mutation returns the ExecutionTraceEventMutation object of the builder.
func (_u *ExecutionTraceEventUpdate) Mutation() *ExecutionTraceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionTraceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionTraceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionTraceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionTraceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionTraceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(executiontraceevent.Table, executiontraceevent.Columns, sqlgraph.NewFieldSpec(executiontraceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(executiontraceevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(executiontraceevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(executiontraceevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(executiontraceevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(executiontraceevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executiontraceevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executiontraceevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executiontraceevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(executiontraceevent.FieldDetail, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executiontraceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionTraceEventUpdateOne is the builder for updating a single ExecutionTraceEvent entity.
type ExecutionTraceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionTraceEventMutation
}

// SetOperation sets the "operation" field.
func (_u *ExecutionTraceEventUpdateOne) SetOperation(v string) *ExecutionTraceEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdateOne) SetNillableOperation(v *string) *ExecutionTraceEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExecutionTraceEventUpdateOne) SetUserID(v string) *ExecutionTraceEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdateOne) SetNillableUserID(v *string) *ExecutionTraceEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ExecutionTraceEventUpdateOne) SetSkillID(v string) *ExecutionTraceEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdateOne) SetNillableSkillID(v *string) *ExecutionTraceEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ExecutionTraceEventUpdateOne) SetChallengeID(v string) *ExecutionTraceEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdateOne) SetNillableChallengeID(v *string) *ExecutionTraceEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExecutionTraceEventUpdateOne) SetSuccess(v bool) *ExecutionTraceEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdateOne) SetNillableSuccess(v *bool) *ExecutionTraceEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionTraceEventUpdateOne) SetErrorMessage(v string) *ExecutionTraceEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdateOne) SetNillableErrorMessage(v *string) *ExecutionTraceEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionTraceEventUpdateOne) SetDurationMs(v int64) *ExecutionTraceEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdateOne) SetNillableDurationMs(v *int64) *ExecutionTraceEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionTraceEventUpdateOne) AddDurationMs(v int64) *ExecutionTraceEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ExecutionTraceEventUpdateOne) SetDetail(v string) *ExecutionTraceEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ExecutionTraceEventUpdateOne) SetNillableDetail(v *string) *ExecutionTraceEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// Mutation returns the ExecutionTraceEventMutation object of the builder.
func (_u *ExecutionTraceEventUpdateOne) Mutation() *ExecutionTraceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionTraceEventUpdate builder.
func (_u *ExecutionTraceEventUpdateOne) Where(ps ...predicate.ExecutionTraceEvent) *ExecutionTraceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionTraceEventUpdateOne) Select(field string, fields ...string) *ExecutionTraceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionTraceEvent entity.
func (_u *ExecutionTraceEventUpdateOne) Save(ctx context.Context) (*ExecutionTraceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionTraceEventUpdateOne) SaveX(ctx context.Context) *ExecutionTraceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionTraceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionTraceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionTraceEventUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionTraceEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(executiontraceevent.Table, executiontraceevent.Columns, sqlgraph.NewFieldSpec(executiontraceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionTraceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executiontraceevent.FieldID)
		for _, f := range fields {
			if !executiontraceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executiontraceevent.FieldID {
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
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(executiontraceevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(executiontraceevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(executiontraceevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(executiontraceevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(executiontraceevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executiontraceevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executiontraceevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executiontraceevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(executiontraceevent.FieldDetail, field.TypeString, value)
	}
	_node = &ExecutionTraceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executiontraceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
