// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/calibrationanswer"
	"github.com/skillissue/engine/ent/calibrationquestion"
	"github.com/skillissue/engine/ent/calibrationstate"
	"github.com/skillissue/engine/ent/challenge"
	"github.com/skillissue/engine/ent/executiontraceevent"
	"github.com/skillissue/engine/ent/llmrequestevent"
	"github.com/skillissue/engine/ent/performancestate"
	"github.com/skillissue/engine/ent/predicate"
	"github.com/skillissue/engine/ent/pushevent"
	"github.com/skillissue/engine/ent/skill"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCalibrationAnswer   = "CalibrationAnswer"
	TypeCalibrationQuestion = "CalibrationQuestion"
	TypeCalibrationState    = "CalibrationState"
	TypeChallenge           = "Challenge"
	TypeExecutionTraceEvent = "ExecutionTraceEvent"
	TypeLLMRequestEvent     = "LLMRequestEvent"
	TypePerformanceState    = "PerformanceState"
	TypePushEvent           = "PushEvent"
	TypeSkill               = "Skill"
)

// CalibrationAnswerMutation represents an operation that mutates the CalibrationAnswer nodes in the graph.
type CalibrationAnswerMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	skill_id            *string
	difficulty          *int
	adddifficulty       *int
	selected_option     *int
	addselected_option  *int
	correct_option      *int
	addcorrect_option   *int
	is_correct          *bool
	response_time_ms    *int64
	addresponse_time_ms *int64
	answered_at         *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*CalibrationAnswer, error)
	predicates          []predicate.CalibrationAnswer
}

var _ ent.Mutation = (*CalibrationAnswerMutation)(nil)

// calibrationanswerOption allows management of the mutation configuration using functional options.
type calibrationanswerOption func(*CalibrationAnswerMutation)

// newCalibrationAnswerMutation creates new mutation for the CalibrationAnswer entity.
func newCalibrationAnswerMutation(c config, op Op, opts ...calibrationanswerOption) *CalibrationAnswerMutation {
	m := &CalibrationAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeCalibrationAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalibrationAnswerID sets the ID field of the mutation.
func withCalibrationAnswerID(id int) calibrationanswerOption {
	return func(m *CalibrationAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *CalibrationAnswer
		)
		m.oldValue = func(ctx context.Context) (*CalibrationAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalibrationAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalibrationAnswer sets the old CalibrationAnswer of the mutation.
func withCalibrationAnswer(node *CalibrationAnswer) calibrationanswerOption {
	return func(m *CalibrationAnswerMutation) {
		m.oldValue = func(context.Context) (*CalibrationAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalibrationAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalibrationAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalibrationAnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalibrationAnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalibrationAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CalibrationAnswerMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CalibrationAnswerMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CalibrationAnswer entity.
// If the CalibrationAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationAnswerMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CalibrationAnswerMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *CalibrationAnswerMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *CalibrationAnswerMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the CalibrationAnswer entity.
// If the CalibrationAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationAnswerMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *CalibrationAnswerMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *CalibrationAnswerMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *CalibrationAnswerMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the CalibrationAnswer entity.
// If the CalibrationAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationAnswerMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *CalibrationAnswerMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *CalibrationAnswerMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *CalibrationAnswerMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetSelectedOption sets the "selected_option" field.
func (m *CalibrationAnswerMutation) SetSelectedOption(i int) {
	m.selected_option = &i
	m.addselected_option = nil
}

// SelectedOption returns the value of the "selected_option" field in the mutation.
func (m *CalibrationAnswerMutation) SelectedOption() (r int, exists bool) {
	v := m.selected_option
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedOption returns the old "selected_option" field's value of the CalibrationAnswer entity.
// If the CalibrationAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationAnswerMutation) OldSelectedOption(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedOption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedOption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedOption: %w", err)
	}
	return oldValue.SelectedOption, nil
}

// AddSelectedOption adds i to the "selected_option" field.
func (m *CalibrationAnswerMutation) AddSelectedOption(i int) {
	if m.addselected_option != nil {
		*m.addselected_option += i
	} else {
		m.addselected_option = &i
	}
}

// AddedSelectedOption returns the value that was added to the "selected_option" field in this mutation.
func (m *CalibrationAnswerMutation) AddedSelectedOption() (r int, exists bool) {
	v := m.addselected_option
	if v == nil {
		return
	}
	return *v, true
}

// ResetSelectedOption resets all changes to the "selected_option" field.
func (m *CalibrationAnswerMutation) ResetSelectedOption() {
	m.selected_option = nil
	m.addselected_option = nil
}

// SetCorrectOption sets the "correct_option" field.
func (m *CalibrationAnswerMutation) SetCorrectOption(i int) {
	m.correct_option = &i
	m.addcorrect_option = nil
}

// CorrectOption returns the value of the "correct_option" field in the mutation.
func (m *CalibrationAnswerMutation) CorrectOption() (r int, exists bool) {
	v := m.correct_option
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectOption returns the old "correct_option" field's value of the CalibrationAnswer entity.
// If the CalibrationAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationAnswerMutation) OldCorrectOption(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectOption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectOption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectOption: %w", err)
	}
	return oldValue.CorrectOption, nil
}

// AddCorrectOption adds i to the "correct_option" field.
func (m *CalibrationAnswerMutation) AddCorrectOption(i int) {
	if m.addcorrect_option != nil {
		*m.addcorrect_option += i
	} else {
		m.addcorrect_option = &i
	}
}

// AddedCorrectOption returns the value that was added to the "correct_option" field in this mutation.
func (m *CalibrationAnswerMutation) AddedCorrectOption() (r int, exists bool) {
	v := m.addcorrect_option
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectOption resets all changes to the "correct_option" field.
func (m *CalibrationAnswerMutation) ResetCorrectOption() {
	m.correct_option = nil
	m.addcorrect_option = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *CalibrationAnswerMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *CalibrationAnswerMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the CalibrationAnswer entity.
// If the CalibrationAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationAnswerMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *CalibrationAnswerMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *CalibrationAnswerMutation) SetResponseTimeMs(i int64) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *CalibrationAnswerMutation) ResponseTimeMs() (r int64, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the CalibrationAnswer entity.
// If the CalibrationAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationAnswerMutation) OldResponseTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *CalibrationAnswerMutation) AddResponseTimeMs(i int64) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *CalibrationAnswerMutation) AddedResponseTimeMs() (r int64, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (m *CalibrationAnswerMutation) ClearResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
	m.clearedFields[calibrationanswer.FieldResponseTimeMs] = struct{}{}
}

// ResponseTimeMsCleared returns if the "response_time_ms" field was cleared in this mutation.
func (m *CalibrationAnswerMutation) ResponseTimeMsCleared() bool {
	_, ok := m.clearedFields[calibrationanswer.FieldResponseTimeMs]
	return ok
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *CalibrationAnswerMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
	delete(m.clearedFields, calibrationanswer.FieldResponseTimeMs)
}

// SetAnsweredAt sets the "answered_at" field.
func (m *CalibrationAnswerMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *CalibrationAnswerMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the CalibrationAnswer entity.
// If the CalibrationAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationAnswerMutation) OldAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *CalibrationAnswerMutation) ResetAnsweredAt() {
	m.answered_at = nil
}

// Where appends a list predicates to the CalibrationAnswerMutation builder.
func (m *CalibrationAnswerMutation) Where(ps ...predicate.CalibrationAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalibrationAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalibrationAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalibrationAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalibrationAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalibrationAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalibrationAnswer).
func (m *CalibrationAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalibrationAnswerMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, calibrationanswer.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, calibrationanswer.FieldSkillID)
	}
	if m.difficulty != nil {
		fields = append(fields, calibrationanswer.FieldDifficulty)
	}
	if m.selected_option != nil {
		fields = append(fields, calibrationanswer.FieldSelectedOption)
	}
	if m.correct_option != nil {
		fields = append(fields, calibrationanswer.FieldCorrectOption)
	}
	if m.is_correct != nil {
		fields = append(fields, calibrationanswer.FieldIsCorrect)
	}
	if m.response_time_ms != nil {
		fields = append(fields, calibrationanswer.FieldResponseTimeMs)
	}
	if m.answered_at != nil {
		fields = append(fields, calibrationanswer.FieldAnsweredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalibrationAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calibrationanswer.FieldUserID:
		return m.UserID()
	case calibrationanswer.FieldSkillID:
		return m.SkillID()
	case calibrationanswer.FieldDifficulty:
		return m.Difficulty()
	case calibrationanswer.FieldSelectedOption:
		return m.SelectedOption()
	case calibrationanswer.FieldCorrectOption:
		return m.CorrectOption()
	case calibrationanswer.FieldIsCorrect:
		return m.IsCorrect()
	case calibrationanswer.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case calibrationanswer.FieldAnsweredAt:
		return m.AnsweredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalibrationAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calibrationanswer.FieldUserID:
		return m.OldUserID(ctx)
	case calibrationanswer.FieldSkillID:
		return m.OldSkillID(ctx)
	case calibrationanswer.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case calibrationanswer.FieldSelectedOption:
		return m.OldSelectedOption(ctx)
	case calibrationanswer.FieldCorrectOption:
		return m.OldCorrectOption(ctx)
	case calibrationanswer.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case calibrationanswer.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case calibrationanswer.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalibrationAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalibrationAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calibrationanswer.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case calibrationanswer.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case calibrationanswer.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case calibrationanswer.FieldSelectedOption:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedOption(v)
		return nil
	case calibrationanswer.FieldCorrectOption:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectOption(v)
		return nil
	case calibrationanswer.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case calibrationanswer.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case calibrationanswer.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalibrationAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalibrationAnswerMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, calibrationanswer.FieldDifficulty)
	}
	if m.addselected_option != nil {
		fields = append(fields, calibrationanswer.FieldSelectedOption)
	}
	if m.addcorrect_option != nil {
		fields = append(fields, calibrationanswer.FieldCorrectOption)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, calibrationanswer.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalibrationAnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case calibrationanswer.FieldDifficulty:
		return m.AddedDifficulty()
	case calibrationanswer.FieldSelectedOption:
		return m.AddedSelectedOption()
	case calibrationanswer.FieldCorrectOption:
		return m.AddedCorrectOption()
	case calibrationanswer.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalibrationAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case calibrationanswer.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case calibrationanswer.FieldSelectedOption:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelectedOption(v)
		return nil
	case calibrationanswer.FieldCorrectOption:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectOption(v)
		return nil
	case calibrationanswer.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown CalibrationAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalibrationAnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calibrationanswer.FieldResponseTimeMs) {
		fields = append(fields, calibrationanswer.FieldResponseTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalibrationAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalibrationAnswerMutation) ClearField(name string) error {
	switch name {
	case calibrationanswer.FieldResponseTimeMs:
		m.ClearResponseTimeMs()
		return nil
	}
	return fmt.Errorf("unknown CalibrationAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalibrationAnswerMutation) ResetField(name string) error {
	switch name {
	case calibrationanswer.FieldUserID:
		m.ResetUserID()
		return nil
	case calibrationanswer.FieldSkillID:
		m.ResetSkillID()
		return nil
	case calibrationanswer.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case calibrationanswer.FieldSelectedOption:
		m.ResetSelectedOption()
		return nil
	case calibrationanswer.FieldCorrectOption:
		m.ResetCorrectOption()
		return nil
	case calibrationanswer.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case calibrationanswer.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case calibrationanswer.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown CalibrationAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalibrationAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalibrationAnswerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalibrationAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalibrationAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalibrationAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalibrationAnswerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalibrationAnswerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalibrationAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalibrationAnswerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalibrationAnswer edge %s", name)
}

// CalibrationQuestionMutation represents an operation that mutates the CalibrationQuestion nodes in the graph.
type CalibrationQuestionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	skill_id                *string
	difficulty              *int
	adddifficulty           *int
	question                *string
	options                 *[]string
	appendoptions           []string
	correct_option_index    *int
	addcorrect_option_index *int
	explanation             *string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*CalibrationQuestion, error)
	predicates              []predicate.CalibrationQuestion
}

var _ ent.Mutation = (*CalibrationQuestionMutation)(nil)

// calibrationquestionOption allows management of the mutation configuration using functional options.
type calibrationquestionOption func(*CalibrationQuestionMutation)

// newCalibrationQuestionMutation creates new mutation for the CalibrationQuestion entity.
func newCalibrationQuestionMutation(c config, op Op, opts ...calibrationquestionOption) *CalibrationQuestionMutation {
	m := &CalibrationQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeCalibrationQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalibrationQuestionID sets the ID field of the mutation.
func withCalibrationQuestionID(id int) calibrationquestionOption {
	return func(m *CalibrationQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *CalibrationQuestion
		)
		m.oldValue = func(ctx context.Context) (*CalibrationQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalibrationQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalibrationQuestion sets the old CalibrationQuestion of the mutation.
func withCalibrationQuestion(node *CalibrationQuestion) calibrationquestionOption {
	return func(m *CalibrationQuestionMutation) {
		m.oldValue = func(context.Context) (*CalibrationQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalibrationQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalibrationQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalibrationQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalibrationQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalibrationQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSkillID sets the "skill_id" field.
func (m *CalibrationQuestionMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *CalibrationQuestionMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the CalibrationQuestion entity.
// If the CalibrationQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationQuestionMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *CalibrationQuestionMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *CalibrationQuestionMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *CalibrationQuestionMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the CalibrationQuestion entity.
// If the CalibrationQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationQuestionMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *CalibrationQuestionMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *CalibrationQuestionMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *CalibrationQuestionMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetQuestion sets the "question" field.
func (m *CalibrationQuestionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *CalibrationQuestionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the CalibrationQuestion entity.
// If the CalibrationQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationQuestionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *CalibrationQuestionMutation) ResetQuestion() {
	m.question = nil
}

// SetOptions sets the "options" field.
func (m *CalibrationQuestionMutation) SetOptions(s []string) {
	m.options = &s
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *CalibrationQuestionMutation) Options() (r []string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the CalibrationQuestion entity.
// If the CalibrationQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationQuestionMutation) OldOptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds s to the "options" field.
func (m *CalibrationQuestionMutation) AppendOptions(s []string) {
	m.appendoptions = append(m.appendoptions, s...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *CalibrationQuestionMutation) AppendedOptions() ([]string, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ResetOptions resets all changes to the "options" field.
func (m *CalibrationQuestionMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (m *CalibrationQuestionMutation) SetCorrectOptionIndex(i int) {
	m.correct_option_index = &i
	m.addcorrect_option_index = nil
}

// CorrectOptionIndex returns the value of the "correct_option_index" field in the mutation.
func (m *CalibrationQuestionMutation) CorrectOptionIndex() (r int, exists bool) {
	v := m.correct_option_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectOptionIndex returns the old "correct_option_index" field's value of the CalibrationQuestion entity.
// If the CalibrationQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationQuestionMutation) OldCorrectOptionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectOptionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectOptionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectOptionIndex: %w", err)
	}
	return oldValue.CorrectOptionIndex, nil
}

// AddCorrectOptionIndex adds i to the "correct_option_index" field.
func (m *CalibrationQuestionMutation) AddCorrectOptionIndex(i int) {
	if m.addcorrect_option_index != nil {
		*m.addcorrect_option_index += i
	} else {
		m.addcorrect_option_index = &i
	}
}

// AddedCorrectOptionIndex returns the value that was added to the "correct_option_index" field in this mutation.
func (m *CalibrationQuestionMutation) AddedCorrectOptionIndex() (r int, exists bool) {
	v := m.addcorrect_option_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectOptionIndex resets all changes to the "correct_option_index" field.
func (m *CalibrationQuestionMutation) ResetCorrectOptionIndex() {
	m.correct_option_index = nil
	m.addcorrect_option_index = nil
}

// SetExplanation sets the "explanation" field.
func (m *CalibrationQuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *CalibrationQuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the CalibrationQuestion entity.
// If the CalibrationQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationQuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *CalibrationQuestionMutation) ResetExplanation() {
	m.explanation = nil
}

// Where appends a list predicates to the CalibrationQuestionMutation builder.
func (m *CalibrationQuestionMutation) Where(ps ...predicate.CalibrationQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalibrationQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalibrationQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalibrationQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalibrationQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalibrationQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalibrationQuestion).
func (m *CalibrationQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalibrationQuestionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.skill_id != nil {
		fields = append(fields, calibrationquestion.FieldSkillID)
	}
	if m.difficulty != nil {
		fields = append(fields, calibrationquestion.FieldDifficulty)
	}
	if m.question != nil {
		fields = append(fields, calibrationquestion.FieldQuestion)
	}
	if m.options != nil {
		fields = append(fields, calibrationquestion.FieldOptions)
	}
	if m.correct_option_index != nil {
		fields = append(fields, calibrationquestion.FieldCorrectOptionIndex)
	}
	if m.explanation != nil {
		fields = append(fields, calibrationquestion.FieldExplanation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalibrationQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calibrationquestion.FieldSkillID:
		return m.SkillID()
	case calibrationquestion.FieldDifficulty:
		return m.Difficulty()
	case calibrationquestion.FieldQuestion:
		return m.Question()
	case calibrationquestion.FieldOptions:
		return m.Options()
	case calibrationquestion.FieldCorrectOptionIndex:
		return m.CorrectOptionIndex()
	case calibrationquestion.FieldExplanation:
		return m.Explanation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalibrationQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calibrationquestion.FieldSkillID:
		return m.OldSkillID(ctx)
	case calibrationquestion.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case calibrationquestion.FieldQuestion:
		return m.OldQuestion(ctx)
	case calibrationquestion.FieldOptions:
		return m.OldOptions(ctx)
	case calibrationquestion.FieldCorrectOptionIndex:
		return m.OldCorrectOptionIndex(ctx)
	case calibrationquestion.FieldExplanation:
		return m.OldExplanation(ctx)
	}
	return nil, fmt.Errorf("unknown CalibrationQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalibrationQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calibrationquestion.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case calibrationquestion.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case calibrationquestion.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case calibrationquestion.FieldOptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case calibrationquestion.FieldCorrectOptionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectOptionIndex(v)
		return nil
	case calibrationquestion.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	}
	return fmt.Errorf("unknown CalibrationQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalibrationQuestionMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, calibrationquestion.FieldDifficulty)
	}
	if m.addcorrect_option_index != nil {
		fields = append(fields, calibrationquestion.FieldCorrectOptionIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalibrationQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case calibrationquestion.FieldDifficulty:
		return m.AddedDifficulty()
	case calibrationquestion.FieldCorrectOptionIndex:
		return m.AddedCorrectOptionIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalibrationQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case calibrationquestion.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case calibrationquestion.FieldCorrectOptionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectOptionIndex(v)
		return nil
	}
	return fmt.Errorf("unknown CalibrationQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalibrationQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalibrationQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalibrationQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CalibrationQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalibrationQuestionMutation) ResetField(name string) error {
	switch name {
	case calibrationquestion.FieldSkillID:
		m.ResetSkillID()
		return nil
	case calibrationquestion.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case calibrationquestion.FieldQuestion:
		m.ResetQuestion()
		return nil
	case calibrationquestion.FieldOptions:
		m.ResetOptions()
		return nil
	case calibrationquestion.FieldCorrectOptionIndex:
		m.ResetCorrectOptionIndex()
		return nil
	case calibrationquestion.FieldExplanation:
		m.ResetExplanation()
		return nil
	}
	return fmt.Errorf("unknown CalibrationQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalibrationQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalibrationQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalibrationQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalibrationQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalibrationQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalibrationQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalibrationQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalibrationQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalibrationQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalibrationQuestion edge %s", name)
}

// CalibrationStateMutation represents an operation that mutates the CalibrationState nodes in the graph.
type CalibrationStateMutation struct {
	config
	op                              Op
	typ                             string
	id                              *string
	user_id                         *string
	skill_id                        *string
	status                          *calibrationstate.Status
	questions_generated_at          *time.Time
	completed_at                    *time.Time
	calculated_difficulty_target    *int
	addcalculated_difficulty_target *int
	clearedFields                   map[string]struct{}
	done                            bool
	oldValue                        func(context.Context) (*CalibrationState, error)
	predicates                      []predicate.CalibrationState
}

var _ ent.Mutation = (*CalibrationStateMutation)(nil)

// calibrationstateOption allows management of the mutation configuration using functional options.
type calibrationstateOption func(*CalibrationStateMutation)

// newCalibrationStateMutation creates new mutation for the CalibrationState entity.
func newCalibrationStateMutation(c config, op Op, opts ...calibrationstateOption) *CalibrationStateMutation {
	m := &CalibrationStateMutation{
		config:        c,
		op:            op,
		typ:           TypeCalibrationState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalibrationStateID sets the ID field of the mutation.
func withCalibrationStateID(id string) calibrationstateOption {
	return func(m *CalibrationStateMutation) {
		var (
			err   error
			once  sync.Once
			value *CalibrationState
		)
		m.oldValue = func(ctx context.Context) (*CalibrationState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalibrationState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalibrationState sets the old CalibrationState of the mutation.
func withCalibrationState(node *CalibrationState) calibrationstateOption {
	return func(m *CalibrationStateMutation) {
		m.oldValue = func(context.Context) (*CalibrationState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalibrationStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalibrationStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalibrationState entities.
func (m *CalibrationStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalibrationStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalibrationStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalibrationState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CalibrationStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CalibrationStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CalibrationState entity.
// If the CalibrationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CalibrationStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *CalibrationStateMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *CalibrationStateMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the CalibrationState entity.
// If the CalibrationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationStateMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *CalibrationStateMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetStatus sets the "status" field.
func (m *CalibrationStateMutation) SetStatus(c calibrationstate.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CalibrationStateMutation) Status() (r calibrationstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CalibrationState entity.
// If the CalibrationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationStateMutation) OldStatus(ctx context.Context) (v calibrationstate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CalibrationStateMutation) ResetStatus() {
	m.status = nil
}

// SetQuestionsGeneratedAt sets the "questions_generated_at" field.
func (m *CalibrationStateMutation) SetQuestionsGeneratedAt(t time.Time) {
	m.questions_generated_at = &t
}

// QuestionsGeneratedAt returns the value of the "questions_generated_at" field in the mutation.
func (m *CalibrationStateMutation) QuestionsGeneratedAt() (r time.Time, exists bool) {
	v := m.questions_generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsGeneratedAt returns the old "questions_generated_at" field's value of the CalibrationState entity.
// If the CalibrationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationStateMutation) OldQuestionsGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsGeneratedAt: %w", err)
	}
	return oldValue.QuestionsGeneratedAt, nil
}

// ClearQuestionsGeneratedAt clears the value of the "questions_generated_at" field.
func (m *CalibrationStateMutation) ClearQuestionsGeneratedAt() {
	m.questions_generated_at = nil
	m.clearedFields[calibrationstate.FieldQuestionsGeneratedAt] = struct{}{}
}

// QuestionsGeneratedAtCleared returns if the "questions_generated_at" field was cleared in this mutation.
func (m *CalibrationStateMutation) QuestionsGeneratedAtCleared() bool {
	_, ok := m.clearedFields[calibrationstate.FieldQuestionsGeneratedAt]
	return ok
}

// ResetQuestionsGeneratedAt resets all changes to the "questions_generated_at" field.
func (m *CalibrationStateMutation) ResetQuestionsGeneratedAt() {
	m.questions_generated_at = nil
	delete(m.clearedFields, calibrationstate.FieldQuestionsGeneratedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CalibrationStateMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CalibrationStateMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CalibrationState entity.
// If the CalibrationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationStateMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CalibrationStateMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[calibrationstate.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CalibrationStateMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[calibrationstate.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CalibrationStateMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, calibrationstate.FieldCompletedAt)
}

// SetCalculatedDifficultyTarget sets the "calculated_difficulty_target" field.
func (m *CalibrationStateMutation) SetCalculatedDifficultyTarget(i int) {
	m.calculated_difficulty_target = &i
	m.addcalculated_difficulty_target = nil
}

// CalculatedDifficultyTarget returns the value of the "calculated_difficulty_target" field in the mutation.
func (m *CalibrationStateMutation) CalculatedDifficultyTarget() (r int, exists bool) {
	v := m.calculated_difficulty_target
	if v == nil {
		return
	}
	return *v, true
}

// OldCalculatedDifficultyTarget returns the old "calculated_difficulty_target" field's value of the CalibrationState entity.
// If the CalibrationState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationStateMutation) OldCalculatedDifficultyTarget(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalculatedDifficultyTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalculatedDifficultyTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalculatedDifficultyTarget: %w", err)
	}
	return oldValue.CalculatedDifficultyTarget, nil
}

// AddCalculatedDifficultyTarget adds i to the "calculated_difficulty_target" field.
func (m *CalibrationStateMutation) AddCalculatedDifficultyTarget(i int) {
	if m.addcalculated_difficulty_target != nil {
		*m.addcalculated_difficulty_target += i
	} else {
		m.addcalculated_difficulty_target = &i
	}
}

// AddedCalculatedDifficultyTarget returns the value that was added to the "calculated_difficulty_target" field in this mutation.
func (m *CalibrationStateMutation) AddedCalculatedDifficultyTarget() (r int, exists bool) {
	v := m.addcalculated_difficulty_target
	if v == nil {
		return
	}
	return *v, true
}

// ClearCalculatedDifficultyTarget clears the value of the "calculated_difficulty_target" field.
func (m *CalibrationStateMutation) ClearCalculatedDifficultyTarget() {
	m.calculated_difficulty_target = nil
	m.addcalculated_difficulty_target = nil
	m.clearedFields[calibrationstate.FieldCalculatedDifficultyTarget] = struct{}{}
}

// CalculatedDifficultyTargetCleared returns if the "calculated_difficulty_target" field was cleared in this mutation.
func (m *CalibrationStateMutation) CalculatedDifficultyTargetCleared() bool {
	_, ok := m.clearedFields[calibrationstate.FieldCalculatedDifficultyTarget]
	return ok
}

// ResetCalculatedDifficultyTarget resets all changes to the "calculated_difficulty_target" field.
func (m *CalibrationStateMutation) ResetCalculatedDifficultyTarget() {
	m.calculated_difficulty_target = nil
	m.addcalculated_difficulty_target = nil
	delete(m.clearedFields, calibrationstate.FieldCalculatedDifficultyTarget)
}

// Where appends a list predicates to the CalibrationStateMutation builder.
func (m *CalibrationStateMutation) Where(ps ...predicate.CalibrationState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalibrationStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalibrationStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalibrationState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalibrationStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalibrationStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalibrationState).
func (m *CalibrationStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalibrationStateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, calibrationstate.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, calibrationstate.FieldSkillID)
	}
	if m.status != nil {
		fields = append(fields, calibrationstate.FieldStatus)
	}
	if m.questions_generated_at != nil {
		fields = append(fields, calibrationstate.FieldQuestionsGeneratedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, calibrationstate.FieldCompletedAt)
	}
	if m.calculated_difficulty_target != nil {
		fields = append(fields, calibrationstate.FieldCalculatedDifficultyTarget)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalibrationStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calibrationstate.FieldUserID:
		return m.UserID()
	case calibrationstate.FieldSkillID:
		return m.SkillID()
	case calibrationstate.FieldStatus:
		return m.Status()
	case calibrationstate.FieldQuestionsGeneratedAt:
		return m.QuestionsGeneratedAt()
	case calibrationstate.FieldCompletedAt:
		return m.CompletedAt()
	case calibrationstate.FieldCalculatedDifficultyTarget:
		return m.CalculatedDifficultyTarget()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalibrationStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calibrationstate.FieldUserID:
		return m.OldUserID(ctx)
	case calibrationstate.FieldSkillID:
		return m.OldSkillID(ctx)
	case calibrationstate.FieldStatus:
		return m.OldStatus(ctx)
	case calibrationstate.FieldQuestionsGeneratedAt:
		return m.OldQuestionsGeneratedAt(ctx)
	case calibrationstate.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case calibrationstate.FieldCalculatedDifficultyTarget:
		return m.OldCalculatedDifficultyTarget(ctx)
	}
	return nil, fmt.Errorf("unknown CalibrationState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalibrationStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calibrationstate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case calibrationstate.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case calibrationstate.FieldStatus:
		v, ok := value.(calibrationstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case calibrationstate.FieldQuestionsGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsGeneratedAt(v)
		return nil
	case calibrationstate.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case calibrationstate.FieldCalculatedDifficultyTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalculatedDifficultyTarget(v)
		return nil
	}
	return fmt.Errorf("unknown CalibrationState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalibrationStateMutation) AddedFields() []string {
	var fields []string
	if m.addcalculated_difficulty_target != nil {
		fields = append(fields, calibrationstate.FieldCalculatedDifficultyTarget)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalibrationStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case calibrationstate.FieldCalculatedDifficultyTarget:
		return m.AddedCalculatedDifficultyTarget()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalibrationStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case calibrationstate.FieldCalculatedDifficultyTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCalculatedDifficultyTarget(v)
		return nil
	}
	return fmt.Errorf("unknown CalibrationState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalibrationStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calibrationstate.FieldQuestionsGeneratedAt) {
		fields = append(fields, calibrationstate.FieldQuestionsGeneratedAt)
	}
	if m.FieldCleared(calibrationstate.FieldCompletedAt) {
		fields = append(fields, calibrationstate.FieldCompletedAt)
	}
	if m.FieldCleared(calibrationstate.FieldCalculatedDifficultyTarget) {
		fields = append(fields, calibrationstate.FieldCalculatedDifficultyTarget)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalibrationStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalibrationStateMutation) ClearField(name string) error {
	switch name {
	case calibrationstate.FieldQuestionsGeneratedAt:
		m.ClearQuestionsGeneratedAt()
		return nil
	case calibrationstate.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case calibrationstate.FieldCalculatedDifficultyTarget:
		m.ClearCalculatedDifficultyTarget()
		return nil
	}
	return fmt.Errorf("unknown CalibrationState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalibrationStateMutation) ResetField(name string) error {
	switch name {
	case calibrationstate.FieldUserID:
		m.ResetUserID()
		return nil
	case calibrationstate.FieldSkillID:
		m.ResetSkillID()
		return nil
	case calibrationstate.FieldStatus:
		m.ResetStatus()
		return nil
	case calibrationstate.FieldQuestionsGeneratedAt:
		m.ResetQuestionsGeneratedAt()
		return nil
	case calibrationstate.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case calibrationstate.FieldCalculatedDifficultyTarget:
		m.ResetCalculatedDifficultyTarget()
		return nil
	}
	return fmt.Errorf("unknown CalibrationState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalibrationStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalibrationStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalibrationStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalibrationStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalibrationStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalibrationStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalibrationStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalibrationState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalibrationStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalibrationState edge %s", name)
}

// ChallengeMutation represents an operation that mutates the Challenge nodes in the graph.
type ChallengeMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	skill_id                *string
	user_id                 *string
	difficulty              *int
	adddifficulty           *int
	question                *string
	options                 *[]string
	appendoptions           []string
	correct_option_index    *int
	addcorrect_option_index *int
	explanation             *string
	generator_id            *string
	prompt_version          *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Challenge, error)
	predicates              []predicate.Challenge
}

var _ ent.Mutation = (*ChallengeMutation)(nil)

// challengeOption allows management of the mutation configuration using functional options.
type challengeOption func(*ChallengeMutation)

// newChallengeMutation creates new mutation for the Challenge entity.
func newChallengeMutation(c config, op Op, opts ...challengeOption) *ChallengeMutation {
	m := &ChallengeMutation{
		config:        c,
		op:            op,
		typ:           TypeChallenge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChallengeID sets the ID field of the mutation.
func withChallengeID(id string) challengeOption {
	return func(m *ChallengeMutation) {
		var (
			err   error
			once  sync.Once
			value *Challenge
		)
		m.oldValue = func(ctx context.Context) (*Challenge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Challenge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChallenge sets the old Challenge of the mutation.
func withChallenge(node *Challenge) challengeOption {
	return func(m *ChallengeMutation) {
		m.oldValue = func(context.Context) (*Challenge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChallengeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChallengeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Challenge entities.
func (m *ChallengeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChallengeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChallengeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Challenge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSkillID sets the "skill_id" field.
func (m *ChallengeMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *ChallengeMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *ChallengeMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ChallengeMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChallengeMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChallengeMutation) ResetUserID() {
	m.user_id = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ChallengeMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ChallengeMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *ChallengeMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *ChallengeMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ChallengeMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetQuestion sets the "question" field.
func (m *ChallengeMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *ChallengeMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *ChallengeMutation) ResetQuestion() {
	m.question = nil
}

// SetOptions sets the "options" field.
func (m *ChallengeMutation) SetOptions(s []string) {
	m.options = &s
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *ChallengeMutation) Options() (r []string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldOptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds s to the "options" field.
func (m *ChallengeMutation) AppendOptions(s []string) {
	m.appendoptions = append(m.appendoptions, s...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *ChallengeMutation) AppendedOptions() ([]string, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ResetOptions resets all changes to the "options" field.
func (m *ChallengeMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (m *ChallengeMutation) SetCorrectOptionIndex(i int) {
	m.correct_option_index = &i
	m.addcorrect_option_index = nil
}

// CorrectOptionIndex returns the value of the "correct_option_index" field in the mutation.
func (m *ChallengeMutation) CorrectOptionIndex() (r int, exists bool) {
	v := m.correct_option_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectOptionIndex returns the old "correct_option_index" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldCorrectOptionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectOptionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectOptionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectOptionIndex: %w", err)
	}
	return oldValue.CorrectOptionIndex, nil
}

// AddCorrectOptionIndex adds i to the "correct_option_index" field.
func (m *ChallengeMutation) AddCorrectOptionIndex(i int) {
	if m.addcorrect_option_index != nil {
		*m.addcorrect_option_index += i
	} else {
		m.addcorrect_option_index = &i
	}
}

// AddedCorrectOptionIndex returns the value that was added to the "correct_option_index" field in this mutation.
func (m *ChallengeMutation) AddedCorrectOptionIndex() (r int, exists bool) {
	v := m.addcorrect_option_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectOptionIndex resets all changes to the "correct_option_index" field.
func (m *ChallengeMutation) ResetCorrectOptionIndex() {
	m.correct_option_index = nil
	m.addcorrect_option_index = nil
}

// SetExplanation sets the "explanation" field.
func (m *ChallengeMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *ChallengeMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *ChallengeMutation) ResetExplanation() {
	m.explanation = nil
}

// SetGeneratorID sets the "generator_id" field.
func (m *ChallengeMutation) SetGeneratorID(s string) {
	m.generator_id = &s
}

// GeneratorID returns the value of the "generator_id" field in the mutation.
func (m *ChallengeMutation) GeneratorID() (r string, exists bool) {
	v := m.generator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratorID returns the old "generator_id" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldGeneratorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratorID: %w", err)
	}
	return oldValue.GeneratorID, nil
}

// ResetGeneratorID resets all changes to the "generator_id" field.
func (m *ChallengeMutation) ResetGeneratorID() {
	m.generator_id = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *ChallengeMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *ChallengeMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *ChallengeMutation) ResetPromptVersion() {
	m.prompt_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChallengeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChallengeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Challenge entity.
// If the Challenge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChallengeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ChallengeMutation builder.
func (m *ChallengeMutation) Where(ps ...predicate.Challenge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChallengeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChallengeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Challenge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChallengeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChallengeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Challenge).
func (m *ChallengeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChallengeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.skill_id != nil {
		fields = append(fields, challenge.FieldSkillID)
	}
	if m.user_id != nil {
		fields = append(fields, challenge.FieldUserID)
	}
	if m.difficulty != nil {
		fields = append(fields, challenge.FieldDifficulty)
	}
	if m.question != nil {
		fields = append(fields, challenge.FieldQuestion)
	}
	if m.options != nil {
		fields = append(fields, challenge.FieldOptions)
	}
	if m.correct_option_index != nil {
		fields = append(fields, challenge.FieldCorrectOptionIndex)
	}
	if m.explanation != nil {
		fields = append(fields, challenge.FieldExplanation)
	}
	if m.generator_id != nil {
		fields = append(fields, challenge.FieldGeneratorID)
	}
	if m.prompt_version != nil {
		fields = append(fields, challenge.FieldPromptVersion)
	}
	if m.created_at != nil {
		fields = append(fields, challenge.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChallengeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case challenge.FieldSkillID:
		return m.SkillID()
	case challenge.FieldUserID:
		return m.UserID()
	case challenge.FieldDifficulty:
		return m.Difficulty()
	case challenge.FieldQuestion:
		return m.Question()
	case challenge.FieldOptions:
		return m.Options()
	case challenge.FieldCorrectOptionIndex:
		return m.CorrectOptionIndex()
	case challenge.FieldExplanation:
		return m.Explanation()
	case challenge.FieldGeneratorID:
		return m.GeneratorID()
	case challenge.FieldPromptVersion:
		return m.PromptVersion()
	case challenge.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChallengeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case challenge.FieldSkillID:
		return m.OldSkillID(ctx)
	case challenge.FieldUserID:
		return m.OldUserID(ctx)
	case challenge.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case challenge.FieldQuestion:
		return m.OldQuestion(ctx)
	case challenge.FieldOptions:
		return m.OldOptions(ctx)
	case challenge.FieldCorrectOptionIndex:
		return m.OldCorrectOptionIndex(ctx)
	case challenge.FieldExplanation:
		return m.OldExplanation(ctx)
	case challenge.FieldGeneratorID:
		return m.OldGeneratorID(ctx)
	case challenge.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case challenge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Challenge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChallengeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case challenge.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case challenge.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case challenge.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case challenge.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case challenge.FieldOptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case challenge.FieldCorrectOptionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectOptionIndex(v)
		return nil
	case challenge.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case challenge.FieldGeneratorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratorID(v)
		return nil
	case challenge.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case challenge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Challenge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChallengeMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, challenge.FieldDifficulty)
	}
	if m.addcorrect_option_index != nil {
		fields = append(fields, challenge.FieldCorrectOptionIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChallengeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case challenge.FieldDifficulty:
		return m.AddedDifficulty()
	case challenge.FieldCorrectOptionIndex:
		return m.AddedCorrectOptionIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChallengeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case challenge.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case challenge.FieldCorrectOptionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectOptionIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Challenge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChallengeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChallengeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChallengeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Challenge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChallengeMutation) ResetField(name string) error {
	switch name {
	case challenge.FieldSkillID:
		m.ResetSkillID()
		return nil
	case challenge.FieldUserID:
		m.ResetUserID()
		return nil
	case challenge.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case challenge.FieldQuestion:
		m.ResetQuestion()
		return nil
	case challenge.FieldOptions:
		m.ResetOptions()
		return nil
	case challenge.FieldCorrectOptionIndex:
		m.ResetCorrectOptionIndex()
		return nil
	case challenge.FieldExplanation:
		m.ResetExplanation()
		return nil
	case challenge.FieldGeneratorID:
		m.ResetGeneratorID()
		return nil
	case challenge.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case challenge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Challenge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChallengeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChallengeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChallengeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChallengeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChallengeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChallengeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChallengeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Challenge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChallengeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Challenge edge %s", name)
}

// ExecutionTraceEventMutation represents an operation that mutates the ExecutionTraceEvent nodes in the graph.
type ExecutionTraceEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	operation      *string
	user_id        *string
	skill_id       *string
	challenge_id   *string
	success        *bool
	error_message  *string
	duration_ms    *int64
	addduration_ms *int64
	detail         *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ExecutionTraceEvent, error)
	predicates     []predicate.ExecutionTraceEvent
}

var _ ent.Mutation = (*ExecutionTraceEventMutation)(nil)

// executiontraceeventOption allows management of the mutation configuration using functional options.
type executiontraceeventOption func(*ExecutionTraceEventMutation)

// newExecutionTraceEventMutation creates new mutation for the ExecutionTraceEvent entity.
func newExecutionTraceEventMutation(c config, op Op, opts ...executiontraceeventOption) *ExecutionTraceEventMutation {
	m := &ExecutionTraceEventMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionTraceEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionTraceEventID sets the ID field of the mutation.
func withExecutionTraceEventID(id int) executiontraceeventOption {
	return func(m *ExecutionTraceEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionTraceEvent
		)
		m.oldValue = func(ctx context.Context) (*ExecutionTraceEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionTraceEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionTraceEvent sets the old ExecutionTraceEvent of the mutation.
func withExecutionTraceEvent(node *ExecutionTraceEvent) executiontraceeventOption {
	return func(m *ExecutionTraceEventMutation) {
		m.oldValue = func(context.Context) (*ExecutionTraceEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionTraceEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionTraceEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionTraceEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionTraceEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionTraceEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ExecutionTraceEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ExecutionTraceEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ExecutionTraceEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ExecutionTraceEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ExecutionTraceEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ExecutionTraceEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ExecutionTraceEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ExecutionTraceEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetOperation sets the "operation" field.
func (m *ExecutionTraceEventMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *ExecutionTraceEventMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *ExecutionTraceEventMutation) ResetOperation() {
	m.operation = nil
}

// SetUserID sets the "user_id" field.
func (m *ExecutionTraceEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExecutionTraceEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExecutionTraceEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *ExecutionTraceEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *ExecutionTraceEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *ExecutionTraceEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetChallengeID sets the "challenge_id" field.
func (m *ExecutionTraceEventMutation) SetChallengeID(s string) {
	m.challenge_id = &s
}

// ChallengeID returns the value of the "challenge_id" field in the mutation.
func (m *ExecutionTraceEventMutation) ChallengeID() (r string, exists bool) {
	v := m.challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeID returns the old "challenge_id" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldChallengeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeID: %w", err)
	}
	return oldValue.ChallengeID, nil
}

// ResetChallengeID resets all changes to the "challenge_id" field.
func (m *ExecutionTraceEventMutation) ResetChallengeID() {
	m.challenge_id = nil
}

// SetSuccess sets the "success" field.
func (m *ExecutionTraceEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ExecutionTraceEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ExecutionTraceEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionTraceEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionTraceEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionTraceEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ExecutionTraceEventMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ExecutionTraceEventMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ExecutionTraceEventMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ExecutionTraceEventMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ExecutionTraceEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetDetail sets the "detail" field.
func (m *ExecutionTraceEventMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *ExecutionTraceEventMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the ExecutionTraceEvent entity.
// If the ExecutionTraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionTraceEventMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ResetDetail resets all changes to the "detail" field.
func (m *ExecutionTraceEventMutation) ResetDetail() {
	m.detail = nil
}

// Where appends a list predicates to the ExecutionTraceEventMutation builder.
func (m *ExecutionTraceEventMutation) Where(ps ...predicate.ExecutionTraceEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionTraceEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionTraceEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionTraceEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionTraceEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionTraceEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionTraceEvent).
func (m *ExecutionTraceEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionTraceEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, executiontraceevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, executiontraceevent.FieldTimestamp)
	}
	if m.operation != nil {
		fields = append(fields, executiontraceevent.FieldOperation)
	}
	if m.user_id != nil {
		fields = append(fields, executiontraceevent.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, executiontraceevent.FieldSkillID)
	}
	if m.challenge_id != nil {
		fields = append(fields, executiontraceevent.FieldChallengeID)
	}
	if m.success != nil {
		fields = append(fields, executiontraceevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, executiontraceevent.FieldErrorMessage)
	}
	if m.duration_ms != nil {
		fields = append(fields, executiontraceevent.FieldDurationMs)
	}
	if m.detail != nil {
		fields = append(fields, executiontraceevent.FieldDetail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionTraceEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executiontraceevent.FieldSequence:
		return m.Sequence()
	case executiontraceevent.FieldTimestamp:
		return m.Timestamp()
	case executiontraceevent.FieldOperation:
		return m.Operation()
	case executiontraceevent.FieldUserID:
		return m.UserID()
	case executiontraceevent.FieldSkillID:
		return m.SkillID()
	case executiontraceevent.FieldChallengeID:
		return m.ChallengeID()
	case executiontraceevent.FieldSuccess:
		return m.Success()
	case executiontraceevent.FieldErrorMessage:
		return m.ErrorMessage()
	case executiontraceevent.FieldDurationMs:
		return m.DurationMs()
	case executiontraceevent.FieldDetail:
		return m.Detail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionTraceEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executiontraceevent.FieldSequence:
		return m.OldSequence(ctx)
	case executiontraceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case executiontraceevent.FieldOperation:
		return m.OldOperation(ctx)
	case executiontraceevent.FieldUserID:
		return m.OldUserID(ctx)
	case executiontraceevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case executiontraceevent.FieldChallengeID:
		return m.OldChallengeID(ctx)
	case executiontraceevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case executiontraceevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case executiontraceevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case executiontraceevent.FieldDetail:
		return m.OldDetail(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionTraceEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionTraceEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executiontraceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case executiontraceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case executiontraceevent.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case executiontraceevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case executiontraceevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case executiontraceevent.FieldChallengeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeID(v)
		return nil
	case executiontraceevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case executiontraceevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case executiontraceevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case executiontraceevent.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionTraceEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionTraceEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, executiontraceevent.FieldSequence)
	}
	if m.addduration_ms != nil {
		fields = append(fields, executiontraceevent.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionTraceEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executiontraceevent.FieldSequence:
		return m.AddedSequence()
	case executiontraceevent.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionTraceEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executiontraceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case executiontraceevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionTraceEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionTraceEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionTraceEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionTraceEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExecutionTraceEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionTraceEventMutation) ResetField(name string) error {
	switch name {
	case executiontraceevent.FieldSequence:
		m.ResetSequence()
		return nil
	case executiontraceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case executiontraceevent.FieldOperation:
		m.ResetOperation()
		return nil
	case executiontraceevent.FieldUserID:
		m.ResetUserID()
		return nil
	case executiontraceevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case executiontraceevent.FieldChallengeID:
		m.ResetChallengeID()
		return nil
	case executiontraceevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case executiontraceevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case executiontraceevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case executiontraceevent.FieldDetail:
		m.ResetDetail()
		return nil
	}
	return fmt.Errorf("unknown ExecutionTraceEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionTraceEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionTraceEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionTraceEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionTraceEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionTraceEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionTraceEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionTraceEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExecutionTraceEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionTraceEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExecutionTraceEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PerformanceStateMutation represents an operation that mutates the PerformanceState nodes in the graph.
type PerformanceStateMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	user_id              *string
	skill_id             *string
	difficulty_target    *int
	adddifficulty_target *int
	streak_correct       *int
	addstreak_correct    *int
	streak_incorrect     *int
	addstreak_incorrect  *int
	attempts_total       *int
	addattempts_total    *int
	correct_total        *int
	addcorrect_total     *int
	last_challenged_at   *time.Time
	last_result          *performancestate.LastResult
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*PerformanceState, error)
	predicates           []predicate.PerformanceState
}

var _ ent.Mutation = (*PerformanceStateMutation)(nil)

// performancestateOption allows management of the mutation configuration using functional options.
type performancestateOption func(*PerformanceStateMutation)

// newPerformanceStateMutation creates new mutation for the PerformanceState entity.
func newPerformanceStateMutation(c config, op Op, opts ...performancestateOption) *PerformanceStateMutation {
	m := &PerformanceStateMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceStateID sets the ID field of the mutation.
func withPerformanceStateID(id int) performancestateOption {
	return func(m *PerformanceStateMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceState
		)
		m.oldValue = func(ctx context.Context) (*PerformanceState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceState sets the old PerformanceState of the mutation.
func withPerformanceState(node *PerformanceState) performancestateOption {
	return func(m *PerformanceStateMutation) {
		m.oldValue = func(context.Context) (*PerformanceState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PerformanceStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PerformanceStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PerformanceStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *PerformanceStateMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *PerformanceStateMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *PerformanceStateMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetDifficultyTarget sets the "difficulty_target" field.
func (m *PerformanceStateMutation) SetDifficultyTarget(i int) {
	m.difficulty_target = &i
	m.adddifficulty_target = nil
}

// DifficultyTarget returns the value of the "difficulty_target" field in the mutation.
func (m *PerformanceStateMutation) DifficultyTarget() (r int, exists bool) {
	v := m.difficulty_target
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyTarget returns the old "difficulty_target" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldDifficultyTarget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyTarget: %w", err)
	}
	return oldValue.DifficultyTarget, nil
}

// AddDifficultyTarget adds i to the "difficulty_target" field.
func (m *PerformanceStateMutation) AddDifficultyTarget(i int) {
	if m.adddifficulty_target != nil {
		*m.adddifficulty_target += i
	} else {
		m.adddifficulty_target = &i
	}
}

// AddedDifficultyTarget returns the value that was added to the "difficulty_target" field in this mutation.
func (m *PerformanceStateMutation) AddedDifficultyTarget() (r int, exists bool) {
	v := m.adddifficulty_target
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyTarget resets all changes to the "difficulty_target" field.
func (m *PerformanceStateMutation) ResetDifficultyTarget() {
	m.difficulty_target = nil
	m.adddifficulty_target = nil
}

// SetStreakCorrect sets the "streak_correct" field.
func (m *PerformanceStateMutation) SetStreakCorrect(i int) {
	m.streak_correct = &i
	m.addstreak_correct = nil
}

// StreakCorrect returns the value of the "streak_correct" field in the mutation.
func (m *PerformanceStateMutation) StreakCorrect() (r int, exists bool) {
	v := m.streak_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakCorrect returns the old "streak_correct" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldStreakCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakCorrect: %w", err)
	}
	return oldValue.StreakCorrect, nil
}

// AddStreakCorrect adds i to the "streak_correct" field.
func (m *PerformanceStateMutation) AddStreakCorrect(i int) {
	if m.addstreak_correct != nil {
		*m.addstreak_correct += i
	} else {
		m.addstreak_correct = &i
	}
}

// AddedStreakCorrect returns the value that was added to the "streak_correct" field in this mutation.
func (m *PerformanceStateMutation) AddedStreakCorrect() (r int, exists bool) {
	v := m.addstreak_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakCorrect resets all changes to the "streak_correct" field.
func (m *PerformanceStateMutation) ResetStreakCorrect() {
	m.streak_correct = nil
	m.addstreak_correct = nil
}

// SetStreakIncorrect sets the "streak_incorrect" field.
func (m *PerformanceStateMutation) SetStreakIncorrect(i int) {
	m.streak_incorrect = &i
	m.addstreak_incorrect = nil
}

// StreakIncorrect returns the value of the "streak_incorrect" field in the mutation.
func (m *PerformanceStateMutation) StreakIncorrect() (r int, exists bool) {
	v := m.streak_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakIncorrect returns the old "streak_incorrect" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldStreakIncorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakIncorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakIncorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakIncorrect: %w", err)
	}
	return oldValue.StreakIncorrect, nil
}

// AddStreakIncorrect adds i to the "streak_incorrect" field.
func (m *PerformanceStateMutation) AddStreakIncorrect(i int) {
	if m.addstreak_incorrect != nil {
		*m.addstreak_incorrect += i
	} else {
		m.addstreak_incorrect = &i
	}
}

// AddedStreakIncorrect returns the value that was added to the "streak_incorrect" field in this mutation.
func (m *PerformanceStateMutation) AddedStreakIncorrect() (r int, exists bool) {
	v := m.addstreak_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakIncorrect resets all changes to the "streak_incorrect" field.
func (m *PerformanceStateMutation) ResetStreakIncorrect() {
	m.streak_incorrect = nil
	m.addstreak_incorrect = nil
}

// SetAttemptsTotal sets the "attempts_total" field.
func (m *PerformanceStateMutation) SetAttemptsTotal(i int) {
	m.attempts_total = &i
	m.addattempts_total = nil
}

// AttemptsTotal returns the value of the "attempts_total" field in the mutation.
func (m *PerformanceStateMutation) AttemptsTotal() (r int, exists bool) {
	v := m.attempts_total
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptsTotal returns the old "attempts_total" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldAttemptsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptsTotal: %w", err)
	}
	return oldValue.AttemptsTotal, nil
}

// AddAttemptsTotal adds i to the "attempts_total" field.
func (m *PerformanceStateMutation) AddAttemptsTotal(i int) {
	if m.addattempts_total != nil {
		*m.addattempts_total += i
	} else {
		m.addattempts_total = &i
	}
}

// AddedAttemptsTotal returns the value that was added to the "attempts_total" field in this mutation.
func (m *PerformanceStateMutation) AddedAttemptsTotal() (r int, exists bool) {
	v := m.addattempts_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptsTotal resets all changes to the "attempts_total" field.
func (m *PerformanceStateMutation) ResetAttemptsTotal() {
	m.attempts_total = nil
	m.addattempts_total = nil
}

// SetCorrectTotal sets the "correct_total" field.
func (m *PerformanceStateMutation) SetCorrectTotal(i int) {
	m.correct_total = &i
	m.addcorrect_total = nil
}

// CorrectTotal returns the value of the "correct_total" field in the mutation.
func (m *PerformanceStateMutation) CorrectTotal() (r int, exists bool) {
	v := m.correct_total
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectTotal returns the old "correct_total" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldCorrectTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectTotal: %w", err)
	}
	return oldValue.CorrectTotal, nil
}

// AddCorrectTotal adds i to the "correct_total" field.
func (m *PerformanceStateMutation) AddCorrectTotal(i int) {
	if m.addcorrect_total != nil {
		*m.addcorrect_total += i
	} else {
		m.addcorrect_total = &i
	}
}

// AddedCorrectTotal returns the value that was added to the "correct_total" field in this mutation.
func (m *PerformanceStateMutation) AddedCorrectTotal() (r int, exists bool) {
	v := m.addcorrect_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectTotal resets all changes to the "correct_total" field.
func (m *PerformanceStateMutation) ResetCorrectTotal() {
	m.correct_total = nil
	m.addcorrect_total = nil
}

// SetLastChallengedAt sets the "last_challenged_at" field.
func (m *PerformanceStateMutation) SetLastChallengedAt(t time.Time) {
	m.last_challenged_at = &t
}

// LastChallengedAt returns the value of the "last_challenged_at" field in the mutation.
func (m *PerformanceStateMutation) LastChallengedAt() (r time.Time, exists bool) {
	v := m.last_challenged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastChallengedAt returns the old "last_challenged_at" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldLastChallengedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastChallengedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastChallengedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastChallengedAt: %w", err)
	}
	return oldValue.LastChallengedAt, nil
}

// ClearLastChallengedAt clears the value of the "last_challenged_at" field.
func (m *PerformanceStateMutation) ClearLastChallengedAt() {
	m.last_challenged_at = nil
	m.clearedFields[performancestate.FieldLastChallengedAt] = struct{}{}
}

// LastChallengedAtCleared returns if the "last_challenged_at" field was cleared in this mutation.
func (m *PerformanceStateMutation) LastChallengedAtCleared() bool {
	_, ok := m.clearedFields[performancestate.FieldLastChallengedAt]
	return ok
}

// ResetLastChallengedAt resets all changes to the "last_challenged_at" field.
func (m *PerformanceStateMutation) ResetLastChallengedAt() {
	m.last_challenged_at = nil
	delete(m.clearedFields, performancestate.FieldLastChallengedAt)
}

// SetLastResult sets the "last_result" field.
func (m *PerformanceStateMutation) SetLastResult(pr performancestate.LastResult) {
	m.last_result = &pr
}

// LastResult returns the value of the "last_result" field in the mutation.
func (m *PerformanceStateMutation) LastResult() (r performancestate.LastResult, exists bool) {
	v := m.last_result
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResult returns the old "last_result" field's value of the PerformanceState entity.
// If the PerformanceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceStateMutation) OldLastResult(ctx context.Context) (v *performancestate.LastResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResult: %w", err)
	}
	return oldValue.LastResult, nil
}

// ClearLastResult clears the value of the "last_result" field.
func (m *PerformanceStateMutation) ClearLastResult() {
	m.last_result = nil
	m.clearedFields[performancestate.FieldLastResult] = struct{}{}
}

// LastResultCleared returns if the "last_result" field was cleared in this mutation.
func (m *PerformanceStateMutation) LastResultCleared() bool {
	_, ok := m.clearedFields[performancestate.FieldLastResult]
	return ok
}

// ResetLastResult resets all changes to the "last_result" field.
func (m *PerformanceStateMutation) ResetLastResult() {
	m.last_result = nil
	delete(m.clearedFields, performancestate.FieldLastResult)
}

// Where appends a list predicates to the PerformanceStateMutation builder.
func (m *PerformanceStateMutation) Where(ps ...predicate.PerformanceState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceState).
func (m *PerformanceStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceStateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, performancestate.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, performancestate.FieldSkillID)
	}
	if m.difficulty_target != nil {
		fields = append(fields, performancestate.FieldDifficultyTarget)
	}
	if m.streak_correct != nil {
		fields = append(fields, performancestate.FieldStreakCorrect)
	}
	if m.streak_incorrect != nil {
		fields = append(fields, performancestate.FieldStreakIncorrect)
	}
	if m.attempts_total != nil {
		fields = append(fields, performancestate.FieldAttemptsTotal)
	}
	if m.correct_total != nil {
		fields = append(fields, performancestate.FieldCorrectTotal)
	}
	if m.last_challenged_at != nil {
		fields = append(fields, performancestate.FieldLastChallengedAt)
	}
	if m.last_result != nil {
		fields = append(fields, performancestate.FieldLastResult)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performancestate.FieldUserID:
		return m.UserID()
	case performancestate.FieldSkillID:
		return m.SkillID()
	case performancestate.FieldDifficultyTarget:
		return m.DifficultyTarget()
	case performancestate.FieldStreakCorrect:
		return m.StreakCorrect()
	case performancestate.FieldStreakIncorrect:
		return m.StreakIncorrect()
	case performancestate.FieldAttemptsTotal:
		return m.AttemptsTotal()
	case performancestate.FieldCorrectTotal:
		return m.CorrectTotal()
	case performancestate.FieldLastChallengedAt:
		return m.LastChallengedAt()
	case performancestate.FieldLastResult:
		return m.LastResult()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performancestate.FieldUserID:
		return m.OldUserID(ctx)
	case performancestate.FieldSkillID:
		return m.OldSkillID(ctx)
	case performancestate.FieldDifficultyTarget:
		return m.OldDifficultyTarget(ctx)
	case performancestate.FieldStreakCorrect:
		return m.OldStreakCorrect(ctx)
	case performancestate.FieldStreakIncorrect:
		return m.OldStreakIncorrect(ctx)
	case performancestate.FieldAttemptsTotal:
		return m.OldAttemptsTotal(ctx)
	case performancestate.FieldCorrectTotal:
		return m.OldCorrectTotal(ctx)
	case performancestate.FieldLastChallengedAt:
		return m.OldLastChallengedAt(ctx)
	case performancestate.FieldLastResult:
		return m.OldLastResult(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performancestate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case performancestate.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case performancestate.FieldDifficultyTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyTarget(v)
		return nil
	case performancestate.FieldStreakCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakCorrect(v)
		return nil
	case performancestate.FieldStreakIncorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakIncorrect(v)
		return nil
	case performancestate.FieldAttemptsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptsTotal(v)
		return nil
	case performancestate.FieldCorrectTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectTotal(v)
		return nil
	case performancestate.FieldLastChallengedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastChallengedAt(v)
		return nil
	case performancestate.FieldLastResult:
		v, ok := value.(performancestate.LastResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResult(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceStateMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty_target != nil {
		fields = append(fields, performancestate.FieldDifficultyTarget)
	}
	if m.addstreak_correct != nil {
		fields = append(fields, performancestate.FieldStreakCorrect)
	}
	if m.addstreak_incorrect != nil {
		fields = append(fields, performancestate.FieldStreakIncorrect)
	}
	if m.addattempts_total != nil {
		fields = append(fields, performancestate.FieldAttemptsTotal)
	}
	if m.addcorrect_total != nil {
		fields = append(fields, performancestate.FieldCorrectTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performancestate.FieldDifficultyTarget:
		return m.AddedDifficultyTarget()
	case performancestate.FieldStreakCorrect:
		return m.AddedStreakCorrect()
	case performancestate.FieldStreakIncorrect:
		return m.AddedStreakIncorrect()
	case performancestate.FieldAttemptsTotal:
		return m.AddedAttemptsTotal()
	case performancestate.FieldCorrectTotal:
		return m.AddedCorrectTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performancestate.FieldDifficultyTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyTarget(v)
		return nil
	case performancestate.FieldStreakCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakCorrect(v)
		return nil
	case performancestate.FieldStreakIncorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakIncorrect(v)
		return nil
	case performancestate.FieldAttemptsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptsTotal(v)
		return nil
	case performancestate.FieldCorrectTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectTotal(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(performancestate.FieldLastChallengedAt) {
		fields = append(fields, performancestate.FieldLastChallengedAt)
	}
	if m.FieldCleared(performancestate.FieldLastResult) {
		fields = append(fields, performancestate.FieldLastResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceStateMutation) ClearField(name string) error {
	switch name {
	case performancestate.FieldLastChallengedAt:
		m.ClearLastChallengedAt()
		return nil
	case performancestate.FieldLastResult:
		m.ClearLastResult()
		return nil
	}
	return fmt.Errorf("unknown PerformanceState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceStateMutation) ResetField(name string) error {
	switch name {
	case performancestate.FieldUserID:
		m.ResetUserID()
		return nil
	case performancestate.FieldSkillID:
		m.ResetSkillID()
		return nil
	case performancestate.FieldDifficultyTarget:
		m.ResetDifficultyTarget()
		return nil
	case performancestate.FieldStreakCorrect:
		m.ResetStreakCorrect()
		return nil
	case performancestate.FieldStreakIncorrect:
		m.ResetStreakIncorrect()
		return nil
	case performancestate.FieldAttemptsTotal:
		m.ResetAttemptsTotal()
		return nil
	case performancestate.FieldCorrectTotal:
		m.ResetCorrectTotal()
		return nil
	case performancestate.FieldLastChallengedAt:
		m.ResetLastChallengedAt()
		return nil
	case performancestate.FieldLastResult:
		m.ResetLastResult()
		return nil
	}
	return fmt.Errorf("unknown PerformanceState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PerformanceState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PerformanceState edge %s", name)
}

// PushEventMutation represents an operation that mutates the PushEvent nodes in the graph.
type PushEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	challenge_id  *string
	status        *pushevent.Status
	sent_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PushEvent, error)
	predicates    []predicate.PushEvent
}

var _ ent.Mutation = (*PushEventMutation)(nil)

// pusheventOption allows management of the mutation configuration using functional options.
type pusheventOption func(*PushEventMutation)

// newPushEventMutation creates new mutation for the PushEvent entity.
func newPushEventMutation(c config, op Op, opts ...pusheventOption) *PushEventMutation {
	m := &PushEventMutation{
		config:        c,
		op:            op,
		typ:           TypePushEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPushEventID sets the ID field of the mutation.
func withPushEventID(id int) pusheventOption {
	return func(m *PushEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PushEvent
		)
		m.oldValue = func(ctx context.Context) (*PushEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PushEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPushEvent sets the old PushEvent of the mutation.
func withPushEvent(node *PushEvent) pusheventOption {
	return func(m *PushEventMutation) {
		m.oldValue = func(context.Context) (*PushEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PushEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PushEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PushEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PushEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PushEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChallengeID sets the "challenge_id" field.
func (m *PushEventMutation) SetChallengeID(s string) {
	m.challenge_id = &s
}

// ChallengeID returns the value of the "challenge_id" field in the mutation.
func (m *PushEventMutation) ChallengeID() (r string, exists bool) {
	v := m.challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeID returns the old "challenge_id" field's value of the PushEvent entity.
// If the PushEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushEventMutation) OldChallengeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeID: %w", err)
	}
	return oldValue.ChallengeID, nil
}

// ResetChallengeID resets all changes to the "challenge_id" field.
func (m *PushEventMutation) ResetChallengeID() {
	m.challenge_id = nil
}

// SetStatus sets the "status" field.
func (m *PushEventMutation) SetStatus(pu pushevent.Status) {
	m.status = &pu
}

// Status returns the value of the "status" field in the mutation.
func (m *PushEventMutation) Status() (r pushevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PushEvent entity.
// If the PushEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushEventMutation) OldStatus(ctx context.Context) (v pushevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PushEventMutation) ResetStatus() {
	m.status = nil
}

// SetSentAt sets the "sent_at" field.
func (m *PushEventMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *PushEventMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the PushEvent entity.
// If the PushEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushEventMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *PushEventMutation) ResetSentAt() {
	m.sent_at = nil
}

// Where appends a list predicates to the PushEventMutation builder.
func (m *PushEventMutation) Where(ps ...predicate.PushEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PushEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PushEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PushEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PushEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PushEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PushEvent).
func (m *PushEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PushEventMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.challenge_id != nil {
		fields = append(fields, pushevent.FieldChallengeID)
	}
	if m.status != nil {
		fields = append(fields, pushevent.FieldStatus)
	}
	if m.sent_at != nil {
		fields = append(fields, pushevent.FieldSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PushEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pushevent.FieldChallengeID:
		return m.ChallengeID()
	case pushevent.FieldStatus:
		return m.Status()
	case pushevent.FieldSentAt:
		return m.SentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PushEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pushevent.FieldChallengeID:
		return m.OldChallengeID(ctx)
	case pushevent.FieldStatus:
		return m.OldStatus(ctx)
	case pushevent.FieldSentAt:
		return m.OldSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown PushEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pushevent.FieldChallengeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeID(v)
		return nil
	case pushevent.FieldStatus:
		v, ok := value.(pushevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pushevent.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown PushEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PushEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PushEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PushEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PushEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PushEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PushEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PushEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PushEventMutation) ResetField(name string) error {
	switch name {
	case pushevent.FieldChallengeID:
		m.ResetChallengeID()
		return nil
	case pushevent.FieldStatus:
		m.ResetStatus()
		return nil
	case pushevent.FieldSentAt:
		m.ResetSentAt()
		return nil
	}
	return fmt.Errorf("unknown PushEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PushEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PushEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PushEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PushEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PushEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PushEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PushEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PushEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PushEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PushEvent edge %s", name)
}

// SkillMutation represents an operation that mutates the Skill nodes in the graph.
type SkillMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Skill, error)
	predicates    []predicate.Skill
}

var _ ent.Mutation = (*SkillMutation)(nil)

// skillOption allows management of the mutation configuration using functional options.
type skillOption func(*SkillMutation)

// newSkillMutation creates new mutation for the Skill entity.
func newSkillMutation(c config, op Op, opts ...skillOption) *SkillMutation {
	m := &SkillMutation{
		config:        c,
		op:            op,
		typ:           TypeSkill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillID sets the ID field of the mutation.
func withSkillID(id string) skillOption {
	return func(m *SkillMutation) {
		var (
			err   error
			once  sync.Once
			value *Skill
		)
		m.oldValue = func(ctx context.Context) (*Skill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Skill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkill sets the old Skill of the mutation.
func withSkill(node *Skill) skillOption {
	return func(m *SkillMutation) {
		m.oldValue = func(context.Context) (*Skill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Skill entities.
func (m *SkillMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Skill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SkillMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SkillMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SkillMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SkillMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SkillMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SkillMutation) ResetDescription() {
	m.description = nil
}

// Where appends a list predicates to the SkillMutation builder.
func (m *SkillMutation) Where(ps ...predicate.Skill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Skill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Skill).
func (m *SkillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, skill.FieldName)
	}
	if m.description != nil {
		fields = append(fields, skill.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skill.FieldName:
		return m.Name()
	case skill.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skill.FieldName:
		return m.OldName(ctx)
	case skill.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Skill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skill.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case skill.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Skill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Skill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillMutation) ResetField(name string) error {
	switch name {
	case skill.FieldName:
		m.ResetName()
		return nil
	case skill.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Skill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Skill edge %s", name)
}
