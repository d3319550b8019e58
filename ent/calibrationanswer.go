// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/calibrationanswer"
)

// CalibrationAnswer is the model entity for the CalibrationAnswer schema.
type CalibrationAnswer struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty int `json:"difficulty,omitempty"`
	// SelectedOption holds the value of the "selected_option" field.
	SelectedOption int `json:"selected_option,omitempty"`
	// Stored alongside the selection for later auditing
	CorrectOption int `json:"correct_option,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs *int64 `json:"response_time_ms,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt   time.Time `json:"answered_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalibrationAnswer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calibrationanswer.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case calibrationanswer.FieldID, calibrationanswer.FieldDifficulty, calibrationanswer.FieldSelectedOption, calibrationanswer.FieldCorrectOption, calibrationanswer.FieldResponseTimeMs:
			values[i] = new(sql.NullInt64)
		case calibrationanswer.FieldUserID, calibrationanswer.FieldSkillID:
			values[i] = new(sql.NullString)
		case calibrationanswer.FieldAnsweredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalibrationAnswer fields.
func (_m *CalibrationAnswer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calibrationanswer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case calibrationanswer.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case calibrationanswer.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case calibrationanswer.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case calibrationanswer.FieldSelectedOption:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field selected_option", values[i])
			} else if value.Valid {
				_m.SelectedOption = int(value.Int64)
			}
		case calibrationanswer.FieldCorrectOption:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_option", values[i])
			} else if value.Valid {
				_m.CorrectOption = int(value.Int64)
			}
		case calibrationanswer.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case calibrationanswer.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = new(int64)
				*_m.ResponseTimeMs = value.Int64
			}
		case calibrationanswer.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalibrationAnswer.
// This includes values selected through modifiers, order, etc.
func (_m *CalibrationAnswer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CalibrationAnswer.
// Note that you need to call CalibrationAnswer.Unwrap() before calling this method if this CalibrationAnswer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalibrationAnswer) Update() *CalibrationAnswerUpdateOne {
	return NewCalibrationAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalibrationAnswer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalibrationAnswer) Unwrap() *CalibrationAnswer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalibrationAnswer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalibrationAnswer) String() string {
	var builder strings.Builder
	builder.WriteString("CalibrationAnswer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("selected_option=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectedOption))
	builder.WriteString(", ")
	builder.WriteString("correct_option=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectOption))
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	if v := _m.ResponseTimeMs; v != nil {
		builder.WriteString("response_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("answered_at=")
	builder.WriteString(_m.AnsweredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CalibrationAnswers is a parsable slice of CalibrationAnswer.
type CalibrationAnswers []*CalibrationAnswer
