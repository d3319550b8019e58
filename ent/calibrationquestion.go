// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/calibrationquestion"
)

// CalibrationQuestion is the model entity for the CalibrationQuestion schema.
type CalibrationQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty int `json:"difficulty,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Exactly 4 answer options
	Options []string `json:"options,omitempty"`
	// CorrectOptionIndex holds the value of the "correct_option_index" field.
	CorrectOptionIndex int `json:"correct_option_index,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation  string `json:"explanation,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalibrationQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calibrationquestion.FieldOptions:
			values[i] = new([]byte)
		case calibrationquestion.FieldID, calibrationquestion.FieldDifficulty, calibrationquestion.FieldCorrectOptionIndex:
			values[i] = new(sql.NullInt64)
		case calibrationquestion.FieldSkillID, calibrationquestion.FieldQuestion, calibrationquestion.FieldExplanation:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalibrationQuestion fields.
func (_m *CalibrationQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calibrationquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case calibrationquestion.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case calibrationquestion.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case calibrationquestion.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case calibrationquestion.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case calibrationquestion.FieldCorrectOptionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_option_index", values[i])
			} else if value.Valid {
				_m.CorrectOptionIndex = int(value.Int64)
			}
		case calibrationquestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalibrationQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *CalibrationQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CalibrationQuestion.
// Note that you need to call CalibrationQuestion.Unwrap() before calling this method if this CalibrationQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalibrationQuestion) Update() *CalibrationQuestionUpdateOne {
	return NewCalibrationQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalibrationQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalibrationQuestion) Unwrap() *CalibrationQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalibrationQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalibrationQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("CalibrationQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("correct_option_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectOptionIndex))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteByte(')')
	return builder.String()
}

// CalibrationQuestions is a parsable slice of CalibrationQuestion.
type CalibrationQuestions []*CalibrationQuestion
