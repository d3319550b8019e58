// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/calibrationstate"
)

// CalibrationState is the model entity for the CalibrationState schema.
type CalibrationState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Status holds the value of the "status" field.
	Status calibrationstate.Status `json:"status,omitempty"`
	// When the battery was handed to the user
	QuestionsGeneratedAt *time.Time `json:"questions_generated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Target computed at completion; seeds PerformanceState
	CalculatedDifficultyTarget *int `json:"calculated_difficulty_target,omitempty"`
	selectValues               sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalibrationState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calibrationstate.FieldCalculatedDifficultyTarget:
			values[i] = new(sql.NullInt64)
		case calibrationstate.FieldID, calibrationstate.FieldUserID, calibrationstate.FieldSkillID, calibrationstate.FieldStatus:
			values[i] = new(sql.NullString)
		case calibrationstate.FieldQuestionsGeneratedAt, calibrationstate.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalibrationState fields.
func (_m *CalibrationState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calibrationstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case calibrationstate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case calibrationstate.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case calibrationstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = calibrationstate.Status(value.String)
			}
		case calibrationstate.FieldQuestionsGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field questions_generated_at", values[i])
			} else if value.Valid {
				_m.QuestionsGeneratedAt = new(time.Time)
				*_m.QuestionsGeneratedAt = value.Time
			}
		case calibrationstate.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case calibrationstate.FieldCalculatedDifficultyTarget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field calculated_difficulty_target", values[i])
			} else if value.Valid {
				_m.CalculatedDifficultyTarget = new(int)
				*_m.CalculatedDifficultyTarget = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalibrationState.
// This includes values selected through modifiers, order, etc.
func (_m *CalibrationState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CalibrationState.
// Note that you need to call CalibrationState.Unwrap() before calling this method if this CalibrationState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalibrationState) Update() *CalibrationStateUpdateOne {
	return NewCalibrationStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalibrationState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalibrationState) Unwrap() *CalibrationState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalibrationState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalibrationState) String() string {
	var builder strings.Builder
	builder.WriteString("CalibrationState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.QuestionsGeneratedAt; v != nil {
		builder.WriteString("questions_generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CalculatedDifficultyTarget; v != nil {
		builder.WriteString("calculated_difficulty_target=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CalibrationStates is a parsable slice of CalibrationState.
type CalibrationStates []*CalibrationState
