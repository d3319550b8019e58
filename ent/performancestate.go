// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/performancestate"
)

// PerformanceState is the model entity for the PerformanceState schema.
type PerformanceState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Difficulty level 1-10 for the next challenge; 0 = uncalibrated
	DifficultyTarget int `json:"difficulty_target,omitempty"`
	// StreakCorrect holds the value of the "streak_correct" field.
	StreakCorrect int `json:"streak_correct,omitempty"`
	// StreakIncorrect holds the value of the "streak_incorrect" field.
	StreakIncorrect int `json:"streak_incorrect,omitempty"`
	// AttemptsTotal holds the value of the "attempts_total" field.
	AttemptsTotal int `json:"attempts_total,omitempty"`
	// CorrectTotal holds the value of the "correct_total" field.
	CorrectTotal int `json:"correct_total,omitempty"`
	// When a challenge was last generated for this pair
	LastChallengedAt *time.Time `json:"last_challenged_at,omitempty"`
	// Outcome of the most recent steady-state challenge
	LastResult   *performancestate.LastResult `json:"last_result,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PerformanceState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case performancestate.FieldID, performancestate.FieldDifficultyTarget, performancestate.FieldStreakCorrect, performancestate.FieldStreakIncorrect, performancestate.FieldAttemptsTotal, performancestate.FieldCorrectTotal:
			values[i] = new(sql.NullInt64)
		case performancestate.FieldUserID, performancestate.FieldSkillID, performancestate.FieldLastResult:
			values[i] = new(sql.NullString)
		case performancestate.FieldLastChallengedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PerformanceState fields.
func (_m *PerformanceState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case performancestate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case performancestate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case performancestate.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case performancestate.FieldDifficultyTarget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_target", values[i])
			} else if value.Valid {
				_m.DifficultyTarget = int(value.Int64)
			}
		case performancestate.FieldStreakCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_correct", values[i])
			} else if value.Valid {
				_m.StreakCorrect = int(value.Int64)
			}
		case performancestate.FieldStreakIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_incorrect", values[i])
			} else if value.Valid {
				_m.StreakIncorrect = int(value.Int64)
			}
		case performancestate.FieldAttemptsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts_total", values[i])
			} else if value.Valid {
				_m.AttemptsTotal = int(value.Int64)
			}
		case performancestate.FieldCorrectTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_total", values[i])
			} else if value.Valid {
				_m.CorrectTotal = int(value.Int64)
			}
		case performancestate.FieldLastChallengedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_challenged_at", values[i])
			} else if value.Valid {
				_m.LastChallengedAt = new(time.Time)
				*_m.LastChallengedAt = value.Time
			}
		case performancestate.FieldLastResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_result", values[i])
			} else if value.Valid {
				_m.LastResult = new(performancestate.LastResult)
				*_m.LastResult = performancestate.LastResult(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PerformanceState.
// This includes values selected through modifiers, order, etc.
func (_m *PerformanceState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PerformanceState.
// Note that you need to call PerformanceState.Unwrap() before calling this method if this PerformanceState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PerformanceState) Update() *PerformanceStateUpdateOne {
	return NewPerformanceStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PerformanceState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PerformanceState) Unwrap() *PerformanceState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PerformanceState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PerformanceState) String() string {
	var builder strings.Builder
	builder.WriteString("PerformanceState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("difficulty_target=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyTarget))
	builder.WriteString(", ")
	builder.WriteString("streak_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakCorrect))
	builder.WriteString(", ")
	builder.WriteString("streak_incorrect=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakIncorrect))
	builder.WriteString(", ")
	builder.WriteString("attempts_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptsTotal))
	builder.WriteString(", ")
	builder.WriteString("correct_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectTotal))
	builder.WriteString(", ")
	if v := _m.LastChallengedAt; v != nil {
		builder.WriteString("last_challenged_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastResult; v != nil {
		builder.WriteString("last_result=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PerformanceStates is a parsable slice of PerformanceState.
type PerformanceStates []*PerformanceState
