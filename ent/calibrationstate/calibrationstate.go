// Code generated by ent, DO NOT EDIT.

package calibrationstate

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the calibrationstate type in the database.
	Label = "calibration_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldQuestionsGeneratedAt holds the string denoting the questions_generated_at field in the database.
	FieldQuestionsGeneratedAt = "questions_generated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCalculatedDifficultyTarget holds the string denoting the calculated_difficulty_target field in the database.
	FieldCalculatedDifficultyTarget = "calculated_difficulty_target"
	// Table holds the table name of the calibrationstate in the database.
	Table = "calibration_states"
)

// Columns holds all SQL columns for calibrationstate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSkillID,
	FieldStatus,
	FieldQuestionsGeneratedAt,
	FieldCompletedAt,
	FieldCalculatedDifficultyTarget,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// CalculatedDifficultyTargetValidator is a validator for the "calculated_difficulty_target" field. It is called by the builders before save.
	CalculatedDifficultyTargetValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("calibrationstate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CalibrationState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByQuestionsGeneratedAt orders the results by the questions_generated_at field.
func ByQuestionsGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsGeneratedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCalculatedDifficultyTarget orders the results by the calculated_difficulty_target field.
func ByCalculatedDifficultyTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalculatedDifficultyTarget, opts...).ToFunc()
}
