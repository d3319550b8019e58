// Code generated by ent, DO NOT EDIT.

package performancestate

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the performancestate type in the database.
	Label = "performance_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldDifficultyTarget holds the string denoting the difficulty_target field in the database.
	FieldDifficultyTarget = "difficulty_target"
	// FieldStreakCorrect holds the string denoting the streak_correct field in the database.
	FieldStreakCorrect = "streak_correct"
	// FieldStreakIncorrect holds the string denoting the streak_incorrect field in the database.
	FieldStreakIncorrect = "streak_incorrect"
	// FieldAttemptsTotal holds the string denoting the attempts_total field in the database.
	FieldAttemptsTotal = "attempts_total"
	// FieldCorrectTotal holds the string denoting the correct_total field in the database.
	FieldCorrectTotal = "correct_total"
	// FieldLastChallengedAt holds the string denoting the last_challenged_at field in the database.
	FieldLastChallengedAt = "last_challenged_at"
	// FieldLastResult holds the string denoting the last_result field in the database.
	FieldLastResult = "last_result"
	// Table holds the table name of the performancestate in the database.
	Table = "performance_states"
)

// Columns holds all SQL columns for performancestate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSkillID,
	FieldDifficultyTarget,
	FieldStreakCorrect,
	FieldStreakIncorrect,
	FieldAttemptsTotal,
	FieldCorrectTotal,
	FieldLastChallengedAt,
	FieldLastResult,
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
	// DefaultDifficultyTarget holds the default value on creation for the "difficulty_target" field.
	DefaultDifficultyTarget int
	// DifficultyTargetValidator is a validator for the "difficulty_target" field. It is called by the builders before save.
	DifficultyTargetValidator func(int) error
	// DefaultStreakCorrect holds the default value on creation for the "streak_correct" field.
	DefaultStreakCorrect int
	// StreakCorrectValidator is a validator for the "streak_correct" field. It is called by the builders before save.
	StreakCorrectValidator func(int) error
	// DefaultStreakIncorrect holds the default value on creation for the "streak_incorrect" field.
	DefaultStreakIncorrect int
	// StreakIncorrectValidator is a validator for the "streak_incorrect" field. It is called by the builders before save.
	StreakIncorrectValidator func(int) error
	// DefaultAttemptsTotal holds the default value on creation for the "attempts_total" field.
	DefaultAttemptsTotal int
	// AttemptsTotalValidator is a validator for the "attempts_total" field. It is called by the builders before save.
	AttemptsTotalValidator func(int) error
	// DefaultCorrectTotal holds the default value on creation for the "correct_total" field.
	DefaultCorrectTotal int
	// CorrectTotalValidator is a validator for the "correct_total" field. It is called by the builders before save.
	CorrectTotalValidator func(int) error
)

// LastResult defines the type for the "last_result" enum field.
type LastResult string

// LastResult values.
const (
	LastResultCorrect   LastResult = "correct"
	LastResultIncorrect LastResult = "incorrect"
	LastResultIgnored   LastResult = "ignored"
)

func (lr LastResult) String() string {
	return string(lr)
}

// LastResultValidator is a validator for the "last_result" field enum values. It is called by the builders before save.
func LastResultValidator(lr LastResult) error {
	switch lr {
	case LastResultCorrect, LastResultIncorrect, LastResultIgnored:
		return nil
	default:
		return fmt.Errorf("performancestate: invalid enum value for last_result field: %q", lr)
	}
}

// OrderOption defines the ordering options for the PerformanceState queries.
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

// ByDifficultyTarget orders the results by the difficulty_target field.
func ByDifficultyTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyTarget, opts...).ToFunc()
}

// ByStreakCorrect orders the results by the streak_correct field.
func ByStreakCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakCorrect, opts...).ToFunc()
}

// ByStreakIncorrect orders the results by the streak_incorrect field.
func ByStreakIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakIncorrect, opts...).ToFunc()
}

// ByAttemptsTotal orders the results by the attempts_total field.
func ByAttemptsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsTotal, opts...).ToFunc()
}

// ByCorrectTotal orders the results by the correct_total field.
func ByCorrectTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectTotal, opts...).ToFunc()
}

// ByLastChallengedAt orders the results by the last_challenged_at field.
func ByLastChallengedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastChallengedAt, opts...).ToFunc()
}

// ByLastResult orders the results by the last_result field.
func ByLastResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResult, opts...).ToFunc()
}
