// Code generated by ent, DO NOT EDIT.

package calibrationquestion

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the calibrationquestion type in the database.
	Label = "calibration_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectOptionIndex holds the string denoting the correct_option_index field in the database.
	FieldCorrectOptionIndex = "correct_option_index"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// Table holds the table name of the calibrationquestion in the database.
	Table = "calibration_questions"
)

// Columns holds all SQL columns for calibrationquestion fields.
var Columns = []string{
	FieldID,
	FieldSkillID,
	FieldDifficulty,
	FieldQuestion,
	FieldOptions,
	FieldCorrectOptionIndex,
	FieldExplanation,
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
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(int) error
	// QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	QuestionValidator func(string) error
	// CorrectOptionIndexValidator is a validator for the "correct_option_index" field. It is called by the builders before save.
	CorrectOptionIndexValidator func(int) error
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
)

// OrderOption defines the ordering options for the CalibrationQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByCorrectOptionIndex orders the results by the correct_option_index field.
func ByCorrectOptionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectOptionIndex, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}
