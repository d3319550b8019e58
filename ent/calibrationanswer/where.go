// Code generated by ent, DO NOT EDIT.

package calibrationanswer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldSkillID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldDifficulty, v))
}

// SelectedOption applies equality check predicate on the "selected_option" field. It's identical to SelectedOptionEQ.
func SelectedOption(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldSelectedOption, v))
}

// CorrectOption applies equality check predicate on the "correct_option" field. It's identical to CorrectOptionEQ.
func CorrectOption(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldCorrectOption, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldIsCorrect, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldResponseTimeMs, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldAnsweredAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldContainsFold(FieldSkillID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLTE(FieldDifficulty, v))
}

// SelectedOptionEQ applies the EQ predicate on the "selected_option" field.
func SelectedOptionEQ(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldSelectedOption, v))
}

// SelectedOptionNEQ applies the NEQ predicate on the "selected_option" field.
func SelectedOptionNEQ(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldSelectedOption, v))
}

// SelectedOptionIn applies the In predicate on the "selected_option" field.
func SelectedOptionIn(vs ...int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIn(FieldSelectedOption, vs...))
}

// SelectedOptionNotIn applies the NotIn predicate on the "selected_option" field.
func SelectedOptionNotIn(vs ...int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotIn(FieldSelectedOption, vs...))
}

// SelectedOptionGT applies the GT predicate on the "selected_option" field.
func SelectedOptionGT(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGT(FieldSelectedOption, v))
}

// SelectedOptionGTE applies the GTE predicate on the "selected_option" field.
func SelectedOptionGTE(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGTE(FieldSelectedOption, v))
}

// SelectedOptionLT applies the LT predicate on the "selected_option" field.
func SelectedOptionLT(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLT(FieldSelectedOption, v))
}

// SelectedOptionLTE applies the LTE predicate on the "selected_option" field.
func SelectedOptionLTE(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLTE(FieldSelectedOption, v))
}

// CorrectOptionEQ applies the EQ predicate on the "correct_option" field.
func CorrectOptionEQ(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldCorrectOption, v))
}

// CorrectOptionNEQ applies the NEQ predicate on the "correct_option" field.
func CorrectOptionNEQ(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldCorrectOption, v))
}

// CorrectOptionIn applies the In predicate on the "correct_option" field.
func CorrectOptionIn(vs ...int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIn(FieldCorrectOption, vs...))
}

// CorrectOptionNotIn applies the NotIn predicate on the "correct_option" field.
func CorrectOptionNotIn(vs ...int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotIn(FieldCorrectOption, vs...))
}

// CorrectOptionGT applies the GT predicate on the "correct_option" field.
func CorrectOptionGT(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGT(FieldCorrectOption, v))
}

// CorrectOptionGTE applies the GTE predicate on the "correct_option" field.
func CorrectOptionGTE(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGTE(FieldCorrectOption, v))
}

// CorrectOptionLT applies the LT predicate on the "correct_option" field.
func CorrectOptionLT(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLT(FieldCorrectOption, v))
}

// CorrectOptionLTE applies the LTE predicate on the "correct_option" field.
func CorrectOptionLTE(v int) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLTE(FieldCorrectOption, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldIsCorrect, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int64) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsIsNil applies the IsNil predicate on the "response_time_ms" field.
func ResponseTimeMsIsNil() predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIsNull(FieldResponseTimeMs))
}

// ResponseTimeMsNotNil applies the NotNil predicate on the "response_time_ms" field.
func ResponseTimeMsNotNil() predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotNull(FieldResponseTimeMs))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.FieldLTE(FieldAnsweredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalibrationAnswer) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalibrationAnswer) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalibrationAnswer) predicate.CalibrationAnswer {
	return predicate.CalibrationAnswer(sql.NotPredicates(p))
}
