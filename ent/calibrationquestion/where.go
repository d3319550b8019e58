// Code generated by ent, DO NOT EDIT.

package calibrationquestion

import (
	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLTE(FieldID, id))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldSkillID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldQuestion, v))
}

// CorrectOptionIndex applies equality check predicate on the "correct_option_index" field. It's identical to CorrectOptionIndexEQ.
func CorrectOptionIndex(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldCorrectOptionIndex, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldExplanation, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldContainsFold(FieldSkillID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLTE(FieldDifficulty, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldContainsFold(FieldQuestion, v))
}

// CorrectOptionIndexEQ applies the EQ predicate on the "correct_option_index" field.
func CorrectOptionIndexEQ(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexNEQ applies the NEQ predicate on the "correct_option_index" field.
func CorrectOptionIndexNEQ(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNEQ(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexIn applies the In predicate on the "correct_option_index" field.
func CorrectOptionIndexIn(vs ...int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldIn(FieldCorrectOptionIndex, vs...))
}

// CorrectOptionIndexNotIn applies the NotIn predicate on the "correct_option_index" field.
func CorrectOptionIndexNotIn(vs ...int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNotIn(FieldCorrectOptionIndex, vs...))
}

// CorrectOptionIndexGT applies the GT predicate on the "correct_option_index" field.
func CorrectOptionIndexGT(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGT(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexGTE applies the GTE predicate on the "correct_option_index" field.
func CorrectOptionIndexGTE(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGTE(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexLT applies the LT predicate on the "correct_option_index" field.
func CorrectOptionIndexLT(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLT(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexLTE applies the LTE predicate on the "correct_option_index" field.
func CorrectOptionIndexLTE(v int) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLTE(FieldCorrectOptionIndex, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.FieldContainsFold(FieldExplanation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalibrationQuestion) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalibrationQuestion) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalibrationQuestion) predicate.CalibrationQuestion {
	return predicate.CalibrationQuestion(sql.NotPredicates(p))
}
