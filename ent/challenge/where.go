// Code generated by ent, DO NOT EDIT.

package challenge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldID, id))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldSkillID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldUserID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldDifficulty, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldQuestion, v))
}

// CorrectOptionIndex applies equality check predicate on the "correct_option_index" field. It's identical to CorrectOptionIndexEQ.
func CorrectOptionIndex(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCorrectOptionIndex, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldExplanation, v))
}

// GeneratorID applies equality check predicate on the "generator_id" field. It's identical to GeneratorIDEQ.
func GeneratorID(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldGeneratorID, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldPromptVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCreatedAt, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldSkillID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldUserID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldDifficulty, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldQuestion, v))
}

// CorrectOptionIndexEQ applies the EQ predicate on the "correct_option_index" field.
func CorrectOptionIndexEQ(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexNEQ applies the NEQ predicate on the "correct_option_index" field.
func CorrectOptionIndexNEQ(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexIn applies the In predicate on the "correct_option_index" field.
func CorrectOptionIndexIn(vs ...int) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldCorrectOptionIndex, vs...))
}

// CorrectOptionIndexNotIn applies the NotIn predicate on the "correct_option_index" field.
func CorrectOptionIndexNotIn(vs ...int) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldCorrectOptionIndex, vs...))
}

// CorrectOptionIndexGT applies the GT predicate on the "correct_option_index" field.
func CorrectOptionIndexGT(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexGTE applies the GTE predicate on the "correct_option_index" field.
func CorrectOptionIndexGTE(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexLT applies the LT predicate on the "correct_option_index" field.
func CorrectOptionIndexLT(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexLTE applies the LTE predicate on the "correct_option_index" field.
func CorrectOptionIndexLTE(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldCorrectOptionIndex, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldExplanation, v))
}

// GeneratorIDEQ applies the EQ predicate on the "generator_id" field.
func GeneratorIDEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldGeneratorID, v))
}

// GeneratorIDNEQ applies the NEQ predicate on the "generator_id" field.
func GeneratorIDNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldGeneratorID, v))
}

// GeneratorIDIn applies the In predicate on the "generator_id" field.
func GeneratorIDIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldGeneratorID, vs...))
}

// GeneratorIDNotIn applies the NotIn predicate on the "generator_id" field.
func GeneratorIDNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldGeneratorID, vs...))
}

// GeneratorIDGT applies the GT predicate on the "generator_id" field.
func GeneratorIDGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldGeneratorID, v))
}

// GeneratorIDGTE applies the GTE predicate on the "generator_id" field.
func GeneratorIDGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldGeneratorID, v))
}

// GeneratorIDLT applies the LT predicate on the "generator_id" field.
func GeneratorIDLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldGeneratorID, v))
}

// GeneratorIDLTE applies the LTE predicate on the "generator_id" field.
func GeneratorIDLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldGeneratorID, v))
}

// GeneratorIDContains applies the Contains predicate on the "generator_id" field.
func GeneratorIDContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldGeneratorID, v))
}

// GeneratorIDHasPrefix applies the HasPrefix predicate on the "generator_id" field.
func GeneratorIDHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldGeneratorID, v))
}

// GeneratorIDHasSuffix applies the HasSuffix predicate on the "generator_id" field.
func GeneratorIDHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldGeneratorID, v))
}

// GeneratorIDEqualFold applies the EqualFold predicate on the "generator_id" field.
func GeneratorIDEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldGeneratorID, v))
}

// GeneratorIDContainsFold applies the ContainsFold predicate on the "generator_id" field.
func GeneratorIDContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldGeneratorID, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldPromptVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.NotPredicates(p))
}
