// Code generated by ent, DO NOT EDIT.

package calibrationstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldSkillID, v))
}

// QuestionsGeneratedAt applies equality check predicate on the "questions_generated_at" field. It's identical to QuestionsGeneratedAtEQ.
func QuestionsGeneratedAt(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldQuestionsGeneratedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldCompletedAt, v))
}

// CalculatedDifficultyTarget applies equality check predicate on the "calculated_difficulty_target" field. It's identical to CalculatedDifficultyTargetEQ.
func CalculatedDifficultyTarget(v int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldCalculatedDifficultyTarget, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldContainsFold(FieldSkillID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotIn(FieldStatus, vs...))
}

// QuestionsGeneratedAtEQ applies the EQ predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtEQ(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldQuestionsGeneratedAt, v))
}

// QuestionsGeneratedAtNEQ applies the NEQ predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtNEQ(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNEQ(FieldQuestionsGeneratedAt, v))
}

// QuestionsGeneratedAtIn applies the In predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtIn(vs ...time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIn(FieldQuestionsGeneratedAt, vs...))
}

// QuestionsGeneratedAtNotIn applies the NotIn predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtNotIn(vs ...time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotIn(FieldQuestionsGeneratedAt, vs...))
}

// QuestionsGeneratedAtGT applies the GT predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtGT(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGT(FieldQuestionsGeneratedAt, v))
}

// QuestionsGeneratedAtGTE applies the GTE predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtGTE(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGTE(FieldQuestionsGeneratedAt, v))
}

// QuestionsGeneratedAtLT applies the LT predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtLT(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLT(FieldQuestionsGeneratedAt, v))
}

// QuestionsGeneratedAtLTE applies the LTE predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtLTE(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLTE(FieldQuestionsGeneratedAt, v))
}

// QuestionsGeneratedAtIsNil applies the IsNil predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtIsNil() predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIsNull(FieldQuestionsGeneratedAt))
}

// QuestionsGeneratedAtNotNil applies the NotNil predicate on the "questions_generated_at" field.
func QuestionsGeneratedAtNotNil() predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotNull(FieldQuestionsGeneratedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotNull(FieldCompletedAt))
}

// CalculatedDifficultyTargetEQ applies the EQ predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetEQ(v int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldEQ(FieldCalculatedDifficultyTarget, v))
}

// CalculatedDifficultyTargetNEQ applies the NEQ predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetNEQ(v int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNEQ(FieldCalculatedDifficultyTarget, v))
}

// CalculatedDifficultyTargetIn applies the In predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetIn(vs ...int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIn(FieldCalculatedDifficultyTarget, vs...))
}

// CalculatedDifficultyTargetNotIn applies the NotIn predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetNotIn(vs ...int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotIn(FieldCalculatedDifficultyTarget, vs...))
}

// CalculatedDifficultyTargetGT applies the GT predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetGT(v int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGT(FieldCalculatedDifficultyTarget, v))
}

// CalculatedDifficultyTargetGTE applies the GTE predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetGTE(v int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldGTE(FieldCalculatedDifficultyTarget, v))
}

// CalculatedDifficultyTargetLT applies the LT predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetLT(v int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLT(FieldCalculatedDifficultyTarget, v))
}

// CalculatedDifficultyTargetLTE applies the LTE predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetLTE(v int) predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldLTE(FieldCalculatedDifficultyTarget, v))
}

// CalculatedDifficultyTargetIsNil applies the IsNil predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetIsNil() predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldIsNull(FieldCalculatedDifficultyTarget))
}

// CalculatedDifficultyTargetNotNil applies the NotNil predicate on the "calculated_difficulty_target" field.
func CalculatedDifficultyTargetNotNil() predicate.CalibrationState {
	return predicate.CalibrationState(sql.FieldNotNull(FieldCalculatedDifficultyTarget))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalibrationState) predicate.CalibrationState {
	return predicate.CalibrationState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalibrationState) predicate.CalibrationState {
	return predicate.CalibrationState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalibrationState) predicate.CalibrationState {
	return predicate.CalibrationState(sql.NotPredicates(p))
}
