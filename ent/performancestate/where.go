// Code generated by ent, DO NOT EDIT.

package performancestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldSkillID, v))
}

// DifficultyTarget applies equality check predicate on the "difficulty_target" field. It's identical to DifficultyTargetEQ.
func DifficultyTarget(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldDifficultyTarget, v))
}

// StreakCorrect applies equality check predicate on the "streak_correct" field. It's identical to StreakCorrectEQ.
func StreakCorrect(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldStreakCorrect, v))
}

// StreakIncorrect applies equality check predicate on the "streak_incorrect" field. It's identical to StreakIncorrectEQ.
func StreakIncorrect(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldStreakIncorrect, v))
}

// AttemptsTotal applies equality check predicate on the "attempts_total" field. It's identical to AttemptsTotalEQ.
func AttemptsTotal(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldAttemptsTotal, v))
}

// CorrectTotal applies equality check predicate on the "correct_total" field. It's identical to CorrectTotalEQ.
func CorrectTotal(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldCorrectTotal, v))
}

// LastChallengedAt applies equality check predicate on the "last_challenged_at" field. It's identical to LastChallengedAtEQ.
func LastChallengedAt(v time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldLastChallengedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldContainsFold(FieldSkillID, v))
}

// DifficultyTargetEQ applies the EQ predicate on the "difficulty_target" field.
func DifficultyTargetEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldDifficultyTarget, v))
}

// DifficultyTargetNEQ applies the NEQ predicate on the "difficulty_target" field.
func DifficultyTargetNEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldDifficultyTarget, v))
}

// DifficultyTargetIn applies the In predicate on the "difficulty_target" field.
func DifficultyTargetIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldDifficultyTarget, vs...))
}

// DifficultyTargetNotIn applies the NotIn predicate on the "difficulty_target" field.
func DifficultyTargetNotIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldDifficultyTarget, vs...))
}

// DifficultyTargetGT applies the GT predicate on the "difficulty_target" field.
func DifficultyTargetGT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldDifficultyTarget, v))
}

// DifficultyTargetGTE applies the GTE predicate on the "difficulty_target" field.
func DifficultyTargetGTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldDifficultyTarget, v))
}

// DifficultyTargetLT applies the LT predicate on the "difficulty_target" field.
func DifficultyTargetLT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldDifficultyTarget, v))
}

// DifficultyTargetLTE applies the LTE predicate on the "difficulty_target" field.
func DifficultyTargetLTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldDifficultyTarget, v))
}

// StreakCorrectEQ applies the EQ predicate on the "streak_correct" field.
func StreakCorrectEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldStreakCorrect, v))
}

// StreakCorrectNEQ applies the NEQ predicate on the "streak_correct" field.
func StreakCorrectNEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldStreakCorrect, v))
}

// StreakCorrectIn applies the In predicate on the "streak_correct" field.
func StreakCorrectIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldStreakCorrect, vs...))
}

// StreakCorrectNotIn applies the NotIn predicate on the "streak_correct" field.
func StreakCorrectNotIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldStreakCorrect, vs...))
}

// StreakCorrectGT applies the GT predicate on the "streak_correct" field.
func StreakCorrectGT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldStreakCorrect, v))
}

// StreakCorrectGTE applies the GTE predicate on the "streak_correct" field.
func StreakCorrectGTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldStreakCorrect, v))
}

// StreakCorrectLT applies the LT predicate on the "streak_correct" field.
func StreakCorrectLT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldStreakCorrect, v))
}

// StreakCorrectLTE applies the LTE predicate on the "streak_correct" field.
func StreakCorrectLTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldStreakCorrect, v))
}

// StreakIncorrectEQ applies the EQ predicate on the "streak_incorrect" field.
func StreakIncorrectEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldStreakIncorrect, v))
}

// StreakIncorrectNEQ applies the NEQ predicate on the "streak_incorrect" field.
func StreakIncorrectNEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldStreakIncorrect, v))
}

// StreakIncorrectIn applies the In predicate on the "streak_incorrect" field.
func StreakIncorrectIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldStreakIncorrect, vs...))
}

// StreakIncorrectNotIn applies the NotIn predicate on the "streak_incorrect" field.
func StreakIncorrectNotIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldStreakIncorrect, vs...))
}

// StreakIncorrectGT applies the GT predicate on the "streak_incorrect" field.
func StreakIncorrectGT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldStreakIncorrect, v))
}

// StreakIncorrectGTE applies the GTE predicate on the "streak_incorrect" field.
func StreakIncorrectGTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldStreakIncorrect, v))
}

// StreakIncorrectLT applies the LT predicate on the "streak_incorrect" field.
func StreakIncorrectLT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldStreakIncorrect, v))
}

// StreakIncorrectLTE applies the LTE predicate on the "streak_incorrect" field.
func StreakIncorrectLTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldStreakIncorrect, v))
}

// AttemptsTotalEQ applies the EQ predicate on the "attempts_total" field.
func AttemptsTotalEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldAttemptsTotal, v))
}

// AttemptsTotalNEQ applies the NEQ predicate on the "attempts_total" field.
func AttemptsTotalNEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldAttemptsTotal, v))
}

// AttemptsTotalIn applies the In predicate on the "attempts_total" field.
func AttemptsTotalIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldAttemptsTotal, vs...))
}

// AttemptsTotalNotIn applies the NotIn predicate on the "attempts_total" field.
func AttemptsTotalNotIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldAttemptsTotal, vs...))
}

// AttemptsTotalGT applies the GT predicate on the "attempts_total" field.
func AttemptsTotalGT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldAttemptsTotal, v))
}

// AttemptsTotalGTE applies the GTE predicate on the "attempts_total" field.
func AttemptsTotalGTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldAttemptsTotal, v))
}

// AttemptsTotalLT applies the LT predicate on the "attempts_total" field.
func AttemptsTotalLT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldAttemptsTotal, v))
}

// AttemptsTotalLTE applies the LTE predicate on the "attempts_total" field.
func AttemptsTotalLTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldAttemptsTotal, v))
}

// CorrectTotalEQ applies the EQ predicate on the "correct_total" field.
func CorrectTotalEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldCorrectTotal, v))
}

// CorrectTotalNEQ applies the NEQ predicate on the "correct_total" field.
func CorrectTotalNEQ(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldCorrectTotal, v))
}

// CorrectTotalIn applies the In predicate on the "correct_total" field.
func CorrectTotalIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldCorrectTotal, vs...))
}

// CorrectTotalNotIn applies the NotIn predicate on the "correct_total" field.
func CorrectTotalNotIn(vs ...int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldCorrectTotal, vs...))
}

// CorrectTotalGT applies the GT predicate on the "correct_total" field.
func CorrectTotalGT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldCorrectTotal, v))
}

// CorrectTotalGTE applies the GTE predicate on the "correct_total" field.
func CorrectTotalGTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldCorrectTotal, v))
}

// CorrectTotalLT applies the LT predicate on the "correct_total" field.
func CorrectTotalLT(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldCorrectTotal, v))
}

// CorrectTotalLTE applies the LTE predicate on the "correct_total" field.
func CorrectTotalLTE(v int) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldCorrectTotal, v))
}

// LastChallengedAtEQ applies the EQ predicate on the "last_challenged_at" field.
func LastChallengedAtEQ(v time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldLastChallengedAt, v))
}

// LastChallengedAtNEQ applies the NEQ predicate on the "last_challenged_at" field.
func LastChallengedAtNEQ(v time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldLastChallengedAt, v))
}

// LastChallengedAtIn applies the In predicate on the "last_challenged_at" field.
func LastChallengedAtIn(vs ...time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldLastChallengedAt, vs...))
}

// LastChallengedAtNotIn applies the NotIn predicate on the "last_challenged_at" field.
func LastChallengedAtNotIn(vs ...time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldLastChallengedAt, vs...))
}

// LastChallengedAtGT applies the GT predicate on the "last_challenged_at" field.
func LastChallengedAtGT(v time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGT(FieldLastChallengedAt, v))
}

// LastChallengedAtGTE applies the GTE predicate on the "last_challenged_at" field.
func LastChallengedAtGTE(v time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldGTE(FieldLastChallengedAt, v))
}

// LastChallengedAtLT applies the LT predicate on the "last_challenged_at" field.
func LastChallengedAtLT(v time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLT(FieldLastChallengedAt, v))
}

// LastChallengedAtLTE applies the LTE predicate on the "last_challenged_at" field.
func LastChallengedAtLTE(v time.Time) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldLTE(FieldLastChallengedAt, v))
}

// LastChallengedAtIsNil applies the IsNil predicate on the "last_challenged_at" field.
func LastChallengedAtIsNil() predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIsNull(FieldLastChallengedAt))
}

// LastChallengedAtNotNil applies the NotNil predicate on the "last_challenged_at" field.
func LastChallengedAtNotNil() predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotNull(FieldLastChallengedAt))
}

// LastResultEQ applies the EQ predicate on the "last_result" field.
func LastResultEQ(v LastResult) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldEQ(FieldLastResult, v))
}

// LastResultNEQ applies the NEQ predicate on the "last_result" field.
func LastResultNEQ(v LastResult) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNEQ(FieldLastResult, v))
}

// LastResultIn applies the In predicate on the "last_result" field.
func LastResultIn(vs ...LastResult) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIn(FieldLastResult, vs...))
}

// LastResultNotIn applies the NotIn predicate on the "last_result" field.
func LastResultNotIn(vs ...LastResult) predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotIn(FieldLastResult, vs...))
}

// LastResultIsNil applies the IsNil predicate on the "last_result" field.
func LastResultIsNil() predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldIsNull(FieldLastResult))
}

// LastResultNotNil applies the NotNil predicate on the "last_result" field.
func LastResultNotNil() predicate.PerformanceState {
	return predicate.PerformanceState(sql.FieldNotNull(FieldLastResult))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PerformanceState) predicate.PerformanceState {
	return predicate.PerformanceState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PerformanceState) predicate.PerformanceState {
	return predicate.PerformanceState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PerformanceState) predicate.PerformanceState {
	return predicate.PerformanceState(sql.NotPredicates(p))
}
