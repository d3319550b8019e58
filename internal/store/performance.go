package store

import (
	"context"
	"fmt"

	"github.com/skillissue/engine/ent"
	"github.com/skillissue/engine/ent/performancestate"
)

// performanceRepo implements PerformanceRepo using the ent client.
type performanceRepo struct {
	client *ent.Client
}

func (r *performanceRepo) Get(ctx context.Context, userID, skillID string) (*PerformanceState, error) {
	row, err := r.client.PerformanceState.Query().
		Where(
			performancestate.UserID(userID),
			performancestate.SkillID(skillID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get performance state: %w", err)
	}
	return fromEntPerformance(row), nil
}

func (r *performanceRepo) GetOrCreate(ctx context.Context, userID, skillID string) (*PerformanceState, error) {
	st, err := r.Get(ctx, userID, skillID)
	if err != nil {
		return nil, err
	}
	if st != nil {
		return st, nil
	}

	row, err := r.client.PerformanceState.Create().
		SetUserID(userID).
		SetSkillID(skillID).
		Save(ctx)
	if err != nil {
		// A concurrent caller may have created the row first; the
		// unique (user_id, skill_id) index makes that a conflict.
		if ent.IsConstraintError(err) {
			return r.Get(ctx, userID, skillID)
		}
		return nil, fmt.Errorf("create performance state: %w", err)
	}
	return fromEntPerformance(row), nil
}

func (r *performanceRepo) Mutate(ctx context.Context, userID, skillID string, fn func(*PerformanceState)) (*PerformanceState, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	st, err := mutateInTx(ctx, tx, userID, skillID, fn)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit performance update: %w", err)
	}
	return st, nil
}

func mutateInTx(ctx context.Context, tx *ent.Tx, userID, skillID string, fn func(*PerformanceState)) (*PerformanceState, error) {
	row, err := tx.PerformanceState.Query().
		Where(
			performancestate.UserID(userID),
			performancestate.SkillID(skillID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		row, err = tx.PerformanceState.Create().
			SetUserID(userID).
			SetSkillID(skillID).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load performance state: %w", err)
	}

	st := fromEntPerformance(row)
	fn(st)

	upd := tx.PerformanceState.UpdateOneID(row.ID).
		SetDifficultyTarget(st.DifficultyTarget).
		SetStreakCorrect(st.StreakCorrect).
		SetStreakIncorrect(st.StreakIncorrect).
		SetAttemptsTotal(st.AttemptsTotal).
		SetCorrectTotal(st.CorrectTotal).
		SetNillableLastChallengedAt(st.LastChallengedAt)
	if st.LastResult != "" {
		upd.SetLastResult(performancestate.LastResult(st.LastResult))
	}

	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("save performance state: %w", err)
	}
	return st, nil
}

func fromEntPerformance(row *ent.PerformanceState) *PerformanceState {
	st := &PerformanceState{
		UserID:           row.UserID,
		SkillID:          row.SkillID,
		DifficultyTarget: row.DifficultyTarget,
		StreakCorrect:    row.StreakCorrect,
		StreakIncorrect:  row.StreakIncorrect,
		AttemptsTotal:    row.AttemptsTotal,
		CorrectTotal:     row.CorrectTotal,
		LastChallengedAt: row.LastChallengedAt,
	}
	if row.LastResult != nil {
		st.LastResult = LastResult(*row.LastResult)
	}
	return st
}
