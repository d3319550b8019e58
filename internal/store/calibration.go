package store

import (
	"context"
	"fmt"
	"time"

	"github.com/skillissue/engine/ent"
	"github.com/skillissue/engine/ent/calibrationanswer"
	"github.com/skillissue/engine/ent/calibrationquestion"
	"github.com/skillissue/engine/ent/calibrationstate"
	"github.com/skillissue/engine/ent/performancestate"
)

// calibrationRepo implements CalibrationRepo using the ent client.
type calibrationRepo struct {
	client *ent.Client
}

func (r *calibrationRepo) QuestionsBySkill(ctx context.Context, skillID string) ([]CalibrationQuestion, error) {
	rows, err := r.client.CalibrationQuestion.Query().
		Where(calibrationquestion.SkillID(skillID)).
		Order(ent.Asc(calibrationquestion.FieldDifficulty)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query calibration questions: %w", err)
	}

	out := make([]CalibrationQuestion, len(rows))
	for i, row := range rows {
		out[i] = *fromEntQuestion(row)
	}
	return out, nil
}

func (r *calibrationRepo) QuestionByDifficulty(ctx context.Context, skillID string, difficulty int) (*CalibrationQuestion, error) {
	row, err := r.client.CalibrationQuestion.Query().
		Where(
			calibrationquestion.SkillID(skillID),
			calibrationquestion.Difficulty(difficulty),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("calibration question %s/%d: %w", skillID, difficulty, ErrNotFound)
		}
		return nil, fmt.Errorf("get calibration question: %w", err)
	}
	return fromEntQuestion(row), nil
}

func (r *calibrationRepo) UpsertQuestion(ctx context.Context, q *CalibrationQuestion) error {
	err := r.client.CalibrationQuestion.Create().
		SetSkillID(q.SkillID).
		SetDifficulty(q.Difficulty).
		SetQuestion(q.Question).
		SetOptions(q.Options).
		SetCorrectOptionIndex(q.CorrectOptionIndex).
		SetExplanation(q.Explanation).
		OnConflictColumns(
			calibrationquestion.FieldSkillID,
			calibrationquestion.FieldDifficulty,
		).
		Update(func(u *ent.CalibrationQuestionUpsert) {
			u.SetQuestion(q.Question)
			// ent's upsert Set does not JSON-encode JSON fields; take the
			// (identical) value from the conflicting INSERT instead.
			u.UpdateOptions()
			u.SetCorrectOptionIndex(q.CorrectOptionIndex)
			u.SetExplanation(q.Explanation)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert calibration question %s/%d: %w", q.SkillID, q.Difficulty, err)
	}
	return nil
}

func (r *calibrationRepo) GetState(ctx context.Context, userID, skillID string) (*CalibrationState, error) {
	row, err := r.client.CalibrationState.Query().
		Where(
			calibrationstate.UserID(userID),
			calibrationstate.SkillID(skillID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calibration state: %w", err)
	}
	return fromEntState(row), nil
}

func (r *calibrationRepo) GetOrCreateState(ctx context.Context, userID, skillID string) (*CalibrationState, error) {
	st, err := r.GetState(ctx, userID, skillID)
	if err != nil {
		return nil, err
	}
	if st != nil {
		return st, nil
	}

	row, err := r.client.CalibrationState.Create().
		SetUserID(userID).
		SetSkillID(skillID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return r.GetState(ctx, userID, skillID)
		}
		return nil, fmt.Errorf("create calibration state: %w", err)
	}
	return fromEntState(row), nil
}

func (r *calibrationRepo) UpdateState(ctx context.Context, st *CalibrationState) error {
	upd := r.client.CalibrationState.UpdateOneID(st.ID).
		SetStatus(calibrationstate.Status(st.Status)).
		SetNillableQuestionsGeneratedAt(st.QuestionsGeneratedAt).
		SetNillableCompletedAt(st.CompletedAt).
		SetNillableCalculatedDifficultyTarget(st.CalculatedDifficultyTarget)

	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update calibration state %s: %w", st.ID, err)
	}
	return nil
}

func (r *calibrationRepo) InsertAnswer(ctx context.Context, a *CalibrationAnswer) error {
	create := r.client.CalibrationAnswer.Create().
		SetUserID(a.UserID).
		SetSkillID(a.SkillID).
		SetDifficulty(a.Difficulty).
		SetSelectedOption(a.SelectedOption).
		SetCorrectOption(a.CorrectOption).
		SetIsCorrect(a.IsCorrect).
		SetNillableResponseTimeMs(a.ResponseTimeMs)

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("answer %s/%s/%d: %w", a.UserID, a.SkillID, a.Difficulty, ErrDuplicate)
		}
		return fmt.Errorf("insert calibration answer: %w", err)
	}
	return nil
}

func (r *calibrationRepo) Answers(ctx context.Context, userID, skillID string) ([]CalibrationAnswer, error) {
	rows, err := r.client.CalibrationAnswer.Query().
		Where(
			calibrationanswer.UserID(userID),
			calibrationanswer.SkillID(skillID),
		).
		Order(ent.Asc(calibrationanswer.FieldDifficulty)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query calibration answers: %w", err)
	}

	out := make([]CalibrationAnswer, len(rows))
	for i, row := range rows {
		out[i] = CalibrationAnswer{
			UserID:         row.UserID,
			SkillID:        row.SkillID,
			Difficulty:     row.Difficulty,
			SelectedOption: row.SelectedOption,
			CorrectOption:  row.CorrectOption,
			IsCorrect:      row.IsCorrect,
			ResponseTimeMs: row.ResponseTimeMs,
			AnsweredAt:     row.AnsweredAt,
		}
	}
	return out, nil
}

// Complete marks the calibration completed and seeds the performance
// state's difficulty target in one transaction, so a partial failure
// cannot leave a completed calibration with an uncalibrated target.
func (r *calibrationRepo) Complete(ctx context.Context, userID, skillID string, target int) (*CalibrationState, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	st, err := completeInTx(ctx, tx, userID, skillID, target)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit calibration completion: %w", err)
	}
	return st, nil
}

func completeInTx(ctx context.Context, tx *ent.Tx, userID, skillID string, target int) (*CalibrationState, error) {
	row, err := tx.CalibrationState.Query().
		Where(
			calibrationstate.UserID(userID),
			calibrationstate.SkillID(skillID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load calibration state: %w", err)
	}

	now := time.Now().UTC()
	row, err = tx.CalibrationState.UpdateOneID(row.ID).
		SetStatus(calibrationstate.StatusCompleted).
		SetCompletedAt(now).
		SetCalculatedDifficultyTarget(target).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark calibration completed: %w", err)
	}

	perf, err := tx.PerformanceState.Query().
		Where(
			performancestate.UserID(userID),
			performancestate.SkillID(skillID),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = tx.PerformanceState.Create().
			SetUserID(userID).
			SetSkillID(skillID).
			SetDifficultyTarget(target).
			Save(ctx)
	case err == nil:
		_, err = tx.PerformanceState.UpdateOneID(perf.ID).
			SetDifficultyTarget(target).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("seed difficulty target: %w", err)
	}

	return fromEntState(row), nil
}

func fromEntQuestion(row *ent.CalibrationQuestion) *CalibrationQuestion {
	return &CalibrationQuestion{
		SkillID:            row.SkillID,
		Difficulty:         row.Difficulty,
		Question:           row.Question,
		Options:            row.Options,
		CorrectOptionIndex: row.CorrectOptionIndex,
		Explanation:        row.Explanation,
	}
}

func fromEntState(row *ent.CalibrationState) *CalibrationState {
	return &CalibrationState{
		ID:                         row.ID,
		UserID:                     row.UserID,
		SkillID:                    row.SkillID,
		Status:                     CalibrationStatus(row.Status),
		QuestionsGeneratedAt:       row.QuestionsGeneratedAt,
		CompletedAt:                row.CompletedAt,
		CalculatedDifficultyTarget: row.CalculatedDifficultyTarget,
	}
}
