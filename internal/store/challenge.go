package store

import (
	"context"
	"fmt"

	"github.com/skillissue/engine/ent"
	"github.com/skillissue/engine/ent/pushevent"
)

// challengeRepo implements ChallengeRepo using the ent client.
type challengeRepo struct {
	client *ent.Client
}

// CreateWithPush persists the challenge and its initial push event in
// one transaction. An orphaned challenge without a push event can then
// only mean a bug, not an interrupted write.
func (r *challengeRepo) CreateWithPush(ctx context.Context, c *Challenge) (*Challenge, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	create := tx.Challenge.Create().
		SetSkillID(c.SkillID).
		SetUserID(c.UserID).
		SetDifficulty(c.Difficulty).
		SetQuestion(c.Question).
		SetOptions(c.Options).
		SetCorrectOptionIndex(c.CorrectOptionIndex).
		SetExplanation(c.Explanation).
		SetGeneratorID(c.GeneratorID).
		SetPromptVersion(c.PromptVersion)
	if c.ID != "" {
		create.SetID(c.ID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("save challenge: %w", err)
	}

	_, err = tx.PushEvent.Create().
		SetChallengeID(row.ID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("save push event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit challenge: %w", err)
	}
	return fromEntChallenge(row), nil
}

func (r *challengeRepo) Get(ctx context.Context, id string) (*Challenge, error) {
	row, err := r.client.Challenge.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("challenge %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get challenge: %w", err)
	}
	return fromEntChallenge(row), nil
}

func (r *challengeRepo) UpdatePushStatus(ctx context.Context, challengeID string, status PushStatus) error {
	n, err := r.client.PushEvent.Update().
		Where(pushevent.ChallengeID(challengeID)).
		SetStatus(pushevent.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update push status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("push event for challenge %q: %w", challengeID, ErrNotFound)
	}
	return nil
}

func fromEntChallenge(row *ent.Challenge) *Challenge {
	return &Challenge{
		ID:                 row.ID,
		SkillID:            row.SkillID,
		UserID:             row.UserID,
		Difficulty:         row.Difficulty,
		Question:           row.Question,
		Options:            row.Options,
		CorrectOptionIndex: row.CorrectOptionIndex,
		Explanation:        row.Explanation,
		GeneratorID:        row.GeneratorID,
		PromptVersion:      row.PromptVersion,
		CreatedAt:          row.CreatedAt,
	}
}
