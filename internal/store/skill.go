package store

import (
	"context"
	"fmt"

	"github.com/skillissue/engine/ent"
	"github.com/skillissue/engine/ent/skill"
)

// skillRepo implements SkillRepo using the ent client.
type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) Get(ctx context.Context, id string) (*Skill, error) {
	row, err := r.client.Skill.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("skill %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &Skill{ID: row.ID, Name: row.Name, Description: row.Description}, nil
}

func (r *skillRepo) List(ctx context.Context) ([]Skill, error) {
	rows, err := r.client.Skill.Query().
		Order(ent.Asc(skill.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	out := make([]Skill, len(rows))
	for i, row := range rows {
		out[i] = Skill{ID: row.ID, Name: row.Name, Description: row.Description}
	}
	return out, nil
}

func (r *skillRepo) Upsert(ctx context.Context, s *Skill) error {
	err := r.client.Skill.Create().
		SetID(s.ID).
		SetName(s.Name).
		SetDescription(s.Description).
		OnConflictColumns(skill.FieldID).
		Update(func(u *ent.SkillUpsert) {
			u.SetName(s.Name)
			u.SetDescription(s.Description)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert skill %q: %w", s.ID, err)
	}
	return nil
}
