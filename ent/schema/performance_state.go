package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceState tracks one user's running performance on one skill.
// A difficulty_target of 0 means the pair is uncalibrated.
type PerformanceState struct {
	ent.Schema
}

func (PerformanceState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.Int("difficulty_target").
			Default(0).
			Min(0).
			Max(10).
			Comment("Difficulty level 1-10 for the next challenge; 0 = uncalibrated"),
		field.Int("streak_correct").
			Default(0).
			Min(0),
		field.Int("streak_incorrect").
			Default(0).
			Min(0),
		field.Int("attempts_total").
			Default(0).
			Min(0),
		field.Int("correct_total").
			Default(0).
			Min(0),
		field.Time("last_challenged_at").
			Optional().
			Nillable().
			Comment("When a challenge was last generated for this pair"),
		field.Enum("last_result").
			Values("correct", "incorrect", "ignored").
			Optional().
			Nillable().
			Comment("Outcome of the most recent steady-state challenge"),
	}
}

func (PerformanceState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
	}
}
