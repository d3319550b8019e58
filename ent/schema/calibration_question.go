package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalibrationQuestion is one probe question in a skill's ten-level
// calibration battery. Shared across all users of the skill and
// immutable once written; the (skill_id, difficulty) key makes
// regeneration an idempotent upsert.
type CalibrationQuestion struct {
	ent.Schema
}

func (CalibrationQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.Int("difficulty").
			Min(1).
			Max(10).
			Immutable(),
		field.String("question").
			NotEmpty(),
		field.JSON("options", []string{}).
			Comment("Exactly 4 answer options"),
		field.Int("correct_option_index").
			Min(0).
			Max(3),
		field.String("explanation").
			Default(""),
	}
}

func (CalibrationQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id", "difficulty").Unique(),
		index.Fields("skill_id"),
	}
}
