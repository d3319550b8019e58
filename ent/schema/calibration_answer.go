package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalibrationAnswer records one user's answer to one probe question.
// Write-once: the unique (user_id, skill_id, difficulty) index is the
// authoritative duplicate guard, not the application-level existence
// check that precedes it.
type CalibrationAnswer struct {
	ent.Schema
}

func (CalibrationAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.Int("difficulty").
			Min(1).
			Max(10).
			Immutable(),
		field.Int("selected_option").
			Min(0).
			Max(3).
			Immutable(),
		field.Int("correct_option").
			Min(0).
			Max(3).
			Immutable().
			Comment("Stored alongside the selection for later auditing"),
		field.Bool("is_correct").
			Immutable(),
		field.Int64("response_time_ms").
			Optional().
			Nillable().
			Immutable(),
		field.Time("answered_at").
			Immutable().
			Default(time.Now),
	}
}

func (CalibrationAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id", "difficulty").Unique(),
		index.Fields("user_id", "skill_id"),
	}
}
