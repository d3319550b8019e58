package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CalibrationState is the per-(user, skill) calibration state machine:
// pending -> in_progress -> completed, with completed terminal.
type CalibrationState struct {
	ent.Schema
}

func (CalibrationState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }).
			NotEmpty().
			Immutable().
			Unique(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "completed").
			Default("pending"),
		field.Time("questions_generated_at").
			Optional().
			Nillable().
			Comment("When the battery was handed to the user"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("calculated_difficulty_target").
			Optional().
			Nillable().
			Min(1).
			Max(10).
			Comment("Target computed at completion; seeds PerformanceState"),
	}
}

func (CalibrationState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
	}
}
