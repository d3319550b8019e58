package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Challenge is a generated steady-state challenge that passed the
// structural validator and the quality gate. Immutable once written.
type Challenge struct {
	ent.Schema
}

func (Challenge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }).
			NotEmpty().
			Immutable().
			Unique(),
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int("difficulty").
			Min(1).
			Max(10).
			Immutable().
			Comment("The difficulty target the challenge was generated at"),
		field.String("question").
			NotEmpty().
			Immutable(),
		field.JSON("options", []string{}).
			Immutable().
			Comment("Exactly 4 answer options"),
		field.Int("correct_option_index").
			Min(0).
			Max(3).
			Immutable(),
		field.String("explanation").
			Default("").
			Immutable(),
		field.String("generator_id").
			Default("").
			Immutable().
			Comment("Model ID of the content generator that produced the challenge"),
		field.String("prompt_version").
			Default("").
			Immutable().
			Comment("Version tag of the generation prompt"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Challenge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id"),
		index.Fields("created_at"),
	}
}
