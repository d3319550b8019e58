package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Skill is immutable reference data describing a learnable skill.
// The engine reads skills; it never creates or mutates them outside
// of administrative seeding.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique().
			Comment("Stable skill identifier, e.g. a slug or UUID from the catalog"),
		field.String("name").
			NotEmpty().
			Comment("Human-readable skill name"),
		field.String("description").
			Default("").
			Comment("What competence in this skill looks like; fed into prompts"),
	}
}
