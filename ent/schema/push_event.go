package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PushEvent tracks delivery of a challenge to the user's device,
// one per challenge. Created in the same transaction as the
// challenge so an orphaned challenge is detectable.
type PushEvent struct {
	ent.Schema
}

func (PushEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("challenge_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Enum("status").
			Values("sent", "delivered", "failed", "opened").
			Default("sent"),
		field.Time("sent_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PushEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
