package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionTraceEvent records one engine operation: a pipeline run,
// a calibration step, or a batch generation pass. This is the
// durable form of the fire-and-forget observability sink; writes
// that fail are discarded by the caller.
type ExecutionTraceEvent struct {
	ent.Schema
}

func (ExecutionTraceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExecutionTraceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("operation").
			Comment("Operation name, e.g. design-challenge, ensure-questions"),
		field.String("user_id").
			Default(""),
		field.String("skill_id").
			Default(""),
		field.String("challenge_id").
			Default(""),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
		field.Int64("duration_ms").
			Default(0),
		field.Text("detail").
			Default("").
			Comment("Free-form step detail, e.g. validator errors or gate scores"),
	}
}

func (ExecutionTraceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation"),
		index.Fields("success"),
	}
}
