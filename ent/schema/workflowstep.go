package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowStep holds the schema definition for the WorkflowStep entity.
// A step row is written once, after the step's side effect has reached its
// terminal outcome; replays find the row and skip re-execution.
type WorkflowStep struct {
	ent.Schema
}

// Fields of the WorkflowStep.
func (WorkflowStep) Fields() []ent.Field {
	return []ent.Field{
		field.Int("run_id").
			Comment("Run this step belongs to"),
		field.String("name").
			NotEmpty().
			Comment("Step name, unique within the run"),
		field.Enum("status").
			Values("completed", "failed").
			Comment("Terminal step outcome"),
		field.Int("attempts").
			Default(1).
			Positive().
			Comment("Number of execution attempts before the terminal outcome"),
		field.Bytes("result").
			Optional().
			Comment("JSON-encoded cached step result"),
		field.Time("completed_at").
			Default(time.Now).
			Comment("When the step reached its terminal outcome"),
	}
}

// Edges of the WorkflowStep.
func (WorkflowStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required(),
	}
}

// Indexes of the WorkflowStep.
func (WorkflowStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "name").
			Unique().
			StorageKey("idx_workflow_step_run_name"),
	}
}
