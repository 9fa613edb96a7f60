package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowRun holds the schema definition for the WorkflowRun entity.
// One row per durable workflow instance; the step log hangs off it.
type WorkflowRun struct {
	ent.Schema
}

// Fields of the WorkflowRun.
func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("kind").
			Values("campaign_send", "company_enrichment").
			Comment("Workflow type"),
		field.Int("entity_id").
			Comment("Campaign or company this run operates on"),
		field.Enum("status").
			Values("running", "completed", "failed", "cancelled").
			Default("running").
			Comment("Run status"),
		field.Text("error_message").
			Optional().
			Comment("Failure detail when status is failed"),
		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("When the run started"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("When the run reached a terminal status"),
	}
}

// Edges of the WorkflowRun.
func (WorkflowRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", WorkflowStep.Type).
			Comment("Completed-step log for replay skipping"),
	}
}

// Indexes of the WorkflowRun.
func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "entity_id"),
		index.Fields("status"),
		index.Fields("started_at"),
	}
}
