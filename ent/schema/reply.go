package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reply holds the schema definition for the Reply entity.
// Append-only; the unique provider message id is the idempotency key that
// makes the reconciler safe to re-run.
type Reply struct {
	ent.Schema
}

// Fields of the Reply.
func (Reply) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Comment("Lead who replied"),
		field.Int("campaign_lead_id").
			Comment("Send this reply was matched to"),
		field.String("thread_id").
			NotEmpty().
			Comment("Provider conversation thread id"),
		field.String("message_id").
			Unique().
			NotEmpty().
			Comment("Provider message id"),
		field.String("subject").
			Optional().
			Comment("Reply subject line"),
		field.Text("snippet").
			Optional().
			Comment("Reply body snippet"),
		field.Time("received_at").
			Default(time.Now).
			Comment("When the reply was received"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Reply.
func (Reply) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("replies").
			Field("lead_id").
			Unique().
			Required(),
		edge.From("campaign_lead", CampaignLead.Type).
			Ref("replies").
			Field("campaign_lead_id").
			Unique().
			Required(),
	}
}

// Indexes of the Reply.
func (Reply) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id"),
		index.Fields("lead_id"),
		index.Fields("received_at"),
	}
}
