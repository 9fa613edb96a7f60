package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for the Campaign entity.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Campaign name"),
		field.Enum("status").
			Values("draft", "scheduled", "running", "completed", "cancelled", "error").
			Default("draft").
			Comment("Campaign status, driven by the orchestrator and user cancel only"),
		field.Int("user_id").
			Comment("User who created the campaign"),
		field.Time("scheduled_at").
			Optional().
			Nillable().
			Comment("When to start sending (empty means immediately)"),
		field.JSON("attachment_keys", []string{}).
			Optional().
			Comment("Storage object keys attached to every email in this campaign"),
		field.Text("error_message").
			Optional().
			Comment("Setup failure detail when status is error"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("campaigns").
			Field("user_id").
			Unique().
			Required().
			Comment("Campaign creator"),
		edge.To("accounts", EmailAccount.Type).
			Comment("Sender rotation pool, fixed at creation"),
		edge.To("campaign_leads", CampaignLead.Type).
			Comment("Per-recipient send records, cascade-deleted with the campaign"),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("scheduled_at"),
		index.Fields("created_at"),
	}
}
