package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CampaignLead holds the schema definition for the CampaignLead entity.
// One row per (campaign, lead) pair, created in bulk at campaign creation.
// The orchestrator owns the pending->sent|failed transitions, the reply
// reconciler owns sent->replied, and the tracking endpoint owns sent->opened.
type CampaignLead struct {
	ent.Schema
}

// Fields of the CampaignLead.
func (CampaignLead) Fields() []ent.Field {
	return []ent.Field{
		field.Int("campaign_id").
			Comment("Campaign this send belongs to"),
		field.Int("lead_id").
			Comment("Recipient lead"),
		field.Int("account_id").
			Comment("Sender mailbox assigned at creation via round robin"),
		field.Enum("status").
			Values("pending", "sent", "failed", "replied", "opened", "cancelled").
			Default("pending").
			Comment("Send status"),
		field.String("thread_id").
			Optional().
			Comment("Provider conversation thread id, set after a successful send"),
		field.String("message_id").
			Optional().
			Comment("Provider message id, set after a successful send"),
		field.Time("sent_at").
			Optional().
			Nillable().
			Comment("When the email was sent"),
		field.Time("opened_at").
			Optional().
			Nillable().
			Comment("When the tracking pixel was first requested"),
		field.Time("replied_at").
			Optional().
			Nillable().
			Comment("When a reply was detected"),
		field.Text("error_message").
			Optional().
			Comment("Error detail when status is failed"),
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

// Edges of the CampaignLead.
func (CampaignLead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("campaign_leads").
			Field("campaign_id").
			Unique().
			Required(),
		edge.From("lead", Lead.Type).
			Ref("campaign_leads").
			Field("lead_id").
			Unique().
			Required(),
		edge.From("account", EmailAccount.Type).
			Ref("campaign_leads").
			Field("account_id").
			Unique().
			Required(),
		edge.To("replies", Reply.Type).
			Comment("Replies matched to this send by thread id"),
	}
}

// Indexes of the CampaignLead.
func (CampaignLead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "lead_id").
			Unique().
			StorageKey("idx_campaign_lead_unique"),
		index.Fields("campaign_id", "status").
			StorageKey("idx_campaign_lead_status"),
		index.Fields("thread_id").
			StorageKey("idx_campaign_lead_thread"),
		index.Fields("sent_at"),
	}
}
