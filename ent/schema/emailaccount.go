package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EmailAccount holds the schema definition for the EmailAccount entity.
// An EmailAccount is an OAuth-authorized mailbox a campaign can send from.
type EmailAccount struct {
	ent.Schema
}

// Fields of the EmailAccount.
func (EmailAccount) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Owning user"),
		field.String("email").
			NotEmpty().
			Comment("Mailbox address"),
		field.String("display_name").
			Optional().
			Comment("From name shown to recipients"),
		field.Enum("provider").
			Values("gmail", "outlook").
			Comment("Mailbox provider"),
		field.String("access_token").
			Sensitive().
			NotEmpty().
			Comment("OAuth access token"),
		field.String("refresh_token").
			Sensitive().
			NotEmpty().
			Comment("OAuth refresh token"),
		field.Time("token_expires_at").
			Comment("Access token expiry"),
		field.Bool("active").
			Default(true).
			Comment("Whether this mailbox may be used for sending"),
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

// Edges of the EmailAccount.
func (EmailAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("email_accounts").
			Field("user_id").
			Unique().
			Required().
			Comment("Mailbox owner"),
		edge.From("campaigns", Campaign.Type).
			Ref("accounts").
			Comment("Campaigns using this mailbox in their rotation pool"),
		edge.To("campaign_leads", CampaignLead.Type).
			Comment("Per-recipient sends assigned to this mailbox"),
	}
}

// Indexes of the EmailAccount.
func (EmailAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "email").Unique(),
		index.Fields("email"),
		index.Fields("active"),
	}
}
