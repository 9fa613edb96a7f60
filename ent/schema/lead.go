package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("User who imported this lead"),
		field.String("email").
			NotEmpty().
			Comment("Contact email address"),
		field.String("name").
			Optional().
			Comment("Contact full name"),
		field.String("role").
			Optional().
			Comment("Job title or role"),
		field.String("linkedin_url").
			Optional().
			Comment("LinkedIn profile URL"),
		field.Int("company_id").
			Optional().
			Nillable().
			Comment("Company this contact works at"),
		field.JSON("custom_fields", map[string]string{}).
			Optional().
			Comment("User-defined fields, exposed as extra template variables"),
		field.String("tag").
			Optional().
			Comment("Free-form grouping tag from import"),
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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("leads").
			Field("user_id").
			Unique().
			Required().
			Comment("Lead owner"),
		edge.From("company", Company.Type).
			Ref("leads").
			Field("company_id").
			Unique().
			Comment("Employer, optional"),
		edge.To("campaign_leads", CampaignLead.Type).
			Comment("Campaign memberships"),
		edge.To("replies", Reply.Type).
			Comment("Replies received from this lead"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "email").
			Unique().
			StorageKey("idx_lead_user_email"),
		index.Fields("company_id"),
		index.Fields("tag"),
		index.Fields("created_at"),
	}
}
