package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Company holds the schema definition for the Company entity.
// email_subject/email_template are set only when enrichment_status is
// completed; enrichment_error only when it is failed.
type Company struct {
	ent.Schema
}

// Fields of the Company.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.String("domain").
			Unique().
			NotEmpty().
			Comment("Company website domain"),
		field.String("name").
			NotEmpty().
			Comment("Company name"),
		field.String("logo_url").
			Optional().
			Comment("Logo image URL"),
		field.Enum("enrichment_status").
			Values("pending", "processing", "completed", "failed").
			Default("pending").
			Comment("AI template generation status"),
		field.Time("enrichment_started_at").
			Optional().
			Nillable().
			Comment("When the last enrichment run started, used for staleness detection"),
		field.Text("enrichment_error").
			Optional().
			Comment("Error detail when enrichment failed"),
		field.String("email_subject").
			Optional().
			Comment("Generated subject line for this company"),
		field.Text("email_template").
			Optional().
			Comment("Generated HTML email body for this company"),
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

// Edges of the Company.
func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("leads", Lead.Type).
			Comment("Contacts at this company"),
	}
}

// Indexes of the Company.
func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrichment_status"),
		index.Fields("created_at"),
	}
}
