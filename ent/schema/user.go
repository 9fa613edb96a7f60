package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.String("name").
			NotEmpty().
			Comment("User full name"),
		field.String("default_email_subject").
			Optional().
			Comment("Fallback subject used when a company has no enriched template"),
		field.Text("default_email_template").
			Optional().
			Comment("Fallback HTML body used when a company has no enriched template"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("email_accounts", EmailAccount.Type).
			Comment("OAuth-authorized sending mailboxes owned by this user"),
		edge.To("campaigns", Campaign.Type).
			Comment("Campaigns created by this user"),
		edge.To("leads", Lead.Type).
			Comment("Leads imported by this user"),
	}
}
