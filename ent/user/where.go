// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/leadreach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// DefaultEmailSubject applies equality check predicate on the "default_email_subject" field. It's identical to DefaultEmailSubjectEQ.
func DefaultEmailSubject(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDefaultEmailSubject, v))
}

// DefaultEmailTemplate applies equality check predicate on the "default_email_template" field. It's identical to DefaultEmailTemplateEQ.
func DefaultEmailTemplate(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDefaultEmailTemplate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// DefaultEmailSubjectEQ applies the EQ predicate on the "default_email_subject" field.
func DefaultEmailSubjectEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectNEQ applies the NEQ predicate on the "default_email_subject" field.
func DefaultEmailSubjectNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectIn applies the In predicate on the "default_email_subject" field.
func DefaultEmailSubjectIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDefaultEmailSubject, vs...))
}

// DefaultEmailSubjectNotIn applies the NotIn predicate on the "default_email_subject" field.
func DefaultEmailSubjectNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDefaultEmailSubject, vs...))
}

// DefaultEmailSubjectGT applies the GT predicate on the "default_email_subject" field.
func DefaultEmailSubjectGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectGTE applies the GTE predicate on the "default_email_subject" field.
func DefaultEmailSubjectGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectLT applies the LT predicate on the "default_email_subject" field.
func DefaultEmailSubjectLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectLTE applies the LTE predicate on the "default_email_subject" field.
func DefaultEmailSubjectLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectContains applies the Contains predicate on the "default_email_subject" field.
func DefaultEmailSubjectContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectHasPrefix applies the HasPrefix predicate on the "default_email_subject" field.
func DefaultEmailSubjectHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectHasSuffix applies the HasSuffix predicate on the "default_email_subject" field.
func DefaultEmailSubjectHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectIsNil applies the IsNil predicate on the "default_email_subject" field.
func DefaultEmailSubjectIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDefaultEmailSubject))
}

// DefaultEmailSubjectNotNil applies the NotNil predicate on the "default_email_subject" field.
func DefaultEmailSubjectNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDefaultEmailSubject))
}

// DefaultEmailSubjectEqualFold applies the EqualFold predicate on the "default_email_subject" field.
func DefaultEmailSubjectEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDefaultEmailSubject, v))
}

// DefaultEmailSubjectContainsFold applies the ContainsFold predicate on the "default_email_subject" field.
func DefaultEmailSubjectContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDefaultEmailSubject, v))
}

// DefaultEmailTemplateEQ applies the EQ predicate on the "default_email_template" field.
func DefaultEmailTemplateEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateNEQ applies the NEQ predicate on the "default_email_template" field.
func DefaultEmailTemplateNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateIn applies the In predicate on the "default_email_template" field.
func DefaultEmailTemplateIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDefaultEmailTemplate, vs...))
}

// DefaultEmailTemplateNotIn applies the NotIn predicate on the "default_email_template" field.
func DefaultEmailTemplateNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDefaultEmailTemplate, vs...))
}

// DefaultEmailTemplateGT applies the GT predicate on the "default_email_template" field.
func DefaultEmailTemplateGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateGTE applies the GTE predicate on the "default_email_template" field.
func DefaultEmailTemplateGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateLT applies the LT predicate on the "default_email_template" field.
func DefaultEmailTemplateLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateLTE applies the LTE predicate on the "default_email_template" field.
func DefaultEmailTemplateLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateContains applies the Contains predicate on the "default_email_template" field.
func DefaultEmailTemplateContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateHasPrefix applies the HasPrefix predicate on the "default_email_template" field.
func DefaultEmailTemplateHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateHasSuffix applies the HasSuffix predicate on the "default_email_template" field.
func DefaultEmailTemplateHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateIsNil applies the IsNil predicate on the "default_email_template" field.
func DefaultEmailTemplateIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDefaultEmailTemplate))
}

// DefaultEmailTemplateNotNil applies the NotNil predicate on the "default_email_template" field.
func DefaultEmailTemplateNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDefaultEmailTemplate))
}

// DefaultEmailTemplateEqualFold applies the EqualFold predicate on the "default_email_template" field.
func DefaultEmailTemplateEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDefaultEmailTemplate, v))
}

// DefaultEmailTemplateContainsFold applies the ContainsFold predicate on the "default_email_template" field.
func DefaultEmailTemplateContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDefaultEmailTemplate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEmailAccounts applies the HasEdge predicate on the "email_accounts" edge.
func HasEmailAccounts() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EmailAccountsTable, EmailAccountsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailAccountsWith applies the HasEdge predicate on the "email_accounts" edge with a given conditions (other predicates).
func HasEmailAccountsWith(preds ...predicate.EmailAccount) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newEmailAccountsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCampaigns applies the HasEdge predicate on the "campaigns" edge.
func HasCampaigns() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CampaignsTable, CampaignsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignsWith applies the HasEdge predicate on the "campaigns" edge with a given conditions (other predicates).
func HasCampaignsWith(preds ...predicate.Campaign) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newCampaignsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLeads applies the HasEdge predicate on the "leads" edge.
func HasLeads() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadsWith applies the HasEdge predicate on the "leads" edge with a given conditions (other predicates).
func HasLeadsWith(preds ...predicate.Lead) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newLeadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
