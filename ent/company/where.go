// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/leadreach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldID, id))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldDomain, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// LogoURL applies equality check predicate on the "logo_url" field. It's identical to LogoURLEQ.
func LogoURL(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldLogoURL, v))
}

// EnrichmentStartedAt applies equality check predicate on the "enrichment_started_at" field. It's identical to EnrichmentStartedAtEQ.
func EnrichmentStartedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEnrichmentStartedAt, v))
}

// EnrichmentError applies equality check predicate on the "enrichment_error" field. It's identical to EnrichmentErrorEQ.
func EnrichmentError(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEnrichmentError, v))
}

// EmailSubject applies equality check predicate on the "email_subject" field. It's identical to EmailSubjectEQ.
func EmailSubject(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailTemplate applies equality check predicate on the "email_template" field. It's identical to EmailTemplateEQ.
func EmailTemplate(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEmailTemplate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldUpdatedAt, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldDomain, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldName, v))
}

// LogoURLEQ applies the EQ predicate on the "logo_url" field.
func LogoURLEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldLogoURL, v))
}

// LogoURLNEQ applies the NEQ predicate on the "logo_url" field.
func LogoURLNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldLogoURL, v))
}

// LogoURLIn applies the In predicate on the "logo_url" field.
func LogoURLIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldLogoURL, vs...))
}

// LogoURLNotIn applies the NotIn predicate on the "logo_url" field.
func LogoURLNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldLogoURL, vs...))
}

// LogoURLGT applies the GT predicate on the "logo_url" field.
func LogoURLGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldLogoURL, v))
}

// LogoURLGTE applies the GTE predicate on the "logo_url" field.
func LogoURLGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldLogoURL, v))
}

// LogoURLLT applies the LT predicate on the "logo_url" field.
func LogoURLLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldLogoURL, v))
}

// LogoURLLTE applies the LTE predicate on the "logo_url" field.
func LogoURLLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldLogoURL, v))
}

// LogoURLContains applies the Contains predicate on the "logo_url" field.
func LogoURLContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldLogoURL, v))
}

// LogoURLHasPrefix applies the HasPrefix predicate on the "logo_url" field.
func LogoURLHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldLogoURL, v))
}

// LogoURLHasSuffix applies the HasSuffix predicate on the "logo_url" field.
func LogoURLHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldLogoURL, v))
}

// LogoURLIsNil applies the IsNil predicate on the "logo_url" field.
func LogoURLIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldLogoURL))
}

// LogoURLNotNil applies the NotNil predicate on the "logo_url" field.
func LogoURLNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldLogoURL))
}

// LogoURLEqualFold applies the EqualFold predicate on the "logo_url" field.
func LogoURLEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldLogoURL, v))
}

// LogoURLContainsFold applies the ContainsFold predicate on the "logo_url" field.
func LogoURLContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldLogoURL, v))
}

// EnrichmentStatusEQ applies the EQ predicate on the "enrichment_status" field.
func EnrichmentStatusEQ(v EnrichmentStatus) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEnrichmentStatus, v))
}

// EnrichmentStatusNEQ applies the NEQ predicate on the "enrichment_status" field.
func EnrichmentStatusNEQ(v EnrichmentStatus) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldEnrichmentStatus, v))
}

// EnrichmentStatusIn applies the In predicate on the "enrichment_status" field.
func EnrichmentStatusIn(vs ...EnrichmentStatus) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldEnrichmentStatus, vs...))
}

// EnrichmentStatusNotIn applies the NotIn predicate on the "enrichment_status" field.
func EnrichmentStatusNotIn(vs ...EnrichmentStatus) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldEnrichmentStatus, vs...))
}

// EnrichmentStartedAtEQ applies the EQ predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEnrichmentStartedAt, v))
}

// EnrichmentStartedAtNEQ applies the NEQ predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldEnrichmentStartedAt, v))
}

// EnrichmentStartedAtIn applies the In predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldEnrichmentStartedAt, vs...))
}

// EnrichmentStartedAtNotIn applies the NotIn predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldEnrichmentStartedAt, vs...))
}

// EnrichmentStartedAtGT applies the GT predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldEnrichmentStartedAt, v))
}

// EnrichmentStartedAtGTE applies the GTE predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldEnrichmentStartedAt, v))
}

// EnrichmentStartedAtLT applies the LT predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldEnrichmentStartedAt, v))
}

// EnrichmentStartedAtLTE applies the LTE predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldEnrichmentStartedAt, v))
}

// EnrichmentStartedAtIsNil applies the IsNil predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldEnrichmentStartedAt))
}

// EnrichmentStartedAtNotNil applies the NotNil predicate on the "enrichment_started_at" field.
func EnrichmentStartedAtNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldEnrichmentStartedAt))
}

// EnrichmentErrorEQ applies the EQ predicate on the "enrichment_error" field.
func EnrichmentErrorEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEnrichmentError, v))
}

// EnrichmentErrorNEQ applies the NEQ predicate on the "enrichment_error" field.
func EnrichmentErrorNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldEnrichmentError, v))
}

// EnrichmentErrorIn applies the In predicate on the "enrichment_error" field.
func EnrichmentErrorIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldEnrichmentError, vs...))
}

// EnrichmentErrorNotIn applies the NotIn predicate on the "enrichment_error" field.
func EnrichmentErrorNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldEnrichmentError, vs...))
}

// EnrichmentErrorGT applies the GT predicate on the "enrichment_error" field.
func EnrichmentErrorGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldEnrichmentError, v))
}

// EnrichmentErrorGTE applies the GTE predicate on the "enrichment_error" field.
func EnrichmentErrorGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldEnrichmentError, v))
}

// EnrichmentErrorLT applies the LT predicate on the "enrichment_error" field.
func EnrichmentErrorLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldEnrichmentError, v))
}

// EnrichmentErrorLTE applies the LTE predicate on the "enrichment_error" field.
func EnrichmentErrorLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldEnrichmentError, v))
}

// EnrichmentErrorContains applies the Contains predicate on the "enrichment_error" field.
func EnrichmentErrorContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldEnrichmentError, v))
}

// EnrichmentErrorHasPrefix applies the HasPrefix predicate on the "enrichment_error" field.
func EnrichmentErrorHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldEnrichmentError, v))
}

// EnrichmentErrorHasSuffix applies the HasSuffix predicate on the "enrichment_error" field.
func EnrichmentErrorHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldEnrichmentError, v))
}

// EnrichmentErrorIsNil applies the IsNil predicate on the "enrichment_error" field.
func EnrichmentErrorIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldEnrichmentError))
}

// EnrichmentErrorNotNil applies the NotNil predicate on the "enrichment_error" field.
func EnrichmentErrorNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldEnrichmentError))
}

// EnrichmentErrorEqualFold applies the EqualFold predicate on the "enrichment_error" field.
func EnrichmentErrorEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldEnrichmentError, v))
}

// EnrichmentErrorContainsFold applies the ContainsFold predicate on the "enrichment_error" field.
func EnrichmentErrorContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldEnrichmentError, v))
}

// EmailSubjectEQ applies the EQ predicate on the "email_subject" field.
func EmailSubjectEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailSubjectNEQ applies the NEQ predicate on the "email_subject" field.
func EmailSubjectNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldEmailSubject, v))
}

// EmailSubjectIn applies the In predicate on the "email_subject" field.
func EmailSubjectIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldEmailSubject, vs...))
}

// EmailSubjectNotIn applies the NotIn predicate on the "email_subject" field.
func EmailSubjectNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldEmailSubject, vs...))
}

// EmailSubjectGT applies the GT predicate on the "email_subject" field.
func EmailSubjectGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldEmailSubject, v))
}

// EmailSubjectGTE applies the GTE predicate on the "email_subject" field.
func EmailSubjectGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldEmailSubject, v))
}

// EmailSubjectLT applies the LT predicate on the "email_subject" field.
func EmailSubjectLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldEmailSubject, v))
}

// EmailSubjectLTE applies the LTE predicate on the "email_subject" field.
func EmailSubjectLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldEmailSubject, v))
}

// EmailSubjectContains applies the Contains predicate on the "email_subject" field.
func EmailSubjectContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldEmailSubject, v))
}

// EmailSubjectHasPrefix applies the HasPrefix predicate on the "email_subject" field.
func EmailSubjectHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldEmailSubject, v))
}

// EmailSubjectHasSuffix applies the HasSuffix predicate on the "email_subject" field.
func EmailSubjectHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldEmailSubject, v))
}

// EmailSubjectIsNil applies the IsNil predicate on the "email_subject" field.
func EmailSubjectIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldEmailSubject))
}

// EmailSubjectNotNil applies the NotNil predicate on the "email_subject" field.
func EmailSubjectNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldEmailSubject))
}

// EmailSubjectEqualFold applies the EqualFold predicate on the "email_subject" field.
func EmailSubjectEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldEmailSubject, v))
}

// EmailSubjectContainsFold applies the ContainsFold predicate on the "email_subject" field.
func EmailSubjectContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldEmailSubject, v))
}

// EmailTemplateEQ applies the EQ predicate on the "email_template" field.
func EmailTemplateEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldEmailTemplate, v))
}

// EmailTemplateNEQ applies the NEQ predicate on the "email_template" field.
func EmailTemplateNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldEmailTemplate, v))
}

// EmailTemplateIn applies the In predicate on the "email_template" field.
func EmailTemplateIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldEmailTemplate, vs...))
}

// EmailTemplateNotIn applies the NotIn predicate on the "email_template" field.
func EmailTemplateNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldEmailTemplate, vs...))
}

// EmailTemplateGT applies the GT predicate on the "email_template" field.
func EmailTemplateGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldEmailTemplate, v))
}

// EmailTemplateGTE applies the GTE predicate on the "email_template" field.
func EmailTemplateGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldEmailTemplate, v))
}

// EmailTemplateLT applies the LT predicate on the "email_template" field.
func EmailTemplateLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldEmailTemplate, v))
}

// EmailTemplateLTE applies the LTE predicate on the "email_template" field.
func EmailTemplateLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldEmailTemplate, v))
}

// EmailTemplateContains applies the Contains predicate on the "email_template" field.
func EmailTemplateContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldEmailTemplate, v))
}

// EmailTemplateHasPrefix applies the HasPrefix predicate on the "email_template" field.
func EmailTemplateHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldEmailTemplate, v))
}

// EmailTemplateHasSuffix applies the HasSuffix predicate on the "email_template" field.
func EmailTemplateHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldEmailTemplate, v))
}

// EmailTemplateIsNil applies the IsNil predicate on the "email_template" field.
func EmailTemplateIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldEmailTemplate))
}

// EmailTemplateNotNil applies the NotNil predicate on the "email_template" field.
func EmailTemplateNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldEmailTemplate))
}

// EmailTemplateEqualFold applies the EqualFold predicate on the "email_template" field.
func EmailTemplateEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldEmailTemplate, v))
}

// EmailTemplateContainsFold applies the ContainsFold predicate on the "email_template" field.
func EmailTemplateContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldEmailTemplate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLeads applies the HasEdge predicate on the "leads" edge.
func HasLeads() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadsWith applies the HasEdge predicate on the "leads" edge with a given conditions (other predicates).
func HasLeadsWith(preds ...predicate.Lead) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newLeadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Company) predicate.Company {
	return predicate.Company(sql.NotPredicates(p))
}
