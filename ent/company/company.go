// Code generated by ent, DO NOT EDIT.

package company

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the company type in the database.
	Label = "company"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldLogoURL holds the string denoting the logo_url field in the database.
	FieldLogoURL = "logo_url"
	// FieldEnrichmentStatus holds the string denoting the enrichment_status field in the database.
	FieldEnrichmentStatus = "enrichment_status"
	// FieldEnrichmentStartedAt holds the string denoting the enrichment_started_at field in the database.
	FieldEnrichmentStartedAt = "enrichment_started_at"
	// FieldEnrichmentError holds the string denoting the enrichment_error field in the database.
	FieldEnrichmentError = "enrichment_error"
	// FieldEmailSubject holds the string denoting the email_subject field in the database.
	FieldEmailSubject = "email_subject"
	// FieldEmailTemplate holds the string denoting the email_template field in the database.
	FieldEmailTemplate = "email_template"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLeads holds the string denoting the leads edge name in mutations.
	EdgeLeads = "leads"
	// Table holds the table name of the company in the database.
	Table = "companies"
	// LeadsTable is the table that holds the leads relation/edge.
	LeadsTable = "leads"
	// LeadsInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadsInverseTable = "leads"
	// LeadsColumn is the table column denoting the leads relation/edge.
	LeadsColumn = "company_id"
)

// Columns holds all SQL columns for company fields.
var Columns = []string{
	FieldID,
	FieldDomain,
	FieldName,
	FieldLogoURL,
	FieldEnrichmentStatus,
	FieldEnrichmentStartedAt,
	FieldEnrichmentError,
	FieldEmailSubject,
	FieldEmailTemplate,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// EnrichmentStatus defines the type for the "enrichment_status" enum field.
type EnrichmentStatus string

// EnrichmentStatusPending is the default value of the EnrichmentStatus enum.
const DefaultEnrichmentStatus = EnrichmentStatusPending

// EnrichmentStatus values.
const (
	EnrichmentStatusPending    EnrichmentStatus = "pending"
	EnrichmentStatusProcessing EnrichmentStatus = "processing"
	EnrichmentStatusCompleted  EnrichmentStatus = "completed"
	EnrichmentStatusFailed     EnrichmentStatus = "failed"
)

func (es EnrichmentStatus) String() string {
	return string(es)
}

// EnrichmentStatusValidator is a validator for the "enrichment_status" field enum values. It is called by the builders before save.
func EnrichmentStatusValidator(es EnrichmentStatus) error {
	switch es {
	case EnrichmentStatusPending, EnrichmentStatusProcessing, EnrichmentStatusCompleted, EnrichmentStatusFailed:
		return nil
	default:
		return fmt.Errorf("company: invalid enum value for enrichment_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the Company queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByLogoURL orders the results by the logo_url field.
func ByLogoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogoURL, opts...).ToFunc()
}

// ByEnrichmentStatus orders the results by the enrichment_status field.
func ByEnrichmentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichmentStatus, opts...).ToFunc()
}

// ByEnrichmentStartedAt orders the results by the enrichment_started_at field.
func ByEnrichmentStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichmentStartedAt, opts...).ToFunc()
}

// ByEnrichmentError orders the results by the enrichment_error field.
func ByEnrichmentError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichmentError, opts...).ToFunc()
}

// ByEmailSubject orders the results by the email_subject field.
func ByEmailSubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSubject, opts...).ToFunc()
}

// ByEmailTemplate orders the results by the email_template field.
func ByEmailTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailTemplate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLeadsCount orders the results by leads count.
func ByLeadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeadsStep(), opts...)
	}
}

// ByLeads orders the results by leads terms.
func ByLeads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLeadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
	)
}
