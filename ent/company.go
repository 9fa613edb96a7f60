// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/leadreach/ent/company"
)

// Company is the model entity for the Company schema.
type Company struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Company website domain
	Domain string `json:"domain,omitempty"`
	// Company name
	Name string `json:"name,omitempty"`
	// Logo image URL
	LogoURL string `json:"logo_url,omitempty"`
	// AI template generation status
	EnrichmentStatus company.EnrichmentStatus `json:"enrichment_status,omitempty"`
	// When the last enrichment run started, used for staleness detection
	EnrichmentStartedAt *time.Time `json:"enrichment_started_at,omitempty"`
	// Error detail when enrichment failed
	EnrichmentError string `json:"enrichment_error,omitempty"`
	// Generated subject line for this company
	EmailSubject string `json:"email_subject,omitempty"`
	// Generated HTML email body for this company
	EmailTemplate string `json:"email_template,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyQuery when eager-loading is set.
	Edges        CompanyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyEdges holds the relations/edges for other nodes in the graph.
type CompanyEdges struct {
	// Contacts at this company
	Leads []*Lead `json:"leads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[0] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Company) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			values[i] = new(sql.NullInt64)
		case company.FieldDomain, company.FieldName, company.FieldLogoURL, company.FieldEnrichmentStatus, company.FieldEnrichmentError, company.FieldEmailSubject, company.FieldEmailTemplate:
			values[i] = new(sql.NullString)
		case company.FieldEnrichmentStartedAt, company.FieldCreatedAt, company.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Company fields.
func (_m *Company) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case company.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case company.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case company.FieldLogoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logo_url", values[i])
			} else if value.Valid {
				_m.LogoURL = value.String
			}
		case company.FieldEnrichmentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment_status", values[i])
			} else if value.Valid {
				_m.EnrichmentStatus = company.EnrichmentStatus(value.String)
			}
		case company.FieldEnrichmentStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment_started_at", values[i])
			} else if value.Valid {
				_m.EnrichmentStartedAt = new(time.Time)
				*_m.EnrichmentStartedAt = value.Time
			}
		case company.FieldEnrichmentError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment_error", values[i])
			} else if value.Valid {
				_m.EnrichmentError = value.String
			}
		case company.FieldEmailSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_subject", values[i])
			} else if value.Valid {
				_m.EmailSubject = value.String
			}
		case company.FieldEmailTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_template", values[i])
			} else if value.Valid {
				_m.EmailTemplate = value.String
			}
		case company.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case company.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Company.
// This includes values selected through modifiers, order, etc.
func (_m *Company) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLeads queries the "leads" edge of the Company entity.
func (_m *Company) QueryLeads() *LeadQuery {
	return NewCompanyClient(_m.config).QueryLeads(_m)
}

// Update returns a builder for updating this Company.
// Note that you need to call Company.Unwrap() before calling this method if this Company
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Company) Update() *CompanyUpdateOne {
	return NewCompanyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Company entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Company) Unwrap() *Company {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Company is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Company) String() string {
	var builder strings.Builder
	builder.WriteString("Company(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("logo_url=")
	builder.WriteString(_m.LogoURL)
	builder.WriteString(", ")
	builder.WriteString("enrichment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrichmentStatus))
	builder.WriteString(", ")
	if v := _m.EnrichmentStartedAt; v != nil {
		builder.WriteString("enrichment_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("enrichment_error=")
	builder.WriteString(_m.EnrichmentError)
	builder.WriteString(", ")
	builder.WriteString("email_subject=")
	builder.WriteString(_m.EmailSubject)
	builder.WriteString(", ")
	builder.WriteString("email_template=")
	builder.WriteString(_m.EmailTemplate)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Companies is a parsable slice of Company.
type Companies []*Company
