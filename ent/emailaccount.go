// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/ent/user"
)

// EmailAccount is the model entity for the EmailAccount schema.
type EmailAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID int `json:"user_id,omitempty"`
	// Mailbox address
	Email string `json:"email,omitempty"`
	// From name shown to recipients
	DisplayName string `json:"display_name,omitempty"`
	// Mailbox provider
	Provider emailaccount.Provider `json:"provider,omitempty"`
	// OAuth access token
	AccessToken string `json:"-"`
	// OAuth refresh token
	RefreshToken string `json:"-"`
	// Access token expiry
	TokenExpiresAt time.Time `json:"token_expires_at,omitempty"`
	// Whether this mailbox may be used for sending
	Active bool `json:"active,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailAccountQuery when eager-loading is set.
	Edges        EmailAccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailAccountEdges holds the relations/edges for other nodes in the graph.
type EmailAccountEdges struct {
	// Mailbox owner
	User *User `json:"user,omitempty"`
	// Campaigns using this mailbox in their rotation pool
	Campaigns []*Campaign `json:"campaigns,omitempty"`
	// Per-recipient sends assigned to this mailbox
	CampaignLeads []*CampaignLead `json:"campaign_leads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmailAccountEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// CampaignsOrErr returns the Campaigns value or an error if the edge
// was not loaded in eager-loading.
func (e EmailAccountEdges) CampaignsOrErr() ([]*Campaign, error) {
	if e.loadedTypes[1] {
		return e.Campaigns, nil
	}
	return nil, &NotLoadedError{edge: "campaigns"}
}

// CampaignLeadsOrErr returns the CampaignLeads value or an error if the edge
// was not loaded in eager-loading.
func (e EmailAccountEdges) CampaignLeadsOrErr() ([]*CampaignLead, error) {
	if e.loadedTypes[2] {
		return e.CampaignLeads, nil
	}
	return nil, &NotLoadedError{edge: "campaign_leads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailaccount.FieldActive:
			values[i] = new(sql.NullBool)
		case emailaccount.FieldID, emailaccount.FieldUserID:
			values[i] = new(sql.NullInt64)
		case emailaccount.FieldEmail, emailaccount.FieldDisplayName, emailaccount.FieldProvider, emailaccount.FieldAccessToken, emailaccount.FieldRefreshToken:
			values[i] = new(sql.NullString)
		case emailaccount.FieldTokenExpiresAt, emailaccount.FieldCreatedAt, emailaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailAccount fields.
func (_m *EmailAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailaccount.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case emailaccount.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case emailaccount.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case emailaccount.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case emailaccount.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = emailaccount.Provider(value.String)
			}
		case emailaccount.FieldAccessToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_token", values[i])
			} else if value.Valid {
				_m.AccessToken = value.String
			}
		case emailaccount.FieldRefreshToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token", values[i])
			} else if value.Valid {
				_m.RefreshToken = value.String
			}
		case emailaccount.FieldTokenExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field token_expires_at", values[i])
			} else if value.Valid {
				_m.TokenExpiresAt = value.Time
			}
		case emailaccount.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case emailaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case emailaccount.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EmailAccount.
// This includes values selected through modifiers, order, etc.
func (_m *EmailAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the EmailAccount entity.
func (_m *EmailAccount) QueryUser() *UserQuery {
	return NewEmailAccountClient(_m.config).QueryUser(_m)
}

// QueryCampaigns queries the "campaigns" edge of the EmailAccount entity.
func (_m *EmailAccount) QueryCampaigns() *CampaignQuery {
	return NewEmailAccountClient(_m.config).QueryCampaigns(_m)
}

// QueryCampaignLeads queries the "campaign_leads" edge of the EmailAccount entity.
func (_m *EmailAccount) QueryCampaignLeads() *CampaignLeadQuery {
	return NewEmailAccountClient(_m.config).QueryCampaignLeads(_m)
}

// Update returns a builder for updating this EmailAccount.
// Note that you need to call EmailAccount.Unwrap() before calling this method if this EmailAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailAccount) Update() *EmailAccountUpdateOne {
	return NewEmailAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailAccount) Unwrap() *EmailAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailAccount) String() string {
	var builder strings.Builder
	builder.WriteString("EmailAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("access_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("refresh_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("token_expires_at=")
	builder.WriteString(_m.TokenExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmailAccounts is a parsable slice of EmailAccount.
type EmailAccounts []*EmailAccount
