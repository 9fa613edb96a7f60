// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/leadreach/ent/campaign"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/ent/lead"
)

// CampaignLead is the model entity for the CampaignLead schema.
type CampaignLead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Campaign this send belongs to
	CampaignID int `json:"campaign_id,omitempty"`
	// Recipient lead
	LeadID int `json:"lead_id,omitempty"`
	// Sender mailbox assigned at creation via round robin
	AccountID int `json:"account_id,omitempty"`
	// Send status
	Status campaignlead.Status `json:"status,omitempty"`
	// Provider conversation thread id, set after a successful send
	ThreadID string `json:"thread_id,omitempty"`
	// Provider message id, set after a successful send
	MessageID string `json:"message_id,omitempty"`
	// When the email was sent
	SentAt *time.Time `json:"sent_at,omitempty"`
	// When the tracking pixel was first requested
	OpenedAt *time.Time `json:"opened_at,omitempty"`
	// When a reply was detected
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	// Error detail when status is failed
	ErrorMessage string `json:"error_message,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampaignLeadQuery when eager-loading is set.
	Edges        CampaignLeadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampaignLeadEdges holds the relations/edges for other nodes in the graph.
type CampaignLeadEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// Account holds the value of the account edge.
	Account *EmailAccount `json:"account,omitempty"`
	// Replies matched to this send by thread id
	Replies []*Reply `json:"replies,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignLeadEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignLeadEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignLeadEdges) AccountOrErr() (*EmailAccount, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: emailaccount.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// RepliesOrErr returns the Replies value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignLeadEdges) RepliesOrErr() ([]*Reply, error) {
	if e.loadedTypes[3] {
		return e.Replies, nil
	}
	return nil, &NotLoadedError{edge: "replies"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CampaignLead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaignlead.FieldID, campaignlead.FieldCampaignID, campaignlead.FieldLeadID, campaignlead.FieldAccountID:
			values[i] = new(sql.NullInt64)
		case campaignlead.FieldStatus, campaignlead.FieldThreadID, campaignlead.FieldMessageID, campaignlead.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case campaignlead.FieldSentAt, campaignlead.FieldOpenedAt, campaignlead.FieldRepliedAt, campaignlead.FieldCreatedAt, campaignlead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CampaignLead fields.
func (_m *CampaignLead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaignlead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case campaignlead.FieldCampaignID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = int(value.Int64)
			}
		case campaignlead.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case campaignlead.FieldAccountID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = int(value.Int64)
			}
		case campaignlead.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = campaignlead.Status(value.String)
			}
		case campaignlead.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case campaignlead.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case campaignlead.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case campaignlead.FieldOpenedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened_at", values[i])
			} else if value.Valid {
				_m.OpenedAt = new(time.Time)
				*_m.OpenedAt = value.Time
			}
		case campaignlead.FieldRepliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field replied_at", values[i])
			} else if value.Valid {
				_m.RepliedAt = new(time.Time)
				*_m.RepliedAt = value.Time
			}
		case campaignlead.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case campaignlead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campaignlead.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CampaignLead.
// This includes values selected through modifiers, order, etc.
func (_m *CampaignLead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the CampaignLead entity.
func (_m *CampaignLead) QueryCampaign() *CampaignQuery {
	return NewCampaignLeadClient(_m.config).QueryCampaign(_m)
}

// QueryLead queries the "lead" edge of the CampaignLead entity.
func (_m *CampaignLead) QueryLead() *LeadQuery {
	return NewCampaignLeadClient(_m.config).QueryLead(_m)
}

// QueryAccount queries the "account" edge of the CampaignLead entity.
func (_m *CampaignLead) QueryAccount() *EmailAccountQuery {
	return NewCampaignLeadClient(_m.config).QueryAccount(_m)
}

// QueryReplies queries the "replies" edge of the CampaignLead entity.
func (_m *CampaignLead) QueryReplies() *ReplyQuery {
	return NewCampaignLeadClient(_m.config).QueryReplies(_m)
}

// Update returns a builder for updating this CampaignLead.
// Note that you need to call CampaignLead.Unwrap() before calling this method if this CampaignLead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CampaignLead) Update() *CampaignLeadUpdateOne {
	return NewCampaignLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CampaignLead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CampaignLead) Unwrap() *CampaignLead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CampaignLead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CampaignLead) String() string {
	var builder strings.Builder
	builder.WriteString("CampaignLead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignID))
	builder.WriteString(", ")
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.OpenedAt; v != nil {
		builder.WriteString("opened_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RepliedAt; v != nil {
		builder.WriteString("replied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CampaignLeads is a parsable slice of CampaignLead.
type CampaignLeads []*CampaignLead
