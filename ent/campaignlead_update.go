// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/leadreach/ent/campaign"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/ent/lead"
	"github.com/jordanlanch/leadreach/ent/predicate"
	"github.com/jordanlanch/leadreach/ent/reply"
)

// CampaignLeadUpdate is the builder for updating CampaignLead entities.
type CampaignLeadUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignLeadMutation
}

// Where appends a list predicates to the CampaignLeadUpdate builder.
func (_u *CampaignLeadUpdate) Where(ps ...predicate.CampaignLead) *CampaignLeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *CampaignLeadUpdate) SetCampaignID(v int) *CampaignLeadUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableCampaignID(v *int) *CampaignLeadUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *CampaignLeadUpdate) SetLeadID(v int) *CampaignLeadUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableLeadID(v *int) *CampaignLeadUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *CampaignLeadUpdate) SetAccountID(v int) *CampaignLeadUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableAccountID(v *int) *CampaignLeadUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignLeadUpdate) SetStatus(v campaignlead.Status) *CampaignLeadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableStatus(v *campaignlead.Status) *CampaignLeadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *CampaignLeadUpdate) SetThreadID(v string) *CampaignLeadUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableThreadID(v *string) *CampaignLeadUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *CampaignLeadUpdate) ClearThreadID() *CampaignLeadUpdate {
	_u.mutation.ClearThreadID()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *CampaignLeadUpdate) SetMessageID(v string) *CampaignLeadUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableMessageID(v *string) *CampaignLeadUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *CampaignLeadUpdate) ClearMessageID() *CampaignLeadUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *CampaignLeadUpdate) SetSentAt(v time.Time) *CampaignLeadUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableSentAt(v *time.Time) *CampaignLeadUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *CampaignLeadUpdate) ClearSentAt() *CampaignLeadUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *CampaignLeadUpdate) SetOpenedAt(v time.Time) *CampaignLeadUpdate {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableOpenedAt(v *time.Time) *CampaignLeadUpdate {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *CampaignLeadUpdate) ClearOpenedAt() *CampaignLeadUpdate {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetRepliedAt sets the "replied_at" field.
func (_u *CampaignLeadUpdate) SetRepliedAt(v time.Time) *CampaignLeadUpdate {
	_u.mutation.SetRepliedAt(v)
	return _u
}

// SetNillableRepliedAt sets the "replied_at" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableRepliedAt(v *time.Time) *CampaignLeadUpdate {
	if v != nil {
		_u.SetRepliedAt(*v)
	}
	return _u
}

// ClearRepliedAt clears the value of the "replied_at" field.
func (_u *CampaignLeadUpdate) ClearRepliedAt() *CampaignLeadUpdate {
	_u.mutation.ClearRepliedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CampaignLeadUpdate) SetErrorMessage(v string) *CampaignLeadUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CampaignLeadUpdate) SetNillableErrorMessage(v *string) *CampaignLeadUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CampaignLeadUpdate) ClearErrorMessage() *CampaignLeadUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignLeadUpdate) SetUpdatedAt(v time.Time) *CampaignLeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *CampaignLeadUpdate) SetCampaign(v *Campaign) *CampaignLeadUpdate {
	return _u.SetCampaignID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *CampaignLeadUpdate) SetLead(v *Lead) *CampaignLeadUpdate {
	return _u.SetLeadID(v.ID)
}

// SetAccount sets the "account" edge to the EmailAccount entity.
func (_u *CampaignLeadUpdate) SetAccount(v *EmailAccount) *CampaignLeadUpdate {
	return _u.SetAccountID(v.ID)
}

// AddReplyIDs adds the "replies" edge to the Reply entity by IDs.
func (_u *CampaignLeadUpdate) AddReplyIDs(ids ...int) *CampaignLeadUpdate {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the Reply entity.
func (_u *CampaignLeadUpdate) AddReplies(v ...*Reply) *CampaignLeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the CampaignLeadMutation object of the builder.
func (_u *CampaignLeadUpdate) Mutation() *CampaignLeadMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *CampaignLeadUpdate) ClearCampaign() *CampaignLeadUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *CampaignLeadUpdate) ClearLead() *CampaignLeadUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearAccount clears the "account" edge to the EmailAccount entity.
func (_u *CampaignLeadUpdate) ClearAccount() *CampaignLeadUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// ClearReplies clears all "replies" edges to the Reply entity.
func (_u *CampaignLeadUpdate) ClearReplies() *CampaignLeadUpdate {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to Reply entities by IDs.
func (_u *CampaignLeadUpdate) RemoveReplyIDs(ids ...int) *CampaignLeadUpdate {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to Reply entities.
func (_u *CampaignLeadUpdate) RemoveReplies(v ...*Reply) *CampaignLeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignLeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignLeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignLeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignLeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignLeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaignlead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignLeadUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaignlead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CampaignLead.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignLead.campaign"`)
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignLead.lead"`)
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignLead.account"`)
	}
	return nil
}

func (_u *CampaignLeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaignlead.Table, campaignlead.Columns, sqlgraph.NewFieldSpec(campaignlead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaignlead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(campaignlead.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(campaignlead.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(campaignlead.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(campaignlead.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(campaignlead.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(campaignlead.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(campaignlead.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(campaignlead.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepliedAt(); ok {
		_spec.SetField(campaignlead.FieldRepliedAt, field.TypeTime, value)
	}
	if _u.mutation.RepliedAtCleared() {
		_spec.ClearField(campaignlead.FieldRepliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(campaignlead.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(campaignlead.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaignlead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.CampaignTable,
			Columns: []string{campaignlead.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.CampaignTable,
			Columns: []string{campaignlead.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.LeadTable,
			Columns: []string{campaignlead.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.LeadTable,
			Columns: []string{campaignlead.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.AccountTable,
			Columns: []string{campaignlead.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailaccount.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.AccountTable,
			Columns: []string{campaignlead.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailaccount.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaignlead.RepliesTable,
			Columns: []string{campaignlead.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaignlead.RepliesTable,
			Columns: []string{campaignlead.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaignlead.RepliesTable,
			Columns: []string{campaignlead.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaignlead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignLeadUpdateOne is the builder for updating a single CampaignLead entity.
type CampaignLeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignLeadMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *CampaignLeadUpdateOne) SetCampaignID(v int) *CampaignLeadUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableCampaignID(v *int) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *CampaignLeadUpdateOne) SetLeadID(v int) *CampaignLeadUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableLeadID(v *int) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *CampaignLeadUpdateOne) SetAccountID(v int) *CampaignLeadUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableAccountID(v *int) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignLeadUpdateOne) SetStatus(v campaignlead.Status) *CampaignLeadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableStatus(v *campaignlead.Status) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *CampaignLeadUpdateOne) SetThreadID(v string) *CampaignLeadUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableThreadID(v *string) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *CampaignLeadUpdateOne) ClearThreadID() *CampaignLeadUpdateOne {
	_u.mutation.ClearThreadID()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *CampaignLeadUpdateOne) SetMessageID(v string) *CampaignLeadUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableMessageID(v *string) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *CampaignLeadUpdateOne) ClearMessageID() *CampaignLeadUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *CampaignLeadUpdateOne) SetSentAt(v time.Time) *CampaignLeadUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableSentAt(v *time.Time) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *CampaignLeadUpdateOne) ClearSentAt() *CampaignLeadUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *CampaignLeadUpdateOne) SetOpenedAt(v time.Time) *CampaignLeadUpdateOne {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableOpenedAt(v *time.Time) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *CampaignLeadUpdateOne) ClearOpenedAt() *CampaignLeadUpdateOne {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetRepliedAt sets the "replied_at" field.
func (_u *CampaignLeadUpdateOne) SetRepliedAt(v time.Time) *CampaignLeadUpdateOne {
	_u.mutation.SetRepliedAt(v)
	return _u
}

// SetNillableRepliedAt sets the "replied_at" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableRepliedAt(v *time.Time) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetRepliedAt(*v)
	}
	return _u
}

// ClearRepliedAt clears the value of the "replied_at" field.
func (_u *CampaignLeadUpdateOne) ClearRepliedAt() *CampaignLeadUpdateOne {
	_u.mutation.ClearRepliedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CampaignLeadUpdateOne) SetErrorMessage(v string) *CampaignLeadUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CampaignLeadUpdateOne) SetNillableErrorMessage(v *string) *CampaignLeadUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CampaignLeadUpdateOne) ClearErrorMessage() *CampaignLeadUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignLeadUpdateOne) SetUpdatedAt(v time.Time) *CampaignLeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *CampaignLeadUpdateOne) SetCampaign(v *Campaign) *CampaignLeadUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *CampaignLeadUpdateOne) SetLead(v *Lead) *CampaignLeadUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetAccount sets the "account" edge to the EmailAccount entity.
func (_u *CampaignLeadUpdateOne) SetAccount(v *EmailAccount) *CampaignLeadUpdateOne {
	return _u.SetAccountID(v.ID)
}

// AddReplyIDs adds the "replies" edge to the Reply entity by IDs.
func (_u *CampaignLeadUpdateOne) AddReplyIDs(ids ...int) *CampaignLeadUpdateOne {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the Reply entity.
func (_u *CampaignLeadUpdateOne) AddReplies(v ...*Reply) *CampaignLeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the CampaignLeadMutation object of the builder.
func (_u *CampaignLeadUpdateOne) Mutation() *CampaignLeadMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *CampaignLeadUpdateOne) ClearCampaign() *CampaignLeadUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *CampaignLeadUpdateOne) ClearLead() *CampaignLeadUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearAccount clears the "account" edge to the EmailAccount entity.
func (_u *CampaignLeadUpdateOne) ClearAccount() *CampaignLeadUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// ClearReplies clears all "replies" edges to the Reply entity.
func (_u *CampaignLeadUpdateOne) ClearReplies() *CampaignLeadUpdateOne {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to Reply entities by IDs.
func (_u *CampaignLeadUpdateOne) RemoveReplyIDs(ids ...int) *CampaignLeadUpdateOne {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to Reply entities.
func (_u *CampaignLeadUpdateOne) RemoveReplies(v ...*Reply) *CampaignLeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Where appends a list predicates to the CampaignLeadUpdate builder.
func (_u *CampaignLeadUpdateOne) Where(ps ...predicate.CampaignLead) *CampaignLeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignLeadUpdateOne) Select(field string, fields ...string) *CampaignLeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CampaignLead entity.
func (_u *CampaignLeadUpdateOne) Save(ctx context.Context) (*CampaignLead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignLeadUpdateOne) SaveX(ctx context.Context) *CampaignLead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignLeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignLeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignLeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaignlead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignLeadUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaignlead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CampaignLead.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignLead.campaign"`)
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignLead.lead"`)
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignLead.account"`)
	}
	return nil
}

func (_u *CampaignLeadUpdateOne) sqlSave(ctx context.Context) (_node *CampaignLead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaignlead.Table, campaignlead.Columns, sqlgraph.NewFieldSpec(campaignlead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CampaignLead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaignlead.FieldID)
		for _, f := range fields {
			if !campaignlead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaignlead.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaignlead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(campaignlead.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(campaignlead.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(campaignlead.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(campaignlead.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(campaignlead.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(campaignlead.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(campaignlead.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(campaignlead.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepliedAt(); ok {
		_spec.SetField(campaignlead.FieldRepliedAt, field.TypeTime, value)
	}
	if _u.mutation.RepliedAtCleared() {
		_spec.ClearField(campaignlead.FieldRepliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(campaignlead.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(campaignlead.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaignlead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.CampaignTable,
			Columns: []string{campaignlead.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.CampaignTable,
			Columns: []string{campaignlead.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.LeadTable,
			Columns: []string{campaignlead.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.LeadTable,
			Columns: []string{campaignlead.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.AccountTable,
			Columns: []string{campaignlead.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailaccount.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignlead.AccountTable,
			Columns: []string{campaignlead.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailaccount.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaignlead.RepliesTable,
			Columns: []string{campaignlead.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaignlead.RepliesTable,
			Columns: []string{campaignlead.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaignlead.RepliesTable,
			Columns: []string{campaignlead.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CampaignLead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaignlead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
