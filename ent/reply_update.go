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
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/lead"
	"github.com/jordanlanch/leadreach/ent/predicate"
	"github.com/jordanlanch/leadreach/ent/reply"
)

// ReplyUpdate is the builder for updating Reply entities.
type ReplyUpdate struct {
	config
	hooks    []Hook
	mutation *ReplyMutation
}

// Where appends a list predicates to the ReplyUpdate builder.
func (_u *ReplyUpdate) Where(ps ...predicate.Reply) *ReplyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ReplyUpdate) SetLeadID(v int) *ReplyUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableLeadID(v *int) *ReplyUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetCampaignLeadID sets the "campaign_lead_id" field.
func (_u *ReplyUpdate) SetCampaignLeadID(v int) *ReplyUpdate {
	_u.mutation.SetCampaignLeadID(v)
	return _u
}

// SetNillableCampaignLeadID sets the "campaign_lead_id" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableCampaignLeadID(v *int) *ReplyUpdate {
	if v != nil {
		_u.SetCampaignLeadID(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *ReplyUpdate) SetThreadID(v string) *ReplyUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableThreadID(v *string) *ReplyUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ReplyUpdate) SetMessageID(v string) *ReplyUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableMessageID(v *string) *ReplyUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ReplyUpdate) SetSubject(v string) *ReplyUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableSubject(v *string) *ReplyUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ReplyUpdate) ClearSubject() *ReplyUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *ReplyUpdate) SetSnippet(v string) *ReplyUpdate {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableSnippet(v *string) *ReplyUpdate {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// ClearSnippet clears the value of the "snippet" field.
func (_u *ReplyUpdate) ClearSnippet() *ReplyUpdate {
	_u.mutation.ClearSnippet()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *ReplyUpdate) SetReceivedAt(v time.Time) *ReplyUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *ReplyUpdate) SetNillableReceivedAt(v *time.Time) *ReplyUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *ReplyUpdate) SetLead(v *Lead) *ReplyUpdate {
	return _u.SetLeadID(v.ID)
}

// SetCampaignLead sets the "campaign_lead" edge to the CampaignLead entity.
func (_u *ReplyUpdate) SetCampaignLead(v *CampaignLead) *ReplyUpdate {
	return _u.SetCampaignLeadID(v.ID)
}

// Mutation returns the ReplyMutation object of the builder.
func (_u *ReplyUpdate) Mutation() *ReplyMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *ReplyUpdate) ClearLead() *ReplyUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearCampaignLead clears the "campaign_lead" edge to the CampaignLead entity.
func (_u *ReplyUpdate) ClearCampaignLead() *ReplyUpdate {
	_u.mutation.ClearCampaignLead()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReplyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReplyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReplyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReplyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReplyUpdate) check() error {
	if v, ok := _u.mutation.ThreadID(); ok {
		if err := reply.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "Reply.thread_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageID(); ok {
		if err := reply.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "Reply.message_id": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reply.lead"`)
	}
	if _u.mutation.CampaignLeadCleared() && len(_u.mutation.CampaignLeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reply.campaign_lead"`)
	}
	return nil
}

func (_u *ReplyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reply.Table, reply.Columns, sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(reply.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(reply.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(reply.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(reply.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(reply.FieldSnippet, field.TypeString, value)
	}
	if _u.mutation.SnippetCleared() {
		_spec.ClearField(reply.FieldSnippet, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(reply.FieldReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.LeadTable,
			Columns: []string{reply.LeadColumn},
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
			Table:   reply.LeadTable,
			Columns: []string{reply.LeadColumn},
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
	if _u.mutation.CampaignLeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.CampaignLeadTable,
			Columns: []string{reply.CampaignLeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignlead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignLeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.CampaignLeadTable,
			Columns: []string{reply.CampaignLeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignlead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReplyUpdateOne is the builder for updating a single Reply entity.
type ReplyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReplyMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *ReplyUpdateOne) SetLeadID(v int) *ReplyUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableLeadID(v *int) *ReplyUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetCampaignLeadID sets the "campaign_lead_id" field.
func (_u *ReplyUpdateOne) SetCampaignLeadID(v int) *ReplyUpdateOne {
	_u.mutation.SetCampaignLeadID(v)
	return _u
}

// SetNillableCampaignLeadID sets the "campaign_lead_id" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableCampaignLeadID(v *int) *ReplyUpdateOne {
	if v != nil {
		_u.SetCampaignLeadID(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *ReplyUpdateOne) SetThreadID(v string) *ReplyUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableThreadID(v *string) *ReplyUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ReplyUpdateOne) SetMessageID(v string) *ReplyUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableMessageID(v *string) *ReplyUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ReplyUpdateOne) SetSubject(v string) *ReplyUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableSubject(v *string) *ReplyUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ReplyUpdateOne) ClearSubject() *ReplyUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *ReplyUpdateOne) SetSnippet(v string) *ReplyUpdateOne {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableSnippet(v *string) *ReplyUpdateOne {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// ClearSnippet clears the value of the "snippet" field.
func (_u *ReplyUpdateOne) ClearSnippet() *ReplyUpdateOne {
	_u.mutation.ClearSnippet()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *ReplyUpdateOne) SetReceivedAt(v time.Time) *ReplyUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *ReplyUpdateOne) SetNillableReceivedAt(v *time.Time) *ReplyUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *ReplyUpdateOne) SetLead(v *Lead) *ReplyUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetCampaignLead sets the "campaign_lead" edge to the CampaignLead entity.
func (_u *ReplyUpdateOne) SetCampaignLead(v *CampaignLead) *ReplyUpdateOne {
	return _u.SetCampaignLeadID(v.ID)
}

// Mutation returns the ReplyMutation object of the builder.
func (_u *ReplyUpdateOne) Mutation() *ReplyMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *ReplyUpdateOne) ClearLead() *ReplyUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearCampaignLead clears the "campaign_lead" edge to the CampaignLead entity.
func (_u *ReplyUpdateOne) ClearCampaignLead() *ReplyUpdateOne {
	_u.mutation.ClearCampaignLead()
	return _u
}

// Where appends a list predicates to the ReplyUpdate builder.
func (_u *ReplyUpdateOne) Where(ps ...predicate.Reply) *ReplyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReplyUpdateOne) Select(field string, fields ...string) *ReplyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reply entity.
func (_u *ReplyUpdateOne) Save(ctx context.Context) (*Reply, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReplyUpdateOne) SaveX(ctx context.Context) *Reply {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReplyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReplyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReplyUpdateOne) check() error {
	if v, ok := _u.mutation.ThreadID(); ok {
		if err := reply.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "Reply.thread_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageID(); ok {
		if err := reply.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "Reply.message_id": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reply.lead"`)
	}
	if _u.mutation.CampaignLeadCleared() && len(_u.mutation.CampaignLeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reply.campaign_lead"`)
	}
	return nil
}

func (_u *ReplyUpdateOne) sqlSave(ctx context.Context) (_node *Reply, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reply.Table, reply.Columns, sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reply.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reply.FieldID)
		for _, f := range fields {
			if !reply.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reply.FieldID {
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
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(reply.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(reply.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(reply.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(reply.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(reply.FieldSnippet, field.TypeString, value)
	}
	if _u.mutation.SnippetCleared() {
		_spec.ClearField(reply.FieldSnippet, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(reply.FieldReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.LeadTable,
			Columns: []string{reply.LeadColumn},
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
			Table:   reply.LeadTable,
			Columns: []string{reply.LeadColumn},
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
	if _u.mutation.CampaignLeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.CampaignLeadTable,
			Columns: []string{reply.CampaignLeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignlead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignLeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reply.CampaignLeadTable,
			Columns: []string{reply.CampaignLeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignlead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Reply{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
