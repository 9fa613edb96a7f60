// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/leadreach/ent/campaign"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/ent/lead"
	"github.com/jordanlanch/leadreach/ent/reply"
)

// CampaignLeadCreate is the builder for creating a CampaignLead entity.
type CampaignLeadCreate struct {
	config
	mutation *CampaignLeadMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *CampaignLeadCreate) SetCampaignID(v int) *CampaignLeadCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *CampaignLeadCreate) SetLeadID(v int) *CampaignLeadCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *CampaignLeadCreate) SetAccountID(v int) *CampaignLeadCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignLeadCreate) SetStatus(v campaignlead.Status) *CampaignLeadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableStatus(v *campaignlead.Status) *CampaignLeadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *CampaignLeadCreate) SetThreadID(v string) *CampaignLeadCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableThreadID(v *string) *CampaignLeadCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *CampaignLeadCreate) SetMessageID(v string) *CampaignLeadCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableMessageID(v *string) *CampaignLeadCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *CampaignLeadCreate) SetSentAt(v time.Time) *CampaignLeadCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableSentAt(v *time.Time) *CampaignLeadCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetOpenedAt sets the "opened_at" field.
func (_c *CampaignLeadCreate) SetOpenedAt(v time.Time) *CampaignLeadCreate {
	_c.mutation.SetOpenedAt(v)
	return _c
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableOpenedAt(v *time.Time) *CampaignLeadCreate {
	if v != nil {
		_c.SetOpenedAt(*v)
	}
	return _c
}

// SetRepliedAt sets the "replied_at" field.
func (_c *CampaignLeadCreate) SetRepliedAt(v time.Time) *CampaignLeadCreate {
	_c.mutation.SetRepliedAt(v)
	return _c
}

// SetNillableRepliedAt sets the "replied_at" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableRepliedAt(v *time.Time) *CampaignLeadCreate {
	if v != nil {
		_c.SetRepliedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CampaignLeadCreate) SetErrorMessage(v string) *CampaignLeadCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableErrorMessage(v *string) *CampaignLeadCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignLeadCreate) SetCreatedAt(v time.Time) *CampaignLeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableCreatedAt(v *time.Time) *CampaignLeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignLeadCreate) SetUpdatedAt(v time.Time) *CampaignLeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignLeadCreate) SetNillableUpdatedAt(v *time.Time) *CampaignLeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *CampaignLeadCreate) SetCampaign(v *Campaign) *CampaignLeadCreate {
	return _c.SetCampaignID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *CampaignLeadCreate) SetLead(v *Lead) *CampaignLeadCreate {
	return _c.SetLeadID(v.ID)
}

// SetAccount sets the "account" edge to the EmailAccount entity.
func (_c *CampaignLeadCreate) SetAccount(v *EmailAccount) *CampaignLeadCreate {
	return _c.SetAccountID(v.ID)
}

// AddReplyIDs adds the "replies" edge to the Reply entity by IDs.
func (_c *CampaignLeadCreate) AddReplyIDs(ids ...int) *CampaignLeadCreate {
	_c.mutation.AddReplyIDs(ids...)
	return _c
}

// AddReplies adds the "replies" edges to the Reply entity.
func (_c *CampaignLeadCreate) AddReplies(v ...*Reply) *CampaignLeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReplyIDs(ids...)
}

// Mutation returns the CampaignLeadMutation object of the builder.
func (_c *CampaignLeadCreate) Mutation() *CampaignLeadMutation {
	return _c.mutation
}

// Save creates the CampaignLead in the database.
func (_c *CampaignLeadCreate) Save(ctx context.Context) (*CampaignLead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignLeadCreate) SaveX(ctx context.Context) *CampaignLead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignLeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignLeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignLeadCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaignlead.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaignlead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaignlead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignLeadCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "CampaignLead.campaign_id"`)}
	}
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "CampaignLead.lead_id"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "CampaignLead.account_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CampaignLead.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaignlead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CampaignLead.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CampaignLead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CampaignLead.updated_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "CampaignLead.campaign"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "CampaignLead.lead"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "CampaignLead.account"`)}
	}
	return nil
}

func (_c *CampaignLeadCreate) sqlSave(ctx context.Context) (*CampaignLead, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignLeadCreate) createSpec() (*CampaignLead, *sqlgraph.CreateSpec) {
	var (
		_node = &CampaignLead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaignlead.Table, sqlgraph.NewFieldSpec(campaignlead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaignlead.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(campaignlead.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(campaignlead.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(campaignlead.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.OpenedAt(); ok {
		_spec.SetField(campaignlead.FieldOpenedAt, field.TypeTime, value)
		_node.OpenedAt = &value
	}
	if value, ok := _c.mutation.RepliedAt(); ok {
		_spec.SetField(campaignlead.FieldRepliedAt, field.TypeTime, value)
		_node.RepliedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(campaignlead.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaignlead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaignlead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RepliesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CampaignLeadCreateBulk is the builder for creating many CampaignLead entities in bulk.
type CampaignLeadCreateBulk struct {
	config
	err      error
	builders []*CampaignLeadCreate
}

// Save creates the CampaignLead entities in the database.
func (_c *CampaignLeadCreateBulk) Save(ctx context.Context) ([]*CampaignLead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CampaignLead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignLeadMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CampaignLeadCreateBulk) SaveX(ctx context.Context) []*CampaignLead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignLeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignLeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
