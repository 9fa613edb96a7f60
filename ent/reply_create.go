// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/lead"
	"github.com/jordanlanch/leadreach/ent/reply"
)

// ReplyCreate is the builder for creating a Reply entity.
type ReplyCreate struct {
	config
	mutation *ReplyMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *ReplyCreate) SetLeadID(v int) *ReplyCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetCampaignLeadID sets the "campaign_lead_id" field.
func (_c *ReplyCreate) SetCampaignLeadID(v int) *ReplyCreate {
	_c.mutation.SetCampaignLeadID(v)
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *ReplyCreate) SetThreadID(v string) *ReplyCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *ReplyCreate) SetMessageID(v string) *ReplyCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ReplyCreate) SetSubject(v string) *ReplyCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *ReplyCreate) SetNillableSubject(v *string) *ReplyCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetSnippet sets the "snippet" field.
func (_c *ReplyCreate) SetSnippet(v string) *ReplyCreate {
	_c.mutation.SetSnippet(v)
	return _c
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_c *ReplyCreate) SetNillableSnippet(v *string) *ReplyCreate {
	if v != nil {
		_c.SetSnippet(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *ReplyCreate) SetReceivedAt(v time.Time) *ReplyCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *ReplyCreate) SetNillableReceivedAt(v *time.Time) *ReplyCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReplyCreate) SetCreatedAt(v time.Time) *ReplyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReplyCreate) SetNillableCreatedAt(v *time.Time) *ReplyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *ReplyCreate) SetLead(v *Lead) *ReplyCreate {
	return _c.SetLeadID(v.ID)
}

// SetCampaignLead sets the "campaign_lead" edge to the CampaignLead entity.
func (_c *ReplyCreate) SetCampaignLead(v *CampaignLead) *ReplyCreate {
	return _c.SetCampaignLeadID(v.ID)
}

// Mutation returns the ReplyMutation object of the builder.
func (_c *ReplyCreate) Mutation() *ReplyMutation {
	return _c.mutation
}

// Save creates the Reply in the database.
func (_c *ReplyCreate) Save(ctx context.Context) (*Reply, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReplyCreate) SaveX(ctx context.Context) *Reply {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReplyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReplyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReplyCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := reply.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reply.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReplyCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "Reply.lead_id"`)}
	}
	if _, ok := _c.mutation.CampaignLeadID(); !ok {
		return &ValidationError{Name: "campaign_lead_id", err: errors.New(`ent: missing required field "Reply.campaign_lead_id"`)}
	}
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "Reply.thread_id"`)}
	}
	if v, ok := _c.mutation.ThreadID(); ok {
		if err := reply.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "Reply.thread_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "Reply.message_id"`)}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := reply.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "Reply.message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "Reply.received_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reply.created_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "Reply.lead"`)}
	}
	if len(_c.mutation.CampaignLeadIDs()) == 0 {
		return &ValidationError{Name: "campaign_lead", err: errors.New(`ent: missing required edge "Reply.campaign_lead"`)}
	}
	return nil
}

func (_c *ReplyCreate) sqlSave(ctx context.Context) (*Reply, error) {
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

func (_c *ReplyCreate) createSpec() (*Reply, *sqlgraph.CreateSpec) {
	var (
		_node = &Reply{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reply.Table, sqlgraph.NewFieldSpec(reply.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(reply.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(reply.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(reply.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Snippet(); ok {
		_spec.SetField(reply.FieldSnippet, field.TypeString, value)
		_node.Snippet = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(reply.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reply.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CampaignLeadIDs(); len(nodes) > 0 {
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
		_node.CampaignLeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReplyCreateBulk is the builder for creating many Reply entities in bulk.
type ReplyCreateBulk struct {
	config
	err      error
	builders []*ReplyCreate
}

// Save creates the Reply entities in the database.
func (_c *ReplyCreateBulk) Save(ctx context.Context) ([]*Reply, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reply, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReplyMutation)
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
func (_c *ReplyCreateBulk) SaveX(ctx context.Context) []*Reply {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReplyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReplyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
