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
	"github.com/jordanlanch/leadreach/ent/user"
)

// EmailAccountCreate is the builder for creating a EmailAccount entity.
type EmailAccountCreate struct {
	config
	mutation *EmailAccountMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *EmailAccountCreate) SetUserID(v int) *EmailAccountCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *EmailAccountCreate) SetEmail(v string) *EmailAccountCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *EmailAccountCreate) SetDisplayName(v string) *EmailAccountCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *EmailAccountCreate) SetNillableDisplayName(v *string) *EmailAccountCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *EmailAccountCreate) SetProvider(v emailaccount.Provider) *EmailAccountCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetAccessToken sets the "access_token" field.
func (_c *EmailAccountCreate) SetAccessToken(v string) *EmailAccountCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetRefreshToken sets the "refresh_token" field.
func (_c *EmailAccountCreate) SetRefreshToken(v string) *EmailAccountCreate {
	_c.mutation.SetRefreshToken(v)
	return _c
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_c *EmailAccountCreate) SetTokenExpiresAt(v time.Time) *EmailAccountCreate {
	_c.mutation.SetTokenExpiresAt(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *EmailAccountCreate) SetActive(v bool) *EmailAccountCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *EmailAccountCreate) SetNillableActive(v *bool) *EmailAccountCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailAccountCreate) SetCreatedAt(v time.Time) *EmailAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailAccountCreate) SetNillableCreatedAt(v *time.Time) *EmailAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmailAccountCreate) SetUpdatedAt(v time.Time) *EmailAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmailAccountCreate) SetNillableUpdatedAt(v *time.Time) *EmailAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *EmailAccountCreate) SetUser(v *User) *EmailAccountCreate {
	return _c.SetUserID(v.ID)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_c *EmailAccountCreate) AddCampaignIDs(ids ...int) *EmailAccountCreate {
	_c.mutation.AddCampaignIDs(ids...)
	return _c
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_c *EmailAccountCreate) AddCampaigns(v ...*Campaign) *EmailAccountCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCampaignIDs(ids...)
}

// AddCampaignLeadIDs adds the "campaign_leads" edge to the CampaignLead entity by IDs.
func (_c *EmailAccountCreate) AddCampaignLeadIDs(ids ...int) *EmailAccountCreate {
	_c.mutation.AddCampaignLeadIDs(ids...)
	return _c
}

// AddCampaignLeads adds the "campaign_leads" edges to the CampaignLead entity.
func (_c *EmailAccountCreate) AddCampaignLeads(v ...*CampaignLead) *EmailAccountCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCampaignLeadIDs(ids...)
}

// Mutation returns the EmailAccountMutation object of the builder.
func (_c *EmailAccountCreate) Mutation() *EmailAccountMutation {
	return _c.mutation
}

// Save creates the EmailAccount in the database.
func (_c *EmailAccountCreate) Save(ctx context.Context) (*EmailAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailAccountCreate) SaveX(ctx context.Context) *EmailAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailAccountCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := emailaccount.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emailaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := emailaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailAccountCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EmailAccount.user_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "EmailAccount.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := emailaccount.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "EmailAccount.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := emailaccount.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccessToken(); !ok {
		return &ValidationError{Name: "access_token", err: errors.New(`ent: missing required field "EmailAccount.access_token"`)}
	}
	if v, ok := _c.mutation.AccessToken(); ok {
		if err := emailaccount.AccessTokenValidator(v); err != nil {
			return &ValidationError{Name: "access_token", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.access_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RefreshToken(); !ok {
		return &ValidationError{Name: "refresh_token", err: errors.New(`ent: missing required field "EmailAccount.refresh_token"`)}
	}
	if v, ok := _c.mutation.RefreshToken(); ok {
		if err := emailaccount.RefreshTokenValidator(v); err != nil {
			return &ValidationError{Name: "refresh_token", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.refresh_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokenExpiresAt(); !ok {
		return &ValidationError{Name: "token_expires_at", err: errors.New(`ent: missing required field "EmailAccount.token_expires_at"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "EmailAccount.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EmailAccount.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "EmailAccount.user"`)}
	}
	return nil
}

func (_c *EmailAccountCreate) sqlSave(ctx context.Context) (*EmailAccount, error) {
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

func (_c *EmailAccountCreate) createSpec() (*EmailAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailaccount.Table, sqlgraph.NewFieldSpec(emailaccount.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(emailaccount.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(emailaccount.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(emailaccount.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(emailaccount.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.RefreshToken(); ok {
		_spec.SetField(emailaccount.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = value
	}
	if value, ok := _c.mutation.TokenExpiresAt(); ok {
		_spec.SetField(emailaccount.FieldTokenExpiresAt, field.TypeTime, value)
		_node.TokenExpiresAt = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(emailaccount.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emailaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emailaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emailaccount.UserTable,
			Columns: []string{emailaccount.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   emailaccount.CampaignsTable,
			Columns: emailaccount.CampaignsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CampaignLeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailaccount.CampaignLeadsTable,
			Columns: []string{emailaccount.CampaignLeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignlead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EmailAccountCreateBulk is the builder for creating many EmailAccount entities in bulk.
type EmailAccountCreateBulk struct {
	config
	err      error
	builders []*EmailAccountCreate
}

// Save creates the EmailAccount entities in the database.
func (_c *EmailAccountCreateBulk) Save(ctx context.Context) ([]*EmailAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailAccountMutation)
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
func (_c *EmailAccountCreateBulk) SaveX(ctx context.Context) []*EmailAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
