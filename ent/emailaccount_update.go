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
	"github.com/jordanlanch/leadreach/ent/predicate"
	"github.com/jordanlanch/leadreach/ent/user"
)

// EmailAccountUpdate is the builder for updating EmailAccount entities.
type EmailAccountUpdate struct {
	config
	hooks    []Hook
	mutation *EmailAccountMutation
}

// Where appends a list predicates to the EmailAccountUpdate builder.
func (_u *EmailAccountUpdate) Where(ps ...predicate.EmailAccount) *EmailAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EmailAccountUpdate) SetUserID(v int) *EmailAccountUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailAccountUpdate) SetNillableUserID(v *int) *EmailAccountUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *EmailAccountUpdate) SetEmail(v string) *EmailAccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EmailAccountUpdate) SetNillableEmail(v *string) *EmailAccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *EmailAccountUpdate) SetDisplayName(v string) *EmailAccountUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *EmailAccountUpdate) SetNillableDisplayName(v *string) *EmailAccountUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *EmailAccountUpdate) ClearDisplayName() *EmailAccountUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EmailAccountUpdate) SetProvider(v emailaccount.Provider) *EmailAccountUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EmailAccountUpdate) SetNillableProvider(v *emailaccount.Provider) *EmailAccountUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *EmailAccountUpdate) SetAccessToken(v string) *EmailAccountUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *EmailAccountUpdate) SetNillableAccessToken(v *string) *EmailAccountUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *EmailAccountUpdate) SetRefreshToken(v string) *EmailAccountUpdate {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *EmailAccountUpdate) SetNillableRefreshToken(v *string) *EmailAccountUpdate {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_u *EmailAccountUpdate) SetTokenExpiresAt(v time.Time) *EmailAccountUpdate {
	_u.mutation.SetTokenExpiresAt(v)
	return _u
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_u *EmailAccountUpdate) SetNillableTokenExpiresAt(v *time.Time) *EmailAccountUpdate {
	if v != nil {
		_u.SetTokenExpiresAt(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *EmailAccountUpdate) SetActive(v bool) *EmailAccountUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *EmailAccountUpdate) SetNillableActive(v *bool) *EmailAccountUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailAccountUpdate) SetUpdatedAt(v time.Time) *EmailAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *EmailAccountUpdate) SetUser(v *User) *EmailAccountUpdate {
	return _u.SetUserID(v.ID)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *EmailAccountUpdate) AddCampaignIDs(ids ...int) *EmailAccountUpdate {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *EmailAccountUpdate) AddCampaigns(v ...*Campaign) *EmailAccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// AddCampaignLeadIDs adds the "campaign_leads" edge to the CampaignLead entity by IDs.
func (_u *EmailAccountUpdate) AddCampaignLeadIDs(ids ...int) *EmailAccountUpdate {
	_u.mutation.AddCampaignLeadIDs(ids...)
	return _u
}

// AddCampaignLeads adds the "campaign_leads" edges to the CampaignLead entity.
func (_u *EmailAccountUpdate) AddCampaignLeads(v ...*CampaignLead) *EmailAccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignLeadIDs(ids...)
}

// Mutation returns the EmailAccountMutation object of the builder.
func (_u *EmailAccountUpdate) Mutation() *EmailAccountMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *EmailAccountUpdate) ClearUser() *EmailAccountUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *EmailAccountUpdate) ClearCampaigns() *EmailAccountUpdate {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *EmailAccountUpdate) RemoveCampaignIDs(ids ...int) *EmailAccountUpdate {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *EmailAccountUpdate) RemoveCampaigns(v ...*Campaign) *EmailAccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// ClearCampaignLeads clears all "campaign_leads" edges to the CampaignLead entity.
func (_u *EmailAccountUpdate) ClearCampaignLeads() *EmailAccountUpdate {
	_u.mutation.ClearCampaignLeads()
	return _u
}

// RemoveCampaignLeadIDs removes the "campaign_leads" edge to CampaignLead entities by IDs.
func (_u *EmailAccountUpdate) RemoveCampaignLeadIDs(ids ...int) *EmailAccountUpdate {
	_u.mutation.RemoveCampaignLeadIDs(ids...)
	return _u
}

// RemoveCampaignLeads removes "campaign_leads" edges to CampaignLead entities.
func (_u *EmailAccountUpdate) RemoveCampaignLeads(v ...*CampaignLead) *EmailAccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignLeadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailAccountUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := emailaccount.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := emailaccount.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessToken(); ok {
		if err := emailaccount.AccessTokenValidator(v); err != nil {
			return &ValidationError{Name: "access_token", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.access_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RefreshToken(); ok {
		if err := emailaccount.RefreshTokenValidator(v); err != nil {
			return &ValidationError{Name: "refresh_token", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.refresh_token": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailAccount.user"`)
	}
	return nil
}

func (_u *EmailAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailaccount.Table, emailaccount.Columns, sqlgraph.NewFieldSpec(emailaccount.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(emailaccount.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(emailaccount.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(emailaccount.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(emailaccount.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(emailaccount.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(emailaccount.FieldRefreshToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenExpiresAt(); ok {
		_spec.SetField(emailaccount.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(emailaccount.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignLeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignLeadsIDs(); len(nodes) > 0 && !_u.mutation.CampaignLeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignLeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailAccountUpdateOne is the builder for updating a single EmailAccount entity.
type EmailAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailAccountMutation
}

// SetUserID sets the "user_id" field.
func (_u *EmailAccountUpdateOne) SetUserID(v int) *EmailAccountUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailAccountUpdateOne) SetNillableUserID(v *int) *EmailAccountUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *EmailAccountUpdateOne) SetEmail(v string) *EmailAccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EmailAccountUpdateOne) SetNillableEmail(v *string) *EmailAccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *EmailAccountUpdateOne) SetDisplayName(v string) *EmailAccountUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *EmailAccountUpdateOne) SetNillableDisplayName(v *string) *EmailAccountUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *EmailAccountUpdateOne) ClearDisplayName() *EmailAccountUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EmailAccountUpdateOne) SetProvider(v emailaccount.Provider) *EmailAccountUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EmailAccountUpdateOne) SetNillableProvider(v *emailaccount.Provider) *EmailAccountUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *EmailAccountUpdateOne) SetAccessToken(v string) *EmailAccountUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *EmailAccountUpdateOne) SetNillableAccessToken(v *string) *EmailAccountUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *EmailAccountUpdateOne) SetRefreshToken(v string) *EmailAccountUpdateOne {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *EmailAccountUpdateOne) SetNillableRefreshToken(v *string) *EmailAccountUpdateOne {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_u *EmailAccountUpdateOne) SetTokenExpiresAt(v time.Time) *EmailAccountUpdateOne {
	_u.mutation.SetTokenExpiresAt(v)
	return _u
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_u *EmailAccountUpdateOne) SetNillableTokenExpiresAt(v *time.Time) *EmailAccountUpdateOne {
	if v != nil {
		_u.SetTokenExpiresAt(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *EmailAccountUpdateOne) SetActive(v bool) *EmailAccountUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *EmailAccountUpdateOne) SetNillableActive(v *bool) *EmailAccountUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailAccountUpdateOne) SetUpdatedAt(v time.Time) *EmailAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *EmailAccountUpdateOne) SetUser(v *User) *EmailAccountUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *EmailAccountUpdateOne) AddCampaignIDs(ids ...int) *EmailAccountUpdateOne {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *EmailAccountUpdateOne) AddCampaigns(v ...*Campaign) *EmailAccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// AddCampaignLeadIDs adds the "campaign_leads" edge to the CampaignLead entity by IDs.
func (_u *EmailAccountUpdateOne) AddCampaignLeadIDs(ids ...int) *EmailAccountUpdateOne {
	_u.mutation.AddCampaignLeadIDs(ids...)
	return _u
}

// AddCampaignLeads adds the "campaign_leads" edges to the CampaignLead entity.
func (_u *EmailAccountUpdateOne) AddCampaignLeads(v ...*CampaignLead) *EmailAccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignLeadIDs(ids...)
}

// Mutation returns the EmailAccountMutation object of the builder.
func (_u *EmailAccountUpdateOne) Mutation() *EmailAccountMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *EmailAccountUpdateOne) ClearUser() *EmailAccountUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *EmailAccountUpdateOne) ClearCampaigns() *EmailAccountUpdateOne {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *EmailAccountUpdateOne) RemoveCampaignIDs(ids ...int) *EmailAccountUpdateOne {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *EmailAccountUpdateOne) RemoveCampaigns(v ...*Campaign) *EmailAccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// ClearCampaignLeads clears all "campaign_leads" edges to the CampaignLead entity.
func (_u *EmailAccountUpdateOne) ClearCampaignLeads() *EmailAccountUpdateOne {
	_u.mutation.ClearCampaignLeads()
	return _u
}

// RemoveCampaignLeadIDs removes the "campaign_leads" edge to CampaignLead entities by IDs.
func (_u *EmailAccountUpdateOne) RemoveCampaignLeadIDs(ids ...int) *EmailAccountUpdateOne {
	_u.mutation.RemoveCampaignLeadIDs(ids...)
	return _u
}

// RemoveCampaignLeads removes "campaign_leads" edges to CampaignLead entities.
func (_u *EmailAccountUpdateOne) RemoveCampaignLeads(v ...*CampaignLead) *EmailAccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignLeadIDs(ids...)
}

// Where appends a list predicates to the EmailAccountUpdate builder.
func (_u *EmailAccountUpdateOne) Where(ps ...predicate.EmailAccount) *EmailAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailAccountUpdateOne) Select(field string, fields ...string) *EmailAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailAccount entity.
func (_u *EmailAccountUpdateOne) Save(ctx context.Context) (*EmailAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailAccountUpdateOne) SaveX(ctx context.Context) *EmailAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailAccountUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := emailaccount.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := emailaccount.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessToken(); ok {
		if err := emailaccount.AccessTokenValidator(v); err != nil {
			return &ValidationError{Name: "access_token", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.access_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RefreshToken(); ok {
		if err := emailaccount.RefreshTokenValidator(v); err != nil {
			return &ValidationError{Name: "refresh_token", err: fmt.Errorf(`ent: validator failed for field "EmailAccount.refresh_token": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailAccount.user"`)
	}
	return nil
}

func (_u *EmailAccountUpdateOne) sqlSave(ctx context.Context) (_node *EmailAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailaccount.Table, emailaccount.Columns, sqlgraph.NewFieldSpec(emailaccount.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailaccount.FieldID)
		for _, f := range fields {
			if !emailaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailaccount.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(emailaccount.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(emailaccount.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(emailaccount.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(emailaccount.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(emailaccount.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(emailaccount.FieldRefreshToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenExpiresAt(); ok {
		_spec.SetField(emailaccount.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(emailaccount.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignLeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignLeadsIDs(); len(nodes) > 0 && !_u.mutation.CampaignLeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignLeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EmailAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
