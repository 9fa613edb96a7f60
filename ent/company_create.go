// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/leadreach/ent/company"
	"github.com/jordanlanch/leadreach/ent/lead"
)

// CompanyCreate is the builder for creating a Company entity.
type CompanyCreate struct {
	config
	mutation *CompanyMutation
	hooks    []Hook
}

// SetDomain sets the "domain" field.
func (_c *CompanyCreate) SetDomain(v string) *CompanyCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CompanyCreate) SetName(v string) *CompanyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLogoURL sets the "logo_url" field.
func (_c *CompanyCreate) SetLogoURL(v string) *CompanyCreate {
	_c.mutation.SetLogoURL(v)
	return _c
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableLogoURL(v *string) *CompanyCreate {
	if v != nil {
		_c.SetLogoURL(*v)
	}
	return _c
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_c *CompanyCreate) SetEnrichmentStatus(v company.EnrichmentStatus) *CompanyCreate {
	_c.mutation.SetEnrichmentStatus(v)
	return _c
}

// SetNillableEnrichmentStatus sets the "enrichment_status" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableEnrichmentStatus(v *company.EnrichmentStatus) *CompanyCreate {
	if v != nil {
		_c.SetEnrichmentStatus(*v)
	}
	return _c
}

// SetEnrichmentStartedAt sets the "enrichment_started_at" field.
func (_c *CompanyCreate) SetEnrichmentStartedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetEnrichmentStartedAt(v)
	return _c
}

// SetNillableEnrichmentStartedAt sets the "enrichment_started_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableEnrichmentStartedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetEnrichmentStartedAt(*v)
	}
	return _c
}

// SetEnrichmentError sets the "enrichment_error" field.
func (_c *CompanyCreate) SetEnrichmentError(v string) *CompanyCreate {
	_c.mutation.SetEnrichmentError(v)
	return _c
}

// SetNillableEnrichmentError sets the "enrichment_error" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableEnrichmentError(v *string) *CompanyCreate {
	if v != nil {
		_c.SetEnrichmentError(*v)
	}
	return _c
}

// SetEmailSubject sets the "email_subject" field.
func (_c *CompanyCreate) SetEmailSubject(v string) *CompanyCreate {
	_c.mutation.SetEmailSubject(v)
	return _c
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableEmailSubject(v *string) *CompanyCreate {
	if v != nil {
		_c.SetEmailSubject(*v)
	}
	return _c
}

// SetEmailTemplate sets the "email_template" field.
func (_c *CompanyCreate) SetEmailTemplate(v string) *CompanyCreate {
	_c.mutation.SetEmailTemplate(v)
	return _c
}

// SetNillableEmailTemplate sets the "email_template" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableEmailTemplate(v *string) *CompanyCreate {
	if v != nil {
		_c.SetEmailTemplate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyCreate) SetCreatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableCreatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompanyCreate) SetUpdatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableUpdatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_c *CompanyCreate) AddLeadIDs(ids ...int) *CompanyCreate {
	_c.mutation.AddLeadIDs(ids...)
	return _c
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_c *CompanyCreate) AddLeads(v ...*Lead) *CompanyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLeadIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_c *CompanyCreate) Mutation() *CompanyMutation {
	return _c.mutation
}

// Save creates the Company in the database.
func (_c *CompanyCreate) Save(ctx context.Context) (*Company, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyCreate) SaveX(ctx context.Context) *Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyCreate) defaults() {
	if _, ok := _c.mutation.EnrichmentStatus(); !ok {
		v := company.DefaultEnrichmentStatus
		_c.mutation.SetEnrichmentStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := company.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := company.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyCreate) check() error {
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Company.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := company.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Company.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Company.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrichmentStatus(); !ok {
		return &ValidationError{Name: "enrichment_status", err: errors.New(`ent: missing required field "Company.enrichment_status"`)}
	}
	if v, ok := _c.mutation.EnrichmentStatus(); ok {
		if err := company.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "Company.enrichment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Company.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Company.updated_at"`)}
	}
	return nil
}

func (_c *CompanyCreate) sqlSave(ctx context.Context) (*Company, error) {
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

func (_c *CompanyCreate) createSpec() (*Company, *sqlgraph.CreateSpec) {
	var (
		_node = &Company{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(company.Table, sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.LogoURL(); ok {
		_spec.SetField(company.FieldLogoURL, field.TypeString, value)
		_node.LogoURL = value
	}
	if value, ok := _c.mutation.EnrichmentStatus(); ok {
		_spec.SetField(company.FieldEnrichmentStatus, field.TypeEnum, value)
		_node.EnrichmentStatus = value
	}
	if value, ok := _c.mutation.EnrichmentStartedAt(); ok {
		_spec.SetField(company.FieldEnrichmentStartedAt, field.TypeTime, value)
		_node.EnrichmentStartedAt = &value
	}
	if value, ok := _c.mutation.EnrichmentError(); ok {
		_spec.SetField(company.FieldEnrichmentError, field.TypeString, value)
		_node.EnrichmentError = value
	}
	if value, ok := _c.mutation.EmailSubject(); ok {
		_spec.SetField(company.FieldEmailSubject, field.TypeString, value)
		_node.EmailSubject = value
	}
	if value, ok := _c.mutation.EmailTemplate(); ok {
		_spec.SetField(company.FieldEmailTemplate, field.TypeString, value)
		_node.EmailTemplate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.LeadsTable,
			Columns: []string{company.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompanyCreateBulk is the builder for creating many Company entities in bulk.
type CompanyCreateBulk struct {
	config
	err      error
	builders []*CompanyCreate
}

// Save creates the Company entities in the database.
func (_c *CompanyCreateBulk) Save(ctx context.Context) ([]*Company, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Company, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyMutation)
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
func (_c *CompanyCreateBulk) SaveX(ctx context.Context) []*Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
