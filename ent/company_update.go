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
	"github.com/jordanlanch/leadreach/ent/company"
	"github.com/jordanlanch/leadreach/ent/lead"
	"github.com/jordanlanch/leadreach/ent/predicate"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyMutation
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CompanyUpdate) SetDomain(v string) *CompanyUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableDomain(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdate) SetName(v string) *CompanyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableName(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLogoURL sets the "logo_url" field.
func (_u *CompanyUpdate) SetLogoURL(v string) *CompanyUpdate {
	_u.mutation.SetLogoURL(v)
	return _u
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableLogoURL(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetLogoURL(*v)
	}
	return _u
}

// ClearLogoURL clears the value of the "logo_url" field.
func (_u *CompanyUpdate) ClearLogoURL() *CompanyUpdate {
	_u.mutation.ClearLogoURL()
	return _u
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_u *CompanyUpdate) SetEnrichmentStatus(v company.EnrichmentStatus) *CompanyUpdate {
	_u.mutation.SetEnrichmentStatus(v)
	return _u
}

// SetNillableEnrichmentStatus sets the "enrichment_status" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableEnrichmentStatus(v *company.EnrichmentStatus) *CompanyUpdate {
	if v != nil {
		_u.SetEnrichmentStatus(*v)
	}
	return _u
}

// SetEnrichmentStartedAt sets the "enrichment_started_at" field.
func (_u *CompanyUpdate) SetEnrichmentStartedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetEnrichmentStartedAt(v)
	return _u
}

// SetNillableEnrichmentStartedAt sets the "enrichment_started_at" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableEnrichmentStartedAt(v *time.Time) *CompanyUpdate {
	if v != nil {
		_u.SetEnrichmentStartedAt(*v)
	}
	return _u
}

// ClearEnrichmentStartedAt clears the value of the "enrichment_started_at" field.
func (_u *CompanyUpdate) ClearEnrichmentStartedAt() *CompanyUpdate {
	_u.mutation.ClearEnrichmentStartedAt()
	return _u
}

// SetEnrichmentError sets the "enrichment_error" field.
func (_u *CompanyUpdate) SetEnrichmentError(v string) *CompanyUpdate {
	_u.mutation.SetEnrichmentError(v)
	return _u
}

// SetNillableEnrichmentError sets the "enrichment_error" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableEnrichmentError(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetEnrichmentError(*v)
	}
	return _u
}

// ClearEnrichmentError clears the value of the "enrichment_error" field.
func (_u *CompanyUpdate) ClearEnrichmentError() *CompanyUpdate {
	_u.mutation.ClearEnrichmentError()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *CompanyUpdate) SetEmailSubject(v string) *CompanyUpdate {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableEmailSubject(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *CompanyUpdate) ClearEmailSubject() *CompanyUpdate {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailTemplate sets the "email_template" field.
func (_u *CompanyUpdate) SetEmailTemplate(v string) *CompanyUpdate {
	_u.mutation.SetEmailTemplate(v)
	return _u
}

// SetNillableEmailTemplate sets the "email_template" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableEmailTemplate(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetEmailTemplate(*v)
	}
	return _u
}

// ClearEmailTemplate clears the value of the "email_template" field.
func (_u *CompanyUpdate) ClearEmailTemplate() *CompanyUpdate {
	_u.mutation.ClearEmailTemplate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdate) SetUpdatedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *CompanyUpdate) AddLeadIDs(ids ...int) *CompanyUpdate {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *CompanyUpdate) AddLeads(v ...*Lead) *CompanyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdate) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *CompanyUpdate) ClearLeads() *CompanyUpdate {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *CompanyUpdate) RemoveLeadIDs(ids ...int) *CompanyUpdate {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *CompanyUpdate) RemoveLeads(v ...*Lead) *CompanyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdate) check() error {
	if v, ok := _u.mutation.Domain(); ok {
		if err := company.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Company.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnrichmentStatus(); ok {
		if err := company.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "Company.enrichment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LogoURL(); ok {
		_spec.SetField(company.FieldLogoURL, field.TypeString, value)
	}
	if _u.mutation.LogoURLCleared() {
		_spec.ClearField(company.FieldLogoURL, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichmentStatus(); ok {
		_spec.SetField(company.FieldEnrichmentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EnrichmentStartedAt(); ok {
		_spec.SetField(company.FieldEnrichmentStartedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrichmentStartedAtCleared() {
		_spec.ClearField(company.FieldEnrichmentStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EnrichmentError(); ok {
		_spec.SetField(company.FieldEnrichmentError, field.TypeString, value)
	}
	if _u.mutation.EnrichmentErrorCleared() {
		_spec.ClearField(company.FieldEnrichmentError, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(company.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(company.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailTemplate(); ok {
		_spec.SetField(company.FieldEmailTemplate, field.TypeString, value)
	}
	if _u.mutation.EmailTemplateCleared() {
		_spec.ClearField(company.FieldEmailTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyMutation
}

// SetDomain sets the "domain" field.
func (_u *CompanyUpdateOne) SetDomain(v string) *CompanyUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableDomain(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdateOne) SetName(v string) *CompanyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableName(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLogoURL sets the "logo_url" field.
func (_u *CompanyUpdateOne) SetLogoURL(v string) *CompanyUpdateOne {
	_u.mutation.SetLogoURL(v)
	return _u
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableLogoURL(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetLogoURL(*v)
	}
	return _u
}

// ClearLogoURL clears the value of the "logo_url" field.
func (_u *CompanyUpdateOne) ClearLogoURL() *CompanyUpdateOne {
	_u.mutation.ClearLogoURL()
	return _u
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_u *CompanyUpdateOne) SetEnrichmentStatus(v company.EnrichmentStatus) *CompanyUpdateOne {
	_u.mutation.SetEnrichmentStatus(v)
	return _u
}

// SetNillableEnrichmentStatus sets the "enrichment_status" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableEnrichmentStatus(v *company.EnrichmentStatus) *CompanyUpdateOne {
	if v != nil {
		_u.SetEnrichmentStatus(*v)
	}
	return _u
}

// SetEnrichmentStartedAt sets the "enrichment_started_at" field.
func (_u *CompanyUpdateOne) SetEnrichmentStartedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetEnrichmentStartedAt(v)
	return _u
}

// SetNillableEnrichmentStartedAt sets the "enrichment_started_at" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableEnrichmentStartedAt(v *time.Time) *CompanyUpdateOne {
	if v != nil {
		_u.SetEnrichmentStartedAt(*v)
	}
	return _u
}

// ClearEnrichmentStartedAt clears the value of the "enrichment_started_at" field.
func (_u *CompanyUpdateOne) ClearEnrichmentStartedAt() *CompanyUpdateOne {
	_u.mutation.ClearEnrichmentStartedAt()
	return _u
}

// SetEnrichmentError sets the "enrichment_error" field.
func (_u *CompanyUpdateOne) SetEnrichmentError(v string) *CompanyUpdateOne {
	_u.mutation.SetEnrichmentError(v)
	return _u
}

// SetNillableEnrichmentError sets the "enrichment_error" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableEnrichmentError(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetEnrichmentError(*v)
	}
	return _u
}

// ClearEnrichmentError clears the value of the "enrichment_error" field.
func (_u *CompanyUpdateOne) ClearEnrichmentError() *CompanyUpdateOne {
	_u.mutation.ClearEnrichmentError()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *CompanyUpdateOne) SetEmailSubject(v string) *CompanyUpdateOne {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableEmailSubject(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *CompanyUpdateOne) ClearEmailSubject() *CompanyUpdateOne {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailTemplate sets the "email_template" field.
func (_u *CompanyUpdateOne) SetEmailTemplate(v string) *CompanyUpdateOne {
	_u.mutation.SetEmailTemplate(v)
	return _u
}

// SetNillableEmailTemplate sets the "email_template" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableEmailTemplate(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetEmailTemplate(*v)
	}
	return _u
}

// ClearEmailTemplate clears the value of the "email_template" field.
func (_u *CompanyUpdateOne) ClearEmailTemplate() *CompanyUpdateOne {
	_u.mutation.ClearEmailTemplate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdateOne) SetUpdatedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *CompanyUpdateOne) AddLeadIDs(ids ...int) *CompanyUpdateOne {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *CompanyUpdateOne) AddLeads(v ...*Lead) *CompanyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdateOne) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *CompanyUpdateOne) ClearLeads() *CompanyUpdateOne {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *CompanyUpdateOne) RemoveLeadIDs(ids ...int) *CompanyUpdateOne {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *CompanyUpdateOne) RemoveLeads(v ...*Lead) *CompanyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdateOne) Where(ps ...predicate.Company) *CompanyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyUpdateOne) Select(field string, fields ...string) *CompanyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Company entity.
func (_u *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdateOne) check() error {
	if v, ok := _u.mutation.Domain(); ok {
		if err := company.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Company.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnrichmentStatus(); ok {
		if err := company.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "Company.enrichment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdateOne) sqlSave(ctx context.Context) (_node *Company, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Company.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, company.FieldID)
		for _, f := range fields {
			if !company.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != company.FieldID {
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
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LogoURL(); ok {
		_spec.SetField(company.FieldLogoURL, field.TypeString, value)
	}
	if _u.mutation.LogoURLCleared() {
		_spec.ClearField(company.FieldLogoURL, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichmentStatus(); ok {
		_spec.SetField(company.FieldEnrichmentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EnrichmentStartedAt(); ok {
		_spec.SetField(company.FieldEnrichmentStartedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrichmentStartedAtCleared() {
		_spec.ClearField(company.FieldEnrichmentStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EnrichmentError(); ok {
		_spec.SetField(company.FieldEnrichmentError, field.TypeString, value)
	}
	if _u.mutation.EnrichmentErrorCleared() {
		_spec.ClearField(company.FieldEnrichmentError, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(company.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(company.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailTemplate(); ok {
		_spec.SetField(company.FieldEmailTemplate, field.TypeString, value)
	}
	if _u.mutation.EmailTemplateCleared() {
		_spec.ClearField(company.FieldEmailTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Company{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
