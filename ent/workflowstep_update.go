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
	"github.com/jordanlanch/leadreach/ent/predicate"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/ent/workflowstep"
)

// WorkflowStepUpdate is the builder for updating WorkflowStep entities.
type WorkflowStepUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdate) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *WorkflowStepUpdate) SetRunID(v int) *WorkflowStepUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableRunID(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowStepUpdate) SetName(v string) *WorkflowStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableName(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowStepUpdate) SetStatus(v workflowstep.Status) *WorkflowStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStatus(v *workflowstep.Status) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WorkflowStepUpdate) SetAttempts(v int) *WorkflowStepUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableAttempts(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WorkflowStepUpdate) AddAttempts(v int) *WorkflowStepUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkflowStepUpdate) SetResult(v []byte) *WorkflowStepUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkflowStepUpdate) ClearResult() *WorkflowStepUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowStepUpdate) SetCompletedAt(v time.Time) *WorkflowStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_u *WorkflowStepUpdate) SetRun(v *WorkflowRun) *WorkflowStepUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdate) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (_u *WorkflowStepUpdate) ClearRun() *WorkflowStepUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workflowstep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := workflowstep.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.attempts": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.run"`)
	}
	return nil
}

func (_u *WorkflowStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(workflowstep.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(workflowstep.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workflowstep.FieldResult, field.TypeBytes, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workflowstep.FieldResult, field.TypeBytes)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.RunTable,
			Columns: []string{workflowstep.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.RunTable,
			Columns: []string{workflowstep.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowStepUpdateOne is the builder for updating a single WorkflowStep entity.
type WorkflowStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// SetRunID sets the "run_id" field.
func (_u *WorkflowStepUpdateOne) SetRunID(v int) *WorkflowStepUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableRunID(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowStepUpdateOne) SetName(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableName(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowStepUpdateOne) SetStatus(v workflowstep.Status) *WorkflowStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStatus(v *workflowstep.Status) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WorkflowStepUpdateOne) SetAttempts(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableAttempts(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WorkflowStepUpdateOne) AddAttempts(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkflowStepUpdateOne) SetResult(v []byte) *WorkflowStepUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkflowStepUpdateOne) ClearResult() *WorkflowStepUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowStepUpdateOne) SetCompletedAt(v time.Time) *WorkflowStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_u *WorkflowStepUpdateOne) SetRun(v *WorkflowRun) *WorkflowStepUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdateOne) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (_u *WorkflowStepUpdateOne) ClearRun() *WorkflowStepUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdateOne) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowStepUpdateOne) Select(field string, fields ...string) *WorkflowStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowStep entity.
func (_u *WorkflowStepUpdateOne) Save(ctx context.Context) (*WorkflowStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) SaveX(ctx context.Context) *WorkflowStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workflowstep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := workflowstep.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.attempts": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.run"`)
	}
	return nil
}

func (_u *WorkflowStepUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowstep.FieldID)
		for _, f := range fields {
			if !workflowstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowstep.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(workflowstep.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(workflowstep.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workflowstep.FieldResult, field.TypeBytes, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workflowstep.FieldResult, field.TypeBytes)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.RunTable,
			Columns: []string{workflowstep.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.RunTable,
			Columns: []string{workflowstep.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
