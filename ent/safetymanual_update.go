// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexus-controls/plcforge/ent/predicate"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/safetymanual"
)

// SafetyManualUpdate is the builder for updating SafetyManual entities.
type SafetyManualUpdate struct {
	config
	hooks    []Hook
	mutation *SafetyManualMutation
}

// Where appends a list predicates to the SafetyManualUpdate builder.
func (_u *SafetyManualUpdate) Where(ps ...predicate.SafetyManual) *SafetyManualUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SafetyManualUpdate) SetProjectID(v int) *SafetyManualUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SafetyManualUpdate) SetNillableProjectID(v *int) *SafetyManualUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SafetyManualUpdate) SetFilename(v string) *SafetyManualUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SafetyManualUpdate) SetNillableFilename(v *string) *SafetyManualUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *SafetyManualUpdate) SetFilePath(v string) *SafetyManualUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *SafetyManualUpdate) SetNillableFilePath(v *string) *SafetyManualUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetIsEmbedded sets the "is_embedded" field.
func (_u *SafetyManualUpdate) SetIsEmbedded(v bool) *SafetyManualUpdate {
	_u.mutation.SetIsEmbedded(v)
	return _u
}

// SetNillableIsEmbedded sets the "is_embedded" field if the given value is not nil.
func (_u *SafetyManualUpdate) SetNillableIsEmbedded(v *bool) *SafetyManualUpdate {
	if v != nil {
		_u.SetIsEmbedded(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SafetyManualUpdate) SetProject(v *Project) *SafetyManualUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the SafetyManualMutation object of the builder.
func (_u *SafetyManualUpdate) Mutation() *SafetyManualMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SafetyManualUpdate) ClearProject() *SafetyManualUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SafetyManualUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SafetyManualUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SafetyManualUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SafetyManualUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SafetyManualUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SafetyManual.project"`)
	}
	return nil
}

func (_u *SafetyManualUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(safetymanual.Table, safetymanual.Columns, sqlgraph.NewFieldSpec(safetymanual.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(safetymanual.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(safetymanual.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsEmbedded(); ok {
		_spec.SetField(safetymanual.FieldIsEmbedded, field.TypeBool, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   safetymanual.ProjectTable,
			Columns: []string{safetymanual.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   safetymanual.ProjectTable,
			Columns: []string{safetymanual.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{safetymanual.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SafetyManualUpdateOne is the builder for updating a single SafetyManual entity.
type SafetyManualUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SafetyManualMutation
}

// SetProjectID sets the "project_id" field.
func (_u *SafetyManualUpdateOne) SetProjectID(v int) *SafetyManualUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SafetyManualUpdateOne) SetNillableProjectID(v *int) *SafetyManualUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SafetyManualUpdateOne) SetFilename(v string) *SafetyManualUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SafetyManualUpdateOne) SetNillableFilename(v *string) *SafetyManualUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *SafetyManualUpdateOne) SetFilePath(v string) *SafetyManualUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *SafetyManualUpdateOne) SetNillableFilePath(v *string) *SafetyManualUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetIsEmbedded sets the "is_embedded" field.
func (_u *SafetyManualUpdateOne) SetIsEmbedded(v bool) *SafetyManualUpdateOne {
	_u.mutation.SetIsEmbedded(v)
	return _u
}

// SetNillableIsEmbedded sets the "is_embedded" field if the given value is not nil.
func (_u *SafetyManualUpdateOne) SetNillableIsEmbedded(v *bool) *SafetyManualUpdateOne {
	if v != nil {
		_u.SetIsEmbedded(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SafetyManualUpdateOne) SetProject(v *Project) *SafetyManualUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the SafetyManualMutation object of the builder.
func (_u *SafetyManualUpdateOne) Mutation() *SafetyManualMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SafetyManualUpdateOne) ClearProject() *SafetyManualUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the SafetyManualUpdate builder.
func (_u *SafetyManualUpdateOne) Where(ps ...predicate.SafetyManual) *SafetyManualUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SafetyManualUpdateOne) Select(field string, fields ...string) *SafetyManualUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SafetyManual entity.
func (_u *SafetyManualUpdateOne) Save(ctx context.Context) (*SafetyManual, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SafetyManualUpdateOne) SaveX(ctx context.Context) *SafetyManual {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SafetyManualUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SafetyManualUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SafetyManualUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SafetyManual.project"`)
	}
	return nil
}

func (_u *SafetyManualUpdateOne) sqlSave(ctx context.Context) (_node *SafetyManual, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(safetymanual.Table, safetymanual.Columns, sqlgraph.NewFieldSpec(safetymanual.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SafetyManual.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, safetymanual.FieldID)
		for _, f := range fields {
			if !safetymanual.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != safetymanual.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(safetymanual.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(safetymanual.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsEmbedded(); ok {
		_spec.SetField(safetymanual.FieldIsEmbedded, field.TypeBool, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   safetymanual.ProjectTable,
			Columns: []string{safetymanual.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   safetymanual.ProjectTable,
			Columns: []string{safetymanual.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SafetyManual{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{safetymanual.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
