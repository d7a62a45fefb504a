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
	"github.com/nexus-controls/plcforge/ent/versionentry"
)

// VersionEntryUpdate is the builder for updating VersionEntry entities.
type VersionEntryUpdate struct {
	config
	hooks    []Hook
	mutation *VersionEntryMutation
}

// Where appends a list predicates to the VersionEntryUpdate builder.
func (_u *VersionEntryUpdate) Where(ps ...predicate.VersionEntry) *VersionEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCodeID sets the "code_id" field.
func (_u *VersionEntryUpdate) SetCodeID(v int) *VersionEntryUpdate {
	_u.mutation.ResetCodeID()
	_u.mutation.SetCodeID(v)
	return _u
}

// SetNillableCodeID sets the "code_id" field if the given value is not nil.
func (_u *VersionEntryUpdate) SetNillableCodeID(v *int) *VersionEntryUpdate {
	if v != nil {
		_u.SetCodeID(*v)
	}
	return _u
}

// AddCodeID adds value to the "code_id" field.
func (_u *VersionEntryUpdate) AddCodeID(v int) *VersionEntryUpdate {
	_u.mutation.AddCodeID(v)
	return _u
}

// ClearCodeID clears the value of the "code_id" field.
func (_u *VersionEntryUpdate) ClearCodeID() *VersionEntryUpdate {
	_u.mutation.ClearCodeID()
	return _u
}

// Mutation returns the VersionEntryMutation object of the builder.
func (_u *VersionEntryUpdate) Mutation() *VersionEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VersionEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VersionEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VersionEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VersionEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VersionEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(versionentry.Table, versionentry.Columns, sqlgraph.NewFieldSpec(versionentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CodeID(); ok {
		_spec.SetField(versionentry.FieldCodeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCodeID(); ok {
		_spec.AddField(versionentry.FieldCodeID, field.TypeInt, value)
	}
	if _u.mutation.CodeIDCleared() {
		_spec.ClearField(versionentry.FieldCodeID, field.TypeInt)
	}
	if _u.mutation.OldCodeCleared() {
		_spec.ClearField(versionentry.FieldOldCode, field.TypeString)
	}
	if _u.mutation.NewCodeCleared() {
		_spec.ClearField(versionentry.FieldNewCode, field.TypeString)
	}
	if _u.mutation.DiffCleared() {
		_spec.ClearField(versionentry.FieldDiff, field.TypeString)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(versionentry.FieldSessionID, field.TypeInt)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(versionentry.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{versionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VersionEntryUpdateOne is the builder for updating a single VersionEntry entity.
type VersionEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VersionEntryMutation
}

// SetCodeID sets the "code_id" field.
func (_u *VersionEntryUpdateOne) SetCodeID(v int) *VersionEntryUpdateOne {
	_u.mutation.ResetCodeID()
	_u.mutation.SetCodeID(v)
	return _u
}

// SetNillableCodeID sets the "code_id" field if the given value is not nil.
func (_u *VersionEntryUpdateOne) SetNillableCodeID(v *int) *VersionEntryUpdateOne {
	if v != nil {
		_u.SetCodeID(*v)
	}
	return _u
}

// AddCodeID adds value to the "code_id" field.
func (_u *VersionEntryUpdateOne) AddCodeID(v int) *VersionEntryUpdateOne {
	_u.mutation.AddCodeID(v)
	return _u
}

// ClearCodeID clears the value of the "code_id" field.
func (_u *VersionEntryUpdateOne) ClearCodeID() *VersionEntryUpdateOne {
	_u.mutation.ClearCodeID()
	return _u
}

// Mutation returns the VersionEntryMutation object of the builder.
func (_u *VersionEntryUpdateOne) Mutation() *VersionEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the VersionEntryUpdate builder.
func (_u *VersionEntryUpdateOne) Where(ps ...predicate.VersionEntry) *VersionEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VersionEntryUpdateOne) Select(field string, fields ...string) *VersionEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VersionEntry entity.
func (_u *VersionEntryUpdateOne) Save(ctx context.Context) (*VersionEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VersionEntryUpdateOne) SaveX(ctx context.Context) *VersionEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VersionEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VersionEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VersionEntryUpdateOne) sqlSave(ctx context.Context) (_node *VersionEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(versionentry.Table, versionentry.Columns, sqlgraph.NewFieldSpec(versionentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VersionEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, versionentry.FieldID)
		for _, f := range fields {
			if !versionentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != versionentry.FieldID {
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
	if value, ok := _u.mutation.CodeID(); ok {
		_spec.SetField(versionentry.FieldCodeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCodeID(); ok {
		_spec.AddField(versionentry.FieldCodeID, field.TypeInt, value)
	}
	if _u.mutation.CodeIDCleared() {
		_spec.ClearField(versionentry.FieldCodeID, field.TypeInt)
	}
	if _u.mutation.OldCodeCleared() {
		_spec.ClearField(versionentry.FieldOldCode, field.TypeString)
	}
	if _u.mutation.NewCodeCleared() {
		_spec.ClearField(versionentry.FieldNewCode, field.TypeString)
	}
	if _u.mutation.DiffCleared() {
		_spec.ClearField(versionentry.FieldDiff, field.TypeString)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(versionentry.FieldSessionID, field.TypeInt)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(versionentry.FieldMetadata, field.TypeJSON)
	}
	_node = &VersionEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{versionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
