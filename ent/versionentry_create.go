// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexus-controls/plcforge/ent/versionentry"
)

// VersionEntryCreate is the builder for creating a VersionEntry entity.
type VersionEntryCreate struct {
	config
	mutation *VersionEntryMutation
	hooks    []Hook
}

// SetCodeID sets the "code_id" field.
func (_c *VersionEntryCreate) SetCodeID(v int) *VersionEntryCreate {
	_c.mutation.SetCodeID(v)
	return _c
}

// SetNillableCodeID sets the "code_id" field if the given value is not nil.
func (_c *VersionEntryCreate) SetNillableCodeID(v *int) *VersionEntryCreate {
	if v != nil {
		_c.SetCodeID(*v)
	}
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *VersionEntryCreate) SetStageID(v int) *VersionEntryCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *VersionEntryCreate) SetUserID(v int) *VersionEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *VersionEntryCreate) SetLevel(v versionentry.Level) *VersionEntryCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *VersionEntryCreate) SetNillableLevel(v *versionentry.Level) *VersionEntryCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *VersionEntryCreate) SetVersionNumber(v string) *VersionEntryCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetOldCode sets the "old_code" field.
func (_c *VersionEntryCreate) SetOldCode(v string) *VersionEntryCreate {
	_c.mutation.SetOldCode(v)
	return _c
}

// SetNillableOldCode sets the "old_code" field if the given value is not nil.
func (_c *VersionEntryCreate) SetNillableOldCode(v *string) *VersionEntryCreate {
	if v != nil {
		_c.SetOldCode(*v)
	}
	return _c
}

// SetNewCode sets the "new_code" field.
func (_c *VersionEntryCreate) SetNewCode(v string) *VersionEntryCreate {
	_c.mutation.SetNewCode(v)
	return _c
}

// SetNillableNewCode sets the "new_code" field if the given value is not nil.
func (_c *VersionEntryCreate) SetNillableNewCode(v *string) *VersionEntryCreate {
	if v != nil {
		_c.SetNewCode(*v)
	}
	return _c
}

// SetDiff sets the "diff" field.
func (_c *VersionEntryCreate) SetDiff(v string) *VersionEntryCreate {
	_c.mutation.SetDiff(v)
	return _c
}

// SetNillableDiff sets the "diff" field if the given value is not nil.
func (_c *VersionEntryCreate) SetNillableDiff(v *string) *VersionEntryCreate {
	if v != nil {
		_c.SetDiff(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *VersionEntryCreate) SetSessionID(v int) *VersionEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *VersionEntryCreate) SetNillableSessionID(v *int) *VersionEntryCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *VersionEntryCreate) SetTimestamp(v time.Time) *VersionEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *VersionEntryCreate) SetMetadata(v map[string]interface{}) *VersionEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// Mutation returns the VersionEntryMutation object of the builder.
func (_c *VersionEntryCreate) Mutation() *VersionEntryMutation {
	return _c.mutation
}

// Save creates the VersionEntry in the database.
func (_c *VersionEntryCreate) Save(ctx context.Context) (*VersionEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VersionEntryCreate) SaveX(ctx context.Context) *VersionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VersionEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VersionEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VersionEntryCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := versionentry.DefaultLevel
		_c.mutation.SetLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VersionEntryCreate) check() error {
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "VersionEntry.stage_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "VersionEntry.user_id"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "VersionEntry.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := versionentry.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "VersionEntry.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "VersionEntry.version_number"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "VersionEntry.timestamp"`)}
	}
	return nil
}

func (_c *VersionEntryCreate) sqlSave(ctx context.Context) (*VersionEntry, error) {
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

func (_c *VersionEntryCreate) createSpec() (*VersionEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &VersionEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(versionentry.Table, sqlgraph.NewFieldSpec(versionentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CodeID(); ok {
		_spec.SetField(versionentry.FieldCodeID, field.TypeInt, value)
		_node.CodeID = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(versionentry.FieldStageID, field.TypeInt, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(versionentry.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(versionentry.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(versionentry.FieldVersionNumber, field.TypeString, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.OldCode(); ok {
		_spec.SetField(versionentry.FieldOldCode, field.TypeString, value)
		_node.OldCode = value
	}
	if value, ok := _c.mutation.NewCode(); ok {
		_spec.SetField(versionentry.FieldNewCode, field.TypeString, value)
		_node.NewCode = value
	}
	if value, ok := _c.mutation.Diff(); ok {
		_spec.SetField(versionentry.FieldDiff, field.TypeString, value)
		_node.Diff = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(versionentry.FieldSessionID, field.TypeInt, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(versionentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(versionentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// VersionEntryCreateBulk is the builder for creating many VersionEntry entities in bulk.
type VersionEntryCreateBulk struct {
	config
	err      error
	builders []*VersionEntryCreate
}

// Save creates the VersionEntry entities in the database.
func (_c *VersionEntryCreateBulk) Save(ctx context.Context) ([]*VersionEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VersionEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VersionEntryMutation)
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
func (_c *VersionEntryCreateBulk) SaveX(ctx context.Context) []*VersionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VersionEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VersionEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
