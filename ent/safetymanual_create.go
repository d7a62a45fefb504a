// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/safetymanual"
)

// SafetyManualCreate is the builder for creating a SafetyManual entity.
type SafetyManualCreate struct {
	config
	mutation *SafetyManualMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *SafetyManualCreate) SetProjectID(v int) *SafetyManualCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *SafetyManualCreate) SetFilename(v string) *SafetyManualCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *SafetyManualCreate) SetFilePath(v string) *SafetyManualCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetIsEmbedded sets the "is_embedded" field.
func (_c *SafetyManualCreate) SetIsEmbedded(v bool) *SafetyManualCreate {
	_c.mutation.SetIsEmbedded(v)
	return _c
}

// SetNillableIsEmbedded sets the "is_embedded" field if the given value is not nil.
func (_c *SafetyManualCreate) SetNillableIsEmbedded(v *bool) *SafetyManualCreate {
	if v != nil {
		_c.SetIsEmbedded(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *SafetyManualCreate) SetUploadedAt(v time.Time) *SafetyManualCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SafetyManualCreate) SetProject(v *Project) *SafetyManualCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the SafetyManualMutation object of the builder.
func (_c *SafetyManualCreate) Mutation() *SafetyManualMutation {
	return _c.mutation
}

// Save creates the SafetyManual in the database.
func (_c *SafetyManualCreate) Save(ctx context.Context) (*SafetyManual, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SafetyManualCreate) SaveX(ctx context.Context) *SafetyManual {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SafetyManualCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SafetyManualCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SafetyManualCreate) defaults() {
	if _, ok := _c.mutation.IsEmbedded(); !ok {
		v := safetymanual.DefaultIsEmbedded
		_c.mutation.SetIsEmbedded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SafetyManualCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "SafetyManual.project_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "SafetyManual.filename"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "SafetyManual.file_path"`)}
	}
	if _, ok := _c.mutation.IsEmbedded(); !ok {
		return &ValidationError{Name: "is_embedded", err: errors.New(`ent: missing required field "SafetyManual.is_embedded"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "SafetyManual.uploaded_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "SafetyManual.project"`)}
	}
	return nil
}

func (_c *SafetyManualCreate) sqlSave(ctx context.Context) (*SafetyManual, error) {
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

func (_c *SafetyManualCreate) createSpec() (*SafetyManual, *sqlgraph.CreateSpec) {
	var (
		_node = &SafetyManual{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(safetymanual.Table, sqlgraph.NewFieldSpec(safetymanual.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(safetymanual.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(safetymanual.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.IsEmbedded(); ok {
		_spec.SetField(safetymanual.FieldIsEmbedded, field.TypeBool, value)
		_node.IsEmbedded = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(safetymanual.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SafetyManualCreateBulk is the builder for creating many SafetyManual entities in bulk.
type SafetyManualCreateBulk struct {
	config
	err      error
	builders []*SafetyManualCreate
}

// Save creates the SafetyManual entities in the database.
func (_c *SafetyManualCreateBulk) Save(ctx context.Context) ([]*SafetyManual, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SafetyManual, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SafetyManualMutation)
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
func (_c *SafetyManualCreateBulk) SaveX(ctx context.Context) []*SafetyManual {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SafetyManualCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SafetyManualCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
