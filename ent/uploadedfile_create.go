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
	"github.com/nexus-controls/plcforge/ent/uploadedfile"
)

// UploadedFileCreate is the builder for creating a UploadedFile entity.
type UploadedFileCreate struct {
	config
	mutation *UploadedFileMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *UploadedFileCreate) SetProjectID(v int) *UploadedFileCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UploadedFileCreate) SetUserID(v int) *UploadedFileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *UploadedFileCreate) SetFileType(v string) *UploadedFileCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *UploadedFileCreate) SetOriginalFilename(v string) *UploadedFileCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetStoredFilename sets the "stored_filename" field.
func (_c *UploadedFileCreate) SetStoredFilename(v string) *UploadedFileCreate {
	_c.mutation.SetStoredFilename(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *UploadedFileCreate) SetFilePath(v string) *UploadedFileCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *UploadedFileCreate) SetFileSize(v int64) *UploadedFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *UploadedFileCreate) SetUploadedAt(v time.Time) *UploadedFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *UploadedFileCreate) SetProject(v *Project) *UploadedFileCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_c *UploadedFileCreate) Mutation() *UploadedFileMutation {
	return _c.mutation
}

// Save creates the UploadedFile in the database.
func (_c *UploadedFileCreate) Save(ctx context.Context) (*UploadedFile, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadedFileCreate) SaveX(ctx context.Context) *UploadedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadedFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadedFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadedFileCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "UploadedFile.project_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UploadedFile.user_id"`)}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "UploadedFile.file_type"`)}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "UploadedFile.original_filename"`)}
	}
	if _, ok := _c.mutation.StoredFilename(); !ok {
		return &ValidationError{Name: "stored_filename", err: errors.New(`ent: missing required field "UploadedFile.stored_filename"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "UploadedFile.file_path"`)}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "UploadedFile.file_size"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "UploadedFile.uploaded_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "UploadedFile.project"`)}
	}
	return nil
}

func (_c *UploadedFileCreate) sqlSave(ctx context.Context) (*UploadedFile, error) {
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

func (_c *UploadedFileCreate) createSpec() (*UploadedFile, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadedFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadedfile.Table, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(uploadedfile.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(uploadedfile.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(uploadedfile.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.StoredFilename(); ok {
		_spec.SetField(uploadedfile.FieldStoredFilename, field.TypeString, value)
		_node.StoredFilename = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(uploadedfile.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(uploadedfile.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(uploadedfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadedfile.ProjectTable,
			Columns: []string{uploadedfile.ProjectColumn},
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

// UploadedFileCreateBulk is the builder for creating many UploadedFile entities in bulk.
type UploadedFileCreateBulk struct {
	config
	err      error
	builders []*UploadedFileCreate
}

// Save creates the UploadedFile entities in the database.
func (_c *UploadedFileCreateBulk) Save(ctx context.Context) ([]*UploadedFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadedFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadedFileMutation)
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
func (_c *UploadedFileCreateBulk) SaveX(ctx context.Context) []*UploadedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadedFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadedFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
