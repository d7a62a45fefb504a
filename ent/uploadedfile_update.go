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
	"github.com/nexus-controls/plcforge/ent/uploadedfile"
)

// UploadedFileUpdate is the builder for updating UploadedFile entities.
type UploadedFileUpdate struct {
	config
	hooks    []Hook
	mutation *UploadedFileMutation
}

// Where appends a list predicates to the UploadedFileUpdate builder.
func (_u *UploadedFileUpdate) Where(ps ...predicate.UploadedFile) *UploadedFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *UploadedFileUpdate) SetProjectID(v int) *UploadedFileUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableProjectID(v *int) *UploadedFileUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadedFileUpdate) SetUserID(v int) *UploadedFileUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableUserID(v *int) *UploadedFileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *UploadedFileUpdate) AddUserID(v int) *UploadedFileUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *UploadedFileUpdate) SetFileType(v string) *UploadedFileUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableFileType(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *UploadedFileUpdate) SetOriginalFilename(v string) *UploadedFileUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableOriginalFilename(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStoredFilename sets the "stored_filename" field.
func (_u *UploadedFileUpdate) SetStoredFilename(v string) *UploadedFileUpdate {
	_u.mutation.SetStoredFilename(v)
	return _u
}

// SetNillableStoredFilename sets the "stored_filename" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableStoredFilename(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetStoredFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *UploadedFileUpdate) SetFilePath(v string) *UploadedFileUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableFilePath(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UploadedFileUpdate) SetFileSize(v int64) *UploadedFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableFileSize(v *int64) *UploadedFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UploadedFileUpdate) AddFileSize(v int64) *UploadedFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *UploadedFileUpdate) SetProject(v *Project) *UploadedFileUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_u *UploadedFileUpdate) Mutation() *UploadedFileMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *UploadedFileUpdate) ClearProject() *UploadedFileUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadedFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadedFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadedFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadedFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadedFileUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UploadedFile.project"`)
	}
	return nil
}

func (_u *UploadedFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadedfile.Table, uploadedfile.Columns, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(uploadedfile.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(uploadedfile.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(uploadedfile.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(uploadedfile.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredFilename(); ok {
		_spec.SetField(uploadedfile.FieldStoredFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(uploadedfile.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(uploadedfile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(uploadedfile.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadedFileUpdateOne is the builder for updating a single UploadedFile entity.
type UploadedFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadedFileMutation
}

// SetProjectID sets the "project_id" field.
func (_u *UploadedFileUpdateOne) SetProjectID(v int) *UploadedFileUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableProjectID(v *int) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadedFileUpdateOne) SetUserID(v int) *UploadedFileUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableUserID(v *int) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *UploadedFileUpdateOne) AddUserID(v int) *UploadedFileUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *UploadedFileUpdateOne) SetFileType(v string) *UploadedFileUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableFileType(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *UploadedFileUpdateOne) SetOriginalFilename(v string) *UploadedFileUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableOriginalFilename(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStoredFilename sets the "stored_filename" field.
func (_u *UploadedFileUpdateOne) SetStoredFilename(v string) *UploadedFileUpdateOne {
	_u.mutation.SetStoredFilename(v)
	return _u
}

// SetNillableStoredFilename sets the "stored_filename" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableStoredFilename(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetStoredFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *UploadedFileUpdateOne) SetFilePath(v string) *UploadedFileUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableFilePath(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UploadedFileUpdateOne) SetFileSize(v int64) *UploadedFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableFileSize(v *int64) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UploadedFileUpdateOne) AddFileSize(v int64) *UploadedFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *UploadedFileUpdateOne) SetProject(v *Project) *UploadedFileUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_u *UploadedFileUpdateOne) Mutation() *UploadedFileMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *UploadedFileUpdateOne) ClearProject() *UploadedFileUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the UploadedFileUpdate builder.
func (_u *UploadedFileUpdateOne) Where(ps ...predicate.UploadedFile) *UploadedFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadedFileUpdateOne) Select(field string, fields ...string) *UploadedFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadedFile entity.
func (_u *UploadedFileUpdateOne) Save(ctx context.Context) (*UploadedFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadedFileUpdateOne) SaveX(ctx context.Context) *UploadedFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadedFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadedFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadedFileUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UploadedFile.project"`)
	}
	return nil
}

func (_u *UploadedFileUpdateOne) sqlSave(ctx context.Context) (_node *UploadedFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadedfile.Table, uploadedfile.Columns, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadedFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadedfile.FieldID)
		for _, f := range fields {
			if !uploadedfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadedfile.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(uploadedfile.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(uploadedfile.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(uploadedfile.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(uploadedfile.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredFilename(); ok {
		_spec.SetField(uploadedfile.FieldStoredFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(uploadedfile.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(uploadedfile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(uploadedfile.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadedFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
