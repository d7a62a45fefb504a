// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nexus-controls/plcforge/ent/generatedcode"
	"github.com/nexus-controls/plcforge/ent/predicate"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/stage"
	"github.com/nexus-controls/plcforge/pkg/models"
)

// GeneratedCodeUpdate is the builder for updating GeneratedCode entities.
type GeneratedCodeUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedCodeMutation
}

// Where appends a list predicates to the GeneratedCodeUpdate builder.
func (_u *GeneratedCodeUpdate) Where(ps ...predicate.GeneratedCode) *GeneratedCodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *GeneratedCodeUpdate) SetProjectID(v int) *GeneratedCodeUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *GeneratedCodeUpdate) SetNillableProjectID(v *int) *GeneratedCodeUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *GeneratedCodeUpdate) SetStageID(v int) *GeneratedCodeUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *GeneratedCodeUpdate) SetNillableStageID(v *int) *GeneratedCodeUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetGlobalLabels sets the "global_labels" field.
func (_u *GeneratedCodeUpdate) SetGlobalLabels(v []models.Label) *GeneratedCodeUpdate {
	_u.mutation.SetGlobalLabels(v)
	return _u
}

// AppendGlobalLabels appends value to the "global_labels" field.
func (_u *GeneratedCodeUpdate) AppendGlobalLabels(v []models.Label) *GeneratedCodeUpdate {
	_u.mutation.AppendGlobalLabels(v)
	return _u
}

// ClearGlobalLabels clears the value of the "global_labels" field.
func (_u *GeneratedCodeUpdate) ClearGlobalLabels() *GeneratedCodeUpdate {
	_u.mutation.ClearGlobalLabels()
	return _u
}

// SetLocalLabels sets the "local_labels" field.
func (_u *GeneratedCodeUpdate) SetLocalLabels(v []models.Label) *GeneratedCodeUpdate {
	_u.mutation.SetLocalLabels(v)
	return _u
}

// AppendLocalLabels appends value to the "local_labels" field.
func (_u *GeneratedCodeUpdate) AppendLocalLabels(v []models.Label) *GeneratedCodeUpdate {
	_u.mutation.AppendLocalLabels(v)
	return _u
}

// ClearLocalLabels clears the value of the "local_labels" field.
func (_u *GeneratedCodeUpdate) ClearLocalLabels() *GeneratedCodeUpdate {
	_u.mutation.ClearLocalLabels()
	return _u
}

// SetProgramBody sets the "program_body" field.
func (_u *GeneratedCodeUpdate) SetProgramBody(v string) *GeneratedCodeUpdate {
	_u.mutation.SetProgramBody(v)
	return _u
}

// SetNillableProgramBody sets the "program_body" field if the given value is not nil.
func (_u *GeneratedCodeUpdate) SetNillableProgramBody(v *string) *GeneratedCodeUpdate {
	if v != nil {
		_u.SetProgramBody(*v)
	}
	return _u
}

// ClearProgramBody clears the value of the "program_body" field.
func (_u *GeneratedCodeUpdate) ClearProgramBody() *GeneratedCodeUpdate {
	_u.mutation.ClearProgramBody()
	return _u
}

// SetProgramBlocks sets the "program_blocks" field.
func (_u *GeneratedCodeUpdate) SetProgramBlocks(v []models.ProgramBlock) *GeneratedCodeUpdate {
	_u.mutation.SetProgramBlocks(v)
	return _u
}

// AppendProgramBlocks appends value to the "program_blocks" field.
func (_u *GeneratedCodeUpdate) AppendProgramBlocks(v []models.ProgramBlock) *GeneratedCodeUpdate {
	_u.mutation.AppendProgramBlocks(v)
	return _u
}

// ClearProgramBlocks clears the value of the "program_blocks" field.
func (_u *GeneratedCodeUpdate) ClearProgramBlocks() *GeneratedCodeUpdate {
	_u.mutation.ClearProgramBlocks()
	return _u
}

// SetFunctions sets the "functions" field.
func (_u *GeneratedCodeUpdate) SetFunctions(v []models.Function) *GeneratedCodeUpdate {
	_u.mutation.SetFunctions(v)
	return _u
}

// AppendFunctions appends value to the "functions" field.
func (_u *GeneratedCodeUpdate) AppendFunctions(v []models.Function) *GeneratedCodeUpdate {
	_u.mutation.AppendFunctions(v)
	return _u
}

// ClearFunctions clears the value of the "functions" field.
func (_u *GeneratedCodeUpdate) ClearFunctions() *GeneratedCodeUpdate {
	_u.mutation.ClearFunctions()
	return _u
}

// SetFunctionBlocks sets the "function_blocks" field.
func (_u *GeneratedCodeUpdate) SetFunctionBlocks(v []models.FunctionBlock) *GeneratedCodeUpdate {
	_u.mutation.SetFunctionBlocks(v)
	return _u
}

// AppendFunctionBlocks appends value to the "function_blocks" field.
func (_u *GeneratedCodeUpdate) AppendFunctionBlocks(v []models.FunctionBlock) *GeneratedCodeUpdate {
	_u.mutation.AppendFunctionBlocks(v)
	return _u
}

// ClearFunctionBlocks clears the value of the "function_blocks" field.
func (_u *GeneratedCodeUpdate) ClearFunctionBlocks() *GeneratedCodeUpdate {
	_u.mutation.ClearFunctionBlocks()
	return _u
}

// SetProgramName sets the "program_name" field.
func (_u *GeneratedCodeUpdate) SetProgramName(v string) *GeneratedCodeUpdate {
	_u.mutation.SetProgramName(v)
	return _u
}

// SetNillableProgramName sets the "program_name" field if the given value is not nil.
func (_u *GeneratedCodeUpdate) SetNillableProgramName(v *string) *GeneratedCodeUpdate {
	if v != nil {
		_u.SetProgramName(*v)
	}
	return _u
}

// SetExecutionType sets the "execution_type" field.
func (_u *GeneratedCodeUpdate) SetExecutionType(v generatedcode.ExecutionType) *GeneratedCodeUpdate {
	_u.mutation.SetExecutionType(v)
	return _u
}

// SetNillableExecutionType sets the "execution_type" field if the given value is not nil.
func (_u *GeneratedCodeUpdate) SetNillableExecutionType(v *generatedcode.ExecutionType) *GeneratedCodeUpdate {
	if v != nil {
		_u.SetExecutionType(*v)
	}
	return _u
}

// SetCodeMetadata sets the "code_metadata" field.
func (_u *GeneratedCodeUpdate) SetCodeMetadata(v map[string]interface{}) *GeneratedCodeUpdate {
	_u.mutation.SetCodeMetadata(v)
	return _u
}

// ClearCodeMetadata clears the value of the "code_metadata" field.
func (_u *GeneratedCodeUpdate) ClearCodeMetadata() *GeneratedCodeUpdate {
	_u.mutation.ClearCodeMetadata()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *GeneratedCodeUpdate) SetProject(v *Project) *GeneratedCodeUpdate {
	return _u.SetProjectID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *GeneratedCodeUpdate) SetStage(v *Stage) *GeneratedCodeUpdate {
	return _u.SetStageID(v.ID)
}

// Mutation returns the GeneratedCodeMutation object of the builder.
func (_u *GeneratedCodeUpdate) Mutation() *GeneratedCodeMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *GeneratedCodeUpdate) ClearProject() *GeneratedCodeUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *GeneratedCodeUpdate) ClearStage() *GeneratedCodeUpdate {
	_u.mutation.ClearStage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedCodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedCodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedCodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedCodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedCodeUpdate) check() error {
	if v, ok := _u.mutation.ExecutionType(); ok {
		if err := generatedcode.ExecutionTypeValidator(v); err != nil {
			return &ValidationError{Name: "execution_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedCode.execution_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedCode.project"`)
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedCode.stage"`)
	}
	return nil
}

func (_u *GeneratedCodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedcode.Table, generatedcode.Columns, sqlgraph.NewFieldSpec(generatedcode.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GlobalLabels(); ok {
		_spec.SetField(generatedcode.FieldGlobalLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGlobalLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldGlobalLabels, value)
		})
	}
	if _u.mutation.GlobalLabelsCleared() {
		_spec.ClearField(generatedcode.FieldGlobalLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.LocalLabels(); ok {
		_spec.SetField(generatedcode.FieldLocalLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLocalLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldLocalLabels, value)
		})
	}
	if _u.mutation.LocalLabelsCleared() {
		_spec.ClearField(generatedcode.FieldLocalLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgramBody(); ok {
		_spec.SetField(generatedcode.FieldProgramBody, field.TypeString, value)
	}
	if _u.mutation.ProgramBodyCleared() {
		_spec.ClearField(generatedcode.FieldProgramBody, field.TypeString)
	}
	if value, ok := _u.mutation.ProgramBlocks(); ok {
		_spec.SetField(generatedcode.FieldProgramBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgramBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldProgramBlocks, value)
		})
	}
	if _u.mutation.ProgramBlocksCleared() {
		_spec.ClearField(generatedcode.FieldProgramBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Functions(); ok {
		_spec.SetField(generatedcode.FieldFunctions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFunctions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldFunctions, value)
		})
	}
	if _u.mutation.FunctionsCleared() {
		_spec.ClearField(generatedcode.FieldFunctions, field.TypeJSON)
	}
	if value, ok := _u.mutation.FunctionBlocks(); ok {
		_spec.SetField(generatedcode.FieldFunctionBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFunctionBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldFunctionBlocks, value)
		})
	}
	if _u.mutation.FunctionBlocksCleared() {
		_spec.ClearField(generatedcode.FieldFunctionBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgramName(); ok {
		_spec.SetField(generatedcode.FieldProgramName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionType(); ok {
		_spec.SetField(generatedcode.FieldExecutionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CodeMetadata(); ok {
		_spec.SetField(generatedcode.FieldCodeMetadata, field.TypeJSON, value)
	}
	if _u.mutation.CodeMetadataCleared() {
		_spec.ClearField(generatedcode.FieldCodeMetadata, field.TypeJSON)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcode.ProjectTable,
			Columns: []string{generatedcode.ProjectColumn},
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
			Table:   generatedcode.ProjectTable,
			Columns: []string{generatedcode.ProjectColumn},
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
	if _u.mutation.StageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcode.StageTable,
			Columns: []string{generatedcode.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcode.StageTable,
			Columns: []string{generatedcode.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedcode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedCodeUpdateOne is the builder for updating a single GeneratedCode entity.
type GeneratedCodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedCodeMutation
}

// SetProjectID sets the "project_id" field.
func (_u *GeneratedCodeUpdateOne) SetProjectID(v int) *GeneratedCodeUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *GeneratedCodeUpdateOne) SetNillableProjectID(v *int) *GeneratedCodeUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *GeneratedCodeUpdateOne) SetStageID(v int) *GeneratedCodeUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *GeneratedCodeUpdateOne) SetNillableStageID(v *int) *GeneratedCodeUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetGlobalLabels sets the "global_labels" field.
func (_u *GeneratedCodeUpdateOne) SetGlobalLabels(v []models.Label) *GeneratedCodeUpdateOne {
	_u.mutation.SetGlobalLabels(v)
	return _u
}

// AppendGlobalLabels appends value to the "global_labels" field.
func (_u *GeneratedCodeUpdateOne) AppendGlobalLabels(v []models.Label) *GeneratedCodeUpdateOne {
	_u.mutation.AppendGlobalLabels(v)
	return _u
}

// ClearGlobalLabels clears the value of the "global_labels" field.
func (_u *GeneratedCodeUpdateOne) ClearGlobalLabels() *GeneratedCodeUpdateOne {
	_u.mutation.ClearGlobalLabels()
	return _u
}

// SetLocalLabels sets the "local_labels" field.
func (_u *GeneratedCodeUpdateOne) SetLocalLabels(v []models.Label) *GeneratedCodeUpdateOne {
	_u.mutation.SetLocalLabels(v)
	return _u
}

// AppendLocalLabels appends value to the "local_labels" field.
func (_u *GeneratedCodeUpdateOne) AppendLocalLabels(v []models.Label) *GeneratedCodeUpdateOne {
	_u.mutation.AppendLocalLabels(v)
	return _u
}

// ClearLocalLabels clears the value of the "local_labels" field.
func (_u *GeneratedCodeUpdateOne) ClearLocalLabels() *GeneratedCodeUpdateOne {
	_u.mutation.ClearLocalLabels()
	return _u
}

// SetProgramBody sets the "program_body" field.
func (_u *GeneratedCodeUpdateOne) SetProgramBody(v string) *GeneratedCodeUpdateOne {
	_u.mutation.SetProgramBody(v)
	return _u
}

// SetNillableProgramBody sets the "program_body" field if the given value is not nil.
func (_u *GeneratedCodeUpdateOne) SetNillableProgramBody(v *string) *GeneratedCodeUpdateOne {
	if v != nil {
		_u.SetProgramBody(*v)
	}
	return _u
}

// ClearProgramBody clears the value of the "program_body" field.
func (_u *GeneratedCodeUpdateOne) ClearProgramBody() *GeneratedCodeUpdateOne {
	_u.mutation.ClearProgramBody()
	return _u
}

// SetProgramBlocks sets the "program_blocks" field.
func (_u *GeneratedCodeUpdateOne) SetProgramBlocks(v []models.ProgramBlock) *GeneratedCodeUpdateOne {
	_u.mutation.SetProgramBlocks(v)
	return _u
}

// AppendProgramBlocks appends value to the "program_blocks" field.
func (_u *GeneratedCodeUpdateOne) AppendProgramBlocks(v []models.ProgramBlock) *GeneratedCodeUpdateOne {
	_u.mutation.AppendProgramBlocks(v)
	return _u
}

// ClearProgramBlocks clears the value of the "program_blocks" field.
func (_u *GeneratedCodeUpdateOne) ClearProgramBlocks() *GeneratedCodeUpdateOne {
	_u.mutation.ClearProgramBlocks()
	return _u
}

// SetFunctions sets the "functions" field.
func (_u *GeneratedCodeUpdateOne) SetFunctions(v []models.Function) *GeneratedCodeUpdateOne {
	_u.mutation.SetFunctions(v)
	return _u
}

// AppendFunctions appends value to the "functions" field.
func (_u *GeneratedCodeUpdateOne) AppendFunctions(v []models.Function) *GeneratedCodeUpdateOne {
	_u.mutation.AppendFunctions(v)
	return _u
}

// ClearFunctions clears the value of the "functions" field.
func (_u *GeneratedCodeUpdateOne) ClearFunctions() *GeneratedCodeUpdateOne {
	_u.mutation.ClearFunctions()
	return _u
}

// SetFunctionBlocks sets the "function_blocks" field.
func (_u *GeneratedCodeUpdateOne) SetFunctionBlocks(v []models.FunctionBlock) *GeneratedCodeUpdateOne {
	_u.mutation.SetFunctionBlocks(v)
	return _u
}

// AppendFunctionBlocks appends value to the "function_blocks" field.
func (_u *GeneratedCodeUpdateOne) AppendFunctionBlocks(v []models.FunctionBlock) *GeneratedCodeUpdateOne {
	_u.mutation.AppendFunctionBlocks(v)
	return _u
}

// ClearFunctionBlocks clears the value of the "function_blocks" field.
func (_u *GeneratedCodeUpdateOne) ClearFunctionBlocks() *GeneratedCodeUpdateOne {
	_u.mutation.ClearFunctionBlocks()
	return _u
}

// SetProgramName sets the "program_name" field.
func (_u *GeneratedCodeUpdateOne) SetProgramName(v string) *GeneratedCodeUpdateOne {
	_u.mutation.SetProgramName(v)
	return _u
}

// SetNillableProgramName sets the "program_name" field if the given value is not nil.
func (_u *GeneratedCodeUpdateOne) SetNillableProgramName(v *string) *GeneratedCodeUpdateOne {
	if v != nil {
		_u.SetProgramName(*v)
	}
	return _u
}

// SetExecutionType sets the "execution_type" field.
func (_u *GeneratedCodeUpdateOne) SetExecutionType(v generatedcode.ExecutionType) *GeneratedCodeUpdateOne {
	_u.mutation.SetExecutionType(v)
	return _u
}

// SetNillableExecutionType sets the "execution_type" field if the given value is not nil.
func (_u *GeneratedCodeUpdateOne) SetNillableExecutionType(v *generatedcode.ExecutionType) *GeneratedCodeUpdateOne {
	if v != nil {
		_u.SetExecutionType(*v)
	}
	return _u
}

// SetCodeMetadata sets the "code_metadata" field.
func (_u *GeneratedCodeUpdateOne) SetCodeMetadata(v map[string]interface{}) *GeneratedCodeUpdateOne {
	_u.mutation.SetCodeMetadata(v)
	return _u
}

// ClearCodeMetadata clears the value of the "code_metadata" field.
func (_u *GeneratedCodeUpdateOne) ClearCodeMetadata() *GeneratedCodeUpdateOne {
	_u.mutation.ClearCodeMetadata()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *GeneratedCodeUpdateOne) SetProject(v *Project) *GeneratedCodeUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *GeneratedCodeUpdateOne) SetStage(v *Stage) *GeneratedCodeUpdateOne {
	return _u.SetStageID(v.ID)
}

// Mutation returns the GeneratedCodeMutation object of the builder.
func (_u *GeneratedCodeUpdateOne) Mutation() *GeneratedCodeMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *GeneratedCodeUpdateOne) ClearProject() *GeneratedCodeUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *GeneratedCodeUpdateOne) ClearStage() *GeneratedCodeUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// Where appends a list predicates to the GeneratedCodeUpdate builder.
func (_u *GeneratedCodeUpdateOne) Where(ps ...predicate.GeneratedCode) *GeneratedCodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedCodeUpdateOne) Select(field string, fields ...string) *GeneratedCodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedCode entity.
func (_u *GeneratedCodeUpdateOne) Save(ctx context.Context) (*GeneratedCode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedCodeUpdateOne) SaveX(ctx context.Context) *GeneratedCode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedCodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedCodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedCodeUpdateOne) check() error {
	if v, ok := _u.mutation.ExecutionType(); ok {
		if err := generatedcode.ExecutionTypeValidator(v); err != nil {
			return &ValidationError{Name: "execution_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedCode.execution_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedCode.project"`)
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedCode.stage"`)
	}
	return nil
}

func (_u *GeneratedCodeUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedCode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedcode.Table, generatedcode.Columns, sqlgraph.NewFieldSpec(generatedcode.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedCode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedcode.FieldID)
		for _, f := range fields {
			if !generatedcode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedcode.FieldID {
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
	if value, ok := _u.mutation.GlobalLabels(); ok {
		_spec.SetField(generatedcode.FieldGlobalLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGlobalLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldGlobalLabels, value)
		})
	}
	if _u.mutation.GlobalLabelsCleared() {
		_spec.ClearField(generatedcode.FieldGlobalLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.LocalLabels(); ok {
		_spec.SetField(generatedcode.FieldLocalLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLocalLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldLocalLabels, value)
		})
	}
	if _u.mutation.LocalLabelsCleared() {
		_spec.ClearField(generatedcode.FieldLocalLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgramBody(); ok {
		_spec.SetField(generatedcode.FieldProgramBody, field.TypeString, value)
	}
	if _u.mutation.ProgramBodyCleared() {
		_spec.ClearField(generatedcode.FieldProgramBody, field.TypeString)
	}
	if value, ok := _u.mutation.ProgramBlocks(); ok {
		_spec.SetField(generatedcode.FieldProgramBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgramBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldProgramBlocks, value)
		})
	}
	if _u.mutation.ProgramBlocksCleared() {
		_spec.ClearField(generatedcode.FieldProgramBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Functions(); ok {
		_spec.SetField(generatedcode.FieldFunctions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFunctions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldFunctions, value)
		})
	}
	if _u.mutation.FunctionsCleared() {
		_spec.ClearField(generatedcode.FieldFunctions, field.TypeJSON)
	}
	if value, ok := _u.mutation.FunctionBlocks(); ok {
		_spec.SetField(generatedcode.FieldFunctionBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFunctionBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedcode.FieldFunctionBlocks, value)
		})
	}
	if _u.mutation.FunctionBlocksCleared() {
		_spec.ClearField(generatedcode.FieldFunctionBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgramName(); ok {
		_spec.SetField(generatedcode.FieldProgramName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionType(); ok {
		_spec.SetField(generatedcode.FieldExecutionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CodeMetadata(); ok {
		_spec.SetField(generatedcode.FieldCodeMetadata, field.TypeJSON, value)
	}
	if _u.mutation.CodeMetadataCleared() {
		_spec.ClearField(generatedcode.FieldCodeMetadata, field.TypeJSON)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcode.ProjectTable,
			Columns: []string{generatedcode.ProjectColumn},
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
			Table:   generatedcode.ProjectTable,
			Columns: []string{generatedcode.ProjectColumn},
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
	if _u.mutation.StageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcode.StageTable,
			Columns: []string{generatedcode.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcode.StageTable,
			Columns: []string{generatedcode.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GeneratedCode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedcode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
