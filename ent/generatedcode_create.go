// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexus-controls/plcforge/ent/generatedcode"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/stage"
	"github.com/nexus-controls/plcforge/pkg/models"
)

// GeneratedCodeCreate is the builder for creating a GeneratedCode entity.
type GeneratedCodeCreate struct {
	config
	mutation *GeneratedCodeMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *GeneratedCodeCreate) SetProjectID(v int) *GeneratedCodeCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *GeneratedCodeCreate) SetStageID(v int) *GeneratedCodeCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetGlobalLabels sets the "global_labels" field.
func (_c *GeneratedCodeCreate) SetGlobalLabels(v []models.Label) *GeneratedCodeCreate {
	_c.mutation.SetGlobalLabels(v)
	return _c
}

// SetLocalLabels sets the "local_labels" field.
func (_c *GeneratedCodeCreate) SetLocalLabels(v []models.Label) *GeneratedCodeCreate {
	_c.mutation.SetLocalLabels(v)
	return _c
}

// SetProgramBody sets the "program_body" field.
func (_c *GeneratedCodeCreate) SetProgramBody(v string) *GeneratedCodeCreate {
	_c.mutation.SetProgramBody(v)
	return _c
}

// SetNillableProgramBody sets the "program_body" field if the given value is not nil.
func (_c *GeneratedCodeCreate) SetNillableProgramBody(v *string) *GeneratedCodeCreate {
	if v != nil {
		_c.SetProgramBody(*v)
	}
	return _c
}

// SetProgramBlocks sets the "program_blocks" field.
func (_c *GeneratedCodeCreate) SetProgramBlocks(v []models.ProgramBlock) *GeneratedCodeCreate {
	_c.mutation.SetProgramBlocks(v)
	return _c
}

// SetFunctions sets the "functions" field.
func (_c *GeneratedCodeCreate) SetFunctions(v []models.Function) *GeneratedCodeCreate {
	_c.mutation.SetFunctions(v)
	return _c
}

// SetFunctionBlocks sets the "function_blocks" field.
func (_c *GeneratedCodeCreate) SetFunctionBlocks(v []models.FunctionBlock) *GeneratedCodeCreate {
	_c.mutation.SetFunctionBlocks(v)
	return _c
}

// SetProgramName sets the "program_name" field.
func (_c *GeneratedCodeCreate) SetProgramName(v string) *GeneratedCodeCreate {
	_c.mutation.SetProgramName(v)
	return _c
}

// SetExecutionType sets the "execution_type" field.
func (_c *GeneratedCodeCreate) SetExecutionType(v generatedcode.ExecutionType) *GeneratedCodeCreate {
	_c.mutation.SetExecutionType(v)
	return _c
}

// SetNillableExecutionType sets the "execution_type" field if the given value is not nil.
func (_c *GeneratedCodeCreate) SetNillableExecutionType(v *generatedcode.ExecutionType) *GeneratedCodeCreate {
	if v != nil {
		_c.SetExecutionType(*v)
	}
	return _c
}

// SetCodeMetadata sets the "code_metadata" field.
func (_c *GeneratedCodeCreate) SetCodeMetadata(v map[string]interface{}) *GeneratedCodeCreate {
	_c.mutation.SetCodeMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneratedCodeCreate) SetCreatedAt(v time.Time) *GeneratedCodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *GeneratedCodeCreate) SetProject(v *Project) *GeneratedCodeCreate {
	return _c.SetProjectID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_c *GeneratedCodeCreate) SetStage(v *Stage) *GeneratedCodeCreate {
	return _c.SetStageID(v.ID)
}

// Mutation returns the GeneratedCodeMutation object of the builder.
func (_c *GeneratedCodeCreate) Mutation() *GeneratedCodeMutation {
	return _c.mutation
}

// Save creates the GeneratedCode in the database.
func (_c *GeneratedCodeCreate) Save(ctx context.Context) (*GeneratedCode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedCodeCreate) SaveX(ctx context.Context) *GeneratedCode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedCodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedCodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedCodeCreate) defaults() {
	if _, ok := _c.mutation.ExecutionType(); !ok {
		v := generatedcode.DefaultExecutionType
		_c.mutation.SetExecutionType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedCodeCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "GeneratedCode.project_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "GeneratedCode.stage_id"`)}
	}
	if _, ok := _c.mutation.ProgramName(); !ok {
		return &ValidationError{Name: "program_name", err: errors.New(`ent: missing required field "GeneratedCode.program_name"`)}
	}
	if _, ok := _c.mutation.ExecutionType(); !ok {
		return &ValidationError{Name: "execution_type", err: errors.New(`ent: missing required field "GeneratedCode.execution_type"`)}
	}
	if v, ok := _c.mutation.ExecutionType(); ok {
		if err := generatedcode.ExecutionTypeValidator(v); err != nil {
			return &ValidationError{Name: "execution_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedCode.execution_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneratedCode.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "GeneratedCode.project"`)}
	}
	if len(_c.mutation.StageIDs()) == 0 {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required edge "GeneratedCode.stage"`)}
	}
	return nil
}

func (_c *GeneratedCodeCreate) sqlSave(ctx context.Context) (*GeneratedCode, error) {
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

func (_c *GeneratedCodeCreate) createSpec() (*GeneratedCode, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedCode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedcode.Table, sqlgraph.NewFieldSpec(generatedcode.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GlobalLabels(); ok {
		_spec.SetField(generatedcode.FieldGlobalLabels, field.TypeJSON, value)
		_node.GlobalLabels = value
	}
	if value, ok := _c.mutation.LocalLabels(); ok {
		_spec.SetField(generatedcode.FieldLocalLabels, field.TypeJSON, value)
		_node.LocalLabels = value
	}
	if value, ok := _c.mutation.ProgramBody(); ok {
		_spec.SetField(generatedcode.FieldProgramBody, field.TypeString, value)
		_node.ProgramBody = value
	}
	if value, ok := _c.mutation.ProgramBlocks(); ok {
		_spec.SetField(generatedcode.FieldProgramBlocks, field.TypeJSON, value)
		_node.ProgramBlocks = value
	}
	if value, ok := _c.mutation.Functions(); ok {
		_spec.SetField(generatedcode.FieldFunctions, field.TypeJSON, value)
		_node.Functions = value
	}
	if value, ok := _c.mutation.FunctionBlocks(); ok {
		_spec.SetField(generatedcode.FieldFunctionBlocks, field.TypeJSON, value)
		_node.FunctionBlocks = value
	}
	if value, ok := _c.mutation.ProgramName(); ok {
		_spec.SetField(generatedcode.FieldProgramName, field.TypeString, value)
		_node.ProgramName = value
	}
	if value, ok := _c.mutation.ExecutionType(); ok {
		_spec.SetField(generatedcode.FieldExecutionType, field.TypeEnum, value)
		_node.ExecutionType = value
	}
	if value, ok := _c.mutation.CodeMetadata(); ok {
		_spec.SetField(generatedcode.FieldCodeMetadata, field.TypeJSON, value)
		_node.CodeMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generatedcode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
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
		_node.StageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GeneratedCodeCreateBulk is the builder for creating many GeneratedCode entities in bulk.
type GeneratedCodeCreateBulk struct {
	config
	err      error
	builders []*GeneratedCodeCreate
}

// Save creates the GeneratedCode entities in the database.
func (_c *GeneratedCodeCreateBulk) Save(ctx context.Context) ([]*GeneratedCode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedCode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedCodeMutation)
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
func (_c *GeneratedCodeCreateBulk) SaveX(ctx context.Context) []*GeneratedCode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedCodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedCodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
