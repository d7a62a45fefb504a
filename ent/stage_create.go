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

// StageCreate is the builder for creating a Stage entity.
type StageCreate struct {
	config
	mutation *StageMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *StageCreate) SetProjectID(v int) *StageCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStageNumber sets the "stage_number" field.
func (_c *StageCreate) SetStageNumber(v int) *StageCreate {
	_c.mutation.SetStageNumber(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageCreate) SetStageName(v string) *StageCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetStageType sets the "stage_type" field.
func (_c *StageCreate) SetStageType(v stage.StageType) *StageCreate {
	_c.mutation.SetStageType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StageCreate) SetDescription(v string) *StageCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StageCreate) SetNillableDescription(v *string) *StageCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOriginalLogic sets the "original_logic" field.
func (_c *StageCreate) SetOriginalLogic(v string) *StageCreate {
	_c.mutation.SetOriginalLogic(v)
	return _c
}

// SetEditedLogic sets the "edited_logic" field.
func (_c *StageCreate) SetEditedLogic(v string) *StageCreate {
	_c.mutation.SetEditedLogic(v)
	return _c
}

// SetNillableEditedLogic sets the "edited_logic" field if the given value is not nil.
func (_c *StageCreate) SetNillableEditedLogic(v *string) *StageCreate {
	if v != nil {
		_c.SetEditedLogic(*v)
	}
	return _c
}

// SetIsValidated sets the "is_validated" field.
func (_c *StageCreate) SetIsValidated(v bool) *StageCreate {
	_c.mutation.SetIsValidated(v)
	return _c
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_c *StageCreate) SetNillableIsValidated(v *bool) *StageCreate {
	if v != nil {
		_c.SetIsValidated(*v)
	}
	return _c
}

// SetIsFinalized sets the "is_finalized" field.
func (_c *StageCreate) SetIsFinalized(v bool) *StageCreate {
	_c.mutation.SetIsFinalized(v)
	return _c
}

// SetNillableIsFinalized sets the "is_finalized" field if the given value is not nil.
func (_c *StageCreate) SetNillableIsFinalized(v *bool) *StageCreate {
	if v != nil {
		_c.SetIsFinalized(*v)
	}
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *StageCreate) SetDependencies(v []models.StageDependency) *StageCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *StageCreate) SetVersionNumber(v string) *StageCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_c *StageCreate) SetNillableVersionNumber(v *string) *StageCreate {
	if v != nil {
		_c.SetVersionNumber(*v)
	}
	return _c
}

// SetLastAction sets the "last_action" field.
func (_c *StageCreate) SetLastAction(v string) *StageCreate {
	_c.mutation.SetLastAction(v)
	return _c
}

// SetNillableLastAction sets the "last_action" field if the given value is not nil.
func (_c *StageCreate) SetNillableLastAction(v *string) *StageCreate {
	if v != nil {
		_c.SetLastAction(*v)
	}
	return _c
}

// SetLastActionTimestamp sets the "last_action_timestamp" field.
func (_c *StageCreate) SetLastActionTimestamp(v time.Time) *StageCreate {
	_c.mutation.SetLastActionTimestamp(v)
	return _c
}

// SetNillableLastActionTimestamp sets the "last_action_timestamp" field if the given value is not nil.
func (_c *StageCreate) SetNillableLastActionTimestamp(v *time.Time) *StageCreate {
	if v != nil {
		_c.SetLastActionTimestamp(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageCreate) SetCreatedAt(v time.Time) *StageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StageCreate) SetUpdatedAt(v time.Time) *StageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *StageCreate) SetProject(v *Project) *StageCreate {
	return _c.SetProjectID(v.ID)
}

// AddCodeIDs adds the "codes" edge to the GeneratedCode entity by IDs.
func (_c *StageCreate) AddCodeIDs(ids ...int) *StageCreate {
	_c.mutation.AddCodeIDs(ids...)
	return _c
}

// AddCodes adds the "codes" edges to the GeneratedCode entity.
func (_c *StageCreate) AddCodes(v ...*GeneratedCode) *StageCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCodeIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_c *StageCreate) Mutation() *StageMutation {
	return _c.mutation
}

// Save creates the Stage in the database.
func (_c *StageCreate) Save(ctx context.Context) (*Stage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageCreate) SaveX(ctx context.Context) *Stage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageCreate) defaults() {
	if _, ok := _c.mutation.IsValidated(); !ok {
		v := stage.DefaultIsValidated
		_c.mutation.SetIsValidated(v)
	}
	if _, ok := _c.mutation.IsFinalized(); !ok {
		v := stage.DefaultIsFinalized
		_c.mutation.SetIsFinalized(v)
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		v := stage.DefaultVersionNumber
		_c.mutation.SetVersionNumber(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Stage.project_id"`)}
	}
	if _, ok := _c.mutation.StageNumber(); !ok {
		return &ValidationError{Name: "stage_number", err: errors.New(`ent: missing required field "Stage.stage_number"`)}
	}
	if v, ok := _c.mutation.StageNumber(); ok {
		if err := stage.StageNumberValidator(v); err != nil {
			return &ValidationError{Name: "stage_number", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "Stage.stage_name"`)}
	}
	if v, ok := _c.mutation.StageName(); ok {
		if err := stage.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageType(); !ok {
		return &ValidationError{Name: "stage_type", err: errors.New(`ent: missing required field "Stage.stage_type"`)}
	}
	if v, ok := _c.mutation.StageType(); ok {
		if err := stage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalLogic(); !ok {
		return &ValidationError{Name: "original_logic", err: errors.New(`ent: missing required field "Stage.original_logic"`)}
	}
	if _, ok := _c.mutation.IsValidated(); !ok {
		return &ValidationError{Name: "is_validated", err: errors.New(`ent: missing required field "Stage.is_validated"`)}
	}
	if _, ok := _c.mutation.IsFinalized(); !ok {
		return &ValidationError{Name: "is_finalized", err: errors.New(`ent: missing required field "Stage.is_finalized"`)}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "Stage.version_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Stage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Stage.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Stage.project"`)}
	}
	return nil
}

func (_c *StageCreate) sqlSave(ctx context.Context) (*Stage, error) {
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

func (_c *StageCreate) createSpec() (*Stage, *sqlgraph.CreateSpec) {
	var (
		_node = &Stage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stage.Table, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StageNumber(); ok {
		_spec.SetField(stage.FieldStageNumber, field.TypeInt, value)
		_node.StageNumber = value
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stage.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.StageType(); ok {
		_spec.SetField(stage.FieldStageType, field.TypeEnum, value)
		_node.StageType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(stage.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.OriginalLogic(); ok {
		_spec.SetField(stage.FieldOriginalLogic, field.TypeString, value)
		_node.OriginalLogic = value
	}
	if value, ok := _c.mutation.EditedLogic(); ok {
		_spec.SetField(stage.FieldEditedLogic, field.TypeString, value)
		_node.EditedLogic = value
	}
	if value, ok := _c.mutation.IsValidated(); ok {
		_spec.SetField(stage.FieldIsValidated, field.TypeBool, value)
		_node.IsValidated = value
	}
	if value, ok := _c.mutation.IsFinalized(); ok {
		_spec.SetField(stage.FieldIsFinalized, field.TypeBool, value)
		_node.IsFinalized = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(stage.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(stage.FieldVersionNumber, field.TypeString, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.LastAction(); ok {
		_spec.SetField(stage.FieldLastAction, field.TypeString, value)
		_node.LastAction = value
	}
	if value, ok := _c.mutation.LastActionTimestamp(); ok {
		_spec.SetField(stage.FieldLastActionTimestamp, field.TypeTime, value)
		_node.LastActionTimestamp = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.ProjectTable,
			Columns: []string{stage.ProjectColumn},
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
	if nodes := _c.mutation.CodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.CodesTable,
			Columns: []string{stage.CodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageCreateBulk is the builder for creating many Stage entities in bulk.
type StageCreateBulk struct {
	config
	err      error
	builders []*StageCreate
}

// Save creates the Stage entities in the database.
func (_c *StageCreateBulk) Save(ctx context.Context) ([]*Stage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageMutation)
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
func (_c *StageCreateBulk) SaveX(ctx context.Context) []*Stage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
