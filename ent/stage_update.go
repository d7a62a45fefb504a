// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// StageUpdate is the builder for updating Stage entities.
type StageUpdate struct {
	config
	hooks    []Hook
	mutation *StageMutation
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdate) Where(ps ...predicate.Stage) *StageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *StageUpdate) SetProjectID(v int) *StageUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *StageUpdate) SetNillableProjectID(v *int) *StageUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStageNumber sets the "stage_number" field.
func (_u *StageUpdate) SetStageNumber(v int) *StageUpdate {
	_u.mutation.ResetStageNumber()
	_u.mutation.SetStageNumber(v)
	return _u
}

// SetNillableStageNumber sets the "stage_number" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStageNumber(v *int) *StageUpdate {
	if v != nil {
		_u.SetStageNumber(*v)
	}
	return _u
}

// AddStageNumber adds value to the "stage_number" field.
func (_u *StageUpdate) AddStageNumber(v int) *StageUpdate {
	_u.mutation.AddStageNumber(v)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageUpdate) SetStageName(v string) *StageUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStageName(v *string) *StageUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageType sets the "stage_type" field.
func (_u *StageUpdate) SetStageType(v stage.StageType) *StageUpdate {
	_u.mutation.SetStageType(v)
	return _u
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStageType(v *stage.StageType) *StageUpdate {
	if v != nil {
		_u.SetStageType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StageUpdate) SetDescription(v string) *StageUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StageUpdate) SetNillableDescription(v *string) *StageUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StageUpdate) ClearDescription() *StageUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetEditedLogic sets the "edited_logic" field.
func (_u *StageUpdate) SetEditedLogic(v string) *StageUpdate {
	_u.mutation.SetEditedLogic(v)
	return _u
}

// SetNillableEditedLogic sets the "edited_logic" field if the given value is not nil.
func (_u *StageUpdate) SetNillableEditedLogic(v *string) *StageUpdate {
	if v != nil {
		_u.SetEditedLogic(*v)
	}
	return _u
}

// ClearEditedLogic clears the value of the "edited_logic" field.
func (_u *StageUpdate) ClearEditedLogic() *StageUpdate {
	_u.mutation.ClearEditedLogic()
	return _u
}

// SetIsValidated sets the "is_validated" field.
func (_u *StageUpdate) SetIsValidated(v bool) *StageUpdate {
	_u.mutation.SetIsValidated(v)
	return _u
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_u *StageUpdate) SetNillableIsValidated(v *bool) *StageUpdate {
	if v != nil {
		_u.SetIsValidated(*v)
	}
	return _u
}

// SetIsFinalized sets the "is_finalized" field.
func (_u *StageUpdate) SetIsFinalized(v bool) *StageUpdate {
	_u.mutation.SetIsFinalized(v)
	return _u
}

// SetNillableIsFinalized sets the "is_finalized" field if the given value is not nil.
func (_u *StageUpdate) SetNillableIsFinalized(v *bool) *StageUpdate {
	if v != nil {
		_u.SetIsFinalized(*v)
	}
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *StageUpdate) SetDependencies(v []models.StageDependency) *StageUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *StageUpdate) AppendDependencies(v []models.StageDependency) *StageUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *StageUpdate) ClearDependencies() *StageUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *StageUpdate) SetVersionNumber(v string) *StageUpdate {
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *StageUpdate) SetNillableVersionNumber(v *string) *StageUpdate {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// SetLastAction sets the "last_action" field.
func (_u *StageUpdate) SetLastAction(v string) *StageUpdate {
	_u.mutation.SetLastAction(v)
	return _u
}

// SetNillableLastAction sets the "last_action" field if the given value is not nil.
func (_u *StageUpdate) SetNillableLastAction(v *string) *StageUpdate {
	if v != nil {
		_u.SetLastAction(*v)
	}
	return _u
}

// ClearLastAction clears the value of the "last_action" field.
func (_u *StageUpdate) ClearLastAction() *StageUpdate {
	_u.mutation.ClearLastAction()
	return _u
}

// SetLastActionTimestamp sets the "last_action_timestamp" field.
func (_u *StageUpdate) SetLastActionTimestamp(v time.Time) *StageUpdate {
	_u.mutation.SetLastActionTimestamp(v)
	return _u
}

// SetNillableLastActionTimestamp sets the "last_action_timestamp" field if the given value is not nil.
func (_u *StageUpdate) SetNillableLastActionTimestamp(v *time.Time) *StageUpdate {
	if v != nil {
		_u.SetLastActionTimestamp(*v)
	}
	return _u
}

// ClearLastActionTimestamp clears the value of the "last_action_timestamp" field.
func (_u *StageUpdate) ClearLastActionTimestamp() *StageUpdate {
	_u.mutation.ClearLastActionTimestamp()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageUpdate) SetUpdatedAt(v time.Time) *StageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *StageUpdate) SetNillableUpdatedAt(v *time.Time) *StageUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *StageUpdate) SetProject(v *Project) *StageUpdate {
	return _u.SetProjectID(v.ID)
}

// AddCodeIDs adds the "codes" edge to the GeneratedCode entity by IDs.
func (_u *StageUpdate) AddCodeIDs(ids ...int) *StageUpdate {
	_u.mutation.AddCodeIDs(ids...)
	return _u
}

// AddCodes adds the "codes" edges to the GeneratedCode entity.
func (_u *StageUpdate) AddCodes(v ...*GeneratedCode) *StageUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCodeIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdate) Mutation() *StageMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *StageUpdate) ClearProject() *StageUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearCodes clears all "codes" edges to the GeneratedCode entity.
func (_u *StageUpdate) ClearCodes() *StageUpdate {
	_u.mutation.ClearCodes()
	return _u
}

// RemoveCodeIDs removes the "codes" edge to GeneratedCode entities by IDs.
func (_u *StageUpdate) RemoveCodeIDs(ids ...int) *StageUpdate {
	_u.mutation.RemoveCodeIDs(ids...)
	return _u
}

// RemoveCodes removes "codes" edges to GeneratedCode entities.
func (_u *StageUpdate) RemoveCodes(v ...*GeneratedCode) *StageUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCodeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdate) check() error {
	if v, ok := _u.mutation.StageNumber(); ok {
		if err := stage.StageNumberValidator(v); err != nil {
			return &ValidationError{Name: "stage_number", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageName(); ok {
		if err := stage.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageType(); ok {
		if err := stage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.project"`)
	}
	return nil
}

func (_u *StageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageNumber(); ok {
		_spec.SetField(stage.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageNumber(); ok {
		_spec.AddField(stage.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stage.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageType(); ok {
		_spec.SetField(stage.FieldStageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(stage.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(stage.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EditedLogic(); ok {
		_spec.SetField(stage.FieldEditedLogic, field.TypeString, value)
	}
	if _u.mutation.EditedLogicCleared() {
		_spec.ClearField(stage.FieldEditedLogic, field.TypeString)
	}
	if value, ok := _u.mutation.IsValidated(); ok {
		_spec.SetField(stage.FieldIsValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFinalized(); ok {
		_spec.SetField(stage.FieldIsFinalized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(stage.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stage.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(stage.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(stage.FieldVersionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastAction(); ok {
		_spec.SetField(stage.FieldLastAction, field.TypeString, value)
	}
	if _u.mutation.LastActionCleared() {
		_spec.ClearField(stage.FieldLastAction, field.TypeString)
	}
	if value, ok := _u.mutation.LastActionTimestamp(); ok {
		_spec.SetField(stage.FieldLastActionTimestamp, field.TypeTime, value)
	}
	if _u.mutation.LastActionTimestampCleared() {
		_spec.ClearField(stage.FieldLastActionTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCodesIDs(); len(nodes) > 0 && !_u.mutation.CodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageUpdateOne is the builder for updating a single Stage entity.
type StageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageMutation
}

// SetProjectID sets the "project_id" field.
func (_u *StageUpdateOne) SetProjectID(v int) *StageUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableProjectID(v *int) *StageUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStageNumber sets the "stage_number" field.
func (_u *StageUpdateOne) SetStageNumber(v int) *StageUpdateOne {
	_u.mutation.ResetStageNumber()
	_u.mutation.SetStageNumber(v)
	return _u
}

// SetNillableStageNumber sets the "stage_number" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStageNumber(v *int) *StageUpdateOne {
	if v != nil {
		_u.SetStageNumber(*v)
	}
	return _u
}

// AddStageNumber adds value to the "stage_number" field.
func (_u *StageUpdateOne) AddStageNumber(v int) *StageUpdateOne {
	_u.mutation.AddStageNumber(v)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageUpdateOne) SetStageName(v string) *StageUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStageName(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageType sets the "stage_type" field.
func (_u *StageUpdateOne) SetStageType(v stage.StageType) *StageUpdateOne {
	_u.mutation.SetStageType(v)
	return _u
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStageType(v *stage.StageType) *StageUpdateOne {
	if v != nil {
		_u.SetStageType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StageUpdateOne) SetDescription(v string) *StageUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableDescription(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StageUpdateOne) ClearDescription() *StageUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetEditedLogic sets the "edited_logic" field.
func (_u *StageUpdateOne) SetEditedLogic(v string) *StageUpdateOne {
	_u.mutation.SetEditedLogic(v)
	return _u
}

// SetNillableEditedLogic sets the "edited_logic" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableEditedLogic(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetEditedLogic(*v)
	}
	return _u
}

// ClearEditedLogic clears the value of the "edited_logic" field.
func (_u *StageUpdateOne) ClearEditedLogic() *StageUpdateOne {
	_u.mutation.ClearEditedLogic()
	return _u
}

// SetIsValidated sets the "is_validated" field.
func (_u *StageUpdateOne) SetIsValidated(v bool) *StageUpdateOne {
	_u.mutation.SetIsValidated(v)
	return _u
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableIsValidated(v *bool) *StageUpdateOne {
	if v != nil {
		_u.SetIsValidated(*v)
	}
	return _u
}

// SetIsFinalized sets the "is_finalized" field.
func (_u *StageUpdateOne) SetIsFinalized(v bool) *StageUpdateOne {
	_u.mutation.SetIsFinalized(v)
	return _u
}

// SetNillableIsFinalized sets the "is_finalized" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableIsFinalized(v *bool) *StageUpdateOne {
	if v != nil {
		_u.SetIsFinalized(*v)
	}
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *StageUpdateOne) SetDependencies(v []models.StageDependency) *StageUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *StageUpdateOne) AppendDependencies(v []models.StageDependency) *StageUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *StageUpdateOne) ClearDependencies() *StageUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *StageUpdateOne) SetVersionNumber(v string) *StageUpdateOne {
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableVersionNumber(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// SetLastAction sets the "last_action" field.
func (_u *StageUpdateOne) SetLastAction(v string) *StageUpdateOne {
	_u.mutation.SetLastAction(v)
	return _u
}

// SetNillableLastAction sets the "last_action" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableLastAction(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetLastAction(*v)
	}
	return _u
}

// ClearLastAction clears the value of the "last_action" field.
func (_u *StageUpdateOne) ClearLastAction() *StageUpdateOne {
	_u.mutation.ClearLastAction()
	return _u
}

// SetLastActionTimestamp sets the "last_action_timestamp" field.
func (_u *StageUpdateOne) SetLastActionTimestamp(v time.Time) *StageUpdateOne {
	_u.mutation.SetLastActionTimestamp(v)
	return _u
}

// SetNillableLastActionTimestamp sets the "last_action_timestamp" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableLastActionTimestamp(v *time.Time) *StageUpdateOne {
	if v != nil {
		_u.SetLastActionTimestamp(*v)
	}
	return _u
}

// ClearLastActionTimestamp clears the value of the "last_action_timestamp" field.
func (_u *StageUpdateOne) ClearLastActionTimestamp() *StageUpdateOne {
	_u.mutation.ClearLastActionTimestamp()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageUpdateOne) SetUpdatedAt(v time.Time) *StageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableUpdatedAt(v *time.Time) *StageUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *StageUpdateOne) SetProject(v *Project) *StageUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddCodeIDs adds the "codes" edge to the GeneratedCode entity by IDs.
func (_u *StageUpdateOne) AddCodeIDs(ids ...int) *StageUpdateOne {
	_u.mutation.AddCodeIDs(ids...)
	return _u
}

// AddCodes adds the "codes" edges to the GeneratedCode entity.
func (_u *StageUpdateOne) AddCodes(v ...*GeneratedCode) *StageUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCodeIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdateOne) Mutation() *StageMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *StageUpdateOne) ClearProject() *StageUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearCodes clears all "codes" edges to the GeneratedCode entity.
func (_u *StageUpdateOne) ClearCodes() *StageUpdateOne {
	_u.mutation.ClearCodes()
	return _u
}

// RemoveCodeIDs removes the "codes" edge to GeneratedCode entities by IDs.
func (_u *StageUpdateOne) RemoveCodeIDs(ids ...int) *StageUpdateOne {
	_u.mutation.RemoveCodeIDs(ids...)
	return _u
}

// RemoveCodes removes "codes" edges to GeneratedCode entities.
func (_u *StageUpdateOne) RemoveCodes(v ...*GeneratedCode) *StageUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCodeIDs(ids...)
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdateOne) Where(ps ...predicate.Stage) *StageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageUpdateOne) Select(field string, fields ...string) *StageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stage entity.
func (_u *StageUpdateOne) Save(ctx context.Context) (*Stage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdateOne) SaveX(ctx context.Context) *Stage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdateOne) check() error {
	if v, ok := _u.mutation.StageNumber(); ok {
		if err := stage.StageNumberValidator(v); err != nil {
			return &ValidationError{Name: "stage_number", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageName(); ok {
		if err := stage.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageType(); ok {
		if err := stage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "Stage.stage_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.project"`)
	}
	return nil
}

func (_u *StageUpdateOne) sqlSave(ctx context.Context) (_node *Stage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stage.FieldID)
		for _, f := range fields {
			if !stage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stage.FieldID {
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
	if value, ok := _u.mutation.StageNumber(); ok {
		_spec.SetField(stage.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageNumber(); ok {
		_spec.AddField(stage.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stage.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageType(); ok {
		_spec.SetField(stage.FieldStageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(stage.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(stage.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EditedLogic(); ok {
		_spec.SetField(stage.FieldEditedLogic, field.TypeString, value)
	}
	if _u.mutation.EditedLogicCleared() {
		_spec.ClearField(stage.FieldEditedLogic, field.TypeString)
	}
	if value, ok := _u.mutation.IsValidated(); ok {
		_spec.SetField(stage.FieldIsValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFinalized(); ok {
		_spec.SetField(stage.FieldIsFinalized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(stage.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stage.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(stage.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(stage.FieldVersionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastAction(); ok {
		_spec.SetField(stage.FieldLastAction, field.TypeString, value)
	}
	if _u.mutation.LastActionCleared() {
		_spec.ClearField(stage.FieldLastAction, field.TypeString)
	}
	if value, ok := _u.mutation.LastActionTimestamp(); ok {
		_spec.SetField(stage.FieldLastActionTimestamp, field.TypeTime, value)
	}
	if _u.mutation.LastActionTimestampCleared() {
		_spec.ClearField(stage.FieldLastActionTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCodesIDs(); len(nodes) > 0 && !_u.mutation.CodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Stage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
