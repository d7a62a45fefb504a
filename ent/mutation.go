// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexus-controls/plcforge/ent/generatedcode"
	"github.com/nexus-controls/plcforge/ent/predicate"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/safetymanual"
	"github.com/nexus-controls/plcforge/ent/stage"
	"github.com/nexus-controls/plcforge/ent/uploadedfile"
	"github.com/nexus-controls/plcforge/ent/versionentry"
	"github.com/nexus-controls/plcforge/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGeneratedCode = "GeneratedCode"
	TypeProject       = "Project"
	TypeSafetyManual  = "SafetyManual"
	TypeStage         = "Stage"
	TypeUploadedFile  = "UploadedFile"
	TypeVersionEntry  = "VersionEntry"
)

// GeneratedCodeMutation represents an operation that mutates the GeneratedCode nodes in the graph.
type GeneratedCodeMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	global_labels         *[]models.Label
	appendglobal_labels   []models.Label
	local_labels          *[]models.Label
	appendlocal_labels    []models.Label
	program_body          *string
	program_blocks        *[]models.ProgramBlock
	appendprogram_blocks  []models.ProgramBlock
	functions             *[]models.Function
	appendfunctions       []models.Function
	function_blocks       *[]models.FunctionBlock
	appendfunction_blocks []models.FunctionBlock
	program_name          *string
	execution_type        *generatedcode.ExecutionType
	code_metadata         *map[string]interface{}
	created_at            *time.Time
	clearedFields         map[string]struct{}
	project               *int
	clearedproject        bool
	stage                 *int
	clearedstage          bool
	done                  bool
	oldValue              func(context.Context) (*GeneratedCode, error)
	predicates            []predicate.GeneratedCode
}

var _ ent.Mutation = (*GeneratedCodeMutation)(nil)

// generatedcodeOption allows management of the mutation configuration using functional options.
type generatedcodeOption func(*GeneratedCodeMutation)

// newGeneratedCodeMutation creates new mutation for the GeneratedCode entity.
func newGeneratedCodeMutation(c config, op Op, opts ...generatedcodeOption) *GeneratedCodeMutation {
	m := &GeneratedCodeMutation{
		config:        c,
		op:            op,
		typ:           TypeGeneratedCode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGeneratedCodeID sets the ID field of the mutation.
func withGeneratedCodeID(id int) generatedcodeOption {
	return func(m *GeneratedCodeMutation) {
		var (
			err   error
			once  sync.Once
			value *GeneratedCode
		)
		m.oldValue = func(ctx context.Context) (*GeneratedCode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GeneratedCode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeneratedCode sets the old GeneratedCode of the mutation.
func withGeneratedCode(node *GeneratedCode) generatedcodeOption {
	return func(m *GeneratedCodeMutation) {
		m.oldValue = func(context.Context) (*GeneratedCode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GeneratedCodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GeneratedCodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GeneratedCodeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GeneratedCodeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GeneratedCode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *GeneratedCodeMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *GeneratedCodeMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *GeneratedCodeMutation) ResetProjectID() {
	m.project = nil
}

// SetStageID sets the "stage_id" field.
func (m *GeneratedCodeMutation) SetStageID(i int) {
	m.stage = &i
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *GeneratedCodeMutation) StageID() (r int, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldStageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *GeneratedCodeMutation) ResetStageID() {
	m.stage = nil
}

// SetGlobalLabels sets the "global_labels" field.
func (m *GeneratedCodeMutation) SetGlobalLabels(value []models.Label) {
	m.global_labels = &value
	m.appendglobal_labels = nil
}

// GlobalLabels returns the value of the "global_labels" field in the mutation.
func (m *GeneratedCodeMutation) GlobalLabels() (r []models.Label, exists bool) {
	v := m.global_labels
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalLabels returns the old "global_labels" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldGlobalLabels(ctx context.Context) (v []models.Label, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalLabels: %w", err)
	}
	return oldValue.GlobalLabels, nil
}

// AppendGlobalLabels adds value to the "global_labels" field.
func (m *GeneratedCodeMutation) AppendGlobalLabels(value []models.Label) {
	m.appendglobal_labels = append(m.appendglobal_labels, value...)
}

// AppendedGlobalLabels returns the list of values that were appended to the "global_labels" field in this mutation.
func (m *GeneratedCodeMutation) AppendedGlobalLabels() ([]models.Label, bool) {
	if len(m.appendglobal_labels) == 0 {
		return nil, false
	}
	return m.appendglobal_labels, true
}

// ClearGlobalLabels clears the value of the "global_labels" field.
func (m *GeneratedCodeMutation) ClearGlobalLabels() {
	m.global_labels = nil
	m.appendglobal_labels = nil
	m.clearedFields[generatedcode.FieldGlobalLabels] = struct{}{}
}

// GlobalLabelsCleared returns if the "global_labels" field was cleared in this mutation.
func (m *GeneratedCodeMutation) GlobalLabelsCleared() bool {
	_, ok := m.clearedFields[generatedcode.FieldGlobalLabels]
	return ok
}

// ResetGlobalLabels resets all changes to the "global_labels" field.
func (m *GeneratedCodeMutation) ResetGlobalLabels() {
	m.global_labels = nil
	m.appendglobal_labels = nil
	delete(m.clearedFields, generatedcode.FieldGlobalLabels)
}

// SetLocalLabels sets the "local_labels" field.
func (m *GeneratedCodeMutation) SetLocalLabels(value []models.Label) {
	m.local_labels = &value
	m.appendlocal_labels = nil
}

// LocalLabels returns the value of the "local_labels" field in the mutation.
func (m *GeneratedCodeMutation) LocalLabels() (r []models.Label, exists bool) {
	v := m.local_labels
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalLabels returns the old "local_labels" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldLocalLabels(ctx context.Context) (v []models.Label, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalLabels: %w", err)
	}
	return oldValue.LocalLabels, nil
}

// AppendLocalLabels adds value to the "local_labels" field.
func (m *GeneratedCodeMutation) AppendLocalLabels(value []models.Label) {
	m.appendlocal_labels = append(m.appendlocal_labels, value...)
}

// AppendedLocalLabels returns the list of values that were appended to the "local_labels" field in this mutation.
func (m *GeneratedCodeMutation) AppendedLocalLabels() ([]models.Label, bool) {
	if len(m.appendlocal_labels) == 0 {
		return nil, false
	}
	return m.appendlocal_labels, true
}

// ClearLocalLabels clears the value of the "local_labels" field.
func (m *GeneratedCodeMutation) ClearLocalLabels() {
	m.local_labels = nil
	m.appendlocal_labels = nil
	m.clearedFields[generatedcode.FieldLocalLabels] = struct{}{}
}

// LocalLabelsCleared returns if the "local_labels" field was cleared in this mutation.
func (m *GeneratedCodeMutation) LocalLabelsCleared() bool {
	_, ok := m.clearedFields[generatedcode.FieldLocalLabels]
	return ok
}

// ResetLocalLabels resets all changes to the "local_labels" field.
func (m *GeneratedCodeMutation) ResetLocalLabels() {
	m.local_labels = nil
	m.appendlocal_labels = nil
	delete(m.clearedFields, generatedcode.FieldLocalLabels)
}

// SetProgramBody sets the "program_body" field.
func (m *GeneratedCodeMutation) SetProgramBody(s string) {
	m.program_body = &s
}

// ProgramBody returns the value of the "program_body" field in the mutation.
func (m *GeneratedCodeMutation) ProgramBody() (r string, exists bool) {
	v := m.program_body
	if v == nil {
		return
	}
	return *v, true
}

// OldProgramBody returns the old "program_body" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldProgramBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgramBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgramBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgramBody: %w", err)
	}
	return oldValue.ProgramBody, nil
}

// ClearProgramBody clears the value of the "program_body" field.
func (m *GeneratedCodeMutation) ClearProgramBody() {
	m.program_body = nil
	m.clearedFields[generatedcode.FieldProgramBody] = struct{}{}
}

// ProgramBodyCleared returns if the "program_body" field was cleared in this mutation.
func (m *GeneratedCodeMutation) ProgramBodyCleared() bool {
	_, ok := m.clearedFields[generatedcode.FieldProgramBody]
	return ok
}

// ResetProgramBody resets all changes to the "program_body" field.
func (m *GeneratedCodeMutation) ResetProgramBody() {
	m.program_body = nil
	delete(m.clearedFields, generatedcode.FieldProgramBody)
}

// SetProgramBlocks sets the "program_blocks" field.
func (m *GeneratedCodeMutation) SetProgramBlocks(mb []models.ProgramBlock) {
	m.program_blocks = &mb
	m.appendprogram_blocks = nil
}

// ProgramBlocks returns the value of the "program_blocks" field in the mutation.
func (m *GeneratedCodeMutation) ProgramBlocks() (r []models.ProgramBlock, exists bool) {
	v := m.program_blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldProgramBlocks returns the old "program_blocks" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldProgramBlocks(ctx context.Context) (v []models.ProgramBlock, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgramBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgramBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgramBlocks: %w", err)
	}
	return oldValue.ProgramBlocks, nil
}

// AppendProgramBlocks adds mb to the "program_blocks" field.
func (m *GeneratedCodeMutation) AppendProgramBlocks(mb []models.ProgramBlock) {
	m.appendprogram_blocks = append(m.appendprogram_blocks, mb...)
}

// AppendedProgramBlocks returns the list of values that were appended to the "program_blocks" field in this mutation.
func (m *GeneratedCodeMutation) AppendedProgramBlocks() ([]models.ProgramBlock, bool) {
	if len(m.appendprogram_blocks) == 0 {
		return nil, false
	}
	return m.appendprogram_blocks, true
}

// ClearProgramBlocks clears the value of the "program_blocks" field.
func (m *GeneratedCodeMutation) ClearProgramBlocks() {
	m.program_blocks = nil
	m.appendprogram_blocks = nil
	m.clearedFields[generatedcode.FieldProgramBlocks] = struct{}{}
}

// ProgramBlocksCleared returns if the "program_blocks" field was cleared in this mutation.
func (m *GeneratedCodeMutation) ProgramBlocksCleared() bool {
	_, ok := m.clearedFields[generatedcode.FieldProgramBlocks]
	return ok
}

// ResetProgramBlocks resets all changes to the "program_blocks" field.
func (m *GeneratedCodeMutation) ResetProgramBlocks() {
	m.program_blocks = nil
	m.appendprogram_blocks = nil
	delete(m.clearedFields, generatedcode.FieldProgramBlocks)
}

// SetFunctions sets the "functions" field.
func (m *GeneratedCodeMutation) SetFunctions(value []models.Function) {
	m.functions = &value
	m.appendfunctions = nil
}

// Functions returns the value of the "functions" field in the mutation.
func (m *GeneratedCodeMutation) Functions() (r []models.Function, exists bool) {
	v := m.functions
	if v == nil {
		return
	}
	return *v, true
}

// OldFunctions returns the old "functions" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldFunctions(ctx context.Context) (v []models.Function, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFunctions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFunctions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFunctions: %w", err)
	}
	return oldValue.Functions, nil
}

// AppendFunctions adds value to the "functions" field.
func (m *GeneratedCodeMutation) AppendFunctions(value []models.Function) {
	m.appendfunctions = append(m.appendfunctions, value...)
}

// AppendedFunctions returns the list of values that were appended to the "functions" field in this mutation.
func (m *GeneratedCodeMutation) AppendedFunctions() ([]models.Function, bool) {
	if len(m.appendfunctions) == 0 {
		return nil, false
	}
	return m.appendfunctions, true
}

// ClearFunctions clears the value of the "functions" field.
func (m *GeneratedCodeMutation) ClearFunctions() {
	m.functions = nil
	m.appendfunctions = nil
	m.clearedFields[generatedcode.FieldFunctions] = struct{}{}
}

// FunctionsCleared returns if the "functions" field was cleared in this mutation.
func (m *GeneratedCodeMutation) FunctionsCleared() bool {
	_, ok := m.clearedFields[generatedcode.FieldFunctions]
	return ok
}

// ResetFunctions resets all changes to the "functions" field.
func (m *GeneratedCodeMutation) ResetFunctions() {
	m.functions = nil
	m.appendfunctions = nil
	delete(m.clearedFields, generatedcode.FieldFunctions)
}

// SetFunctionBlocks sets the "function_blocks" field.
func (m *GeneratedCodeMutation) SetFunctionBlocks(mb []models.FunctionBlock) {
	m.function_blocks = &mb
	m.appendfunction_blocks = nil
}

// FunctionBlocks returns the value of the "function_blocks" field in the mutation.
func (m *GeneratedCodeMutation) FunctionBlocks() (r []models.FunctionBlock, exists bool) {
	v := m.function_blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldFunctionBlocks returns the old "function_blocks" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldFunctionBlocks(ctx context.Context) (v []models.FunctionBlock, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFunctionBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFunctionBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFunctionBlocks: %w", err)
	}
	return oldValue.FunctionBlocks, nil
}

// AppendFunctionBlocks adds mb to the "function_blocks" field.
func (m *GeneratedCodeMutation) AppendFunctionBlocks(mb []models.FunctionBlock) {
	m.appendfunction_blocks = append(m.appendfunction_blocks, mb...)
}

// AppendedFunctionBlocks returns the list of values that were appended to the "function_blocks" field in this mutation.
func (m *GeneratedCodeMutation) AppendedFunctionBlocks() ([]models.FunctionBlock, bool) {
	if len(m.appendfunction_blocks) == 0 {
		return nil, false
	}
	return m.appendfunction_blocks, true
}

// ClearFunctionBlocks clears the value of the "function_blocks" field.
func (m *GeneratedCodeMutation) ClearFunctionBlocks() {
	m.function_blocks = nil
	m.appendfunction_blocks = nil
	m.clearedFields[generatedcode.FieldFunctionBlocks] = struct{}{}
}

// FunctionBlocksCleared returns if the "function_blocks" field was cleared in this mutation.
func (m *GeneratedCodeMutation) FunctionBlocksCleared() bool {
	_, ok := m.clearedFields[generatedcode.FieldFunctionBlocks]
	return ok
}

// ResetFunctionBlocks resets all changes to the "function_blocks" field.
func (m *GeneratedCodeMutation) ResetFunctionBlocks() {
	m.function_blocks = nil
	m.appendfunction_blocks = nil
	delete(m.clearedFields, generatedcode.FieldFunctionBlocks)
}

// SetProgramName sets the "program_name" field.
func (m *GeneratedCodeMutation) SetProgramName(s string) {
	m.program_name = &s
}

// ProgramName returns the value of the "program_name" field in the mutation.
func (m *GeneratedCodeMutation) ProgramName() (r string, exists bool) {
	v := m.program_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProgramName returns the old "program_name" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldProgramName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgramName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgramName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgramName: %w", err)
	}
	return oldValue.ProgramName, nil
}

// ResetProgramName resets all changes to the "program_name" field.
func (m *GeneratedCodeMutation) ResetProgramName() {
	m.program_name = nil
}

// SetExecutionType sets the "execution_type" field.
func (m *GeneratedCodeMutation) SetExecutionType(gt generatedcode.ExecutionType) {
	m.execution_type = &gt
}

// ExecutionType returns the value of the "execution_type" field in the mutation.
func (m *GeneratedCodeMutation) ExecutionType() (r generatedcode.ExecutionType, exists bool) {
	v := m.execution_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionType returns the old "execution_type" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldExecutionType(ctx context.Context) (v generatedcode.ExecutionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionType: %w", err)
	}
	return oldValue.ExecutionType, nil
}

// ResetExecutionType resets all changes to the "execution_type" field.
func (m *GeneratedCodeMutation) ResetExecutionType() {
	m.execution_type = nil
}

// SetCodeMetadata sets the "code_metadata" field.
func (m *GeneratedCodeMutation) SetCodeMetadata(value map[string]interface{}) {
	m.code_metadata = &value
}

// CodeMetadata returns the value of the "code_metadata" field in the mutation.
func (m *GeneratedCodeMutation) CodeMetadata() (r map[string]interface{}, exists bool) {
	v := m.code_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeMetadata returns the old "code_metadata" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldCodeMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeMetadata: %w", err)
	}
	return oldValue.CodeMetadata, nil
}

// ClearCodeMetadata clears the value of the "code_metadata" field.
func (m *GeneratedCodeMutation) ClearCodeMetadata() {
	m.code_metadata = nil
	m.clearedFields[generatedcode.FieldCodeMetadata] = struct{}{}
}

// CodeMetadataCleared returns if the "code_metadata" field was cleared in this mutation.
func (m *GeneratedCodeMutation) CodeMetadataCleared() bool {
	_, ok := m.clearedFields[generatedcode.FieldCodeMetadata]
	return ok
}

// ResetCodeMetadata resets all changes to the "code_metadata" field.
func (m *GeneratedCodeMutation) ResetCodeMetadata() {
	m.code_metadata = nil
	delete(m.clearedFields, generatedcode.FieldCodeMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *GeneratedCodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GeneratedCodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GeneratedCode entity.
// If the GeneratedCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GeneratedCodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *GeneratedCodeMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[generatedcode.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *GeneratedCodeMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *GeneratedCodeMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *GeneratedCodeMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearStage clears the "stage" edge to the Stage entity.
func (m *GeneratedCodeMutation) ClearStage() {
	m.clearedstage = true
	m.clearedFields[generatedcode.FieldStageID] = struct{}{}
}

// StageCleared reports if the "stage" edge to the Stage entity was cleared.
func (m *GeneratedCodeMutation) StageCleared() bool {
	return m.clearedstage
}

// StageIDs returns the "stage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageID instead. It exists only for internal usage by the builders.
func (m *GeneratedCodeMutation) StageIDs() (ids []int) {
	if id := m.stage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStage resets all changes to the "stage" edge.
func (m *GeneratedCodeMutation) ResetStage() {
	m.stage = nil
	m.clearedstage = false
}

// Where appends a list predicates to the GeneratedCodeMutation builder.
func (m *GeneratedCodeMutation) Where(ps ...predicate.GeneratedCode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GeneratedCodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GeneratedCodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GeneratedCode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GeneratedCodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GeneratedCodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GeneratedCode).
func (m *GeneratedCodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GeneratedCodeMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.project != nil {
		fields = append(fields, generatedcode.FieldProjectID)
	}
	if m.stage != nil {
		fields = append(fields, generatedcode.FieldStageID)
	}
	if m.global_labels != nil {
		fields = append(fields, generatedcode.FieldGlobalLabels)
	}
	if m.local_labels != nil {
		fields = append(fields, generatedcode.FieldLocalLabels)
	}
	if m.program_body != nil {
		fields = append(fields, generatedcode.FieldProgramBody)
	}
	if m.program_blocks != nil {
		fields = append(fields, generatedcode.FieldProgramBlocks)
	}
	if m.functions != nil {
		fields = append(fields, generatedcode.FieldFunctions)
	}
	if m.function_blocks != nil {
		fields = append(fields, generatedcode.FieldFunctionBlocks)
	}
	if m.program_name != nil {
		fields = append(fields, generatedcode.FieldProgramName)
	}
	if m.execution_type != nil {
		fields = append(fields, generatedcode.FieldExecutionType)
	}
	if m.code_metadata != nil {
		fields = append(fields, generatedcode.FieldCodeMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, generatedcode.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GeneratedCodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generatedcode.FieldProjectID:
		return m.ProjectID()
	case generatedcode.FieldStageID:
		return m.StageID()
	case generatedcode.FieldGlobalLabels:
		return m.GlobalLabels()
	case generatedcode.FieldLocalLabels:
		return m.LocalLabels()
	case generatedcode.FieldProgramBody:
		return m.ProgramBody()
	case generatedcode.FieldProgramBlocks:
		return m.ProgramBlocks()
	case generatedcode.FieldFunctions:
		return m.Functions()
	case generatedcode.FieldFunctionBlocks:
		return m.FunctionBlocks()
	case generatedcode.FieldProgramName:
		return m.ProgramName()
	case generatedcode.FieldExecutionType:
		return m.ExecutionType()
	case generatedcode.FieldCodeMetadata:
		return m.CodeMetadata()
	case generatedcode.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GeneratedCodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generatedcode.FieldProjectID:
		return m.OldProjectID(ctx)
	case generatedcode.FieldStageID:
		return m.OldStageID(ctx)
	case generatedcode.FieldGlobalLabels:
		return m.OldGlobalLabels(ctx)
	case generatedcode.FieldLocalLabels:
		return m.OldLocalLabels(ctx)
	case generatedcode.FieldProgramBody:
		return m.OldProgramBody(ctx)
	case generatedcode.FieldProgramBlocks:
		return m.OldProgramBlocks(ctx)
	case generatedcode.FieldFunctions:
		return m.OldFunctions(ctx)
	case generatedcode.FieldFunctionBlocks:
		return m.OldFunctionBlocks(ctx)
	case generatedcode.FieldProgramName:
		return m.OldProgramName(ctx)
	case generatedcode.FieldExecutionType:
		return m.OldExecutionType(ctx)
	case generatedcode.FieldCodeMetadata:
		return m.OldCodeMetadata(ctx)
	case generatedcode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GeneratedCode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedCodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generatedcode.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case generatedcode.FieldStageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case generatedcode.FieldGlobalLabels:
		v, ok := value.([]models.Label)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalLabels(v)
		return nil
	case generatedcode.FieldLocalLabels:
		v, ok := value.([]models.Label)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalLabels(v)
		return nil
	case generatedcode.FieldProgramBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgramBody(v)
		return nil
	case generatedcode.FieldProgramBlocks:
		v, ok := value.([]models.ProgramBlock)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgramBlocks(v)
		return nil
	case generatedcode.FieldFunctions:
		v, ok := value.([]models.Function)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFunctions(v)
		return nil
	case generatedcode.FieldFunctionBlocks:
		v, ok := value.([]models.FunctionBlock)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFunctionBlocks(v)
		return nil
	case generatedcode.FieldProgramName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgramName(v)
		return nil
	case generatedcode.FieldExecutionType:
		v, ok := value.(generatedcode.ExecutionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionType(v)
		return nil
	case generatedcode.FieldCodeMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeMetadata(v)
		return nil
	case generatedcode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GeneratedCode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GeneratedCodeMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GeneratedCodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedCodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GeneratedCode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GeneratedCodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generatedcode.FieldGlobalLabels) {
		fields = append(fields, generatedcode.FieldGlobalLabels)
	}
	if m.FieldCleared(generatedcode.FieldLocalLabels) {
		fields = append(fields, generatedcode.FieldLocalLabels)
	}
	if m.FieldCleared(generatedcode.FieldProgramBody) {
		fields = append(fields, generatedcode.FieldProgramBody)
	}
	if m.FieldCleared(generatedcode.FieldProgramBlocks) {
		fields = append(fields, generatedcode.FieldProgramBlocks)
	}
	if m.FieldCleared(generatedcode.FieldFunctions) {
		fields = append(fields, generatedcode.FieldFunctions)
	}
	if m.FieldCleared(generatedcode.FieldFunctionBlocks) {
		fields = append(fields, generatedcode.FieldFunctionBlocks)
	}
	if m.FieldCleared(generatedcode.FieldCodeMetadata) {
		fields = append(fields, generatedcode.FieldCodeMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GeneratedCodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GeneratedCodeMutation) ClearField(name string) error {
	switch name {
	case generatedcode.FieldGlobalLabels:
		m.ClearGlobalLabels()
		return nil
	case generatedcode.FieldLocalLabels:
		m.ClearLocalLabels()
		return nil
	case generatedcode.FieldProgramBody:
		m.ClearProgramBody()
		return nil
	case generatedcode.FieldProgramBlocks:
		m.ClearProgramBlocks()
		return nil
	case generatedcode.FieldFunctions:
		m.ClearFunctions()
		return nil
	case generatedcode.FieldFunctionBlocks:
		m.ClearFunctionBlocks()
		return nil
	case generatedcode.FieldCodeMetadata:
		m.ClearCodeMetadata()
		return nil
	}
	return fmt.Errorf("unknown GeneratedCode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GeneratedCodeMutation) ResetField(name string) error {
	switch name {
	case generatedcode.FieldProjectID:
		m.ResetProjectID()
		return nil
	case generatedcode.FieldStageID:
		m.ResetStageID()
		return nil
	case generatedcode.FieldGlobalLabels:
		m.ResetGlobalLabels()
		return nil
	case generatedcode.FieldLocalLabels:
		m.ResetLocalLabels()
		return nil
	case generatedcode.FieldProgramBody:
		m.ResetProgramBody()
		return nil
	case generatedcode.FieldProgramBlocks:
		m.ResetProgramBlocks()
		return nil
	case generatedcode.FieldFunctions:
		m.ResetFunctions()
		return nil
	case generatedcode.FieldFunctionBlocks:
		m.ResetFunctionBlocks()
		return nil
	case generatedcode.FieldProgramName:
		m.ResetProgramName()
		return nil
	case generatedcode.FieldExecutionType:
		m.ResetExecutionType()
		return nil
	case generatedcode.FieldCodeMetadata:
		m.ResetCodeMetadata()
		return nil
	case generatedcode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GeneratedCode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GeneratedCodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, generatedcode.EdgeProject)
	}
	if m.stage != nil {
		edges = append(edges, generatedcode.EdgeStage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GeneratedCodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generatedcode.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case generatedcode.EdgeStage:
		if id := m.stage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GeneratedCodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GeneratedCodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GeneratedCodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, generatedcode.EdgeProject)
	}
	if m.clearedstage {
		edges = append(edges, generatedcode.EdgeStage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GeneratedCodeMutation) EdgeCleared(name string) bool {
	switch name {
	case generatedcode.EdgeProject:
		return m.clearedproject
	case generatedcode.EdgeStage:
		return m.clearedstage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GeneratedCodeMutation) ClearEdge(name string) error {
	switch name {
	case generatedcode.EdgeProject:
		m.ClearProject()
		return nil
	case generatedcode.EdgeStage:
		m.ClearStage()
		return nil
	}
	return fmt.Errorf("unknown GeneratedCode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GeneratedCodeMutation) ResetEdge(name string) error {
	switch name {
	case generatedcode.EdgeProject:
		m.ResetProject()
		return nil
	case generatedcode.EdgeStage:
		m.ResetStage()
		return nil
	}
	return fmt.Errorf("unknown GeneratedCode edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	name                  *string
	description           *string
	owner_id              *int
	addowner_id           *int
	status                *project.Status
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	stages                map[int]struct{}
	removedstages         map[int]struct{}
	clearedstages         bool
	codes                 map[int]struct{}
	removedcodes          map[int]struct{}
	clearedcodes          bool
	safety_manuals        map[int]struct{}
	removedsafety_manuals map[int]struct{}
	clearedsafety_manuals bool
	uploaded_files        map[int]struct{}
	removeduploaded_files map[int]struct{}
	cleareduploaded_files bool
	done                  bool
	oldValue              func(context.Context) (*Project, error)
	predicates            []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id int) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetOwnerID sets the "owner_id" field.
func (m *ProjectMutation) SetOwnerID(i int) {
	m.owner_id = &i
	m.addowner_id = nil
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ProjectMutation) OwnerID() (r int, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldOwnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// AddOwnerID adds i to the "owner_id" field.
func (m *ProjectMutation) AddOwnerID(i int) {
	if m.addowner_id != nil {
		*m.addowner_id += i
	} else {
		m.addowner_id = &i
	}
}

// AddedOwnerID returns the value that was added to the "owner_id" field in this mutation.
func (m *ProjectMutation) AddedOwnerID() (r int, exists bool) {
	v := m.addowner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ProjectMutation) ResetOwnerID() {
	m.owner_id = nil
	m.addowner_id = nil
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(pr project.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r project.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v project.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStageIDs adds the "stages" edge to the Stage entity by ids.
func (m *ProjectMutation) AddStageIDs(ids ...int) {
	if m.stages == nil {
		m.stages = make(map[int]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the Stage entity.
func (m *ProjectMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the Stage entity was cleared.
func (m *ProjectMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the Stage entity by IDs.
func (m *ProjectMutation) RemoveStageIDs(ids ...int) {
	if m.removedstages == nil {
		m.removedstages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the Stage entity.
func (m *ProjectMutation) RemovedStagesIDs() (ids []int) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *ProjectMutation) StagesIDs() (ids []int) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *ProjectMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// AddCodeIDs adds the "codes" edge to the GeneratedCode entity by ids.
func (m *ProjectMutation) AddCodeIDs(ids ...int) {
	if m.codes == nil {
		m.codes = make(map[int]struct{})
	}
	for i := range ids {
		m.codes[ids[i]] = struct{}{}
	}
}

// ClearCodes clears the "codes" edge to the GeneratedCode entity.
func (m *ProjectMutation) ClearCodes() {
	m.clearedcodes = true
}

// CodesCleared reports if the "codes" edge to the GeneratedCode entity was cleared.
func (m *ProjectMutation) CodesCleared() bool {
	return m.clearedcodes
}

// RemoveCodeIDs removes the "codes" edge to the GeneratedCode entity by IDs.
func (m *ProjectMutation) RemoveCodeIDs(ids ...int) {
	if m.removedcodes == nil {
		m.removedcodes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.codes, ids[i])
		m.removedcodes[ids[i]] = struct{}{}
	}
}

// RemovedCodes returns the removed IDs of the "codes" edge to the GeneratedCode entity.
func (m *ProjectMutation) RemovedCodesIDs() (ids []int) {
	for id := range m.removedcodes {
		ids = append(ids, id)
	}
	return
}

// CodesIDs returns the "codes" edge IDs in the mutation.
func (m *ProjectMutation) CodesIDs() (ids []int) {
	for id := range m.codes {
		ids = append(ids, id)
	}
	return
}

// ResetCodes resets all changes to the "codes" edge.
func (m *ProjectMutation) ResetCodes() {
	m.codes = nil
	m.clearedcodes = false
	m.removedcodes = nil
}

// AddSafetyManualIDs adds the "safety_manuals" edge to the SafetyManual entity by ids.
func (m *ProjectMutation) AddSafetyManualIDs(ids ...int) {
	if m.safety_manuals == nil {
		m.safety_manuals = make(map[int]struct{})
	}
	for i := range ids {
		m.safety_manuals[ids[i]] = struct{}{}
	}
}

// ClearSafetyManuals clears the "safety_manuals" edge to the SafetyManual entity.
func (m *ProjectMutation) ClearSafetyManuals() {
	m.clearedsafety_manuals = true
}

// SafetyManualsCleared reports if the "safety_manuals" edge to the SafetyManual entity was cleared.
func (m *ProjectMutation) SafetyManualsCleared() bool {
	return m.clearedsafety_manuals
}

// RemoveSafetyManualIDs removes the "safety_manuals" edge to the SafetyManual entity by IDs.
func (m *ProjectMutation) RemoveSafetyManualIDs(ids ...int) {
	if m.removedsafety_manuals == nil {
		m.removedsafety_manuals = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.safety_manuals, ids[i])
		m.removedsafety_manuals[ids[i]] = struct{}{}
	}
}

// RemovedSafetyManuals returns the removed IDs of the "safety_manuals" edge to the SafetyManual entity.
func (m *ProjectMutation) RemovedSafetyManualsIDs() (ids []int) {
	for id := range m.removedsafety_manuals {
		ids = append(ids, id)
	}
	return
}

// SafetyManualsIDs returns the "safety_manuals" edge IDs in the mutation.
func (m *ProjectMutation) SafetyManualsIDs() (ids []int) {
	for id := range m.safety_manuals {
		ids = append(ids, id)
	}
	return
}

// ResetSafetyManuals resets all changes to the "safety_manuals" edge.
func (m *ProjectMutation) ResetSafetyManuals() {
	m.safety_manuals = nil
	m.clearedsafety_manuals = false
	m.removedsafety_manuals = nil
}

// AddUploadedFileIDs adds the "uploaded_files" edge to the UploadedFile entity by ids.
func (m *ProjectMutation) AddUploadedFileIDs(ids ...int) {
	if m.uploaded_files == nil {
		m.uploaded_files = make(map[int]struct{})
	}
	for i := range ids {
		m.uploaded_files[ids[i]] = struct{}{}
	}
}

// ClearUploadedFiles clears the "uploaded_files" edge to the UploadedFile entity.
func (m *ProjectMutation) ClearUploadedFiles() {
	m.cleareduploaded_files = true
}

// UploadedFilesCleared reports if the "uploaded_files" edge to the UploadedFile entity was cleared.
func (m *ProjectMutation) UploadedFilesCleared() bool {
	return m.cleareduploaded_files
}

// RemoveUploadedFileIDs removes the "uploaded_files" edge to the UploadedFile entity by IDs.
func (m *ProjectMutation) RemoveUploadedFileIDs(ids ...int) {
	if m.removeduploaded_files == nil {
		m.removeduploaded_files = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.uploaded_files, ids[i])
		m.removeduploaded_files[ids[i]] = struct{}{}
	}
}

// RemovedUploadedFiles returns the removed IDs of the "uploaded_files" edge to the UploadedFile entity.
func (m *ProjectMutation) RemovedUploadedFilesIDs() (ids []int) {
	for id := range m.removeduploaded_files {
		ids = append(ids, id)
	}
	return
}

// UploadedFilesIDs returns the "uploaded_files" edge IDs in the mutation.
func (m *ProjectMutation) UploadedFilesIDs() (ids []int) {
	for id := range m.uploaded_files {
		ids = append(ids, id)
	}
	return
}

// ResetUploadedFiles resets all changes to the "uploaded_files" edge.
func (m *ProjectMutation) ResetUploadedFiles() {
	m.uploaded_files = nil
	m.cleareduploaded_files = false
	m.removeduploaded_files = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.owner_id != nil {
		fields = append(fields, project.FieldOwnerID)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldOwnerID:
		return m.OwnerID()
	case project.FieldStatus:
		return m.Status()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(project.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addowner_id != nil {
		fields = append(fields, project.FieldOwnerID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldOwnerID:
		return m.AddedOwnerID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerID(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.stages != nil {
		edges = append(edges, project.EdgeStages)
	}
	if m.codes != nil {
		edges = append(edges, project.EdgeCodes)
	}
	if m.safety_manuals != nil {
		edges = append(edges, project.EdgeSafetyManuals)
	}
	if m.uploaded_files != nil {
		edges = append(edges, project.EdgeUploadedFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCodes:
		ids := make([]ent.Value, 0, len(m.codes))
		for id := range m.codes {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSafetyManuals:
		ids := make([]ent.Value, 0, len(m.safety_manuals))
		for id := range m.safety_manuals {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeUploadedFiles:
		ids := make([]ent.Value, 0, len(m.uploaded_files))
		for id := range m.uploaded_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedstages != nil {
		edges = append(edges, project.EdgeStages)
	}
	if m.removedcodes != nil {
		edges = append(edges, project.EdgeCodes)
	}
	if m.removedsafety_manuals != nil {
		edges = append(edges, project.EdgeSafetyManuals)
	}
	if m.removeduploaded_files != nil {
		edges = append(edges, project.EdgeUploadedFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCodes:
		ids := make([]ent.Value, 0, len(m.removedcodes))
		for id := range m.removedcodes {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSafetyManuals:
		ids := make([]ent.Value, 0, len(m.removedsafety_manuals))
		for id := range m.removedsafety_manuals {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeUploadedFiles:
		ids := make([]ent.Value, 0, len(m.removeduploaded_files))
		for id := range m.removeduploaded_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedstages {
		edges = append(edges, project.EdgeStages)
	}
	if m.clearedcodes {
		edges = append(edges, project.EdgeCodes)
	}
	if m.clearedsafety_manuals {
		edges = append(edges, project.EdgeSafetyManuals)
	}
	if m.cleareduploaded_files {
		edges = append(edges, project.EdgeUploadedFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeStages:
		return m.clearedstages
	case project.EdgeCodes:
		return m.clearedcodes
	case project.EdgeSafetyManuals:
		return m.clearedsafety_manuals
	case project.EdgeUploadedFiles:
		return m.cleareduploaded_files
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeStages:
		m.ResetStages()
		return nil
	case project.EdgeCodes:
		m.ResetCodes()
		return nil
	case project.EdgeSafetyManuals:
		m.ResetSafetyManuals()
		return nil
	case project.EdgeUploadedFiles:
		m.ResetUploadedFiles()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SafetyManualMutation represents an operation that mutates the SafetyManual nodes in the graph.
type SafetyManualMutation struct {
	config
	op             Op
	typ            string
	id             *int
	filename       *string
	file_path      *string
	is_embedded    *bool
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	project        *int
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*SafetyManual, error)
	predicates     []predicate.SafetyManual
}

var _ ent.Mutation = (*SafetyManualMutation)(nil)

// safetymanualOption allows management of the mutation configuration using functional options.
type safetymanualOption func(*SafetyManualMutation)

// newSafetyManualMutation creates new mutation for the SafetyManual entity.
func newSafetyManualMutation(c config, op Op, opts ...safetymanualOption) *SafetyManualMutation {
	m := &SafetyManualMutation{
		config:        c,
		op:            op,
		typ:           TypeSafetyManual,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSafetyManualID sets the ID field of the mutation.
func withSafetyManualID(id int) safetymanualOption {
	return func(m *SafetyManualMutation) {
		var (
			err   error
			once  sync.Once
			value *SafetyManual
		)
		m.oldValue = func(ctx context.Context) (*SafetyManual, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SafetyManual.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSafetyManual sets the old SafetyManual of the mutation.
func withSafetyManual(node *SafetyManual) safetymanualOption {
	return func(m *SafetyManualMutation) {
		m.oldValue = func(context.Context) (*SafetyManual, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SafetyManualMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SafetyManualMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SafetyManualMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SafetyManualMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SafetyManual.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SafetyManualMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SafetyManualMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the SafetyManual entity.
// If the SafetyManual object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SafetyManualMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SafetyManualMutation) ResetProjectID() {
	m.project = nil
}

// SetFilename sets the "filename" field.
func (m *SafetyManualMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SafetyManualMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the SafetyManual entity.
// If the SafetyManual object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SafetyManualMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SafetyManualMutation) ResetFilename() {
	m.filename = nil
}

// SetFilePath sets the "file_path" field.
func (m *SafetyManualMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *SafetyManualMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the SafetyManual entity.
// If the SafetyManual object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SafetyManualMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *SafetyManualMutation) ResetFilePath() {
	m.file_path = nil
}

// SetIsEmbedded sets the "is_embedded" field.
func (m *SafetyManualMutation) SetIsEmbedded(b bool) {
	m.is_embedded = &b
}

// IsEmbedded returns the value of the "is_embedded" field in the mutation.
func (m *SafetyManualMutation) IsEmbedded() (r bool, exists bool) {
	v := m.is_embedded
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEmbedded returns the old "is_embedded" field's value of the SafetyManual entity.
// If the SafetyManual object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SafetyManualMutation) OldIsEmbedded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEmbedded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEmbedded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEmbedded: %w", err)
	}
	return oldValue.IsEmbedded, nil
}

// ResetIsEmbedded resets all changes to the "is_embedded" field.
func (m *SafetyManualMutation) ResetIsEmbedded() {
	m.is_embedded = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SafetyManualMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SafetyManualMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the SafetyManual entity.
// If the SafetyManual object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SafetyManualMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SafetyManualMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SafetyManualMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[safetymanual.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SafetyManualMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SafetyManualMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SafetyManualMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the SafetyManualMutation builder.
func (m *SafetyManualMutation) Where(ps ...predicate.SafetyManual) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SafetyManualMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SafetyManualMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SafetyManual, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SafetyManualMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SafetyManualMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SafetyManual).
func (m *SafetyManualMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SafetyManualMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project != nil {
		fields = append(fields, safetymanual.FieldProjectID)
	}
	if m.filename != nil {
		fields = append(fields, safetymanual.FieldFilename)
	}
	if m.file_path != nil {
		fields = append(fields, safetymanual.FieldFilePath)
	}
	if m.is_embedded != nil {
		fields = append(fields, safetymanual.FieldIsEmbedded)
	}
	if m.uploaded_at != nil {
		fields = append(fields, safetymanual.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SafetyManualMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case safetymanual.FieldProjectID:
		return m.ProjectID()
	case safetymanual.FieldFilename:
		return m.Filename()
	case safetymanual.FieldFilePath:
		return m.FilePath()
	case safetymanual.FieldIsEmbedded:
		return m.IsEmbedded()
	case safetymanual.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SafetyManualMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case safetymanual.FieldProjectID:
		return m.OldProjectID(ctx)
	case safetymanual.FieldFilename:
		return m.OldFilename(ctx)
	case safetymanual.FieldFilePath:
		return m.OldFilePath(ctx)
	case safetymanual.FieldIsEmbedded:
		return m.OldIsEmbedded(ctx)
	case safetymanual.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SafetyManual field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SafetyManualMutation) SetField(name string, value ent.Value) error {
	switch name {
	case safetymanual.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case safetymanual.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case safetymanual.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case safetymanual.FieldIsEmbedded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEmbedded(v)
		return nil
	case safetymanual.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SafetyManual field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SafetyManualMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SafetyManualMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SafetyManualMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SafetyManual numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SafetyManualMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SafetyManualMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SafetyManualMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SafetyManual nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SafetyManualMutation) ResetField(name string) error {
	switch name {
	case safetymanual.FieldProjectID:
		m.ResetProjectID()
		return nil
	case safetymanual.FieldFilename:
		m.ResetFilename()
		return nil
	case safetymanual.FieldFilePath:
		m.ResetFilePath()
		return nil
	case safetymanual.FieldIsEmbedded:
		m.ResetIsEmbedded()
		return nil
	case safetymanual.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown SafetyManual field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SafetyManualMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, safetymanual.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SafetyManualMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case safetymanual.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SafetyManualMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SafetyManualMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SafetyManualMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, safetymanual.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SafetyManualMutation) EdgeCleared(name string) bool {
	switch name {
	case safetymanual.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SafetyManualMutation) ClearEdge(name string) error {
	switch name {
	case safetymanual.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown SafetyManual unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SafetyManualMutation) ResetEdge(name string) error {
	switch name {
	case safetymanual.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown SafetyManual edge %s", name)
}

// StageMutation represents an operation that mutates the Stage nodes in the graph.
type StageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	stage_number          *int
	addstage_number       *int
	stage_name            *string
	stage_type            *stage.StageType
	description           *string
	original_logic        *string
	edited_logic          *string
	is_validated          *bool
	is_finalized          *bool
	dependencies          *[]models.StageDependency
	appenddependencies    []models.StageDependency
	version_number        *string
	last_action           *string
	last_action_timestamp *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	project               *int
	clearedproject        bool
	codes                 map[int]struct{}
	removedcodes          map[int]struct{}
	clearedcodes          bool
	done                  bool
	oldValue              func(context.Context) (*Stage, error)
	predicates            []predicate.Stage
}

var _ ent.Mutation = (*StageMutation)(nil)

// stageOption allows management of the mutation configuration using functional options.
type stageOption func(*StageMutation)

// newStageMutation creates new mutation for the Stage entity.
func newStageMutation(c config, op Op, opts ...stageOption) *StageMutation {
	m := &StageMutation{
		config:        c,
		op:            op,
		typ:           TypeStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageID sets the ID field of the mutation.
func withStageID(id int) stageOption {
	return func(m *StageMutation) {
		var (
			err   error
			once  sync.Once
			value *Stage
		)
		m.oldValue = func(ctx context.Context) (*Stage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Stage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStage sets the old Stage of the mutation.
func withStage(node *Stage) stageOption {
	return func(m *StageMutation) {
		m.oldValue = func(context.Context) (*Stage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Stage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *StageMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *StageMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *StageMutation) ResetProjectID() {
	m.project = nil
}

// SetStageNumber sets the "stage_number" field.
func (m *StageMutation) SetStageNumber(i int) {
	m.stage_number = &i
	m.addstage_number = nil
}

// StageNumber returns the value of the "stage_number" field in the mutation.
func (m *StageMutation) StageNumber() (r int, exists bool) {
	v := m.stage_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStageNumber returns the old "stage_number" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageNumber: %w", err)
	}
	return oldValue.StageNumber, nil
}

// AddStageNumber adds i to the "stage_number" field.
func (m *StageMutation) AddStageNumber(i int) {
	if m.addstage_number != nil {
		*m.addstage_number += i
	} else {
		m.addstage_number = &i
	}
}

// AddedStageNumber returns the value that was added to the "stage_number" field in this mutation.
func (m *StageMutation) AddedStageNumber() (r int, exists bool) {
	v := m.addstage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageNumber resets all changes to the "stage_number" field.
func (m *StageMutation) ResetStageNumber() {
	m.stage_number = nil
	m.addstage_number = nil
}

// SetStageName sets the "stage_name" field.
func (m *StageMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *StageMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *StageMutation) ResetStageName() {
	m.stage_name = nil
}

// SetStageType sets the "stage_type" field.
func (m *StageMutation) SetStageType(st stage.StageType) {
	m.stage_type = &st
}

// StageType returns the value of the "stage_type" field in the mutation.
func (m *StageMutation) StageType() (r stage.StageType, exists bool) {
	v := m.stage_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStageType returns the old "stage_type" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStageType(ctx context.Context) (v stage.StageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageType: %w", err)
	}
	return oldValue.StageType, nil
}

// ResetStageType resets all changes to the "stage_type" field.
func (m *StageMutation) ResetStageType() {
	m.stage_type = nil
}

// SetDescription sets the "description" field.
func (m *StageMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StageMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StageMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[stage.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StageMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[stage.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StageMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, stage.FieldDescription)
}

// SetOriginalLogic sets the "original_logic" field.
func (m *StageMutation) SetOriginalLogic(s string) {
	m.original_logic = &s
}

// OriginalLogic returns the value of the "original_logic" field in the mutation.
func (m *StageMutation) OriginalLogic() (r string, exists bool) {
	v := m.original_logic
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalLogic returns the old "original_logic" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldOriginalLogic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalLogic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalLogic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalLogic: %w", err)
	}
	return oldValue.OriginalLogic, nil
}

// ResetOriginalLogic resets all changes to the "original_logic" field.
func (m *StageMutation) ResetOriginalLogic() {
	m.original_logic = nil
}

// SetEditedLogic sets the "edited_logic" field.
func (m *StageMutation) SetEditedLogic(s string) {
	m.edited_logic = &s
}

// EditedLogic returns the value of the "edited_logic" field in the mutation.
func (m *StageMutation) EditedLogic() (r string, exists bool) {
	v := m.edited_logic
	if v == nil {
		return
	}
	return *v, true
}

// OldEditedLogic returns the old "edited_logic" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldEditedLogic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditedLogic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditedLogic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditedLogic: %w", err)
	}
	return oldValue.EditedLogic, nil
}

// ClearEditedLogic clears the value of the "edited_logic" field.
func (m *StageMutation) ClearEditedLogic() {
	m.edited_logic = nil
	m.clearedFields[stage.FieldEditedLogic] = struct{}{}
}

// EditedLogicCleared returns if the "edited_logic" field was cleared in this mutation.
func (m *StageMutation) EditedLogicCleared() bool {
	_, ok := m.clearedFields[stage.FieldEditedLogic]
	return ok
}

// ResetEditedLogic resets all changes to the "edited_logic" field.
func (m *StageMutation) ResetEditedLogic() {
	m.edited_logic = nil
	delete(m.clearedFields, stage.FieldEditedLogic)
}

// SetIsValidated sets the "is_validated" field.
func (m *StageMutation) SetIsValidated(b bool) {
	m.is_validated = &b
}

// IsValidated returns the value of the "is_validated" field in the mutation.
func (m *StageMutation) IsValidated() (r bool, exists bool) {
	v := m.is_validated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValidated returns the old "is_validated" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldIsValidated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValidated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValidated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValidated: %w", err)
	}
	return oldValue.IsValidated, nil
}

// ResetIsValidated resets all changes to the "is_validated" field.
func (m *StageMutation) ResetIsValidated() {
	m.is_validated = nil
}

// SetIsFinalized sets the "is_finalized" field.
func (m *StageMutation) SetIsFinalized(b bool) {
	m.is_finalized = &b
}

// IsFinalized returns the value of the "is_finalized" field in the mutation.
func (m *StageMutation) IsFinalized() (r bool, exists bool) {
	v := m.is_finalized
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFinalized returns the old "is_finalized" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldIsFinalized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFinalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFinalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFinalized: %w", err)
	}
	return oldValue.IsFinalized, nil
}

// ResetIsFinalized resets all changes to the "is_finalized" field.
func (m *StageMutation) ResetIsFinalized() {
	m.is_finalized = nil
}

// SetDependencies sets the "dependencies" field.
func (m *StageMutation) SetDependencies(md []models.StageDependency) {
	m.dependencies = &md
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *StageMutation) Dependencies() (r []models.StageDependency, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldDependencies(ctx context.Context) (v []models.StageDependency, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds md to the "dependencies" field.
func (m *StageMutation) AppendDependencies(md []models.StageDependency) {
	m.appenddependencies = append(m.appenddependencies, md...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *StageMutation) AppendedDependencies() ([]models.StageDependency, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *StageMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[stage.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *StageMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[stage.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *StageMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, stage.FieldDependencies)
}

// SetVersionNumber sets the "version_number" field.
func (m *StageMutation) SetVersionNumber(s string) {
	m.version_number = &s
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *StageMutation) VersionNumber() (r string, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldVersionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *StageMutation) ResetVersionNumber() {
	m.version_number = nil
}

// SetLastAction sets the "last_action" field.
func (m *StageMutation) SetLastAction(s string) {
	m.last_action = &s
}

// LastAction returns the value of the "last_action" field in the mutation.
func (m *StageMutation) LastAction() (r string, exists bool) {
	v := m.last_action
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAction returns the old "last_action" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldLastAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAction: %w", err)
	}
	return oldValue.LastAction, nil
}

// ClearLastAction clears the value of the "last_action" field.
func (m *StageMutation) ClearLastAction() {
	m.last_action = nil
	m.clearedFields[stage.FieldLastAction] = struct{}{}
}

// LastActionCleared returns if the "last_action" field was cleared in this mutation.
func (m *StageMutation) LastActionCleared() bool {
	_, ok := m.clearedFields[stage.FieldLastAction]
	return ok
}

// ResetLastAction resets all changes to the "last_action" field.
func (m *StageMutation) ResetLastAction() {
	m.last_action = nil
	delete(m.clearedFields, stage.FieldLastAction)
}

// SetLastActionTimestamp sets the "last_action_timestamp" field.
func (m *StageMutation) SetLastActionTimestamp(t time.Time) {
	m.last_action_timestamp = &t
}

// LastActionTimestamp returns the value of the "last_action_timestamp" field in the mutation.
func (m *StageMutation) LastActionTimestamp() (r time.Time, exists bool) {
	v := m.last_action_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActionTimestamp returns the old "last_action_timestamp" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldLastActionTimestamp(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActionTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActionTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActionTimestamp: %w", err)
	}
	return oldValue.LastActionTimestamp, nil
}

// ClearLastActionTimestamp clears the value of the "last_action_timestamp" field.
func (m *StageMutation) ClearLastActionTimestamp() {
	m.last_action_timestamp = nil
	m.clearedFields[stage.FieldLastActionTimestamp] = struct{}{}
}

// LastActionTimestampCleared returns if the "last_action_timestamp" field was cleared in this mutation.
func (m *StageMutation) LastActionTimestampCleared() bool {
	_, ok := m.clearedFields[stage.FieldLastActionTimestamp]
	return ok
}

// ResetLastActionTimestamp resets all changes to the "last_action_timestamp" field.
func (m *StageMutation) ResetLastActionTimestamp() {
	m.last_action_timestamp = nil
	delete(m.clearedFields, stage.FieldLastActionTimestamp)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *StageMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[stage.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *StageMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *StageMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *StageMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddCodeIDs adds the "codes" edge to the GeneratedCode entity by ids.
func (m *StageMutation) AddCodeIDs(ids ...int) {
	if m.codes == nil {
		m.codes = make(map[int]struct{})
	}
	for i := range ids {
		m.codes[ids[i]] = struct{}{}
	}
}

// ClearCodes clears the "codes" edge to the GeneratedCode entity.
func (m *StageMutation) ClearCodes() {
	m.clearedcodes = true
}

// CodesCleared reports if the "codes" edge to the GeneratedCode entity was cleared.
func (m *StageMutation) CodesCleared() bool {
	return m.clearedcodes
}

// RemoveCodeIDs removes the "codes" edge to the GeneratedCode entity by IDs.
func (m *StageMutation) RemoveCodeIDs(ids ...int) {
	if m.removedcodes == nil {
		m.removedcodes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.codes, ids[i])
		m.removedcodes[ids[i]] = struct{}{}
	}
}

// RemovedCodes returns the removed IDs of the "codes" edge to the GeneratedCode entity.
func (m *StageMutation) RemovedCodesIDs() (ids []int) {
	for id := range m.removedcodes {
		ids = append(ids, id)
	}
	return
}

// CodesIDs returns the "codes" edge IDs in the mutation.
func (m *StageMutation) CodesIDs() (ids []int) {
	for id := range m.codes {
		ids = append(ids, id)
	}
	return
}

// ResetCodes resets all changes to the "codes" edge.
func (m *StageMutation) ResetCodes() {
	m.codes = nil
	m.clearedcodes = false
	m.removedcodes = nil
}

// Where appends a list predicates to the StageMutation builder.
func (m *StageMutation) Where(ps ...predicate.Stage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Stage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Stage).
func (m *StageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.project != nil {
		fields = append(fields, stage.FieldProjectID)
	}
	if m.stage_number != nil {
		fields = append(fields, stage.FieldStageNumber)
	}
	if m.stage_name != nil {
		fields = append(fields, stage.FieldStageName)
	}
	if m.stage_type != nil {
		fields = append(fields, stage.FieldStageType)
	}
	if m.description != nil {
		fields = append(fields, stage.FieldDescription)
	}
	if m.original_logic != nil {
		fields = append(fields, stage.FieldOriginalLogic)
	}
	if m.edited_logic != nil {
		fields = append(fields, stage.FieldEditedLogic)
	}
	if m.is_validated != nil {
		fields = append(fields, stage.FieldIsValidated)
	}
	if m.is_finalized != nil {
		fields = append(fields, stage.FieldIsFinalized)
	}
	if m.dependencies != nil {
		fields = append(fields, stage.FieldDependencies)
	}
	if m.version_number != nil {
		fields = append(fields, stage.FieldVersionNumber)
	}
	if m.last_action != nil {
		fields = append(fields, stage.FieldLastAction)
	}
	if m.last_action_timestamp != nil {
		fields = append(fields, stage.FieldLastActionTimestamp)
	}
	if m.created_at != nil {
		fields = append(fields, stage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stage.FieldProjectID:
		return m.ProjectID()
	case stage.FieldStageNumber:
		return m.StageNumber()
	case stage.FieldStageName:
		return m.StageName()
	case stage.FieldStageType:
		return m.StageType()
	case stage.FieldDescription:
		return m.Description()
	case stage.FieldOriginalLogic:
		return m.OriginalLogic()
	case stage.FieldEditedLogic:
		return m.EditedLogic()
	case stage.FieldIsValidated:
		return m.IsValidated()
	case stage.FieldIsFinalized:
		return m.IsFinalized()
	case stage.FieldDependencies:
		return m.Dependencies()
	case stage.FieldVersionNumber:
		return m.VersionNumber()
	case stage.FieldLastAction:
		return m.LastAction()
	case stage.FieldLastActionTimestamp:
		return m.LastActionTimestamp()
	case stage.FieldCreatedAt:
		return m.CreatedAt()
	case stage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stage.FieldProjectID:
		return m.OldProjectID(ctx)
	case stage.FieldStageNumber:
		return m.OldStageNumber(ctx)
	case stage.FieldStageName:
		return m.OldStageName(ctx)
	case stage.FieldStageType:
		return m.OldStageType(ctx)
	case stage.FieldDescription:
		return m.OldDescription(ctx)
	case stage.FieldOriginalLogic:
		return m.OldOriginalLogic(ctx)
	case stage.FieldEditedLogic:
		return m.OldEditedLogic(ctx)
	case stage.FieldIsValidated:
		return m.OldIsValidated(ctx)
	case stage.FieldIsFinalized:
		return m.OldIsFinalized(ctx)
	case stage.FieldDependencies:
		return m.OldDependencies(ctx)
	case stage.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case stage.FieldLastAction:
		return m.OldLastAction(ctx)
	case stage.FieldLastActionTimestamp:
		return m.OldLastActionTimestamp(ctx)
	case stage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Stage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stage.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case stage.FieldStageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageNumber(v)
		return nil
	case stage.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case stage.FieldStageType:
		v, ok := value.(stage.StageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageType(v)
		return nil
	case stage.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case stage.FieldOriginalLogic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalLogic(v)
		return nil
	case stage.FieldEditedLogic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditedLogic(v)
		return nil
	case stage.FieldIsValidated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValidated(v)
		return nil
	case stage.FieldIsFinalized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFinalized(v)
		return nil
	case stage.FieldDependencies:
		v, ok := value.([]models.StageDependency)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case stage.FieldVersionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case stage.FieldLastAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAction(v)
		return nil
	case stage.FieldLastActionTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActionTimestamp(v)
		return nil
	case stage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Stage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageMutation) AddedFields() []string {
	var fields []string
	if m.addstage_number != nil {
		fields = append(fields, stage.FieldStageNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stage.FieldStageNumber:
		return m.AddedStageNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stage.FieldStageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Stage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stage.FieldDescription) {
		fields = append(fields, stage.FieldDescription)
	}
	if m.FieldCleared(stage.FieldEditedLogic) {
		fields = append(fields, stage.FieldEditedLogic)
	}
	if m.FieldCleared(stage.FieldDependencies) {
		fields = append(fields, stage.FieldDependencies)
	}
	if m.FieldCleared(stage.FieldLastAction) {
		fields = append(fields, stage.FieldLastAction)
	}
	if m.FieldCleared(stage.FieldLastActionTimestamp) {
		fields = append(fields, stage.FieldLastActionTimestamp)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageMutation) ClearField(name string) error {
	switch name {
	case stage.FieldDescription:
		m.ClearDescription()
		return nil
	case stage.FieldEditedLogic:
		m.ClearEditedLogic()
		return nil
	case stage.FieldDependencies:
		m.ClearDependencies()
		return nil
	case stage.FieldLastAction:
		m.ClearLastAction()
		return nil
	case stage.FieldLastActionTimestamp:
		m.ClearLastActionTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Stage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageMutation) ResetField(name string) error {
	switch name {
	case stage.FieldProjectID:
		m.ResetProjectID()
		return nil
	case stage.FieldStageNumber:
		m.ResetStageNumber()
		return nil
	case stage.FieldStageName:
		m.ResetStageName()
		return nil
	case stage.FieldStageType:
		m.ResetStageType()
		return nil
	case stage.FieldDescription:
		m.ResetDescription()
		return nil
	case stage.FieldOriginalLogic:
		m.ResetOriginalLogic()
		return nil
	case stage.FieldEditedLogic:
		m.ResetEditedLogic()
		return nil
	case stage.FieldIsValidated:
		m.ResetIsValidated()
		return nil
	case stage.FieldIsFinalized:
		m.ResetIsFinalized()
		return nil
	case stage.FieldDependencies:
		m.ResetDependencies()
		return nil
	case stage.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case stage.FieldLastAction:
		m.ResetLastAction()
		return nil
	case stage.FieldLastActionTimestamp:
		m.ResetLastActionTimestamp()
		return nil
	case stage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Stage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, stage.EdgeProject)
	}
	if m.codes != nil {
		edges = append(edges, stage.EdgeCodes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stage.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case stage.EdgeCodes:
		ids := make([]ent.Value, 0, len(m.codes))
		for id := range m.codes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcodes != nil {
		edges = append(edges, stage.EdgeCodes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stage.EdgeCodes:
		ids := make([]ent.Value, 0, len(m.removedcodes))
		for id := range m.removedcodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, stage.EdgeProject)
	}
	if m.clearedcodes {
		edges = append(edges, stage.EdgeCodes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageMutation) EdgeCleared(name string) bool {
	switch name {
	case stage.EdgeProject:
		return m.clearedproject
	case stage.EdgeCodes:
		return m.clearedcodes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageMutation) ClearEdge(name string) error {
	switch name {
	case stage.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Stage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageMutation) ResetEdge(name string) error {
	switch name {
	case stage.EdgeProject:
		m.ResetProject()
		return nil
	case stage.EdgeCodes:
		m.ResetCodes()
		return nil
	}
	return fmt.Errorf("unknown Stage edge %s", name)
}

// UploadedFileMutation represents an operation that mutates the UploadedFile nodes in the graph.
type UploadedFileMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *int
	adduser_id        *int
	file_type         *string
	original_filename *string
	stored_filename   *string
	file_path         *string
	file_size         *int64
	addfile_size      *int64
	uploaded_at       *time.Time
	clearedFields     map[string]struct{}
	project           *int
	clearedproject    bool
	done              bool
	oldValue          func(context.Context) (*UploadedFile, error)
	predicates        []predicate.UploadedFile
}

var _ ent.Mutation = (*UploadedFileMutation)(nil)

// uploadedfileOption allows management of the mutation configuration using functional options.
type uploadedfileOption func(*UploadedFileMutation)

// newUploadedFileMutation creates new mutation for the UploadedFile entity.
func newUploadedFileMutation(c config, op Op, opts ...uploadedfileOption) *UploadedFileMutation {
	m := &UploadedFileMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadedFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadedFileID sets the ID field of the mutation.
func withUploadedFileID(id int) uploadedfileOption {
	return func(m *UploadedFileMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadedFile
		)
		m.oldValue = func(ctx context.Context) (*UploadedFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadedFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadedFile sets the old UploadedFile of the mutation.
func withUploadedFile(node *UploadedFile) uploadedfileOption {
	return func(m *UploadedFileMutation) {
		m.oldValue = func(context.Context) (*UploadedFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadedFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadedFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadedFileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadedFileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadedFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *UploadedFileMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *UploadedFileMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *UploadedFileMutation) ResetProjectID() {
	m.project = nil
}

// SetUserID sets the "user_id" field.
func (m *UploadedFileMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UploadedFileMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *UploadedFileMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *UploadedFileMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UploadedFileMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetFileType sets the "file_type" field.
func (m *UploadedFileMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *UploadedFileMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *UploadedFileMutation) ResetFileType() {
	m.file_type = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *UploadedFileMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *UploadedFileMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *UploadedFileMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetStoredFilename sets the "stored_filename" field.
func (m *UploadedFileMutation) SetStoredFilename(s string) {
	m.stored_filename = &s
}

// StoredFilename returns the value of the "stored_filename" field in the mutation.
func (m *UploadedFileMutation) StoredFilename() (r string, exists bool) {
	v := m.stored_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredFilename returns the old "stored_filename" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldStoredFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredFilename: %w", err)
	}
	return oldValue.StoredFilename, nil
}

// ResetStoredFilename resets all changes to the "stored_filename" field.
func (m *UploadedFileMutation) ResetStoredFilename() {
	m.stored_filename = nil
}

// SetFilePath sets the "file_path" field.
func (m *UploadedFileMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *UploadedFileMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *UploadedFileMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileSize sets the "file_size" field.
func (m *UploadedFileMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *UploadedFileMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *UploadedFileMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *UploadedFileMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *UploadedFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *UploadedFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *UploadedFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *UploadedFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *UploadedFileMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[uploadedfile.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *UploadedFileMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *UploadedFileMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *UploadedFileMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the UploadedFileMutation builder.
func (m *UploadedFileMutation) Where(ps ...predicate.UploadedFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadedFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadedFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadedFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadedFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadedFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadedFile).
func (m *UploadedFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadedFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project != nil {
		fields = append(fields, uploadedfile.FieldProjectID)
	}
	if m.user_id != nil {
		fields = append(fields, uploadedfile.FieldUserID)
	}
	if m.file_type != nil {
		fields = append(fields, uploadedfile.FieldFileType)
	}
	if m.original_filename != nil {
		fields = append(fields, uploadedfile.FieldOriginalFilename)
	}
	if m.stored_filename != nil {
		fields = append(fields, uploadedfile.FieldStoredFilename)
	}
	if m.file_path != nil {
		fields = append(fields, uploadedfile.FieldFilePath)
	}
	if m.file_size != nil {
		fields = append(fields, uploadedfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, uploadedfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadedFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadedfile.FieldProjectID:
		return m.ProjectID()
	case uploadedfile.FieldUserID:
		return m.UserID()
	case uploadedfile.FieldFileType:
		return m.FileType()
	case uploadedfile.FieldOriginalFilename:
		return m.OriginalFilename()
	case uploadedfile.FieldStoredFilename:
		return m.StoredFilename()
	case uploadedfile.FieldFilePath:
		return m.FilePath()
	case uploadedfile.FieldFileSize:
		return m.FileSize()
	case uploadedfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadedFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadedfile.FieldProjectID:
		return m.OldProjectID(ctx)
	case uploadedfile.FieldUserID:
		return m.OldUserID(ctx)
	case uploadedfile.FieldFileType:
		return m.OldFileType(ctx)
	case uploadedfile.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case uploadedfile.FieldStoredFilename:
		return m.OldStoredFilename(ctx)
	case uploadedfile.FieldFilePath:
		return m.OldFilePath(ctx)
	case uploadedfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case uploadedfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadedFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadedFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadedfile.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case uploadedfile.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case uploadedfile.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case uploadedfile.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case uploadedfile.FieldStoredFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredFilename(v)
		return nil
	case uploadedfile.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case uploadedfile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case uploadedfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadedFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadedFileMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, uploadedfile.FieldUserID)
	}
	if m.addfile_size != nil {
		fields = append(fields, uploadedfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadedFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadedfile.FieldUserID:
		return m.AddedUserID()
	case uploadedfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadedFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadedfile.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case uploadedfile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown UploadedFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadedFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadedFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadedFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UploadedFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadedFileMutation) ResetField(name string) error {
	switch name {
	case uploadedfile.FieldProjectID:
		m.ResetProjectID()
		return nil
	case uploadedfile.FieldUserID:
		m.ResetUserID()
		return nil
	case uploadedfile.FieldFileType:
		m.ResetFileType()
		return nil
	case uploadedfile.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case uploadedfile.FieldStoredFilename:
		m.ResetStoredFilename()
		return nil
	case uploadedfile.FieldFilePath:
		m.ResetFilePath()
		return nil
	case uploadedfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case uploadedfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadedFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, uploadedfile.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadedFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadedfile.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadedFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadedFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadedFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, uploadedfile.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadedFileMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadedfile.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadedFileMutation) ClearEdge(name string) error {
	switch name {
	case uploadedfile.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadedFileMutation) ResetEdge(name string) error {
	switch name {
	case uploadedfile.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile edge %s", name)
}

// VersionEntryMutation represents an operation that mutates the VersionEntry nodes in the graph.
type VersionEntryMutation struct {
	config
	op             Op
	typ            string
	id             *int
	code_id        *int
	addcode_id     *int
	stage_id       *int
	addstage_id    *int
	user_id        *int
	adduser_id     *int
	level          *versionentry.Level
	version_number *string
	old_code       *string
	new_code       *string
	diff           *string
	session_id     *int
	addsession_id  *int
	timestamp      *time.Time
	metadata       *map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*VersionEntry, error)
	predicates     []predicate.VersionEntry
}

var _ ent.Mutation = (*VersionEntryMutation)(nil)

// versionentryOption allows management of the mutation configuration using functional options.
type versionentryOption func(*VersionEntryMutation)

// newVersionEntryMutation creates new mutation for the VersionEntry entity.
func newVersionEntryMutation(c config, op Op, opts ...versionentryOption) *VersionEntryMutation {
	m := &VersionEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeVersionEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVersionEntryID sets the ID field of the mutation.
func withVersionEntryID(id int) versionentryOption {
	return func(m *VersionEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *VersionEntry
		)
		m.oldValue = func(ctx context.Context) (*VersionEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VersionEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVersionEntry sets the old VersionEntry of the mutation.
func withVersionEntry(node *VersionEntry) versionentryOption {
	return func(m *VersionEntryMutation) {
		m.oldValue = func(context.Context) (*VersionEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VersionEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VersionEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VersionEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VersionEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VersionEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCodeID sets the "code_id" field.
func (m *VersionEntryMutation) SetCodeID(i int) {
	m.code_id = &i
	m.addcode_id = nil
}

// CodeID returns the value of the "code_id" field in the mutation.
func (m *VersionEntryMutation) CodeID() (r int, exists bool) {
	v := m.code_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeID returns the old "code_id" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldCodeID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeID: %w", err)
	}
	return oldValue.CodeID, nil
}

// AddCodeID adds i to the "code_id" field.
func (m *VersionEntryMutation) AddCodeID(i int) {
	if m.addcode_id != nil {
		*m.addcode_id += i
	} else {
		m.addcode_id = &i
	}
}

// AddedCodeID returns the value that was added to the "code_id" field in this mutation.
func (m *VersionEntryMutation) AddedCodeID() (r int, exists bool) {
	v := m.addcode_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearCodeID clears the value of the "code_id" field.
func (m *VersionEntryMutation) ClearCodeID() {
	m.code_id = nil
	m.addcode_id = nil
	m.clearedFields[versionentry.FieldCodeID] = struct{}{}
}

// CodeIDCleared returns if the "code_id" field was cleared in this mutation.
func (m *VersionEntryMutation) CodeIDCleared() bool {
	_, ok := m.clearedFields[versionentry.FieldCodeID]
	return ok
}

// ResetCodeID resets all changes to the "code_id" field.
func (m *VersionEntryMutation) ResetCodeID() {
	m.code_id = nil
	m.addcode_id = nil
	delete(m.clearedFields, versionentry.FieldCodeID)
}

// SetStageID sets the "stage_id" field.
func (m *VersionEntryMutation) SetStageID(i int) {
	m.stage_id = &i
	m.addstage_id = nil
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *VersionEntryMutation) StageID() (r int, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldStageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// AddStageID adds i to the "stage_id" field.
func (m *VersionEntryMutation) AddStageID(i int) {
	if m.addstage_id != nil {
		*m.addstage_id += i
	} else {
		m.addstage_id = &i
	}
}

// AddedStageID returns the value that was added to the "stage_id" field in this mutation.
func (m *VersionEntryMutation) AddedStageID() (r int, exists bool) {
	v := m.addstage_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *VersionEntryMutation) ResetStageID() {
	m.stage_id = nil
	m.addstage_id = nil
}

// SetUserID sets the "user_id" field.
func (m *VersionEntryMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *VersionEntryMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *VersionEntryMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *VersionEntryMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *VersionEntryMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetLevel sets the "level" field.
func (m *VersionEntryMutation) SetLevel(v versionentry.Level) {
	m.level = &v
}

// Level returns the value of the "level" field in the mutation.
func (m *VersionEntryMutation) Level() (r versionentry.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldLevel(ctx context.Context) (v versionentry.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *VersionEntryMutation) ResetLevel() {
	m.level = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *VersionEntryMutation) SetVersionNumber(s string) {
	m.version_number = &s
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *VersionEntryMutation) VersionNumber() (r string, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldVersionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *VersionEntryMutation) ResetVersionNumber() {
	m.version_number = nil
}

// SetOldCode sets the "old_code" field.
func (m *VersionEntryMutation) SetOldCode(s string) {
	m.old_code = &s
}

// OldCode returns the value of the "old_code" field in the mutation.
func (m *VersionEntryMutation) OldCode() (r string, exists bool) {
	v := m.old_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOldCode returns the old "old_code" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldOldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldCode: %w", err)
	}
	return oldValue.OldCode, nil
}

// ClearOldCode clears the value of the "old_code" field.
func (m *VersionEntryMutation) ClearOldCode() {
	m.old_code = nil
	m.clearedFields[versionentry.FieldOldCode] = struct{}{}
}

// OldCodeCleared returns if the "old_code" field was cleared in this mutation.
func (m *VersionEntryMutation) OldCodeCleared() bool {
	_, ok := m.clearedFields[versionentry.FieldOldCode]
	return ok
}

// ResetOldCode resets all changes to the "old_code" field.
func (m *VersionEntryMutation) ResetOldCode() {
	m.old_code = nil
	delete(m.clearedFields, versionentry.FieldOldCode)
}

// SetNewCode sets the "new_code" field.
func (m *VersionEntryMutation) SetNewCode(s string) {
	m.new_code = &s
}

// NewCode returns the value of the "new_code" field in the mutation.
func (m *VersionEntryMutation) NewCode() (r string, exists bool) {
	v := m.new_code
	if v == nil {
		return
	}
	return *v, true
}

// OldNewCode returns the old "new_code" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldNewCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewCode: %w", err)
	}
	return oldValue.NewCode, nil
}

// ClearNewCode clears the value of the "new_code" field.
func (m *VersionEntryMutation) ClearNewCode() {
	m.new_code = nil
	m.clearedFields[versionentry.FieldNewCode] = struct{}{}
}

// NewCodeCleared returns if the "new_code" field was cleared in this mutation.
func (m *VersionEntryMutation) NewCodeCleared() bool {
	_, ok := m.clearedFields[versionentry.FieldNewCode]
	return ok
}

// ResetNewCode resets all changes to the "new_code" field.
func (m *VersionEntryMutation) ResetNewCode() {
	m.new_code = nil
	delete(m.clearedFields, versionentry.FieldNewCode)
}

// SetDiff sets the "diff" field.
func (m *VersionEntryMutation) SetDiff(s string) {
	m.diff = &s
}

// Diff returns the value of the "diff" field in the mutation.
func (m *VersionEntryMutation) Diff() (r string, exists bool) {
	v := m.diff
	if v == nil {
		return
	}
	return *v, true
}

// OldDiff returns the old "diff" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldDiff(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiff: %w", err)
	}
	return oldValue.Diff, nil
}

// ClearDiff clears the value of the "diff" field.
func (m *VersionEntryMutation) ClearDiff() {
	m.diff = nil
	m.clearedFields[versionentry.FieldDiff] = struct{}{}
}

// DiffCleared returns if the "diff" field was cleared in this mutation.
func (m *VersionEntryMutation) DiffCleared() bool {
	_, ok := m.clearedFields[versionentry.FieldDiff]
	return ok
}

// ResetDiff resets all changes to the "diff" field.
func (m *VersionEntryMutation) ResetDiff() {
	m.diff = nil
	delete(m.clearedFields, versionentry.FieldDiff)
}

// SetSessionID sets the "session_id" field.
func (m *VersionEntryMutation) SetSessionID(i int) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *VersionEntryMutation) SessionID() (r int, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *VersionEntryMutation) AddSessionID(i int) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *VersionEntryMutation) AddedSessionID() (r int, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSessionID clears the value of the "session_id" field.
func (m *VersionEntryMutation) ClearSessionID() {
	m.session_id = nil
	m.addsession_id = nil
	m.clearedFields[versionentry.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *VersionEntryMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[versionentry.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *VersionEntryMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
	delete(m.clearedFields, versionentry.FieldSessionID)
}

// SetTimestamp sets the "timestamp" field.
func (m *VersionEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *VersionEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *VersionEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetMetadata sets the "metadata" field.
func (m *VersionEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *VersionEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the VersionEntry entity.
// If the VersionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *VersionEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[versionentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *VersionEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[versionentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *VersionEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, versionentry.FieldMetadata)
}

// Where appends a list predicates to the VersionEntryMutation builder.
func (m *VersionEntryMutation) Where(ps ...predicate.VersionEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VersionEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VersionEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VersionEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VersionEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VersionEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VersionEntry).
func (m *VersionEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VersionEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.code_id != nil {
		fields = append(fields, versionentry.FieldCodeID)
	}
	if m.stage_id != nil {
		fields = append(fields, versionentry.FieldStageID)
	}
	if m.user_id != nil {
		fields = append(fields, versionentry.FieldUserID)
	}
	if m.level != nil {
		fields = append(fields, versionentry.FieldLevel)
	}
	if m.version_number != nil {
		fields = append(fields, versionentry.FieldVersionNumber)
	}
	if m.old_code != nil {
		fields = append(fields, versionentry.FieldOldCode)
	}
	if m.new_code != nil {
		fields = append(fields, versionentry.FieldNewCode)
	}
	if m.diff != nil {
		fields = append(fields, versionentry.FieldDiff)
	}
	if m.session_id != nil {
		fields = append(fields, versionentry.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, versionentry.FieldTimestamp)
	}
	if m.metadata != nil {
		fields = append(fields, versionentry.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VersionEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case versionentry.FieldCodeID:
		return m.CodeID()
	case versionentry.FieldStageID:
		return m.StageID()
	case versionentry.FieldUserID:
		return m.UserID()
	case versionentry.FieldLevel:
		return m.Level()
	case versionentry.FieldVersionNumber:
		return m.VersionNumber()
	case versionentry.FieldOldCode:
		return m.OldCode()
	case versionentry.FieldNewCode:
		return m.NewCode()
	case versionentry.FieldDiff:
		return m.Diff()
	case versionentry.FieldSessionID:
		return m.SessionID()
	case versionentry.FieldTimestamp:
		return m.Timestamp()
	case versionentry.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VersionEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case versionentry.FieldCodeID:
		return m.OldCodeID(ctx)
	case versionentry.FieldStageID:
		return m.OldStageID(ctx)
	case versionentry.FieldUserID:
		return m.OldUserID(ctx)
	case versionentry.FieldLevel:
		return m.OldLevel(ctx)
	case versionentry.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case versionentry.FieldOldCode:
		return m.OldOldCode(ctx)
	case versionentry.FieldNewCode:
		return m.OldNewCode(ctx)
	case versionentry.FieldDiff:
		return m.OldDiff(ctx)
	case versionentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case versionentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case versionentry.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown VersionEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case versionentry.FieldCodeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeID(v)
		return nil
	case versionentry.FieldStageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case versionentry.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case versionentry.FieldLevel:
		v, ok := value.(versionentry.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case versionentry.FieldVersionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case versionentry.FieldOldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldCode(v)
		return nil
	case versionentry.FieldNewCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewCode(v)
		return nil
	case versionentry.FieldDiff:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiff(v)
		return nil
	case versionentry.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case versionentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case versionentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown VersionEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VersionEntryMutation) AddedFields() []string {
	var fields []string
	if m.addcode_id != nil {
		fields = append(fields, versionentry.FieldCodeID)
	}
	if m.addstage_id != nil {
		fields = append(fields, versionentry.FieldStageID)
	}
	if m.adduser_id != nil {
		fields = append(fields, versionentry.FieldUserID)
	}
	if m.addsession_id != nil {
		fields = append(fields, versionentry.FieldSessionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VersionEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case versionentry.FieldCodeID:
		return m.AddedCodeID()
	case versionentry.FieldStageID:
		return m.AddedStageID()
	case versionentry.FieldUserID:
		return m.AddedUserID()
	case versionentry.FieldSessionID:
		return m.AddedSessionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case versionentry.FieldCodeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCodeID(v)
		return nil
	case versionentry.FieldStageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageID(v)
		return nil
	case versionentry.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case versionentry.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown VersionEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VersionEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(versionentry.FieldCodeID) {
		fields = append(fields, versionentry.FieldCodeID)
	}
	if m.FieldCleared(versionentry.FieldOldCode) {
		fields = append(fields, versionentry.FieldOldCode)
	}
	if m.FieldCleared(versionentry.FieldNewCode) {
		fields = append(fields, versionentry.FieldNewCode)
	}
	if m.FieldCleared(versionentry.FieldDiff) {
		fields = append(fields, versionentry.FieldDiff)
	}
	if m.FieldCleared(versionentry.FieldSessionID) {
		fields = append(fields, versionentry.FieldSessionID)
	}
	if m.FieldCleared(versionentry.FieldMetadata) {
		fields = append(fields, versionentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VersionEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VersionEntryMutation) ClearField(name string) error {
	switch name {
	case versionentry.FieldCodeID:
		m.ClearCodeID()
		return nil
	case versionentry.FieldOldCode:
		m.ClearOldCode()
		return nil
	case versionentry.FieldNewCode:
		m.ClearNewCode()
		return nil
	case versionentry.FieldDiff:
		m.ClearDiff()
		return nil
	case versionentry.FieldSessionID:
		m.ClearSessionID()
		return nil
	case versionentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown VersionEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VersionEntryMutation) ResetField(name string) error {
	switch name {
	case versionentry.FieldCodeID:
		m.ResetCodeID()
		return nil
	case versionentry.FieldStageID:
		m.ResetStageID()
		return nil
	case versionentry.FieldUserID:
		m.ResetUserID()
		return nil
	case versionentry.FieldLevel:
		m.ResetLevel()
		return nil
	case versionentry.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case versionentry.FieldOldCode:
		m.ResetOldCode()
		return nil
	case versionentry.FieldNewCode:
		m.ResetNewCode()
		return nil
	case versionentry.FieldDiff:
		m.ResetDiff()
		return nil
	case versionentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case versionentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case versionentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown VersionEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VersionEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VersionEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VersionEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VersionEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VersionEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VersionEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VersionEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VersionEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VersionEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VersionEntry edge %s", name)
}
