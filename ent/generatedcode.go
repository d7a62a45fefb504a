// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexus-controls/plcforge/ent/generatedcode"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/stage"
	"github.com/nexus-controls/plcforge/pkg/models"
)

// GeneratedCode is the model entity for the GeneratedCode schema.
type GeneratedCode struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// StageID holds the value of the "stage_id" field.
	StageID int `json:"stage_id,omitempty"`
	// Byte-identical across all stages of a project after merge
	GlobalLabels []models.Label `json:"global_labels,omitempty"`
	// LocalLabels holds the value of the "local_labels" field.
	LocalLabels []models.Label `json:"local_labels,omitempty"`
	// ProgramBody holds the value of the "program_body" field.
	ProgramBody string `json:"program_body,omitempty"`
	// ProgramBlocks holds the value of the "program_blocks" field.
	ProgramBlocks []models.ProgramBlock `json:"program_blocks,omitempty"`
	// Functions holds the value of the "functions" field.
	Functions []models.Function `json:"functions,omitempty"`
	// FunctionBlocks holds the value of the "function_blocks" field.
	FunctionBlocks []models.FunctionBlock `json:"function_blocks,omitempty"`
	// ProgramName holds the value of the "program_name" field.
	ProgramName string `json:"program_name,omitempty"`
	// ExecutionType holds the value of the "execution_type" field.
	ExecutionType generatedcode.ExecutionType `json:"execution_type,omitempty"`
	// CodeMetadata holds the value of the "code_metadata" field.
	CodeMetadata map[string]interface{} `json:"code_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GeneratedCodeQuery when eager-loading is set.
	Edges        GeneratedCodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GeneratedCodeEdges holds the relations/edges for other nodes in the graph.
type GeneratedCodeEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Stage holds the value of the stage edge.
	Stage *Stage `json:"stage,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedCodeEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// StageOrErr returns the Stage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedCodeEdges) StageOrErr() (*Stage, error) {
	if e.Stage != nil {
		return e.Stage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: stage.Label}
	}
	return nil, &NotLoadedError{edge: "stage"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedCode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generatedcode.FieldGlobalLabels, generatedcode.FieldLocalLabels, generatedcode.FieldProgramBlocks, generatedcode.FieldFunctions, generatedcode.FieldFunctionBlocks, generatedcode.FieldCodeMetadata:
			values[i] = new([]byte)
		case generatedcode.FieldID, generatedcode.FieldProjectID, generatedcode.FieldStageID:
			values[i] = new(sql.NullInt64)
		case generatedcode.FieldProgramBody, generatedcode.FieldProgramName, generatedcode.FieldExecutionType:
			values[i] = new(sql.NullString)
		case generatedcode.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedCode fields.
func (_m *GeneratedCode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generatedcode.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case generatedcode.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = int(value.Int64)
			}
		case generatedcode.FieldStageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = int(value.Int64)
			}
		case generatedcode.FieldGlobalLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field global_labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GlobalLabels); err != nil {
					return fmt.Errorf("unmarshal field global_labels: %w", err)
				}
			}
		case generatedcode.FieldLocalLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field local_labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LocalLabels); err != nil {
					return fmt.Errorf("unmarshal field local_labels: %w", err)
				}
			}
		case generatedcode.FieldProgramBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field program_body", values[i])
			} else if value.Valid {
				_m.ProgramBody = value.String
			}
		case generatedcode.FieldProgramBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field program_blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProgramBlocks); err != nil {
					return fmt.Errorf("unmarshal field program_blocks: %w", err)
				}
			}
		case generatedcode.FieldFunctions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field functions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Functions); err != nil {
					return fmt.Errorf("unmarshal field functions: %w", err)
				}
			}
		case generatedcode.FieldFunctionBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field function_blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FunctionBlocks); err != nil {
					return fmt.Errorf("unmarshal field function_blocks: %w", err)
				}
			}
		case generatedcode.FieldProgramName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field program_name", values[i])
			} else if value.Valid {
				_m.ProgramName = value.String
			}
		case generatedcode.FieldExecutionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_type", values[i])
			} else if value.Valid {
				_m.ExecutionType = generatedcode.ExecutionType(value.String)
			}
		case generatedcode.FieldCodeMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field code_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CodeMetadata); err != nil {
					return fmt.Errorf("unmarshal field code_metadata: %w", err)
				}
			}
		case generatedcode.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedCode.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedCode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the GeneratedCode entity.
func (_m *GeneratedCode) QueryProject() *ProjectQuery {
	return NewGeneratedCodeClient(_m.config).QueryProject(_m)
}

// QueryStage queries the "stage" edge of the GeneratedCode entity.
func (_m *GeneratedCode) QueryStage() *StageQuery {
	return NewGeneratedCodeClient(_m.config).QueryStage(_m)
}

// Update returns a builder for updating this GeneratedCode.
// Note that you need to call GeneratedCode.Unwrap() before calling this method if this GeneratedCode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedCode) Update() *GeneratedCodeUpdateOne {
	return NewGeneratedCodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedCode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedCode) Unwrap() *GeneratedCode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedCode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedCode) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedCode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageID))
	builder.WriteString(", ")
	builder.WriteString("global_labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.GlobalLabels))
	builder.WriteString(", ")
	builder.WriteString("local_labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocalLabels))
	builder.WriteString(", ")
	builder.WriteString("program_body=")
	builder.WriteString(_m.ProgramBody)
	builder.WriteString(", ")
	builder.WriteString("program_blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgramBlocks))
	builder.WriteString(", ")
	builder.WriteString("functions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Functions))
	builder.WriteString(", ")
	builder.WriteString("function_blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.FunctionBlocks))
	builder.WriteString(", ")
	builder.WriteString("program_name=")
	builder.WriteString(_m.ProgramName)
	builder.WriteString(", ")
	builder.WriteString("execution_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionType))
	builder.WriteString(", ")
	builder.WriteString("code_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.CodeMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedCodes is a parsable slice of GeneratedCode.
type GeneratedCodes []*GeneratedCode
