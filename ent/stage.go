// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/stage"
	"github.com/nexus-controls/plcforge/pkg/models"
)

// Stage is the model entity for the Stage schema.
type Stage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// StageNumber holds the value of the "stage_number" field.
	StageNumber int `json:"stage_number,omitempty"`
	// StageName holds the value of the "stage_name" field.
	StageName string `json:"stage_name,omitempty"`
	// StageType holds the value of the "stage_type" field.
	StageType stage.StageType `json:"stage_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// User wording as produced by the segregator; edits go to edited_logic
	OriginalLogic string `json:"original_logic,omitempty"`
	// EditedLogic holds the value of the "edited_logic" field.
	EditedLogic string `json:"edited_logic,omitempty"`
	// IsValidated holds the value of the "is_validated" field.
	IsValidated bool `json:"is_validated,omitempty"`
	// IsFinalized holds the value of the "is_finalized" field.
	IsFinalized bool `json:"is_finalized,omitempty"`
	// Dependencies holds the value of the "dependencies" field.
	Dependencies []models.StageDependency `json:"dependencies,omitempty"`
	// VersionNumber holds the value of the "version_number" field.
	VersionNumber string `json:"version_number,omitempty"`
	// LastAction holds the value of the "last_action" field.
	LastAction string `json:"last_action,omitempty"`
	// LastActionTimestamp holds the value of the "last_action_timestamp" field.
	LastActionTimestamp *time.Time `json:"last_action_timestamp,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageQuery when eager-loading is set.
	Edges        StageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageEdges holds the relations/edges for other nodes in the graph.
type StageEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Codes holds the value of the codes edge.
	Codes []*GeneratedCode `json:"codes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// CodesOrErr returns the Codes value or an error if the edge
// was not loaded in eager-loading.
func (e StageEdges) CodesOrErr() ([]*GeneratedCode, error) {
	if e.loadedTypes[1] {
		return e.Codes, nil
	}
	return nil, &NotLoadedError{edge: "codes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Stage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stage.FieldDependencies:
			values[i] = new([]byte)
		case stage.FieldIsValidated, stage.FieldIsFinalized:
			values[i] = new(sql.NullBool)
		case stage.FieldID, stage.FieldProjectID, stage.FieldStageNumber:
			values[i] = new(sql.NullInt64)
		case stage.FieldStageName, stage.FieldStageType, stage.FieldDescription, stage.FieldOriginalLogic, stage.FieldEditedLogic, stage.FieldVersionNumber, stage.FieldLastAction:
			values[i] = new(sql.NullString)
		case stage.FieldLastActionTimestamp, stage.FieldCreatedAt, stage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Stage fields.
func (_m *Stage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stage.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = int(value.Int64)
			}
		case stage.FieldStageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_number", values[i])
			} else if value.Valid {
				_m.StageNumber = int(value.Int64)
			}
		case stage.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = value.String
			}
		case stage.FieldStageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_type", values[i])
			} else if value.Valid {
				_m.StageType = stage.StageType(value.String)
			}
		case stage.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case stage.FieldOriginalLogic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_logic", values[i])
			} else if value.Valid {
				_m.OriginalLogic = value.String
			}
		case stage.FieldEditedLogic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field edited_logic", values[i])
			} else if value.Valid {
				_m.EditedLogic = value.String
			}
		case stage.FieldIsValidated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_validated", values[i])
			} else if value.Valid {
				_m.IsValidated = value.Bool
			}
		case stage.FieldIsFinalized:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_finalized", values[i])
			} else if value.Valid {
				_m.IsFinalized = value.Bool
			}
		case stage.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case stage.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = value.String
			}
		case stage.FieldLastAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_action", values[i])
			} else if value.Valid {
				_m.LastAction = value.String
			}
		case stage.FieldLastActionTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_action_timestamp", values[i])
			} else if value.Valid {
				_m.LastActionTimestamp = new(time.Time)
				*_m.LastActionTimestamp = value.Time
			}
		case stage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Stage.
// This includes values selected through modifiers, order, etc.
func (_m *Stage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Stage entity.
func (_m *Stage) QueryProject() *ProjectQuery {
	return NewStageClient(_m.config).QueryProject(_m)
}

// QueryCodes queries the "codes" edge of the Stage entity.
func (_m *Stage) QueryCodes() *GeneratedCodeQuery {
	return NewStageClient(_m.config).QueryCodes(_m)
}

// Update returns a builder for updating this Stage.
// Note that you need to call Stage.Unwrap() before calling this method if this Stage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Stage) Update() *StageUpdateOne {
	return NewStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Stage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Stage) Unwrap() *Stage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Stage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Stage) String() string {
	var builder strings.Builder
	builder.WriteString("Stage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("stage_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageNumber))
	builder.WriteString(", ")
	builder.WriteString("stage_name=")
	builder.WriteString(_m.StageName)
	builder.WriteString(", ")
	builder.WriteString("stage_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageType))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("original_logic=")
	builder.WriteString(_m.OriginalLogic)
	builder.WriteString(", ")
	builder.WriteString("edited_logic=")
	builder.WriteString(_m.EditedLogic)
	builder.WriteString(", ")
	builder.WriteString("is_validated=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValidated))
	builder.WriteString(", ")
	builder.WriteString("is_finalized=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFinalized))
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(_m.VersionNumber)
	builder.WriteString(", ")
	builder.WriteString("last_action=")
	builder.WriteString(_m.LastAction)
	builder.WriteString(", ")
	if v := _m.LastActionTimestamp; v != nil {
		builder.WriteString("last_action_timestamp=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Stages is a parsable slice of Stage.
type Stages []*Stage
