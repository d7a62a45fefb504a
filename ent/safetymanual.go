// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/safetymanual"
)

// SafetyManual is the model entity for the SafetyManual schema.
type SafetyManual struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// True once the per-project retrieval corpus is built
	IsEmbedded bool `json:"is_embedded,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SafetyManualQuery when eager-loading is set.
	Edges        SafetyManualEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SafetyManualEdges holds the relations/edges for other nodes in the graph.
type SafetyManualEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SafetyManualEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SafetyManual) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case safetymanual.FieldIsEmbedded:
			values[i] = new(sql.NullBool)
		case safetymanual.FieldID, safetymanual.FieldProjectID:
			values[i] = new(sql.NullInt64)
		case safetymanual.FieldFilename, safetymanual.FieldFilePath:
			values[i] = new(sql.NullString)
		case safetymanual.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SafetyManual fields.
func (_m *SafetyManual) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case safetymanual.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case safetymanual.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = int(value.Int64)
			}
		case safetymanual.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case safetymanual.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case safetymanual.FieldIsEmbedded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_embedded", values[i])
			} else if value.Valid {
				_m.IsEmbedded = value.Bool
			}
		case safetymanual.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SafetyManual.
// This includes values selected through modifiers, order, etc.
func (_m *SafetyManual) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the SafetyManual entity.
func (_m *SafetyManual) QueryProject() *ProjectQuery {
	return NewSafetyManualClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this SafetyManual.
// Note that you need to call SafetyManual.Unwrap() before calling this method if this SafetyManual
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SafetyManual) Update() *SafetyManualUpdateOne {
	return NewSafetyManualClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SafetyManual entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SafetyManual) Unwrap() *SafetyManual {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SafetyManual is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SafetyManual) String() string {
	var builder strings.Builder
	builder.WriteString("SafetyManual(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("is_embedded=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEmbedded))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SafetyManuals is a parsable slice of SafetyManual.
type SafetyManuals []*SafetyManual
