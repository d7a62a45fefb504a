// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexus-controls/plcforge/ent/versionentry"
)

// VersionEntry is the model entity for the VersionEntry schema.
type VersionEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Zero for actions that predate any generated code
	CodeID int `json:"code_id,omitempty"`
	// StageID holds the value of the "stage_id" field.
	StageID int `json:"stage_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Level holds the value of the "level" field.
	Level versionentry.Level `json:"level,omitempty"`
	// VersionNumber holds the value of the "version_number" field.
	VersionNumber string `json:"version_number,omitempty"`
	// OldCode holds the value of the "old_code" field.
	OldCode string `json:"old_code,omitempty"`
	// NewCode holds the value of the "new_code" field.
	NewCode string `json:"new_code,omitempty"`
	// Diff holds the value of the "diff" field.
	Diff string `json:"diff,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID int `json:"session_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VersionEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case versionentry.FieldMetadata:
			values[i] = new([]byte)
		case versionentry.FieldID, versionentry.FieldCodeID, versionentry.FieldStageID, versionentry.FieldUserID, versionentry.FieldSessionID:
			values[i] = new(sql.NullInt64)
		case versionentry.FieldLevel, versionentry.FieldVersionNumber, versionentry.FieldOldCode, versionentry.FieldNewCode, versionentry.FieldDiff:
			values[i] = new(sql.NullString)
		case versionentry.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VersionEntry fields.
func (_m *VersionEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case versionentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case versionentry.FieldCodeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field code_id", values[i])
			} else if value.Valid {
				_m.CodeID = int(value.Int64)
			}
		case versionentry.FieldStageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = int(value.Int64)
			}
		case versionentry.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case versionentry.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = versionentry.Level(value.String)
			}
		case versionentry.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = value.String
			}
		case versionentry.FieldOldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_code", values[i])
			} else if value.Valid {
				_m.OldCode = value.String
			}
		case versionentry.FieldNewCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_code", values[i])
			} else if value.Valid {
				_m.NewCode = value.String
			}
		case versionentry.FieldDiff:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diff", values[i])
			} else if value.Valid {
				_m.Diff = value.String
			}
		case versionentry.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = int(value.Int64)
			}
		case versionentry.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case versionentry.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VersionEntry.
// This includes values selected through modifiers, order, etc.
func (_m *VersionEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VersionEntry.
// Note that you need to call VersionEntry.Unwrap() before calling this method if this VersionEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VersionEntry) Update() *VersionEntryUpdateOne {
	return NewVersionEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VersionEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VersionEntry) Unwrap() *VersionEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VersionEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VersionEntry) String() string {
	var builder strings.Builder
	builder.WriteString("VersionEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CodeID))
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(_m.VersionNumber)
	builder.WriteString(", ")
	builder.WriteString("old_code=")
	builder.WriteString(_m.OldCode)
	builder.WriteString(", ")
	builder.WriteString("new_code=")
	builder.WriteString(_m.NewCode)
	builder.WriteString(", ")
	builder.WriteString("diff=")
	builder.WriteString(_m.Diff)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// VersionEntries is a parsable slice of VersionEntry.
type VersionEntries []*VersionEntry
