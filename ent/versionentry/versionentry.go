// Code generated by ent, DO NOT EDIT.

package versionentry

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the versionentry type in the database.
	Label = "version_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCodeID holds the string denoting the code_id field in the database.
	FieldCodeID = "code_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldVersionNumber holds the string denoting the version_number field in the database.
	FieldVersionNumber = "version_number"
	// FieldOldCode holds the string denoting the old_code field in the database.
	FieldOldCode = "old_code"
	// FieldNewCode holds the string denoting the new_code field in the database.
	FieldNewCode = "new_code"
	// FieldDiff holds the string denoting the diff field in the database.
	FieldDiff = "diff"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the versionentry in the database.
	Table = "version_entries"
)

// Columns holds all SQL columns for versionentry fields.
var Columns = []string{
	FieldID,
	FieldCodeID,
	FieldStageID,
	FieldUserID,
	FieldLevel,
	FieldVersionNumber,
	FieldOldCode,
	FieldNewCode,
	FieldDiff,
	FieldSessionID,
	FieldTimestamp,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Level defines the type for the "level" enum field.
type Level string

// LevelEvent is the default value of the Level enum.
const DefaultLevel = LevelEvent

// Level values.
const (
	LevelEvent      Level = "event"
	LevelSession    Level = "session"
	LevelCheckpoint Level = "checkpoint"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelEvent, LevelSession, LevelCheckpoint:
		return nil
	default:
		return fmt.Errorf("versionentry: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the VersionEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCodeID orders the results by the code_id field.
func ByCodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodeID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByVersionNumber orders the results by the version_number field.
func ByVersionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionNumber, opts...).ToFunc()
}

// ByOldCode orders the results by the old_code field.
func ByOldCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldCode, opts...).ToFunc()
}

// ByNewCode orders the results by the new_code field.
func ByNewCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewCode, opts...).ToFunc()
}

// ByDiff orders the results by the diff field.
func ByDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiff, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
