// Code generated by ent, DO NOT EDIT.

package stage

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stage type in the database.
	Label = "stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldStageNumber holds the string denoting the stage_number field in the database.
	FieldStageNumber = "stage_number"
	// FieldStageName holds the string denoting the stage_name field in the database.
	FieldStageName = "stage_name"
	// FieldStageType holds the string denoting the stage_type field in the database.
	FieldStageType = "stage_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldOriginalLogic holds the string denoting the original_logic field in the database.
	FieldOriginalLogic = "original_logic"
	// FieldEditedLogic holds the string denoting the edited_logic field in the database.
	FieldEditedLogic = "edited_logic"
	// FieldIsValidated holds the string denoting the is_validated field in the database.
	FieldIsValidated = "is_validated"
	// FieldIsFinalized holds the string denoting the is_finalized field in the database.
	FieldIsFinalized = "is_finalized"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldVersionNumber holds the string denoting the version_number field in the database.
	FieldVersionNumber = "version_number"
	// FieldLastAction holds the string denoting the last_action field in the database.
	FieldLastAction = "last_action"
	// FieldLastActionTimestamp holds the string denoting the last_action_timestamp field in the database.
	FieldLastActionTimestamp = "last_action_timestamp"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeCodes holds the string denoting the codes edge name in mutations.
	EdgeCodes = "codes"
	// Table holds the table name of the stage in the database.
	Table = "stages"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "stages"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// CodesTable is the table that holds the codes relation/edge.
	CodesTable = "generated_codes"
	// CodesInverseTable is the table name for the GeneratedCode entity.
	// It exists in this package in order to avoid circular dependency with the "generatedcode" package.
	CodesInverseTable = "generated_codes"
	// CodesColumn is the table column denoting the codes relation/edge.
	CodesColumn = "stage_id"
)

// Columns holds all SQL columns for stage fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldStageNumber,
	FieldStageName,
	FieldStageType,
	FieldDescription,
	FieldOriginalLogic,
	FieldEditedLogic,
	FieldIsValidated,
	FieldIsFinalized,
	FieldDependencies,
	FieldVersionNumber,
	FieldLastAction,
	FieldLastActionTimestamp,
	FieldCreatedAt,
	FieldUpdatedAt,
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

var (
	// StageNumberValidator is a validator for the "stage_number" field. It is called by the builders before save.
	StageNumberValidator func(int) error
	// StageNameValidator is a validator for the "stage_name" field. It is called by the builders before save.
	StageNameValidator func(string) error
	// DefaultIsValidated holds the default value on creation for the "is_validated" field.
	DefaultIsValidated bool
	// DefaultIsFinalized holds the default value on creation for the "is_finalized" field.
	DefaultIsFinalized bool
	// DefaultVersionNumber holds the default value on creation for the "version_number" field.
	DefaultVersionNumber string
)

// StageType defines the type for the "stage_type" enum field.
type StageType string

// StageType values.
const (
	StageTypeIdle       StageType = "idle"
	StageTypeSafety     StageType = "safety"
	StageTypeOperation  StageType = "operation"
	StageTypeFault      StageType = "fault"
	StageTypeShutdown   StageType = "shutdown"
	StageTypeValidation StageType = "validation"
)

func (st StageType) String() string {
	return string(st)
}

// StageTypeValidator is a validator for the "stage_type" field enum values. It is called by the builders before save.
func StageTypeValidator(st StageType) error {
	switch st {
	case StageTypeIdle, StageTypeSafety, StageTypeOperation, StageTypeFault, StageTypeShutdown, StageTypeValidation:
		return nil
	default:
		return fmt.Errorf("stage: invalid enum value for stage_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Stage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStageNumber orders the results by the stage_number field.
func ByStageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageNumber, opts...).ToFunc()
}

// ByStageName orders the results by the stage_name field.
func ByStageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageName, opts...).ToFunc()
}

// ByStageType orders the results by the stage_type field.
func ByStageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByOriginalLogic orders the results by the original_logic field.
func ByOriginalLogic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalLogic, opts...).ToFunc()
}

// ByEditedLogic orders the results by the edited_logic field.
func ByEditedLogic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditedLogic, opts...).ToFunc()
}

// ByIsValidated orders the results by the is_validated field.
func ByIsValidated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValidated, opts...).ToFunc()
}

// ByIsFinalized orders the results by the is_finalized field.
func ByIsFinalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFinalized, opts...).ToFunc()
}

// ByVersionNumber orders the results by the version_number field.
func ByVersionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionNumber, opts...).ToFunc()
}

// ByLastAction orders the results by the last_action field.
func ByLastAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAction, opts...).ToFunc()
}

// ByLastActionTimestamp orders the results by the last_action_timestamp field.
func ByLastActionTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActionTimestamp, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByCodesCount orders the results by codes count.
func ByCodesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCodesStep(), opts...)
	}
}

// ByCodes orders the results by codes terms.
func ByCodes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCodesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newCodesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CodesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CodesTable, CodesColumn),
	)
}
