// Code generated by ent, DO NOT EDIT.

package generatedcode

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the generatedcode type in the database.
	Label = "generated_code"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldGlobalLabels holds the string denoting the global_labels field in the database.
	FieldGlobalLabels = "global_labels"
	// FieldLocalLabels holds the string denoting the local_labels field in the database.
	FieldLocalLabels = "local_labels"
	// FieldProgramBody holds the string denoting the program_body field in the database.
	FieldProgramBody = "program_body"
	// FieldProgramBlocks holds the string denoting the program_blocks field in the database.
	FieldProgramBlocks = "program_blocks"
	// FieldFunctions holds the string denoting the functions field in the database.
	FieldFunctions = "functions"
	// FieldFunctionBlocks holds the string denoting the function_blocks field in the database.
	FieldFunctionBlocks = "function_blocks"
	// FieldProgramName holds the string denoting the program_name field in the database.
	FieldProgramName = "program_name"
	// FieldExecutionType holds the string denoting the execution_type field in the database.
	FieldExecutionType = "execution_type"
	// FieldCodeMetadata holds the string denoting the code_metadata field in the database.
	FieldCodeMetadata = "code_metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeStage holds the string denoting the stage edge name in mutations.
	EdgeStage = "stage"
	// Table holds the table name of the generatedcode in the database.
	Table = "generated_codes"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "generated_codes"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// StageTable is the table that holds the stage relation/edge.
	StageTable = "generated_codes"
	// StageInverseTable is the table name for the Stage entity.
	// It exists in this package in order to avoid circular dependency with the "stage" package.
	StageInverseTable = "stages"
	// StageColumn is the table column denoting the stage relation/edge.
	StageColumn = "stage_id"
)

// Columns holds all SQL columns for generatedcode fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldStageID,
	FieldGlobalLabels,
	FieldLocalLabels,
	FieldProgramBody,
	FieldProgramBlocks,
	FieldFunctions,
	FieldFunctionBlocks,
	FieldProgramName,
	FieldExecutionType,
	FieldCodeMetadata,
	FieldCreatedAt,
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

// ExecutionType defines the type for the "execution_type" enum field.
type ExecutionType string

// ExecutionTypeScan is the default value of the ExecutionType enum.
const DefaultExecutionType = ExecutionTypeScan

// ExecutionType values.
const (
	ExecutionTypeScan      ExecutionType = "Scan"
	ExecutionTypeInitial   ExecutionType = "Initial"
	ExecutionTypeEvent     ExecutionType = "Event"
	ExecutionTypeFixedScan ExecutionType = "Fixed Scan"
	ExecutionTypeStandby   ExecutionType = "Standby"
)

func (et ExecutionType) String() string {
	return string(et)
}

// ExecutionTypeValidator is a validator for the "execution_type" field enum values. It is called by the builders before save.
func ExecutionTypeValidator(et ExecutionType) error {
	switch et {
	case ExecutionTypeScan, ExecutionTypeInitial, ExecutionTypeEvent, ExecutionTypeFixedScan, ExecutionTypeStandby:
		return nil
	default:
		return fmt.Errorf("generatedcode: invalid enum value for execution_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the GeneratedCode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByProgramBody orders the results by the program_body field.
func ByProgramBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgramBody, opts...).ToFunc()
}

// ByProgramName orders the results by the program_name field.
func ByProgramName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgramName, opts...).ToFunc()
}

// ByExecutionType orders the results by the execution_type field.
func ByExecutionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByStageField orders the results by stage field.
func ByStageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newStageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
	)
}
