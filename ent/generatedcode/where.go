// Code generated by ent, DO NOT EDIT.

package generatedcode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexus-controls/plcforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldProjectID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldStageID, v))
}

// ProgramBody applies equality check predicate on the "program_body" field. It's identical to ProgramBodyEQ.
func ProgramBody(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldProgramBody, v))
}

// ProgramName applies equality check predicate on the "program_name" field. It's identical to ProgramNameEQ.
func ProgramName(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldProgramName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotIn(FieldProjectID, vs...))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...int) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotIn(FieldStageID, vs...))
}

// GlobalLabelsIsNil applies the IsNil predicate on the "global_labels" field.
func GlobalLabelsIsNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIsNull(FieldGlobalLabels))
}

// GlobalLabelsNotNil applies the NotNil predicate on the "global_labels" field.
func GlobalLabelsNotNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotNull(FieldGlobalLabels))
}

// LocalLabelsIsNil applies the IsNil predicate on the "local_labels" field.
func LocalLabelsIsNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIsNull(FieldLocalLabels))
}

// LocalLabelsNotNil applies the NotNil predicate on the "local_labels" field.
func LocalLabelsNotNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotNull(FieldLocalLabels))
}

// ProgramBodyEQ applies the EQ predicate on the "program_body" field.
func ProgramBodyEQ(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldProgramBody, v))
}

// ProgramBodyNEQ applies the NEQ predicate on the "program_body" field.
func ProgramBodyNEQ(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNEQ(FieldProgramBody, v))
}

// ProgramBodyIn applies the In predicate on the "program_body" field.
func ProgramBodyIn(vs ...string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIn(FieldProgramBody, vs...))
}

// ProgramBodyNotIn applies the NotIn predicate on the "program_body" field.
func ProgramBodyNotIn(vs ...string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotIn(FieldProgramBody, vs...))
}

// ProgramBodyGT applies the GT predicate on the "program_body" field.
func ProgramBodyGT(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldGT(FieldProgramBody, v))
}

// ProgramBodyGTE applies the GTE predicate on the "program_body" field.
func ProgramBodyGTE(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldGTE(FieldProgramBody, v))
}

// ProgramBodyLT applies the LT predicate on the "program_body" field.
func ProgramBodyLT(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldLT(FieldProgramBody, v))
}

// ProgramBodyLTE applies the LTE predicate on the "program_body" field.
func ProgramBodyLTE(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldLTE(FieldProgramBody, v))
}

// ProgramBodyContains applies the Contains predicate on the "program_body" field.
func ProgramBodyContains(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldContains(FieldProgramBody, v))
}

// ProgramBodyHasPrefix applies the HasPrefix predicate on the "program_body" field.
func ProgramBodyHasPrefix(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldHasPrefix(FieldProgramBody, v))
}

// ProgramBodyHasSuffix applies the HasSuffix predicate on the "program_body" field.
func ProgramBodyHasSuffix(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldHasSuffix(FieldProgramBody, v))
}

// ProgramBodyIsNil applies the IsNil predicate on the "program_body" field.
func ProgramBodyIsNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIsNull(FieldProgramBody))
}

// ProgramBodyNotNil applies the NotNil predicate on the "program_body" field.
func ProgramBodyNotNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotNull(FieldProgramBody))
}

// ProgramBodyEqualFold applies the EqualFold predicate on the "program_body" field.
func ProgramBodyEqualFold(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEqualFold(FieldProgramBody, v))
}

// ProgramBodyContainsFold applies the ContainsFold predicate on the "program_body" field.
func ProgramBodyContainsFold(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldContainsFold(FieldProgramBody, v))
}

// ProgramBlocksIsNil applies the IsNil predicate on the "program_blocks" field.
func ProgramBlocksIsNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIsNull(FieldProgramBlocks))
}

// ProgramBlocksNotNil applies the NotNil predicate on the "program_blocks" field.
func ProgramBlocksNotNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotNull(FieldProgramBlocks))
}

// FunctionsIsNil applies the IsNil predicate on the "functions" field.
func FunctionsIsNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIsNull(FieldFunctions))
}

// FunctionsNotNil applies the NotNil predicate on the "functions" field.
func FunctionsNotNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotNull(FieldFunctions))
}

// FunctionBlocksIsNil applies the IsNil predicate on the "function_blocks" field.
func FunctionBlocksIsNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIsNull(FieldFunctionBlocks))
}

// FunctionBlocksNotNil applies the NotNil predicate on the "function_blocks" field.
func FunctionBlocksNotNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotNull(FieldFunctionBlocks))
}

// ProgramNameEQ applies the EQ predicate on the "program_name" field.
func ProgramNameEQ(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldProgramName, v))
}

// ProgramNameNEQ applies the NEQ predicate on the "program_name" field.
func ProgramNameNEQ(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNEQ(FieldProgramName, v))
}

// ProgramNameIn applies the In predicate on the "program_name" field.
func ProgramNameIn(vs ...string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIn(FieldProgramName, vs...))
}

// ProgramNameNotIn applies the NotIn predicate on the "program_name" field.
func ProgramNameNotIn(vs ...string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotIn(FieldProgramName, vs...))
}

// ProgramNameGT applies the GT predicate on the "program_name" field.
func ProgramNameGT(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldGT(FieldProgramName, v))
}

// ProgramNameGTE applies the GTE predicate on the "program_name" field.
func ProgramNameGTE(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldGTE(FieldProgramName, v))
}

// ProgramNameLT applies the LT predicate on the "program_name" field.
func ProgramNameLT(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldLT(FieldProgramName, v))
}

// ProgramNameLTE applies the LTE predicate on the "program_name" field.
func ProgramNameLTE(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldLTE(FieldProgramName, v))
}

// ProgramNameContains applies the Contains predicate on the "program_name" field.
func ProgramNameContains(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldContains(FieldProgramName, v))
}

// ProgramNameHasPrefix applies the HasPrefix predicate on the "program_name" field.
func ProgramNameHasPrefix(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldHasPrefix(FieldProgramName, v))
}

// ProgramNameHasSuffix applies the HasSuffix predicate on the "program_name" field.
func ProgramNameHasSuffix(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldHasSuffix(FieldProgramName, v))
}

// ProgramNameEqualFold applies the EqualFold predicate on the "program_name" field.
func ProgramNameEqualFold(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEqualFold(FieldProgramName, v))
}

// ProgramNameContainsFold applies the ContainsFold predicate on the "program_name" field.
func ProgramNameContainsFold(v string) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldContainsFold(FieldProgramName, v))
}

// ExecutionTypeEQ applies the EQ predicate on the "execution_type" field.
func ExecutionTypeEQ(v ExecutionType) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldExecutionType, v))
}

// ExecutionTypeNEQ applies the NEQ predicate on the "execution_type" field.
func ExecutionTypeNEQ(v ExecutionType) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNEQ(FieldExecutionType, v))
}

// ExecutionTypeIn applies the In predicate on the "execution_type" field.
func ExecutionTypeIn(vs ...ExecutionType) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIn(FieldExecutionType, vs...))
}

// ExecutionTypeNotIn applies the NotIn predicate on the "execution_type" field.
func ExecutionTypeNotIn(vs ...ExecutionType) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotIn(FieldExecutionType, vs...))
}

// CodeMetadataIsNil applies the IsNil predicate on the "code_metadata" field.
func CodeMetadataIsNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIsNull(FieldCodeMetadata))
}

// CodeMetadataNotNil applies the NotNil predicate on the "code_metadata" field.
func CodeMetadataNotNil() predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotNull(FieldCodeMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.GeneratedCode {
	return predicate.GeneratedCode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.GeneratedCode {
	return predicate.GeneratedCode(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStage applies the HasEdge predicate on the "stage" edge.
func HasStage() predicate.GeneratedCode {
	return predicate.GeneratedCode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageWith applies the HasEdge predicate on the "stage" edge with a given conditions (other predicates).
func HasStageWith(preds ...predicate.Stage) predicate.GeneratedCode {
	return predicate.GeneratedCode(func(s *sql.Selector) {
		step := newStageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedCode) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedCode) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedCode) predicate.GeneratedCode {
	return predicate.GeneratedCode(sql.NotPredicates(p))
}
