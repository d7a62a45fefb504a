// Code generated by ent, DO NOT EDIT.

package stage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexus-controls/plcforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldProjectID, v))
}

// StageNumber applies equality check predicate on the "stage_number" field. It's identical to StageNumberEQ.
func StageNumber(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageNumber, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDescription, v))
}

// OriginalLogic applies equality check predicate on the "original_logic" field. It's identical to OriginalLogicEQ.
func OriginalLogic(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldOriginalLogic, v))
}

// EditedLogic applies equality check predicate on the "edited_logic" field. It's identical to EditedLogicEQ.
func EditedLogic(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldEditedLogic, v))
}

// IsValidated applies equality check predicate on the "is_validated" field. It's identical to IsValidatedEQ.
func IsValidated(v bool) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldIsValidated, v))
}

// IsFinalized applies equality check predicate on the "is_finalized" field. It's identical to IsFinalizedEQ.
func IsFinalized(v bool) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldIsFinalized, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldVersionNumber, v))
}

// LastAction applies equality check predicate on the "last_action" field. It's identical to LastActionEQ.
func LastAction(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldLastAction, v))
}

// LastActionTimestamp applies equality check predicate on the "last_action_timestamp" field. It's identical to LastActionTimestampEQ.
func LastActionTimestamp(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldLastActionTimestamp, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldProjectID, vs...))
}

// StageNumberEQ applies the EQ predicate on the "stage_number" field.
func StageNumberEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageNumber, v))
}

// StageNumberNEQ applies the NEQ predicate on the "stage_number" field.
func StageNumberNEQ(v int) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldStageNumber, v))
}

// StageNumberIn applies the In predicate on the "stage_number" field.
func StageNumberIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldStageNumber, vs...))
}

// StageNumberNotIn applies the NotIn predicate on the "stage_number" field.
func StageNumberNotIn(vs ...int) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldStageNumber, vs...))
}

// StageNumberGT applies the GT predicate on the "stage_number" field.
func StageNumberGT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldStageNumber, v))
}

// StageNumberGTE applies the GTE predicate on the "stage_number" field.
func StageNumberGTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldStageNumber, v))
}

// StageNumberLT applies the LT predicate on the "stage_number" field.
func StageNumberLT(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldStageNumber, v))
}

// StageNumberLTE applies the LTE predicate on the "stage_number" field.
func StageNumberLTE(v int) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldStageNumber, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldStageName, v))
}

// StageTypeEQ applies the EQ predicate on the "stage_type" field.
func StageTypeEQ(v StageType) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldStageType, v))
}

// StageTypeNEQ applies the NEQ predicate on the "stage_type" field.
func StageTypeNEQ(v StageType) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldStageType, v))
}

// StageTypeIn applies the In predicate on the "stage_type" field.
func StageTypeIn(vs ...StageType) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldStageType, vs...))
}

// StageTypeNotIn applies the NotIn predicate on the "stage_type" field.
func StageTypeNotIn(vs ...StageType) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldStageType, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldDescription, v))
}

// OriginalLogicEQ applies the EQ predicate on the "original_logic" field.
func OriginalLogicEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldOriginalLogic, v))
}

// OriginalLogicNEQ applies the NEQ predicate on the "original_logic" field.
func OriginalLogicNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldOriginalLogic, v))
}

// OriginalLogicIn applies the In predicate on the "original_logic" field.
func OriginalLogicIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldOriginalLogic, vs...))
}

// OriginalLogicNotIn applies the NotIn predicate on the "original_logic" field.
func OriginalLogicNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldOriginalLogic, vs...))
}

// OriginalLogicGT applies the GT predicate on the "original_logic" field.
func OriginalLogicGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldOriginalLogic, v))
}

// OriginalLogicGTE applies the GTE predicate on the "original_logic" field.
func OriginalLogicGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldOriginalLogic, v))
}

// OriginalLogicLT applies the LT predicate on the "original_logic" field.
func OriginalLogicLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldOriginalLogic, v))
}

// OriginalLogicLTE applies the LTE predicate on the "original_logic" field.
func OriginalLogicLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldOriginalLogic, v))
}

// OriginalLogicContains applies the Contains predicate on the "original_logic" field.
func OriginalLogicContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldOriginalLogic, v))
}

// OriginalLogicHasPrefix applies the HasPrefix predicate on the "original_logic" field.
func OriginalLogicHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldOriginalLogic, v))
}

// OriginalLogicHasSuffix applies the HasSuffix predicate on the "original_logic" field.
func OriginalLogicHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldOriginalLogic, v))
}

// OriginalLogicEqualFold applies the EqualFold predicate on the "original_logic" field.
func OriginalLogicEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldOriginalLogic, v))
}

// OriginalLogicContainsFold applies the ContainsFold predicate on the "original_logic" field.
func OriginalLogicContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldOriginalLogic, v))
}

// EditedLogicEQ applies the EQ predicate on the "edited_logic" field.
func EditedLogicEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldEditedLogic, v))
}

// EditedLogicNEQ applies the NEQ predicate on the "edited_logic" field.
func EditedLogicNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldEditedLogic, v))
}

// EditedLogicIn applies the In predicate on the "edited_logic" field.
func EditedLogicIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldEditedLogic, vs...))
}

// EditedLogicNotIn applies the NotIn predicate on the "edited_logic" field.
func EditedLogicNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldEditedLogic, vs...))
}

// EditedLogicGT applies the GT predicate on the "edited_logic" field.
func EditedLogicGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldEditedLogic, v))
}

// EditedLogicGTE applies the GTE predicate on the "edited_logic" field.
func EditedLogicGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldEditedLogic, v))
}

// EditedLogicLT applies the LT predicate on the "edited_logic" field.
func EditedLogicLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldEditedLogic, v))
}

// EditedLogicLTE applies the LTE predicate on the "edited_logic" field.
func EditedLogicLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldEditedLogic, v))
}

// EditedLogicContains applies the Contains predicate on the "edited_logic" field.
func EditedLogicContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldEditedLogic, v))
}

// EditedLogicHasPrefix applies the HasPrefix predicate on the "edited_logic" field.
func EditedLogicHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldEditedLogic, v))
}

// EditedLogicHasSuffix applies the HasSuffix predicate on the "edited_logic" field.
func EditedLogicHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldEditedLogic, v))
}

// EditedLogicIsNil applies the IsNil predicate on the "edited_logic" field.
func EditedLogicIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldEditedLogic))
}

// EditedLogicNotNil applies the NotNil predicate on the "edited_logic" field.
func EditedLogicNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldEditedLogic))
}

// EditedLogicEqualFold applies the EqualFold predicate on the "edited_logic" field.
func EditedLogicEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldEditedLogic, v))
}

// EditedLogicContainsFold applies the ContainsFold predicate on the "edited_logic" field.
func EditedLogicContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldEditedLogic, v))
}

// IsValidatedEQ applies the EQ predicate on the "is_validated" field.
func IsValidatedEQ(v bool) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldIsValidated, v))
}

// IsValidatedNEQ applies the NEQ predicate on the "is_validated" field.
func IsValidatedNEQ(v bool) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldIsValidated, v))
}

// IsFinalizedEQ applies the EQ predicate on the "is_finalized" field.
func IsFinalizedEQ(v bool) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldIsFinalized, v))
}

// IsFinalizedNEQ applies the NEQ predicate on the "is_finalized" field.
func IsFinalizedNEQ(v bool) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldIsFinalized, v))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldDependencies))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldVersionNumber, v))
}

// VersionNumberContains applies the Contains predicate on the "version_number" field.
func VersionNumberContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldVersionNumber, v))
}

// VersionNumberHasPrefix applies the HasPrefix predicate on the "version_number" field.
func VersionNumberHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldVersionNumber, v))
}

// VersionNumberHasSuffix applies the HasSuffix predicate on the "version_number" field.
func VersionNumberHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldVersionNumber, v))
}

// VersionNumberEqualFold applies the EqualFold predicate on the "version_number" field.
func VersionNumberEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldVersionNumber, v))
}

// VersionNumberContainsFold applies the ContainsFold predicate on the "version_number" field.
func VersionNumberContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldVersionNumber, v))
}

// LastActionEQ applies the EQ predicate on the "last_action" field.
func LastActionEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldLastAction, v))
}

// LastActionNEQ applies the NEQ predicate on the "last_action" field.
func LastActionNEQ(v string) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldLastAction, v))
}

// LastActionIn applies the In predicate on the "last_action" field.
func LastActionIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldLastAction, vs...))
}

// LastActionNotIn applies the NotIn predicate on the "last_action" field.
func LastActionNotIn(vs ...string) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldLastAction, vs...))
}

// LastActionGT applies the GT predicate on the "last_action" field.
func LastActionGT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldLastAction, v))
}

// LastActionGTE applies the GTE predicate on the "last_action" field.
func LastActionGTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldLastAction, v))
}

// LastActionLT applies the LT predicate on the "last_action" field.
func LastActionLT(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldLastAction, v))
}

// LastActionLTE applies the LTE predicate on the "last_action" field.
func LastActionLTE(v string) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldLastAction, v))
}

// LastActionContains applies the Contains predicate on the "last_action" field.
func LastActionContains(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContains(FieldLastAction, v))
}

// LastActionHasPrefix applies the HasPrefix predicate on the "last_action" field.
func LastActionHasPrefix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasPrefix(FieldLastAction, v))
}

// LastActionHasSuffix applies the HasSuffix predicate on the "last_action" field.
func LastActionHasSuffix(v string) predicate.Stage {
	return predicate.Stage(sql.FieldHasSuffix(FieldLastAction, v))
}

// LastActionIsNil applies the IsNil predicate on the "last_action" field.
func LastActionIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldLastAction))
}

// LastActionNotNil applies the NotNil predicate on the "last_action" field.
func LastActionNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldLastAction))
}

// LastActionEqualFold applies the EqualFold predicate on the "last_action" field.
func LastActionEqualFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldEqualFold(FieldLastAction, v))
}

// LastActionContainsFold applies the ContainsFold predicate on the "last_action" field.
func LastActionContainsFold(v string) predicate.Stage {
	return predicate.Stage(sql.FieldContainsFold(FieldLastAction, v))
}

// LastActionTimestampEQ applies the EQ predicate on the "last_action_timestamp" field.
func LastActionTimestampEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldLastActionTimestamp, v))
}

// LastActionTimestampNEQ applies the NEQ predicate on the "last_action_timestamp" field.
func LastActionTimestampNEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldLastActionTimestamp, v))
}

// LastActionTimestampIn applies the In predicate on the "last_action_timestamp" field.
func LastActionTimestampIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldLastActionTimestamp, vs...))
}

// LastActionTimestampNotIn applies the NotIn predicate on the "last_action_timestamp" field.
func LastActionTimestampNotIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldLastActionTimestamp, vs...))
}

// LastActionTimestampGT applies the GT predicate on the "last_action_timestamp" field.
func LastActionTimestampGT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldLastActionTimestamp, v))
}

// LastActionTimestampGTE applies the GTE predicate on the "last_action_timestamp" field.
func LastActionTimestampGTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldLastActionTimestamp, v))
}

// LastActionTimestampLT applies the LT predicate on the "last_action_timestamp" field.
func LastActionTimestampLT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldLastActionTimestamp, v))
}

// LastActionTimestampLTE applies the LTE predicate on the "last_action_timestamp" field.
func LastActionTimestampLTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldLastActionTimestamp, v))
}

// LastActionTimestampIsNil applies the IsNil predicate on the "last_action_timestamp" field.
func LastActionTimestampIsNil() predicate.Stage {
	return predicate.Stage(sql.FieldIsNull(FieldLastActionTimestamp))
}

// LastActionTimestampNotNil applies the NotNil predicate on the "last_action_timestamp" field.
func LastActionTimestampNotNil() predicate.Stage {
	return predicate.Stage(sql.FieldNotNull(FieldLastActionTimestamp))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Stage {
	return predicate.Stage(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Stage {
	return predicate.Stage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Stage {
	return predicate.Stage(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCodes applies the HasEdge predicate on the "codes" edge.
func HasCodes() predicate.Stage {
	return predicate.Stage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CodesTable, CodesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCodesWith applies the HasEdge predicate on the "codes" edge with a given conditions (other predicates).
func HasCodesWith(preds ...predicate.GeneratedCode) predicate.Stage {
	return predicate.Stage(func(s *sql.Selector) {
		step := newCodesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Stage) predicate.Stage {
	return predicate.Stage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Stage) predicate.Stage {
	return predicate.Stage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Stage) predicate.Stage {
	return predicate.Stage(sql.NotPredicates(p))
}
