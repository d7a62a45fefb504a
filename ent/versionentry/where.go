// Code generated by ent, DO NOT EDIT.

package versionentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nexus-controls/plcforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldID, id))
}

// CodeID applies equality check predicate on the "code_id" field. It's identical to CodeIDEQ.
func CodeID(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldCodeID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldStageID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldUserID, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldVersionNumber, v))
}

// OldCode applies equality check predicate on the "old_code" field. It's identical to OldCodeEQ.
func OldCode(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldOldCode, v))
}

// NewCode applies equality check predicate on the "new_code" field. It's identical to NewCodeEQ.
func NewCode(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldNewCode, v))
}

// Diff applies equality check predicate on the "diff" field. It's identical to DiffEQ.
func Diff(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldDiff, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldTimestamp, v))
}

// CodeIDEQ applies the EQ predicate on the "code_id" field.
func CodeIDEQ(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldCodeID, v))
}

// CodeIDNEQ applies the NEQ predicate on the "code_id" field.
func CodeIDNEQ(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldCodeID, v))
}

// CodeIDIn applies the In predicate on the "code_id" field.
func CodeIDIn(vs ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldCodeID, vs...))
}

// CodeIDNotIn applies the NotIn predicate on the "code_id" field.
func CodeIDNotIn(vs ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldCodeID, vs...))
}

// CodeIDGT applies the GT predicate on the "code_id" field.
func CodeIDGT(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldCodeID, v))
}

// CodeIDGTE applies the GTE predicate on the "code_id" field.
func CodeIDGTE(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldCodeID, v))
}

// CodeIDLT applies the LT predicate on the "code_id" field.
func CodeIDLT(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldCodeID, v))
}

// CodeIDLTE applies the LTE predicate on the "code_id" field.
func CodeIDLTE(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldCodeID, v))
}

// CodeIDIsNil applies the IsNil predicate on the "code_id" field.
func CodeIDIsNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIsNull(FieldCodeID))
}

// CodeIDNotNil applies the NotNil predicate on the "code_id" field.
func CodeIDNotNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotNull(FieldCodeID))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldStageID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldUserID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldLevel, vs...))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldVersionNumber, v))
}

// VersionNumberContains applies the Contains predicate on the "version_number" field.
func VersionNumberContains(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldContains(FieldVersionNumber, v))
}

// VersionNumberHasPrefix applies the HasPrefix predicate on the "version_number" field.
func VersionNumberHasPrefix(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldHasPrefix(FieldVersionNumber, v))
}

// VersionNumberHasSuffix applies the HasSuffix predicate on the "version_number" field.
func VersionNumberHasSuffix(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldHasSuffix(FieldVersionNumber, v))
}

// VersionNumberEqualFold applies the EqualFold predicate on the "version_number" field.
func VersionNumberEqualFold(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEqualFold(FieldVersionNumber, v))
}

// VersionNumberContainsFold applies the ContainsFold predicate on the "version_number" field.
func VersionNumberContainsFold(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldContainsFold(FieldVersionNumber, v))
}

// OldCodeEQ applies the EQ predicate on the "old_code" field.
func OldCodeEQ(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldOldCode, v))
}

// OldCodeNEQ applies the NEQ predicate on the "old_code" field.
func OldCodeNEQ(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldOldCode, v))
}

// OldCodeIn applies the In predicate on the "old_code" field.
func OldCodeIn(vs ...string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldOldCode, vs...))
}

// OldCodeNotIn applies the NotIn predicate on the "old_code" field.
func OldCodeNotIn(vs ...string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldOldCode, vs...))
}

// OldCodeGT applies the GT predicate on the "old_code" field.
func OldCodeGT(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldOldCode, v))
}

// OldCodeGTE applies the GTE predicate on the "old_code" field.
func OldCodeGTE(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldOldCode, v))
}

// OldCodeLT applies the LT predicate on the "old_code" field.
func OldCodeLT(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldOldCode, v))
}

// OldCodeLTE applies the LTE predicate on the "old_code" field.
func OldCodeLTE(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldOldCode, v))
}

// OldCodeContains applies the Contains predicate on the "old_code" field.
func OldCodeContains(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldContains(FieldOldCode, v))
}

// OldCodeHasPrefix applies the HasPrefix predicate on the "old_code" field.
func OldCodeHasPrefix(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldHasPrefix(FieldOldCode, v))
}

// OldCodeHasSuffix applies the HasSuffix predicate on the "old_code" field.
func OldCodeHasSuffix(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldHasSuffix(FieldOldCode, v))
}

// OldCodeIsNil applies the IsNil predicate on the "old_code" field.
func OldCodeIsNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIsNull(FieldOldCode))
}

// OldCodeNotNil applies the NotNil predicate on the "old_code" field.
func OldCodeNotNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotNull(FieldOldCode))
}

// OldCodeEqualFold applies the EqualFold predicate on the "old_code" field.
func OldCodeEqualFold(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEqualFold(FieldOldCode, v))
}

// OldCodeContainsFold applies the ContainsFold predicate on the "old_code" field.
func OldCodeContainsFold(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldContainsFold(FieldOldCode, v))
}

// NewCodeEQ applies the EQ predicate on the "new_code" field.
func NewCodeEQ(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldNewCode, v))
}

// NewCodeNEQ applies the NEQ predicate on the "new_code" field.
func NewCodeNEQ(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldNewCode, v))
}

// NewCodeIn applies the In predicate on the "new_code" field.
func NewCodeIn(vs ...string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldNewCode, vs...))
}

// NewCodeNotIn applies the NotIn predicate on the "new_code" field.
func NewCodeNotIn(vs ...string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldNewCode, vs...))
}

// NewCodeGT applies the GT predicate on the "new_code" field.
func NewCodeGT(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldNewCode, v))
}

// NewCodeGTE applies the GTE predicate on the "new_code" field.
func NewCodeGTE(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldNewCode, v))
}

// NewCodeLT applies the LT predicate on the "new_code" field.
func NewCodeLT(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldNewCode, v))
}

// NewCodeLTE applies the LTE predicate on the "new_code" field.
func NewCodeLTE(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldNewCode, v))
}

// NewCodeContains applies the Contains predicate on the "new_code" field.
func NewCodeContains(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldContains(FieldNewCode, v))
}

// NewCodeHasPrefix applies the HasPrefix predicate on the "new_code" field.
func NewCodeHasPrefix(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldHasPrefix(FieldNewCode, v))
}

// NewCodeHasSuffix applies the HasSuffix predicate on the "new_code" field.
func NewCodeHasSuffix(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldHasSuffix(FieldNewCode, v))
}

// NewCodeIsNil applies the IsNil predicate on the "new_code" field.
func NewCodeIsNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIsNull(FieldNewCode))
}

// NewCodeNotNil applies the NotNil predicate on the "new_code" field.
func NewCodeNotNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotNull(FieldNewCode))
}

// NewCodeEqualFold applies the EqualFold predicate on the "new_code" field.
func NewCodeEqualFold(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEqualFold(FieldNewCode, v))
}

// NewCodeContainsFold applies the ContainsFold predicate on the "new_code" field.
func NewCodeContainsFold(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldContainsFold(FieldNewCode, v))
}

// DiffEQ applies the EQ predicate on the "diff" field.
func DiffEQ(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldDiff, v))
}

// DiffNEQ applies the NEQ predicate on the "diff" field.
func DiffNEQ(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldDiff, v))
}

// DiffIn applies the In predicate on the "diff" field.
func DiffIn(vs ...string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldDiff, vs...))
}

// DiffNotIn applies the NotIn predicate on the "diff" field.
func DiffNotIn(vs ...string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldDiff, vs...))
}

// DiffGT applies the GT predicate on the "diff" field.
func DiffGT(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldDiff, v))
}

// DiffGTE applies the GTE predicate on the "diff" field.
func DiffGTE(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldDiff, v))
}

// DiffLT applies the LT predicate on the "diff" field.
func DiffLT(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldDiff, v))
}

// DiffLTE applies the LTE predicate on the "diff" field.
func DiffLTE(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldDiff, v))
}

// DiffContains applies the Contains predicate on the "diff" field.
func DiffContains(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldContains(FieldDiff, v))
}

// DiffHasPrefix applies the HasPrefix predicate on the "diff" field.
func DiffHasPrefix(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldHasPrefix(FieldDiff, v))
}

// DiffHasSuffix applies the HasSuffix predicate on the "diff" field.
func DiffHasSuffix(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldHasSuffix(FieldDiff, v))
}

// DiffIsNil applies the IsNil predicate on the "diff" field.
func DiffIsNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIsNull(FieldDiff))
}

// DiffNotNil applies the NotNil predicate on the "diff" field.
func DiffNotNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotNull(FieldDiff))
}

// DiffEqualFold applies the EqualFold predicate on the "diff" field.
func DiffEqualFold(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEqualFold(FieldDiff, v))
}

// DiffContainsFold applies the ContainsFold predicate on the "diff" field.
func DiffContainsFold(v string) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldContainsFold(FieldDiff, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v int) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotNull(FieldSessionID))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldLTE(FieldTimestamp, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.VersionEntry {
	return predicate.VersionEntry(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VersionEntry) predicate.VersionEntry {
	return predicate.VersionEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VersionEntry) predicate.VersionEntry {
	return predicate.VersionEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VersionEntry) predicate.VersionEntry {
	return predicate.VersionEntry(sql.NotPredicates(p))
}
