// Code generated by ent, DO NOT EDIT.

package uploadedfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexus-controls/plcforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldProjectID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldUserID, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFileType, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldOriginalFilename, v))
}

// StoredFilename applies equality check predicate on the "stored_filename" field. It's identical to StoredFilenameEQ.
func StoredFilename(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldStoredFilename, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFilePath, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFileSize, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldUploadedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldProjectID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldUserID, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldFileType, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// StoredFilenameEQ applies the EQ predicate on the "stored_filename" field.
func StoredFilenameEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldStoredFilename, v))
}

// StoredFilenameNEQ applies the NEQ predicate on the "stored_filename" field.
func StoredFilenameNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldStoredFilename, v))
}

// StoredFilenameIn applies the In predicate on the "stored_filename" field.
func StoredFilenameIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldStoredFilename, vs...))
}

// StoredFilenameNotIn applies the NotIn predicate on the "stored_filename" field.
func StoredFilenameNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldStoredFilename, vs...))
}

// StoredFilenameGT applies the GT predicate on the "stored_filename" field.
func StoredFilenameGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldStoredFilename, v))
}

// StoredFilenameGTE applies the GTE predicate on the "stored_filename" field.
func StoredFilenameGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldStoredFilename, v))
}

// StoredFilenameLT applies the LT predicate on the "stored_filename" field.
func StoredFilenameLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldStoredFilename, v))
}

// StoredFilenameLTE applies the LTE predicate on the "stored_filename" field.
func StoredFilenameLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldStoredFilename, v))
}

// StoredFilenameContains applies the Contains predicate on the "stored_filename" field.
func StoredFilenameContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldStoredFilename, v))
}

// StoredFilenameHasPrefix applies the HasPrefix predicate on the "stored_filename" field.
func StoredFilenameHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldStoredFilename, v))
}

// StoredFilenameHasSuffix applies the HasSuffix predicate on the "stored_filename" field.
func StoredFilenameHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldStoredFilename, v))
}

// StoredFilenameEqualFold applies the EqualFold predicate on the "stored_filename" field.
func StoredFilenameEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldStoredFilename, v))
}

// StoredFilenameContainsFold applies the ContainsFold predicate on the "stored_filename" field.
func StoredFilenameContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldStoredFilename, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldFilePath, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldFileSize, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.UploadedFile {
	return predicate.UploadedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.UploadedFile {
	return predicate.UploadedFile(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadedFile) predicate.UploadedFile {
	return predicate.UploadedFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadedFile) predicate.UploadedFile {
	return predicate.UploadedFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadedFile) predicate.UploadedFile {
	return predicate.UploadedFile(sql.NotPredicates(p))
}
