// Code generated by ent, DO NOT EDIT.

package safetymanual

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexus-controls/plcforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldProjectID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldFilename, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldFilePath, v))
}

// IsEmbedded applies equality check predicate on the "is_embedded" field. It's identical to IsEmbeddedEQ.
func IsEmbedded(v bool) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldIsEmbedded, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldUploadedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNotIn(FieldProjectID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldContainsFold(FieldFilename, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldContainsFold(FieldFilePath, v))
}

// IsEmbeddedEQ applies the EQ predicate on the "is_embedded" field.
func IsEmbeddedEQ(v bool) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldIsEmbedded, v))
}

// IsEmbeddedNEQ applies the NEQ predicate on the "is_embedded" field.
func IsEmbeddedNEQ(v bool) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNEQ(FieldIsEmbedded, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.SafetyManual {
	return predicate.SafetyManual(sql.FieldLTE(FieldUploadedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.SafetyManual {
	return predicate.SafetyManual(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.SafetyManual {
	return predicate.SafetyManual(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SafetyManual) predicate.SafetyManual {
	return predicate.SafetyManual(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SafetyManual) predicate.SafetyManual {
	return predicate.SafetyManual(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SafetyManual) predicate.SafetyManual {
	return predicate.SafetyManual(sql.NotPredicates(p))
}
