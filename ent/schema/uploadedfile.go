package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UploadedFile holds the schema definition for the UploadedFile entity: a
// document upload used as planning input.
type UploadedFile struct {
	ent.Schema
}

// Fields of the UploadedFile.
func (UploadedFile) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.Int("user_id"),
		field.String("file_type"),
		field.String("original_filename"),
		field.String("stored_filename").
			Comment("UUID-based name under the uploads directory"),
		field.String("file_path"),
		field.Int64("file_size"),
		field.Time("uploaded_at").
			Immutable(),
	}
}

// Edges of the UploadedFile.
func (UploadedFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("uploaded_files").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the UploadedFile.
func (UploadedFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
	}
}
