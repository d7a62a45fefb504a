package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity. A project owns
// all downstream rows; hard deletion cascades through every edge.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Int("owner_id"),
		field.Enum("status").
			Values("active", "archived", "deleted").
			Default("active"),
		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", Stage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("codes", GeneratedCode.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("safety_manuals", SafetyManual.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("uploaded_files", UploadedFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
