package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SafetyManual holds the schema definition for the SafetyManual entity: an
// uploaded per-project safety document and the state of its retrieval corpus.
type SafetyManual struct {
	ent.Schema
}

// Fields of the SafetyManual.
func (SafetyManual) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.String("filename"),
		field.String("file_path"),
		field.Bool("is_embedded").
			Default(false).
			Comment("True once the per-project retrieval corpus is built"),
		field.Time("uploaded_at").
			Immutable(),
	}
}

// Edges of the SafetyManual.
func (SafetyManual) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("safety_manuals").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the SafetyManual.
func (SafetyManual) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
	}
}
