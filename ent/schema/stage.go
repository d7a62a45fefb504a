package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// Stage holds the schema definition for the Stage entity: one ordered
// partition of a control process. Per project, stage numbers form the
// contiguous sequence 0..N-1 with stage 0 idle and stage 1 safety.
type Stage struct {
	ent.Schema
}

// Fields of the Stage.
func (Stage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.Int("stage_number").
			NonNegative(),
		field.String("stage_name").
			NotEmpty(),
		field.Enum("stage_type").
			Values("idle", "safety", "operation", "fault", "shutdown", "validation"),
		field.Text("description").
			Optional(),
		field.Text("original_logic").
			Immutable().
			Comment("User wording as produced by the segregator; edits go to edited_logic"),
		field.Text("edited_logic").
			Optional(),
		field.Bool("is_validated").
			Default(false),
		field.Bool("is_finalized").
			Default(false),
		field.JSON("dependencies", []models.StageDependency{}).
			Optional(),

		// Version ledger view: the stage row carries the current semver.
		field.String("version_number").
			Default("1.0.0"),
		field.String("last_action").
			Optional(),
		field.Time("last_action_timestamp").
			Optional().
			Nillable(),

		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

// Edges of the Stage.
func (Stage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("stages").
			Field("project_id").
			Unique().
			Required(),
		edge.To("codes", GeneratedCode.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Stage.
func (Stage) Indexes() []ent.Index {
	return []ent.Index{
		// Stage ordering is unique within a project.
		index.Fields("project_id", "stage_number").
			Unique(),
	}
}
