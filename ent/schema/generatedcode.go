package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// GeneratedCode holds the schema definition for the GeneratedCode entity:
// the current generated artifact set for a stage. At most one row exists per
// stage; regeneration deletes the prior row and its text survives in the
// version ledger.
type GeneratedCode struct {
	ent.Schema
}

// Fields of the GeneratedCode.
func (GeneratedCode) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.Int("stage_id"),
		field.JSON("global_labels", []models.Label{}).
			Optional().
			Comment("Byte-identical across all stages of a project after merge"),
		field.JSON("local_labels", []models.Label{}).
			Optional(),
		field.Text("program_body").
			Optional(),
		field.JSON("program_blocks", []models.ProgramBlock{}).
			Optional(),
		field.JSON("functions", []models.Function{}).
			Optional(),
		field.JSON("function_blocks", []models.FunctionBlock{}).
			Optional(),
		field.String("program_name"),
		field.Enum("execution_type").
			Values("Scan", "Initial", "Event", "Fixed Scan", "Standby").
			Default("Scan"),
		field.JSON("code_metadata", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Immutable(),
	}
}

// Edges of the GeneratedCode.
func (GeneratedCode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("codes").
			Field("project_id").
			Unique().
			Required(),
		edge.From("stage", Stage.Type).
			Ref("codes").
			Field("stage_id").
			Unique().
			Required(),
	}
}

// Indexes of the GeneratedCode.
func (GeneratedCode) Indexes() []ent.Index {
	return []ent.Index{
		// One current row per stage.
		index.Fields("stage_id").
			Unique(),
		index.Fields("project_id"),
	}
}
