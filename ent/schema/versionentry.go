package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VersionEntry holds the schema definition for the VersionEntry entity: one
// append-only ledger record. Entries are never updated nor deleted, so the
// entity deliberately carries no project/stage edges — history must survive
// stage deletion and regeneration.
type VersionEntry struct {
	ent.Schema
}

// Fields of the VersionEntry.
func (VersionEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int("code_id").
			Optional().
			Comment("Zero for actions that predate any generated code"),
		field.Int("stage_id").
			Immutable(),
		field.Int("user_id").
			Immutable(),
		field.Enum("level").
			Values("event", "session", "checkpoint").
			Default("event").
			Immutable(),
		field.String("version_number").
			Immutable(),
		field.Text("old_code").
			Optional().
			Immutable(),
		field.Text("new_code").
			Optional().
			Immutable(),
		field.Text("diff").
			Optional().
			Immutable(),
		field.Int("session_id").
			Optional().
			Immutable(),
		field.Time("timestamp").
			Immutable(),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the VersionEntry.
func (VersionEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage_id", "timestamp"),
		index.Fields("stage_id", "version_number"),
	}
}
