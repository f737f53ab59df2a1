package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvidenceManifest holds the schema definition for per-run evidence
// manifests: the sorted artifact id set and its canonical hash, re-derived
// every time an artifact lands on the run.
type EvidenceManifest struct {
	ent.Schema
}

// Fields of the EvidenceManifest.
func (EvidenceManifest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("manifest_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("run_id").
			Unique(),
		field.JSON("artifact_ids", []string{}),
		field.String("manifest_hash"),
		field.String("last_event_id"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the EvidenceManifest.
func (EvidenceManifest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
	}
}

// Annotations of the EvidenceManifest.
func (EvidenceManifest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_evidence_manifests"},
	}
}
