package projector

import (
	"context"
	"fmt"
	"sort"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/artifact"
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
	"github.com/missionloop/groundcontrol/pkg/canonical"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
)

// artifactProjector maintains proj_artifacts and the per-run evidence
// manifest: the sorted artifact id list and its canonical hash.
type artifactProjector struct{}

func (p *artifactProjector) Name() string { return "artifacts" }

func (p *artifactProjector) Events() []string {
	return []string{eventlog.TypeArtifactCreated}
}

func (p *artifactProjector) Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var data struct {
		ArtifactID string `json:"artifact_id"`
		ObjectKey  string `json:"object_key"`
		MediaType  string `json:"media_type"`
		SizeBytes  int64  `json:"size_bytes"`
	}
	if err := decodeData(env, &data); err != nil {
		return err
	}
	if data.ArtifactID == "" || data.ObjectKey == "" {
		return badPayloadf(env.EventType, "missing artifact_id or object_key")
	}

	create := tx.Artifact.Create().
		SetID(data.ArtifactID).
		SetWorkspaceID(env.WorkspaceID).
		SetObjectKey(data.ObjectKey).
		SetMediaType(data.MediaType).
		SetSizeBytes(data.SizeBytes).
		SetCorrelationID(env.CorrelationID).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		SetUpdatedAt(env.RecordedAt)
	if env.RunID != "" {
		create = create.SetRunID(env.RunID)
	}
	if env.ActorType == eventlog.ActorAgent {
		create = create.SetCreatedByAgentID(env.ActorID)
	}
	if err := create.
		OnConflictColumns(artifact.FieldID).
		Ignore().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert artifact: %w", err)
	}

	if env.RunID == "" {
		return nil
	}
	return p.refreshManifest(ctx, tx, env)
}

// refreshManifest recomputes the run's evidence manifest from the projected
// artifact rows. Sorting before hashing keeps the hash independent of
// arrival order.
func (p *artifactProjector) refreshManifest(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	rows, err := tx.Artifact.Query().
		Where(
			artifact.WorkspaceID(env.WorkspaceID),
			artifact.RunID(env.RunID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list run artifacts: %w", err)
	}
	artifactIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		artifactIDs = append(artifactIDs, row.ID)
	}
	sort.Strings(artifactIDs)

	hash, err := canonical.PrefixedHash(artifactIDs)
	if err != nil {
		return fmt.Errorf("failed to hash manifest: %w", err)
	}

	err = tx.EvidenceManifest.Create().
		SetID(ids.Manifest()).
		SetWorkspaceID(env.WorkspaceID).
		SetRunID(env.RunID).
		SetArtifactIds(artifactIDs).
		SetManifestHash(hash).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		SetUpdatedAt(env.RecordedAt).
		OnConflictColumns(evidencemanifest.FieldRunID).
		Update(func(u *ent.EvidenceManifestUpsert) {
			u.SetArtifactIds(artifactIDs)
			u.SetManifestHash(hash)
			u.SetLastEventID(env.EventID)
			u.SetUpdatedAt(env.RecordedAt)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert evidence manifest: %w", err)
	}
	return nil
}
