package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/projector"
	"github.com/missionloop/groundcontrol/pkg/storage"
)

// ArtifactService records artifact registrations. The object itself lives in
// external storage; registration verifies it exists before appending.
type ArtifactService struct {
	*recorder
	prober *storage.Prober
}

// NewArtifactService creates the artifact act recorder.
func NewArtifactService(db *database.Client, store *eventlog.Store, reg *projector.Registry, prober *storage.Prober, logger *slog.Logger) *ArtifactService {
	return &ArtifactService{recorder: newRecorder(db, store, reg, logger), prober: prober}
}

// ArtifactInput is the body of POST /v1/artifacts.
type ArtifactInput struct {
	ObjectKey string `json:"object_key"`
	MediaType string `json:"media_type,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
	RunID     string `json:"run_id,omitempty"`
}

// Create probes the object and appends artifact.created.
func (s *ArtifactService) Create(ctx context.Context, identity auth.Identity, in ArtifactInput) (*ent.Artifact, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	if in.ObjectKey == "" {
		return nil, Reason(ReasonMissingField, "object_key is required").WithDetail("field", "object_key")
	}

	if s.prober != nil {
		err := s.prober.Probe(ctx, in.ObjectKey)
		switch {
		case err == nil:
		case errors.Is(err, storage.ErrArtifactNotFound):
			return nil, Reason(ReasonArtifactNotFound, "object does not exist").
				WithDetail("object_key", in.ObjectKey)
		default:
			return nil, Reason(ReasonStorageUnavailable, "artifact storage did not answer")
		}
	}

	artifactID := ids.Artifact()
	data, err := json.Marshal(map[string]any{
		"artifact_id": artifactID,
		"object_key":  in.ObjectKey,
		"media_type":  in.MediaType,
		"size_bytes":  in.SizeBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode artifact payload: %w", err)
	}

	if _, err := s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeArtifactCreated,
		WorkspaceID:      identity.WorkspaceID,
		RunID:            in.RunID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		Data:             data,
	}); err != nil {
		return nil, err
	}

	row, err := s.db.Artifact.Get(ctx, artifactID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back artifact: %w", err)
	}
	return row, nil
}

// Manifest returns the evidence manifest for a run, if one exists.
func (s *ArtifactService) Manifest(ctx context.Context, workspaceID, runID string) (*ent.EvidenceManifest, error) {
	row, err := s.db.EvidenceManifest.Query().
		Where(
			evidencemanifest.WorkspaceID(workspaceID),
			evidencemanifest.RunID(runID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, Reason(ReasonNotFound, "no evidence manifest for run").WithDetail("run_id", runID)
		}
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	return row, nil
}
