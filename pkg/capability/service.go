package capability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/capabilitytoken"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/models"
)

// MaxDelegationDepth bounds the delegation chain: a root token is depth 0
// and at most three delegations may hang below it.
const MaxDelegationDepth = 3

// Denial reasons recorded on agent.delegation.attempted events.
const (
	DeniedParentNotFound  = "parent_token_not_found"
	DeniedGrantorMismatch = "parent_token_grantor_mismatch"
	DeniedDepthExceeded   = "delegation_depth_exceeded"
	DeniedParentRevoked   = "parent_token_revoked"
	DeniedParentExpired   = "parent_token_expired"
	DeniedCycle           = "delegation_cycle"
)

// ErrTokenNotFound reports a missing capability token.
var ErrTokenNotFound = errors.New("capability token not found")

// DenialError carries the reason a delegation was refused. The refusal is
// itself recorded as an agent.delegation.attempted event before this error
// reaches the caller.
type DenialError struct {
	Reason string
}

func (e *DenialError) Error() string {
	return fmt.Sprintf("delegation denied: %s", e.Reason)
}

// GrantRequest describes a root issuance (ParentTokenID empty) or a
// delegation.
type GrantRequest struct {
	WorkspaceID          string
	IssuedToPrincipalID  string
	GrantedByPrincipalID string
	ParentTokenID        string
	Scopes               models.ScopeSet
	ValidUntil           *time.Time
}

// Token is the caller-facing view of a capability token.
type Token struct {
	TokenID              string          `json:"token_id"`
	WorkspaceID          string          `json:"workspace_id"`
	IssuedToPrincipalID  string          `json:"issued_to_principal_id"`
	GrantedByPrincipalID string          `json:"granted_by_principal_id"`
	ParentTokenID        string          `json:"parent_token_id,omitempty"`
	Scopes               models.ScopeSet `json:"scopes"`
	Depth                int             `json:"depth"`
	ValidUntil           *time.Time      `json:"valid_until,omitempty"`
	RevokedAt            *time.Time      `json:"revoked_at,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// Service manages the capability graph.
type Service struct {
	db    *database.Client
	store *eventlog.Store
}

// NewService creates a capability service.
func NewService(db *database.Client, store *eventlog.Store) *Service {
	return &Service{db: db, store: store}
}

// Grant issues a capability token. Root issuances carry the requested
// scopes verbatim; delegations intersect them with the parent's and add a
// delegation edge. Every outcome — success or denial — appends an event to
// the workspace stream.
func (s *Service) Grant(ctx context.Context, identity auth.Identity, req GrantRequest) (*Token, error) {
	scopes := Canonicalize(req.Scopes)

	if req.ParentTokenID == "" {
		return s.issue(ctx, identity, req, scopes, 0)
	}

	parent, err := s.db.CapabilityToken.Query().
		Where(
			capabilitytoken.ID(req.ParentTokenID),
			capabilitytoken.WorkspaceID(req.WorkspaceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, s.deny(ctx, identity, req, DeniedParentNotFound)
		}
		return nil, fmt.Errorf("failed to load parent token: %w", err)
	}

	switch {
	case parent.RevokedAt != nil:
		return nil, s.deny(ctx, identity, req, DeniedParentRevoked)
	case parent.ValidUntil != nil && parent.ValidUntil.Before(time.Now()):
		return nil, s.deny(ctx, identity, req, DeniedParentExpired)
	case parent.IssuedToPrincipalID != req.GrantedByPrincipalID:
		return nil, s.deny(ctx, identity, req, DeniedGrantorMismatch)
	}

	depth, err := s.chainDepth(ctx, parent)
	if err != nil {
		var denial *DenialError
		if errors.As(err, &denial) {
			return nil, s.deny(ctx, identity, req, denial.Reason)
		}
		return nil, err
	}
	childDepth := depth + 1
	if childDepth > MaxDelegationDepth {
		return nil, s.deny(ctx, identity, req, DeniedDepthExceeded)
	}

	effective := Intersect(Canonicalize(parent.Scopes), scopes)
	return s.issue(ctx, identity, req, effective, childDepth)
}

// issue persists the token (plus the delegation edge when parented) and the
// agent.capability.granted event in one transaction.
func (s *Service) issue(ctx context.Context, identity auth.Identity, req GrantRequest, scopes models.ScopeSet, depth int) (*Token, error) {
	tokenID := ids.CapabilityToken()
	now := time.Now().UTC()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin grant transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	create := tx.CapabilityToken.Create().
		SetID(tokenID).
		SetWorkspaceID(req.WorkspaceID).
		SetIssuedToPrincipalID(req.IssuedToPrincipalID).
		SetGrantedByPrincipalID(req.GrantedByPrincipalID).
		SetScopes(scopes).
		SetCreatedAt(now)
	if req.ParentTokenID != "" {
		create = create.SetParentTokenID(req.ParentTokenID)
	}
	if req.ValidUntil != nil {
		create = create.SetValidUntil(req.ValidUntil.UTC())
	}
	if _, err = create.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist capability token: %w", err)
	}

	if req.ParentTokenID != "" {
		_, err = tx.DelegationEdge.Create().
			SetID(ids.DelegationEdge()).
			SetWorkspaceID(req.WorkspaceID).
			SetParentTokenID(req.ParentTokenID).
			SetChildTokenID(tokenID).
			SetIssuedToPrincipalID(req.IssuedToPrincipalID).
			SetGrantedByPrincipalID(req.GrantedByPrincipalID).
			SetDepth(depth).
			SetCreatedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist delegation edge: %w", err)
		}
	}

	data, err := json.Marshal(map[string]any{
		"token_id":                tokenID,
		"issued_to_principal_id":  req.IssuedToPrincipalID,
		"granted_by_principal_id": req.GrantedByPrincipalID,
		"parent_token_id":         emptyToNil(req.ParentTokenID),
		"scopes":                  scopes,
		"depth":                   depth,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode grant payload: %w", err)
	}
	if _, err = s.store.Append(ctx, entTx(tx), eventlog.Draft{
		EventType:        eventlog.TypeCapabilityGranted,
		WorkspaceID:      req.WorkspaceID,
		ActorType:        identity.PrincipalType,
		ActorID:          identity.PrincipalID,
		ActorPrincipalID: identity.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         req.WorkspaceID,
		Data:             data,
	}); err != nil {
		return nil, fmt.Errorf("failed to append grant event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit grant: %w", err)
	}

	token := &Token{
		TokenID:              tokenID,
		WorkspaceID:          req.WorkspaceID,
		IssuedToPrincipalID:  req.IssuedToPrincipalID,
		GrantedByPrincipalID: req.GrantedByPrincipalID,
		ParentTokenID:        req.ParentTokenID,
		Scopes:               scopes,
		Depth:                depth,
		ValidUntil:           req.ValidUntil,
		CreatedAt:            now,
	}
	return token, nil
}

// deny records the refused delegation attempt and returns the denial.
func (s *Service) deny(ctx context.Context, identity auth.Identity, req GrantRequest, reason string) error {
	data, err := json.Marshal(map[string]any{
		"denied_reason":           reason,
		"parent_token_id":         req.ParentTokenID,
		"issued_to_principal_id":  req.IssuedToPrincipalID,
		"granted_by_principal_id": req.GrantedByPrincipalID,
		"requested_scopes":        Canonicalize(req.Scopes),
	})
	if err != nil {
		return fmt.Errorf("failed to encode denial payload: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin denial transaction: %w", err)
	}
	if _, err := s.store.Append(ctx, entTx(tx), eventlog.Draft{
		EventType:        eventlog.TypeDelegationAttempted,
		WorkspaceID:      req.WorkspaceID,
		ActorType:        identity.PrincipalType,
		ActorID:          identity.PrincipalID,
		ActorPrincipalID: identity.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         req.WorkspaceID,
		Data:             data,
	}); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to append denial event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit denial event: %w", err)
	}

	return &DenialError{Reason: reason}
}

// RevokeResult reports the outcome of a revocation.
type RevokeResult struct {
	TokenID        string `json:"token_id"`
	AlreadyRevoked bool   `json:"already_revoked"`
}

// Revoke soft-revokes a token. Idempotent: re-revoking reports
// already_revoked without a second event. Revocation does not cascade;
// descendants fail chain validation at use time.
func (s *Service) Revoke(ctx context.Context, identity auth.Identity, workspaceID, tokenID, reason string) (*RevokeResult, error) {
	token, err := s.db.CapabilityToken.Query().
		Where(
			capabilitytoken.ID(tokenID),
			capabilitytoken.WorkspaceID(workspaceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if token.RevokedAt != nil {
		return &RevokeResult{TokenID: tokenID, AlreadyRevoked: true}, nil
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin revoke transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.CapabilityToken.UpdateOneID(tokenID).
		SetRevokedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to revoke token: %w", err)
	}

	data, err := json.Marshal(map[string]any{
		"token_id": tokenID,
		"reason":   reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode revoke payload: %w", err)
	}
	if _, err = s.store.Append(ctx, entTx(tx), eventlog.Draft{
		EventType:        eventlog.TypeCapabilityRevoked,
		WorkspaceID:      workspaceID,
		ActorType:        identity.PrincipalType,
		ActorID:          identity.PrincipalID,
		ActorPrincipalID: identity.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         workspaceID,
		Data:             data,
	}); err != nil {
		return nil, fmt.Errorf("failed to append revoke event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit revoke: %w", err)
	}
	return &RevokeResult{TokenID: tokenID}, nil
}

// Get returns a token with its computed depth.
func (s *Service) Get(ctx context.Context, workspaceID, tokenID string) (*Token, error) {
	row, err := s.db.CapabilityToken.Query().
		Where(
			capabilitytoken.ID(tokenID),
			capabilitytoken.WorkspaceID(workspaceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	depth, err := s.chainDepth(ctx, row)
	if err != nil {
		return nil, err
	}
	return tokenFromEnt(row, depth), nil
}

// Live reports whether a token and its full ancestor chain are non-revoked
// and non-expired at the given instant.
func (s *Service) Live(ctx context.Context, token *ent.CapabilityToken, at time.Time) (bool, error) {
	seen := map[string]struct{}{}
	current := token
	for {
		if current.RevokedAt != nil {
			return false, nil
		}
		if current.ValidUntil != nil && current.ValidUntil.Before(at) {
			return false, nil
		}
		if current.ParentTokenID == nil || *current.ParentTokenID == "" {
			return true, nil
		}
		if _, cycle := seen[current.ID]; cycle {
			return false, &DenialError{Reason: DeniedCycle}
		}
		seen[current.ID] = struct{}{}

		parent, err := s.db.CapabilityToken.Get(ctx, *current.ParentTokenID)
		if err != nil {
			if ent.IsNotFound(err) {
				return false, nil
			}
			return false, fmt.Errorf("failed to walk token chain: %w", err)
		}
		current = parent
	}
}

// Resolve finds a live token held by the principal whose scopes cover the
// given room (empty roomID skips the room check). Returns ErrTokenNotFound
// when no token qualifies.
func (s *Service) Resolve(ctx context.Context, workspaceID, principalID, roomID string) (*Token, error) {
	rows, err := s.db.CapabilityToken.Query().
		Where(
			capabilitytoken.WorkspaceID(workspaceID),
			capabilitytoken.IssuedToPrincipalID(principalID),
			capabilitytoken.RevokedAtIsNil(),
		).
		Order(ent.Desc(capabilitytoken.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list principal tokens: %w", err)
	}

	now := time.Now()
	for _, row := range rows {
		live, err := s.Live(ctx, row, now)
		if err != nil || !live {
			continue
		}
		if roomID != "" && !Covers(row.Scopes.Rooms, roomID) {
			continue
		}
		depth, err := s.chainDepth(ctx, row)
		if err != nil {
			continue
		}
		return tokenFromEnt(row, depth), nil
	}
	return nil, ErrTokenNotFound
}

// chainDepth walks parent pointers to the root, rejecting in-storage cycles.
func (s *Service) chainDepth(ctx context.Context, token *ent.CapabilityToken) (int, error) {
	depth := 0
	seen := map[string]struct{}{token.ID: {}}
	current := token
	for current.ParentTokenID != nil && *current.ParentTokenID != "" {
		parent, err := s.db.CapabilityToken.Get(ctx, *current.ParentTokenID)
		if err != nil {
			if ent.IsNotFound(err) {
				// Dangling parent pointer; treat the walk as ending here.
				return depth, nil
			}
			return 0, fmt.Errorf("failed to walk token chain: %w", err)
		}
		if _, cycle := seen[parent.ID]; cycle {
			return 0, &DenialError{Reason: DeniedCycle}
		}
		seen[parent.ID] = struct{}{}
		depth++
		current = parent
	}
	return depth, nil
}

func tokenFromEnt(row *ent.CapabilityToken, depth int) *Token {
	t := &Token{
		TokenID:              row.ID,
		WorkspaceID:          row.WorkspaceID,
		IssuedToPrincipalID:  row.IssuedToPrincipalID,
		GrantedByPrincipalID: row.GrantedByPrincipalID,
		Scopes:               Canonicalize(row.Scopes),
		Depth:                depth,
		ValidUntil:           row.ValidUntil,
		RevokedAt:            row.RevokedAt,
		CreatedAt:            row.CreatedAt,
	}
	if row.ParentTokenID != nil {
		t.ParentTokenID = *row.ParentTokenID
	}
	return t
}

func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// entTx adapts an *ent.Tx to the event store's ExecQuerier. Requires the
// sql/execquery codegen feature.
func entTx(tx *ent.Tx) eventlog.ExecQuerier {
	return tx
}
