package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/authsession"
	"github.com/missionloop/groundcontrol/ent/owner"
	"github.com/missionloop/groundcontrol/ent/principal"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/ids"
)

var (
	// ErrOwnerExists reports a second bootstrap attempt for a workspace.
	ErrOwnerExists = errors.New("workspace already has an owner")

	// ErrInvalidCredentials covers unknown email and wrong passphrase alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// APIKeyPrefix marks static agent/service bearer keys.
const APIKeyPrefix = "ak_"

// Service implements owner bootstrap, login, refresh rotation, and bearer
// resolution.
type Service struct {
	db            *database.Client
	sessionSecret []byte
	logger        *slog.Logger
}

// NewService creates an auth service. sessionSecret signs owner JWTs.
func NewService(db *database.Client, sessionSecret []byte, logger *slog.Logger) *Service {
	return &Service{db: db, sessionSecret: sessionSecret, logger: logger}
}

// BootstrapResult reports the owner and principal created for a workspace.
type BootstrapResult struct {
	OwnerID     string `json:"owner_id"`
	PrincipalID string `json:"principal_id"`
	WorkspaceID string `json:"workspace_id"`
	Email       string `json:"email"`
}

// Bootstrap creates the single owner of a workspace together with its user
// principal. The API layer enforces the bootstrap-token / loopback guard
// before calling this.
func (s *Service) Bootstrap(ctx context.Context, workspaceID, email, passphrase string) (*BootstrapResult, error) {
	hash, err := HashPassphrase(passphrase)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin bootstrap transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	principalID := ids.Principal()
	ownerID := ids.Owner()
	now := time.Now().UTC()

	if _, err = tx.Principal.Create().
		SetID(principalID).
		SetWorkspaceID(workspaceID).
		SetPrincipalType(principal.PrincipalTypeUser).
		SetDisplayName(email).
		SetCreatedAt(now).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create owner principal: %w", err)
	}

	if _, err = tx.Owner.Create().
		SetID(ownerID).
		SetWorkspaceID(workspaceID).
		SetEmail(email).
		SetPrincipalID(principalID).
		SetPassphraseHash(hash).
		SetCreatedAt(now).
		Save(ctx); err != nil {
		if database.IsUniqueViolation(err) {
			err = ErrOwnerExists
			return nil, err
		}
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bootstrap: %w", err)
	}

	s.logger.Info("workspace owner bootstrapped",
		slog.String("workspace_id", workspaceID),
		slog.String("owner_id", ownerID))
	return &BootstrapResult{
		OwnerID:     ownerID,
		PrincipalID: principalID,
		WorkspaceID: workspaceID,
		Email:       email,
	}, nil
}

// Session is a minted owner session: a short-lived JWT plus a rotating
// opaque refresh token.
type Session struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// Login verifies the owner passphrase and mints a session. Unknown email
// and wrong passphrase are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, workspaceID, email, passphrase string) (*Session, error) {
	row, err := s.db.Owner.Query().
		Where(owner.WorkspaceID(workspaceID), owner.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	ok, err := VerifyPassphrase(passphrase, row.PassphraseHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	return s.mintSession(ctx, row)
}

// Refresh rotates a session: the presented refresh token is revoked and a
// fresh access/refresh pair is issued.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	now := time.Now().UTC()
	row, err := s.db.AuthSession.Query().
		Where(
			authsession.RefreshTokenHash(HashToken(refreshToken)),
			authsession.RevokedAtIsNil(),
			authsession.RefreshExpiresAtGT(now),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	ownerRow, err := s.db.Owner.Get(ctx, row.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session owner: %w", err)
	}

	if _, err := s.db.AuthSession.UpdateOneID(row.ID).
		SetRevokedAt(now).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to revoke rotated session: %w", err)
	}

	return s.mintSession(ctx, ownerRow)
}

func (s *Service) mintSession(ctx context.Context, ownerRow *ent.Owner) (*Session, error) {
	now := time.Now().UTC()
	identity := Identity{
		PrincipalID:   ownerRow.PrincipalID,
		PrincipalType: PrincipalUser,
		WorkspaceID:   ownerRow.WorkspaceID,
		OwnerID:       ownerRow.ID,
	}

	access, accessExpiresAt, err := SignAccessToken(s.sessionSecret, identity, now)
	if err != nil {
		return nil, err
	}
	refresh, refreshDigest, err := NewRefreshToken()
	if err != nil {
		return nil, err
	}
	refreshExpiresAt := now.Add(RefreshTokenTTL)

	if _, err := s.db.AuthSession.Create().
		SetID(ids.Session()).
		SetOwnerID(ownerRow.ID).
		SetWorkspaceID(ownerRow.WorkspaceID).
		SetRefreshTokenHash(refreshDigest).
		SetAccessExpiresAt(accessExpiresAt).
		SetRefreshExpiresAt(refreshExpiresAt).
		SetCreatedAt(now).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &Session{
		AccessToken:      access,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// ResolveBearer maps a bearer credential to an Identity. ak_-prefixed keys
// resolve against sec_principals.api_key_hash; everything else parses as an
// owner JWT.
func (s *Service) ResolveBearer(ctx context.Context, bearer string) (Identity, error) {
	if strings.HasPrefix(bearer, APIKeyPrefix) {
		return s.resolveAPIKey(ctx, bearer)
	}
	return ParseAccessToken(s.sessionSecret, bearer)
}

func (s *Service) resolveAPIKey(ctx context.Context, key string) (Identity, error) {
	row, err := s.db.Principal.Query().
		Where(
			principal.APIKeyHash(HashToken(key)),
			principal.RevokedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Identity{}, ErrInvalidToken
		}
		return Identity{}, fmt.Errorf("failed to resolve api key: %w", err)
	}
	return Identity{
		PrincipalID:   row.ID,
		PrincipalType: string(row.PrincipalType),
		WorkspaceID:   row.WorkspaceID,
	}, nil
}

// IssueAPIKey creates an agent or service principal with a fresh static
// bearer key. The raw key is returned once and only its digest is stored.
func (s *Service) IssueAPIKey(ctx context.Context, workspaceID, principalType, displayName string) (Identity, string, error) {
	if principalType != PrincipalAgent && principalType != PrincipalService {
		return Identity{}, "", fmt.Errorf("api keys are for agents and services, not %q", principalType)
	}

	key := ids.APIKey()
	row, err := s.db.Principal.Create().
		SetID(ids.Principal()).
		SetWorkspaceID(workspaceID).
		SetPrincipalType(principal.PrincipalType(principalType)).
		SetDisplayName(displayName).
		SetAPIKeyHash(HashToken(key)).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return Identity{}, "", fmt.Errorf("failed to create principal: %w", err)
	}
	return Identity{
		PrincipalID:   row.ID,
		PrincipalType: principalType,
		WorkspaceID:   workspaceID,
	}, key, nil
}

// PruneSessions deletes sessions whose refresh window has closed. The
// maintenance worker calls this on its tick.
func (s *Service) PruneSessions(ctx context.Context) (int, error) {
	n, err := s.db.AuthSession.Delete().
		Where(authsession.RefreshExpiresAtLT(time.Now().UTC())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	return n, nil
}
