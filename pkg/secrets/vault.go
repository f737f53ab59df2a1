// Package secrets implements the workspace secrets vault. Values are sealed
// with AES-256-GCM under a process-wide master key; plaintext exists only in
// the request path and never reaches logs, events, or error messages.
package secrets

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	entprincipal "github.com/missionloop/groundcontrol/ent/principal"
	entsecret "github.com/missionloop/groundcontrol/ent/secret"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
)

const algorithmAESGCM = "aes-256-gcm"

var (
	// ErrVaultNotConfigured means no master key was provided at startup.
	ErrVaultNotConfigured = errors.New("secrets vault not configured")

	// ErrAlreadyExists reports a duplicate secret name within a workspace.
	ErrAlreadyExists = errors.New("secret name already exists in workspace")

	// ErrNotFound reports an unknown secret id.
	ErrNotFound = errors.New("secret not found")

	// ErrForbidden reports a principal type the vault does not serve.
	ErrForbidden = errors.New("principal may not use the secrets vault")
)

// ParseMasterKey decodes and validates a base64 master key. An empty input
// yields a nil key, meaning the vault runs disabled.
func ParseMasterKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("master key is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("master key must decode to 32 bytes, got %d", len(key))
	}
	return key, nil
}

// Vault seals and opens workspace secrets and records every access on the
// workspace event stream.
type Vault struct {
	db     *database.Client
	store  *eventlog.Store
	key    []byte
	logger *slog.Logger
}

// NewVault creates a vault. A nil key produces a vault whose operations all
// return ErrVaultNotConfigured.
func NewVault(db *database.Client, store *eventlog.Store, key []byte, logger *slog.Logger) *Vault {
	return &Vault{db: db, store: store, key: key, logger: logger}
}

// Configured reports whether a master key is loaded.
func (v *Vault) Configured() bool {
	return len(v.key) == 32
}

// Metadata is the caller-facing view of a stored secret. It never carries
// the value.
type Metadata struct {
	SecretID       string     `json:"secret_id"`
	WorkspaceID    string     `json:"workspace_id"`
	Name           string     `json:"secret_name"`
	Algorithm      string     `json:"algorithm"`
	CreatedAt      time.Time  `json:"created_at"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
}

// Create seals value under the master key and stores it. Agent principals
// cannot create secrets; names are unique per workspace.
func (v *Vault) Create(ctx context.Context, identity auth.Identity, name, value string) (*Metadata, error) {
	if !v.Configured() {
		return nil, ErrVaultNotConfigured
	}
	if identity.PrincipalType == auth.PrincipalAgent {
		return nil, ErrForbidden
	}

	nonce, ciphertext, err := v.seal([]byte(value))
	if err != nil {
		return nil, err
	}

	row, err := v.db.Secret.Create().
		SetID(ids.Secret()).
		SetWorkspaceID(identity.WorkspaceID).
		SetSecretName(name).
		SetAlgorithm(algorithmAESGCM).
		SetCiphertext(ciphertext).
		SetNonce(nonce).
		SetCreatedByPrincipalID(identity.PrincipalID).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to store secret: %w", err)
	}

	v.logger.Info("secret created",
		slog.String("secret_id", row.ID),
		slog.String("workspace_id", identity.WorkspaceID),
		slog.String("principal_id", identity.PrincipalID))
	return metadataFromEnt(row), nil
}

// Access opens the secret and returns its plaintext. Only a live service
// principal may open secrets. Each access stamps last_accessed_at and
// appends a secret.accessed event in one transaction; the event names the
// secret, never the value.
func (v *Vault) Access(ctx context.Context, identity auth.Identity, secretID string) (string, *Metadata, error) {
	if !v.Configured() {
		return "", nil, ErrVaultNotConfigured
	}
	if identity.PrincipalType != auth.PrincipalService {
		return "", nil, ErrForbidden
	}
	live, err := v.db.Principal.Query().
		Where(
			entprincipal.ID(identity.PrincipalID),
			entprincipal.RevokedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check principal: %w", err)
	}
	if !live {
		return "", nil, ErrForbidden
	}

	row, err := v.db.Secret.Query().
		Where(
			entsecret.ID(secretID),
			entsecret.WorkspaceID(identity.WorkspaceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("failed to load secret: %w", err)
	}

	plaintext, err := v.open(row.Nonce, row.Ciphertext)
	if err != nil {
		// A failed open means key rotation or row corruption, not caller
		// error; say nothing about the contents.
		v.logger.Error("secret decryption failed", slog.String("secret_id", secretID))
		return "", nil, fmt.Errorf("failed to open secret %s", secretID)
	}

	accessedAt := time.Now().UTC()
	tx, err := v.db.Tx(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin access transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Secret.UpdateOneID(secretID).
		SetLastAccessedAt(accessedAt).
		Save(ctx); err != nil {
		return "", nil, fmt.Errorf("failed to stamp secret access: %w", err)
	}

	data, err := json.Marshal(map[string]any{
		"secret_id":   secretID,
		"secret_name": row.SecretName,
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode access payload: %w", err)
	}
	if _, err = v.store.Append(ctx, tx, eventlog.Draft{
		EventType:        eventlog.TypeSecretAccessed,
		WorkspaceID:      identity.WorkspaceID,
		ActorType:        identity.PrincipalType,
		ActorID:          identity.PrincipalID,
		ActorPrincipalID: identity.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		Data:             data,
	}); err != nil {
		return "", nil, fmt.Errorf("failed to append access event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit secret access: %w", err)
	}

	meta := metadataFromEnt(row)
	meta.LastAccessedAt = &accessedAt
	return string(plaintext), meta, nil
}

// List returns workspace secret metadata, newest first.
func (v *Vault) List(ctx context.Context, workspaceID string) ([]*Metadata, error) {
	rows, err := v.db.Secret.Query().
		Where(entsecret.WorkspaceID(workspaceID)).
		Order(ent.Desc(entsecret.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets: %w", err)
	}
	out := make([]*Metadata, 0, len(rows))
	for _, row := range rows {
		out = append(out, metadataFromEnt(row))
	}
	return out, nil
}

func (v *Vault) seal(plaintext []byte) (nonce, ciphertext []byte, err error) {
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build GCM: %w", err)
	}
	nonce = make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to draw nonce: %w", err)
	}
	return nonce, gcm.Seal(nil, nonce, plaintext, nil), nil
}

func (v *Vault) open(nonce, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func metadataFromEnt(row *ent.Secret) *Metadata {
	return &Metadata{
		SecretID:       row.ID,
		WorkspaceID:    row.WorkspaceID,
		Name:           row.SecretName,
		Algorithm:      row.Algorithm,
		CreatedAt:      row.CreatedAt,
		LastAccessedAt: row.LastAccessedAt,
	}
}
