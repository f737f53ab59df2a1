package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes for owner sessions.
const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

const tokenIssuer = "groundcontrol"

// ErrInvalidToken covers expired, tampered, and otherwise unusable bearer
// tokens; the API maps it to 401 invalid_token.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims are the JWT claims on an owner access token.
type SessionClaims struct {
	jwt.RegisteredClaims
	WorkspaceID   string `json:"wid"`
	OwnerID       string `json:"oid"`
	PrincipalType string `json:"typ"`
}

// SignAccessToken mints an HS256 owner access token for the principal.
func SignAccessToken(secret []byte, identity Identity, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(AccessTokenTTL)
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.PrincipalID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		WorkspaceID:   identity.WorkspaceID,
		OwnerID:       identity.OwnerID,
		PrincipalType: identity.PrincipalType,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseAccessToken validates an HS256 access token and returns the identity
// it carries.
func ParseAccessToken(secret []byte, tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		PrincipalID:   claims.Subject,
		PrincipalType: claims.PrincipalType,
		WorkspaceID:   claims.WorkspaceID,
		OwnerID:       claims.OwnerID,
	}, nil
}

// NewRefreshToken draws an opaque refresh token and its storable SHA-256
// digest. The raw token leaves the process exactly once, in the response.
func NewRefreshToken() (token, digest string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to draw refresh token: %w", err)
	}
	token = base64.RawURLEncoding.EncodeToString(raw)
	return token, HashToken(token), nil
}

// HashToken returns the hex SHA-256 digest used to look up stored refresh
// tokens and API keys.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
