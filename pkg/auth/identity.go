// Package auth implements the request identity contract: owner bootstrap
// and login, bearer resolution for agents and services, and the argon2id /
// JWT primitives behind them.
package auth

// Identity is the authenticated subject bound to a request. It is resolved
// once by the API middleware and threaded to services; the zero value means
// unauthenticated.
type Identity struct {
	PrincipalID   string
	PrincipalType string // user | service | agent
	WorkspaceID   string
	OwnerID       string // set for owner sessions only
}

// Principal types. These mirror the sec_principals enum.
const (
	PrincipalUser    = "user"
	PrincipalService = "service"
	PrincipalAgent   = "agent"
)

// IsZero reports whether no principal was resolved.
func (i Identity) IsZero() bool { return i.PrincipalID == "" }
