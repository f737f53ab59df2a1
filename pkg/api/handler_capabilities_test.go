package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilityGrantDelegateRevoke(t *testing.T) {
	f := newTestServer(t)
	svc, key := f.serviceKey(t)
	agent, agentKey := f.agentKey(t, "agt_cap")

	// Root issuance to the agent.
	rec := f.do(t, http.MethodPost, "/v1/capabilities", key, map[string]any{
		"issued_to_principal_id": agent.PrincipalID,
		"scopes": map[string]any{
			"rooms": []string{"room_1", "room_2"},
			"tools": []string{"*"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	root := decodeBody(t, rec)
	rootID := root["token_id"].(string)
	assert.Equal(t, svc.PrincipalID, root["granted_by_principal_id"])

	// The agent delegates a narrowed grant.
	rec = f.do(t, http.MethodPost, "/v1/capabilities", agentKey, map[string]any{
		"issued_to_principal_id": svc.PrincipalID,
		"parent_token_id":        rootID,
		"scopes": map[string]any{
			"rooms": []string{"room_1", "room_9"},
			"tools": []string{"search"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	child := decodeBody(t, rec)
	scopes := child["scopes"].(map[string]any)
	assert.ElementsMatch(t, []any{"room_1"}, scopes["rooms"])
	assert.ElementsMatch(t, []any{"search"}, scopes["tools"])

	// Revoke is idempotent.
	rec = f.do(t, http.MethodPost, "/v1/capabilities/"+rootID+"/revoke", key, map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["already_revoked"])

	rec = f.do(t, http.MethodPost, "/v1/capabilities/"+rootID+"/revoke", key, map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["already_revoked"])
}

func TestCapabilityDelegationFromRevokedParent(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)
	agent, agentKey := f.agentKey(t, "agt_revoked")

	rec := f.do(t, http.MethodPost, "/v1/capabilities", key, map[string]any{
		"issued_to_principal_id": agent.PrincipalID,
		"scopes":                 map[string]any{"tools": []string{"*"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rootID := decodeBody(t, rec)["token_id"].(string)

	rec = f.do(t, http.MethodPost, "/v1/capabilities/"+rootID+"/revoke", key, map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/v1/capabilities", agentKey, map[string]any{
		"issued_to_principal_id": agent.PrincipalID,
		"parent_token_id":        rootID,
		"scopes":                 map[string]any{"tools": []string{"search"}},
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "parent_token_revoked", decodeBody(t, rec)["reason_code"])
}
