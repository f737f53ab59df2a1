package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretCreateAccessList(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodPost, "/v1/secrets", key,
		map[string]string{"name": "pagerduty_key", "value": "pd-secret-value"})
	require.Equal(t, http.StatusCreated, rec.Code)
	meta := decodeBody(t, rec)
	secretID := meta["secret_id"].(string)
	require.NotEmpty(t, secretID)
	// The create response never echoes the value.
	assert.NotContains(t, rec.Body.String(), "pd-secret-value")

	rec = f.do(t, http.MethodPost, "/v1/secrets/"+secretID+"/access", key, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	access := decodeBody(t, rec)
	assert.Equal(t, "pd-secret-value", access["value"])

	rec = f.do(t, http.MethodGet, "/v1/secrets", key, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pd-secret-value")
}

func TestSecretDuplicateName(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodPost, "/v1/secrets", key,
		map[string]string{"name": "dup", "value": "v1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/v1/secrets", key,
		map[string]string{"name": "dup", "value": "v2"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "secret_name_exists", decodeBody(t, rec)["reason_code"])
}

func TestSecretAccessServiceOnly(t *testing.T) {
	f := newTestServer(t)
	_, svcKey := f.serviceKey(t)

	rec := f.do(t, http.MethodPost, "/v1/secrets", svcKey,
		map[string]string{"name": "deploy_token", "value": "tok-value"})
	require.Equal(t, http.StatusCreated, rec.Code)
	secretID := decodeBody(t, rec)["secret_id"].(string)

	_, agentKey := f.agentKey(t, "agt_vault_access")
	rec = f.do(t, http.MethodPost, "/v1/secrets/"+secretID+"/access", agentKey, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "vault_forbidden", decodeBody(t, rec)["reason_code"])
	assert.NotContains(t, rec.Body.String(), "tok-value")
}

func TestSecretCreateRefusedForAgents(t *testing.T) {
	f := newTestServer(t)
	_, key := f.agentKey(t, "agt_vault")

	rec := f.do(t, http.MethodPost, "/v1/secrets", key,
		map[string]string{"name": "agent_secret", "value": "v"})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "vault_forbidden", decodeBody(t, rec)["reason_code"])
}
