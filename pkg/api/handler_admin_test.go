package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerToken(t *testing.T, f *apiFixture) string {
	t.Helper()
	guard := map[string]string{"x-bootstrap-token": "boot-token"}
	rec := postJSON(t, f, "/v1/auth/bootstrap", guard, bootstrapBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, f, "/v1/auth/login", nil, bootstrapBody())
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody(t, rec)["access_token"].(string)
}

func TestRebuildProjections(t *testing.T) {
	f := newTestServer(t)
	access := ownerToken(t, f)

	rec := f.do(t, http.MethodPost, "/v1/runs", access, map[string]any{
		"title": "nightly eval",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	runID := decodeBody(t, rec)["id"].(string)

	rec = f.do(t, http.MethodPost, "/v1/admin/projections/rebuild", access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, testWorkspace, body["workspace_id"])
	assert.GreaterOrEqual(t, body["events_applied"].(float64), float64(1))

	// The replayed projection still serves reads.
	rec = f.do(t, http.MethodGet, "/v1/runs/"+runID, access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRebuildProjectionsOwnerOnly(t *testing.T) {
	f := newTestServer(t)
	_, key := f.agentKey(t, "agt_rebuild")

	rec := f.do(t, http.MethodPost, "/v1/admin/projections/rebuild", key, nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "admin_forbidden", decodeBody(t, rec)["reason_code"])
}
