package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineBoard(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodPost, "/v1/runs", key, map[string]string{"title": "triage me"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/pipeline", key, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decodeBody(t, rec)
	stages, ok := board["stages"].([]any)
	require.True(t, ok)
	assert.Len(t, stages, 6)
}

func TestAuditVerifyWorkspaceStream(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	for _, title := range []string{"one", "two", "three"} {
		rec := f.do(t, http.MethodPost, "/v1/runs", key, map[string]string{"title": title})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/v1/audit/verify", key, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBody(t, rec)
	assert.Equal(t, true, result["valid"])
	assert.EqualValues(t, 3, result["checked"])
}

func TestAuditVerifyRefusesForeignWorkspace(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodGet, "/v1/audit/verify?stream_type=workspace&stream_id=ws_other", key, nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "unauthorized_workspace", decodeBody(t, rec)["reason_code"])
}
