package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaseAcquireConflictRelease(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodPost, "/v1/work-items/approval/ap_1/lease", key,
		map[string]any{"agent_id": "agt_1"})
	require.Equal(t, http.StatusOK, rec.Code)
	acquired := decodeBody(t, rec)
	assert.Equal(t, "agt_1", acquired["agent_id"])
	assert.NotEmpty(t, acquired["lease_id"])

	// Another agent cannot take a live lease.
	rec = f.do(t, http.MethodPost, "/v1/work-items/approval/ap_1/lease", key,
		map[string]any{"agent_id": "agt_2"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "lease_held", decodeBody(t, rec)["reason_code"])

	// The holder renews; the version advances.
	rec = f.do(t, http.MethodPost, "/v1/work-items/approval/ap_1/lease", key,
		map[string]any{"agent_id": "agt_1", "ttl_seconds": 60})
	require.Equal(t, http.StatusOK, rec.Code)
	renewed := decodeBody(t, rec)
	assert.Greater(t, renewed["version"], acquired["version"])

	// Only the holder may release.
	rec = f.do(t, http.MethodDelete, "/v1/work-items/approval/ap_1/lease", key,
		map[string]any{"agent_id": "agt_2"})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodDelete, "/v1/work-items/approval/ap_1/lease", key,
		map[string]any{"agent_id": "agt_1"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Releasing an absent lease is a no-op success.
	rec = f.do(t, http.MethodDelete, "/v1/work-items/approval/ap_1/lease", key,
		map[string]any{"agent_id": "agt_1"})
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLeaseRejectsUnknownItemType(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodPost, "/v1/work-items/run/run_1/lease", key,
		map[string]any{"agent_id": "agt_1"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_field", decodeBody(t, rec)["reason_code"])
}
