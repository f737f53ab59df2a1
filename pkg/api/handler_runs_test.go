package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLifecycleOverHTTP(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodPost, "/v1/runs", key, map[string]string{"title": "deploy canary"})
	require.Equal(t, http.StatusCreated, rec.Code)
	runID := decodeBody(t, rec)["id"].(string)

	rec = f.do(t, http.MethodPost, "/v1/runs/"+runID+"/status", key, map[string]string{"status": "running"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/v1/runs/"+runID+"/steps", key, map[string]string{"name": "build"})
	require.Equal(t, http.StatusCreated, rec.Code)
	stepID := decodeBody(t, rec)["id"].(string)

	rec = f.do(t, http.MethodPost, "/v1/steps/"+stepID+"/status", key, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/v1/runs/"+runID+"/status", key, map[string]string{"status": "succeeded"})
	require.Equal(t, http.StatusOK, rec.Code)

	// Terminal states are absorbing.
	rec = f.do(t, http.MethodPost, "/v1/runs/"+runID+"/status", key, map[string]string{"status": "running"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_run_transition", decodeBody(t, rec)["reason_code"])

	rec = f.do(t, http.MethodGet, "/v1/runs/"+runID, key, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decodeBody(t, rec)
	require.NotNil(t, detail["run"])
	assert.Len(t, detail["steps"], 1)
}

func TestRunStatusValidation(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodPost, "/v1/runs", key, map[string]string{"title": "r"})
	require.Equal(t, http.StatusCreated, rec.Code)
	runID := decodeBody(t, rec)["id"].(string)

	rec = f.do(t, http.MethodPost, "/v1/runs/"+runID+"/status", key, map[string]string{"status": "paused"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_field", decodeBody(t, rec)["reason_code"])
}
