package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, f *apiFixture, path string, headers map[string]string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func bootstrapBody() map[string]string {
	return map[string]string{
		"workspace_id": testWorkspace,
		"email":        "owner@example.com",
		"passphrase":   "correct-horse-battery",
	}
}

func TestBootstrapRequiresGuard(t *testing.T) {
	f := newTestServer(t)

	rec := postJSON(t, f, "/v1/auth/bootstrap", nil, bootstrapBody())

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "bootstrap_forbidden", decodeBody(t, rec)["reason_code"])
}

func TestBootstrapLoginRefresh(t *testing.T) {
	f := newTestServer(t)
	guard := map[string]string{"x-bootstrap-token": "boot-token"}

	rec := postJSON(t, f, "/v1/auth/bootstrap", guard, bootstrapBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, testWorkspace, created["workspace_id"])
	assert.NotEmpty(t, created["owner_id"])

	// Second bootstrap for the same workspace refuses.
	rec = postJSON(t, f, "/v1/auth/bootstrap", guard, bootstrapBody())
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "owner_exists", decodeBody(t, rec)["reason_code"])

	// Login with the right passphrase yields a session pair.
	rec = postJSON(t, f, "/v1/auth/login", nil, bootstrapBody())
	require.Equal(t, http.StatusOK, rec.Code)
	session := decodeBody(t, rec)
	require.NotEmpty(t, session["access_token"])
	require.NotEmpty(t, session["refresh_token"])

	// Refresh rotates; the old refresh token dies with the rotation.
	rec = postJSON(t, f, "/v1/auth/refresh", nil, map[string]string{
		"refresh_token": session["refresh_token"].(string),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rotated := decodeBody(t, rec)
	assert.NotEqual(t, session["refresh_token"], rotated["refresh_token"])

	rec = postJSON(t, f, "/v1/auth/refresh", nil, map[string]string{
		"refresh_token": session["refresh_token"].(string),
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", decodeBody(t, rec)["reason_code"])
}

func TestLoginWrongPassphrase(t *testing.T) {
	f := newTestServer(t)
	guard := map[string]string{"x-bootstrap-token": "boot-token"}
	rec := postJSON(t, f, "/v1/auth/bootstrap", guard, bootstrapBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	body := bootstrapBody()
	body["passphrase"] = "wrong-passphrase-entirely"
	rec = postJSON(t, f, "/v1/auth/login", nil, body)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", decodeBody(t, rec)["reason_code"])
}

func TestOwnerJWTWorksAsBearer(t *testing.T) {
	f := newTestServer(t)
	guard := map[string]string{"x-bootstrap-token": "boot-token"}
	rec := postJSON(t, f, "/v1/auth/bootstrap", guard, bootstrapBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, f, "/v1/auth/login", nil, bootstrapBody())
	require.Equal(t, http.StatusOK, rec.Code)
	access := decodeBody(t, rec)["access_token"].(string)

	rec = f.do(t, http.MethodGet, "/v1/runs", access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
