package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intakeBody(agentID, key string) map[string]any {
	return map[string]any{
		"schema_version":  "1",
		"from_agent_id":   agentID,
		"idempotency_key": key,
		"payload":         map[string]any{"text": "hello"},
	}
}

func TestIntakeAcceptsAndReplays(t *testing.T) {
	f := newTestServer(t)
	_, key := f.agentKey(t, "agt_intake")

	rec := f.do(t, http.MethodPost, "/v1/messages", key, intakeBody("agt_intake", "K1"))
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decodeBody(t, rec)
	require.NotEmpty(t, first["message_id"])
	assert.Equal(t, false, first["idempotent_replay"])

	rec = f.do(t, http.MethodPost, "/v1/messages", key, intakeBody("agt_intake", "K1"))
	require.Equal(t, http.StatusOK, rec.Code)
	replay := decodeBody(t, rec)
	assert.Equal(t, first["message_id"], replay["message_id"])
	assert.Equal(t, true, replay["idempotent_replay"])
	assert.Equal(t, "duplicate_idempotent_replay", replay["reason_code"])
}

func TestIntakeUnsupportedVersion(t *testing.T) {
	f := newTestServer(t)
	_, key := f.agentKey(t, "agt_ver")

	body := intakeBody("agt_ver", "K2")
	body["schema_version"] = "9"
	rec := f.do(t, http.MethodPost, "/v1/messages", key, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, true, out["error"])
	assert.Equal(t, "unsupported_version", out["reason_code"])
}

func TestIntakeMissingLeaseHeader(t *testing.T) {
	f := newTestServer(t)
	_, key := f.agentKey(t, "agt_warn")

	body := intakeBody("agt_warn", "K4")
	body["work_links"] = map[string]any{"incident_id": "inc_unleased"}
	rec := f.do(t, http.MethodPost, "/v1/messages", key, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "missing_lease", rec.Header().Get("X-Lease-Warning"))
}

func TestIntakeRejectsForeignAgent(t *testing.T) {
	f := newTestServer(t)
	f.agentKey(t, "agt_a")
	_, keyB := f.agentKey(t, "agt_b")

	// Bearer resolves to agt_b's principal; posting as agt_a must fail.
	rec := f.do(t, http.MethodPost, "/v1/messages", keyB, intakeBody("agt_a", "K3"))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "unknown_agent", decodeBody(t, rec)["reason_code"])
}
