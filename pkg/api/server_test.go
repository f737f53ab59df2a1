package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/projector"
	"github.com/missionloop/groundcontrol/pkg/ratelimit"
	"github.com/missionloop/groundcontrol/pkg/secrets"
	"github.com/missionloop/groundcontrol/pkg/services"
	testdb "github.com/missionloop/groundcontrol/test/database"
)

const testWorkspace = "ws_api"

// testSecretKey is 32 zero bytes; fine for tests, never for production.
var testSecretKey = make([]byte, 32)

// apiFixture is a full server over a test database plus the handles tests
// need to mint credentials.
type apiFixture struct {
	e       *echo.Echo
	db      *database.Client
	authSvc *auth.Service
}

func newTestServer(t *testing.T) *apiFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	logger := slog.Default()
	store := eventlog.NewStore(db.Client)
	reg := projector.NewRegistry(db, store, logger)
	leases := lease.NewManager(db)
	limiter := ratelimit.NewLimiter(ratelimit.Config{
		Messages:  ratelimit.Limit{PerMinute: 6000, Burst: 1000},
		Heartbeat: ratelimit.Limit{PerMinute: 6000, Burst: 1000},
	})
	t.Cleanup(limiter.Stop)
	streaks := ratelimit.NewStreaks(db)
	authSvc := auth.NewService(db, []byte("test-session-secret"), logger)
	capSvc := capability.NewService(db, store)
	messageSvc := services.NewMessageService(db, store, reg, leases, limiter, streaks, nil, logger)
	messageSvc.SetCapabilities(capSvc)

	srv := NewServer(Config{
		BootstrapToken: "boot-token",
	}, Deps{
		DB:         db,
		Store:      store,
		Auth:       authSvc,
		Messages:   messageSvc,
		Rooms:      services.NewRoomService(db, store, reg, logger),
		Runs:       services.NewRunService(db, store, reg, logger),
		ToolCalls:  services.NewToolCallService(db, store, reg, logger),
		Artifacts:  services.NewArtifactService(db, store, reg, nil, logger),
		Scorecards: services.NewScorecardService(db, store, reg, logger),
		Approvals:  services.NewApprovalService(db, store, reg, leases, logger),
		Incidents:  services.NewIncidentService(db, store, reg, logger),
		Pipeline:   services.NewPipelineService(db),
		Caps:       capSvc,
		Leases:     leases,
		Vault:      secrets.NewVault(db, store, testSecretKey, logger),
		Projectors: reg,
		Logger:     logger,
	})

	e := echo.New()
	srv.Register(e)
	return &apiFixture{e: e, db: db, authSvc: authSvc}
}

// agentKey mints an agent principal with its API key and the matching
// agent identity row.
func (f *apiFixture) agentKey(t *testing.T, agentID string) (auth.Identity, string) {
	t.Helper()
	identity, key, err := f.authSvc.IssueAPIKey(context.Background(), testWorkspace, auth.PrincipalAgent, agentID)
	require.NoError(t, err)
	err = f.db.AgentIdentity.Create().
		SetID(agentID).
		SetWorkspaceID(testWorkspace).
		SetPrincipalID(identity.PrincipalID).
		Exec(context.Background())
	require.NoError(t, err)
	return identity, key
}

func (f *apiFixture) serviceKey(t *testing.T) (auth.Identity, string) {
	t.Helper()
	identity, key, err := f.authSvc.IssueAPIKey(context.Background(), testWorkspace, auth.PrincipalService, "control")
	require.NoError(t, err)
	return identity, key
}

// do runs one request through the router with the bearer and workspace
// header set.
func (f *apiFixture) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
		req.Header.Set("x-workspace-id", testWorkspace)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthzIsOpen(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(t, http.MethodGet, "/healthz", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "healthy", decodeBody(t, rec)["status"])
}

func TestV1RequiresBearer(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(t, http.MethodGet, "/v1/runs", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "missing_bearer_token", decodeBody(t, rec)["reason_code"])
}

func TestV1RejectsUnknownBearer(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(t, http.MethodGet, "/v1/runs", "ak_nope", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid_token", decodeBody(t, rec)["reason_code"])
}

func TestWorkspaceHeaderMustMatchPrincipal(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("x-workspace-id", "ws_other")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "unauthorized_workspace", decodeBody(t, rec)["reason_code"])
}

func TestMissingWorkspaceHeader(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
	req.Header.Set("Authorization", "Bearer "+key)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "missing_workspace_header", decodeBody(t, rec)["reason_code"])
}

func TestStreamingUnavailableWithoutManager(t *testing.T) {
	f := newTestServer(t)
	_, key := f.serviceKey(t)

	rec := f.do(t, http.MethodGet, "/v1/ws", key, nil)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "projection_unavailable", decodeBody(t, rec)["reason_code"])
}
