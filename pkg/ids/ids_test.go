package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixes(t *testing.T) {
	cases := []struct {
		id     string
		prefix string
	}{
		{Event(), "evt_"},
		{Message(), "msg_"},
		{Run(), "run_"},
		{Step(), "stp_"},
		{ToolCall(), "tool_"},
		{Artifact(), "art_"},
		{Scorecard(), "sc_"},
		{Lesson(), "learn_"},
		{Incident(), "inc_"},
		{Approval(), "ap_"},
		{Room(), "room_"},
		{Thread(), "thr_"},
		{Workspace(), "ws_"},
		{Owner(), "own_"},
		{Principal(), "sec_"},
		{Secret(), "scrt_"},
		{CapabilityToken(), "cap_"},
		{DelegationEdge(), "cedg_"},
		{Lease(), "lease_"},
	}
	for _, tc := range cases {
		assert.True(t, strings.HasPrefix(tc.id, tc.prefix), "%s should start with %s", tc.id, tc.prefix)
		// prefix + underscore + 32 hex chars
		assert.Len(t, tc.id, len(tc.prefix)+32)
	}
}

func TestUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := Event()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestURLSafe(t *testing.T) {
	id := Message()
	for _, r := range id {
		ok := r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		assert.True(t, ok, "unexpected rune %q in %s", r, id)
	}
}
