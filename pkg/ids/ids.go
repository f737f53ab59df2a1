// Package ids mints the prefixed, URL-safe identifiers used across the
// control plane. Every identifier is a domain prefix plus 128 bits of
// UUIDv4 entropy in compact hex.
package ids

import (
	"encoding/hex"

	"github.com/google/uuid"
)

func newID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])
}

// Event returns a new event id (evt_…).
func Event() string { return newID("evt") }

// Message returns a new message id (msg_…).
func Message() string { return newID("msg") }

// Run returns a new run id (run_…).
func Run() string { return newID("run") }

// Step returns a new step id (stp_…).
func Step() string { return newID("stp") }

// ToolCall returns a new tool call id (tool_…).
func ToolCall() string { return newID("tool") }

// Artifact returns a new artifact id (art_…).
func Artifact() string { return newID("art") }

// Scorecard returns a new scorecard id (sc_…).
func Scorecard() string { return newID("sc") }

// Lesson returns a new lesson id (learn_…). Incident learning entries share
// the prefix: both land in the learning ledger.
func Lesson() string { return newID("learn") }

// Incident returns a new incident id (inc_…).
func Incident() string { return newID("inc") }

// Approval returns a new approval id (ap_…).
func Approval() string { return newID("ap") }

// Room returns a new room id (room_…).
func Room() string { return newID("room") }

// Thread returns a new thread id (thr_…).
func Thread() string { return newID("thr") }

// Workspace returns a new workspace id (ws_…).
func Workspace() string { return newID("ws") }

// Owner returns a new owner id (own_…).
func Owner() string { return newID("own") }

// Principal returns a new principal id (sec_…).
func Principal() string { return newID("sec") }

// Secret returns a new secret id (scrt_…).
func Secret() string { return newID("scrt") }

// Session returns a new auth session id (sess_…).
func Session() string { return newID("sess") }

// CapabilityToken returns a new capability token id (cap_…).
func CapabilityToken() string { return newID("cap") }

// DelegationEdge returns a new delegation edge id (cedg_…).
func DelegationEdge() string { return newID("cedg") }

// Lease returns a new lease id (lease_…).
func Lease() string { return newID("lease") }

// Correlation returns a new correlation id (corr_…).
func Correlation() string { return newID("corr") }

// Manifest returns a new evidence manifest id (man_…).
func Manifest() string { return newID("man") }

// SkillEntry returns a new skills ledger entry id (skl_…).
func SkillEntry() string { return newID("skl") }

// Streak returns a new rate-limit streak row id (rls_…).
func Streak() string { return newID("rls") }

// DeadLetter returns a new dead letter id (dlq_…).
func DeadLetter() string { return newID("dlq") }

// APIKey returns a new bearer API key (ak_…). The raw value is handed out
// once; only its SHA-256 is stored.
func APIKey() string { return newID("ak") }
