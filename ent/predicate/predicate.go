// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentIdentity is the predicate function for agentidentity builders.
type AgentIdentity func(*sql.Selector)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// AuthSession is the predicate function for authsession builders.
type AuthSession func(*sql.Selector)

// CapabilityToken is the predicate function for capabilitytoken builders.
type CapabilityToken func(*sql.Selector)

// DeadLetter is the predicate function for deadletter builders.
type DeadLetter func(*sql.Selector)

// DelegationEdge is the predicate function for delegationedge builders.
type DelegationEdge func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// EvidenceManifest is the predicate function for evidencemanifest builders.
type EvidenceManifest func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// IncidentLearning is the predicate function for incidentlearning builders.
type IncidentLearning func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// Owner is the predicate function for owner builders.
type Owner func(*sql.Selector)

// Principal is the predicate function for principal builders.
type Principal func(*sql.Selector)

// RateLimitStreak is the predicate function for ratelimitstreak builders.
type RateLimitStreak func(*sql.Selector)

// Room is the predicate function for room builders.
type Room func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// Scorecard is the predicate function for scorecard builders.
type Scorecard func(*sql.Selector)

// Secret is the predicate function for secret builders.
type Secret func(*sql.Selector)

// SkillEntry is the predicate function for skillentry builders.
type SkillEntry func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// StreamHead is the predicate function for streamhead builders.
type StreamHead func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)

// WorkItemLease is the predicate function for workitemlease builders.
type WorkItemLease func(*sql.Selector)
