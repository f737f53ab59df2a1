package eventlog

// Stream types. Every event belongs to exactly one stream and carries a
// dense per-stream sequence number.
const (
	StreamWorkspace = "workspace"
	StreamRoom      = "room"
	StreamThread    = "thread"
)

// Actor types recorded on the envelope.
const (
	ActorUser    = "user"
	ActorService = "service"
	ActorAgent   = "agent"
)

// Execution zones. high_stakes requires an explicit capability scope.
const (
	ZoneSandbox    = "sandbox"
	ZoneSupervised = "supervised"
	ZoneHighStakes = "high_stakes"
)

// Redaction levels applied to envelopes on read surfaces.
const (
	RedactionNone    = "none"
	RedactionPartial = "partial"
	RedactionFull    = "full"
)

// Event types. The projector registry subscribes by these names; new types
// can be appended freely but existing names are wire contract.
const (
	TypeMessageCreated = "message.created"
	TypeRoomCreated    = "room.created"
	TypeThreadCreated  = "thread.created"

	TypeRunCreated   = "run.created"
	TypeRunStarted   = "run.started"
	TypeRunSucceeded = "run.succeeded"
	TypeRunFailed    = "run.failed"

	TypeStepStarted   = "step.started"
	TypeStepCompleted = "step.completed"
	TypeStepFailed    = "step.failed"

	TypeToolCallStarted   = "tool.call.started"
	TypeToolCallSucceeded = "tool.call.succeeded"
	TypeToolCallFailed    = "tool.call.failed"

	TypeArtifactCreated   = "artifact.created"
	TypeScorecardRecorded = "scorecard.recorded"
	TypeLessonRecorded    = "lesson.recorded"

	TypeIncidentOpened         = "incident.opened"
	TypeIncidentRCAUpdated     = "incident.rca.updated"
	TypeIncidentLearningLogged = "incident.learning.logged"
	TypeIncidentClosed         = "incident.closed"

	TypeApprovalRequested = "approval.requested"
	TypeApprovalHeld      = "approval.held"
	TypeApprovalApproved  = "approval.approved"
	TypeApprovalRejected  = "approval.rejected"

	TypeCapabilityGranted   = "agent.capability.granted"
	TypeCapabilityRevoked   = "agent.capability.revoked"
	TypeDelegationAttempted = "agent.delegation.attempted"

	TypeSecretAccessed  = "secret.accessed"
	TypePolicyEvaluated = "policy.evaluated"

	TypeSkillObservationRecorded = "skill.observation.recorded"
)

// NotifyChannelRoom returns the pg_notify channel for a room stream.
func NotifyChannelRoom(roomID string) string {
	return "room:" + roomID
}

// NotifyChannelWorkspace returns the pg_notify channel for a workspace.
func NotifyChannelWorkspace(workspaceID string) string {
	return "workspace:" + workspaceID
}
