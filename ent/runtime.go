// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/missionloop/groundcontrol/ent/agentidentity"
	"github.com/missionloop/groundcontrol/ent/approval"
	"github.com/missionloop/groundcontrol/ent/artifact"
	"github.com/missionloop/groundcontrol/ent/authsession"
	"github.com/missionloop/groundcontrol/ent/capabilitytoken"
	"github.com/missionloop/groundcontrol/ent/deadletter"
	"github.com/missionloop/groundcontrol/ent/delegationedge"
	"github.com/missionloop/groundcontrol/ent/event"
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
	"github.com/missionloop/groundcontrol/ent/incident"
	"github.com/missionloop/groundcontrol/ent/incidentlearning"
	"github.com/missionloop/groundcontrol/ent/lesson"
	"github.com/missionloop/groundcontrol/ent/owner"
	"github.com/missionloop/groundcontrol/ent/principal"
	"github.com/missionloop/groundcontrol/ent/ratelimitstreak"
	"github.com/missionloop/groundcontrol/ent/room"
	"github.com/missionloop/groundcontrol/ent/run"
	"github.com/missionloop/groundcontrol/ent/schema"
	"github.com/missionloop/groundcontrol/ent/scorecard"
	"github.com/missionloop/groundcontrol/ent/secret"
	"github.com/missionloop/groundcontrol/ent/skillentry"
	"github.com/missionloop/groundcontrol/ent/step"
	"github.com/missionloop/groundcontrol/ent/streamhead"
	"github.com/missionloop/groundcontrol/ent/thread"
	"github.com/missionloop/groundcontrol/ent/toolcall"
	"github.com/missionloop/groundcontrol/ent/workitemlease"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentidentityFields := schema.AgentIdentity{}.Fields()
	_ = agentidentityFields
	// agentidentityDescCreatedAt is the schema descriptor for created_at field.
	agentidentityDescCreatedAt := agentidentityFields[4].Descriptor()
	// agentidentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentidentity.DefaultCreatedAt = agentidentityDescCreatedAt.Default.(func() time.Time)
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalFields[11].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	// approvalDescUpdatedAt is the schema descriptor for updated_at field.
	approvalDescUpdatedAt := approvalFields[12].Descriptor()
	// approval.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	approval.DefaultUpdatedAt = approvalDescUpdatedAt.Default.(func() time.Time)
	// approval.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	approval.UpdateDefaultUpdatedAt = approvalDescUpdatedAt.UpdateDefault.(func() time.Time)
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[9].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	// artifactDescUpdatedAt is the schema descriptor for updated_at field.
	artifactDescUpdatedAt := artifactFields[10].Descriptor()
	// artifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	artifact.DefaultUpdatedAt = artifactDescUpdatedAt.Default.(func() time.Time)
	// artifact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	artifact.UpdateDefaultUpdatedAt = artifactDescUpdatedAt.UpdateDefault.(func() time.Time)
	authsessionFields := schema.AuthSession{}.Fields()
	_ = authsessionFields
	// authsessionDescCreatedAt is the schema descriptor for created_at field.
	authsessionDescCreatedAt := authsessionFields[6].Descriptor()
	// authsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	authsession.DefaultCreatedAt = authsessionDescCreatedAt.Default.(func() time.Time)
	capabilitytokenFields := schema.CapabilityToken{}.Fields()
	_ = capabilitytokenFields
	// capabilitytokenDescCreatedAt is the schema descriptor for created_at field.
	capabilitytokenDescCreatedAt := capabilitytokenFields[7].Descriptor()
	// capabilitytoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	capabilitytoken.DefaultCreatedAt = capabilitytokenDescCreatedAt.Default.(func() time.Time)
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescAttempts is the schema descriptor for attempts field.
	deadletterDescAttempts := deadletterFields[5].Descriptor()
	// deadletter.DefaultAttempts holds the default value on creation for the attempts field.
	deadletter.DefaultAttempts = deadletterDescAttempts.Default.(int)
	// deadletterDescCreatedAt is the schema descriptor for created_at field.
	deadletterDescCreatedAt := deadletterFields[6].Descriptor()
	// deadletter.DefaultCreatedAt holds the default value on creation for the created_at field.
	deadletter.DefaultCreatedAt = deadletterDescCreatedAt.Default.(func() time.Time)
	delegationedgeFields := schema.DelegationEdge{}.Fields()
	_ = delegationedgeFields
	// delegationedgeDescCreatedAt is the schema descriptor for created_at field.
	delegationedgeDescCreatedAt := delegationedgeFields[7].Descriptor()
	// delegationedge.DefaultCreatedAt holds the default value on creation for the created_at field.
	delegationedge.DefaultCreatedAt = delegationedgeDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescEventVersion is the schema descriptor for event_version field.
	eventDescEventVersion := eventFields[2].Descriptor()
	// event.DefaultEventVersion holds the default value on creation for the event_version field.
	event.DefaultEventVersion = eventDescEventVersion.Default.(int)
	// eventDescContainsSecrets is the schema descriptor for contains_secrets field.
	eventDescContainsSecrets := eventFields[21].Descriptor()
	// event.DefaultContainsSecrets holds the default value on creation for the contains_secrets field.
	event.DefaultContainsSecrets = eventDescContainsSecrets.Default.(bool)
	evidencemanifestFields := schema.EvidenceManifest{}.Fields()
	_ = evidencemanifestFields
	// evidencemanifestDescCreatedAt is the schema descriptor for created_at field.
	evidencemanifestDescCreatedAt := evidencemanifestFields[6].Descriptor()
	// evidencemanifest.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidencemanifest.DefaultCreatedAt = evidencemanifestDescCreatedAt.Default.(func() time.Time)
	// evidencemanifestDescUpdatedAt is the schema descriptor for updated_at field.
	evidencemanifestDescUpdatedAt := evidencemanifestFields[7].Descriptor()
	// evidencemanifest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	evidencemanifest.DefaultUpdatedAt = evidencemanifestDescUpdatedAt.Default.(func() time.Time)
	// evidencemanifest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	evidencemanifest.UpdateDefaultUpdatedAt = evidencemanifestDescUpdatedAt.UpdateDefault.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescLearningCount is the schema descriptor for learning_count field.
	incidentDescLearningCount := incidentFields[8].Descriptor()
	// incident.DefaultLearningCount holds the default value on creation for the learning_count field.
	incident.DefaultLearningCount = incidentDescLearningCount.Default.(int)
	// incidentDescOpenedAt is the schema descriptor for opened_at field.
	incidentDescOpenedAt := incidentFields[9].Descriptor()
	// incident.DefaultOpenedAt holds the default value on creation for the opened_at field.
	incident.DefaultOpenedAt = incidentDescOpenedAt.Default.(func() time.Time)
	// incidentDescUpdatedAt is the schema descriptor for updated_at field.
	incidentDescUpdatedAt := incidentFields[12].Descriptor()
	// incident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	incident.DefaultUpdatedAt = incidentDescUpdatedAt.Default.(func() time.Time)
	// incident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	incident.UpdateDefaultUpdatedAt = incidentDescUpdatedAt.UpdateDefault.(func() time.Time)
	incidentlearningFields := schema.IncidentLearning{}.Fields()
	_ = incidentlearningFields
	// incidentlearningDescCreatedAt is the schema descriptor for created_at field.
	incidentlearningDescCreatedAt := incidentlearningFields[6].Descriptor()
	// incidentlearning.DefaultCreatedAt holds the default value on creation for the created_at field.
	incidentlearning.DefaultCreatedAt = incidentlearningDescCreatedAt.Default.(func() time.Time)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[7].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescUpdatedAt is the schema descriptor for updated_at field.
	lessonDescUpdatedAt := lessonFields[8].Descriptor()
	// lesson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lesson.DefaultUpdatedAt = lessonDescUpdatedAt.Default.(func() time.Time)
	// lesson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lesson.UpdateDefaultUpdatedAt = lessonDescUpdatedAt.UpdateDefault.(func() time.Time)
	ownerFields := schema.Owner{}.Fields()
	_ = ownerFields
	// ownerDescCreatedAt is the schema descriptor for created_at field.
	ownerDescCreatedAt := ownerFields[5].Descriptor()
	// owner.DefaultCreatedAt holds the default value on creation for the created_at field.
	owner.DefaultCreatedAt = ownerDescCreatedAt.Default.(func() time.Time)
	principalFields := schema.Principal{}.Fields()
	_ = principalFields
	// principalDescCreatedAt is the schema descriptor for created_at field.
	principalDescCreatedAt := principalFields[7].Descriptor()
	// principal.DefaultCreatedAt holds the default value on creation for the created_at field.
	principal.DefaultCreatedAt = principalDescCreatedAt.Default.(func() time.Time)
	ratelimitstreakFields := schema.RateLimitStreak{}.Fields()
	_ = ratelimitstreakFields
	// ratelimitstreakDescConsecutive429 is the schema descriptor for consecutive_429 field.
	ratelimitstreakDescConsecutive429 := ratelimitstreakFields[4].Descriptor()
	// ratelimitstreak.DefaultConsecutive429 holds the default value on creation for the consecutive_429 field.
	ratelimitstreak.DefaultConsecutive429 = ratelimitstreakDescConsecutive429.Default.(int)
	// ratelimitstreakDescUpdatedAt is the schema descriptor for updated_at field.
	ratelimitstreakDescUpdatedAt := ratelimitstreakFields[5].Descriptor()
	// ratelimitstreak.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ratelimitstreak.DefaultUpdatedAt = ratelimitstreakDescUpdatedAt.Default.(func() time.Time)
	// ratelimitstreak.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ratelimitstreak.UpdateDefaultUpdatedAt = ratelimitstreakDescUpdatedAt.UpdateDefault.(func() time.Time)
	roomFields := schema.Room{}.Fields()
	_ = roomFields
	// roomDescMessageCount is the schema descriptor for message_count field.
	roomDescMessageCount := roomFields[3].Descriptor()
	// room.DefaultMessageCount holds the default value on creation for the message_count field.
	room.DefaultMessageCount = roomDescMessageCount.Default.(int64)
	// roomDescCreatedAt is the schema descriptor for created_at field.
	roomDescCreatedAt := roomFields[6].Descriptor()
	// room.DefaultCreatedAt holds the default value on creation for the created_at field.
	room.DefaultCreatedAt = roomDescCreatedAt.Default.(func() time.Time)
	// roomDescUpdatedAt is the schema descriptor for updated_at field.
	roomDescUpdatedAt := roomFields[7].Descriptor()
	// room.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	room.DefaultUpdatedAt = roomDescUpdatedAt.Default.(func() time.Time)
	// room.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	room.UpdateDefaultUpdatedAt = roomDescUpdatedAt.UpdateDefault.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[12].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescUpdatedAt is the schema descriptor for updated_at field.
	runDescUpdatedAt := runFields[13].Descriptor()
	// run.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	run.DefaultUpdatedAt = runDescUpdatedAt.Default.(func() time.Time)
	// run.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	run.UpdateDefaultUpdatedAt = runDescUpdatedAt.UpdateDefault.(func() time.Time)
	scorecardFields := schema.Scorecard{}.Fields()
	_ = scorecardFields
	// scorecardDescCreatedAt is the schema descriptor for created_at field.
	scorecardDescCreatedAt := scorecardFields[10].Descriptor()
	// scorecard.DefaultCreatedAt holds the default value on creation for the created_at field.
	scorecard.DefaultCreatedAt = scorecardDescCreatedAt.Default.(func() time.Time)
	// scorecardDescUpdatedAt is the schema descriptor for updated_at field.
	scorecardDescUpdatedAt := scorecardFields[11].Descriptor()
	// scorecard.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scorecard.DefaultUpdatedAt = scorecardDescUpdatedAt.Default.(func() time.Time)
	// scorecard.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scorecard.UpdateDefaultUpdatedAt = scorecardDescUpdatedAt.UpdateDefault.(func() time.Time)
	secretFields := schema.Secret{}.Fields()
	_ = secretFields
	// secretDescAlgorithm is the schema descriptor for algorithm field.
	secretDescAlgorithm := secretFields[3].Descriptor()
	// secret.DefaultAlgorithm holds the default value on creation for the algorithm field.
	secret.DefaultAlgorithm = secretDescAlgorithm.Default.(string)
	// secretDescCreatedAt is the schema descriptor for created_at field.
	secretDescCreatedAt := secretFields[7].Descriptor()
	// secret.DefaultCreatedAt holds the default value on creation for the created_at field.
	secret.DefaultCreatedAt = secretDescCreatedAt.Default.(func() time.Time)
	skillentryFields := schema.SkillEntry{}.Fields()
	_ = skillentryFields
	// skillentryDescAttempts is the schema descriptor for attempts field.
	skillentryDescAttempts := skillentryFields[4].Descriptor()
	// skillentry.DefaultAttempts holds the default value on creation for the attempts field.
	skillentry.DefaultAttempts = skillentryDescAttempts.Default.(int64)
	// skillentryDescSuccesses is the schema descriptor for successes field.
	skillentryDescSuccesses := skillentryFields[5].Descriptor()
	// skillentry.DefaultSuccesses holds the default value on creation for the successes field.
	skillentry.DefaultSuccesses = skillentryDescSuccesses.Default.(int64)
	// skillentryDescSurvivalScore is the schema descriptor for survival_score field.
	skillentryDescSurvivalScore := skillentryFields[6].Descriptor()
	// skillentry.DefaultSurvivalScore holds the default value on creation for the survival_score field.
	skillentry.DefaultSurvivalScore = skillentryDescSurvivalScore.Default.(float64)
	// skillentryDescUpdatedAt is the schema descriptor for updated_at field.
	skillentryDescUpdatedAt := skillentryFields[8].Descriptor()
	// skillentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillentry.DefaultUpdatedAt = skillentryDescUpdatedAt.Default.(func() time.Time)
	// skillentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillentry.UpdateDefaultUpdatedAt = skillentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[7].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
	// stepDescUpdatedAt is the schema descriptor for updated_at field.
	stepDescUpdatedAt := stepFields[8].Descriptor()
	// step.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	step.DefaultUpdatedAt = stepDescUpdatedAt.Default.(func() time.Time)
	// step.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	step.UpdateDefaultUpdatedAt = stepDescUpdatedAt.UpdateDefault.(func() time.Time)
	streamheadFields := schema.StreamHead{}.Fields()
	_ = streamheadFields
	// streamheadDescLastSeq is the schema descriptor for last_seq field.
	streamheadDescLastSeq := streamheadFields[3].Descriptor()
	// streamhead.DefaultLastSeq holds the default value on creation for the last_seq field.
	streamhead.DefaultLastSeq = streamheadDescLastSeq.Default.(int64)
	// streamheadDescUpdatedAt is the schema descriptor for updated_at field.
	streamheadDescUpdatedAt := streamheadFields[5].Descriptor()
	// streamhead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	streamhead.DefaultUpdatedAt = streamheadDescUpdatedAt.Default.(func() time.Time)
	// streamhead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	streamhead.UpdateDefaultUpdatedAt = streamheadDescUpdatedAt.UpdateDefault.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescMessageCount is the schema descriptor for message_count field.
	threadDescMessageCount := threadFields[3].Descriptor()
	// thread.DefaultMessageCount holds the default value on creation for the message_count field.
	thread.DefaultMessageCount = threadDescMessageCount.Default.(int64)
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[5].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	// threadDescUpdatedAt is the schema descriptor for updated_at field.
	threadDescUpdatedAt := threadFields[6].Descriptor()
	// thread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thread.DefaultUpdatedAt = threadDescUpdatedAt.Default.(func() time.Time)
	// thread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	thread.UpdateDefaultUpdatedAt = threadDescUpdatedAt.UpdateDefault.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescStartedAt is the schema descriptor for started_at field.
	toolcallDescStartedAt := toolcallFields[7].Descriptor()
	// toolcall.DefaultStartedAt holds the default value on creation for the started_at field.
	toolcall.DefaultStartedAt = toolcallDescStartedAt.Default.(func() time.Time)
	// toolcallDescUpdatedAt is the schema descriptor for updated_at field.
	toolcallDescUpdatedAt := toolcallFields[11].Descriptor()
	// toolcall.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	toolcall.DefaultUpdatedAt = toolcallDescUpdatedAt.Default.(func() time.Time)
	// toolcall.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	toolcall.UpdateDefaultUpdatedAt = toolcallDescUpdatedAt.UpdateDefault.(func() time.Time)
	workitemleaseFields := schema.WorkItemLease{}.Fields()
	_ = workitemleaseFields
	// workitemleaseDescVersion is the schema descriptor for version field.
	workitemleaseDescVersion := workitemleaseFields[6].Descriptor()
	// workitemlease.DefaultVersion holds the default value on creation for the version field.
	workitemlease.DefaultVersion = workitemleaseDescVersion.Default.(int)
	// workitemleaseDescCreatedAt is the schema descriptor for created_at field.
	workitemleaseDescCreatedAt := workitemleaseFields[7].Descriptor()
	// workitemlease.DefaultCreatedAt holds the default value on creation for the created_at field.
	workitemlease.DefaultCreatedAt = workitemleaseDescCreatedAt.Default.(func() time.Time)
	// workitemleaseDescUpdatedAt is the schema descriptor for updated_at field.
	workitemleaseDescUpdatedAt := workitemleaseFields[8].Descriptor()
	// workitemlease.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workitemlease.DefaultUpdatedAt = workitemleaseDescUpdatedAt.Default.(func() time.Time)
	// workitemlease.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workitemlease.UpdateDefaultUpdatedAt = workitemleaseDescUpdatedAt.UpdateDefault.(func() time.Time)
}
