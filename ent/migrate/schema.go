// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "principal_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentidentity_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
			{
				Name:    "agentidentity_principal_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
		},
	}
	// ProjApprovalsColumns holds the columns for the "proj_approvals" table.
	ProjApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "room_id", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "held", "approved", "rejected"}, Default: "pending"},
		{Name: "requested_by", Type: field.TypeString},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjApprovalsTable holds the schema information for the "proj_approvals" table.
	ProjApprovalsTable = &schema.Table{
		Name:       "proj_approvals",
		Columns:    ProjApprovalsColumns,
		PrimaryKey: []*schema.Column{ProjApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approval_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProjApprovalsColumns[1], ProjApprovalsColumns[5]},
			},
			{
				Name:    "approval_run_id",
				Unique:  false,
				Columns: []*schema.Column{ProjApprovalsColumns[3]},
			},
		},
	}
	// ProjArtifactsColumns holds the columns for the "proj_artifacts" table.
	ProjArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "object_key", Type: field.TypeString},
		{Name: "media_type", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "created_by_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjArtifactsTable holds the schema information for the "proj_artifacts" table.
	ProjArtifactsTable = &schema.Table{
		Name:       "proj_artifacts",
		Columns:    ProjArtifactsColumns,
		PrimaryKey: []*schema.Column{ProjArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjArtifactsColumns[1]},
			},
			{
				Name:    "artifact_run_id",
				Unique:  false,
				Columns: []*schema.Column{ProjArtifactsColumns[2]},
			},
			{
				Name:    "artifact_object_key",
				Unique:  false,
				Columns: []*schema.Column{ProjArtifactsColumns[3]},
			},
		},
	}
	// AuthSessionsColumns holds the columns for the "auth_sessions" table.
	AuthSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "refresh_token_hash", Type: field.TypeString},
		{Name: "access_expires_at", Type: field.TypeTime},
		{Name: "refresh_expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// AuthSessionsTable holds the schema information for the "auth_sessions" table.
	AuthSessionsTable = &schema.Table{
		Name:       "auth_sessions",
		Columns:    AuthSessionsColumns,
		PrimaryKey: []*schema.Column{AuthSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "authsession_refresh_token_hash",
				Unique:  false,
				Columns: []*schema.Column{AuthSessionsColumns[3]},
			},
			{
				Name:    "authsession_owner_id",
				Unique:  false,
				Columns: []*schema.Column{AuthSessionsColumns[1]},
			},
			{
				Name:    "authsession_refresh_expires_at",
				Unique:  false,
				Columns: []*schema.Column{AuthSessionsColumns[5]},
			},
		},
	}
	// SecCapabilityTokensColumns holds the columns for the "sec_capability_tokens" table.
	SecCapabilityTokensColumns = []*schema.Column{
		{Name: "token_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "issued_to_principal_id", Type: field.TypeString},
		{Name: "granted_by_principal_id", Type: field.TypeString},
		{Name: "parent_token_id", Type: field.TypeString, Nullable: true},
		{Name: "scopes", Type: field.TypeJSON},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// SecCapabilityTokensTable holds the schema information for the "sec_capability_tokens" table.
	SecCapabilityTokensTable = &schema.Table{
		Name:       "sec_capability_tokens",
		Columns:    SecCapabilityTokensColumns,
		PrimaryKey: []*schema.Column{SecCapabilityTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "capabilitytoken_workspace_id_issued_to_principal_id",
				Unique:  false,
				Columns: []*schema.Column{SecCapabilityTokensColumns[1], SecCapabilityTokensColumns[2]},
			},
			{
				Name:    "capabilitytoken_parent_token_id",
				Unique:  false,
				Columns: []*schema.Column{SecCapabilityTokensColumns[4]},
			},
		},
	}
	// ProjDeadLettersColumns holds the columns for the "proj_dead_letters" table.
	ProjDeadLettersColumns = []*schema.Column{
		{Name: "dead_letter_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "projector", Type: field.TypeString},
		{Name: "error", Type: field.TypeString, Size: 2147483647},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// ProjDeadLettersTable holds the schema information for the "proj_dead_letters" table.
	ProjDeadLettersTable = &schema.Table{
		Name:       "proj_dead_letters",
		Columns:    ProjDeadLettersColumns,
		PrimaryKey: []*schema.Column{ProjDeadLettersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_event_id_projector",
				Unique:  true,
				Columns: []*schema.Column{ProjDeadLettersColumns[2], ProjDeadLettersColumns[3]},
			},
			{
				Name:    "deadletter_resolved_at",
				Unique:  false,
				Columns: []*schema.Column{ProjDeadLettersColumns[7]},
			},
		},
	}
	// SecCapabilityDelegationEdgesColumns holds the columns for the "sec_capability_delegation_edges" table.
	SecCapabilityDelegationEdgesColumns = []*schema.Column{
		{Name: "edge_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "parent_token_id", Type: field.TypeString},
		{Name: "child_token_id", Type: field.TypeString},
		{Name: "issued_to_principal_id", Type: field.TypeString},
		{Name: "granted_by_principal_id", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SecCapabilityDelegationEdgesTable holds the schema information for the "sec_capability_delegation_edges" table.
	SecCapabilityDelegationEdgesTable = &schema.Table{
		Name:       "sec_capability_delegation_edges",
		Columns:    SecCapabilityDelegationEdgesColumns,
		PrimaryKey: []*schema.Column{SecCapabilityDelegationEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "delegationedge_child_token_id",
				Unique:  true,
				Columns: []*schema.Column{SecCapabilityDelegationEdgesColumns[3]},
			},
			{
				Name:    "delegationedge_parent_token_id",
				Unique:  false,
				Columns: []*schema.Column{SecCapabilityDelegationEdgesColumns[2]},
			},
			{
				Name:    "delegationedge_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{SecCapabilityDelegationEdgesColumns[1]},
			},
		},
	}
	// EvtEventsColumns holds the columns for the "evt_events" table.
	EvtEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_version", Type: field.TypeInt, Default: 1},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "mission_id", Type: field.TypeString, Nullable: true},
		{Name: "room_id", Type: field.TypeString, Nullable: true},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_type", Type: field.TypeEnum, Enums: []string{"user", "service", "agent"}},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "actor_principal_id", Type: field.TypeString, Nullable: true},
		{Name: "zone", Type: field.TypeEnum, Enums: []string{"sandbox", "supervised", "high_stakes"}, Default: "sandbox"},
		{Name: "stream_type", Type: field.TypeEnum, Enums: []string{"workspace", "room", "thread"}},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "stream_seq", Type: field.TypeInt64},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "causation_id", Type: field.TypeString, Nullable: true},
		{Name: "redaction_level", Type: field.TypeEnum, Enums: []string{"none", "partial", "full"}, Default: "none"},
		{Name: "contains_secrets", Type: field.TypeBool, Default: false},
		{Name: "policy_context", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "json"}},
		{Name: "model_context", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "json"}},
		{Name: "display", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "json"}},
		{Name: "data", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "json"}},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "prev_event_hash", Type: field.TypeString, Nullable: true},
		{Name: "event_hash", Type: field.TypeString, Nullable: true},
	}
	// EvtEventsTable holds the schema information for the "evt_events" table.
	EvtEventsTable = &schema.Table{
		Name:       "evt_events",
		Columns:    EvtEventsColumns,
		PrimaryKey: []*schema.Column{EvtEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_stream_type_stream_id_stream_seq",
				Unique:  true,
				Columns: []*schema.Column{EvtEventsColumns[15], EvtEventsColumns[16], EvtEventsColumns[17]},
			},
			{
				Name:    "event_workspace_id_event_type_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{EvtEventsColumns[5], EvtEventsColumns[1], EvtEventsColumns[26]},
			},
			{
				Name:    "event_workspace_id_event_type",
				Unique:  false,
				Columns: []*schema.Column{EvtEventsColumns[5], EvtEventsColumns[1]},
			},
			{
				Name:    "event_workspace_id_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{EvtEventsColumns[5], EvtEventsColumns[4]},
			},
			{
				Name:    "event_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{EvtEventsColumns[18]},
			},
		},
	}
	// ProjEvidenceManifestsColumns holds the columns for the "proj_evidence_manifests" table.
	ProjEvidenceManifestsColumns = []*schema.Column{
		{Name: "manifest_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "artifact_ids", Type: field.TypeJSON},
		{Name: "manifest_hash", Type: field.TypeString},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjEvidenceManifestsTable holds the schema information for the "proj_evidence_manifests" table.
	ProjEvidenceManifestsTable = &schema.Table{
		Name:       "proj_evidence_manifests",
		Columns:    ProjEvidenceManifestsColumns,
		PrimaryKey: []*schema.Column{ProjEvidenceManifestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evidencemanifest_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjEvidenceManifestsColumns[1]},
			},
		},
	}
	// ProjIncidentsColumns holds the columns for the "proj_incidents" table.
	ProjIncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "closed"}, Default: "open"},
		{Name: "rca_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "learning_count", Type: field.TypeInt, Default: 0},
		{Name: "opened_at", Type: field.TypeTime},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjIncidentsTable holds the schema information for the "proj_incidents" table.
	ProjIncidentsTable = &schema.Table{
		Name:       "proj_incidents",
		Columns:    ProjIncidentsColumns,
		PrimaryKey: []*schema.Column{ProjIncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProjIncidentsColumns[1], ProjIncidentsColumns[6]},
			},
			{
				Name:    "incident_run_id",
				Unique:  false,
				Columns: []*schema.Column{ProjIncidentsColumns[2]},
			},
			{
				Name:    "incident_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{ProjIncidentsColumns[3]},
			},
		},
	}
	// ProjIncidentLearningColumns holds the columns for the "proj_incident_learning" table.
	ProjIncidentLearningColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "incident_id", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "logged_by", Type: field.TypeString, Nullable: true},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjIncidentLearningTable holds the schema information for the "proj_incident_learning" table.
	ProjIncidentLearningTable = &schema.Table{
		Name:       "proj_incident_learning",
		Columns:    ProjIncidentLearningColumns,
		PrimaryKey: []*schema.Column{ProjIncidentLearningColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incidentlearning_incident_id",
				Unique:  false,
				Columns: []*schema.Column{ProjIncidentLearningColumns[2]},
			},
			{
				Name:    "incidentlearning_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjIncidentLearningColumns[1]},
			},
		},
	}
	// ProjLessonsColumns holds the columns for the "proj_lessons" table.
	ProjLessonsColumns = []*schema.Column{
		{Name: "lesson_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "scorecard_id", Type: field.TypeString, Nullable: true},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjLessonsTable holds the schema information for the "proj_lessons" table.
	ProjLessonsTable = &schema.Table{
		Name:       "proj_lessons",
		Columns:    ProjLessonsColumns,
		PrimaryKey: []*schema.Column{ProjLessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjLessonsColumns[1]},
			},
			{
				Name:    "lesson_incident_id",
				Unique:  false,
				Columns: []*schema.Column{ProjLessonsColumns[3]},
			},
		},
	}
	// OwnersColumns holds the columns for the "owners" table.
	OwnersColumns = []*schema.Column{
		{Name: "owner_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "principal_id", Type: field.TypeString},
		{Name: "passphrase_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OwnersTable holds the schema information for the "owners" table.
	OwnersTable = &schema.Table{
		Name:       "owners",
		Columns:    OwnersColumns,
		PrimaryKey: []*schema.Column{OwnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "owner_workspace_id_email",
				Unique:  false,
				Columns: []*schema.Column{OwnersColumns[1], OwnersColumns[2]},
			},
		},
	}
	// SecPrincipalsColumns holds the columns for the "sec_principals" table.
	SecPrincipalsColumns = []*schema.Column{
		{Name: "principal_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "principal_type", Type: field.TypeEnum, Enums: []string{"user", "service", "agent"}},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "legacy_actor_type", Type: field.TypeString, Nullable: true},
		{Name: "legacy_actor_id", Type: field.TypeString, Nullable: true},
		{Name: "api_key_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// SecPrincipalsTable holds the schema information for the "sec_principals" table.
	SecPrincipalsTable = &schema.Table{
		Name:       "sec_principals",
		Columns:    SecPrincipalsColumns,
		PrimaryKey: []*schema.Column{SecPrincipalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "principal_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{SecPrincipalsColumns[1]},
			},
			{
				Name:    "principal_api_key_hash",
				Unique:  false,
				Columns: []*schema.Column{SecPrincipalsColumns[6]},
			},
			{
				Name:    "principal_workspace_id_legacy_actor_type_legacy_actor_id",
				Unique:  true,
				Columns: []*schema.Column{SecPrincipalsColumns[1], SecPrincipalsColumns[4], SecPrincipalsColumns[5]},
			},
		},
	}
	// RateLimitStreaksColumns holds the columns for the "rate_limit_streaks" table.
	RateLimitStreaksColumns = []*schema.Column{
		{Name: "streak_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "scope", Type: field.TypeString},
		{Name: "consecutive_429", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RateLimitStreaksTable holds the schema information for the "rate_limit_streaks" table.
	RateLimitStreaksTable = &schema.Table{
		Name:       "rate_limit_streaks",
		Columns:    RateLimitStreaksColumns,
		PrimaryKey: []*schema.Column{RateLimitStreaksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratelimitstreak_workspace_id_agent_id_scope",
				Unique:  true,
				Columns: []*schema.Column{RateLimitStreaksColumns[1], RateLimitStreaksColumns[2], RateLimitStreaksColumns[3]},
			},
		},
	}
	// ProjRoomsColumns holds the columns for the "proj_rooms" table.
	ProjRoomsColumns = []*schema.Column{
		{Name: "room_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "message_count", Type: field.TypeInt64, Default: 0},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjRoomsTable holds the schema information for the "proj_rooms" table.
	ProjRoomsTable = &schema.Table{
		Name:       "proj_rooms",
		Columns:    ProjRoomsColumns,
		PrimaryKey: []*schema.Column{ProjRoomsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "room_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjRoomsColumns[1]},
			},
		},
	}
	// ProjRunsColumns holds the columns for the "proj_runs" table.
	ProjRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "mission_id", Type: field.TypeString, Nullable: true},
		{Name: "room_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "succeeded", "failed"}, Default: "queued"},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjRunsTable holds the schema information for the "proj_runs" table.
	ProjRunsTable = &schema.Table{
		Name:       "proj_runs",
		Columns:    ProjRunsColumns,
		PrimaryKey: []*schema.Column{ProjRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProjRunsColumns[1], ProjRunsColumns[5]},
			},
			{
				Name:    "run_workspace_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProjRunsColumns[1], ProjRunsColumns[13]},
			},
			{
				Name:    "run_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{ProjRunsColumns[10]},
			},
		},
	}
	// ProjScorecardsColumns holds the columns for the "proj_scorecards" table.
	ProjScorecardsColumns = []*schema.Column{
		{Name: "scorecard_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "metrics", Type: field.TypeJSON},
		{Name: "metrics_hash", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"pass", "warn", "fail"}},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjScorecardsTable holds the schema information for the "proj_scorecards" table.
	ProjScorecardsTable = &schema.Table{
		Name:       "proj_scorecards",
		Columns:    ProjScorecardsColumns,
		PrimaryKey: []*schema.Column{ProjScorecardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scorecard_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjScorecardsColumns[1]},
			},
			{
				Name:    "scorecard_run_id",
				Unique:  false,
				Columns: []*schema.Column{ProjScorecardsColumns[2]},
			},
		},
	}
	// SecSecretsColumns holds the columns for the "sec_secrets" table.
	SecSecretsColumns = []*schema.Column{
		{Name: "secret_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "secret_name", Type: field.TypeString},
		{Name: "algorithm", Type: field.TypeString, Default: "aes-256-gcm"},
		{Name: "ciphertext", Type: field.TypeBytes},
		{Name: "nonce", Type: field.TypeBytes},
		{Name: "created_by_principal_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_accessed_at", Type: field.TypeTime, Nullable: true},
	}
	// SecSecretsTable holds the schema information for the "sec_secrets" table.
	SecSecretsTable = &schema.Table{
		Name:       "sec_secrets",
		Columns:    SecSecretsColumns,
		PrimaryKey: []*schema.Column{SecSecretsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "secret_workspace_id_secret_name",
				Unique:  true,
				Columns: []*schema.Column{SecSecretsColumns[1], SecSecretsColumns[2]},
			},
		},
	}
	// ProjSkillsLedgerColumns holds the columns for the "proj_skills_ledger" table.
	ProjSkillsLedgerColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "skill_name", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt64, Default: 0},
		{Name: "successes", Type: field.TypeInt64, Default: 0},
		{Name: "survival_score", Type: field.TypeFloat64, Default: 0},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjSkillsLedgerTable holds the schema information for the "proj_skills_ledger" table.
	ProjSkillsLedgerTable = &schema.Table{
		Name:       "proj_skills_ledger",
		Columns:    ProjSkillsLedgerColumns,
		PrimaryKey: []*schema.Column{ProjSkillsLedgerColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillentry_workspace_id_agent_id_skill_name",
				Unique:  true,
				Columns: []*schema.Column{ProjSkillsLedgerColumns[1], ProjSkillsLedgerColumns[2], ProjSkillsLedgerColumns[3]},
			},
		},
	}
	// ProjStepsColumns holds the columns for the "proj_steps" table.
	ProjStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjStepsTable holds the schema information for the "proj_steps" table.
	ProjStepsTable = &schema.Table{
		Name:       "proj_steps",
		Columns:    ProjStepsColumns,
		PrimaryKey: []*schema.Column{ProjStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "step_run_id",
				Unique:  false,
				Columns: []*schema.Column{ProjStepsColumns[2]},
			},
			{
				Name:    "step_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjStepsColumns[1]},
			},
		},
	}
	// EvtStreamHeadsColumns holds the columns for the "evt_stream_heads" table.
	EvtStreamHeadsColumns = []*schema.Column{
		{Name: "head_id", Type: field.TypeString, Unique: true},
		{Name: "stream_type", Type: field.TypeEnum, Enums: []string{"workspace", "room", "thread"}},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "last_seq", Type: field.TypeInt64, Default: 0},
		{Name: "last_event_hash", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EvtStreamHeadsTable holds the schema information for the "evt_stream_heads" table.
	EvtStreamHeadsTable = &schema.Table{
		Name:       "evt_stream_heads",
		Columns:    EvtStreamHeadsColumns,
		PrimaryKey: []*schema.Column{EvtStreamHeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streamhead_stream_type_stream_id",
				Unique:  true,
				Columns: []*schema.Column{EvtStreamHeadsColumns[1], EvtStreamHeadsColumns[2]},
			},
		},
	}
	// ProjThreadsColumns holds the columns for the "proj_threads" table.
	ProjThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "room_id", Type: field.TypeString},
		{Name: "message_count", Type: field.TypeInt64, Default: 0},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjThreadsTable holds the schema information for the "proj_threads" table.
	ProjThreadsTable = &schema.Table{
		Name:       "proj_threads",
		Columns:    ProjThreadsColumns,
		PrimaryKey: []*schema.Column{ProjThreadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "thread_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjThreadsColumns[1]},
			},
			{
				Name:    "thread_room_id",
				Unique:  false,
				Columns: []*schema.Column{ProjThreadsColumns[2]},
			},
		},
	}
	// ProjToolCallsColumns holds the columns for the "proj_tool_calls" table.
	ProjToolCallsColumns = []*schema.Column{
		{Name: "tool_call_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "succeeded", "failed"}, Default: "running"},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "last_event_id", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjToolCallsTable holds the schema information for the "proj_tool_calls" table.
	ProjToolCallsTable = &schema.Table{
		Name:       "proj_tool_calls",
		Columns:    ProjToolCallsColumns,
		PrimaryKey: []*schema.Column{ProjToolCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjToolCallsColumns[1]},
			},
			{
				Name:    "toolcall_run_id",
				Unique:  false,
				Columns: []*schema.Column{ProjToolCallsColumns[2]},
			},
			{
				Name:    "toolcall_tool_name",
				Unique:  false,
				Columns: []*schema.Column{ProjToolCallsColumns[4]},
			},
		},
	}
	// WorkItemLeasesColumns holds the columns for the "work_item_leases" table.
	WorkItemLeasesColumns = []*schema.Column{
		{Name: "lease_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "work_item_type", Type: field.TypeEnum, Enums: []string{"approval", "experiment", "incident"}},
		{Name: "work_item_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkItemLeasesTable holds the schema information for the "work_item_leases" table.
	WorkItemLeasesTable = &schema.Table{
		Name:       "work_item_leases",
		Columns:    WorkItemLeasesColumns,
		PrimaryKey: []*schema.Column{WorkItemLeasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workitemlease_workspace_id_work_item_type_work_item_id",
				Unique:  true,
				Columns: []*schema.Column{WorkItemLeasesColumns[1], WorkItemLeasesColumns[2], WorkItemLeasesColumns[3]},
			},
			{
				Name:    "workitemlease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{WorkItemLeasesColumns[5]},
			},
			{
				Name:    "workitemlease_agent_id",
				Unique:  false,
				Columns: []*schema.Column{WorkItemLeasesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ProjApprovalsTable,
		ProjArtifactsTable,
		AuthSessionsTable,
		SecCapabilityTokensTable,
		ProjDeadLettersTable,
		SecCapabilityDelegationEdgesTable,
		EvtEventsTable,
		ProjEvidenceManifestsTable,
		ProjIncidentsTable,
		ProjIncidentLearningTable,
		ProjLessonsTable,
		OwnersTable,
		SecPrincipalsTable,
		RateLimitStreaksTable,
		ProjRoomsTable,
		ProjRunsTable,
		ProjScorecardsTable,
		SecSecretsTable,
		ProjSkillsLedgerTable,
		ProjStepsTable,
		EvtStreamHeadsTable,
		ProjThreadsTable,
		ProjToolCallsTable,
		WorkItemLeasesTable,
	}
)

func init() {
	AgentsTable.Annotation = &entsql.Annotation{
		Table: "agents",
	}
	ProjApprovalsTable.Annotation = &entsql.Annotation{
		Table: "proj_approvals",
	}
	ProjArtifactsTable.Annotation = &entsql.Annotation{
		Table: "proj_artifacts",
	}
	AuthSessionsTable.Annotation = &entsql.Annotation{
		Table: "auth_sessions",
	}
	SecCapabilityTokensTable.Annotation = &entsql.Annotation{
		Table: "sec_capability_tokens",
	}
	ProjDeadLettersTable.Annotation = &entsql.Annotation{
		Table: "proj_dead_letters",
	}
	SecCapabilityDelegationEdgesTable.Annotation = &entsql.Annotation{
		Table: "sec_capability_delegation_edges",
	}
	EvtEventsTable.Annotation = &entsql.Annotation{
		Table: "evt_events",
	}
	ProjEvidenceManifestsTable.Annotation = &entsql.Annotation{
		Table: "proj_evidence_manifests",
	}
	ProjIncidentsTable.Annotation = &entsql.Annotation{
		Table: "proj_incidents",
	}
	ProjIncidentLearningTable.Annotation = &entsql.Annotation{
		Table: "proj_incident_learning",
	}
	ProjLessonsTable.Annotation = &entsql.Annotation{
		Table: "proj_lessons",
	}
	OwnersTable.Annotation = &entsql.Annotation{
		Table: "owners",
	}
	SecPrincipalsTable.Annotation = &entsql.Annotation{
		Table: "sec_principals",
	}
	RateLimitStreaksTable.Annotation = &entsql.Annotation{
		Table: "rate_limit_streaks",
	}
	ProjRoomsTable.Annotation = &entsql.Annotation{
		Table: "proj_rooms",
	}
	ProjRunsTable.Annotation = &entsql.Annotation{
		Table: "proj_runs",
	}
	ProjScorecardsTable.Annotation = &entsql.Annotation{
		Table: "proj_scorecards",
	}
	SecSecretsTable.Annotation = &entsql.Annotation{
		Table: "sec_secrets",
	}
	ProjSkillsLedgerTable.Annotation = &entsql.Annotation{
		Table: "proj_skills_ledger",
	}
	ProjStepsTable.Annotation = &entsql.Annotation{
		Table: "proj_steps",
	}
	EvtStreamHeadsTable.Annotation = &entsql.Annotation{
		Table: "evt_stream_heads",
	}
	ProjThreadsTable.Annotation = &entsql.Annotation{
		Table: "proj_threads",
	}
	ProjToolCallsTable.Annotation = &entsql.Annotation{
		Table: "proj_tool_calls",
	}
	WorkItemLeasesTable.Annotation = &entsql.Annotation{
		Table: "work_item_leases",
	}
}
