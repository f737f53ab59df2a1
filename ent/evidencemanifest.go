// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
)

// EvidenceManifest is the model entity for the EvidenceManifest schema.
type EvidenceManifest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// ArtifactIds holds the value of the "artifact_ids" field.
	ArtifactIds []string `json:"artifact_ids,omitempty"`
	// ManifestHash holds the value of the "manifest_hash" field.
	ManifestHash string `json:"manifest_hash,omitempty"`
	// LastEventID holds the value of the "last_event_id" field.
	LastEventID string `json:"last_event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvidenceManifest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidencemanifest.FieldArtifactIds:
			values[i] = new([]byte)
		case evidencemanifest.FieldID, evidencemanifest.FieldWorkspaceID, evidencemanifest.FieldRunID, evidencemanifest.FieldManifestHash, evidencemanifest.FieldLastEventID:
			values[i] = new(sql.NullString)
		case evidencemanifest.FieldCreatedAt, evidencemanifest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvidenceManifest fields.
func (_m *EvidenceManifest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidencemanifest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidencemanifest.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case evidencemanifest.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case evidencemanifest.FieldArtifactIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ArtifactIds); err != nil {
					return fmt.Errorf("unmarshal field artifact_ids: %w", err)
				}
			}
		case evidencemanifest.FieldManifestHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manifest_hash", values[i])
			} else if value.Valid {
				_m.ManifestHash = value.String
			}
		case evidencemanifest.FieldLastEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_event_id", values[i])
			} else if value.Valid {
				_m.LastEventID = value.String
			}
		case evidencemanifest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evidencemanifest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvidenceManifest.
// This includes values selected through modifiers, order, etc.
func (_m *EvidenceManifest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvidenceManifest.
// Note that you need to call EvidenceManifest.Unwrap() before calling this method if this EvidenceManifest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvidenceManifest) Update() *EvidenceManifestUpdateOne {
	return NewEvidenceManifestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvidenceManifest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvidenceManifest) Unwrap() *EvidenceManifest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvidenceManifest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvidenceManifest) String() string {
	var builder strings.Builder
	builder.WriteString("EvidenceManifest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("artifact_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArtifactIds))
	builder.WriteString(", ")
	builder.WriteString("manifest_hash=")
	builder.WriteString(_m.ManifestHash)
	builder.WriteString(", ")
	builder.WriteString("last_event_id=")
	builder.WriteString(_m.LastEventID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvidenceManifests is a parsable slice of EvidenceManifest.
type EvidenceManifests []*EvidenceManifest
