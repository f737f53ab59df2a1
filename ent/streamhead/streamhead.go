// Code generated by ent, DO NOT EDIT.

package streamhead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the streamhead type in the database.
	Label = "stream_head"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "head_id"
	// FieldStreamType holds the string denoting the stream_type field in the database.
	FieldStreamType = "stream_type"
	// FieldStreamID holds the string denoting the stream_id field in the database.
	FieldStreamID = "stream_id"
	// FieldLastSeq holds the string denoting the last_seq field in the database.
	FieldLastSeq = "last_seq"
	// FieldLastEventHash holds the string denoting the last_event_hash field in the database.
	FieldLastEventHash = "last_event_hash"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the streamhead in the database.
	Table = "evt_stream_heads"
)

// Columns holds all SQL columns for streamhead fields.
var Columns = []string{
	FieldID,
	FieldStreamType,
	FieldStreamID,
	FieldLastSeq,
	FieldLastEventHash,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLastSeq holds the default value on creation for the "last_seq" field.
	DefaultLastSeq int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// StreamType defines the type for the "stream_type" enum field.
type StreamType string

// StreamType values.
const (
	StreamTypeWorkspace StreamType = "workspace"
	StreamTypeRoom      StreamType = "room"
	StreamTypeThread    StreamType = "thread"
)

func (st StreamType) String() string {
	return string(st)
}

// StreamTypeValidator is a validator for the "stream_type" field enum values. It is called by the builders before save.
func StreamTypeValidator(st StreamType) error {
	switch st {
	case StreamTypeWorkspace, StreamTypeRoom, StreamTypeThread:
		return nil
	default:
		return fmt.Errorf("streamhead: invalid enum value for stream_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the StreamHead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStreamType orders the results by the stream_type field.
func ByStreamType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamType, opts...).ToFunc()
}

// ByStreamID orders the results by the stream_id field.
func ByStreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamID, opts...).ToFunc()
}

// ByLastSeq orders the results by the last_seq field.
func ByLastSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeq, opts...).ToFunc()
}

// ByLastEventHash orders the results by the last_event_hash field.
func ByLastEventHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEventHash, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
