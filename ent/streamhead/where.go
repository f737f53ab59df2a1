// Code generated by ent, DO NOT EDIT.

package streamhead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldContainsFold(FieldID, id))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldStreamID, v))
}

// LastSeq applies equality check predicate on the "last_seq" field. It's identical to LastSeqEQ.
func LastSeq(v int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldLastSeq, v))
}

// LastEventHash applies equality check predicate on the "last_event_hash" field. It's identical to LastEventHashEQ.
func LastEventHash(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldLastEventHash, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldUpdatedAt, v))
}

// StreamTypeEQ applies the EQ predicate on the "stream_type" field.
func StreamTypeEQ(v StreamType) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldStreamType, v))
}

// StreamTypeNEQ applies the NEQ predicate on the "stream_type" field.
func StreamTypeNEQ(v StreamType) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNEQ(FieldStreamType, v))
}

// StreamTypeIn applies the In predicate on the "stream_type" field.
func StreamTypeIn(vs ...StreamType) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldIn(FieldStreamType, vs...))
}

// StreamTypeNotIn applies the NotIn predicate on the "stream_type" field.
func StreamTypeNotIn(vs ...StreamType) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNotIn(FieldStreamType, vs...))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldContainsFold(FieldStreamID, v))
}

// LastSeqEQ applies the EQ predicate on the "last_seq" field.
func LastSeqEQ(v int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldLastSeq, v))
}

// LastSeqNEQ applies the NEQ predicate on the "last_seq" field.
func LastSeqNEQ(v int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNEQ(FieldLastSeq, v))
}

// LastSeqIn applies the In predicate on the "last_seq" field.
func LastSeqIn(vs ...int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldIn(FieldLastSeq, vs...))
}

// LastSeqNotIn applies the NotIn predicate on the "last_seq" field.
func LastSeqNotIn(vs ...int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNotIn(FieldLastSeq, vs...))
}

// LastSeqGT applies the GT predicate on the "last_seq" field.
func LastSeqGT(v int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGT(FieldLastSeq, v))
}

// LastSeqGTE applies the GTE predicate on the "last_seq" field.
func LastSeqGTE(v int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGTE(FieldLastSeq, v))
}

// LastSeqLT applies the LT predicate on the "last_seq" field.
func LastSeqLT(v int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLT(FieldLastSeq, v))
}

// LastSeqLTE applies the LTE predicate on the "last_seq" field.
func LastSeqLTE(v int64) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLTE(FieldLastSeq, v))
}

// LastEventHashEQ applies the EQ predicate on the "last_event_hash" field.
func LastEventHashEQ(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldLastEventHash, v))
}

// LastEventHashNEQ applies the NEQ predicate on the "last_event_hash" field.
func LastEventHashNEQ(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNEQ(FieldLastEventHash, v))
}

// LastEventHashIn applies the In predicate on the "last_event_hash" field.
func LastEventHashIn(vs ...string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldIn(FieldLastEventHash, vs...))
}

// LastEventHashNotIn applies the NotIn predicate on the "last_event_hash" field.
func LastEventHashNotIn(vs ...string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNotIn(FieldLastEventHash, vs...))
}

// LastEventHashGT applies the GT predicate on the "last_event_hash" field.
func LastEventHashGT(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGT(FieldLastEventHash, v))
}

// LastEventHashGTE applies the GTE predicate on the "last_event_hash" field.
func LastEventHashGTE(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGTE(FieldLastEventHash, v))
}

// LastEventHashLT applies the LT predicate on the "last_event_hash" field.
func LastEventHashLT(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLT(FieldLastEventHash, v))
}

// LastEventHashLTE applies the LTE predicate on the "last_event_hash" field.
func LastEventHashLTE(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLTE(FieldLastEventHash, v))
}

// LastEventHashContains applies the Contains predicate on the "last_event_hash" field.
func LastEventHashContains(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldContains(FieldLastEventHash, v))
}

// LastEventHashHasPrefix applies the HasPrefix predicate on the "last_event_hash" field.
func LastEventHashHasPrefix(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldHasPrefix(FieldLastEventHash, v))
}

// LastEventHashHasSuffix applies the HasSuffix predicate on the "last_event_hash" field.
func LastEventHashHasSuffix(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldHasSuffix(FieldLastEventHash, v))
}

// LastEventHashIsNil applies the IsNil predicate on the "last_event_hash" field.
func LastEventHashIsNil() predicate.StreamHead {
	return predicate.StreamHead(sql.FieldIsNull(FieldLastEventHash))
}

// LastEventHashNotNil applies the NotNil predicate on the "last_event_hash" field.
func LastEventHashNotNil() predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNotNull(FieldLastEventHash))
}

// LastEventHashEqualFold applies the EqualFold predicate on the "last_event_hash" field.
func LastEventHashEqualFold(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEqualFold(FieldLastEventHash, v))
}

// LastEventHashContainsFold applies the ContainsFold predicate on the "last_event_hash" field.
func LastEventHashContainsFold(v string) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldContainsFold(FieldLastEventHash, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StreamHead {
	return predicate.StreamHead(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StreamHead) predicate.StreamHead {
	return predicate.StreamHead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StreamHead) predicate.StreamHead {
	return predicate.StreamHead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StreamHead) predicate.StreamHead {
	return predicate.StreamHead(sql.NotPredicates(p))
}
