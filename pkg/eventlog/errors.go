package eventlog

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrIdempotencyConflict reports that the unique
// (workspace_id, event_type, idempotency_key) index rejected an append.
// Callers roll back and re-probe to decide between replay and conflict.
var ErrIdempotencyConflict = errors.New("idempotency key already committed")

// ErrNotFound reports a missing event.
var ErrNotFound = errors.New("event not found")

// isIdempotencyViolation detects PostgreSQL unique violations (23505) on the
// idempotency index. Matching by substring covers both the migration-created
// index and the name Ent generates when tests create the schema directly.
func isIdempotencyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "idempotency")
}
