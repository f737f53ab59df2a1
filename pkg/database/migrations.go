package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateAppendOnlyGuard installs row triggers that reject UPDATE and DELETE
// on evt_events. The log's tamper evidence assumes rows never change through
// the application; the trigger turns that assumption into a database error.
//
// Created here rather than in a numbered migration so the same guard applies
// to databases created by Ent's schema.Create in tests when callers opt in.
func CreateAppendOnlyGuard(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx, `
		CREATE OR REPLACE FUNCTION evt_events_block_mutation() RETURNS trigger AS $$
		BEGIN
			RAISE EXCEPTION 'evt_events is append-only';
		END;
		$$ LANGUAGE plpgsql`)
	if err != nil {
		return fmt.Errorf("failed to create append-only trigger function: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		DROP TRIGGER IF EXISTS evt_events_append_only ON evt_events`)
	if err != nil {
		return fmt.Errorf("failed to drop stale append-only trigger: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TRIGGER evt_events_append_only
		BEFORE UPDATE OR DELETE ON evt_events
		FOR EACH ROW EXECUTE FUNCTION evt_events_block_mutation()`)
	if err != nil {
		return fmt.Errorf("failed to create append-only trigger: %w", err)
	}

	return nil
}
