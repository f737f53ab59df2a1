package database

import (
	"context"
	stdsql "database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/pkg/database"
)

// NewTestClient creates a database client over a fresh per-test schema,
// with migrations and the append-only guard applied. Schema and
// connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	ctx := context.Background()

	baseConnStr := baseConnString(t)
	schema, connStr := createSchema(t, baseConnStr)

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	// Ent's schema.Create does not install the append-only trigger the
	// event log relies on; add it the same way startup migrations do.
	err = database.CreateAppendOnlyGuard(ctx, drv)
	require.NoError(t, err)

	t.Cleanup(func() {
		dropSchema(t, baseConnStr, schema)
		_ = entClient.Close()
		_ = db.Close()
	})

	return database.NewClientFromEnt(entClient, db)
}
