// Package database provides the PostgreSQL test harness: a shared container
// (or the CI service database) with one schema per test.
package database

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	sharedConnStr string
	containerOnce sync.Once
	containerErr  error
)

// baseConnString returns a connection string to the shared database: the CI
// service container when CI_DATABASE_URL is set, otherwise a testcontainer
// started once per package.
func baseConnString(t *testing.T) string {
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return ciDatabaseURL
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer")

		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.WithInitScripts(initScriptPath()),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerErr = fmt.Errorf("failed to get connection string: %w", err)
			return
		}
		sharedConnStr = connStr
	})

	require.NoError(t, containerErr, "failed to set up the shared test container")
	return sharedConnStr
}

// createSchema creates a fresh schema for the test and returns its name
// plus a connection string whose search_path points at it. The caller owns
// dropping the schema.
func createSchema(t *testing.T, baseConnStr string) (name, connStr string) {
	ctx := context.Background()
	name = schemaName(t)

	db, err := stdsql.Open("pgx", baseConnStr)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", name))
	require.NoError(t, err)

	return name, withSearchPath(baseConnStr, name)
}

// dropSchema removes a test schema, logging rather than failing on error so
// cleanup never masks the test result.
func dropSchema(t *testing.T, baseConnStr, name string) {
	db, err := stdsql.Open("pgx", baseConnStr)
	if err != nil {
		t.Logf("warning: could not connect to drop schema %s: %v", name, err)
		return
	}
	defer func() { _ = db.Close() }()
	_, err = db.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", name))
	if err != nil {
		t.Logf("warning: failed to drop schema %s: %v", name, err)
	}
}

// schemaName derives a unique, PostgreSQL-safe schema name from the test
// name: test_<sanitized>_<random hex>, within the 63-char identifier limit.
func schemaName(t *testing.T) string {
	name := strings.ToLower(t.Name())
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate schema name suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// withSearchPath appends search_path to a connection string so every pooled
// connection lands in the test schema.
func withSearchPath(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%ssearch_path=%s", connStr, sep, schema)
}

// initScriptPath resolves deploy/postgres-init/01-init.sql relative to this
// source file so it works from any package's test binary.
func initScriptPath() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("initScriptPath: runtime.Caller(0) failed")
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	return filepath.Join(root, "deploy", "postgres-init", "01-init.sql")
}
