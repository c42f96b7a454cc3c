package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/monu322/travel-agency-app/migrations"
	"github.com/monu322/travel-agency-app/testutil"
)

// TestMain runs once for the whole repo_test binary. It applies all pending
// migrations to the test database so individual tests never need to think
// about schema state.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured — every test skips itself via testutil.
		os.Exit(m.Run())
	}

	// goose needs a database/sql handle, not a pgx pool. Built manually here
	// because TestMain has no *testing.T to hand to testutil.NewSQLDB.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}

// newTestTx opens a transaction against the test database and registers a
// rollback for when the test finishes. Everything a test writes through the
// transaction is discarded, giving free per-test isolation with no cleanup SQL.
//
// The returned pgx.Tx satisfies the db interface the repos accept, and tests
// can also use it directly for fixture tweaks (e.g. backdating created_at,
// which DEFAULT now() pins to the transaction start time).
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}
