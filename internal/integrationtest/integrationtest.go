// Package integrationtest provides server and db helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jstoebel/exercises/cmd/httpserver"
	"github.com/jstoebel/exercises/internal/middleware"
	"github.com/jstoebel/exercises/pkg/configpkg"
	"github.com/jstoebel/exercises/pkg/dbpkg"

	_ "github.com/lib/pq"
)

// SetupServer returns a test server. The ledger lives in postgres when
// config.DBSource is set and is flushed after the test, in memory otherwise.
func SetupServer(t *testing.T, config configpkg.Config) *httpserver.Server {
	t.Helper()

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	var db *sql.DB
	if config.DBSource != "" {
		db = SetupDB(t, config.DBDriver, config.DBSource)
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		t.Fatalf("httpserver.New(db, logger, config) returned error: %v", err)
	}

	return server
}

// Flush empties the ledger tables without dropping them.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(`TRUNCATE TABLE ledger_ious, ledger_users CASCADE`); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(context.Background(), driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	Flush(t, db)

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}
