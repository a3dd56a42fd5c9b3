package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/mbopage/ezycook-cli/internal/common"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	if err != nil {
		t.Fatalf("tableExists query failed: %v", err)
	}
	return n > 0
}

func testCredentialKey() []byte {
	return common.GenerateRandByteArray(32)
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	repos, err := InitDatabase(ctx, dsn, testCredentialKey())
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	defer repos.DB.Close()

	if err := repos.DB.PingContext(ctx); err != nil {
		t.Fatalf("db.PingContext failed: %v", err)
	}

	for _, table := range []string{"goose_db_version", "favorites", "credentials"} {
		if !tableExists(t, repos.DB, table) {
			t.Fatalf("expected %s table to exist after migrations", table)
		}
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (first) error: %v", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (second) should be idempotent, got error: %v", err)
	}

	if !tableExists(t, db, "goose_db_version") {
		t.Fatalf("expected goose_db_version table to exist after repeated migrations")
	}
}

func TestInitDatabase_RepositoriesAreUsable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	repos, err := InitDatabase(ctx, dsn, testCredentialKey())
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	defer repos.DB.Close()

	if err := repos.Credentials.Save(ctx, common.CredentialKeyAuthToken, []byte("tok")); err != nil {
		t.Fatalf("credentials.Save failed: %v", err)
	}
	got, err := repos.Credentials.Load(ctx, common.CredentialKeyAuthToken)
	if err != nil {
		t.Fatalf("credentials.Load failed: %v", err)
	}
	if string(got) != "tok" {
		t.Fatalf("unexpected credential value: %q", got)
	}

	ok, err := repos.Favorites.Exists(ctx, "nope")
	if err != nil {
		t.Fatalf("favorites.Exists failed: %v", err)
	}
	if ok {
		t.Fatalf("expected empty favorites cache")
	}
}
