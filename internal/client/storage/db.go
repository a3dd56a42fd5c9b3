// Package storage bootstraps the local SQLite database: it opens the file,
// applies the embedded goose migrations, and wires the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/mbopage/ezycook-cli/internal/client/migrations"
	"github.com/mbopage/ezycook-cli/internal/client/repositories/credentials"
	"github.com/mbopage/ezycook-cli/internal/client/repositories/favorites"
)

// Repositories bundles the local stores backed by one SQLite database.
type Repositories struct {
	Credentials credentials.Repository
	Favorites   favorites.Repository
	DB          *sql.DB
}

// RunMigrations applies the embedded goose migrations to db. It is safe to
// call on every start.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, runs migrations, and returns
// the wired repositories. The credential key is the 32-byte installation key
// from credentials.LoadOrCreateKey.
func InitDatabase(ctx context.Context, dsn string, credentialKey []byte) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Credentials: credentials.NewSQLiteRepository(db, credentialKey),
		Favorites:   favorites.NewSQLiteRepository(db),
		DB:          db,
	}, nil
}
