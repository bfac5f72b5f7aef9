// Package storage opens the local SQLite database, applies migrations, and
// wires up the repositories built on the key-value store.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"notekeeper/internal/kvstore"
	"notekeeper/internal/logging"
	"notekeeper/internal/migrations"
	"notekeeper/internal/repositories/credentials"
	"notekeeper/internal/repositories/notes"
	"notekeeper/internal/repositories/preferences"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Credentials *credentials.Store
	Notes       *notes.Repository
	Preferences *preferences.Store
	DB          *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string, log logging.Logger) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	kv := kvstore.NewSQLiteStore(db)

	return &Repositories{
		Credentials: credentials.NewStore(kv, log),
		Notes:       notes.NewRepository(kv, log),
		Preferences: preferences.NewStore(kv, log),
		DB:          db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
