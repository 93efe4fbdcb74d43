// Package migrations embeds and applies the goose schema migrations of the
// remote tree store and of the device cache.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed remote/*.sql
var remoteMigrations embed.FS

//go:embed local/*.sql
var localMigrations embed.FS

// goose keeps its file system and dialect in package globals.
var gooseMu sync.Mutex

// MigrateRemote applies the PostgreSQL migrations.
func MigrateRemote(db *sql.DB) error {
	return migrate(db, remoteMigrations, "remote", "pgx")
}

// MigrateLocal applies the SQLite migrations.
func MigrateLocal(db *sql.DB) error {
	return migrate(db, localMigrations, "local", "sqlite3")
}

func migrate(db *sql.DB, fsys fs.FS, dir, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
