package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
)

// Storages groups the repositories of the remote store process.
type Storages struct {
	TreeRepository TreeRepository
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// remote repositories.
func NewStorages(ctx context.Context, dsn string, logger *logger.Logger) (*Storages, *DB, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigrateRemote(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		TreeRepository: NewTreeRepository(db, logger),
	}, db, nil
}

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// TreeRepository is the SQLite-backed device cache.
	TreeRepository LocalTreeRepository
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to the file at dsn, creating the database
//     file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.MigrateLocal].
//  3. Constructs a [ClientStorages] value wired to a fresh
//     [LocalTreeRepository].
//
// The returned *DB must be closed by the caller on shutdown.
func NewClientStorages(ctx context.Context, dsn string, logger *logger.Logger) (*ClientStorages, *DB, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateLocal(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TreeRepository: NewLocalTreeRepository(db, logger),
	}, db, nil
}
