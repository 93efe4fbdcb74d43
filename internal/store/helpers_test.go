// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

// newSQLiteDB opens a migrated cache file in a temp directory.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(testContext(), filepath.Join(t.TempDir(), "cache.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateLocal())
	return db
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func strPtr(s string) *string { return &s }

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func oakTree() models.Tree {
	return models.Tree{
		ID:             5,
		CommonName:     "Oak",
		ScientificName: "Quercus robur",
		Description:    "by the gate",
		Benefits:       []string{"shade", "oxygen"},
		Images:         []string{},
		Age:            2,
		PlantedDate:    "2022-06-14",
		HealthStatus:   models.HealthStatusHealthy,
		PlantedBy:      "Ann",
	}
}

// treeRow renders tree in treeColumns order as the driver would return it.
func treeRow(tree models.Tree) []driver.Value {
	benefits, _ := stringList(tree.Benefits).Value()
	images, _ := stringList(tree.Images).Value()

	var qr driver.Value
	if tree.QRCode != nil {
		qr = *tree.QRCode
	}
	var created, updated driver.Value
	if tree.CreatedAt != nil {
		created = *tree.CreatedAt
	}
	if tree.UpdatedAt != nil {
		updated = *tree.UpdatedAt
	}

	return []driver.Value{
		tree.ID,
		tree.CommonName,
		tree.ScientificName,
		tree.Description,
		benefits,
		images,
		int64(tree.Age),
		tree.PlantedDate,
		tree.HealthStatus,
		tree.PlantedBy,
		qr,
		created,
		updated,
	}
}

func treeRows(trees ...models.Tree) *sqlmock.Rows {
	rows := sqlmock.NewRows(treeColumns)
	for _, tree := range trees {
		rows.AddRow(treeRow(tree)...)
	}
	return rows
}
