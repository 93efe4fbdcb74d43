// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/MKhiriev/go-tree-keeper/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// treeColumns is the column order every tree SELECT and RETURNING uses;
// scanTree depends on it.
var treeColumns = []string{
	"tree_id",
	"common_name",
	"scientific_name",
	"description",
	"benefits",
	"images",
	"age",
	"planted_date",
	"health_status",
	"planted_by",
	"qr_code",
	"created_at",
	"updated_at",
}

const allocateTreeID = `SELECT COALESCE(MAX(tree_id), 0) + 1 FROM trees`

func buildFindByNamesQuery(commonName, scientificName string) (string, []any, error) {
	return psql.Select(treeColumns...).
		From("trees").
		Where(sq.Or{
			sq.Eq{"common_name_key": utils.FoldName(commonName)},
			sq.Eq{"scientific_name_key": utils.FoldName(scientificName)},
		}).
		OrderBy("tree_id").
		Limit(1).
		ToSql()
}

func buildGetTreeQuery(id int64) (string, []any, error) {
	return psql.Select(treeColumns...).
		From("trees").
		Where(sq.Eq{"tree_id": id}).
		ToSql()
}

func buildListTreesQuery() (string, []any, error) {
	return psql.Select(treeColumns...).
		From("trees").
		OrderBy("tree_id DESC").
		ToSql()
}

func buildInsertTreeQuery(tree models.Tree) (string, []any, error) {
	return psql.Insert("trees").
		Columns(
			"tree_id",
			"common_name",
			"common_name_key",
			"scientific_name",
			"scientific_name_key",
			"description",
			"benefits",
			"images",
			"age",
			"planted_date",
			"health_status",
			"planted_by",
			"qr_code",
			"created_at",
			"updated_at",
		).
		Values(
			tree.ID,
			tree.CommonName,
			utils.FoldName(tree.CommonName),
			tree.ScientificName,
			utils.FoldName(tree.ScientificName),
			tree.Description,
			stringList(tree.Benefits),
			stringList(tree.Images),
			tree.Age,
			tree.PlantedDate,
			tree.HealthStatus,
			tree.PlantedBy,
			nullString(tree.QRCode),
			tree.CreatedAt,
			tree.UpdatedAt,
		).
		ToSql()
}

// buildUpdateTreeQuery sets only the non-nil fields of update and keeps the
// folded name keys in step with the names.
func buildUpdateTreeQuery(id int64, update models.TreeUpdate, now time.Time) (string, []any, error) {
	b := psql.Update("trees")

	if update.CommonName != nil {
		b = b.Set("common_name", *update.CommonName).
			Set("common_name_key", utils.FoldName(*update.CommonName))
	}
	if update.ScientificName != nil {
		b = b.Set("scientific_name", *update.ScientificName).
			Set("scientific_name_key", utils.FoldName(*update.ScientificName))
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.Benefits != nil {
		b = b.Set("benefits", stringList(*update.Benefits))
	}
	if update.Images != nil {
		b = b.Set("images", stringList(*update.Images))
	}
	if update.Age != nil {
		b = b.Set("age", *update.Age)
	}
	if update.PlantedDate != nil {
		b = b.Set("planted_date", *update.PlantedDate)
	}
	if update.HealthStatus != nil {
		b = b.Set("health_status", *update.HealthStatus)
	}
	if update.PlantedBy != nil {
		b = b.Set("planted_by", *update.PlantedBy)
	}
	if update.QRCode != nil {
		b = b.Set("qr_code", *update.QRCode)
	}

	return b.Set("updated_at", now).
		Where(sq.Eq{"tree_id": id}).
		Suffix("RETURNING " + strings.Join(treeColumns, ", ")).
		ToSql()
}

func buildDeleteTreeQuery(id int64) (string, []any, error) {
	return psql.Delete("trees").
		Where(sq.Eq{"tree_id": id}).
		Suffix("RETURNING " + strings.Join(treeColumns, ", ")).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTree reads one row laid out as treeColumns.
func scanTree(row rowScanner) (models.Tree, error) {
	var (
		tree               models.Tree
		benefits, images   stringList
		qrCode             sql.NullString
		createdAt, updated sql.NullTime
	)

	err := row.Scan(
		&tree.ID,
		&tree.CommonName,
		&tree.ScientificName,
		&tree.Description,
		&benefits,
		&images,
		&tree.Age,
		&tree.PlantedDate,
		&tree.HealthStatus,
		&tree.PlantedBy,
		&qrCode,
		&createdAt,
		&updated,
	)
	if err != nil {
		return models.Tree{}, err
	}

	tree.Benefits = benefits
	tree.Images = images
	if qrCode.Valid {
		qr := qrCode.String
		tree.QRCode = &qr
	}
	if createdAt.Valid {
		t := createdAt.Time
		tree.CreatedAt = &t
	}
	if updated.Valid {
		t := updated.Time
		tree.UpdatedAt = &t
	}

	return tree, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
