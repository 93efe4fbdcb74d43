// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	localTreeColumns = `
			tree_id,
			common_name,
			scientific_name,
			description,
			benefits,
			images,
			age,
			planted_date,
			health_status,
			planted_by,
			qr_code,
			created_at,
			updated_at`

	getLocalTree = `
		SELECT` + localTreeColumns + `
		FROM trees
		WHERE tree_id = ?;`

	listLocalTrees = `
		SELECT` + localTreeColumns + `
		FROM trees
		ORDER BY tree_id DESC;`

	putLocalTree = `
		INSERT INTO trees (` + localTreeColumns + `
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (tree_id) DO UPDATE SET
			common_name = excluded.common_name,
			scientific_name = excluded.scientific_name,
			description = excluded.description,
			benefits = excluded.benefits,
			images = excluded.images,
			age = excluded.age,
			planted_date = excluded.planted_date,
			health_status = excluded.health_status,
			planted_by = excluded.planted_by,
			qr_code = excluded.qr_code,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at;`

	updateLocalTree = `
		UPDATE trees SET
			common_name = ?,
			scientific_name = ?,
			description = ?,
			benefits = ?,
			images = ?,
			age = ?,
			planted_date = ?,
			health_status = ?,
			planted_by = ?,
			qr_code = ?
		WHERE tree_id = ?;`

	deleteLocalTree = `
		DELETE FROM trees
		WHERE tree_id = ?;`
)
