// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveLocalTransaction = `
		INSERT INTO transactions (
			user_id,
			id,
			blob,
			version,
			deleted,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			blob       = excluded.blob,
			version    = excluded.version,
			deleted    = excluded.deleted,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at
		WHERE excluded.version >= transactions.version;`

	getLocalTransaction = `
		SELECT user_id, id, blob, version, deleted, created_at, updated_at
		FROM transactions
		WHERE user_id = ? AND id = ?;`

	listLocalTransactions = `
		SELECT user_id, id, blob, version, deleted, created_at, updated_at
		FROM transactions
		WHERE user_id = ? AND deleted = 0
		ORDER BY updated_at, id;`

	lastLocalUpdate = `
		SELECT updated_at
		FROM transactions
		WHERE user_id = ? AND updated_at IS NOT NULL
		ORDER BY updated_at DESC
		LIMIT 1;`

	getLocalSalt = `
		SELECT user_id, salt, created_at
		FROM salts
		WHERE user_id = ?;`

	saveLocalSalt = `
		INSERT INTO salts (user_id, salt, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO NOTHING;`
)
