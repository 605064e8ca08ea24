// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/sats-ledger/models"
)

const (
	getSalt = `SELECT user_id, salt, created_at
		FROM salts
		WHERE user_id = $1;`

	createSalt = `INSERT INTO salts (user_id, salt)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING user_id, salt, created_at;`

	getTransaction = `SELECT user_id, id, blob, version, deleted, created_at, updated_at
		FROM transactions
		WHERE user_id = $1 AND id = $2;`

	insertTransaction = `INSERT INTO transactions (user_id, id, blob, version)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, id) DO NOTHING
		RETURNING user_id, id, blob, version, deleted, created_at, updated_at;`

	updateTransaction = `UPDATE transactions
		SET blob = $1, version = version + 1, updated_at = NOW()
		WHERE user_id = $2 AND id = $3 AND version = $4 AND deleted = FALSE
		RETURNING user_id, id, blob, version, deleted, created_at, updated_at;`

	deleteTransaction = `UPDATE transactions
		SET deleted = TRUE, version = version + 1, updated_at = NOW()
		WHERE user_id = $1 AND id = $2 AND version = $3 AND deleted = FALSE
		RETURNING user_id, id, blob, version, deleted, created_at, updated_at;`
)

var transactionColumns = []string{"user_id", "id", "blob", "version", "deleted", "created_at", "updated_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListTransactionsQuery builds the listing query for filter. The user
// condition is always present.
func buildListTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	q := psql.Select(transactionColumns...).
		From(models.EncryptedTransaction{}.TableName()).
		Where(sq.Eq{"user_id": filter.UserID})

	if !filter.IncludeDeleted {
		q = q.Where(sq.Eq{"deleted": false})
	}
	if filter.Since != nil {
		q = q.Where(sq.GtOrEq{"updated_at": *filter.Since})
	}

	query, args, err := q.OrderBy("updated_at", "id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// scanTransaction reads one row selected with transactionColumns.
func scanTransaction(row rowScanner) (models.EncryptedTransaction, error) {
	var tx models.EncryptedTransaction
	err := row.Scan(
		&tx.UserID,
		&tx.ID,
		&tx.Blob,
		&tx.Version,
		&tx.Deleted,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	return tx, err
}
