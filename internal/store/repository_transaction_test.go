// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/models"
)

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows(transactionColumns)
}

func TestTransactionRepository_GetTransaction(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(getTransaction)).
			WithArgs("user-1", "tx-1").
			WillReturnRows(transactionRows().AddRow("user-1", "tx-1", "blob", 3, false, now, now))

		tx, err := repo.GetTransaction(context.Background(), "user-1", "tx-1")
		require.NoError(t, err)
		assert.Equal(t, models.Blob("blob"), tx.Blob)
		assert.Equal(t, int64(3), tx.Version)
		assert.False(t, tx.Deleted)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(getTransaction)).
			WithArgs("user-1", "tx-1").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetTransaction(context.Background(), "user-1", "tx-1")
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("gives up after retries", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		for range 3 {
			mock.ExpectQuery(regexp.QuoteMeta(getTransaction)).
				WithArgs("user-1", "tx-1").
				WillReturnError(pgError(pgerrcode.ConnectionFailure))
		}

		_, err := repo.GetTransaction(context.Background(), "user-1", "tx-1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_ListTransactions(t *testing.T) {
	now := time.Now()
	db, mock := newTestDB(t)
	repo := NewTransactionRepository(db, logger.Nop())

	filter := models.TransactionFilter{UserID: "user-1"}
	query, args, err := buildListTransactionsQuery(filter)
	require.NoError(t, err)

	driverArgs := make([]driver.Value, len(args))
	for i := range args {
		driverArgs[i] = args[i]
	}

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(driverArgs...).
		WillReturnRows(transactionRows().
			AddRow("user-1", "a", "blob-a", 1, false, now, now).
			AddRow("user-1", "b", "blob-b", 2, false, now, now))

	items, err := repo.ListTransactions(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestTransactionRepository_ListTransactions_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTransactionRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnRows(transactionRows())

	items, err := repo.ListTransactions(context.Background(), models.TransactionFilter{UserID: "user-1"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTransactionRepository_PutTransaction(t *testing.T) {
	now := time.Now()

	t.Run("insert", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(insertTransaction)).
			WithArgs("user-1", "tx-1", "blob").
			WillReturnRows(transactionRows().AddRow("user-1", "tx-1", "blob", 1, false, now, now))

		saved, err := repo.PutTransaction(context.Background(), models.EncryptedTransaction{
			UserID: "user-1", ID: "tx-1", Blob: "blob",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.Version)
	})

	t.Run("insert of existing id", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(insertTransaction)).
			WithArgs("user-1", "tx-1", "blob").
			WillReturnRows(transactionRows())

		_, err := repo.PutTransaction(context.Background(), models.EncryptedTransaction{
			UserID: "user-1", ID: "tx-1", Blob: "blob",
		})
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("update", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(updateTransaction)).
			WithArgs("new-blob", "user-1", "tx-1", int64(2)).
			WillReturnRows(transactionRows().AddRow("user-1", "tx-1", "new-blob", 3, false, now, now))

		saved, err := repo.PutTransaction(context.Background(), models.EncryptedTransaction{
			UserID: "user-1", ID: "tx-1", Blob: "new-blob", Version: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), saved.Version)
		assert.Equal(t, models.Blob("new-blob"), saved.Blob)
	})

	t.Run("stale version", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(updateTransaction)).
			WithArgs("new-blob", "user-1", "tx-1", int64(1)).
			WillReturnRows(transactionRows())
		mock.ExpectQuery(regexp.QuoteMeta(getTransaction)).
			WithArgs("user-1", "tx-1").
			WillReturnRows(transactionRows().AddRow("user-1", "tx-1", "blob", 2, false, now, now))

		_, err := repo.PutTransaction(context.Background(), models.EncryptedTransaction{
			UserID: "user-1", ID: "tx-1", Blob: "new-blob", Version: 1,
		})
		assert.ErrorIs(t, err, ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update of deleted record", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(updateTransaction)).
			WithArgs("new-blob", "user-1", "tx-1", int64(2)).
			WillReturnRows(transactionRows())
		mock.ExpectQuery(regexp.QuoteMeta(getTransaction)).
			WithArgs("user-1", "tx-1").
			WillReturnRows(transactionRows().AddRow("user-1", "tx-1", "blob", 2, true, now, now))

		_, err := repo.PutTransaction(context.Background(), models.EncryptedTransaction{
			UserID: "user-1", ID: "tx-1", Blob: "new-blob", Version: 2,
		})
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("update of unknown record", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(updateTransaction)).
			WithArgs("new-blob", "user-1", "tx-1", int64(2)).
			WillReturnRows(transactionRows())
		mock.ExpectQuery(regexp.QuoteMeta(getTransaction)).
			WithArgs("user-1", "tx-1").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.PutTransaction(context.Background(), models.EncryptedTransaction{
			UserID: "user-1", ID: "tx-1", Blob: "new-blob", Version: 2,
		})
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("non-retryable error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(insertTransaction)).
			WithArgs("user-1", "tx-1", "blob").
			WillReturnError(pgError(pgerrcode.StringDataRightTruncationDataException))

		_, err := repo.PutTransaction(context.Background(), models.EncryptedTransaction{
			UserID: "user-1", ID: "tx-1", Blob: "blob",
		})
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_DeleteTransaction(t *testing.T) {
	now := time.Now()

	t.Run("deleted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(deleteTransaction)).
			WithArgs("user-1", "tx-1", int64(1)).
			WillReturnRows(transactionRows().AddRow("user-1", "tx-1", "blob", 2, true, now, now))

		deleted, err := repo.DeleteTransaction(context.Background(), "user-1", "tx-1", 1)
		require.NoError(t, err)
		assert.True(t, deleted.Deleted)
		assert.Equal(t, int64(2), deleted.Version)
	})

	t.Run("already deleted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(deleteTransaction)).
			WithArgs("user-1", "tx-1", int64(2)).
			WillReturnRows(transactionRows())
		mock.ExpectQuery(regexp.QuoteMeta(getTransaction)).
			WithArgs("user-1", "tx-1").
			WillReturnRows(transactionRows().AddRow("user-1", "tx-1", "blob", 2, true, now, now))

		_, err := repo.DeleteTransaction(context.Background(), "user-1", "tx-1", 2)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("stale version", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(deleteTransaction)).
			WithArgs("user-1", "tx-1", int64(1)).
			WillReturnRows(transactionRows())
		mock.ExpectQuery(regexp.QuoteMeta(getTransaction)).
			WithArgs("user-1", "tx-1").
			WillReturnRows(transactionRows().AddRow("user-1", "tx-1", "blob", 4, false, now, now))

		_, err := repo.DeleteTransaction(context.Background(), "user-1", "tx-1", 1)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})
}
