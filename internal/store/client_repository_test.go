// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/models"
)

func TestLocalTransactionRepository_SaveTransactions(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	t.Run("upserts all in one transaction", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalTransactionRepository(db, logger.Nop())

		mock.ExpectBegin()
		prep := mock.ExpectPrepare(regexp.QuoteMeta(saveLocalTransaction))
		prep.ExpectExec().
			WithArgs("user-1", "a", "blob-a", int64(1), false, created.UTC(), created.UTC()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		prep.ExpectExec().
			WithArgs("user-1", "b", "blob-b", int64(2), true, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveTransactions(context.Background(),
			models.EncryptedTransaction{UserID: "user-1", ID: "a", Blob: "blob-a", Version: 1, CreatedAt: &created, UpdatedAt: &created},
			models.EncryptedTransaction{UserID: "user-1", ID: "b", Blob: "blob-b", Version: 2, Deleted: true},
		)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing to save", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalTransactionRepository(db, logger.Nop())

		require.NoError(t, repo.SaveTransactions(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalTransactionRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectPrepare(regexp.QuoteMeta(saveLocalTransaction)).
			ExpectExec().
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.SaveTransactions(context.Background(),
			models.EncryptedTransaction{UserID: "user-1", ID: "a", Blob: "blob-a", Version: 1})
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalTransactionRepository(db, logger.Nop())

		mock.ExpectBegin().WillReturnError(errors.New("locked"))

		err := repo.SaveTransactions(context.Background(),
			models.EncryptedTransaction{UserID: "user-1", ID: "a", Blob: "blob-a", Version: 1})
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})
}

func TestLocalTransactionRepository_GetTransaction(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(getLocalTransaction)).
			WithArgs("user-1", "a").
			WillReturnRows(transactionRows().AddRow("user-1", "a", "blob-a", 1, false, now, now))

		tx, err := repo.GetTransaction(context.Background(), "user-1", "a")
		require.NoError(t, err)
		assert.Equal(t, models.Blob("blob-a"), tx.Blob)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(getLocalTransaction)).
			WithArgs("user-1", "a").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetTransaction(context.Background(), "user-1", "a")
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestLocalTransactionRepository_ListTransactions(t *testing.T) {
	now := time.Now().UTC()
	db, mock := newTestDB(t)
	repo := NewLocalTransactionRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(listLocalTransactions)).
		WithArgs("user-1").
		WillReturnRows(transactionRows().
			AddRow("user-1", "a", "blob-a", 1, false, now, now).
			AddRow("user-1", "b", "blob-b", 1, false, now, now))

	items, err := repo.ListTransactions(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestLocalTransactionRepository_LastUpdatedAt(t *testing.T) {
	t.Run("empty cache", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalTransactionRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(lastLocalUpdate)).
			WithArgs("user-1").
			WillReturnError(sql.ErrNoRows)

		last, err := repo.LastUpdatedAt(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Nil(t, last)
	})

	t.Run("latest", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalTransactionRepository(db, logger.Nop())

		latest := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(lastLocalUpdate)).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(latest))

		last, err := repo.LastUpdatedAt(context.Background(), "user-1")
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.True(t, latest.Equal(*last))
	})
}

func TestLocalSaltRepository(t *testing.T) {
	now := time.Now().UTC()

	t.Run("save", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalSaltRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(saveLocalSalt)).
			WithArgs("user-1", testSaltHex, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SaveSalt(context.Background(), models.Salt{UserID: "user-1", Salt: testSaltHex, CreatedAt: &now}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalSaltRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(getLocalSalt)).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "salt", "created_at"}).AddRow("user-1", testSaltHex, now))

		salt, err := repo.GetSalt(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, testSaltHex, salt.Salt)
	})

	t.Run("get missing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalSaltRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(getLocalSalt)).
			WithArgs("user-1").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetSalt(context.Background(), "user-1")
		assert.ErrorIs(t, err, ErrSaltNotFound)
	})
}
