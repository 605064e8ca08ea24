// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/models"
)

type localTransactionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalTransactionRepository constructs the SQLite-backed
// [LocalTransactionRepository].
func NewLocalTransactionRepository(db *DB, logger *logger.Logger) LocalTransactionRepository {
	return &localTransactionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveTransactions upserts txs in one database transaction.
func (l *localTransactionRepository) SaveTransactions(ctx context.Context, txs ...models.EncryptedTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	dbTx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localTransactionRepository.SaveTransactions").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx, saveLocalTransaction)
	if err != nil {
		log.Err(err).Str("func", "localTransactionRepository.SaveTransactions").Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, tx := range txs {
		_, err = stmt.ExecContext(ctx,
			tx.UserID,
			tx.ID,
			string(tx.Blob),
			tx.Version,
			tx.Deleted,
			utcOrNil(tx.CreatedAt),
			utcOrNil(tx.UpdatedAt),
		)
		if err != nil {
			log.Err(err).
				Str("func", "localTransactionRepository.SaveTransactions").
				Str("user_id", tx.UserID).
				Str("id", tx.ID).
				Msg("failed to upsert transaction")
			return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, tx.ID, err)
		}
	}

	if err = dbTx.Commit(); err != nil {
		log.Err(err).Str("func", "localTransactionRepository.SaveTransactions").Msg("failed to commit")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localTransactionRepository) GetTransaction(ctx context.Context, userID, id string) (models.EncryptedTransaction, error) {
	tx, err := scanTransaction(l.DB.QueryRowContext(ctx, getLocalTransaction, userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedTransaction{}, ErrTransactionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localTransactionRepository.GetTransaction").
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to get cached transaction")
		return models.EncryptedTransaction{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tx, nil
}

func (l *localTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]models.EncryptedTransaction, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listLocalTransactions, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localTransactionRepository.ListTransactions").
			Str("user_id", userID).
			Msg("failed to query cached transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.EncryptedTransaction
	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localTransactionRepository.ListTransactions").
				Str("user_id", userID).
				Msg("failed to scan cached transaction")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, tx)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (l *localTransactionRepository) LastUpdatedAt(ctx context.Context, userID string) (*time.Time, error) {
	var last time.Time
	err := l.DB.QueryRowContext(ctx, lastLocalUpdate, userID).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localTransactionRepository.LastUpdatedAt").
			Str("user_id", userID).
			Msg("failed to read last update time")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &last, nil
}

// utcOrNil normalises timestamps so that their text form sorts correctly in
// SQLite.
func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
