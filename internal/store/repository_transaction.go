// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/models"
)

// transactionRepository is the PostgreSQL implementation of
// [TransactionRepository] over the "transactions" table.
//
// Every write is a single conditional statement: the version check and the
// version bump happen in the same UPDATE, so no explicit database
// transaction is needed.
type transactionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by db.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) GetTransaction(ctx context.Context, userID, id string) (models.EncryptedTransaction, error) {
	log := logger.FromContext(ctx)

	var tx models.EncryptedTransaction
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		tx, scanErr = scanTransaction(r.db.QueryRowContext(ctx, getTransaction, userID, id))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedTransaction{}, ErrTransactionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.GetTransaction").
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to query transaction")
		return models.EncryptedTransaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tx, nil
}

// ListTransactions returns the records matching filter ordered by
// updated_at. An empty result is an empty slice, never nil.
func (r *transactionRepository) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.EncryptedTransaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.ListTransactions").
			Str("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, err
	}

	var results []models.EncryptedTransaction
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		results, queryErr = r.queryTransactions(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.ListTransactions").
			Str("user_id", filter.UserID).
			Msg("failed to list transactions")
		return nil, err
	}

	return results, nil
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]models.EncryptedTransaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.EncryptedTransaction, 0, 50)
	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, tx)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// PutTransaction inserts (Version == 0) or conditionally updates the record.
//
// When the conditional statement matches no row the record is looked up to
// tell a missing or deleted record ([ErrTransactionNotFound]) from a stale
// version ([ErrVersionConflict]). Creating an id that already exists is a
// conflict.
func (r *transactionRepository) PutTransaction(ctx context.Context, tx models.EncryptedTransaction) (models.EncryptedTransaction, error) {
	log := logger.FromContext(ctx)

	query, args := insertTransaction, []any{tx.UserID, tx.ID, string(tx.Blob)}
	if tx.Version > 0 {
		query, args = updateTransaction, []any{string(tx.Blob), tx.UserID, tx.ID, tx.Version}
	}

	var saved models.EncryptedTransaction
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		saved, scanErr = scanTransaction(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		if tx.Version == 0 {
			return models.EncryptedTransaction{}, ErrVersionConflict
		}
		return models.EncryptedTransaction{}, r.explainMiss(ctx, tx.UserID, tx.ID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.PutTransaction").
			Str("user_id", tx.UserID).
			Str("id", tx.ID).
			Int64("version", tx.Version).
			Msg("failed to write transaction")
		return models.EncryptedTransaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// DeleteTransaction soft-deletes the record. The blob stays so other devices
// can observe the deletion on their next listing.
func (r *transactionRepository) DeleteTransaction(ctx context.Context, userID, id string, version int64) (models.EncryptedTransaction, error) {
	log := logger.FromContext(ctx)

	var deleted models.EncryptedTransaction
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		deleted, scanErr = scanTransaction(r.db.QueryRowContext(ctx, deleteTransaction, userID, id, version))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedTransaction{}, r.explainMiss(ctx, userID, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.DeleteTransaction").
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to delete transaction")
		return models.EncryptedTransaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

// explainMiss classifies a conditional write that matched no row.
func (r *transactionRepository) explainMiss(ctx context.Context, userID, id string) error {
	current, err := r.GetTransaction(ctx, userID, id)
	if err != nil {
		return err
	}
	if current.Deleted {
		return ErrTransactionNotFound
	}
	return ErrVersionConflict
}
