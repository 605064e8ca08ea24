// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/models"
)

type blobService struct {
	transactionRepository store.TransactionRepository

	logger *logger.Logger
}

// NewBlobService constructs a [BlobService] over repo. Inputs are expected
// to be validated already; see [NewBlobValidationService].
func NewBlobService(repo store.TransactionRepository, logger *logger.Logger) BlobService {
	return &blobService{
		transactionRepository: repo,
		logger:                logger,
	}
}

func (b *blobService) GetTransaction(ctx context.Context, userID, id string) (models.EncryptedTransaction, error) {
	tx, err := b.transactionRepository.GetTransaction(ctx, userID, id)
	if err != nil {
		return models.EncryptedTransaction{}, err
	}
	// a deleted record is only visible through listings
	if tx.Deleted {
		return models.EncryptedTransaction{}, store.ErrTransactionNotFound
	}
	return tx, nil
}

func (b *blobService) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.EncryptedTransaction, error) {
	return b.transactionRepository.ListTransactions(ctx, filter)
}

func (b *blobService) PutTransaction(ctx context.Context, tx models.EncryptedTransaction) (models.EncryptedTransaction, error) {
	saved, err := b.transactionRepository.PutTransaction(ctx, tx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("user_id", tx.UserID).
			Str("id", tx.ID).
			Int64("version", tx.Version).
			Msg("transaction write rejected")
		return models.EncryptedTransaction{}, err
	}
	return saved, nil
}

func (b *blobService) DeleteTransaction(ctx context.Context, userID, id string, version int64) (models.EncryptedTransaction, error) {
	return b.transactionRepository.DeleteTransaction(ctx, userID, id, version)
}
