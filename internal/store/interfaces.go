// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists salts and encrypted transaction blobs.
//
// The server side is backed by PostgreSQL (pgx stdlib driver), the client
// cache by SQLite. Neither ever sees a plaintext record or a key: blobs are
// written and read back byte-exact.
package store

import (
	"context"

	"github.com/MKhiriev/sats-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SaltRepository stores the per-user KDF salt. A salt is insert-only.
type SaltRepository interface {
	// GetSalt returns [ErrSaltNotFound] if the user has no salt yet.
	GetSalt(ctx context.Context, userID string) (models.Salt, error)

	// CreateSalt returns [ErrSaltAlreadyExists] if the user already has one.
	CreateSalt(ctx context.Context, salt models.Salt) (models.Salt, error)
}

// TransactionRepository stores encrypted transaction blobs with optimistic
// versioning.
type TransactionRepository interface {
	// GetTransaction returns soft-deleted records too.
	GetTransaction(ctx context.Context, userID, id string) (models.EncryptedTransaction, error)

	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.EncryptedTransaction, error)

	// PutTransaction creates the record when tx.Version is 0 and otherwise
	// replaces the blob of the record whose stored version equals
	// tx.Version. The stored version is bumped on success.
	PutTransaction(ctx context.Context, tx models.EncryptedTransaction) (models.EncryptedTransaction, error)

	// DeleteTransaction soft-deletes the record at the given version.
	DeleteTransaction(ctx context.Context, userID, id string, version int64) (models.EncryptedTransaction, error)
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
