// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/sats-ledger/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTransactionRepository is the client's SQLite copy of the server's
// encrypted blobs.
type LocalTransactionRepository interface {
	// SaveTransactions upserts txs. An incoming row never replaces a cached
	// row with a higher version.
	SaveTransactions(ctx context.Context, txs ...models.EncryptedTransaction) error

	GetTransaction(ctx context.Context, userID, id string) (models.EncryptedTransaction, error)

	// ListTransactions returns the user's non-deleted cached blobs.
	ListTransactions(ctx context.Context, userID string) ([]models.EncryptedTransaction, error)

	// LastUpdatedAt returns the newest updated_at in the cache, or nil when
	// the cache is empty.
	LastUpdatedAt(ctx context.Context, userID string) (*time.Time, error)
}

// LocalSaltRepository caches the user's salt so the vault can be unlocked
// while the server is unreachable.
type LocalSaltRepository interface {
	GetSalt(ctx context.Context, userID string) (models.Salt, error)
	SaveSalt(ctx context.Context, salt models.Salt) error
}
