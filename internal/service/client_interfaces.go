// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSaltService provisions the user's KDF salt.
type ClientSaltService interface {
	// EnsureSalt returns the user's salt. It fetches it from the server and
	// creates one if the user has none yet. When two devices race to create
	// it, the loser re-fetches the winner's salt. While offline the locally
	// cached salt is used. Returns [ErrSaltMismatch] when the server's salt
	// differs from the cached one.
	EnsureSalt(ctx context.Context) ([]byte, error)
}

// ClientVaultService unlocks and locks the session key.
type ClientVaultService interface {
	// Unlock provisions the salt and derives the session key from
	// passphrase. When a cached blob exists it is used to check the
	// passphrase; a key that cannot open it is dropped and
	// [ErrWrongPassphrase] is returned.
	Unlock(ctx context.Context, passphrase string) error

	// Lock drops the session key.
	Lock()

	// State reports the session state.
	State() session.State
}

// ClientTransactionService manages plaintext transactions. Records are
// sealed before they leave the process and opened after download; the server
// and the local cache only ever see blobs.
type ClientTransactionService interface {
	// Create assigns a new id and uploads the sealed record.
	Create(ctx context.Context, tx models.Transaction) (models.Transaction, error)

	// Get downloads and opens one record. Falls back to the cache when the
	// server is unreachable.
	Get(ctx context.Context, id string) (models.Transaction, error)

	// List refreshes the cache from the server and opens every cached
	// record. Records that fail to open are reported in a [*BatchError]
	// alongside the ones that succeeded.
	List(ctx context.Context) ([]models.Transaction, error)

	// Update uploads a new blob for tx, based on tx.Version.
	Update(ctx context.Context, tx models.Transaction) (models.Transaction, error)

	// Delete soft-deletes the record at the given version.
	Delete(ctx context.Context, id string, version int64) error
}
