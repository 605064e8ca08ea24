// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the server and of the
// terminal client.
//
// Server services (no prefix) only ever handle salts and opaque blobs. Client
// services (Client prefix) own the encryption: they seal records with the
// unlocked [session.Session] before handing them to the adapter and open
// them after download.
package service

import (
	"context"

	"github.com/MKhiriev/sats-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SaltService serves the per-user KDF salt.
type SaltService interface {
	GetSalt(ctx context.Context, userID string) (models.Salt, error)

	// CreateSalt stores salt once; a second call for the same user fails
	// with [store.ErrSaltAlreadyExists].
	CreateSalt(ctx context.Context, salt models.Salt) (models.Salt, error)
}

// BlobService stores encrypted transactions.
type BlobService interface {
	GetTransaction(ctx context.Context, userID, id string) (models.EncryptedTransaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.EncryptedTransaction, error)
	PutTransaction(ctx context.Context, tx models.EncryptedTransaction) (models.EncryptedTransaction, error)
	DeleteTransaction(ctx context.Context, userID, id string, version int64) (models.EncryptedTransaction, error)
}

// AuthService verifies bearer tokens issued by the external auth provider.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports the server build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}
