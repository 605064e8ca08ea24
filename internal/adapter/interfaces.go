// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the sats-ledger server.
//
// [ServerAdapter] hides the protocol from the service layer. The HTTP
// implementation ([NewHTTPServerAdapter]) maps status codes to the sentinel
// errors in errors.go so callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrNotFound] for 404). Failures that never reached the server wrap
// [ErrServerUnreachable].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/sats-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the blob and salt API. Everything it sends or
// receives is already encrypted; it never sees a passphrase or a key.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the bearer token currently in use.
	Token() string

	// GetSalt fetches the user's salt. Returns [ErrNotFound] if none has
	// been provisioned.
	GetSalt(ctx context.Context) (models.Salt, error)

	// PutSalt provisions the user's salt. Returns [ErrConflict] if the user
	// already has one.
	PutSalt(ctx context.Context, salt models.Salt) (models.Salt, error)

	// ListTransactions returns the user's blobs updated at or after since
	// (all of them when since is nil).
	ListTransactions(ctx context.Context, since *time.Time, includeDeleted bool) ([]models.EncryptedTransaction, error)

	GetTransaction(ctx context.Context, id string) (models.EncryptedTransaction, error)

	// PutTransaction creates (Version 0) or replaces the blob stored under
	// id. Returns [ErrConflict] when req.Version is stale.
	PutTransaction(ctx context.Context, id string, req models.PutTransactionRequest) (models.EncryptedTransaction, error)

	// DeleteTransaction soft-deletes the record at version.
	DeleteTransaction(ctx context.Context, id string, version int64) (models.EncryptedTransaction, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
