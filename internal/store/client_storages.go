// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/config"
	"github.com/MKhiriev/sats-ledger/internal/logger"
)

// ClientStorages groups the client cache repositories. Only encrypted blobs
// and the non-secret salt are stored.
type ClientStorages struct {
	TransactionRepository LocalTransactionRepository
	SaltRepository        LocalSaltRepository

	db *DB
}

// NewClientStorages opens the SQLite cache at cfg.Path, creating it if
// needed, and runs the migrations.
func NewClientStorages(ctx context.Context, cfg config.Local, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TransactionRepository: NewLocalTransactionRepository(db, logger),
		SaltRepository:        NewLocalSaltRepository(db),
		db:                    db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
