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

type localSaltRepository struct {
	*DB
}

// NewLocalSaltRepository constructs the SQLite-backed [LocalSaltRepository].
func NewLocalSaltRepository(db *DB) LocalSaltRepository {
	return &localSaltRepository{DB: db}
}

func (l *localSaltRepository) GetSalt(ctx context.Context, userID string) (models.Salt, error) {
	var salt models.Salt
	err := l.DB.QueryRowContext(ctx, getLocalSalt, userID).Scan(&salt.UserID, &salt.Salt, &salt.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Salt{}, ErrSaltNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSaltRepository.GetSalt").Msg("failed to read cached salt")
		return models.Salt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return salt, nil
}

// SaveSalt stores the salt the first time it is seen. Later calls are
// no-ops: the cached salt never changes.
func (l *localSaltRepository) SaveSalt(ctx context.Context, salt models.Salt) error {
	if _, err := l.DB.ExecContext(ctx, saveLocalSalt, salt.UserID, salt.Salt, utcOrNil(salt.CreatedAt)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSaltRepository.SaveSalt").Msg("failed to cache salt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
