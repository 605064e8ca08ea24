// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/models"
)

// saltRepository is the PostgreSQL implementation of [SaltRepository].
type saltRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSaltRepository constructs a [SaltRepository] backed by db.
func NewSaltRepository(db *DB, logger *logger.Logger) SaltRepository {
	logger.Debug().Msg("creating salt repository")
	return &saltRepository{
		db:     db,
		logger: logger,
	}
}

// GetSalt returns the salt of userID.
//
// Error handling:
//   - no row → [ErrSaltNotFound];
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *saltRepository) GetSalt(ctx context.Context, userID string) (models.Salt, error) {
	log := logger.FromContext(ctx)

	var salt models.Salt
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, getSalt, userID).Scan(&salt.UserID, &salt.Salt, &salt.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Salt{}, ErrSaltNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*saltRepository.GetSalt").Str("user_id", userID).Msg("error querying salt")
		return models.Salt{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return salt, nil
}

// CreateSalt inserts the user's salt once.
//
// The insert uses ON CONFLICT DO NOTHING, so an existing salt yields no row
// and is reported as [ErrSaltAlreadyExists]; a unique_violation raised by a
// concurrent insert maps to the same error.
func (r *saltRepository) CreateSalt(ctx context.Context, salt models.Salt) (models.Salt, error) {
	log := logger.FromContext(ctx)

	var created models.Salt
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, createSalt, salt.UserID, salt.Salt).
			Scan(&created.UserID, &created.Salt, &created.CreatedAt)
	})
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.UniqueViolation:
		return models.Salt{}, ErrSaltAlreadyExists
	default:
		log.Err(err).Str("func", "*saltRepository.CreateSalt").Str("user_id", salt.UserID).Msg("error inserting salt")
		return models.Salt{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}
