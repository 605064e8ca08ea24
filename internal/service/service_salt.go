// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/crypto"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/internal/validators"
	"github.com/MKhiriev/sats-ledger/models"
)

type saltService struct {
	saltRepository store.SaltRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewSaltService constructs a [SaltService] over repo.
func NewSaltService(repo store.SaltRepository, logger *logger.Logger) SaltService {
	return &saltService{
		saltRepository: repo,
		validator:      validators.NewBlobValidator(),
		logger:         logger,
	}
}

func (s *saltService) GetSalt(ctx context.Context, userID string) (models.Salt, error) {
	if userID == "" {
		return models.Salt{}, ErrValidationNoUserID
	}

	return s.saltRepository.GetSalt(ctx, userID)
}

// CreateSalt validates that salt is 16 bytes of hex and stores it in
// lowercase form.
func (s *saltService) CreateSalt(ctx context.Context, salt models.Salt) (models.Salt, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, salt); err != nil {
		log.Err(err).Str("func", "saltService.CreateSalt").Str("user_id", salt.UserID).Msg("invalid salt")
		return models.Salt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	raw, _ := crypto.ParseSalt(salt.Salt)
	salt.Salt = crypto.EncodeSalt(raw)

	created, err := s.saltRepository.CreateSalt(ctx, salt)
	if err != nil {
		return models.Salt{}, err
	}

	log.Info().Str("user_id", created.UserID).Msg("salt provisioned")
	return created, nil
}
