// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/utils"
	"github.com/MKhiriev/sats-ledger/internal/validators"
	"github.com/MKhiriev/sats-ledger/models"
)

// BlobServiceWrapper decorates a [BlobService].
type BlobServiceWrapper interface {
	Wrap(BlobService) BlobService
}

// BlobValidationService rejects malformed input before it reaches the inner
// [BlobService]. Every rejection wraps [ErrInvalidDataProvided].
type BlobValidationService struct {
	inner     BlobService
	validator validators.Validator
}

func NewBlobValidationService() BlobServiceWrapper {
	return &BlobValidationService{
		validator: validators.NewBlobValidator(),
	}
}

func (v *BlobValidationService) Wrap(inner BlobService) BlobService {
	v.inner = inner
	return v
}

func (v *BlobValidationService) GetTransaction(ctx context.Context, userID, id string) (models.EncryptedTransaction, error) {
	if err := validateOwnerAndID(userID, id); err != nil {
		return models.EncryptedTransaction{}, err
	}
	return v.inner.GetTransaction(ctx, userID, id)
}

func (v *BlobValidationService) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.EncryptedTransaction, error) {
	if filter.UserID == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListTransactions(ctx, filter)
}

func (v *BlobValidationService) PutTransaction(ctx context.Context, tx models.EncryptedTransaction) (models.EncryptedTransaction, error) {
	if tx.UserID == "" {
		return models.EncryptedTransaction{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, tx); err != nil {
		return models.EncryptedTransaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.PutTransaction(ctx, tx)
}

func (v *BlobValidationService) DeleteTransaction(ctx context.Context, userID, id string, version int64) (models.EncryptedTransaction, error) {
	if err := validateOwnerAndID(userID, id); err != nil {
		return models.EncryptedTransaction{}, err
	}
	if version <= 0 {
		return models.EncryptedTransaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidVersion)
	}
	return v.inner.DeleteTransaction(ctx, userID, id, version)
}

func validateOwnerAndID(userID, id string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if !utils.ValidID(id) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}
	return nil
}
