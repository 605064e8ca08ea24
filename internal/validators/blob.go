// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/crypto"
	"github.com/MKhiriev/sats-ledger/internal/utils"
	"github.com/MKhiriev/sats-ledger/models"
)

// Field names accepted by [BlobValidator.Validate].
const (
	FieldID      = "id"
	FieldUserID  = "user_id"
	FieldBlob    = "blob"
	FieldVersion = "version"
	FieldSalt    = "salt"
)

const (
	// gcmTagSize is the AES-GCM authentication tag appended to every
	// ciphertext.
	gcmTagSize = 16

	// MaxBlobLength caps the blob text of a single record.
	MaxBlobLength = 64 << 10
)

// BlobValidator validates salts and encrypted transactions.
type BlobValidator struct{}

// NewBlobValidator constructs a [BlobValidator].
func NewBlobValidator() Validator {
	return &BlobValidator{}
}

// Validate dispatches on the type of obj. Supported are [models.Salt],
// [models.EncryptedTransaction] and [models.PutTransactionRequest], as
// values or pointers.
func (v *BlobValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Salt:
		return v.validateSalt(value, fields...)
	case *models.Salt:
		return v.validateSalt(*value, fields...)

	case models.EncryptedTransaction:
		return v.validateTransaction(value, fields...)
	case *models.EncryptedTransaction:
		return v.validateTransaction(*value, fields...)

	case models.PutTransactionRequest:
		return v.validatePutRequest(value, fields...)
	case *models.PutTransactionRequest:
		return v.validatePutRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlobValidator) validateSalt(salt models.Salt, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if salt.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldSalt:
			if _, err := crypto.ParseSalt(salt.Salt); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidSalt, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlobValidator) validateTransaction(tx models.EncryptedTransaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldBlob, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.ValidID(tx.ID) {
				return ErrInvalidID
			}
		case FieldUserID:
			if tx.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldBlob:
			if err := validateBlob(tx.Blob); err != nil {
				return err
			}
		case FieldVersion:
			if tx.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlobValidator) validatePutRequest(req models.PutTransactionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBlob, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldBlob:
			if err := validateBlob(req.Blob); err != nil {
				return err
			}
		case FieldVersion:
			if req.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBlob checks that blob is non-empty ASCII text that decodes as hex
// or base64 into at least a nonce and a tag. The ciphertext itself cannot be
// checked without the key.
func validateBlob(blob models.Blob) error {
	if blob == "" {
		return ErrEmptyBlob
	}
	if len(blob) > MaxBlobLength {
		return ErrBlobTooLarge
	}
	for i := 0; i < len(blob); i++ {
		if blob[i] > 0x7e || blob[i] < 0x21 {
			return fmt.Errorf("%w: non-printable byte at offset %d", ErrInvalidBlob, i)
		}
	}

	raw, err := crypto.DecodeBlob(string(blob))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBlob, err)
	}
	if len(raw) < crypto.NonceSize+gcmTagSize {
		return ErrBlobTooShort
	}

	return nil
}
