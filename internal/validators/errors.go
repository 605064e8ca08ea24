// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidID      = errors.New("invalid transaction id")
	ErrEmptyBlob      = errors.New("blob is required")
	ErrInvalidBlob    = errors.New("invalid blob")
	ErrBlobTooShort   = errors.New("blob is shorter than nonce and tag")
	ErrBlobTooLarge   = errors.New("blob is too large")
	ErrInvalidVersion = errors.New("invalid version")
	ErrInvalidSalt    = errors.New("invalid salt")
)
