// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Error taxonomy of the envelope encryption core. Every error returned by
// this package wraps exactly one of these (a malformed salt wraps both
// ErrValidation and ErrKeyDerivation). Match with [errors.Is].
var (
	// ErrValidation is returned for inputs the user must correct: an empty
	// passphrase or a salt of the wrong length or format. Never retried.
	ErrValidation = errors.New("validation error")

	// ErrKeyDerivation is returned when a key cannot be produced on this
	// device, e.g. the AES-GCM primitive rejects the derived key material.
	ErrKeyDerivation = errors.New("key derivation error")

	// ErrEncryption is returned when a record cannot be sealed.
	ErrEncryption = errors.New("encryption error")

	// ErrDecryption is returned when a blob cannot be opened. It covers a
	// wrong key, corrupted data and tampering alike: AEAD authentication
	// cannot tell these apart.
	ErrDecryption = errors.New("decryption error")

	// ErrDeserialization is returned when a blob decrypts successfully but
	// the plaintext is not a valid encoding of the target record.
	ErrDeserialization = errors.New("deserialization error")

	// ErrKeyNotSerializable is returned by the marshal methods of [Key].
	ErrKeyNotSerializable = errors.New("derived key cannot be serialized")
)
