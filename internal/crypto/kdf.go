// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length in bytes of a per-user salt.
	SaltSize = 16

	// KeySize is the length in bytes of a derived AES-256 key.
	KeySize = 32

	// NonceSize is the AES-GCM nonce length prepended to every blob.
	NonceSize = 12

	// MinIterations is the lowest PBKDF2 iteration count accepted.
	MinIterations = 100_000

	// DefaultIterations is the PBKDF2 iteration count used when none is
	// configured. Changing it for an existing user makes every blob they
	// wrote unreadable.
	DefaultIterations = MinIterations
)

// KDFParams holds the PBKDF2 cost factor. It must stay identical for every
// derivation of the same user's key.
type KDFParams struct {
	Iterations int
}

// DefaultKDFParams returns the parameters used when nothing is configured.
func DefaultKDFParams() KDFParams {
	return KDFParams{Iterations: DefaultIterations}
}

// Key is a derived AES-256-GCM key held only in memory.
//
// The raw key bytes are not reachable through the API and a Key refuses to be
// marshalled, so it cannot end up in logs, JSON responses or on disk by
// accident. A Key is immutable and safe for concurrent use.
type Key struct {
	aead cipher.AEAD
}

// newKey builds a Key from raw key material and wipes the input slice.
func newKey(raw []byte) (*Key, error) {
	defer clear(raw)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrKeyDerivation, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrKeyDerivation, err)
	}

	return &Key{aead: aead}, nil
}

// String implements [fmt.Stringer] without revealing anything.
func (k *Key) String() string {
	return "crypto.Key(redacted)"
}

// GoString implements [fmt.GoStringer] so %#v does not dump the AEAD state.
func (k *Key) GoString() string {
	return k.String()
}

// MarshalJSON always fails with [ErrKeyNotSerializable].
func (k *Key) MarshalJSON() ([]byte, error) {
	return nil, ErrKeyNotSerializable
}

// MarshalText always fails with [ErrKeyNotSerializable].
func (k *Key) MarshalText() ([]byte, error) {
	return nil, ErrKeyNotSerializable
}

// pbkdf2Deriver is the PBKDF2-HMAC-SHA256 implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	iterations int
}

// NewKeyDeriver constructs a [KeyDeriver] with the given cost parameters.
// A zero iteration count selects [DefaultIterations]; anything below
// [MinIterations] is rejected with [ErrValidation].
func NewKeyDeriver(params KDFParams) (KeyDeriver, error) {
	if params.Iterations == 0 {
		params.Iterations = DefaultIterations
	}
	if params.Iterations < MinIterations {
		return nil, fmt.Errorf("%w: iterations must be at least %d, got %d", ErrValidation, MinIterations, params.Iterations)
	}

	return &pbkdf2Deriver{iterations: params.Iterations}, nil
}

// Derive implements [KeyDeriver]. The context is only consulted before the
// hash starts; a derivation in progress always runs to completion.
func (d *pbkdf2Deriver) Derive(ctx context.Context, passphrase string, salt []byte) (*Key, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: passphrase must not be empty", ErrValidation)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: %w: salt must be %d bytes, got %d", ErrKeyDerivation, ErrValidation, SaltSize, len(salt))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := pbkdf2.Key([]byte(passphrase), salt, d.iterations, KeySize, sha256.New)
	return newKey(raw)
}

// DeriveKey is a convenience wrapper that builds a deriver for params and
// runs it once.
func DeriveKey(ctx context.Context, passphrase string, salt []byte, params KDFParams) (*Key, error) {
	deriver, err := NewKeyDeriver(params)
	if err != nil {
		return nil, err
	}
	return deriver.Derive(ctx, passphrase, salt)
}

// GenerateSalt reads [SaltSize] bytes from the OS CSPRNG. It is only used
// when a user sets up encryption for the first time.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// ParseSalt decodes a hex salt as stored server-side.
func ParseSalt(saltHex string) ([]byte, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: salt is not valid hex: %w", ErrKeyDerivation, ErrValidation, err)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: %w: salt must be %d bytes, got %d", ErrKeyDerivation, ErrValidation, SaltSize, len(salt))
	}
	return salt, nil
}

// EncodeSalt returns the lowercase hex form of salt.
func EncodeSalt(salt []byte) string {
	return hex.EncodeToString(salt)
}
