// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side envelope encryption used for
// transaction records.
//
// A symmetric [Key] is derived from the user's passphrase and a per-user salt
// with PBKDF2-HMAC-SHA256. The key never leaves process memory: it wraps a
// ready AES-256-GCM AEAD and exposes no accessor for the raw key bytes.
//
// Records are sealed into self-contained blobs:
//
//	blob = encode(nonce(12 bytes) ‖ ciphertext ‖ tag)
//
// where encode is either lowercase hex or standard base64. Reading
// auto-detects which encoding was used, so blobs written by either historical
// encoder stay readable.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a passphrase and a per-user salt into a [Key].
//
// Derivation is deterministic: the same (passphrase, salt) pair always yields
// a functionally identical key. Implementations are CPU bound and perform no
// I/O.
type KeyDeriver interface {
	// Derive validates the inputs and runs the key derivation function.
	// Returns an error matching [ErrValidation] for an empty passphrase or
	// malformed salt, and [ErrKeyDerivation] if the primitive fails.
	Derive(ctx context.Context, passphrase string, salt []byte) (*Key, error)
}

// Envelope converts structured records to opaque blobs and back.
type Envelope interface {
	// Encrypt marshals record to JSON and seals it under key with a fresh
	// random nonce. Returns an error matching [ErrEncryption] on failure.
	Encrypt(record any, key *Key) (string, error)

	// Decrypt opens blob with key and unmarshals the plaintext into target
	// (a non-nil pointer). Authentication or decoding failures match
	// [ErrDecryption]; a payload that decrypts but does not unmarshal
	// matches [ErrDeserialization].
	Decrypt(blob string, key *Key, target any) error
}
