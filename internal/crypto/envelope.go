// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errNilKey = errors.New("nil key")

// Codec is the AES-256-GCM implementation of [Envelope]. New blobs are
// written in the codec's encoding; reading accepts both hex and base64.
type Codec struct {
	encoding Encoding
	random   io.Reader
}

// NewCodec returns a [Codec] that writes blobs in enc. An unknown or empty
// encoding falls back to [EncodingBase64].
func NewCodec(enc Encoding) *Codec {
	if enc != EncodingHex {
		enc = EncodingBase64
	}
	return &Codec{encoding: enc, random: rand.Reader}
}

// Encoding returns the encoding used for new blobs.
func (c *Codec) Encoding() Encoding {
	return c.encoding
}

// Seal encrypts plaintext under key with a fresh random nonce and returns
// the encoded blob nonce ‖ ciphertext. The nonce is never reused: every call
// draws a new one from the CSPRNG.
func (c *Codec) Seal(plaintext []byte, key *Key) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, errNilKey)
	}

	nonce := make([]byte, key.aead.NonceSize(), key.aead.NonceSize()+len(plaintext)+key.aead.Overhead())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	// Seal appends to nonce, producing nonce ‖ ciphertext ‖ tag in one buffer.
	blob := key.aead.Seal(nonce, nonce, plaintext, nil)
	return c.encoding.Encode(blob), nil
}

// Open decodes blob (hex or base64), splits off the nonce and authenticates
// and decrypts the remainder with key.
func (c *Codec) Open(blob string, key *Key) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, errNilKey)
	}

	raw, err := DecodeBlob(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	nonceSize := key.aead.NonceSize()
	if len(raw) < nonceSize+key.aead.Overhead() {
		return nil, fmt.Errorf("%w: blob too short (%d bytes)", ErrDecryption, len(raw))
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := key.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// wrong key and tampered data fail the same way
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

// Encrypt implements [Envelope].
func (c *Codec) Encrypt(record any, key *Key) (string, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("%w: marshal record: %w", ErrEncryption, err)
	}
	defer clear(plaintext)

	return c.Seal(plaintext, key)
}

// Decrypt implements [Envelope].
func (c *Codec) Decrypt(blob string, key *Key, target any) error {
	plaintext, err := c.Open(blob, key)
	if err != nil {
		return err
	}
	defer clear(plaintext)

	if err = json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: unmarshal record: %w", ErrDeserialization, err)
	}
	return nil
}
