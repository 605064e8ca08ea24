// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

const testSaltHex = "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4"

func mustSalt(t *testing.T) []byte {
	t.Helper()
	salt, err := ParseSalt(testSaltHex)
	if err != nil {
		t.Fatalf("ParseSalt error: %v", err)
	}
	return salt
}

func mustDerive(t *testing.T, passphrase string, salt []byte) *Key {
	t.Helper()
	key, err := DeriveKey(context.Background(), passphrase, salt, DefaultKDFParams())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	return key
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	salt := mustSalt(t)
	codec := NewCodec(EncodingBase64)

	k1 := mustDerive(t, "correct horse battery staple", salt)
	k2 := mustDerive(t, "correct horse battery staple", salt)

	blob, err := codec.Seal([]byte("payload"), k1)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	got, err := codec.Open(blob, k2)
	if err != nil {
		t.Fatalf("expected key derived twice to be interchangeable, got %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("plaintext = %q, want %q", got, "payload")
	}
}

func TestDeriveKey_DifferentPassphraseProducesUnrelatedKey(t *testing.T) {
	salt := mustSalt(t)
	codec := NewCodec(EncodingBase64)

	k1 := mustDerive(t, "correct horse battery staple", salt)
	k2 := mustDerive(t, "wrong passphrase", salt)

	blob, err := codec.Seal([]byte("payload"), k1)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if _, err = codec.Open(blob, k2); !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption, got %v", err)
	}
}

func TestDeriveKey_DifferentSaltProducesUnrelatedKey(t *testing.T) {
	codec := NewCodec(EncodingBase64)

	k1 := mustDerive(t, "same passphrase", bytes.Repeat([]byte{0x01}, SaltSize))
	k2 := mustDerive(t, "same passphrase", bytes.Repeat([]byte{0x02}, SaltSize))

	blob, err := codec.Seal([]byte("payload"), k1)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if _, err = codec.Open(blob, k2); !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption, got %v", err)
	}
}

func TestDeriveKey_EmptyPassphrase(t *testing.T) {
	_, err := DeriveKey(context.Background(), "", mustSalt(t), DefaultKDFParams())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if errors.Is(err, ErrKeyDerivation) {
		t.Fatalf("empty passphrase must not be reported as a derivation failure")
	}
}

func TestDeriveKey_InvalidSaltLength(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 32} {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			_, err := DeriveKey(context.Background(), "pass", make([]byte, n), DefaultKDFParams())
			if !errors.Is(err, ErrKeyDerivation) {
				t.Fatalf("expected ErrKeyDerivation, got %v", err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestDeriveKey_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DeriveKey(ctx, "pass", mustSalt(t), DefaultKDFParams())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewKeyDeriver_Iterations(t *testing.T) {
	if _, err := NewKeyDeriver(KDFParams{Iterations: 1000}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for low iteration count, got %v", err)
	}

	d, err := NewKeyDeriver(KDFParams{})
	if err != nil {
		t.Fatalf("NewKeyDeriver error: %v", err)
	}
	if got := d.(*pbkdf2Deriver).iterations; got != DefaultIterations {
		t.Fatalf("iterations = %d, want %d", got, DefaultIterations)
	}
}

func TestParseSalt(t *testing.T) {
	salt, err := ParseSalt(testSaltHex)
	if err != nil {
		t.Fatalf("ParseSalt error: %v", err)
	}
	if len(salt) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(salt), SaltSize)
	}
	if EncodeSalt(salt) != testSaltHex {
		t.Fatalf("EncodeSalt = %s, want %s", EncodeSalt(salt), testSaltHex)
	}

	for _, bad := range []string{"", "zz", "a1b2", testSaltHex + "00"} {
		if _, err := ParseSalt(bad); !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseSalt(%q): expected ErrValidation, got %v", bad, err)
		}
	}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("salt lengths = %d, %d, want %d", len(s1), len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestKey_NotSerializable(t *testing.T) {
	key := mustDerive(t, "pass", mustSalt(t))

	if _, err := json.Marshal(key); !errors.Is(err, ErrKeyNotSerializable) {
		t.Fatalf("expected ErrKeyNotSerializable, got %v", err)
	}
	if _, err := key.MarshalText(); !errors.Is(err, ErrKeyNotSerializable) {
		t.Fatalf("expected ErrKeyNotSerializable, got %v", err)
	}
	if s := fmt.Sprintf("%v %#v", key, key); s != "crypto.Key(redacted) crypto.Key(redacted)" {
		t.Fatalf("unexpected formatting: %s", s)
	}
}

func TestNewKey_WipesInput(t *testing.T) {
	raw := bytes.Repeat([]byte{0x2A}, KeySize)
	if _, err := newKey(raw); err != nil {
		t.Fatalf("newKey error: %v", err)
	}
	if !bytes.Equal(raw, make([]byte, KeySize)) {
		t.Fatalf("expected raw key material to be zeroed")
	}
}

func TestNewKey_InvalidLength(t *testing.T) {
	if _, err := newKey([]byte("short")); !errors.Is(err, ErrKeyDerivation) {
		t.Fatalf("expected ErrKeyDerivation, got %v", err)
	}
}
