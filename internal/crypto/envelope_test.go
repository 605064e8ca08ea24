// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Price     float64   `json:"price"`
	Fee       float64   `json:"fee,omitempty"`
	Wallet    string    `json:"wallet,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func fixedKey(t *testing.T, b byte) *Key {
	t.Helper()
	key, err := newKey(bytes.Repeat([]byte{b}, KeySize))
	require.NoError(t, err)
	return key
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestCodec_ExampleScenario(t *testing.T) {
	salt := mustSalt(t)
	key := mustDerive(t, "correct horse battery staple", salt)
	codec := NewCodec(EncodingBase64)

	input := map[string]any{"type": "buy", "amount": 0.5, "price": float64(50000)}

	blob, err := codec.Encrypt(input, key)
	require.NoError(t, err)
	require.NotEmpty(t, blob)
	assert.NotContains(t, blob, "buy")
	assert.NotEqual(t, `{"amount":0.5,"price":50000,"type":"buy"}`, blob)

	var got map[string]any
	require.NoError(t, codec.Decrypt(blob, key, &got))
	assert.Equal(t, input, got)

	wrongKey := mustDerive(t, "wrong passphrase", salt)
	var ignored map[string]any
	err = codec.Decrypt(blob, wrongKey, &ignored)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCodec_RoundTrip(t *testing.T) {
	for _, enc := range []Encoding{EncodingBase64, EncodingHex} {
		t.Run(string(enc), func(t *testing.T) {
			codec := NewCodec(enc)
			key := fixedKey(t, 0x11)

			want := testRecord{
				Type:      "sell",
				Amount:    0.125,
				Price:     64250.5,
				Fee:       1.25,
				Wallet:    "cold storage",
				Tags:      []string{"dca", "2024"},
				Notes:     "заметка ✓",
				Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			}

			blob, err := codec.Encrypt(want, key)
			require.NoError(t, err)
			assert.Equal(t, enc, DetectEncoding(blob))

			var got testRecord
			require.NoError(t, codec.Decrypt(blob, key, &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestCodec_NonDeterministicCiphertext(t *testing.T) {
	codec := NewCodec(EncodingBase64)
	key := fixedKey(t, 0x22)
	record := testRecord{Type: "buy", Amount: 1}

	b1, err := codec.Encrypt(record, key)
	require.NoError(t, err)
	b2, err := codec.Encrypt(record, key)
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2)

	raw1, err := DecodeBlob(b1)
	require.NoError(t, err)
	raw2, err := DecodeBlob(b2)
	require.NoError(t, err)
	assert.NotEqual(t, raw1[:NonceSize], raw2[:NonceSize], "nonces must differ")

	for _, blob := range []string{b1, b2} {
		var got testRecord
		require.NoError(t, codec.Decrypt(blob, key, &got))
		assert.Equal(t, record, got)
	}
}

func TestCodec_WrongKeyRejected(t *testing.T) {
	codec := NewCodec(EncodingHex)

	blob, err := codec.Encrypt(testRecord{Type: "buy"}, fixedKey(t, 0x01))
	require.NoError(t, err)

	var got testRecord
	err = codec.Decrypt(blob, fixedKey(t, 0x02), &got)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.NotErrorIs(t, err, ErrDeserialization)
	assert.Equal(t, testRecord{}, got)
}

func TestCodec_TamperDetection(t *testing.T) {
	codec := NewCodec(EncodingBase64)
	key := fixedKey(t, 0x33)

	blob, err := codec.Encrypt(testRecord{Type: "buy", Amount: 2}, key)
	require.NoError(t, err)
	raw, err := DecodeBlob(blob)
	require.NoError(t, err)

	for i := range raw {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01

		for _, enc := range []Encoding{EncodingBase64, EncodingHex} {
			var got testRecord
			err := codec.Decrypt(enc.Encode(tampered), key, &got)
			require.ErrorIs(t, err, ErrDecryption, "byte %d (%s)", i, enc)
		}
	}
}

func TestCodec_TextTamperDetection(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	codec := NewCodec(EncodingBase64)
	key := fixedKey(t, 0x35)

	blob, err := codec.Encrypt(testRecord{Type: "sell", Amount: 0.25}, key)
	require.NoError(t, err)

	body := strings.TrimRight(blob, "=")
	for i := range len(body) {
		pos := strings.IndexByte(alphabet, body[i])
		require.GreaterOrEqual(t, pos, 0)
		for _, delta := range []int{1, 2, 3} {
			b := []byte(blob)
			b[i] = alphabet[(pos+delta)%len(alphabet)]

			var got testRecord
			err := codec.Decrypt(string(b), key, &got)
			require.ErrorIs(t, err, ErrDecryption, "char %d delta %d", i, delta)
		}
	}

	hexBlob := EncodingHex.Encode(mustDecode(t, blob))
	for i := range len(hexBlob) {
		b := []byte(hexBlob)
		if b[i] == '0' {
			b[i] = '1'
		} else {
			b[i] = '0'
		}

		var got testRecord
		err := codec.Decrypt(string(b), key, &got)
		require.ErrorIs(t, err, ErrDecryption, "hex char %d", i)
	}
}

func mustDecode(t *testing.T, blob string) []byte {
	t.Helper()
	raw, err := DecodeBlob(blob)
	require.NoError(t, err)
	return raw
}

func TestCodec_DualEncodingDecode(t *testing.T) {
	key := fixedKey(t, 0x44)
	record := testRecord{Type: "transfer", Amount: 0.01}

	blob, err := NewCodec(EncodingBase64).Encrypt(record, key)
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	hexBlob := hex.EncodeToString(raw)
	upperHexBlob := strings.ToUpper(hex.EncodeToString(raw))
	rawB64Blob := base64.RawStdEncoding.EncodeToString(raw)

	// any codec reads every encoding, regardless of what it writes
	reader := NewCodec(EncodingHex)
	for _, b := range []string{blob, hexBlob, upperHexBlob, rawB64Blob} {
		var got testRecord
		require.NoError(t, reader.Decrypt(b, key, &got))
		assert.Equal(t, record, got)
	}
}

func TestCodec_DeserializationError(t *testing.T) {
	codec := NewCodec(EncodingBase64)
	key := fixedKey(t, 0x55)

	blob, err := codec.Seal([]byte("definitely not json"), key)
	require.NoError(t, err)

	var got testRecord
	err = codec.Decrypt(blob, key, &got)
	assert.ErrorIs(t, err, ErrDeserialization)
	assert.NotErrorIs(t, err, ErrDecryption)
}

func TestCodec_MalformedBlobs(t *testing.T) {
	codec := NewCodec(EncodingBase64)
	key := fixedKey(t, 0x66)

	tests := []struct {
		name string
		blob string
	}{
		{name: "empty", blob: ""},
		{name: "not base64", blob: "!!!not-a-blob!!!"},
		{name: "shorter than nonce", blob: hex.EncodeToString(make([]byte, NonceSize-1))},
		{name: "nonce without tag", blob: hex.EncodeToString(make([]byte, NonceSize+4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got testRecord
			assert.ErrorIs(t, codec.Decrypt(tt.blob, key, &got), ErrDecryption)
		})
	}
}

func TestCodec_NilKey(t *testing.T) {
	codec := NewCodec(EncodingBase64)

	_, err := codec.Encrypt(testRecord{}, nil)
	assert.ErrorIs(t, err, ErrEncryption)

	var got testRecord
	assert.ErrorIs(t, codec.Decrypt("AAAA", nil, &got), ErrDecryption)
}

func TestCodec_UnmarshalableRecord(t *testing.T) {
	codec := NewCodec(EncodingBase64)

	_, err := codec.Encrypt(map[string]any{"bad": make(chan int)}, fixedKey(t, 0x77))
	assert.ErrorIs(t, err, ErrEncryption)
}

func TestCodec_NonceSourceFailure(t *testing.T) {
	codec := NewCodec(EncodingBase64)
	codec.random = failingReader{}

	_, err := codec.Encrypt(testRecord{}, fixedKey(t, 0x78))
	assert.ErrorIs(t, err, ErrEncryption)
}

func TestNewCodec_DefaultsToBase64(t *testing.T) {
	assert.Equal(t, EncodingBase64, NewCodec("").Encoding())
	assert.Equal(t, EncodingBase64, NewCodec("rot13").Encoding())
	assert.Equal(t, EncodingHex, NewCodec(EncodingHex).Encoding())
}
