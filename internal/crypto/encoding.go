// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Encoding names a text representation of raw blob bytes.
type Encoding string

const (
	// EncodingBase64 is standard, padded base64. Default for new writes.
	EncodingBase64 Encoding = "base64"

	// EncodingHex is lowercase hex, two ASCII digits per byte.
	EncodingHex Encoding = "hex"
)

var (
	errUnknownEncoding  = errors.New("unknown blob encoding")
	errEmptyBlob        = errors.New("empty blob")
	errNonCanonicalBlob = errors.New("blob contains line breaks")

	hexBlobPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)
)

// ParseEncoding maps a configuration value to an [Encoding]. The empty string
// selects [EncodingBase64].
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(s))) {
	case "", EncodingBase64:
		return EncodingBase64, nil
	case EncodingHex:
		return EncodingHex, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownEncoding, s)
	}
}

// Encode renders raw blob bytes as text.
func (e Encoding) Encode(raw []byte) string {
	if e == EncodingHex {
		return hex.EncodeToString(raw)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// DetectEncoding reports which encoding produced blob. Blobs made only of hex
// digits are hex; everything else is treated as base64. Odd-length hex is
// left for the hex decoder to reject.
func DetectEncoding(blob string) Encoding {
	if hexBlobPattern.MatchString(blob) {
		return EncodingHex
	}
	return EncodingBase64
}

// DecodeBlob turns blob text back into raw bytes using the detected encoding.
// Base64 input is accepted with or without padding, but must be canonical:
// non-zero trailing bits and embedded line breaks are rejected.
func DecodeBlob(blob string) ([]byte, error) {
	if blob == "" {
		return nil, errEmptyBlob
	}
	if strings.ContainsAny(blob, "\r\n") {
		return nil, errNonCanonicalBlob
	}

	if DetectEncoding(blob) == EncodingHex {
		raw, err := hex.DecodeString(blob)
		if err != nil {
			return nil, fmt.Errorf("decode hex blob: %w", err)
		}
		return raw, nil
	}

	raw, err := base64.StdEncoding.Strict().DecodeString(blob)
	if err == nil {
		return raw, nil
	}
	raw, rawErr := base64.RawStdEncoding.Strict().DecodeString(blob)
	if rawErr != nil {
		return nil, fmt.Errorf("decode base64 blob: %w", err)
	}
	return raw, nil
}
