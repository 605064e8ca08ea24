// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request values before they reach the store.
//
// The server cannot look inside a blob, so validation is structural: ids are
// UUIDs, salts are 16 bytes of hex, blobs decode as hex or base64 and are
// long enough to hold a nonce and an authentication tag. Validate accepts an
// optional list of field names to check only a subset of the rules.
package validators

import "context"

// Validator validates obj, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
