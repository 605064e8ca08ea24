// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Salt is the per-user KDF salt. It is created once and never changes:
// replacing it would make every existing blob of the user undecryptable.
type Salt struct {
	UserID string `json:"-"`

	// Salt is the 16-byte salt as lowercase hex.
	Salt string `json:"salt"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table holding salts.
func (s Salt) TableName() string {
	return "salts"
}
