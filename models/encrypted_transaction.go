// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Blob is the encoded ciphertext of one sealed record: nonce ‖ ciphertext,
// as hex or base64 text. Storage must keep it byte-exact.
type Blob string

// EncryptedTransaction is the only form in which a [Transaction] is stored or
// transmitted. The server never sees anything but the blob.
type EncryptedTransaction struct {
	// ID is the client-generated transaction identifier.
	ID string `json:"id"`

	// UserID is the owner of the record.
	UserID string `json:"user_id"`

	// Blob holds the sealed record.
	Blob Blob `json:"blob"`

	// Version is bumped by the server on every accepted write. A write must
	// carry the version it was based on; 0 means "new record".
	Version int64 `json:"version"`

	// Deleted marks a soft-deleted record. Its blob is kept so that other
	// devices can observe the deletion.
	Deleted bool `json:"deleted"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table holding encrypted
// transactions.
func (e EncryptedTransaction) TableName() string {
	return "transactions"
}

// PutTransactionRequest is the body of PUT /api/transactions/{id}.
type PutTransactionRequest struct {
	Blob    Blob  `json:"blob"`
	Version int64 `json:"version"`
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	// UserID is mandatory: listings never cross users.
	UserID string

	// Since, when set, returns only records updated at or after it.
	Since *time.Time

	// IncludeDeleted also returns soft-deleted records.
	IncludeDeleted bool
}

// TransactionsResponse is the body of GET /api/transactions.
type TransactionsResponse struct {
	Transactions []EncryptedTransaction `json:"transactions"`
	Length       int                    `json:"length"`
}
