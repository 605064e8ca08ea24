// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are written as bare JSON numbers so that records sealed by
	// other clients ({"amount":0.5}) decode unchanged.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType is the kind of a Bitcoin transaction record.
type TransactionType string

const (
	// Buy is a purchase of bitcoin for fiat.
	Buy TransactionType = "buy"

	// Sell is a sale of bitcoin for fiat.
	Sell TransactionType = "sell"

	// Transfer moves bitcoin between the user's own wallets.
	Transfer TransactionType = "transfer"
)

// TransactionTypes lists every known [TransactionType] in display order.
var TransactionTypes = []TransactionType{Buy, Sell, Transfer}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Buy, Sell, Transfer:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNonPositiveAmount      = errors.New("amount must be positive")
	ErrNegativePrice          = errors.New("price must not be negative")
	ErrNegativeFee            = errors.New("fee must not be negative")
)

// Transaction is the plaintext record the user edits. It only ever exists in
// client memory: before it is stored or sent anywhere it is sealed into an
// [EncryptedTransaction].
type Transaction struct {
	// ID is the client-generated identifier. It is not part of the sealed
	// payload; the storage layer keys the blob by it.
	ID string `json:"-"`

	// Version is the server version of the blob this record was read from.
	// Updates and deletes must send it back. Not sealed either.
	Version int64 `json:"-"`

	// Type is buy, sell or transfer.
	Type TransactionType `json:"type"`

	// Amount is the quantity of bitcoin.
	Amount decimal.Decimal `json:"amount"`

	// Price is the fiat price per bitcoin at the time of the transaction.
	Price decimal.Decimal `json:"price"`

	// Fee is the fee paid, in fiat.
	Fee decimal.Decimal `json:"fee"`

	Wallet string   `json:"wallet,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Notes  string   `json:"notes,omitempty"`

	// Timestamp is when the transaction happened.
	Timestamp time.Time `json:"timestamp"`
}

// Total returns Amount * Price + Fee.
func (t Transaction) Total() decimal.Decimal {
	return t.Amount.Mul(t.Price).Add(t.Fee)
}

// Validate checks the fields a user can get wrong in the input form.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionType, t.Type)
	}
	if !t.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if t.Price.IsNegative() {
		return ErrNegativePrice
	}
	if t.Fee.IsNegative() {
		return ErrNegativeFee
	}
	return nil
}
