// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/internal/store"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrong passphrase", err: service.ErrWrongPassphrase, want: "Wrong passphrase"},
		{name: "wrapped offline", err: fmt.Errorf("%w: dial tcp", service.ErrOffline), want: "Server is unreachable. Changes cannot be saved while offline"},
		{name: "conflict", err: store.ErrVersionConflict, want: "The record was changed on another device. Reload and try again"},
		{name: "not found", err: store.ErrTransactionNotFound, want: "Record not found"},
		{name: "locked", err: session.ErrLocked, want: "Session is locked"},
		{name: "unknown", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "0.5 BTC", formatBTC(decimal.RequireFromString("0.50000000")))
	assert.Equal(t, "0.00000001 BTC", formatBTC(decimal.RequireFromString("0.000000014")))
	assert.Equal(t, "62000.00", formatFiat(decimal.RequireFromString("62000")))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "-", valueOrDash("  "))
}
