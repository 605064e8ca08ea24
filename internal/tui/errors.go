// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/internal/store"
)

var errInvalidFormValue = errors.New("invalid value")

// humanizeError turns a service error into the line shown to the user.
// Unknown errors are shown as they are.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPassphrase):
		return "Wrong passphrase"
	case errors.Is(err, service.ErrSaltMismatch):
		return "The server holds a different salt than this device. Unlock refused"
	case errors.Is(err, service.ErrOffline):
		return "Server is unreachable. Changes cannot be saved while offline"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Access token is expired or invalid"
	case errors.Is(err, store.ErrVersionConflict):
		return "The record was changed on another device. Reload and try again"
	case errors.Is(err, store.ErrTransactionNotFound):
		return "Record not found"
	case errors.Is(err, session.ErrLocked):
		return "Session is locked"
	case errors.Is(err, session.ErrDerivationInProgress):
		return "Unlock is already in progress"
	}

	return err.Error()
}
