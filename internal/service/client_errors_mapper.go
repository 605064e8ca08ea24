// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/sats-ledger/internal/adapter"
	"github.com/MKhiriev/sats-ledger/internal/app"
	"github.com/MKhiriev/sats-ledger/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// or store sentinel.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrServerUnreachable):
		return fmt.Errorf("%w: %w", ErrOffline, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgNoUserIDProvided:
			return ErrValidationNoUserID
		case app.MsgVersionIsNotSpecified:
			return ErrVersionIsNotSpecified
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgSaltNotFound:
			return store.ErrSaltNotFound
		case app.MsgTransactionNotFound:
			return store.ErrTransactionNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgSaltAlreadyExists:
			return store.ErrSaltAlreadyExists
		case app.MsgVersionConflict:
			return store.ErrVersionConflict
		}
	}

	return err
}

// extractBody extracts the body from a message of the form
// "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
