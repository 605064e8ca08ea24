// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/sats-ledger/models"
)

type unlockDoneMsg struct {
	err error
}

// sessionLockedMsg is sent from outside the program when the session locks,
// for example after the auto-lock timeout.
type sessionLockedMsg struct{}

type listLoadedMsg struct {
	items []models.Transaction
	err   error
}

type itemSavedMsg struct {
	item models.Transaction
	err  error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
