// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the ledger client.
//
// The interface is a single bubbletea model that switches between four
// screens: unlock, list, detail and the transaction form. Every service call
// runs as a [tea.Cmd] and reports back with a message, so the model itself
// never blocks.
package tui
