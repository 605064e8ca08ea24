// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the interactive ledger client.
//
// It starts the background workers, hands the terminal to the UI and locks
// the session when the UI exits, so no derived key outlives the process's
// interactive part.
package client
