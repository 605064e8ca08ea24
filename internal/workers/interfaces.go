// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs.
//
// A [Worker] starts its own goroutines in Run and stops them when the
// context passed to Run is done. [Workers] starts a group of them in order.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/sats-ledger/internal/session"
)

// Worker is a background job.
type Worker interface {
	Run(ctx context.Context)
}

// Locker is the part of a session the auto-lock worker watches.
type Locker interface {
	State() session.State
	LastActivity() time.Time
	Lock()
}
