// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/session"
)

const maxAutoLockInterval = time.Minute

// AutoLock locks an Unlocked session after it has been idle for a while,
// dropping the derived key from memory.
type AutoLock struct {
	locker   Locker
	idle     time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewAutoLock returns a worker that locks locker once its last activity is
// idle or more in the past. A non-positive idle disables the worker.
func NewAutoLock(locker Locker, idle time.Duration, logger *logger.Logger) *AutoLock {
	interval := idle / 4
	if interval > maxAutoLockInterval {
		interval = maxAutoLockInterval
	}
	return &AutoLock{
		locker:   locker,
		idle:     idle,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run starts the idle check in a goroutine. It returns at once.
func (a *AutoLock) Run(ctx context.Context) {
	if a.idle <= 0 || a.interval <= 0 {
		a.logger.Info().Msg("auto-lock disabled")
		return
	}

	go a.loop(ctx)
}

func (a *AutoLock) loop(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.check()
		}
	}
}

// check locks the session when it is Unlocked and idle. It reports whether
// it did.
func (a *AutoLock) check() bool {
	if a.locker.State() != session.Unlocked {
		return false
	}

	idleFor := a.now().Sub(a.locker.LastActivity())
	if idleFor < a.idle {
		return false
	}

	a.locker.Lock()
	a.logger.Info().Dur("idle", idleFor).Msg("session auto-locked")
	return true
}
