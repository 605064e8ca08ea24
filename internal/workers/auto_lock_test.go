// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/session"
)

type fakeLocker struct {
	mu           sync.Mutex
	state        session.State
	lastActivity time.Time
	locks        int
}

func (f *fakeLocker) State() session.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeLocker) LastActivity() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastActivity
}

func (f *fakeLocker) Lock() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = session.Locked
	f.locks++
}

func (f *fakeLocker) lockCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locks
}

func TestNewAutoLock_Interval(t *testing.T) {
	tests := []struct {
		name string
		idle time.Duration
		want time.Duration
	}{
		{name: "quarter of idle", idle: 2 * time.Minute, want: 30 * time.Second},
		{name: "capped", idle: time.Hour, want: maxAutoLockInterval},
		{name: "disabled", idle: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAutoLock(&fakeLocker{}, tt.idle, logger.Nop())
			assert.Equal(t, tt.want, a.interval)
		})
	}
}

func TestAutoLock_Check(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		state      session.State
		idleFor    time.Duration
		wantLocked bool
	}{
		{name: "unlocked and idle", state: session.Unlocked, idleFor: 15 * time.Minute, wantLocked: true},
		{name: "unlocked and active", state: session.Unlocked, idleFor: time.Minute, wantLocked: false},
		{name: "already locked", state: session.Locked, idleFor: time.Hour, wantLocked: false},
		{name: "deriving", state: session.Deriving, idleFor: time.Hour, wantLocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locker := &fakeLocker{state: tt.state, lastActivity: now.Add(-tt.idleFor)}
			a := NewAutoLock(locker, 15*time.Minute, logger.Nop())
			a.now = func() time.Time { return now }

			assert.Equal(t, tt.wantLocked, a.check())
			if tt.wantLocked {
				assert.Equal(t, 1, locker.lockCount())
				assert.Equal(t, session.Locked, locker.State())
			} else {
				assert.Zero(t, locker.lockCount())
			}
		})
	}
}

func TestAutoLock_RunLocksIdleSession(t *testing.T) {
	locker := &fakeLocker{state: session.Unlocked, lastActivity: time.Now().Add(-time.Hour)}
	a := NewAutoLock(locker, 40*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Run(ctx)

	assert.Eventually(t, func() bool { return locker.lockCount() == 1 }, time.Second, 5*time.Millisecond)
}

func TestAutoLock_RunDisabled(t *testing.T) {
	locker := &fakeLocker{state: session.Unlocked, lastActivity: time.Now().Add(-time.Hour)}
	a := NewAutoLock(locker, 0, logger.Nop())

	a.Run(context.Background())
	time.Sleep(20 * time.Millisecond)

	assert.Zero(t, locker.lockCount())
}

func TestAutoLock_WithRealSession(t *testing.T) {
	sess := session.New(nil, nil, logger.Nop())
	a := NewAutoLock(sess, time.Minute, logger.Nop())
	a.now = func() time.Time { return time.Now().Add(time.Hour) }

	// A fresh session is Locked, so there is nothing to do.
	assert.False(t, a.check())
	assert.Equal(t, session.Locked, sess.State())
}
