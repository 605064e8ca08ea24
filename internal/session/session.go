// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the unlock state of a single client session and the
// one derived key that belongs to it.
//
// A Session moves between three states:
//
//	Locked --Unlock--> Deriving --ok--> Unlocked --Lock--> Locked
//	                       \--error--> Locked
//
// Every new Session starts Locked. Encrypt and Decrypt fail closed with
// [ErrLocked] unless the session is Unlocked. The key is only ever replaced
// wholesale and is never written anywhere.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/sats-ledger/internal/crypto"
	"github.com/MKhiriev/sats-ledger/internal/logger"
)

var (
	// ErrLocked is returned by key operations on a session that is not
	// Unlocked.
	ErrLocked = errors.New("session is locked")

	// ErrDerivationInProgress is returned by Unlock while another derivation
	// for the same session has not finished yet.
	ErrDerivationInProgress = errors.New("key derivation already in progress")

	// ErrUnlockAbandoned is returned by Unlock when the session was locked
	// while the derivation was still running. The derived key is discarded.
	ErrUnlockAbandoned = errors.New("unlock abandoned")
)

// State is the unlock state of a [Session].
type State int32

const (
	Locked State = iota
	Deriving
	Unlocked
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Deriving:
		return "deriving"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// Session owns the derived key of one unlocked client session.
type Session struct {
	deriver  crypto.KeyDeriver
	envelope crypto.Envelope
	logger   *logger.Logger

	mu         sync.Mutex
	state      State
	key        *crypto.Key
	generation uint64
	listeners  []func(State)

	lastActivity atomic.Int64
}

// New returns a Locked session that derives keys with deriver and seals
// records with envelope.
func New(deriver crypto.KeyDeriver, envelope crypto.Envelope, log *logger.Logger) *Session {
	s := &Session{
		deriver:  deriver,
		envelope: envelope,
		logger:   log,
		state:    Locked,
	}
	s.touch()
	return s
}

// State returns the current unlock state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnChange registers fn to be called after every state transition. fn runs
// on the goroutine that caused the transition and must not block.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// LastActivity returns the time of the last successful unlock, encrypt or
// decrypt.
func (s *Session) LastActivity() time.Time {
	return time.Unix(0, s.lastActivity.Load())
}

type deriveResult struct {
	err error
}

// Unlock derives the session key from passphrase and salt.
//
// The session is Deriving until the derivation finishes, then Unlocked on
// success or Locked on failure. A derivation cannot be cancelled once it has
// started: if ctx ends first Unlock returns ctx.Err() immediately, the
// derivation keeps running in the background and its key is thrown away.
// Unlocking an already Unlocked session re-derives and swaps the key.
func (s *Session) Unlock(ctx context.Context, passphrase string, salt []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.state == Deriving {
		s.mu.Unlock()
		return ErrDerivationInProgress
	}
	s.generation++
	gen := s.generation
	s.key = nil
	listeners := s.transitionLocked(Deriving)
	s.mu.Unlock()
	notify(listeners, Deriving)

	done := make(chan deriveResult, 1)
	go func() {
		key, err := s.deriver.Derive(context.WithoutCancel(ctx), passphrase, salt)
		done <- deriveResult{err: s.complete(gen, key, err)}
	}()

	select {
	case res := <-done:
		return res.err
	case <-ctx.Done():
		s.abandon(gen)
		return ctx.Err()
	}
}

// complete applies the outcome of derivation gen. A result that belongs to
// an abandoned or superseded derivation is dropped.
func (s *Session) complete(gen uint64, key *crypto.Key, err error) error {
	s.mu.Lock()
	if gen != s.generation || s.state != Deriving {
		s.mu.Unlock()
		return ErrUnlockAbandoned
	}

	next := Unlocked
	if err != nil {
		next = Locked
		key = nil
	}
	s.key = key
	listeners := s.transitionLocked(next)
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn().Err(err).Msg("session unlock failed")
	} else {
		s.touch()
		s.logger.Info().Msg("session unlocked")
	}
	notify(listeners, next)

	return err
}

func (s *Session) abandon(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.state != Deriving {
		s.mu.Unlock()
		return
	}
	s.generation++
	s.key = nil
	listeners := s.transitionLocked(Locked)
	s.mu.Unlock()

	s.logger.Info().Msg("session unlock abandoned")
	notify(listeners, Locked)
}

// Lock drops the key. A derivation still in flight is discarded when it
// finishes.
func (s *Session) Lock() {
	s.mu.Lock()
	s.generation++
	s.key = nil
	if s.state == Locked {
		s.mu.Unlock()
		return
	}
	listeners := s.transitionLocked(Locked)
	s.mu.Unlock()

	s.logger.Info().Msg("session locked")
	notify(listeners, Locked)
}

// Encrypt seals record with the session key.
func (s *Session) Encrypt(record any) (string, error) {
	key, err := s.currentKey()
	if err != nil {
		return "", err
	}
	s.touch()
	return s.envelope.Encrypt(record, key)
}

// Decrypt opens blob with the session key into target.
func (s *Session) Decrypt(blob string, target any) error {
	key, err := s.currentKey()
	if err != nil {
		return err
	}
	s.touch()
	return s.envelope.Decrypt(blob, key, target)
}

func (s *Session) currentKey() (*crypto.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Unlocked || s.key == nil {
		return nil, ErrLocked
	}
	return s.key, nil
}

// transitionLocked sets the new state and returns the listeners to notify.
// Callers must hold s.mu.
func (s *Session) transitionLocked(next State) []func(State) {
	prev := s.state
	s.state = next
	s.logger.Debug().Str("from", prev.String()).Str("to", next.String()).Msg("session state changed")
	return slices.Clone(s.listeners)
}

func (s *Session) touch() {
	s.lastActivity.Store(time.Now().UnixNano())
}

func notify(listeners []func(State), state State) {
	for _, fn := range listeners {
		fn(state)
	}
}
