// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
	ErrValidationNoUserID      = errors.New("no user ID was given")

	// ErrNoUserID is returned by client services before a token with a
	// subject has been configured.
	ErrNoUserID = errors.New("user id is unknown")

	// ErrOffline is returned by client writes while the server cannot be
	// reached. Reads fall back to the local cache instead.
	ErrOffline = errors.New("server is unreachable")

	// ErrSaltMismatch is returned when the server's salt differs from the
	// one cached locally. Keys derived from either would not open the
	// other's blobs.
	ErrSaltMismatch = errors.New("server salt differs from cached salt")
)

var (
	// ErrWrongPassphrase is returned by Unlock when the derived key cannot
	// open a record sealed earlier.
	ErrWrongPassphrase = errors.New("wrong passphrase")
)
