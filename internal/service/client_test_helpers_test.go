// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sats-ledger/internal/crypto"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/mock"
	"github.com/MKhiriev/sats-ledger/internal/session"
)

const testUserID = "alice"

var testSaltBytes = []byte{0xa1, 0xb2, 0xc3, 0xd4, 0xe5, 0xf6, 0xa1, 0xb2, 0xc3, 0xd4, 0xe5, 0xf6, 0xa1, 0xb2, 0xc3, 0xd4}

// newTestSession returns a Locked session whose deriver hands out real keys
// for the given passphrases.
func newTestSession(t *testing.T, ctrl *gomock.Controller, passphrases ...string) *session.Session {
	t.Helper()

	deriver := mock.NewMockKeyDeriver(ctrl)
	for _, pass := range passphrases {
		key, err := crypto.DeriveKey(context.Background(), pass, testSaltBytes, crypto.DefaultKDFParams())
		require.NoError(t, err)
		deriver.EXPECT().Derive(gomock.Any(), pass, gomock.Any()).Return(key, nil).AnyTimes()
	}

	return session.New(deriver, crypto.NewCodec(crypto.EncodingBase64), logger.Nop())
}

// newUnlockedSession returns a session already unlocked with passphrase.
func newUnlockedSession(t *testing.T, ctrl *gomock.Controller, passphrase string) *session.Session {
	t.Helper()

	s := newTestSession(t, ctrl, passphrase)
	require.NoError(t, s.Unlock(context.Background(), passphrase, testSaltBytes))
	return s
}

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }
