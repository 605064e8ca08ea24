// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sats-ledger/internal/config"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/utils"
)

func TestAuthService_ParseToken(t *testing.T) {
	cfg := config.App{TokenSignKey: "secret", TokenIssuer: "auth.example"}
	svc := NewAuthService(cfg, logger.Nop())

	token, err := utils.GenerateJWTToken("auth.example", "alice", time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.UserID)
}

func TestAuthService_ParseToken_Rejected(t *testing.T) {
	cfg := config.App{TokenSignKey: "secret", TokenIssuer: "auth.example"}
	svc := NewAuthService(cfg, logger.Nop())

	wrongKey, err := utils.GenerateJWTToken("auth.example", "alice", time.Hour, "other")
	require.NoError(t, err)
	wrongIssuer, err := utils.GenerateJWTToken("someone.else", "alice", time.Hour, "secret")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not.a.token",
		"empty":        "",
		"wrong key":    wrongKey.SignedString,
		"wrong issuer": wrongIssuer.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
