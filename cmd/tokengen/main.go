// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command tokengen mints HS256 bearer tokens for local development. In
// production tokens come from the auth provider that shares
// APP_TOKEN_SIGN_KEY with the server.
package main

import (
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/config"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/utils"
)

func main() {
	log := logger.NewLogger("sats-ledger-tokengen")

	cfg, err := config.GetTokenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	token, err := utils.GenerateJWTToken(cfg.Issuer, cfg.Subject, cfg.TTL, cfg.SignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating token")
	}

	fmt.Println(token.SignedString)
}
