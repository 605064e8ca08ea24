// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

// defaultTokenIssuer is put in the "iss" claim when no issuer is configured.
// A server without APP_TOKEN_ISSUER accepts any issuer.
const defaultTokenIssuer = "sats-ledger"

// TokenConfig is the configuration of the development token tool.
type TokenConfig struct {
	// SignKey and Issuer come from APP_TOKEN_SIGN_KEY / APP_TOKEN_ISSUER
	// unless overridden by flags.
	SignKey string
	Issuer  string

	// Subject is the user id the token is minted for.
	Subject string

	// TTL is the token lifetime.
	TTL time.Duration
}

// GetTokenConfig reads the token signing settings from the environment and
// the tool's own flags (-sub, -ttl, -key, -issuer).
func GetTokenConfig() (*TokenConfig, error) {
	return loadTokenConfig(os.Args[1:])
}

func loadTokenConfig(args []string) (*TokenConfig, error) {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := &TokenConfig{
		SignKey: envCfg.App.TokenSignKey,
		Issuer:  envCfg.App.TokenIssuer,
		TTL:     24 * time.Hour,
	}
	if cfg.Issuer == "" {
		cfg.Issuer = defaultTokenIssuer
	}

	fs := flag.NewFlagSet("tokengen", flag.ContinueOnError)
	fs.StringVar(&cfg.Subject, "sub", "", "User id (token subject)")
	fs.DurationVar(&cfg.TTL, "ttl", cfg.TTL, "Token lifetime")
	fs.StringVar(&cfg.SignKey, "key", cfg.SignKey, "HS256 signing key")
	fs.StringVar(&cfg.Issuer, "issuer", cfg.Issuer, "Token issuer")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var errs error
	if cfg.SignKey == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: signing key is required", ErrInvalidAppConfigs))
	}
	if cfg.Subject == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: -sub is required", ErrInvalidAppConfigs))
	}
	if cfg.TTL <= 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: -ttl must be positive", ErrInvalidAppConfigs))
	}

	return cfg, errs
}
