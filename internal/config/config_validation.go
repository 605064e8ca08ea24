// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/crypto"
)

func (cfg *ServerConfig) validate() error {
	var errs error

	if cfg.DB.DSN == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = errors.Join(errs, ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs))
	}

	return errs
}

func (cfg *ClientConfig) validate() error {
	var errs error

	if cfg.Local.Path == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: local cache path is empty", ErrInvalidStorageConfigs))
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = errors.Join(errs, ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Token == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: token is empty", ErrInvalidAdapterConfigs))
	}

	if cfg.App.KDFIterations < crypto.MinIterations {
		errs = errors.Join(errs, fmt.Errorf("%w: kdf iterations %d below %d", ErrInvalidAppConfigs, cfg.App.KDFIterations, crypto.MinIterations))
	}
	if _, err := crypto.ParseEncoding(cfg.App.BlobEncoding); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
	}

	if cfg.Workers.DecryptConcurrency < 1 || cfg.Workers.AutoLockAfter < 0 {
		errs = errors.Join(errs, ErrInvalidWorkerConfigs)
	}

	return errs
}
