// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/workers"
)

var errMissingDependency = errors.New("client app: missing dependency")

type App struct {
	vault   service.ClientVaultService
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || services.VaultService == nil || ui == nil || workers == nil {
		return nil, errMissingDependency
	}

	return &App{
		vault:   services.VaultService,
		ui:      ui,
		workers: workers,
		logger:  logger,
	}, nil
}

// Run starts the workers and the UI. Whatever way the UI ends, the workers
// are stopped and the session is locked.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)
	defer func() {
		a.vault.Lock()
		a.logger.Info().Msg("session locked on exit")
	}()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
