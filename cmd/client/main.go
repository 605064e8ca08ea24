// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sats-ledger/internal/adapter"
	"github.com/MKhiriev/sats-ledger/internal/client"
	"github.com/MKhiriev/sats-ledger/internal/config"
	"github.com/MKhiriev/sats-ledger/internal/crypto"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/internal/tui"
	"github.com/MKhiriev/sats-ledger/internal/utils"
	"github.com/MKhiriev/sats-ledger/internal/workers"
	"github.com/MKhiriev/sats-ledger/models"
)

const role = "sats-ledger-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	userID, err := utils.ParseSubjectUnverified(cfg.Adapter.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("token carries no user id")
	}

	deriver, err := crypto.NewKeyDeriver(crypto.KDFParams{Iterations: cfg.App.KDFIterations})
	if err != nil {
		log.Fatal().Err(err).Msg("create key deriver")
	}
	encoding, err := crypto.ParseEncoding(cfg.App.BlobEncoding)
	if err != nil {
		log.Fatal().Err(err).Msg("parse blob encoding")
	}
	sess := session.New(deriver, crypto.NewCodec(encoding), log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorages, err := store.NewClientStorages(ctx, cfg.Local, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorages.Close()

	services := service.NewClientServices(userID, localStorages, serverAdapter, sess, cfg.Workers)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}
	sess.OnChange(ui.OnSessionChange)

	app, err := client.NewApp(
		services,
		ui,
		workers.NewWorkers(workers.NewAutoLock(sess, cfg.Workers.AutoLockAfter, log)),
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
