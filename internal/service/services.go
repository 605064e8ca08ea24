// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/sats-ledger/internal/config"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/models"
)

// Services groups the server services used by the HTTP handler.
type Services struct {
	AuthService    AuthService
	SaltService    SaltService
	BlobService    BlobService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	blobService := NewBlobValidationService().Wrap(NewBlobService(storages.TransactionRepository, logger))

	return &Services{
		AuthService:    NewAuthService(cfg, logger),
		SaltService:    NewSaltService(storages.SaltRepository, logger),
		BlobService:    blobService,
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
