// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/sats-ledger/internal/adapter"
	"github.com/MKhiriev/sats-ledger/internal/config"
	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/internal/utils"
)

// ClientServices groups the services used by the terminal client. All of
// them act for the single user the adapter's token was issued to.
type ClientServices struct {
	SaltService        ClientSaltService
	VaultService       ClientVaultService
	TransactionService ClientTransactionService
}

func NewClientServices(
	userID string,
	localStorages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	sess *session.Session,
	cfg config.Workers,
) *ClientServices {
	saltSvc := NewClientSaltService(userID, localStorages.SaltRepository, serverAdapter)

	return &ClientServices{
		SaltService:  saltSvc,
		VaultService: NewClientVaultService(userID, sess, saltSvc, localStorages.TransactionRepository),
		TransactionService: NewClientTransactionService(
			userID,
			localStorages.TransactionRepository,
			serverAdapter,
			sess,
			utils.NewUUIDGenerator(),
			cfg.DecryptConcurrency,
		),
	}
}
