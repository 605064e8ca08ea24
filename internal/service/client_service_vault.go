// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/crypto"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/models"
)

type clientVaultService struct {
	userID  string
	session *session.Session
	salts   ClientSaltService
	localTx store.LocalTransactionRepository
}

func NewClientVaultService(userID string, sess *session.Session, salts ClientSaltService, localTx store.LocalTransactionRepository) ClientVaultService {
	return &clientVaultService{
		userID:  userID,
		session: sess,
		salts:   salts,
		localTx: localTx,
	}
}

func (v *clientVaultService) Unlock(ctx context.Context, passphrase string) error {
	salt, err := v.salts.EnsureSalt(ctx)
	if err != nil {
		return fmt.Errorf("provision salt: %w", err)
	}

	if err = v.session.Unlock(ctx, passphrase, salt); err != nil {
		return err
	}

	return v.verify(ctx)
}

// verifyProbes is how many cached records verify tries before it decides the
// passphrase is wrong.
const verifyProbes = 3

// verify opens cached records with the fresh key. An empty cache proves
// nothing and is accepted.
func (v *clientVaultService) verify(ctx context.Context) error {
	cached, err := v.localTx.ListTransactions(ctx, v.userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "clientVaultService.verify").Msg("cannot read cache to verify passphrase")
		return nil
	}

	for i, item := range cached {
		if i == verifyProbes {
			break
		}
		var probe models.Transaction
		if err = v.session.Decrypt(string(item.Blob), &probe); !errors.Is(err, crypto.ErrDecryption) {
			return nil
		}
	}
	if len(cached) == 0 {
		return nil
	}

	v.session.Lock()
	return ErrWrongPassphrase
}

func (v *clientVaultService) Lock() {
	v.session.Lock()
}

func (v *clientVaultService) State() session.State {
	return v.session.State()
}
