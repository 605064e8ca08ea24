// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/sats-ledger/internal/adapter"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/internal/utils"
	"github.com/MKhiriev/sats-ledger/models"
)

// Sealer seals and opens records with the current session key.
// *session.Session implements it.
type Sealer interface {
	Encrypt(record any) (string, error)
	Decrypt(blob string, target any) error
}

type clientTransactionService struct {
	userID  string
	localTx store.LocalTransactionRepository
	adapter adapter.ServerAdapter
	sealer  Sealer
	ids     utils.IDGenerator

	decryptConcurrency int
}

func NewClientTransactionService(
	userID string,
	localTx store.LocalTransactionRepository,
	serverAdapter adapter.ServerAdapter,
	sealer Sealer,
	ids utils.IDGenerator,
	decryptConcurrency int,
) ClientTransactionService {
	if decryptConcurrency < 1 {
		decryptConcurrency = 1
	}
	return &clientTransactionService{
		userID:             userID,
		localTx:            localTx,
		adapter:            serverAdapter,
		sealer:             sealer,
		ids:                ids,
		decryptConcurrency: decryptConcurrency,
	}
}

func (t *clientTransactionService) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tx.ID = t.ids.Generate()
	tx.Version = 0

	return t.upload(ctx, tx)
}

func (t *clientTransactionService) Update(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if !utils.ValidID(tx.ID) || tx.Version <= 0 {
		return models.Transaction{}, ErrInvalidDataProvided
	}
	if err := tx.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return t.upload(ctx, tx)
}

// upload seals tx and writes it at tx.Version. On success the cache holds the
// new blob and the returned record carries the new version.
func (t *clientTransactionService) upload(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	blob, err := t.sealer.Encrypt(tx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("seal transaction: %w", err)
	}

	saved, err := t.adapter.PutTransaction(ctx, tx.ID, models.PutTransactionRequest{
		Blob:    models.Blob(blob),
		Version: tx.Version,
	})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("upload transaction %s: %w", tx.ID, mapAdapterError(err))
	}

	t.cache(ctx, saved)

	tx.Version = saved.Version
	return tx, nil
}

func (t *clientTransactionService) Delete(ctx context.Context, id string, version int64) error {
	if !utils.ValidID(id) || version <= 0 {
		return ErrInvalidDataProvided
	}

	deleted, err := t.adapter.DeleteTransaction(ctx, id, version)
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, mapAdapterError(err))
	}

	t.cache(ctx, deleted)
	return nil
}

func (t *clientTransactionService) Get(ctx context.Context, id string) (models.Transaction, error) {
	if !utils.ValidID(id) {
		return models.Transaction{}, ErrInvalidDataProvided
	}

	item, err := t.adapter.GetTransaction(ctx, id)
	if err != nil {
		err = mapAdapterError(err)
		if !errors.Is(err, ErrOffline) {
			return models.Transaction{}, err
		}

		logger.FromContext(ctx).Warn().Err(err).Str("func", "clientTransactionService.Get").Msg("server unreachable, reading from cache")
		if item, err = t.localTx.GetTransaction(ctx, t.userID, id); err != nil {
			return models.Transaction{}, err
		}
		if item.Deleted {
			return models.Transaction{}, store.ErrTransactionNotFound
		}
	} else {
		t.cache(ctx, item)
	}

	return t.open(item)
}

func (t *clientTransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	if t.userID == "" {
		return nil, ErrNoUserID
	}

	if err := t.refresh(ctx); err != nil {
		if !errors.Is(err, ErrOffline) {
			return nil, err
		}
		logger.FromContext(ctx).Warn().Err(err).Str("func", "clientTransactionService.List").Msg("server unreachable, listing cached transactions")
	}

	items, err := t.localTx.ListTransactions(ctx, t.userID)
	if err != nil {
		return nil, fmt.Errorf("list cached transactions: %w", err)
	}

	return t.openAll(ctx, items)
}

// refresh pulls every record changed since the newest cached one, deletions
// included, into the cache.
func (t *clientTransactionService) refresh(ctx context.Context) error {
	since, err := t.localTx.LastUpdatedAt(ctx, t.userID)
	if err != nil {
		return fmt.Errorf("read cache watermark: %w", err)
	}

	changed, err := t.adapter.ListTransactions(ctx, since, true)
	if err != nil {
		return mapAdapterError(err)
	}

	for i := range changed {
		changed[i].UserID = t.userID
	}
	if err = t.localTx.SaveTransactions(ctx, changed...); err != nil {
		return fmt.Errorf("cache downloaded transactions: %w", err)
	}

	logger.FromContext(ctx).Debug().Int("changed", len(changed)).Msg("transaction cache refreshed")
	return nil
}

// openAll decrypts items with at most decryptConcurrency workers. A record
// that fails does not stop the others; the failures are returned as a
// [*BatchError] next to the records that opened, in cache order.
func (t *clientTransactionService) openAll(ctx context.Context, items []models.EncryptedTransaction) ([]models.Transaction, error) {
	opened := make([]models.Transaction, len(items))
	errs := make([]error, len(items))

	var g errgroup.Group
	g.SetLimit(t.decryptConcurrency)
	for i, item := range items {
		g.Go(func() error {
			opened[i], errs[i] = t.open(item)
			return nil
		})
	}
	_ = g.Wait()

	result := make([]models.Transaction, 0, len(items))
	var batchErr *BatchError
	for i := range items {
		if errs[i] != nil {
			if batchErr == nil {
				batchErr = &BatchError{}
			}
			batchErr.Failed = append(batchErr.Failed, ItemError{ID: items[i].ID, Err: errs[i]})
			continue
		}
		result = append(result, opened[i])
	}

	if batchErr != nil {
		logger.FromContext(ctx).Warn().Strs("ids", batchErr.IDs()).Msg("some transactions could not be opened")
		return result, batchErr
	}
	return result, nil
}

func (t *clientTransactionService) open(item models.EncryptedTransaction) (models.Transaction, error) {
	var tx models.Transaction
	if err := t.sealer.Decrypt(string(item.Blob), &tx); err != nil {
		return models.Transaction{}, fmt.Errorf("open transaction %s: %w", item.ID, err)
	}

	tx.ID = item.ID
	tx.Version = item.Version
	return tx, nil
}

// cache stores item locally. The server already accepted the write, so a
// cache failure is only logged; the next List repairs it.
func (t *clientTransactionService) cache(ctx context.Context, item models.EncryptedTransaction) {
	item.UserID = t.userID
	if err := t.localTx.SaveTransactions(ctx, item); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("id", item.ID).Msg("failed to cache transaction")
	}
}
