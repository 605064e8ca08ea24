// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sats-ledger/internal/adapter"
	"github.com/MKhiriev/sats-ledger/internal/crypto"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/models"
)

type clientSaltService struct {
	userID    string
	localSalt store.LocalSaltRepository
	adapter   adapter.ServerAdapter

	generate func() ([]byte, error)
}

func NewClientSaltService(userID string, localSalt store.LocalSaltRepository, serverAdapter adapter.ServerAdapter) ClientSaltService {
	return &clientSaltService{
		userID:    userID,
		localSalt: localSalt,
		adapter:   serverAdapter,
		generate:  crypto.GenerateSalt,
	}
}

func (s *clientSaltService) EnsureSalt(ctx context.Context) ([]byte, error) {
	if s.userID == "" {
		return nil, ErrNoUserID
	}
	log := logger.FromContext(ctx)

	remote, err := s.fetchOrCreate(ctx)
	if errors.Is(err, ErrOffline) {
		log.Warn().Err(err).Str("func", "clientSaltService.EnsureSalt").Msg("server unreachable, using cached salt")
		return s.cachedSalt(ctx, err)
	}
	if err != nil {
		return nil, err
	}

	raw, err := crypto.ParseSalt(remote.Salt)
	if err != nil {
		return nil, fmt.Errorf("server returned a malformed salt: %w", err)
	}

	if err = s.remember(ctx, raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// fetchOrCreate returns the server salt, creating it on first use.
func (s *clientSaltService) fetchOrCreate(ctx context.Context) (models.Salt, error) {
	remote, err := s.adapter.GetSalt(ctx)
	if err == nil {
		return remote, nil
	}
	if err = mapAdapterError(err); !errors.Is(err, store.ErrSaltNotFound) {
		return models.Salt{}, err
	}

	raw, err := s.generate()
	if err != nil {
		return models.Salt{}, err
	}

	created, err := s.adapter.PutSalt(ctx, models.Salt{Salt: crypto.EncodeSalt(raw)})
	if err == nil {
		logger.FromContext(ctx).Info().Str("user_id", s.userID).Msg("salt provisioned on server")
		return created, nil
	}
	if err = mapAdapterError(err); !errors.Is(err, store.ErrSaltAlreadyExists) {
		return models.Salt{}, err
	}

	// another device won the race
	remote, err = s.adapter.GetSalt(ctx)
	return remote, mapAdapterError(err)
}

// remember caches raw locally. A cached salt that differs from raw means the
// cache belongs to another vault.
func (s *clientSaltService) remember(ctx context.Context, raw []byte) error {
	cached, err := s.localSalt.GetSalt(ctx, s.userID)
	switch {
	case err == nil:
		if cached.Salt != crypto.EncodeSalt(raw) {
			return ErrSaltMismatch
		}
		return nil
	case errors.Is(err, store.ErrSaltNotFound):
		return s.localSalt.SaveSalt(ctx, models.Salt{UserID: s.userID, Salt: crypto.EncodeSalt(raw)})
	default:
		return err
	}
}

func (s *clientSaltService) cachedSalt(ctx context.Context, cause error) ([]byte, error) {
	cached, err := s.localSalt.GetSalt(ctx, s.userID)
	if errors.Is(err, store.ErrSaltNotFound) {
		return nil, cause
	}
	if err != nil {
		return nil, err
	}

	return crypto.ParseSalt(cached.Salt)
}
