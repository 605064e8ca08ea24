// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/sats-ledger/internal/config"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/utils"
	"github.com/MKhiriev/sats-ledger/models"
)

const (
	saltPath         = "/api/salt"
	transactionsPath = "/api/transactions"
	versionPath      = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of
// [ServerAdapter]. The base URL comes from cfg.HTTPAddress (a missing scheme
// means http) and cfg.Token is installed as the initial bearer token.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetSalt implements [ServerAdapter] via GET /api/salt.
func (h *httpServerAdapter) GetSalt(ctx context.Context) (models.Salt, error) {
	var salt models.Salt

	resp, err := h.authedRequest(ctx).
		SetResult(&salt).
		Get(saltPath)
	if err != nil {
		return models.Salt{}, fmt.Errorf("%w: get salt request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Salt{}, err
	}

	return salt, nil
}

// PutSalt implements [ServerAdapter] via PUT /api/salt.
func (h *httpServerAdapter) PutSalt(ctx context.Context, salt models.Salt) (models.Salt, error) {
	var stored models.Salt

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(salt).
		SetResult(&stored).
		Put(saltPath)
	if err != nil {
		return models.Salt{}, fmt.Errorf("%w: put salt request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Salt{}, err
	}

	return stored, nil
}

// ListTransactions implements [ServerAdapter] via GET /api/transactions.
func (h *httpServerAdapter) ListTransactions(ctx context.Context, since *time.Time, includeDeleted bool) ([]models.EncryptedTransaction, error) {
	var list models.TransactionsResponse

	req := h.authedRequest(ctx).SetResult(&list)
	if since != nil {
		req.SetQueryParam("since", since.UTC().Format(time.RFC3339Nano))
	}
	if includeDeleted {
		req.SetQueryParam("include_deleted", "true")
	}

	resp, err := req.Get(transactionsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list transactions request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Transactions, nil
}

// GetTransaction implements [ServerAdapter] via GET /api/transactions/{id}.
func (h *httpServerAdapter) GetTransaction(ctx context.Context, id string) (models.EncryptedTransaction, error) {
	var tx models.EncryptedTransaction

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&tx).
		Get(transactionsPath + "/{id}")
	if err != nil {
		return models.EncryptedTransaction{}, fmt.Errorf("%w: get transaction request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedTransaction{}, err
	}

	return tx, nil
}

// PutTransaction implements [ServerAdapter] via PUT /api/transactions/{id}.
func (h *httpServerAdapter) PutTransaction(ctx context.Context, id string, body models.PutTransactionRequest) (models.EncryptedTransaction, error) {
	var tx models.EncryptedTransaction

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&tx).
		Put(transactionsPath + "/{id}")
	if err != nil {
		return models.EncryptedTransaction{}, fmt.Errorf("%w: put transaction request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedTransaction{}, err
	}

	return tx, nil
}

// DeleteTransaction implements [ServerAdapter] via
// DELETE /api/transactions/{id}?version=N.
func (h *httpServerAdapter) DeleteTransaction(ctx context.Context, id string, version int64) (models.EncryptedTransaction, error) {
	var tx models.EncryptedTransaction

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetQueryParam("version", strconv.FormatInt(version, 10)).
		SetResult(&tx).
		Delete(transactionsPath + "/{id}")
	if err != nil {
		return models.EncryptedTransaction{}, fmt.Errorf("%w: delete transaction request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedTransaction{}, err
	}

	return tx, nil
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(versionPath)
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("%w: version request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
