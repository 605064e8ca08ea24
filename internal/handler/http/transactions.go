// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/sats-ledger/internal/app"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/utils"
	"github.com/MKhiriev/sats-ledger/models"
)

// listTransactions serves GET /api/transactions?since=<RFC 3339>&include_deleted=<bool>.
func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r, "*Handler.listTransactions")
	if !ok {
		return
	}

	filter := models.TransactionFilter{UserID: userID}
	query := r.URL.Query()

	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listTransactions").Msg("invalid since parameter")
			utils.WriteError(w, app.MsgInvalidSince, http.StatusBadRequest)
			return
		}
		since = since.UTC()
		filter.Since = &since
	}

	if raw := query.Get("include_deleted"); raw != "" {
		includeDeleted, err := strconv.ParseBool(raw)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listTransactions").Msg("invalid include_deleted parameter")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		filter.IncludeDeleted = includeDeleted
	}

	txs, err := h.services.BlobService.ListTransactions(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, "*Handler.listTransactions", err)
		return
	}
	if txs == nil {
		txs = []models.EncryptedTransaction{}
	}

	utils.WriteJSON(w, models.TransactionsResponse{Transactions: txs, Length: len(txs)}, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.getTransaction")
	if !ok {
		return
	}

	tx, err := h.services.BlobService.GetTransaction(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getTransaction", err)
		return
	}

	utils.WriteJSON(w, tx, http.StatusOK)
}

// putTransaction creates (version 0, 201) or replaces (stored version, 200)
// the blob stored under {id}.
func (h *Handler) putTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.putTransaction")
	if !ok {
		return
	}

	var req models.PutTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.putTransaction").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	saved, err := h.services.BlobService.PutTransaction(r.Context(), models.EncryptedTransaction{
		ID:      chi.URLParam(r, "id"),
		UserID:  userID,
		Blob:    req.Blob,
		Version: req.Version,
	})
	if err != nil {
		writeServiceError(w, r, "*Handler.putTransaction", err)
		return
	}

	status := http.StatusOK
	if req.Version == 0 {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, saved, status)
}

// deleteTransaction serves DELETE /api/transactions/{id}?version=N.
func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.deleteTransaction")
	if !ok {
		return
	}

	raw := r.URL.Query().Get("version")
	if raw == "" {
		writeServiceError(w, r, "*Handler.deleteTransaction", service.ErrVersionIsNotSpecified)
		return
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteTransaction").Msg("invalid version parameter")
		utils.WriteError(w, app.MsgInvalidVersion, http.StatusBadRequest)
		return
	}

	deleted, err := h.services.BlobService.DeleteTransaction(r.Context(), userID, chi.URLParam(r, "id"), version)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteTransaction", err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}
