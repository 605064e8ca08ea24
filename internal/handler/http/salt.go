// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/sats-ledger/internal/app"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/utils"
	"github.com/MKhiriev/sats-ledger/models"
)

func (h *Handler) getSalt(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.getSalt")
	if !ok {
		return
	}

	salt, err := h.services.SaltService.GetSalt(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getSalt", err)
		return
	}

	utils.WriteJSON(w, salt, http.StatusOK)
}

// putSalt provisions the user's salt. Salts are immutable: a second PUT is a
// 409 even when it carries the same value.
func (h *Handler) putSalt(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.putSalt")
	if !ok {
		return
	}

	var salt models.Salt
	if err := json.NewDecoder(r.Body).Decode(&salt); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.putSalt").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	salt.UserID = userID

	created, err := h.services.SaltService.CreateSalt(r.Context(), salt)
	if err != nil {
		writeServiceError(w, r, "*Handler.putSalt", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
