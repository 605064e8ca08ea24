// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/sats-ledger/internal/app"
	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/internal/utils"
	"github.com/MKhiriev/sats-ledger/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is ordered from the most to the least specific error: a
// validation failure wraps both a validators sentinel and
// service.ErrInvalidDataProvided.
var errorResponses = []errorResponse{
	{validators.ErrInvalidID, http.StatusBadRequest, app.MsgInvalidTransactionID},
	{validators.ErrEmptyBlob, http.StatusBadRequest, app.MsgInvalidBlob},
	{validators.ErrInvalidBlob, http.StatusBadRequest, app.MsgInvalidBlob},
	{validators.ErrBlobTooShort, http.StatusBadRequest, app.MsgInvalidBlob},
	{validators.ErrBlobTooLarge, http.StatusBadRequest, app.MsgInvalidBlob},
	{validators.ErrInvalidSalt, http.StatusBadRequest, app.MsgInvalidSalt},
	{validators.ErrInvalidVersion, http.StatusBadRequest, app.MsgInvalidVersion},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgVersionIsNotSpecified},
	{service.ErrValidationNoUserID, http.StatusBadRequest, app.MsgNoUserIDProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrSaltNotFound, http.StatusNotFound, app.MsgSaltNotFound},
	{store.ErrSaltAlreadyExists, http.StatusConflict, app.MsgSaltAlreadyExists},
	{store.ErrTransactionNotFound, http.StatusNotFound, app.MsgTransactionNotFound},
	{store.ErrVersionConflict, http.StatusConflict, app.MsgVersionConflict},
}

// responseFromError returns the status and the client-facing message for
// err. Anything unknown is a 500 whose details stay in the log.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, msg := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(msg)

	utils.WriteError(w, msg, status)
}
