// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	saltPath         = "/api/salt"
	transactionsPath = "/api/transactions"
	transactionPath  = transactionsPath + "/{id}"
	versionPath      = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get(versionPath, h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(saltPath, h.getSalt)
		r.Put(saltPath, h.putSalt)

		r.Get(transactionsPath, h.listTransactions)
		r.Get(transactionPath, h.getTransaction)
		r.Put(transactionPath, h.putTransaction)
		r.Delete(transactionPath, h.deleteTransaction)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
