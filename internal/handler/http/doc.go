// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the server.
//
// It wires the chi router, the request handlers for salts, encrypted
// transactions and the build version, and the middleware chain: panic
// recovery, trace ids, access logging, gzip, request timeouts and bearer
// token authentication. The server never sees plaintext; handlers only move
// salts and opaque blobs between the client and the service layer.
package http
