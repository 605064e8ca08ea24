// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings shared by the server handlers and
// the client's error mapping.
//
// The server writes them as {"error": "<msg>"} bodies; the client adapter
// reads them back so that a 409 caused by an existing salt can be told apart
// from a 409 caused by a stale version.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidTransactionID is returned for an id that is not a UUID.
	MsgInvalidTransactionID = "invalid transaction id"

	// MsgInvalidBlob is returned when a blob is empty, not hex or base64,
	// or too short to hold a nonce and a tag.
	MsgInvalidBlob = "invalid blob"

	// MsgInvalidSalt is returned when a salt is not 16 bytes of hex.
	MsgInvalidSalt = "invalid salt"

	// MsgInvalidVersion is returned for a negative or unparsable version.
	MsgInvalidVersion = "invalid version"

	// MsgVersionIsNotSpecified is returned when a delete omits the version
	// query parameter.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgInvalidSince is returned when the since parameter is not RFC 3339.
	MsgInvalidSince = "invalid since parameter"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when no user id is in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgSaltNotFound is returned when the user has no salt yet.
	MsgSaltNotFound = "salt not found"

	// MsgSaltAlreadyExists is returned when a salt is provisioned twice.
	MsgSaltAlreadyExists = "salt already exists"

	// MsgTransactionNotFound is returned when a record does not exist or
	// was deleted.
	MsgTransactionNotFound = "transaction not found"

	// MsgVersionConflict is returned when the version sent by the client is
	// not the stored one. The client should reload before retrying.
	MsgVersionConflict = "version conflict, please reload"
)
