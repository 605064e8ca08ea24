// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSaltNotFound is returned when the user has no salt yet.
	ErrSaltNotFound = errors.New("salt was not found")

	// ErrSaltAlreadyExists is returned when a second salt is created for a
	// user. Salts are immutable.
	ErrSaltAlreadyExists = errors.New("salt already exists")

	// ErrTransactionNotFound is returned when the record does not exist or
	// was soft-deleted before an update.
	ErrTransactionNotFound = errors.New("transaction was not found")

	// ErrVersionConflict is returned when the version supplied by the client
	// does not match the stored one: another device wrote the record since
	// the client last read it.
	ErrVersionConflict = errors.New("transaction version conflict occurred")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// database transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// database transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a statement cannot be prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
