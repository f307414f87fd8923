// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRequestNotFound is returned when a query or mutation targets a
	// request (identified by tenant and id) that does not exist.
	ErrRequestNotFound = errors.New("request was not found")

	// ErrRequestNotSaved is returned when an INSERT completes without error
	// but affects no rows, or when every attempt to allocate a sequence
	// number collided with a concurrent writer.
	ErrRequestNotSaved = errors.New("request was not saved")

	// ErrStatusConflict is returned when a status update or conversion
	// finds the request in a status that no longer allows it, typically
	// because a concurrent write changed it first.
	ErrStatusConflict = errors.New("request status does not allow the change")

	// ErrUnsupportedDSN is returned by [NewConnect] when the DSN matches
	// neither a PostgreSQL URL nor a SQLite file path.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan request row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan request rows")

	// ErrDecodingPayload is returned when the stored payload column is not
	// valid JSON.
	ErrDecodingPayload = errors.New("failed to decode request payload")
)
