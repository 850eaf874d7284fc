// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrStoreUnavailable is returned when a persisted source is missing,
	// unreadable, malformed, or cannot be written.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrMalformedRecord is returned, wrapped together with
	// ErrStoreUnavailable, when a stored cart record fails strict decoding.
	ErrMalformedRecord = errors.New("malformed cart record")
)

// Low-level database operation errors. They are always joined with
// [ErrStoreUnavailable].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan cart item rows")
)
