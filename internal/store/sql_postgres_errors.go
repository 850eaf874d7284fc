// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code carried by err, or "" if err is
// not a PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isTransientPgError reports whether code denotes a condition that may clear
// on its own (lost connection, serialization failure, deadlock, server
// starting up). It only feeds log fields; nothing is retried.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func isTransientPgError(code string) bool {
	switch {
	case code == "":
		return false
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return true
	case code == pgerrcode.CannotConnectNow:
		return true
	}

	return false
}
