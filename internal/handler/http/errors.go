// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoTokenInContext is returned by handlers behind the auth middleware
	// when the request context carries no bearer token.
	ErrNoTokenInContext = errors.New("no bearer token in request context")

	// ErrMissingField is returned when a cart item body lacks a key or sets
	// it to null.
	ErrMissingField = errors.New("missing required field")
)
