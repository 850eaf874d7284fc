// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown user, a wrong
	// password or empty input. The three cases are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a bearer token is malformed, expired,
	// badly signed or carries no subject.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound is returned by Update and Delete when no cart item has the
	// requested product id.
	ErrNotFound = errors.New("product not found in cart")

	// ErrInvalidDataProvided is returned by the validating cart service.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenCreationFailed is returned when a token cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
