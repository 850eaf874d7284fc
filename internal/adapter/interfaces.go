// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-cart HTTP API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx responses are
// mapped by mapHTTPError to the sentinel errors in errors.go so that callers
// can branch with [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound]
// for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cart/models"
)

// ServerAdapter defines communication with the go-cart server.
// Implementations keep the bearer token obtained by Login and attach it to
// every cart request.
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for an access token and stores it via
	// SetToken.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// Protected checks that the stored token is accepted by the server.
	Protected(ctx context.Context) (models.MessageResponse, error)

	// List fetches the whole cart with its totals.
	List(ctx context.Context) (models.Cart, error)

	// Add appends item to the cart.
	Add(ctx context.Context, item models.CartItem) (models.MessageResponse, error)

	// Update sets the quantity of the first cart item with productID.
	Update(ctx context.Context, productID, quantity int) (models.MessageResponse, error)

	// Delete removes the first cart item with productID.
	Delete(ctx context.Context, productID int) (models.MessageResponse, error)

	// Version returns the server's plain-text version string.
	Version(ctx context.Context) (string, error)
}
