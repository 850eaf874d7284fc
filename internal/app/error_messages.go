// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-cart server handlers, middleware and command-line client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidCredentials is the 401 body for a missing, malformed,
	// expired or otherwise unverifiable bearer token.
	MsgInvalidCredentials = "Invalid authentication credentials"

	// MsgNotAuthenticated is the 401 body when no usable bearer token was
	// sent at all.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidUsernameOrPassword is the 401 body for a failed login.
	// Unknown user and wrong password share it.
	MsgInvalidUsernameOrPassword = "Invalid username or password"

	// MsgAuthenticated is returned by GET /protected.
	MsgAuthenticated = "You are authenticated"

	// MsgProductAdded is returned after an item was appended to the cart.
	MsgProductAdded = "Product added to cart successfully"

	// MsgCartUpdated is returned after the quantity of an item was changed.
	MsgCartUpdated = "Cart updated successfully"

	// MsgProductDeleted is returned after an item was removed from the cart.
	MsgProductDeleted = "Product deleted from cart successfully"

	// MsgProductNotFound is returned when no cart item has the requested
	// product id.
	MsgProductNotFound = "Product not found in cart"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a path/query parameter is not a valid integer.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNotFound and MsgMethodNotAllowed are returned for unknown routes
	// and unsupported methods.
	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
