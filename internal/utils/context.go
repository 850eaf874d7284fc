// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// go-cart server and client: context keys, password hashing, signing key
// generation, JSON response writing, the HTTP client and JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// BearerTokenCtxKey is the key under which the raw bearer token extracted
// from the "Authorization" header is stored in the request context.
var BearerTokenCtxKey = contextKey("bearerToken")

// WithBearerToken returns a copy of ctx carrying token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, BearerTokenCtxKey, token)
}

// GetBearerTokenFromContext retrieves the raw bearer token from ctx.
//
// ok is false when no token was stored or the stored value is not a string.
func GetBearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(BearerTokenCtxKey).(string)
	return token, ok
}
