// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "bearerToken", BearerTokenCtxKey.String())
}

func TestGetBearerTokenFromContext_Success(t *testing.T) {
	ctx := WithBearerToken(context.Background(), "abc.def.ghi")

	token, ok := GetBearerTokenFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestGetBearerTokenFromContext_Missing(t *testing.T) {
	token, ok := GetBearerTokenFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestGetBearerTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), BearerTokenCtxKey, 42)

	_, ok := GetBearerTokenFromContext(ctx)

	assert.False(t, ok)
}

func TestGetBearerTokenFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "token")

	_, ok := GetBearerTokenFromContext(ctx)

	assert.False(t, ok)
}
