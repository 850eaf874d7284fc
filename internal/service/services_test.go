// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/mock"
	"github.com/MKhiriev/go-cart/internal/store"
)

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &store.Storages{
		CredentialStore: mock.NewMockCredentialStore(ctrl),
		CartStore:       mock.NewMockCartStore(ctrl),
	}
}

func TestNewServices_ConfiguredKey(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{
		TokenSignKey:  "secret",
		TokenDuration: time.Minute,
		Version:       "1.0.0",
	}}

	services, err := NewServices(newTestStorages(t), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
	assert.IsType(t, &cartService{}, services.CartService)

	// a token signed with the configured key verifies against the service
	other := NewTokenService("secret", "", time.Minute, logger.Nop())
	token, err := other.Issue(context.Background(), "alice")
	require.NoError(t, err)

	subject, err := services.TokenService.Verify(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestNewServices_GeneratesKeyPerInstance(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{TokenDuration: time.Minute, Version: "dev"}}

	first, err := NewServices(newTestStorages(t), cfg, logger.Nop())
	require.NoError(t, err)
	second, err := NewServices(newTestStorages(t), cfg, logger.Nop())
	require.NoError(t, err)

	token, err := first.TokenService.Issue(context.Background(), "alice")
	require.NoError(t, err)

	_, err = first.TokenService.Verify(context.Background(), token.SignedString)
	assert.NoError(t, err)

	// a restarted process has a fresh key
	_, err = second.TokenService.Verify(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewServices_ValidationWrapper(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{
		TokenSignKey:      "secret",
		TokenDuration:     time.Minute,
		Version:           "dev",
		ValidateCartItems: true,
	}}

	services, err := NewServices(newTestStorages(t), cfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &CartValidationService{}, services.CartService)
}

func TestNewServices_NoVersion(t *testing.T) {
	_, err := NewServices(newTestStorages(t), config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
