// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/store"
	"github.com/MKhiriev/go-cart/internal/utils"
)

type Services struct {
	AppInfoService AppInfoService
	TokenService   TokenService
	AuthService    AuthService
	CartService    CartService
}

// NewServices wires the service layer. When cfg.App.TokenSignKey is empty a
// random key is generated; it lives only in this process.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	signKey := cfg.App.TokenSignKey
	if signKey == "" {
		signKey, err = utils.GenerateSignKey()
		if err != nil {
			return nil, fmt.Errorf("error generating token sign key: %w", err)
		}
		logger.Warn().Msg("no token sign key configured, generated an ephemeral one; tokens will not survive a restart")
	}

	tokenService := NewTokenService(signKey, cfg.App.TokenIssuer, cfg.App.TokenDuration, logger)

	cartService := NewCartService(storages.CartStore, tokenService, !cfg.App.DisableCartWriteLock, logger)
	if cfg.App.ValidateCartItems {
		cartService = NewCartValidationService(tokenService).Wrap(cartService)
	}

	return &Services{
		AppInfoService: appInfoService,
		TokenService:   tokenService,
		AuthService:    NewAuthService(storages.CredentialStore, tokenService, logger),
		CartService:    cartService,
	}, nil
}
