// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/store"
	"github.com/MKhiriev/go-cart/internal/utils"
	"github.com/MKhiriev/go-cart/models"
)

// authService is the concrete implementation of AuthService.
// It reads the credential mapping on every call and compares bcrypt hashes.
type authService struct {
	// credentialStore is the read-only source of username → hash.
	credentialStore store.CredentialStore

	// tokenService issues the token returned by Login.
	tokenService TokenService

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(credentialStore store.CredentialStore, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		credentialStore: credentialStore,
		tokenService:    tokenService,
		logger:          logger,
	}
}

// Authenticate loads the full credential mapping and bcrypt-compares
// password against the stored hash for username.
//
// Returns false, nil for an unknown user or a wrong password, and a wrapped
// store.ErrStoreUnavailable when the mapping cannot be read.
func (a *authService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	log := logger.FromContext(ctx)

	credentials, err := a.credentialStore.LoadCredentials(ctx)
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("error loading credentials")
		return false, fmt.Errorf("error loading credentials: %w", err)
	}

	hash, ok := credentials.PasswordHash(username)
	if !ok {
		log.Debug().Str("username", username).Msg("unknown user")
		return false, nil
	}

	return utils.CheckPassword(hash, password), nil
}

// Login authenticates user and issues a token whose subject is the
// username.
//
// Returns:
//   - ErrInvalidCredentials for empty input, an unknown user or a wrong
//     password.
//   - A wrapped store error if the credentials cannot be read.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Debug().Msg("empty username or password")
		return models.Token{}, ErrInvalidCredentials
	}

	ok, err := a.Authenticate(ctx, user.Username, user.Password)
	if err != nil {
		return models.Token{}, err
	}
	if !ok {
		log.Info().Str("username", user.Username).Msg("login rejected")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(ctx, user.Username)
	if err != nil {
		return models.Token{}, err
	}

	log.Info().Str("username", user.Username).Msg("login succeeded")
	return token, nil
}
