// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/utils"
	"github.com/MKhiriev/go-cart/models"
)

// tokenService signs HS256 JWTs with a key fixed at construction.
type tokenService struct {
	// signKey is the HMAC secret. It is injected, never read from globals.
	signKey string

	// issuer is the optional "iss" claim, checked on Verify when set.
	issuer string

	// duration is the lifetime of an issued token.
	duration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService]. signKey must be non-empty;
// [NewServices] generates one when the configuration carries none.
func NewTokenService(signKey, issuer string, duration time.Duration, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
		logger:   logger,
	}
}

// Issue returns a token with sub=subject, iat=now and exp=now+duration.
func (t *tokenService) Issue(ctx context.Context, subject string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(subject, t.duration, t.signKey, t.issuer)
	if err != nil {
		log.Err(err).Str("func", "*tokenService.Issue").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, algorithm, expiry, issuer and subject presence.
// Every failure is reported as [ErrInvalidToken].
func (t *tokenService) Verify(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(token, t.signKey, t.issuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return parsed.Subject, nil
}
