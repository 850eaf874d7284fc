// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/models"
)

// credentialsFileStore reads credentials from a JSON object of the form
// {"alice": "$2b$12$..."}.
type credentialsFileStore struct {
	path   string
	logger *logger.Logger
}

// NewCredentialsFileStore constructs a [CredentialStore] reading path on
// every call.
func NewCredentialsFileStore(path string, logger *logger.Logger) CredentialStore {
	logger.Debug().Str("path", path).Msg("creating credentials file store")
	return &credentialsFileStore{
		path:   path,
		logger: logger,
	}
}

// LoadCredentials reads and parses the whole credentials file.
//
// A missing, unreadable or malformed file yields [ErrStoreUnavailable].
func (s *credentialsFileStore) LoadCredentials(ctx context.Context) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("error reading credentials file")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	credentials := make(models.Credentials)
	if err = json.Unmarshal(data, &credentials); err != nil {
		log.Err(err).Str("path", s.path).Msg("error decoding credentials file")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return credentials, nil
}
