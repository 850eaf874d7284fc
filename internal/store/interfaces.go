// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cart/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore reads the username to password-hash mapping.
// Implementations never write and never cache: every call reads the
// persisted source again.
type CredentialStore interface {
	LoadCredentials(ctx context.Context) (models.Credentials, error)
}

// CartStore persists the whole cart collection. Load returns every item in
// persisted order; Save replaces the entire collection.
type CartStore interface {
	Load(ctx context.Context) ([]models.CartItem, error)
	Save(ctx context.Context, items []models.CartItem) error
}
