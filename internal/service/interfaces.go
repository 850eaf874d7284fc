// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cart/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue signs a token for subject.
	Issue(ctx context.Context, subject string) (models.Token, error)
	// Verify returns the token's subject or ErrInvalidToken.
	Verify(ctx context.Context, token string) (string, error)
}

// AuthService checks credentials and turns them into access tokens.
type AuthService interface {
	// Authenticate reports whether username/password match a stored
	// credential. Unknown users and wrong passwords both yield false.
	Authenticate(ctx context.Context, username, password string) (bool, error)
	// Login authenticates user and issues a token for it.
	Login(ctx context.Context, user models.User) (models.Token, error)
}

// CartService operates on the single shared cart. Every call verifies token
// first and fails with ErrInvalidToken without touching the store.
type CartService interface {
	Add(ctx context.Context, token string, item models.CartItem) error
	Update(ctx context.Context, token string, productID, quantity int) error
	Delete(ctx context.Context, token string, productID int) error
	List(ctx context.Context, token string) (models.Cart, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
