// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/service"
	"github.com/MKhiriev/go-cart/models"
)

// ─────────────────────────────────────────────
// Service mocks. Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	authenticateFn func(ctx context.Context, username, password string) (bool, error)
	loginFn        func(ctx context.Context, user models.User) (models.Token, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	return m.authenticateFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	return m.loginFn(ctx, user)
}

type mockTokenService struct {
	issueFn  func(ctx context.Context, subject string) (models.Token, error)
	verifyFn func(ctx context.Context, token string) (string, error)
}

func (m *mockTokenService) Issue(ctx context.Context, subject string) (models.Token, error) {
	return m.issueFn(ctx, subject)
}

func (m *mockTokenService) Verify(ctx context.Context, token string) (string, error) {
	return m.verifyFn(ctx, token)
}

type mockCartService struct {
	addFn    func(ctx context.Context, token string, item models.CartItem) error
	updateFn func(ctx context.Context, token string, productID, quantity int) error
	deleteFn func(ctx context.Context, token string, productID int) error
	listFn   func(ctx context.Context, token string) (models.Cart, error)
}

func (m *mockCartService) Add(ctx context.Context, token string, item models.CartItem) error {
	return m.addFn(ctx, token, item)
}

func (m *mockCartService) Update(ctx context.Context, token string, productID, quantity int) error {
	return m.updateFn(ctx, token, productID, quantity)
}

func (m *mockCartService) Delete(ctx context.Context, token string, productID int) error {
	return m.deleteFn(ctx, token, productID)
}

func (m *mockCartService) List(ctx context.Context, token string) (models.Cart, error) {
	return m.listFn(ctx, token)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router around svcs. Nil services are
// replaced with ones that fail the test when called.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{
			loginFn: func(context.Context, models.User) (models.Token, error) {
				t.Error("unexpected Login call")
				return models.Token{}, nil
			},
		}
	}
	if svcs.TokenService == nil {
		svcs.TokenService = &mockTokenService{
			verifyFn: func(context.Context, string) (string, error) {
				t.Error("unexpected Verify call")
				return "", nil
			},
		}
	}
	if svcs.CartService == nil {
		svcs.CartService = &mockCartService{}
	}

	cfg := config.Server{HTTPAddress: ":0", AllowedOrigins: []string{"*"}}
	return NewHandler(svcs, cfg, logger.Nop()).Init()
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
