// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/utils"
	"github.com/MKhiriev/go-cart/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// rooted at cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Dur("timeout", cfg.RequestTimeout).Msg("creating http server adapter")

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login POSTs the credentials to /login and stores the returned access token.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&loginResp).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(loginResp.AccessToken)
	h.logger.Debug().Str("username", user.Username).Msg("logged in")
	return loginResp, nil
}

func (h *httpServerAdapter) Protected(ctx context.Context) (models.MessageResponse, error) {
	return h.message(ctx, "protected", func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/protected")
	})
}

func (h *httpServerAdapter) List(ctx context.Context) (models.Cart, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Cart{}, err
	}

	var cart models.Cart
	resp, err := req.SetResult(&cart).Get("/cart")
	if err != nil {
		return models.Cart{}, fmt.Errorf("list cart request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cart{}, err
	}

	return cart, nil
}

func (h *httpServerAdapter) Add(ctx context.Context, item models.CartItem) (models.MessageResponse, error) {
	return h.message(ctx, "add to cart", func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetBody(item).
			Post("/cart/add")
	})
}

func (h *httpServerAdapter) Update(ctx context.Context, productID, quantity int) (models.MessageResponse, error) {
	return h.message(ctx, "update cart", func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("product_id", strconv.Itoa(productID)).
			SetQueryParam("quantity", strconv.Itoa(quantity)).
			Put("/cart/update/{product_id}")
	})
}

func (h *httpServerAdapter) Delete(ctx context.Context, productID int) (models.MessageResponse, error) {
	return h.message(ctx, "delete from cart", func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("product_id", strconv.Itoa(productID)).
			Delete("/cart/delete/{product_id}")
	})
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// message runs an authenticated request whose success body is a
// [models.MessageResponse].
func (h *httpServerAdapter) message(ctx context.Context, op string, send func(*resty.Request) (*resty.Response, error)) (models.MessageResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.MessageResponse{}, err
	}

	var msg models.MessageResponse
	resp, err := send(req.SetResult(&msg))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
