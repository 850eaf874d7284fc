// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cart/internal/validators"
	"github.com/MKhiriev/go-cart/models"
)

// CartServiceWrapper decorates a CartService with extra behaviour such as
// validation.
type CartServiceWrapper interface {
	Wrap(CartService) CartService
}

// CartValidationService rejects items with an empty name or a negative price
// or quantity before delegating to the wrapped CartService. The token is
// verified first, so unauthenticated callers never see validation details.
type CartValidationService struct {
	inner        CartService
	tokenService TokenService
	validator    validators.Validator
}

func NewCartValidationService(tokenService TokenService) CartServiceWrapper {
	return &CartValidationService{
		tokenService: tokenService,
		validator:    validators.NewCartItemValidator(),
	}
}

func (v *CartValidationService) Add(ctx context.Context, token string, item models.CartItem) error {
	if _, err := v.tokenService.Verify(ctx, token); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Add(ctx, token, item)
}

func (v *CartValidationService) Update(ctx context.Context, token string, productID, quantity int) error {
	if _, err := v.tokenService.Verify(ctx, token); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, quantity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, token, productID, quantity)
}

func (v *CartValidationService) Delete(ctx context.Context, token string, productID int) error {
	return v.inner.Delete(ctx, token, productID)
}

func (v *CartValidationService) List(ctx context.Context, token string) (models.Cart, error) {
	return v.inner.List(ctx, token)
}

func (v *CartValidationService) Wrap(wrapped CartService) CartService {
	v.inner = wrapped
	return v
}
