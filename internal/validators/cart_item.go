// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cart/models"
)

// Field names accepted by [CartItemValidator].
const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

var defaultCartItemFields = []string{FieldName, FieldPrice, FieldQuantity}

// CartItemValidator checks cart items before they are written.
//
// Supported inputs:
//   - models.CartItem / *models.CartItem
//   - int (a bare quantity, as sent by the update endpoint)
type CartItemValidator struct{}

// NewCartItemValidator returns a [Validator] for cart items.
func NewCartItemValidator() Validator {
	return &CartItemValidator{}
}

// Validate checks obj. With no fields given, every field is checked.
// All violations are reported together, joined with [errors.Join].
func (v *CartItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CartItem:
		return v.validateCartItem(value, fields...)
	case *models.CartItem:
		if value == nil {
			return fmt.Errorf("%w: nil cart item", ErrUnsupportedType)
		}
		return v.validateCartItem(*value, fields...)
	case int:
		return validateQuantity(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CartItemValidator) validateCartItem(item models.CartItem, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultCartItemFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				errs = append(errs, ErrEmptyName)
			}
		case FieldPrice:
			if item.Price < 0 {
				errs = append(errs, ErrNegativePrice)
			}
		case FieldQuantity:
			if err := validateQuantity(item.Quantity); err != nil {
				errs = append(errs, err)
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}

	return errors.Join(errs...)
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
