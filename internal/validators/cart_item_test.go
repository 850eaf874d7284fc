// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cart/models"
)

func TestCartItemValidator_Validate(t *testing.T) {
	valid := models.CartItem{ProductID: 1, Image: "a.png", Name: "Apple", Price: 1.5, Quantity: 2}

	tests := []struct {
		name     string
		obj      any
		fields   []string
		wantErrs []error
	}{
		{name: "valid item", obj: valid},
		{name: "valid pointer", obj: &valid},
		{name: "zero quantity and price allowed", obj: models.CartItem{Name: "Free"}},
		{
			name:     "empty name",
			obj:      models.CartItem{Name: "  ", Price: 1, Quantity: 1},
			wantErrs: []error{ErrEmptyName},
		},
		{
			name:     "negative price",
			obj:      models.CartItem{Name: "x", Price: -0.01, Quantity: 1},
			wantErrs: []error{ErrNegativePrice},
		},
		{
			name:     "negative quantity",
			obj:      models.CartItem{Name: "x", Price: 1, Quantity: -1},
			wantErrs: []error{ErrNegativeQuantity},
		},
		{
			name:     "all violations reported",
			obj:      models.CartItem{Price: -1, Quantity: -1},
			wantErrs: []error{ErrEmptyName, ErrNegativePrice, ErrNegativeQuantity},
		},
		{
			name:   "scoped to price only",
			obj:    models.CartItem{Price: 3, Quantity: -1},
			fields: []string{FieldPrice},
		},
		{
			name:     "unknown field",
			obj:      valid,
			fields:   []string{"colour"},
			wantErrs: []error{ErrUnknownField},
		},
		{name: "bare quantity", obj: 0},
		{name: "negative bare quantity", obj: -3, wantErrs: []error{ErrNegativeQuantity}},
		{name: "nil pointer", obj: (*models.CartItem)(nil), wantErrs: []error{ErrUnsupportedType}},
		{name: "unsupported type", obj: "apple", wantErrs: []error{ErrUnsupportedType}},
	}

	v := NewCartItemValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
