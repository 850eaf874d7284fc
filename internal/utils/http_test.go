// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cart/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "message",
			data:     models.MessageResponse{Message: "Cart updated successfully"},
			status:   http.StatusOK,
			wantBody: `{"message":"Cart updated successfully"}`,
		},
		{
			name:     "login response",
			data:     models.LoginResponse{AccessToken: "tok", TokenType: "bearer"},
			status:   http.StatusOK,
			wantBody: `{"access_token":"tok","token_type":"bearer"}`,
		},
		{
			name:     "empty cart keeps products as an array",
			data:     models.NewCart(nil),
			status:   http.StatusOK,
			wantBody: `{"total_price":0,"total_quantity":0,"products":[]}`,
		},
		{
			name:     "custom status",
			data:     models.ErrorResponse{Detail: "Product not found in cart"},
			status:   http.StatusNotFound,
			wantBody: `{"detail":"Product not found in cart"}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "Invalid authentication credentials", http.StatusUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid authentication credentials"}`, w.Body.String())
}
