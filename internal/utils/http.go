// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cart/models"
)

// marshalFailureBody is sent when a response value cannot be encoded.
const marshalFailureBody = `{"detail":"internal server error"}`

// WriteJSON encodes data and writes it with statusCode and an
// application/json content type. It returns the number of body bytes
// written.
//
// If data cannot be encoded, a 500 response with a generic JSON error body
// is written instead and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error encoding response to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError writes {"detail": detail} with statusCode.
func WriteError(w http.ResponseWriter, detail string, statusCode int) {
	WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
