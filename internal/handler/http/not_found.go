// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cart/internal/app"
	"github.com/MKhiriev/go-cart/internal/utils"
)

// notFound is registered via [chi.Mux.NotFound] so unknown paths get the
// same {"detail": ...} body as every other error.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. chi
// answers 405 for a known path requested with an unregistered method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
