// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cart/internal/app"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/utils"
	"github.com/MKhiriev/go-cart/models"
)

// login exchanges {username, password} for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

// protected answers 200 for any valid token.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		unauthorized(w, app.MsgNotAuthenticated)
		return
	}

	subject, err := h.services.TokenService.Verify(ctx, token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("subject", subject).Msg("token accepted")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAuthenticated}, http.StatusOK)
}
