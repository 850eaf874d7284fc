// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cart/internal/app"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/utils"
)

// auth extracts the bearer token from the "Authorization" header and stores
// it in the request context under [utils.BearerTokenCtxKey].
//
// The token is not verified here: every cart operation verifies it in the
// service layer. Requests without a well-formed "Bearer <token>" header are
// rejected with 401 and a WWW-Authenticate challenge.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithBearerToken(r.Context(), token)))
	})
}

// bearerToken returns the token stored by [Handler.auth].
func bearerToken(r *http.Request) (string, error) {
	token, ok := utils.GetBearerTokenFromContext(r.Context())
	if !ok || token == "" {
		return "", ErrNoTokenInContext
	}
	return token, nil
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, detail, http.StatusUnauthorized)
}
