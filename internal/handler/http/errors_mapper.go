// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cart/internal/app"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/service"
	"github.com/MKhiriev/go-cart/internal/store"
	"github.com/MKhiriev/go-cart/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrStoreUnavailable: http.StatusInternalServerError,
}

// errorDetailMap holds the response body for each status. 401 bodies never
// say which part of the credentials was wrong.
var errorDetailMap = map[error]string{
	service.ErrInvalidCredentials:  app.MsgInvalidUsernameOrPassword,
	service.ErrInvalidToken:        app.MsgInvalidCredentials,
	service.ErrNotFound:            app.MsgProductNotFound,
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return app.MsgInternalServerError
}

// writeServiceError logs err and writes the mapped status and detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detailFromError(err), status)
}
