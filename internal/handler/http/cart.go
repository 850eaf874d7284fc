// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cart/internal/app"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/utils"
	"github.com/MKhiriev/go-cart/models"
)

const (
	productIDParam = "product_id"
	quantityParam  = "quantity"
)

func (h *Handler) listCart(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		unauthorized(w, app.MsgNotAuthenticated)
		return
	}

	cart, err := h.services.CartService.List(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		unauthorized(w, app.MsgNotAuthenticated)
		return
	}

	item, err := decodeCartItem(r.Body)
	if err != nil {
		log.Err(err).Msg("invalid cart item was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.CartService.Add(r.Context(), token, item); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProductAdded}, http.StatusOK)
}

// updateCart handles PUT /cart/update/{product_id}?quantity=N.
func (h *Handler) updateCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		unauthorized(w, app.MsgNotAuthenticated)
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, productIDParam))
	if err != nil {
		log.Debug().Err(err).Msg("invalid product id")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get(quantityParam))
	if err != nil {
		log.Debug().Err(err).Msg("invalid quantity")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.CartService.Update(r.Context(), token, productID, quantity); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgCartUpdated}, http.StatusOK)
}

func (h *Handler) deleteFromCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		unauthorized(w, app.MsgNotAuthenticated)
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, productIDParam))
	if err != nil {
		log.Debug().Err(err).Msg("invalid product id")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.CartService.Delete(r.Context(), token, productID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProductDeleted}, http.StatusOK)
}

// decodeCartItem reads one cart item and requires every key of
// [models.CartItemKeys] to be present and non-null. Extra keys are ignored.
func decodeCartItem(body io.Reader) (models.CartItem, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return models.CartItem{}, err
	}

	var raw map[string]json.RawMessage
	if err = json.Unmarshal(data, &raw); err != nil {
		return models.CartItem{}, err
	}

	for _, key := range models.CartItemKeys {
		value, ok := raw[key]
		if !ok || string(value) == "null" {
			return models.CartItem{}, fmt.Errorf("%w: %q", ErrMissingField, key)
		}
	}

	var item models.CartItem
	if err = json.Unmarshal(data, &item); err != nil {
		return models.CartItem{}, err
	}

	return item, nil
}
