// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cart/internal/service"
)

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, `{"detail":"Not Found"}`},
		{"get on login", http.MethodGet, "/login", http.StatusMethodNotAllowed, `{"detail":"Method Not Allowed"}`},
		{"post on cart", http.MethodPost, "/cart", http.StatusMethodNotAllowed, `{"detail":"Method Not Allowed"}`},
		{"unknown cart action", http.MethodPost, "/cart/checkout", http.StatusNotFound, `{"detail":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(router, tt.method, tt.target, "", authHeader)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodOptions, "/cart/add", nil)
	req.Header.Set("Origin", "http://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Contains(t, []string{"*", "http://shop.example"}, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_CORSSimpleRequest(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Origin", "http://shop.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, []string{"*", "http://shop.example"}, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := doRequest(router, http.MethodGet, "/api/version", "", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestGetServerVersion(t *testing.T) {
	router := newTestRouter(t, &service.Services{AppInfoService: &mockAppInfoService{version: "1.2.3"}})

	rec := doRequest(router, http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestRouter_PanicRecovered(t *testing.T) {
	cart := &mockCartService{}
	router := newTestRouter(t, &service.Services{CartService: cart})

	// listFn is nil: the handler panics and Recoverer answers 500
	rec := doRequest(router, http.MethodGet, "/cart", "", authHeader)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
