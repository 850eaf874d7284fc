// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is the body returned by operations that only report an
// outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned on any failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
