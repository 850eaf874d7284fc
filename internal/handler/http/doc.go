// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the go-cart server.
//
// It wires routes, request handlers and middleware. Cross-cutting concerns
// (CORS, request tracing, access logging, response compression, bearer
// token extraction) are handled here before requests reach the service
// layer. Every error body has the shape {"detail": "..."}.
package http
