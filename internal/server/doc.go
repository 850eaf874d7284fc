// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the go-cart server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
