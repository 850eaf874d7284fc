// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the go-cart
// server and client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, cart behaviour switches and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential file and the cart
	// collection backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and CORS settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the command-line client to reach the
	// server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify access tokens.
	// When empty, a random key is generated once at startup and kept in
	// memory only, so a restart invalidates every issued token.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is an optional "iss" claim. When set, it is embedded in
	// every issued token and required on verification.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid.
	// Defaults to [DefaultTokenDuration].
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// DisableCartWriteLock turns off the process-wide lock around cart
	// load-mutate-save cycles, allowing concurrent writers to lose updates.
	// Env: APP_DISABLE_CART_WRITE_LOCK
	DisableCartWriteLock bool `env:"DISABLE_CART_WRITE_LOCK"`

	// ValidateCartItems enables rejection of items with an empty name or a
	// negative price or quantity.
	// Env: APP_VALIDATE_CART_ITEMS
	ValidateCartItems bool `env:"VALIDATE_CART_ITEMS"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings. When DSN is
	// set, the cart collection is kept in the database instead of a file.
	DB DB `envPrefix:"DB_"`

	// Files holds the flat-file locations.
	Files Files `envPrefix:"FILES_"`

	// RecordsMode controls how stored cart records are decoded:
	// [RecordsModeCoerce] or [RecordsModeStrict].
	// Env: STORAGE_RECORDS_MODE
	RecordsMode string `env:"RECORDS_MODE"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or an SQLite file
	// path ("file:cart.db" or "cart.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds flat-file paths.
type Files struct {
	// CredentialsPath is the JSON object mapping usernames to bcrypt hashes.
	// Env: STORAGE_FILES_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH"`

	// ProductsPath is the JSON array holding the cart collection.
	// Env: STORAGE_FILES_PRODUCTS_PATH
	ProductsPath string `env:"PRODUCTS_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma separated in env.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds client-side settings for reaching the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields, defaults fill the rest):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
