// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Records modes accepted by Storage.RecordsMode.
const (
	// RecordsModeCoerce ignores unknown fields and zero-fills missing ones.
	RecordsModeCoerce = "coerce"
	// RecordsModeStrict rejects the whole collection when any record has
	// unknown fields or invalid values.
	RecordsModeStrict = "strict"
)

const (
	DefaultHTTPAddress     = "0.0.0.0:8000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTokenDuration   = 30 * time.Minute
	DefaultCredentialsPath = "users.json"
	DefaultProductsPath    = "products.json"
	DefaultVersion         = "dev"
	DefaultAdapterAddress  = "http://localhost:8000"
	DefaultAdapterTimeout  = 15 * time.Second
)

// defaultConfig returns the lowest-priority layer merged by the builder.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			Files: Files{
				CredentialsPath: DefaultCredentialsPath,
				ProductsPath:    DefaultProductsPath,
			},
			RecordsMode: RecordsModeCoerce,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
