// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.RecordsMode {
	case RecordsModeCoerce, RecordsModeStrict:
	default:
		return fmt.Errorf("%w: unknown records mode %q", ErrInvalidStorageConfigs, cfg.Storage.RecordsMode)
	}

	if cfg.Storage.Files.CredentialsPath == "" {
		return fmt.Errorf("%w: credentials path is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.ProductsPath == "" {
		return fmt.Errorf("%w: neither products path nor database DSN is set", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
