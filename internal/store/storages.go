// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/internal/logger"
)

// Storages bundles the stores used by the service layer.
type Storages struct {
	CredentialStore CredentialStore
	CartStore       CartStore

	// db is non-nil when the cart lives in a database.
	db *DB
}

// NewStorages builds the credential store and the cart store. When
// cfg.DB.DSN is set the cart is kept in that database (migrated on start),
// otherwise in the products file.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		CredentialStore: NewCredentialsFileStore(cfg.Files.CredentialsPath, log),
	}

	if cfg.DB.DSN == "" {
		storages.CartStore = NewCartFileStore(cfg.Files.ProductsPath, cfg.RecordsMode, log)
		return storages, nil
	}

	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}

	storages.db = db
	storages.CartStore = NewCartSQLStore(db, cfg.RecordsMode, log)

	return storages, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
