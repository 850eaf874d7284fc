// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/models"
)

// cartFileStore keeps the cart collection as a single JSON array.
//
// Every Load reads the whole file and every Save rewrites it. Save writes a
// temporary file in the same directory and renames it over the target, so a
// reader never observes a half-written collection. It does not coordinate
// concurrent writers.
type cartFileStore struct {
	path        string
	recordsMode string
	logger      *logger.Logger
}

// NewCartFileStore constructs a file-backed [CartStore]. recordsMode is one
// of the config.RecordsMode* values.
func NewCartFileStore(path, recordsMode string, logger *logger.Logger) CartStore {
	logger.Debug().Str("path", path).Str("records_mode", recordsMode).Msg("creating cart file store")
	return &cartFileStore{
		path:        path,
		recordsMode: recordsMode,
		logger:      logger,
	}
}

// Load reads and decodes the whole collection.
//
// A missing or malformed file yields [ErrStoreUnavailable]; in strict mode a
// bad record additionally matches [ErrMalformedRecord].
func (s *cartFileStore) Load(ctx context.Context) ([]models.CartItem, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("error reading cart file")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	items, err := decodeCartItems(data, s.recordsMode)
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("error decoding cart file")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return items, nil
}

// Save serializes items with four-space indentation and replaces the file.
func (s *cartFileStore) Save(ctx context.Context, items []models.CartItem) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	if items == nil {
		items = []models.CartItem{}
	}

	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: error encoding cart items: %w", ErrStoreUnavailable, err)
	}

	if err = writeFileAtomic(s.path, data); err != nil {
		log.Err(err).Str("path", s.path).Msg("error writing cart file")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Debug().Int("items", len(items)).Str("path", s.path).Msg("cart file saved")
	return nil
}

// writeFileAtomic writes data to a temporary sibling of path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err = tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error setting temp file mode: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing file: %w", err)
	}

	return nil
}
