// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/models"
)

// decodeCartItems parses a JSON array of cart records.
//
// In [config.RecordsModeCoerce] unknown keys are ignored and missing keys
// decode to zero values. In [config.RecordsModeStrict] every record must have
// exactly the known keys and pass [validateRecord].
func decodeCartItems(data []byte, mode string) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)

	if mode != config.RecordsModeStrict {
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("error decoding cart items: %w", err)
		}
		if items == nil {
			items = make([]models.CartItem, 0)
		}
		return items, nil
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error decoding cart items: %w", err)
	}

	for i, record := range raw {
		if len(record) != len(models.CartItemKeys) {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", ErrMalformedRecord, i, len(record), len(models.CartItemKeys))
		}
		for _, field := range models.CartItemKeys {
			if _, ok := record[field]; !ok {
				return nil, fmt.Errorf("%w: record %d is missing %q", ErrMalformedRecord, i, field)
			}
		}

		encoded, _ := json.Marshal(record)
		dec := json.NewDecoder(bytes.NewReader(encoded))
		dec.DisallowUnknownFields()

		var item models.CartItem
		if err := dec.Decode(&item); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedRecord, i, err)
		}
		if err := validateRecord(item); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		items = append(items, item)
	}

	return items, nil
}

// validateRecords applies [validateRecord] to every item when mode is strict.
func validateRecords(items []models.CartItem, mode string) error {
	if mode != config.RecordsModeStrict {
		return nil
	}

	for i, item := range items {
		if err := validateRecord(item); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return nil
}

func validateRecord(item models.CartItem) error {
	switch {
	case item.Price < 0:
		return fmt.Errorf("%w: negative price", ErrMalformedRecord)
	case item.Quantity < 0:
		return fmt.Errorf("%w: negative quantity", ErrMalformedRecord)
	}

	return nil
}
