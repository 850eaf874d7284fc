// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/models"
)

const cartItemsTable = "cart_items"

// cartSQLStore keeps the cart collection in the cart_items table. The
// position column preserves collection order across Save/Load.
type cartSQLStore struct {
	db          *DB
	recordsMode string
	logger      *logger.Logger
}

// NewCartSQLStore constructs a database-backed [CartStore].
func NewCartSQLStore(db *DB, recordsMode string, logger *logger.Logger) CartStore {
	logger.Debug().Str("dialect", db.dialect).Str("records_mode", recordsMode).Msg("creating cart sql store")
	return &cartSQLStore{
		db:          db,
		recordsMode: recordsMode,
		logger:      logger,
	}
}

// Load selects every row ordered by position.
func (s *cartSQLStore) Load(ctx context.Context) ([]models.CartItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select("product_id", "image", "name", "price", "quantity").
		From(cartItemsTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartSQLStore.Load").Msg("error building select query")
		return nil, errors.Join(ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logDBError(log, "*cartSQLStore.Load", err)
		return nil, errors.Join(ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.CartItem, 0)
	for rows.Next() {
		var item models.CartItem
		if err = rows.Scan(&item.ProductID, &item.Image, &item.Name, &item.Price, &item.Quantity); err != nil {
			log.Err(err).Str("func", "*cartSQLStore.Load").Msg("error scanning cart row")
			return nil, errors.Join(ErrStoreUnavailable, ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		s.logDBError(log, "*cartSQLStore.Load", err)
		return nil, errors.Join(ErrStoreUnavailable, ErrScanningRows, err)
	}

	if err = validateRecords(items, s.recordsMode); err != nil {
		log.Err(err).Str("func", "*cartSQLStore.Load").Msg("stored cart record rejected")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return items, nil
}

// Save replaces every row inside a single transaction.
func (s *cartSQLStore) Save(ctx context.Context, items []models.CartItem) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := s.db.builder.Delete(cartItemsTable).ToSql()
	if err != nil {
		return errors.Join(ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	var insertQuery string
	var insertArgs []any
	if len(items) > 0 {
		insert := s.db.builder.
			Insert(cartItemsTable).
			Columns("position", "product_id", "image", "name", "price", "quantity")
		for i, item := range items {
			insert = insert.Values(i, item.ProductID, item.Image, item.Name, item.Price, item.Quantity)
		}

		insertQuery, insertArgs, err = insert.ToSql()
		if err != nil {
			return errors.Join(ErrStoreUnavailable, ErrBuildingSQLQuery, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logDBError(log, "*cartSQLStore.Save", err)
		return errors.Join(ErrStoreUnavailable, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		s.logDBError(log, "*cartSQLStore.Save", err)
		return errors.Join(ErrStoreUnavailable, ErrExecutingQuery, err)
	}

	if insertQuery != "" {
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			s.logDBError(log, "*cartSQLStore.Save", err)
			return errors.Join(ErrStoreUnavailable, ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logDBError(log, "*cartSQLStore.Save", err)
		return errors.Join(ErrStoreUnavailable, ErrCommitingTransaction, err)
	}

	log.Debug().Int("items", len(items)).Msg("cart rows saved")
	return nil
}

func (s *cartSQLStore) logDBError(log *logger.Logger, fn string, err error) {
	code := postgresError(err)
	log.Err(err).
		Str("func", fn).
		Str("sqlstate", code).
		Bool("transient", isTransientPgError(code)).
		Msg("database error")
}
