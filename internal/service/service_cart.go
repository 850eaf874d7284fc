// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/store"
	"github.com/MKhiriev/go-cart/models"
)

// cartService implements CartService as whole-collection
// load-mutate-save cycles over a CartStore.
//
// Product ids are not unique. Update and Delete act on the first item in
// collection order whose ProductID matches.
type cartService struct {
	cartStore    store.CartStore
	tokenService TokenService

	// writeMu serializes load-mutate-save cycles within this process.
	writeMu sync.Locker

	logger *logger.Logger
}

// NewCartService constructs a CartService. With lockWrites false, concurrent
// writers may overwrite each other's changes (last save wins).
func NewCartService(cartStore store.CartStore, tokenService TokenService, lockWrites bool, logger *logger.Logger) CartService {
	var mu sync.Locker = noopLocker{}
	if lockWrites {
		mu = &sync.Mutex{}
	}

	return &cartService{
		cartStore:    cartStore,
		tokenService: tokenService,
		writeMu:      mu,
		logger:       logger,
	}
}

// Add appends item to the end of the collection. Existing items with the
// same ProductID are left untouched.
func (c *cartService) Add(ctx context.Context, token string, item models.CartItem) error {
	return c.mutate(ctx, token, "Add", func(items []models.CartItem) ([]models.CartItem, error) {
		return append(items, item), nil
	})
}

// Update sets the quantity of the first item matching productID.
// Returns ErrNotFound, without saving, if none matches.
func (c *cartService) Update(ctx context.Context, token string, productID, quantity int) error {
	return c.mutate(ctx, token, "Update", func(items []models.CartItem) ([]models.CartItem, error) {
		i := indexOfProduct(items, productID)
		if i < 0 {
			return nil, fmt.Errorf("%w: product_id %d", ErrNotFound, productID)
		}
		items[i].Quantity = quantity
		return items, nil
	})
}

// Delete removes the first item matching productID. Later duplicates stay.
// Returns ErrNotFound, without saving, if none matches.
func (c *cartService) Delete(ctx context.Context, token string, productID int) error {
	return c.mutate(ctx, token, "Delete", func(items []models.CartItem) ([]models.CartItem, error) {
		i := indexOfProduct(items, productID)
		if i < 0 {
			return nil, fmt.Errorf("%w: product_id %d", ErrNotFound, productID)
		}
		return slices.Delete(items, i, i+1), nil
	})
}

// List returns the collection with its totals.
func (c *cartService) List(ctx context.Context, token string) (models.Cart, error) {
	log := logger.FromContext(ctx)

	if _, err := c.tokenService.Verify(ctx, token); err != nil {
		return models.Cart{}, err
	}

	items, err := c.cartStore.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "*cartService.List").Msg("error loading cart")
		return models.Cart{}, fmt.Errorf("error loading cart: %w", err)
	}

	return models.NewCart(items), nil
}

// mutate verifies token, then runs one locked load-apply-save cycle.
// Nothing is saved when apply fails.
func (c *cartService) mutate(ctx context.Context, token, op string, apply func([]models.CartItem) ([]models.CartItem, error)) error {
	log := logger.FromContext(ctx)

	subject, err := c.tokenService.Verify(ctx, token)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	items, err := c.cartStore.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "*cartService."+op).Msg("error loading cart")
		return fmt.Errorf("error loading cart: %w", err)
	}

	items, err = apply(items)
	if err != nil {
		log.Debug().Err(err).Str("func", "*cartService."+op).Msg("cart left unchanged")
		return err
	}

	if err = c.cartStore.Save(ctx, items); err != nil {
		log.Err(err).Str("func", "*cartService."+op).Msg("error saving cart")
		return fmt.Errorf("error saving cart: %w", err)
	}

	log.Info().Str("op", op).Str("subject", subject).Int("items", len(items)).Msg("cart saved")
	return nil
}

func indexOfProduct(items []models.CartItem, productID int) int {
	return slices.IndexFunc(items, func(item models.CartItem) bool {
		return item.ProductID == productID
	})
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}
