// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/mock"
	"github.com/MKhiriev/go-cart/internal/store"
	"github.com/MKhiriev/go-cart/models"
)

const testToken = "token"

func newTestCartSvc(t *testing.T, ctrl *gomock.Controller) (CartService, *mock.MockCartStore, *mock.MockTokenService) {
	t.Helper()
	cartStore := mock.NewMockCartStore(ctrl)
	tokenService := mock.NewMockTokenService(ctrl)

	return NewCartService(cartStore, tokenService, true, logger.Nop()), cartStore, tokenService
}

func sampleItems() []models.CartItem {
	return []models.CartItem{
		{ProductID: 1, Image: "a.png", Name: "A", Price: 10, Quantity: 2},
		{ProductID: 2, Image: "b.png", Name: "B", Price: 5, Quantity: 1},
	}
}

// ── token verification ──────────────────────────────────────────────────────

func TestCartService_InvalidTokenNeverTouchesStore(t *testing.T) {
	ops := map[string]func(CartService) error{
		"add":    func(s CartService) error { return s.Add(context.Background(), "bad", models.CartItem{ProductID: 1}) },
		"update": func(s CartService) error { return s.Update(context.Background(), "bad", 1, 3) },
		"delete": func(s CartService) error { return s.Delete(context.Background(), "bad", 1) },
		"list": func(s CartService) error {
			_, err := s.List(context.Background(), "bad")
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, tokenService := newTestCartSvc(t, ctrl)

			// cartStore has no expectations: any call fails the test
			tokenService.EXPECT().Verify(gomock.Any(), "bad").Return("", ErrInvalidToken)

			assert.ErrorIs(t, op(svc), ErrInvalidToken)
		})
	}
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestCartService_Add_AppendsUnconditionally(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cartStore, tokenService := newTestCartSvc(t, ctrl)
	ctx := context.Background()

	duplicate := models.CartItem{ProductID: 1, Name: "A again", Price: 10, Quantity: 7}
	want := append(sampleItems(), duplicate)

	gomock.InOrder(
		tokenService.EXPECT().Verify(ctx, testToken).Return("alice", nil),
		cartStore.EXPECT().Load(ctx).Return(sampleItems(), nil),
		cartStore.EXPECT().Save(ctx, want).Return(nil),
	)

	require.NoError(t, svc.Add(ctx, testToken, duplicate))
}

func TestCartService_Add_StoreErrors(t *testing.T) {
	t.Run("load fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, cartStore, tokenService := newTestCartSvc(t, ctrl)

		tokenService.EXPECT().Verify(gomock.Any(), testToken).Return("alice", nil)
		cartStore.EXPECT().Load(gomock.Any()).Return(nil, store.ErrStoreUnavailable)

		assert.ErrorIs(t, svc.Add(context.Background(), testToken, models.CartItem{}), store.ErrStoreUnavailable)
	})

	t.Run("save fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, cartStore, tokenService := newTestCartSvc(t, ctrl)

		tokenService.EXPECT().Verify(gomock.Any(), testToken).Return("alice", nil)
		cartStore.EXPECT().Load(gomock.Any()).Return([]models.CartItem{}, nil)
		cartStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrStoreUnavailable)

		assert.ErrorIs(t, svc.Add(context.Background(), testToken, models.CartItem{}), store.ErrStoreUnavailable)
	})
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestCartService_Update_ChangesOnlyFirstMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cartStore, tokenService := newTestCartSvc(t, ctrl)

	items := append(sampleItems(), models.CartItem{ProductID: 1, Name: "A dup", Price: 10, Quantity: 9})
	want := []models.CartItem{
		{ProductID: 1, Image: "a.png", Name: "A", Price: 10, Quantity: 5},
		{ProductID: 2, Image: "b.png", Name: "B", Price: 5, Quantity: 1},
		{ProductID: 1, Name: "A dup", Price: 10, Quantity: 9},
	}

	tokenService.EXPECT().Verify(gomock.Any(), testToken).Return("alice", nil)
	cartStore.EXPECT().Load(gomock.Any()).Return(items, nil)
	cartStore.EXPECT().Save(gomock.Any(), want).Return(nil)

	require.NoError(t, svc.Update(context.Background(), testToken, 1, 5))
}

func TestCartService_Update_NotFoundDoesNotSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cartStore, tokenService := newTestCartSvc(t, ctrl)

	tokenService.EXPECT().Verify(gomock.Any(), testToken).Return("alice", nil)
	cartStore.EXPECT().Load(gomock.Any()).Return(sampleItems(), nil)
	cartStore.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Update(context.Background(), testToken, 42, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestCartService_Delete_RemovesFirstOccurrenceOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cartStore, tokenService := newTestCartSvc(t, ctrl)

	items := []models.CartItem{
		{ProductID: 3, Name: "first", Quantity: 1},
		{ProductID: 2, Name: "other", Quantity: 1},
		{ProductID: 3, Name: "second", Quantity: 1},
	}
	want := []models.CartItem{
		{ProductID: 2, Name: "other", Quantity: 1},
		{ProductID: 3, Name: "second", Quantity: 1},
	}

	tokenService.EXPECT().Verify(gomock.Any(), testToken).Return("alice", nil)
	cartStore.EXPECT().Load(gomock.Any()).Return(items, nil)
	cartStore.EXPECT().Save(gomock.Any(), want).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), testToken, 3))
}

func TestCartService_Delete_NotFoundDoesNotSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cartStore, tokenService := newTestCartSvc(t, ctrl)

	tokenService.EXPECT().Verify(gomock.Any(), testToken).Return("alice", nil)
	cartStore.EXPECT().Load(gomock.Any()).Return([]models.CartItem{}, nil)

	err := svc.Delete(context.Background(), testToken, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── List ────────────────────────────────────────────────────────────────────

func TestCartService_List_Totals(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.CartItem
		wantPrice    float64
		wantQuantity int
		wantProducts int
	}{
		{name: "sample", items: sampleItems(), wantPrice: 25, wantQuantity: 3, wantProducts: 2},
		{name: "empty", items: []models.CartItem{}, wantProducts: 0},
		{name: "nil from store", items: nil, wantProducts: 0},
		{
			name:         "zero quantity contributes nothing",
			items:        []models.CartItem{{ProductID: 1, Price: 99, Quantity: 0}, {ProductID: 2, Price: 1.5, Quantity: 2}},
			wantPrice:    3,
			wantQuantity: 2,
			wantProducts: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, cartStore, tokenService := newTestCartSvc(t, ctrl)

			tokenService.EXPECT().Verify(gomock.Any(), testToken).Return("alice", nil)
			cartStore.EXPECT().Load(gomock.Any()).Return(tt.items, nil)

			cart, err := svc.List(context.Background(), testToken)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPrice, cart.TotalPrice, 1e-9)
			assert.Equal(t, tt.wantQuantity, cart.TotalQuantity)
			assert.NotNil(t, cart.Products)
			assert.Len(t, cart.Products, tt.wantProducts)
		})
	}
}

func TestCartService_List_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cartStore, tokenService := newTestCartSvc(t, ctrl)

	tokenService.EXPECT().Verify(gomock.Any(), testToken).Return("alice", nil)
	cartStore.EXPECT().Load(gomock.Any()).Return(nil, errors.Join(store.ErrStoreUnavailable, os.ErrNotExist))

	_, err := svc.List(context.Background(), testToken)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ── end to end over the file store ──────────────────────────────────────────

func newFileBackedCartSvc(t *testing.T, lockWrites bool) (CartService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	tokens := NewTokenService("secret", "", time.Minute, logger.Nop())
	token, err := tokens.Issue(context.Background(), "alice")
	require.NoError(t, err)

	cartStore := store.NewCartFileStore(path, config.RecordsModeCoerce, logger.Nop())
	return NewCartService(cartStore, tokens, lockWrites, logger.Nop()), token.SignedString
}

func TestCartService_AddThenList(t *testing.T) {
	svc, token := newFileBackedCartSvc(t, true)
	ctx := context.Background()

	item := models.CartItem{ProductID: 7, Image: "x.png", Name: "X", Price: 2.5, Quantity: 4}
	require.NoError(t, svc.Add(ctx, token, item))

	cart, err := svc.List(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{item}, cart.Products)
	assert.Equal(t, 4, cart.TotalQuantity)
	assert.InDelta(t, 10.0, cart.TotalPrice, 1e-9)

	require.NoError(t, svc.Update(ctx, token, 7, 1))
	require.NoError(t, svc.Delete(ctx, token, 7))
	assert.ErrorIs(t, svc.Delete(ctx, token, 7), ErrNotFound)

	cart, err = svc.List(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, cart.Products)
}

func TestCartService_ConcurrentAdds_NoLostUpdates(t *testing.T) {
	svc, token := newFileBackedCartSvc(t, true)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, svc.Add(ctx, token, models.CartItem{ProductID: id, Price: 1, Quantity: 1}))
		}(i)
	}
	wg.Wait()

	cart, err := svc.List(ctx, token)
	require.NoError(t, err)
	assert.Len(t, cart.Products, writers)
	assert.Equal(t, writers, cart.TotalQuantity)
}

func TestCartService_ConcurrentAdds_WithoutLock(t *testing.T) {
	svc, token := newFileBackedCartSvc(t, false)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = svc.Add(ctx, token, models.CartItem{ProductID: id, Price: 1, Quantity: 1})
		}(i)
	}
	wg.Wait()

	// lost updates are possible; the file must still be a valid collection
	cart, err := svc.List(ctx, token)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(cart.Products), 1)
	assert.LessOrEqual(t, len(cart.Products), writers)
}
