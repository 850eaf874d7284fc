// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CartItem is a single product line in the shared cart.
//
// ProductID is the lookup key for update and delete, but nothing enforces
// its uniqueness: the same ID may appear several times in the collection.
// Price and Quantity are stored as received.
type CartItem struct {
	ProductID int     `json:"product_id"`
	Image     string  `json:"image"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartItemKeys are the JSON keys of [CartItem].
var CartItemKeys = []string{"product_id", "image", "name", "price", "quantity"}

// Cart is the aggregated view of the whole cart collection returned by the
// list operation.
type Cart struct {
	// TotalPrice is the sum of Price*Quantity over all products.
	TotalPrice float64 `json:"total_price"`

	// TotalQuantity is the sum of Quantity over all products.
	TotalQuantity int `json:"total_quantity"`

	// Products holds every stored item in persisted order.
	Products []CartItem `json:"products"`
}

// NewCart builds a [Cart] from items and computes its totals.
func NewCart(items []CartItem) Cart {
	cart := Cart{Products: items}
	if cart.Products == nil {
		cart.Products = []CartItem{}
	}

	for _, item := range items {
		cart.TotalPrice += item.Price * float64(item.Quantity)
		cart.TotalQuantity += item.Quantity
	}

	return cart
}
