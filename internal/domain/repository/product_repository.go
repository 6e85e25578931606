// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/errors"
)

// ErrProductNotFound is returned when a product is not found in its store's sub-collection.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations on a store's products sub-collection.
type ProductRepository interface {
	// Create persists a new product under its store. The product ID must
	// already be set; the creation timestamp is written server-side.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product from a store's sub-collection.
	FindByID(ctx context.Context, storeID, productID string) (*entity.Product, error)

	// FindByStore loads the entire sub-collection of a store, unpaginated.
	// Returns an empty slice, never nil, when the store has no products.
	FindByStore(ctx context.Context, storeID string) ([]*entity.Product, error)

	// Update overwrites the mutable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product record. Blob cleanup happens before this
	// call; the record itself is removed last.
	Delete(ctx context.Context, storeID, productID string) error

	// FindLatest fans out across every store and returns the most recently
	// created products, ordered by creation time descending, capped at limit.
	FindLatest(ctx context.Context, limit int) ([]*entity.Product, error)
}
