// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vitrina/internal/domain/entity"
)

// Result caps for the product discovery reads.
const (
	RelatedProductsLimit = 4
	LatestProductsLimit  = 8
)

// --- Input DTOs ---

// AddProductInput defines the data required to add a product to a store.
type AddProductInput struct {
	Name        string
	Description string
	Price       *float64 // nil means "price not available".
	IsFeatured  bool
	Images      []ImageUpload
}

// UpdateProductInput defines the editable fields of a product.
// Nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ClearPrice  bool     `json:"clear_price,omitempty"` // Explicitly unset the price.
	IsFeatured  *bool    `json:"is_featured,omitempty"`
}

// ProductUsecase defines the interface for product operations. Mutations
// require the calling user to own the enclosing store.
type ProductUsecase interface {
	AddProduct(ctx context.Context, userID, storeID string, input AddProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, storeID, productID string) (*entity.Product, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, userID, storeID, productID string, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes the product's image blobs first, then the
	// record, so a half-failed delete never leaves a record pointing at
	// missing images.
	DeleteProduct(ctx context.Context, userID, storeID, productID string) error

	// RelatedProducts returns other products of the same store, newest
	// first, excluding the given one, capped at RelatedProductsLimit.
	RelatedProducts(ctx context.Context, storeID, productID string) ([]*entity.Product, error)

	// LatestProducts fans out across all stores for the most recent
	// products, capped at LatestProductsLimit.
	LatestProducts(ctx context.Context) ([]*entity.Product, error)
}
