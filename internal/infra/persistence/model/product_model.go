package model

import (
	"time"
)

// ProductModel mirrors a document in a store's 'products' sub-collection.
// The store ID is implied by the parent path and not stored as a field.
type ProductModel struct {
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	Price       *float64  `firestore:"price"` // nil persists as null: price not available.
	Images      []string  `firestore:"images"`
	IsFeatured  bool      `firestore:"isFeatured"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}
