// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Product is a child entity of exactly one store. Ownership is inherited
// from the store; the StoreID field is a back-reference, not ownership.
type Product struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price"` // nil means "price not available".
	Images      []string  `json:"images"`
	IsFeatured  bool      `json:"is_featured,omitempty"`
	CreatedAt   time.Time `json:"created_at"` // Used for recency ordering.
}

// HasPrice reports whether the product has a published price.
func (p *Product) HasPrice() bool {
	return p.Price != nil
}
