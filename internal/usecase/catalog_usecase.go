// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vitrina/internal/domain/entity"
)

// --- Input DTOs ---

// CatalogQueryInput carries the combinable catalog filters. Category and
// city run as server-side equality predicates; the two free-text terms are
// matched as case-insensitive substrings after each page is fetched.
type CatalogQueryInput struct {
	Category    string // categoria
	City        string // ciudad
	StoreTerm   string // tienda
	ProductTerm string // producto
	Cursor      string // Opaque cursor from the previous page; empty for the first.

	// Fill keeps fetching subsequent pages until a post-filtered page's
	// worth of matches accumulates or the pages run out. Only meaningful
	// when a free-text term is set.
	Fill bool
}

// --- Output DTOs ---

// CatalogPageOutput is one page of the filtered catalog. HasMore follows
// the fixed heuristic: true iff the last fetched raw page was exactly full,
// so an exactly-full final page is followed by one empty fetch.
type CatalogPageOutput struct {
	Stores  []*entity.Store
	Cursor  string
	HasMore bool
}

// CatalogUsecase defines the public browsing operations over the store
// catalog. All of them are anonymous; no session is involved.
type CatalogUsecase interface {
	// BrowseStores fetches one (optionally filled) page of the catalog.
	BrowseStores(ctx context.Context, input CatalogQueryInput) (*CatalogPageOutput, error)

	// GetStore reads one store with its full product list attached.
	// Products is always an empty list when the store has none, never nil.
	GetStore(ctx context.Context, id string) (*entity.Store, error)

	// NearbyStores walks the catalog pages and keeps stores whose
	// coordinates fall within radiusKm of the given point, capped at limit.
	NearbyStores(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]*entity.Store, error)
}
