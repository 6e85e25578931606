// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"strings"

	"vitrina/internal/domain/entity"
	"vitrina/internal/errors"
)

// ErrStoreNotFound is a domain-specific error returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StorePageSize is the fixed page size of the store catalog.
const StorePageSize = 6

// FieldPredicate is a single server-side equality constraint.
// The catalog supports equality only; no range or inequality predicates.
type FieldPredicate struct {
	Field string
	Value string
}

// StoreQuery is the validated, strongly-typed specification of a catalog
// query. Absent filters are omitted entirely, never turned into an
// empty-result guard.
type StoreQuery struct {
	Category string // Optional category slug.
	City     string // Optional city slug, lower-cased before comparison.
}

// Normalize lower-cases the city slug and trims both filters.
func (q StoreQuery) Normalize() StoreQuery {
	q.Category = strings.TrimSpace(q.Category)
	q.City = strings.ToLower(strings.TrimSpace(q.City))

	return q
}

// Predicates composes the ordered equality predicate list for the query.
func (q StoreQuery) Predicates() []FieldPredicate {
	var preds []FieldPredicate
	if q.Category != "" {
		preds = append(preds, FieldPredicate{Field: "category", Value: q.Category})
	}
	if q.City != "" {
		preds = append(preds, FieldPredicate{Field: "city", Value: q.City})
	}

	return preds
}

// Equal reports whether two queries describe the same filter set.
func (q StoreQuery) Equal(other StoreQuery) bool {
	a, b := q.Normalize(), other.Normalize()

	return a.Category == b.Category && a.City == b.City
}

// StorePage is one bounded page of the catalog. The cursor is the opaque
// identifier of the last record, or empty when the page was empty; callers
// derive hasMore as len(Stores) == StorePageSize.
type StorePage struct {
	Stores []*entity.Store
	Cursor string
}

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// Create persists a new store document under the given identifier.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a single store with its full products
	// sub-collection attached. Products is never nil on a found store.
	FindByID(ctx context.Context, id string) (*entity.Store, error)

	// FindByOwner retrieves all stores created by a user.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Store, error)

	// Update overwrites the mutable fields of an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// ListPage fetches one page of stores ordered by creation time
	// descending, continuing after the opaque cursor (empty for the first
	// page), with the query's equality predicates applied server-side and
	// the products sub-collection attached to every store.
	ListPage(ctx context.Context, query StoreQuery, cursor string) (*StorePage, error)

	// IncrementCounter applies an atomic delta to one of the store's
	// engagement counters. Unfollow events carry a negative delta;
	// counters never drop below zero.
	IncrementCounter(ctx context.Context, storeID, counter string, delta int64) error

	// AppendPayment appends a payment record to the store's history.
	// The history is append-only; existing entries are never touched.
	AppendPayment(ctx context.Context, storeID string, payment entity.Payment) error
}
