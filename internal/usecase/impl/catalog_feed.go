// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/repository"
	"vitrina/internal/util"
)

// feedFilter is the full filter set of a catalog feed: the server-side
// equality predicates plus the two post-filter free-text terms.
type feedFilter struct {
	Query       repository.StoreQuery
	StoreTerm   string
	ProductTerm string
}

func (f feedFilter) equal(other feedFilter) bool {
	return f.Query.Equal(other.Query) &&
		f.StoreTerm == other.StoreTerm &&
		f.ProductTerm == other.ProductTerm
}

// pageFetcher is the backend call a feed loads pages through.
type pageFetcher func(ctx context.Context, query repository.StoreQuery, cursor string) (*repository.StorePage, error)

// storeFeed merges incrementally loaded catalog pages into one visible
// list: post-filter matches accumulate deduplicated by store ID, while the
// cursor and hasMore signal always track the raw page underneath. The feed
// is single-goroutine by contract; the in-flight token only guards against
// re-entrant loads from the same goroutine.
type storeFeed struct {
	filter   feedFilter
	stores   []*entity.Store
	seen     map[string]struct{}
	cursor   string
	hasMore  bool
	inFlight bool
}

// newStoreFeed starts an empty feed at the given cursor (empty for the
// first page).
func newStoreFeed(filter feedFilter, cursor string) *storeFeed {
	return &storeFeed{
		filter:  filter,
		stores:  make([]*entity.Store, 0, repository.StorePageSize),
		seen:    make(map[string]struct{}),
		cursor:  cursor,
		hasMore: true,
	}
}

// SetFilter switches the active filter set. Any change discards the
// accumulated list, the cursor and the hasMore signal, so the next load
// fetches a fresh first page.
func (f *storeFeed) SetFilter(filter feedFilter) {
	if f.filter.equal(filter) {
		return
	}

	f.filter = filter
	f.stores = make([]*entity.Store, 0, repository.StorePageSize)
	f.seen = make(map[string]struct{})
	f.cursor = ""
	f.hasMore = true
}

// LoadNext fetches one raw page and folds its matches into the visible
// list. A fetch error halts the feed (hasMore forced false) instead of
// retrying. Re-entrant calls while a load is in flight are dropped.
func (f *storeFeed) LoadNext(ctx context.Context, fetch pageFetcher) error {
	if f.inFlight || !f.hasMore {
		return nil
	}
	f.inFlight = true
	defer func() { f.inFlight = false }()

	page, err := fetch(ctx, f.filter.Query, f.cursor)
	if err != nil {
		f.hasMore = false

		return err
	}

	for _, store := range page.Stores {
		if _, dup := f.seen[store.ID]; dup {
			continue
		}
		f.seen[store.ID] = struct{}{}

		if storeMatches(store, f.filter.StoreTerm, f.filter.ProductTerm) {
			f.stores = append(f.stores, store)
		}
	}

	if page.Cursor != "" {
		f.cursor = page.Cursor
	}
	// hasMore heuristic: the raw page was exactly full. An exactly-full
	// final page therefore reports true once more and the next fetch
	// returns an empty page.
	f.hasMore = len(page.Stores) == repository.StorePageSize

	return nil
}

// Stores returns the accumulated visible list.
func (f *storeFeed) Stores() []*entity.Store {
	return f.stores
}

// Cursor returns the cursor after the last loaded page.
func (f *storeFeed) Cursor() string {
	return f.cursor
}

// HasMore reports whether another page is worth fetching.
func (f *storeFeed) HasMore() bool {
	return f.hasMore
}

// storeMatches applies the free-text rule: the store term must occur in
// the store's name or description, the product term in any attached
// product's name or description, both case-insensitively. An absent term
// always matches; both conditions must hold.
func storeMatches(store *entity.Store, storeTerm, productTerm string) bool {
	if storeTerm != "" {
		if !util.ContainsFold(store.Name, storeTerm) && !util.ContainsFold(store.Description, storeTerm) {
			return false
		}
	}

	if productTerm != "" {
		found := false
		for _, product := range store.Products {
			if util.ContainsFold(product.Name, productTerm) || util.ContainsFold(product.Description, productTerm) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
