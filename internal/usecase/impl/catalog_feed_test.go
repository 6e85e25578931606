package impl

import (
	"context"
	"fmt"
	"testing"

	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedStore(id, name, description string, productNames ...string) *entity.Store {
	products := make([]*entity.Product, 0, len(productNames))
	for i, pn := range productNames {
		products = append(products, &entity.Product{
			ID:      fmt.Sprintf("%s-p%d", id, i),
			StoreID: id,
			Name:    pn,
		})
	}

	return &entity.Store{
		ID:          id,
		Name:        name,
		Description: description,
		Products:    products,
	}
}

func fullPage(prefix string, cursorOut string) *repository.StorePage {
	stores := make([]*entity.Store, 0, repository.StorePageSize)
	for i := 0; i < repository.StorePageSize; i++ {
		id := fmt.Sprintf("%s-%d", prefix, i)
		stores = append(stores, feedStore(id, "Tienda "+id, ""))
	}

	return &repository.StorePage{Stores: stores, Cursor: cursorOut}
}

// pagedFetcher serves a fixed page sequence and records every call.
func pagedFetcher(t *testing.T, pages []*repository.StorePage) (pageFetcher, *[]string) {
	t.Helper()
	cursors := &[]string{}
	calls := 0

	return func(_ context.Context, _ repository.StoreQuery, cursor string) (*repository.StorePage, error) {
		*cursors = append(*cursors, cursor)
		require.Less(t, calls, len(pages), "fetched past the prepared page sequence")
		page := pages[calls]
		calls++

		return page, nil
	}, cursors
}

func TestStoreFeed_HasMoreHeuristic(t *testing.T) {
	short := &repository.StorePage{
		Stores: []*entity.Store{feedStore("c-0", "Tienda c-0", ""), feedStore("c-1", "Tienda c-1", ""), feedStore("c-2", "Tienda c-2", "")},
		Cursor: "c-2",
	}
	fetch, cursors := pagedFetcher(t, []*repository.StorePage{
		fullPage("a", "a-5"),
		fullPage("b", "b-5"),
		short,
	})

	feed := newStoreFeed(feedFilter{}, "")
	assert.True(t, feed.HasMore())

	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	assert.True(t, feed.HasMore())
	assert.Equal(t, "a-5", feed.Cursor())

	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	assert.True(t, feed.HasMore())
	assert.Equal(t, "b-5", feed.Cursor())

	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	assert.False(t, feed.HasMore())
	assert.Equal(t, "c-2", feed.Cursor())

	assert.Equal(t, []string{"", "a-5", "b-5"}, *cursors)
	assert.Len(t, feed.Stores(), 2*repository.StorePageSize+3)
}

func TestStoreFeed_ExactlyFullFinalPage(t *testing.T) {
	// An exactly-full last page still reports hasMore; the follow-up
	// fetch comes back empty and settles it.
	fetch, _ := pagedFetcher(t, []*repository.StorePage{
		fullPage("a", "a-5"),
		{Stores: []*entity.Store{}, Cursor: ""},
	})

	feed := newStoreFeed(feedFilter{}, "")
	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	assert.True(t, feed.HasMore())

	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	assert.False(t, feed.HasMore())
	assert.Equal(t, "a-5", feed.Cursor(), "empty page must not clobber the cursor")
	assert.Len(t, feed.Stores(), repository.StorePageSize)
}

func TestStoreFeed_DedupAcrossPages(t *testing.T) {
	shared := feedStore("dup", "Tienda dup", "")
	pageA := fullPage("a", "a-5")
	pageA.Stores[repository.StorePageSize-1] = shared
	pageB := fullPage("b", "b-5")
	pageB.Stores[0] = shared

	fetch, _ := pagedFetcher(t, []*repository.StorePage{pageA, pageB})

	feed := newStoreFeed(feedFilter{}, "")
	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	require.NoError(t, feed.LoadNext(context.Background(), fetch))

	ids := make(map[string]int)
	for _, store := range feed.Stores() {
		ids[store.ID]++
	}
	assert.Equal(t, 1, ids["dup"])
	assert.Len(t, feed.Stores(), 2*repository.StorePageSize-1)
}

func TestStoreFeed_FilterChangeResets(t *testing.T) {
	fetch, _ := pagedFetcher(t, []*repository.StorePage{fullPage("a", "a-5")})

	feed := newStoreFeed(feedFilter{}, "")
	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	require.NotEmpty(t, feed.Stores())

	// Same filter set: nothing moves.
	feed.SetFilter(feedFilter{})
	assert.NotEmpty(t, feed.Stores())
	assert.Equal(t, "a-5", feed.Cursor())

	// Changed filter set: list, cursor and hasMore all start over.
	feed.SetFilter(feedFilter{Query: repository.StoreQuery{Category: "moda"}})
	assert.Empty(t, feed.Stores())
	assert.Empty(t, feed.Cursor())
	assert.True(t, feed.HasMore())
}

func TestStoreFeed_FetchErrorHaltsFeed(t *testing.T) {
	calls := 0
	fetch := func(_ context.Context, _ repository.StoreQuery, _ string) (*repository.StorePage, error) {
		calls++

		return nil, errors.New("backend unavailable")
	}

	feed := newStoreFeed(feedFilter{}, "")
	err := feed.LoadNext(context.Background(), fetch)
	require.Error(t, err)
	assert.False(t, feed.HasMore())

	// A halted feed never fetches again.
	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	assert.Equal(t, 1, calls)
}

func TestStoreFeed_ReentrantLoadDropped(t *testing.T) {
	feed := newStoreFeed(feedFilter{}, "")

	outerCalls := 0
	var fetch pageFetcher
	fetch = func(ctx context.Context, _ repository.StoreQuery, _ string) (*repository.StorePage, error) {
		outerCalls++
		// A load triggered while this one is still in flight is a no-op.
		require.NoError(t, feed.LoadNext(ctx, fetch))

		return fullPage("a", "a-5"), nil
	}

	require.NoError(t, feed.LoadNext(context.Background(), fetch))
	assert.Equal(t, 1, outerCalls)
	assert.Len(t, feed.Stores(), repository.StorePageSize)
}

func TestStoreMatches_FreeTextRules(t *testing.T) {
	store := feedStore("s1", "Dulcería Lima", "Postres artesanales", "Torta de chocolate", "Alfajores")

	// Case-insensitive substring on name or description.
	assert.True(t, storeMatches(store, "dulcería", ""))
	assert.True(t, storeMatches(store, "ARTESANALES", ""))
	assert.False(t, storeMatches(store, "ferretería", ""))

	// Product term matches any attached product.
	assert.True(t, storeMatches(store, "", "chocolate"))
	assert.True(t, storeMatches(store, "", "ALFAJORES"))
	assert.False(t, storeMatches(store, "", "zapatillas"))

	// Both terms present: both must hold.
	assert.True(t, storeMatches(store, "dulcería", "torta"))
	assert.False(t, storeMatches(store, "dulcería", "zapatillas"))
	assert.False(t, storeMatches(store, "ferretería", "torta"))

	// Absent terms always match.
	assert.True(t, storeMatches(store, "", ""))
}
