package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	mockRepo "vitrina/internal/mocks/repository"
	"vitrina/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	storeRepo *mockRepo.MockStoreRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		StoreRepo: storeRepo,
		Logger:    logger,
	})

	return catalogServiceFixtures{service: service, storeRepo: storeRepo}
}

func TestCatalogService_BrowseStores_SinglePage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	query := repository.StoreQuery{Category: "moda", City: "lima"}
	fx.storeRepo.EXPECT().
		ListPage(ctx, query, "").
		Return(fullPage("a", "a-5"), nil).
		Once()

	out, err := fx.service.BrowseStores(ctx, usecase.CatalogQueryInput{
		Category: "moda",
		City:     "Lima", // Normalized to lower case before it reaches the backend.
	})
	require.NoError(t, err)

	assert.Len(t, out.Stores, repository.StorePageSize)
	assert.Equal(t, "a-5", out.Cursor)
	assert.True(t, out.HasMore)
}

func TestCatalogService_BrowseStores_FillWalksPages(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	// One match per raw page; the last page is short so pagination ends.
	pageA := fullPage("a", "a-5")
	pageA.Stores[0] = feedStore("a-0", "Dulcería Norte", "")
	pageB := fullPage("b", "b-5")
	pageB.Stores[3] = feedStore("b-3", "Dulcería Sur", "")
	last := &repository.StorePage{Cursor: "c-0"}
	last.Stores = append(last.Stores, feedStore("c-0", "Dulcería Centro", ""))

	fx.storeRepo.EXPECT().ListPage(ctx, repository.StoreQuery{}, "").Return(pageA, nil).Once()
	fx.storeRepo.EXPECT().ListPage(ctx, repository.StoreQuery{}, "a-5").Return(pageB, nil).Once()
	fx.storeRepo.EXPECT().ListPage(ctx, repository.StoreQuery{}, "b-5").Return(last, nil).Once()

	out, err := fx.service.BrowseStores(ctx, usecase.CatalogQueryInput{
		StoreTerm: "dulcería",
		Fill:      true,
	})
	require.NoError(t, err)

	require.Len(t, out.Stores, 3)
	assert.Equal(t, "Dulcería Norte", out.Stores[0].Name)
	assert.Equal(t, "Dulcería Sur", out.Stores[1].Name)
	assert.Equal(t, "Dulcería Centro", out.Stores[2].Name)
	assert.False(t, out.HasMore)
	assert.Equal(t, "c-0", out.Cursor)
}

func TestCatalogService_BrowseStores_FillNeedsFreeTextTerm(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	// Without a free-text term the fill flag is inert: one fetch only.
	fx.storeRepo.EXPECT().
		ListPage(ctx, repository.StoreQuery{}, "").
		Return(fullPage("a", "a-5"), nil).
		Once()

	out, err := fx.service.BrowseStores(ctx, usecase.CatalogQueryInput{Fill: true})
	require.NoError(t, err)
	assert.Len(t, out.Stores, repository.StorePageSize)
	assert.True(t, out.HasMore)
}

func TestCatalogService_BrowseStores_ReadError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		ListPage(ctx, repository.StoreQuery{}, "").
		Return(nil, errors.New("backend unavailable")).
		Once()

	out, err := fx.service.BrowseStores(ctx, usecase.CatalogQueryInput{})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogReadFailed)
}

func TestCatalogService_GetStore_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrStoreNotFound).
		Once()

	store, err := fx.service.GetStore(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestCatalogService_NearbyStores(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	near := feedStore("near", "Tienda Cercana", "")
	near.Location = &orb.Point{-77.042, -12.055} // ~1 km south of the center.
	far := feedStore("far", "Tienda Lejana", "")
	far.Location = &orb.Point{-77.042, -12.500}        // ~50 km away.
	online := feedStore("online", "Tienda Online", "") // No coordinates.

	page := &repository.StorePage{Cursor: "online"}
	page.Stores = append(page.Stores, near, far, online)

	fx.storeRepo.EXPECT().
		ListPage(ctx, repository.StoreQuery{}, "").
		Return(page, nil).
		Once()

	nearby, err := fx.service.NearbyStores(ctx, -12.046, -77.042, 5, 10)
	require.NoError(t, err)

	require.Len(t, nearby, 1)
	assert.Equal(t, "near", nearby[0].ID)
}
