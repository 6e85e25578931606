package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	mockRepo "vitrina/internal/mocks/repository"
	mockSvc "vitrina/internal/mocks/service"
	"vitrina/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	storeRepo   *mockRepo.MockStoreRepository
	storage     *mockSvc.MockStorageService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	storage := mockSvc.NewMockStorageService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		StoreRepo:   storeRepo,
		Storage:     storage,
		Logger:      logger,
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		storage:     storage,
	}
}

func (fx productServiceFixtures) expectOwnedStore(ctx context.Context, storeID, ownerID string) {
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil).
		Once()
}

func TestProductService_AddProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectOwnedStore(ctx, "s1", "owner-1")
	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "stores/s1/products/")
		}), "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/p1.jpg", nil).
		Once()

	price := 25.50
	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.StoreID == "s1" &&
				product.Name == "Torta de chocolate" &&
				len(product.Images) == 1
		})).
		Return(nil).
		Once()

	product, err := fx.service.AddProduct(ctx, "owner-1", "s1", usecase.AddProductInput{
		Name:   " Torta de chocolate ",
		Price:  &price,
		Images: []usecase.ImageUpload{{Filename: "p1.jpg", ContentType: "image/jpeg", Body: strings.NewReader("imagen")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Torta de chocolate", product.Name)
	require.NotNil(t, product.Price)
	assert.InDelta(t, 25.50, *product.Price, 0.001)
	assert.Equal(t, []string{"https://cdn.example.com/p1.jpg"}, product.Images)
}

func TestProductService_AddProduct_RequiresOwnership(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectOwnedStore(ctx, "s1", "owner-1")

	_, err := fx.service.AddProduct(ctx, "intruso", "s1", usecase.AddProductInput{Name: "Torta"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreOwnershipViolation)
}

func TestProductService_AddProduct_RejectsNegativePrice(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectOwnedStore(ctx, "s1", "owner-1")

	price := -1.0
	_, err := fx.service.AddProduct(ctx, "owner-1", "s1", usecase.AddProductInput{Name: "Torta", Price: &price})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_UpdateProduct_ClearPrice(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	price := 10.0
	existing := &entity.Product{ID: "p1", StoreID: "s1", Name: "Torta", Price: &price}

	fx.expectOwnedStore(ctx, "s1", "owner-1")
	fx.productRepo.EXPECT().FindByID(ctx, "s1", "p1").Return(existing, nil).Once()
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.Price == nil
		})).
		Return(nil).
		Once()

	product, err := fx.service.UpdateProduct(ctx, "owner-1", "s1", "p1", &usecase.UpdateProductInput{ClearPrice: true})
	require.NoError(t, err)
	assert.False(t, product.HasPrice())
}

func TestProductService_DeleteProduct_BlobsBeforeRecord(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectOwnedStore(ctx, "s1", "owner-1")
	fx.productRepo.EXPECT().
		FindByID(ctx, "s1", "p1").
		Return(&entity.Product{ID: "p1", StoreID: "s1"}, nil).
		Once()

	cleaned := false
	fx.storage.EXPECT().
		DeletePrefix(ctx, "stores/s1/products/p1/").
		Run(func(_ context.Context, _ string) { cleaned = true }).
		Return(nil).
		Once()
	fx.productRepo.EXPECT().
		Delete(ctx, "s1", "p1").
		Run(func(_ context.Context, _, _ string) {
			assert.True(t, cleaned, "blob cleanup must precede the record delete")
		}).
		Return(nil).
		Once()

	require.NoError(t, fx.service.DeleteProduct(ctx, "owner-1", "s1", "p1"))
}

func TestProductService_DeleteProduct_CleanupFailureKeepsRecord(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectOwnedStore(ctx, "s1", "owner-1")
	fx.productRepo.EXPECT().
		FindByID(ctx, "s1", "p1").
		Return(&entity.Product{ID: "p1", StoreID: "s1"}, nil).
		Once()
	fx.storage.EXPECT().
		DeletePrefix(ctx, "stores/s1/products/p1/").
		Return(assert.AnError).
		Once()

	// The record delete is never attempted after a failed cleanup.
	assert.Error(t, fx.service.DeleteProduct(ctx, "owner-1", "s1", "p1"))
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByID(ctx, "s1", "missing").
		Return(nil, repository.ErrProductNotFound).
		Once()

	_, err := fx.service.GetProduct(ctx, "s1", "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_RelatedProducts_ExcludesSelfAndCaps(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	products := make([]*entity.Product, 0, 7)
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
		products = append(products, &entity.Product{ID: id, StoreID: "s1"})
	}
	fx.productRepo.EXPECT().FindByStore(ctx, "s1").Return(products, nil).Once()

	related, err := fx.service.RelatedProducts(ctx, "s1", "p2")
	require.NoError(t, err)

	require.Len(t, related, usecase.RelatedProductsLimit)
	for _, product := range related {
		assert.NotEqual(t, "p2", product.ID)
	}
}

func TestProductService_LatestProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindLatest(ctx, usecase.LatestProductsLimit).
		Return([]*entity.Product{{ID: "p1"}}, nil).
		Once()

	latest, err := fx.service.LatestProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}
