// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	storage     service.StorageService
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	StoreRepo   repository.StoreRepository
	Storage     service.StorageService
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		storeRepo:   params.StoreRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddProduct creates a product under an owned store, uploading its images
// under freshly generated identifiers.
func (srv *productService) AddProduct(ctx context.Context, userID, storeID string, input usecase.AddProductInput) (*entity.Product, error) {
	if err := srv.checkOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("el nombre del producto es obligatorio")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("el precio no puede ser negativo")
	}

	productID := uuid.New().String()

	// Image uploads precede the record. A failure aborts the submission;
	// blobs already written stay orphaned.
	images := make([]string, 0, len(input.Images))
	for _, upload := range input.Images {
		key := fmt.Sprintf("stores/%s/products/%s/%s", storeID, productID, uuid.New().String())
		url, err := srv.storage.Upload(ctx, key, upload.ContentType, upload.Body)
		if err != nil {
			srv.log(ctx).Error("Product image upload failed",
				slog.String("storeID", storeID), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrUploadFailed, "product image upload failed")
		}
		images = append(images, url)
	}

	product := &entity.Product{
		ID:          productID,
		StoreID:     storeID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Images:      images,
		IsFeatured:  input.IsFeatured,
		CreatedAt:   time.Now(),
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("storeID", storeID), slog.String("productID", product.ID))

	return product, nil
}

// GetProduct reads one product from a store.
func (srv *productService) GetProduct(ctx context.Context, storeID, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, storeID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListByStore returns a store's entire product list, newest first.
func (srv *productService) ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies owner edits to a product.
func (srv *productService) UpdateProduct(ctx context.Context, userID, storeID, productID string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := srv.checkOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}

	product, err := srv.GetProduct(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("el nombre del producto es obligatorio")
		}
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	switch {
	case input.ClearPrice:
		product.Price = nil
	case input.Price != nil:
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("el precio no puede ser negativo")
		}
		product.Price = input.Price
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes the product's blobs first, then its record, so a
// partial failure never leaves a record pointing at deleted images.
func (srv *productService) DeleteProduct(ctx context.Context, userID, storeID, productID string) error {
	if err := srv.checkOwnership(ctx, userID, storeID); err != nil {
		return err
	}
	if _, err := srv.GetProduct(ctx, storeID, productID); err != nil {
		return err
	}

	prefix := fmt.Sprintf("stores/%s/products/%s/", storeID, productID)
	if err := srv.storage.DeletePrefix(ctx, prefix); err != nil {
		srv.log(ctx).Error("Product blob cleanup failed",
			slog.String("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product images")
	}

	if err := srv.productRepo.Delete(ctx, storeID, productID); err != nil {
		return errors.Wrap(err, "failed to delete product record")
	}

	srv.log(ctx).Info("Product deleted",
		slog.String("storeID", storeID), slog.String("productID", productID))

	return nil
}

// RelatedProducts returns other products of the same store, excluding the
// given one, capped at the related limit.
func (srv *productService) RelatedProducts(ctx context.Context, storeID, productID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load related products")
	}

	related := make([]*entity.Product, 0, usecase.RelatedProductsLimit)
	for _, product := range products {
		if product.ID == productID {
			continue
		}
		related = append(related, product)
		if len(related) == usecase.RelatedProductsLimit {
			break
		}
	}

	return related, nil
}

// LatestProducts fans out across all stores for the most recent products.
func (srv *productService) LatestProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindLatest(ctx, usecase.LatestProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load latest products")
	}

	return products, nil
}

// checkOwnership verifies the calling user owns the enclosing store.
func (srv *productService) checkOwnership(ctx context.Context, userID, storeID string) error {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return errors.Wrap(err, "failed to load store for ownership check")
	}
	if store.OwnerID != userID {
		return errors.Wrap(domainerrors.ErrStoreOwnershipViolation, "ownership check failed")
	}

	return nil
}
