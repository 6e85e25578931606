package firestore

import (
	"context"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// productRepository implements the domain ProductRepository interface on Firestore.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (repo *productRepository) productsOf(storeID string) *firestore.CollectionRef {
	return repo.client.Collection(storesCollection).Doc(storeID).Collection(productsCollection)
}

// Create persists a new product under its store's sub-collection.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.StoreID == "" {
		return errors.New("store id is required to create a product")
	}

	docRef := repo.productsOf(product.StoreID).Doc(product.ID)
	if product.ID == "" {
		docRef = repo.productsOf(product.StoreID).NewDoc()
		product.ID = docRef.ID
	}

	if _, err := docRef.Create(ctx, fromProductDomain(product)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// FindByID retrieves a single product from a store's sub-collection.
func (repo *productRepository) FindByID(ctx context.Context, storeID, productID string) (*entity.Product, error) {
	docSnap, err := repo.productsOf(storeID).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	var productM model.ProductModel
	if err := docSnap.DataTo(&productM); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	return toProductDomain(docSnap.Ref.ID, storeID, &productM), nil
}

// FindByStore loads the entire sub-collection of a store, newest first.
func (repo *productRepository) FindByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	return readProducts(ctx, repo.client, storeID)
}

// Update overwrites an existing product document.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if product.StoreID == "" || product.ID == "" {
		return errors.New("store id and product id are required for update")
	}

	_, err := repo.productsOf(product.StoreID).Doc(product.ID).Set(ctx, fromProductDomain(product))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes the product document. Image blobs are cleaned up by the
// caller before this runs; the record goes away last.
func (repo *productRepository) Delete(ctx context.Context, storeID, productID string) error {
	if _, err := repo.productsOf(storeID).Doc(productID).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// FindLatest runs a collection-group query across every store's products
// sub-collection, ordered by creation time descending.
func (repo *productRepository) FindLatest(ctx context.Context, limit int) ([]*entity.Product, error) {
	iter := repo.client.CollectionGroup(productsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	products := make([]*entity.Product, 0, limit)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate latest products")
		}

		var productM model.ProductModel
		if err := doc.DataTo(&productM); err != nil {
			return nil, errors.Wrap(err, "failed to decode product document")
		}

		// The parent of the sub-collection is the owning store document.
		storeID := doc.Ref.Parent.Parent.ID
		products = append(products, toProductDomain(doc.Ref.ID, storeID, &productM))
	}

	return products, nil
}

// readProducts loads a store's full products sub-collection, newest first.
// Shared with the store repository's fan-out. Returns an empty slice, never
// nil, when the store has no products.
func readProducts(ctx context.Context, client *firestore.Client, storeID string) ([]*entity.Product, error) {
	iter := client.Collection(storesCollection).Doc(storeID).Collection(productsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	products := make([]*entity.Product, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate products")
		}

		var productM model.ProductModel
		if err := doc.DataTo(&productM); err != nil {
			return nil, errors.Wrap(err, "failed to decode product document")
		}

		products = append(products, toProductDomain(doc.Ref.ID, storeID, &productM))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a Firestore ProductModel to a domain Product entity.
func toProductDomain(id, storeID string, data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          id,
		StoreID:     storeID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Images:      data.Images,
		IsFeatured:  data.IsFeatured,
		CreatedAt:   data.CreatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a Firestore ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Images:      data.Images,
		IsFeatured:  data.IsFeatured,
		CreatedAt:   data.CreatedAt,
	}
}
