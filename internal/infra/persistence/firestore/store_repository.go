package firestore

import (
	"context"
	"log/slog"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// counterPaths whitelists the counter names the increment operation accepts.
// The map values are the document field paths under the 'counters' map.
var counterPaths = map[string]string{
	"views":           "counters.views",
	"clicks":          "counters.clicks",
	"whatsapp_clicks": "counters.whatsapp_clicks",
	"web_clicks":      "counters.web_clicks",
	"product_sells":   "counters.product_sells",
	"followers":       "counters.followers",
	"opinions_count":  "counters.opinions_count",
}

// storeRepository implements the domain StoreRepository interface on Firestore.
type storeRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewStoreRepository is the constructor for storeRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewStoreRepository(client *firestore.Client, logger *slog.Logger) repository.StoreRepository {
	return &storeRepository{
		client: client,
		logger: logger,
	}
}

// Create persists a new store document. The ID is generated when absent.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	docRef := repo.client.Collection(storesCollection).Doc(store.ID)
	if store.ID == "" {
		docRef = repo.client.Collection(storesCollection).NewDoc()
		store.ID = docRef.ID
	}

	if _, err := docRef.Create(ctx, fromStoreDomain(store)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	return nil
}

// FindByID retrieves a single store with its products sub-collection attached.
func (repo *storeRepository) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	docSnap, err := repo.client.Collection(storesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	var storeM model.StoreModel
	if err := docSnap.DataTo(&storeM); err != nil {
		return nil, errors.Wrap(err, "failed to decode store document")
	}

	store := toStoreDomain(docSnap.Ref.ID, &storeM)
	store.Products = repo.loadProducts(ctx, store.ID)

	return store, nil
}

// FindByOwner retrieves all stores created by a user, newest first.
func (repo *storeRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Store, error) {
	iter := repo.client.Collection(storesCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	stores := make([]*entity.Store, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate stores by owner")
		}

		var storeM model.StoreModel
		if err := doc.DataTo(&storeM); err != nil {
			return nil, errors.Wrap(err, "failed to decode store document")
		}

		store := toStoreDomain(doc.Ref.ID, &storeM)
		store.Products = repo.loadProducts(ctx, store.ID)
		stores = append(stores, store)
	}

	return stores, nil
}

// Update overwrites the store document with the mapped model. The creation
// timestamp is carried through so the serverTimestamp tag leaves it intact.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	if store.ID == "" {
		return errors.New("store id is required for update")
	}

	_, err := repo.client.Collection(storesCollection).Doc(store.ID).Set(ctx, fromStoreDomain(store))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update store")
	}

	return nil
}

// ListPage fetches one catalog page ordered by creation time descending.
// Equality predicates run server-side; the cursor is resolved by reading the
// cursor document and continuing after its snapshot. The returned cursor is
// the last document ID of the page, so a collection whose size is an exact
// multiple of the page size yields one final empty page.
func (repo *storeRepository) ListPage(ctx context.Context, query repository.StoreQuery, cursor string) (*repository.StorePage, error) {
	q := repo.client.Collection(storesCollection).Query
	for _, pred := range query.Normalize().Predicates() {
		q = q.Where(pred.Field, "==", pred.Value)
	}
	q = q.OrderBy("createdAt", firestore.Desc)

	if cursor != "" {
		cursorSnap, err := repo.client.Collection(storesCollection).Doc(cursor).Get(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve page cursor")
		}
		q = q.StartAfter(cursorSnap)
	}

	iter := q.Limit(repository.StorePageSize).Documents(ctx)
	defer iter.Stop()

	page := &repository.StorePage{Stores: make([]*entity.Store, 0, repository.StorePageSize)}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate store page")
		}

		var storeM model.StoreModel
		if err := doc.DataTo(&storeM); err != nil {
			return nil, errors.Wrap(err, "failed to decode store document")
		}

		store := toStoreDomain(doc.Ref.ID, &storeM)
		store.Products = repo.loadProducts(ctx, store.ID)
		page.Stores = append(page.Stores, store)
		page.Cursor = doc.Ref.ID
	}

	return page, nil
}

// IncrementCounter applies an atomic delta to one engagement counter.
// Counters never go below zero: decrements read the current value in a
// transaction and clamp, so a stray unfollow on a zero-follower store
// leaves the counter at zero.
func (repo *storeRepository) IncrementCounter(ctx context.Context, storeID, counter string, delta int64) error {
	path, ok := counterPaths[counter]
	if !ok {
		return errors.Errorf("unknown counter: %s", counter)
	}

	docRef := repo.client.Collection(storesCollection).Doc(storeID)

	// Increments can ride the server-side atomic transform.
	if delta >= 0 {
		_, err := docRef.Update(ctx, []firestore.Update{
			{Path: path, Value: firestore.Increment(delta)},
		})

		return counterUpdateError(err)
	}

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var current int64
		if raw, err := snap.DataAtPath(firestore.FieldPath{"counters", counter}); err == nil {
			if v, ok := raw.(int64); ok {
				current = v
			}
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: path, Value: clampCounter(current + delta)},
		})
	})

	return counterUpdateError(err)
}

// clampCounter floors a counter value at zero.
func clampCounter(value int64) int64 {
	if value < 0 {
		return 0
	}

	return value
}

func counterUpdateError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return repository.ErrStoreNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to increment counter")
}

// AppendPayment appends a payment record to the store's history array.
func (repo *storeRepository) AppendPayment(ctx context.Context, storeID string, payment entity.Payment) error {
	_, err := repo.client.Collection(storesCollection).Doc(storeID).Update(ctx, []firestore.Update{
		{Path: "payments", Value: firestore.ArrayUnion(fromPaymentDomain(payment))},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append payment")
	}

	return nil
}

// loadProducts reads a store's products sub-collection. A failed read
// degrades to an empty list so one broken store never sinks a whole page.
func (repo *storeRepository) loadProducts(ctx context.Context, storeID string) []*entity.Product {
	products, err := readProducts(ctx, repo.client, storeID)
	if err != nil {
		repo.logger.WarnContext(ctx, "failed to load products for store",
			slog.String("store_id", storeID),
			slog.Any("error", err))

		return make([]*entity.Product, 0)
	}

	return products
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toStoreDomain converts a Firestore StoreModel to a domain Store entity.
func toStoreDomain(id string, data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	socialMedia := make([]entity.SocialMediaLink, 0, len(data.SocialMedia))
	for _, link := range data.SocialMedia {
		socialMedia = append(socialMedia, entity.SocialMediaLink{
			Platform: link.Platform,
			Link:     link.Link,
		})
	}

	payments := make([]entity.Payment, 0, len(data.Payments))
	for _, payment := range data.Payments {
		payments = append(payments, toPaymentDomain(payment))
	}

	var location *orb.Point
	if data.Latitude != nil && data.Longitude != nil {
		location = &orb.Point{*data.Longitude, *data.Latitude}
	}

	return &entity.Store{
		ID:            id,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		City:          data.City,
		Address:       data.Address,
		Phone:         data.Phone,
		CoverImage:    data.CoverImage,
		GalleryImages: data.GalleryImages,
		Tags:          data.Tags,
		SocialMedia:   socialMedia,
		Location:      location,
		Counters: entity.StoreCounters{
			Views:          data.Counters.Views,
			Clicks:         data.Counters.Clicks,
			WhatsappClicks: data.Counters.WhatsappClicks,
			WebClicks:      data.Counters.WebClicks,
			ProductSells:   data.Counters.ProductSells,
			Followers:      data.Counters.Followers,
			OpinionsCount:  data.Counters.OpinionsCount,
		},
		Stars: data.Stars,
		CurrentPlan: entity.SubscriptionPlan{
			PlanType:        entity.PlanType(data.CurrentPlan.PlanType),
			StartDate:       data.CurrentPlan.StartDate,
			EndDate:         data.CurrentPlan.EndDate,
			IsActive:        data.CurrentPlan.IsActive,
			DiscountEndDate: data.CurrentPlan.DiscountEndDate,
		},
		Payments:  payments,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a Firestore StoreModel.
// Products live in their own sub-collection and are never written here.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	socialMedia := make([]model.SocialMediaModel, 0, len(data.SocialMedia))
	for _, link := range data.SocialMedia {
		socialMedia = append(socialMedia, model.SocialMediaModel{
			Platform: link.Platform,
			Link:     link.Link,
		})
	}

	payments := make([]model.PaymentModel, 0, len(data.Payments))
	for _, payment := range data.Payments {
		payments = append(payments, fromPaymentDomain(payment))
	}

	var latitude, longitude *float64
	if data.Location != nil {
		lat, lon := data.Location.Lat(), data.Location.Lon()
		latitude, longitude = &lat, &lon
	}

	return &model.StoreModel{
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		City:          data.City,
		Address:       data.Address,
		Phone:         data.Phone,
		CoverImage:    data.CoverImage,
		GalleryImages: data.GalleryImages,
		Tags:          data.Tags,
		SocialMedia:   socialMedia,
		Latitude:      latitude,
		Longitude:     longitude,
		Counters: model.CountersModel{
			Views:          data.Counters.Views,
			Clicks:         data.Counters.Clicks,
			WhatsappClicks: data.Counters.WhatsappClicks,
			WebClicks:      data.Counters.WebClicks,
			ProductSells:   data.Counters.ProductSells,
			Followers:      data.Counters.Followers,
			OpinionsCount:  data.Counters.OpinionsCount,
		},
		Stars: data.Stars,
		CurrentPlan: model.SubscriptionPlanModel{
			PlanType:        string(data.CurrentPlan.PlanType),
			StartDate:       data.CurrentPlan.StartDate,
			EndDate:         data.CurrentPlan.EndDate,
			IsActive:        data.CurrentPlan.IsActive,
			DiscountEndDate: data.CurrentPlan.DiscountEndDate,
		},
		Payments:  payments,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toPaymentDomain converts a PaymentModel to a domain Payment.
func toPaymentDomain(data model.PaymentModel) entity.Payment {
	return entity.Payment{
		PlanType:      entity.PlanType(data.PlanType),
		Amount:        data.Amount,
		PaymentDate:   data.PaymentDate,
		CoverageEnd:   data.CoverageEnd,
		TransactionID: data.TransactionID,
	}
}

// fromPaymentDomain converts a domain Payment to a PaymentModel.
func fromPaymentDomain(data entity.Payment) model.PaymentModel {
	return model.PaymentModel{
		PlanType:      string(data.PlanType),
		Amount:        data.Amount,
		PaymentDate:   data.PaymentDate,
		CoverageEnd:   data.CoverageEnd,
		TransactionID: data.TransactionID,
	}
}
