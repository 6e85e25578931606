// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxFillPages bounds how many raw pages one fill request may walk, so a
// rare search term cannot turn a single request into a full-catalog scan.
const maxFillPages = 10

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BrowseStores fetches one page of the filtered catalog. With Fill set and
// a free-text term present, subsequent raw pages are walked until a page's
// worth of post-filter matches accumulates or the pages run out.
func (srv *catalogService) BrowseStores(ctx context.Context, input usecase.CatalogQueryInput) (*usecase.CatalogPageOutput, error) {
	filter := feedFilter{
		Query:       repository.StoreQuery{Category: input.Category, City: input.City}.Normalize(),
		StoreTerm:   input.StoreTerm,
		ProductTerm: input.ProductTerm,
	}
	feed := newStoreFeed(filter, input.Cursor)

	if err := feed.LoadNext(ctx, srv.storeRepo.ListPage); err != nil {
		srv.log(ctx).Error("Catalog page read failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCatalogReadFailed, err.Error())
	}

	fill := input.Fill && (input.StoreTerm != "" || input.ProductTerm != "")
	for pages := 1; fill && feed.HasMore() && len(feed.Stores()) < repository.StorePageSize && pages < maxFillPages; pages++ {
		if err := feed.LoadNext(ctx, srv.storeRepo.ListPage); err != nil {
			// A mid-fill failure halts pagination and surfaces what
			// already accumulated; hasMore stays forced false.
			srv.log(ctx).Warn("Catalog fill halted", slog.Any("error", err))

			break
		}
	}

	return &usecase.CatalogPageOutput{
		Stores:  feed.Stores(),
		Cursor:  feed.Cursor(),
		HasMore: feed.HasMore(),
	}, nil
}

// GetStore reads one store with its product list attached.
func (srv *catalogService) GetStore(ctx context.Context, id string) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load store")
	}

	return store, nil
}

// NearbyStores walks the unfiltered catalog pages and keeps stores with
// coordinates within radiusKm of the given point.
func (srv *catalogService) NearbyStores(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]*entity.Store, error) {
	if limit <= 0 {
		limit = repository.StorePageSize
	}
	center := orb.Point{lon, lat}
	radiusMeters := radiusKm * 1000

	nearby := make([]*entity.Store, 0, limit)
	cursor := ""
	for pages := 0; pages < maxFillPages; pages++ {
		page, err := srv.storeRepo.ListPage(ctx, repository.StoreQuery{}, cursor)
		if err != nil {
			srv.log(ctx).Error("Nearby store scan failed", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrCatalogReadFailed, err.Error())
		}

		for _, store := range page.Stores {
			if !store.HasLocation() {
				continue
			}
			if geo.Distance(center, *store.Location) <= radiusMeters {
				nearby = append(nearby, store)
				if len(nearby) == limit {
					return nearby, nil
				}
			}
		}

		if len(page.Stores) < repository.StorePageSize {
			break
		}
		cursor = page.Cursor
	}

	return nearby, nil
}
