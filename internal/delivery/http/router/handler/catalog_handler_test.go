package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrina/internal/domain/entity"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogUsecase records the inputs the handler passes through.
type stubCatalogUsecase struct {
	browseInput  usecase.CatalogQueryInput
	nearbyLat    float64
	nearbyLon    float64
	nearbyRadius float64
	nearbyLimit  int
}

func (s *stubCatalogUsecase) BrowseStores(_ context.Context, input usecase.CatalogQueryInput) (*usecase.CatalogPageOutput, error) {
	s.browseInput = input

	return &usecase.CatalogPageOutput{Stores: []*entity.Store{}, Cursor: "next", HasMore: false}, nil
}

func (s *stubCatalogUsecase) GetStore(_ context.Context, id string) (*entity.Store, error) {
	return &entity.Store{ID: id, Products: []*entity.Product{}}, nil
}

func (s *stubCatalogUsecase) NearbyStores(_ context.Context, lat, lon, radiusKm float64, limit int) ([]*entity.Store, error) {
	s.nearbyLat, s.nearbyLon = lat, lon
	s.nearbyRadius, s.nearbyLimit = radiusKm, limit

	return []*entity.Store{}, nil
}

func newCatalogTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_BrowseStores_QueryParamMapping(t *testing.T) {
	stub := &stubCatalogUsecase{}
	handler := NewCatalogHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newCatalogTestContext(t,
		"/tiendas?categoria=gastronomia&ciudad=Lima&tienda=dulce&producto=torta&cursor=abc&fill=true")

	require.NoError(t, handler.BrowseStores(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "gastronomia", stub.browseInput.Category)
	assert.Equal(t, "Lima", stub.browseInput.City)
	assert.Equal(t, "dulce", stub.browseInput.StoreTerm)
	assert.Equal(t, "torta", stub.browseInput.ProductTerm)
	assert.Equal(t, "abc", stub.browseInput.Cursor)
	assert.True(t, stub.browseInput.Fill)
}

func TestCatalogHandler_BrowseStores_InvalidFill(t *testing.T) {
	stub := &stubCatalogUsecase{}
	handler := NewCatalogHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newCatalogTestContext(t, "/tiendas?fill=quizas")

	require.NoError(t, handler.BrowseStores(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_NearbyStores_DefaultsAndCaps(t *testing.T) {
	stub := &stubCatalogUsecase{}
	handler := NewCatalogHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Defaults apply when radius and limit are omitted.
	c, rec := newCatalogTestContext(t, "/tiendas/cercanas?lat=-12.046&lon=-77.042")
	require.NoError(t, handler.NearbyStores(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, -12.046, stub.nearbyLat, 1e-9)
	assert.InDelta(t, -77.042, stub.nearbyLon, 1e-9)
	assert.InDelta(t, nearbyDefaultRadius, stub.nearbyRadius, 1e-9)
	assert.Equal(t, nearbyDefaultLimit, stub.nearbyLimit)

	// Oversized values are clamped, not rejected.
	c, rec = newCatalogTestContext(t, "/tiendas/cercanas?lat=-12.046&lon=-77.042&radio=500&limite=999")
	require.NoError(t, handler.NearbyStores(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, nearbyMaxRadius, stub.nearbyRadius, 1e-9)
	assert.Equal(t, nearbyMaxLimit, stub.nearbyLimit)
}

func TestCatalogHandler_NearbyStores_MissingCoordinates(t *testing.T) {
	stub := &stubCatalogUsecase{}
	handler := NewCatalogHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newCatalogTestContext(t, "/tiendas/cercanas?lon=-77.042")

	require.NoError(t, handler.NearbyStores(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
