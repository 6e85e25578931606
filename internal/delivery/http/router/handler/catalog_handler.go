package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vitrina/internal/delivery/http/response"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Caps for the nearby-stores query so an open endpoint cannot ask the
// catalog walker for unbounded work.
const (
	nearbyDefaultLimit  = 20
	nearbyMaxLimit      = 50
	nearbyDefaultRadius = 5.0
	nearbyMaxRadius     = 50.0
)

// CatalogHandler serves the anonymous browsing endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// BrowseStores returns one page of the filtered catalog. All filters are
// optional and combinable; the cursor comes opaque from the previous page.
func (h *CatalogHandler) BrowseStores(c echo.Context) error {
	input := usecase.CatalogQueryInput{
		Category:    c.QueryParam("categoria"),
		City:        c.QueryParam("ciudad"),
		StoreTerm:   c.QueryParam("tienda"),
		ProductTerm: c.QueryParam("producto"),
		Cursor:      c.QueryParam("cursor"),
	}
	if raw := c.QueryParam("fill"); raw != "" {
		fill, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "El parámetro 'fill' debe ser booleano.")
		}
		input.Fill = fill
	}

	output, err := h.uc.BrowseStores(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Catálogo obtenido correctamente.")
}

// GetStore returns one store with its full product list.
func (h *CatalogHandler) GetStore(c echo.Context) error {
	store, err := h.uc.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Tienda obtenida correctamente.")
}

// NearbyStores returns the stores within a radius of a point, capped.
func (h *CatalogHandler) NearbyStores(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "El parámetro 'lat' es obligatorio y debe ser numérico.")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "El parámetro 'lon' es obligatorio y debe ser numérico.")
	}

	radius := nearbyDefaultRadius
	if raw := c.QueryParam("radio"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "El parámetro 'radio' debe ser un número positivo.")
		}
	}
	if radius > nearbyMaxRadius {
		radius = nearbyMaxRadius
	}

	limit := nearbyDefaultLimit
	if raw := c.QueryParam("limite"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "El parámetro 'limite' debe ser un entero positivo.")
		}
	}
	if limit > nearbyMaxLimit {
		limit = nearbyMaxLimit
	}

	stores, err := h.uc.NearbyStores(c.Request().Context(), lat, lon, radius, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Tiendas cercanas obtenidas correctamente.")
}
