package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler serves product reads and the owner-only mutations.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddProduct receives a multipart form: scalar fields plus the product
// image files under "images".
func (h *ProductHandler) AddProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Se esperaba un formulario multipart.")
	}

	input := usecase.AddProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	if input.Price, err = optionalFloatField(c, "price"); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "El campo 'price' debe ser numérico.")
	}
	if raw := c.FormValue("is_featured"); raw != "" {
		input.IsFeatured, err = strconv.ParseBool(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "El campo 'is_featured' debe ser booleano.")
		}
	}

	uploads, closeAll, err := openFileUploads(form.File["images"])
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No se pudieron leer las imágenes adjuntas.")
	}
	defer closeAll()
	input.Images = uploads

	product, err := h.uc.AddProduct(c.Request().Context(), userID, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Producto agregado correctamente.")
}

// GetProduct returns one product of a store.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Producto obtenido correctamente.")
}

// ListByStore returns the full product list of a store.
func (h *ProductHandler) ListByStore(c echo.Context) error {
	products, err := h.uc.ListByStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Productos obtenidos correctamente.")
}

// UpdateProduct applies owner edits to a product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de actualización inválidos.")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), userID, c.Param("id"), c.Param("productId"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Producto actualizado correctamente.")
}

// DeleteProduct removes a product and its image blobs.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), userID, c.Param("id"), c.Param("productId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Producto eliminado correctamente.")
}

// RelatedProducts returns other products of the same store.
func (h *ProductHandler) RelatedProducts(c echo.Context) error {
	products, err := h.uc.RelatedProducts(c.Request().Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Productos relacionados obtenidos correctamente.")
}

// LatestProducts returns the most recent products across all stores.
func (h *ProductHandler) LatestProducts(c echo.Context) error {
	products, err := h.uc.LatestProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Últimos productos obtenidos correctamente.")
}
