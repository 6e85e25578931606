package handler

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/domain/entity"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler serves the merchant-facing store lifecycle endpoints.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateStore receives the full wizard submission as a multipart form:
// scalar fields plus the cover image files under "cover_images".
func (h *StoreHandler) CreateStore(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Se esperaba un formulario multipart.")
	}

	input := usecase.CreateStoreInput{
		PlanType:      entity.PlanType(c.FormValue("plan_type")),
		PaymentMethod: c.FormValue("payment_method"),
		IncubatorCode: c.FormValue("incubator_code"),
		Name:          c.FormValue("name"),
		Description:   c.FormValue("description"),
		Category:      c.FormValue("category"),
		City:          c.FormValue("city"),
		Address:       c.FormValue("address"),
		Phone:         c.FormValue("phone"),
		Tags:          form.Value["tags"],
	}

	if raw := c.FormValue("social_media"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.SocialMedia); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "El campo 'social_media' debe ser un arreglo JSON.")
		}
	}

	if input.Latitude, err = optionalFloatField(c, "latitude"); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "El campo 'latitude' debe ser numérico.")
	}
	if input.Longitude, err = optionalFloatField(c, "longitude"); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "El campo 'longitude' debe ser numérico.")
	}

	uploads, closeAll, err := openFileUploads(form.File["cover_images"])
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No se pudieron leer las imágenes adjuntas.")
	}
	defer closeAll()
	input.CoverImages = uploads

	store, err := h.uc.CreateStore(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Tienda creada correctamente.")
}

// GetMyStores lists the stores owned by the authenticated user.
func (h *StoreHandler) GetMyStores(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	stores, err := h.uc.GetMyStores(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Tiendas obtenidas correctamente.")
}

// UpdateStore applies owner edits to a store.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	var input *usecase.UpdateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de actualización inválidos.")
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), userID, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Tienda actualizada correctamente.")
}

// UploadCoverImage adds one image to the store's cover/gallery set and
// returns its public URL.
func (h *StoreHandler) UploadCoverImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Se esperaba un archivo en el campo 'image'.")
	}
	upload, closeFn, err := openFileUpload(fileHeader)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No se pudo leer la imagen adjunta.")
	}
	defer closeFn()

	url, err := h.uc.UploadCoverImage(c.Request().Context(), userID, c.Param("id"), upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Imagen subida correctamente.")
}

// RemoveCoverImage deletes one image from the store's cover/gallery set.
func (h *StoreHandler) RemoveCoverImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	store, err := h.uc.RemoveCoverImage(c.Request().Context(), userID, c.Param("id"), c.Param("filename"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Imagen eliminada correctamente.")
}

// RenewPlan charges another coverage period for the store's current plan.
func (h *StoreHandler) RenewPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	store, err := h.uc.RenewPlan(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Plan renovado correctamente.")
}

// Plans returns the static plan catalog for the wizard's first step.
func (h *StoreHandler) Plans(c echo.Context) error {
	plans := h.uc.Plans(c.Request().Context())

	return response.Success(c, http.StatusOK, plans, "Planes obtenidos correctamente.")
}

// ValidateIncubatorCode checks a code without consuming it.
func (h *StoreHandler) ValidateIncubatorCode(c echo.Context) error {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Se esperaba un código de incubadora.")
	}

	discount, err := h.uc.ValidateIncubatorCode(c.Request().Context(), input.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]float64{"discount": discount}, "Código válido.")
}

// optionalFloatField parses a form value as float, nil when absent.
func optionalFloatField(c echo.Context, name string) (*float64, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// openFileUpload opens one multipart file as an ImageUpload. The caller
// must invoke the returned close function once the stream is consumed.
func openFileUpload(fh *multipart.FileHeader) (usecase.ImageUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.ImageUpload{}, nil, err
	}

	upload := usecase.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}

	return upload, func() { _ = f.Close() }, nil
}

// openFileUploads opens a batch of multipart files, closing any already
// opened ones when a later open fails.
func openFileUploads(headers []*multipart.FileHeader) ([]usecase.ImageUpload, func(), error) {
	uploads := make([]usecase.ImageUpload, 0, len(headers))
	closers := make([]func(), 0, len(headers))
	closeAll := func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}

	for _, fh := range headers {
		upload, closeFn, err := openFileUpload(fh)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		uploads = append(uploads, upload)
		closers = append(closers, closeFn)
	}

	return uploads, closeAll, nil
}
