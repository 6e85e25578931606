package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the authenticated user's own profile endpoints.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Perfil obtenido correctamente.")
}

// UpdateProfile applies a partial edit to the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión no válida.")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de perfil inválidos.")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Perfil actualizado correctamente.")
}

// UploadPhoto replaces the caller's profile photo and returns its URL.
func (h *ProfileHandler) UploadPhoto(c echo.Context) error {
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

	url, err := h.uc.UploadPhoto(c.Request().Context(), userID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Foto actualizada correctamente.")
}
