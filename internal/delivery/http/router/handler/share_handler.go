package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShareHandler serves the downloadable share artifacts of a store page.
// Both endpoints stream binary bodies instead of the JSON envelope.
type ShareHandler struct {
	uc     usecase.ShareUsecase
	logger *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler, injected by Fx.
func NewShareHandler(uc usecase.ShareUsecase, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		uc:     uc,
		logger: logger,
	}
}

// StoreQR streams the PNG QR code of the store's public URL.
func (h *ShareHandler) StoreQR(c echo.Context) error {
	storeID := c.Param("id")

	png, err := h.uc.StoreQR(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// StoreFlyer streams the store's PDF flyer as an attachment download.
func (h *ShareHandler) StoreFlyer(c echo.Context) error {
	storeID := c.Param("id")

	pdf, err := h.uc.StoreFlyer(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="tienda-%s.pdf"`, storeID))

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
