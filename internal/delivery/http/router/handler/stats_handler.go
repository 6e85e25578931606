package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/delivery/http/response"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler receives anonymous engagement events and hands them to the
// publishing side of the stats pipeline.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordEvent publishes one engagement event for a store. The increment
// itself lands asynchronously through the worker, so a 202 here only
// acknowledges acceptance.
func (h *StatsHandler) RecordEvent(c echo.Context) error {
	var input struct {
		Type string `json:"type"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de evento inválidos.")
	}

	err := h.uc.RecordEvent(c.Request().Context(), c.Param("id"), service.StatEventType(input.Type))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Evento registrado.")
}
