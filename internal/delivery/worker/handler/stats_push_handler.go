// Package handler contains the HTTP handlers for the stats worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"vitrina/config"
	deliverycontext "vitrina/internal/delivery/context"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// StatsPushHandler applies stat events delivered through Pub/Sub push.
type StatsPushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	statsUC        usecase.StatsUsecase
}

// StatsPushHandlerParams holds dependencies for the StatsPushHandler
type StatsPushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	StatsUC usecase.StatsUsecase
}

// NewStatsPushHandler creates a new Pub/Sub push handler
func NewStatsPushHandler(params StatsPushHandlerParams) *StatsPushHandler {
	verifyPushAuth := params.Config.PubSub != nil && params.Config.PubSub.VerifyPushAuth

	return &StatsPushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		statsUC:        params.StatsUC,
	}
}

// HandlePush handles one incoming Pub/Sub push message. Validation and
// decode failures answer 200 so the broken message is not redelivered
// forever; only transient apply failures answer 503 to trigger a retry.
func (h *StatsPushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.StatEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse stat event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing.
	// Priority: message attributes > event field > existing context.
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing stat event",
		slog.String("event_id", event.EventID),
		slog.String("store_id", event.StoreID),
		slog.String("type", string(event.Type)),
	)

	if err := h.statsUC.ApplyEvent(ctx, &event); err != nil {
		retryable := isRetryableApplyError(err)
		reqLogger.Error("[Worker] Failed to apply stat event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Stat event applied",
		slog.String("event_id", event.EventID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *StatsPushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.StatEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// isRetryableApplyError reports whether a failed apply should be
// redelivered. Malformed events are permanent failures; everything else
// is assumed to be a transient datastore problem.
func isRetryableApplyError(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return false
	}

	return true
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
