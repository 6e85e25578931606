// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "vitrina/internal/delivery/context"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// counterChange maps one stat event type onto a counter field and delta.
type counterChange struct {
	counter string
	delta   int64
}

// statCounterChanges is the full event-to-counter mapping. Unfollow is the
// only decrementing event.
var statCounterChanges = map[service.StatEventType]counterChange{
	service.StatView:          {counter: "views", delta: 1},
	service.StatClick:         {counter: "clicks", delta: 1},
	service.StatWhatsappClick: {counter: "whatsapp_clicks", delta: 1},
	service.StatWebClick:      {counter: "web_clicks", delta: 1},
	service.StatFollow:        {counter: "followers", delta: 1},
	service.StatUnfollow:      {counter: "followers", delta: -1},
	service.StatProductSell:   {counter: "product_sells", delta: 1},
	service.StatOpinion:       {counter: "opinions_count", delta: 1},
}

// statsService implements the StatsUsecase interface.
type statsService struct {
	storeRepo repository.StoreRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		storeRepo: params.StoreRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordEvent validates and publishes one stat event. Delivery and the
// actual increment happen asynchronously in the worker.
func (srv *statsService) RecordEvent(ctx context.Context, storeID string, eventType service.StatEventType) error {
	if !eventType.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("tipo de evento desconocido")
	}
	if storeID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("la tienda es obligatoria")
	}

	event := &service.StatEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		StoreID:   storeID,
		Type:      eventType,
	}
	if err := srv.publisher.PublishStatEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish stat event",
			slog.String("storeID", storeID), slog.String("type", string(eventType)), slog.Any("error", err))

		return errors.Wrap(err, "failed to publish stat event")
	}

	return nil
}

// ApplyEvent maps a consumed event onto its counter and applies the
// atomic increment. Unknown store IDs are dropped without error so a
// deleted-then-replayed event cannot wedge the push subscription.
func (srv *statsService) ApplyEvent(ctx context.Context, event *service.StatEvent) error {
	change, ok := statCounterChanges[event.Type]
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("tipo de evento desconocido: %s", event.Type))
	}

	err := srv.storeRepo.IncrementCounter(ctx, event.StoreID, change.counter, change.delta)
	if errors.Is(err, repository.ErrStoreNotFound) {
		srv.log(ctx).Warn("Stat event for unknown store dropped",
			slog.String("storeID", event.StoreID), slog.String("eventID", event.EventID))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to apply stat event")
	}

	return nil
}
