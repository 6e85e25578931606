package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	mockRepo "vitrina/internal/mocks/repository"
	mockSvc "vitrina/internal/mocks/service"
	"vitrina/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statsServiceFixtures struct {
	service   usecase.StatsUsecase
	storeRepo *mockRepo.MockStoreRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewStatsService(StatsServiceParams{
		StoreRepo: storeRepo,
		Publisher: publisher,
		Logger:    logger,
	})

	return statsServiceFixtures{service: service, storeRepo: storeRepo, publisher: publisher}
}

func TestStatsService_RecordEvent_Publishes(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.publisher.EXPECT().
		PublishStatEvent(ctx, mock.MatchedBy(func(event *service.StatEvent) bool {
			return event.StoreID == "s1" &&
				event.Type == service.StatWhatsappClick &&
				event.EventID != ""
		})).
		Return(nil).
		Once()

	require.NoError(t, fx.service.RecordEvent(ctx, "s1", service.StatWhatsappClick))
}

func TestStatsService_RecordEvent_RejectsUnknownType(t *testing.T) {
	fx := createTestStatsService(t)

	err := fx.service.RecordEvent(context.Background(), "s1", service.StatEventType("invento"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStatsService_ApplyEvent_CounterMapping(t *testing.T) {
	cases := []struct {
		eventType service.StatEventType
		counter   string
		delta     int64
	}{
		{service.StatView, "views", 1},
		{service.StatClick, "clicks", 1},
		{service.StatWhatsappClick, "whatsapp_clicks", 1},
		{service.StatWebClick, "web_clicks", 1},
		{service.StatFollow, "followers", 1},
		{service.StatUnfollow, "followers", -1},
		{service.StatProductSell, "product_sells", 1},
		{service.StatOpinion, "opinions_count", 1},
	}

	for _, tc := range cases {
		t.Run(string(tc.eventType), func(t *testing.T) {
			fx := createTestStatsService(t)
			ctx := context.Background()

			fx.storeRepo.EXPECT().
				IncrementCounter(ctx, "s1", tc.counter, tc.delta).
				Return(nil).
				Once()

			event := &service.StatEvent{EventID: "e1", StoreID: "s1", Type: tc.eventType}
			require.NoError(t, fx.service.ApplyEvent(ctx, event))
		})
	}
}

func TestStatsService_ApplyEvent_UnknownStoreDropped(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		IncrementCounter(ctx, "gone", "views", int64(1)).
		Return(repository.ErrStoreNotFound).
		Once()

	// Replayed events for deleted stores are swallowed, not retried.
	event := &service.StatEvent{EventID: "e1", StoreID: "gone", Type: service.StatView}
	assert.NoError(t, fx.service.ApplyEvent(ctx, event))
}

func TestStatsService_ApplyEvent_UnknownType(t *testing.T) {
	fx := createTestStatsService(t)

	event := &service.StatEvent{EventID: "e1", StoreID: "s1", Type: service.StatEventType("invento")}
	assert.ErrorIs(t, fx.service.ApplyEvent(context.Background(), event), domainerrors.ErrValidationFailed)
}
