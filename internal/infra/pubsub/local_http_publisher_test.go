package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrina/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishStatEvent(t *testing.T) {
	var received PubSubPushMessage
	var gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		gotRequestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	event := &service.StatEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		StoreID:   "store-1",
		Type:      service.StatWhatsappClick,
	}
	require.NoError(t, publisher.PublishStatEvent(context.Background(), event))

	// The push envelope mirrors the Google Pub/Sub push format.
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "store-1", received.Message.Attributes["store_id"])
	assert.Equal(t, "whatsapp_click", received.Message.Attributes["event_type"])
	assert.Equal(t, "req-1", gotRequestID)

	decoded, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var gotEvent service.StatEvent
	require.NoError(t, json.Unmarshal(decoded, &gotEvent))
	assert.Equal(t, *event, gotEvent)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishStatEvent(context.Background(), &service.StatEvent{
		EventID: "evt-2",
		StoreID: "store-1",
		Type:    service.StatView,
	})
	assert.Error(t, err)
}
