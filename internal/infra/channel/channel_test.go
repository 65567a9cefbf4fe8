package channel

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geogram/internal/domain/entity"
	"geogram/internal/domain/service"
	"geogram/internal/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *entity.Event {
	return &entity.Event{
		ID:          uuid.New(),
		PublisherID: uuid.New(),
		FeatureID:   "nyc-311-1234",
		Title:       "Noise complaint",
		Description: "Loud music reported",
		Geom:        &geo.Feature{Geometry: orb.Point{-73.99, 40.75}},
		Properties:  map[string]any{"agency": "NYPD"},
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWebhookChannel_Deliver_Success(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := testEvent()
	subscription := &entity.Subscription{
		ID:      uuid.New(),
		Channel: entity.ChannelWebhook,
		Target:  server.URL,
		Active:  true,
	}

	ch := NewWebhookChannel(time.Second, newDiscardLogger())
	require.NoError(t, ch.Deliver(context.Background(), subscription, event))

	assert.Equal(t, subscription.ID.String(), received.SubscriptionID)
	assert.Equal(t, event.ID.String(), received.EventID)
	assert.Equal(t, event.Title, received.Title)
	assert.Equal(t, "2026-03-01T12:00:00Z", received.CreatedAt)

	feature, err := geo.DecodeFeature(received.Feature)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-73.99, 40.75}, feature.Geometry)
}

func TestWebhookChannel_Deliver_ServerErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	subscription := &entity.Subscription{ID: uuid.New(), Target: server.URL}

	ch := NewWebhookChannel(time.Second, newDiscardLogger())
	err := ch.Deliver(context.Background(), subscription, testEvent())
	require.Error(t, err)
	assert.True(t, service.IsDeliveryError(err))
	assert.Contains(t, err.Error(), "503")
}

func TestWebhookChannel_Deliver_ConnectionRefusedIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	subscription := &entity.Subscription{ID: uuid.New(), Target: server.URL}

	ch := NewWebhookChannel(time.Second, newDiscardLogger())
	err := ch.Deliver(context.Background(), subscription, testEvent())
	require.Error(t, err)
	assert.True(t, service.IsDeliveryError(err))
}

func TestWebhookChannel_Deliver_NilEvent(t *testing.T) {
	ch := NewWebhookChannel(time.Second, newDiscardLogger())
	err := ch.Deliver(context.Background(), &entity.Subscription{}, nil)
	require.Error(t, err)
	// A nil event here is a programming defect, not a transient failure.
	assert.False(t, service.IsDeliveryError(err))
}

func TestWebhookChannel_Metadata(t *testing.T) {
	ch := NewWebhookChannel(0, newDiscardLogger())
	assert.Equal(t, entity.ChannelWebhook, ch.Name())
	assert.True(t, ch.RequiresEvent())
}

func TestEmailChannel_DeliverWithoutEvent(t *testing.T) {
	ch := NewEmailChannel(newDiscardLogger())
	assert.Equal(t, entity.ChannelEmail, ch.Name())
	assert.False(t, ch.RequiresEvent())

	subscription := &entity.Subscription{
		ID:      uuid.New(),
		Channel: entity.ChannelEmail,
		Target:  "subscriber@example.com",
	}
	require.NoError(t, ch.Deliver(context.Background(), subscription, nil))
}

func TestStaticRegistry_Resolve(t *testing.T) {
	webhook := NewWebhookChannel(time.Second, newDiscardLogger())
	email := NewEmailChannel(newDiscardLogger())
	reg := NewStaticRegistry(webhook, email)

	resolved, err := reg.Resolve(entity.ChannelWebhook)
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelWebhook, resolved.Name())

	resolved, err = reg.Resolve(entity.ChannelEmail)
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelEmail, resolved.Name())
}

func TestStaticRegistry_ResolveUnknown(t *testing.T) {
	reg := NewStaticRegistry(NewEmailChannel(newDiscardLogger()))

	_, err := reg.Resolve(entity.Channel("carrier-pigeon"))
	require.Error(t, err)
	assert.True(t, service.IsUnknownChannelError(err))
}
