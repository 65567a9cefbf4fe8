package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"geogram/internal/domain/entity"
	"geogram/internal/domain/service"
	"geogram/internal/geo"

	"github.com/pkg/errors"
)

const defaultWebhookTimeout = 10 * time.Second

// webhookChannel delivers a notification by POSTing the event as a GeoJSON
// Feature to the subscription's target URL.
type webhookChannel struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// webhookPayload is the body POSTed to the subscriber endpoint.
type webhookPayload struct {
	SubscriptionID string          `json:"subscription_id"`
	EventID        string          `json:"event_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Feature        json.RawMessage `json:"feature"`
	Properties     map[string]any  `json:"properties,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// NewWebhookChannel creates the webhook delivery channel.
func NewWebhookChannel(timeout time.Duration, logger *slog.Logger) service.Channel {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}

	return &webhookChannel{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *webhookChannel) Name() entity.Channel {
	return entity.ChannelWebhook
}

func (c *webhookChannel) RequiresEvent() bool {
	return true
}

// Deliver POSTs the event to the subscriber. Transport failures and
// non-2xx responses are transient delivery errors; the queue retries them.
func (c *webhookChannel) Deliver(ctx context.Context, subscription *entity.Subscription, event *entity.Event) error {
	if event == nil {
		return errors.New("webhook channel requires an event")
	}

	feature, err := geo.EncodeFeature(event.Geom)
	if err != nil {
		return errors.Wrap(err, "failed to encode event feature")
	}

	body, err := json.Marshal(webhookPayload{
		SubscriptionID: subscription.ID.String(),
		EventID:        event.ID.String(),
		Title:          event.Title,
		Description:    event.Description,
		Feature:        feature,
		Properties:     event.Properties,
		CreatedAt:      event.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, subscription.Target, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return service.NewDeliveryError(entity.ChannelWebhook, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return service.NewDeliveryError(entity.ChannelWebhook,
			errors.Errorf("subscriber endpoint returned status %d", resp.StatusCode))
	}

	c.logger.Debug("[Webhook] Delivered",
		slog.String("subscription_id", subscription.ID.String()),
		slog.String("event_id", event.ID.String()),
	)

	return nil
}
