package channel

import (
	"context"
	"log/slog"

	"geogram/config"
	"geogram/internal/domain/entity"
	"geogram/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// PushChannelParams holds dependencies for the optional FCM channel.
type PushChannelParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushChannelFromConfig builds the FCM channel when Firebase is
// configured. Without credentials it yields nil and the registry omits push.
func NewPushChannelFromConfig(params PushChannelParams) (service.Channel, error) {
	fb := params.Config.Firebase
	if fb == nil || fb.CredentialsPath == "" {
		return nil, nil
	}

	return NewPushChannel(params.Ctx, fb.CredentialsPath, params.Logger)
}

// pushChannel delivers through Firebase Cloud Messaging. The subscription
// target carries the device token.
type pushChannel struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewPushChannel creates the FCM push channel.
func NewPushChannel(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.Channel, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &pushChannel{client: client, logger: logger}, nil
}

func (c *pushChannel) Name() entity.Channel {
	return entity.ChannelPush
}

func (c *pushChannel) RequiresEvent() bool {
	return true
}

// Deliver sends a single FCM message to the subscription's device token.
func (c *pushChannel) Deliver(ctx context.Context, subscription *entity.Subscription, event *entity.Event) error {
	if event == nil {
		return errors.New("push channel requires an event")
	}

	message := &messaging.Message{
		Token: subscription.Target,
		Notification: &messaging.Notification{
			Title: event.Title,
			Body:  event.Description,
		},
		Data: map[string]string{
			"event_id":     event.ID.String(),
			"publisher_id": event.PublisherID.String(),
			"feature_id":   event.FeatureID,
		},
	}

	if _, err := c.client.Send(ctx, message); err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			// A dead token will keep failing until subscription management
			// cleans it up; the attempt budget caps the waste meanwhile.
			c.logger.Warn("[Push] Device token rejected",
				slog.String("subscription_id", subscription.ID.String()),
			)
		}

		return service.NewDeliveryError(entity.ChannelPush, err)
	}

	c.logger.Debug("[Push] Delivered",
		slog.String("subscription_id", subscription.ID.String()),
		slog.String("event_id", event.ID.String()),
	)

	return nil
}
