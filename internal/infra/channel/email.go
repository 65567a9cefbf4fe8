package channel

import (
	"context"
	"log/slog"

	"geogram/internal/domain/entity"
	"geogram/internal/domain/service"
)

// emailChannel is the self-contained digest channel. It does not deliver
// per-event content: digest assembly and sending run on their own schedule,
// so a dispatch only marks the subscription due for the next digest. The
// event payload is never loaded for it.
type emailChannel struct {
	logger *slog.Logger
}

// NewEmailChannel creates the email digest channel.
func NewEmailChannel(logger *slog.Logger) service.Channel {
	return &emailChannel{logger: logger}
}

func (c *emailChannel) Name() entity.Channel {
	return entity.ChannelEmail
}

// RequiresEvent is false: the digest aggregates independently of any single
// event.
func (c *emailChannel) RequiresEvent() bool {
	return false
}

func (c *emailChannel) Deliver(ctx context.Context, subscription *entity.Subscription, _ *entity.Event) error {
	c.logger.Info("[Email] Subscription queued for digest",
		slog.String("subscription_id", subscription.ID.String()),
		slog.String("target", subscription.Target),
	)

	return nil
}
