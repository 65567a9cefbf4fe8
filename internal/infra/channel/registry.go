// Package channel contains the delivery channel implementations and the
// registry resolving channel names to them.
package channel

import (
	"log/slog"

	"geogram/config"
	"geogram/internal/domain/entity"
	"geogram/internal/domain/service"

	"go.uber.org/fx"
)

type registry struct {
	channels map[entity.Channel]service.Channel
}

// RegistryParams holds dependencies for the channel registry, injected by Fx.
type RegistryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger

	// Push is optional: the FCM channel only exists when Firebase is
	// configured.
	Push service.Channel `name:"push" optional:"true"`
}

// NewRegistry builds the channel registry from configuration. It is a pure
// lookup table; resolution performs no I/O. Channel names outside the
// registered set resolve to an UnknownChannelError, which the dispatcher
// treats as terminal misconfiguration.
func NewRegistry(params RegistryParams) service.ChannelRegistry {
	channels := make(map[entity.Channel]service.Channel)

	if cfg := params.Config.Channels.Webhook; cfg != nil {
		webhook := NewWebhookChannel(cfg.Timeout, params.Logger)
		channels[webhook.Name()] = webhook
	}
	if cfg := params.Config.Channels.Email; cfg != nil && cfg.Enabled {
		email := NewEmailChannel(params.Logger)
		channels[email.Name()] = email
	}
	if cfg := params.Config.Channels.Push; cfg != nil && cfg.Enabled && params.Push != nil {
		channels[params.Push.Name()] = params.Push
	}

	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name.String())
	}
	params.Logger.Info("Channel registry initialized", slog.Any("channels", names))

	return &registry{channels: channels}
}

// NewStaticRegistry builds a registry from explicit channels. Used by tests
// and by callers wiring channels without config.
func NewStaticRegistry(channels ...service.Channel) service.ChannelRegistry {
	table := make(map[entity.Channel]service.Channel, len(channels))
	for _, ch := range channels {
		table[ch.Name()] = ch
	}

	return &registry{channels: table}
}

// Resolve returns the capability registered for the channel name.
func (r *registry) Resolve(name entity.Channel) (service.Channel, error) {
	ch, ok := r.channels[name]
	if !ok {
		return nil, &service.UnknownChannelError{Name: name}
	}

	return ch, nil
}
