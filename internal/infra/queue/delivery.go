package queue

import (
	"context"
	"log/slog"

	"geogram/config"
	"geogram/internal/delivery"
	"geogram/internal/infra/metrics"
	"geogram/internal/usecase"

	"go.uber.org/fx"
)

// ConsumerParams holds dependencies for the AMQP consumer delivery.
type ConsumerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Dispatch usecase.DispatchUsecase
	Metrics  *metrics.DispatchMetrics
	Logger   *slog.Logger
}

// NewConsumerDelivery wires the AMQP consumer as a serving transport. Without
// AMQP configuration the transport idles so the push endpoint remains the
// only task source.
func NewConsumerDelivery(params ConsumerParams) (delivery.Delivery, error) {
	if params.Config.AMQP == nil || params.Config.AMQP.URL == "" {
		params.Logger.Info("AMQP not configured, queue consumer disabled")

		return &idleDelivery{}, nil
	}

	consumer, err := NewAMQPConsumer(params.Config.AMQP, params.Dispatch, params.Metrics, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing AMQP consumer")

			return consumer.Close()
		},
	})

	return &consumerDelivery{consumer: consumer}, nil
}

type consumerDelivery struct {
	consumer *AMQPConsumer
}

func (d *consumerDelivery) Serve(ctx context.Context) error {
	return d.consumer.Consume(ctx)
}

type idleDelivery struct{}

func (idleDelivery) Serve(ctx context.Context) error {
	<-ctx.Done()

	return ctx.Err()
}
