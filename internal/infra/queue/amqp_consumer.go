package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"geogram/config"
	deliverycontext "geogram/internal/delivery/context"
	"geogram/internal/domain/entity"
	"geogram/internal/domain/service"
	"geogram/internal/infra/metrics"
	"geogram/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultWorkers = 4

	routingKeyDispatchTask = "dispatch.task"
)

// AMQPConsumer drains dispatch tasks from a RabbitMQ queue and runs them
// through the dispatcher. Retryable outcomes nack with requeue so the broker
// schedules the next attempt; terminal outcomes ack and settle the message.
type AMQPConsumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	workers  int
	dispatch usecase.DispatchUsecase
	metrics  *metrics.DispatchMetrics
	logger   *slog.Logger
}

// NewAMQPConsumer connects to the broker and declares the dispatch topology.
func NewAMQPConsumer(cfg *config.AMQPConfig, dispatch usecase.DispatchUsecase, m *metrics.DispatchMetrics, logger *slog.Logger) (*AMQPConsumer, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open channel")
	}

	if err := channel.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrap(err, "failed to declare exchange")
	}

	if _, err := channel.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrap(err, "failed to declare queue")
	}

	if err := channel.QueueBind(cfg.Queue, routingKeyDispatchTask, cfg.Exchange, false, nil); err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrap(err, "failed to bind queue")
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	// One unacked message per worker keeps redelivery fair across workers.
	if err := channel.Qos(workers, 0, false); err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrap(err, "failed to set QoS")
	}

	logger.Info("RabbitMQ consumer initialized",
		slog.String("exchange", cfg.Exchange),
		slog.String("queue", cfg.Queue),
		slog.Int("workers", workers),
	)

	return &AMQPConsumer{
		conn:     conn,
		channel:  channel,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
		workers:  workers,
		dispatch: dispatch,
		metrics:  m,
		logger:   logger,
	}, nil
}

// Consume starts the worker pool and blocks until the context is cancelled
// or the broker closes the delivery channel.
func (c *AMQPConsumer) Consume(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return errors.Wrap(err, "failed to register consumer")
	}

	c.logger.Info("Started consuming dispatch tasks",
		slog.String("queue", c.queue),
	)

	var wg sync.WaitGroup
	for range c.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.runWorker(ctx, msgs)
		}()
	}
	wg.Wait()

	return ctx.Err()
}

func (c *AMQPConsumer) runWorker(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			c.handleDelivery(ctx, msg)
		}
	}
}

func (c *AMQPConsumer) handleDelivery(ctx context.Context, msg amqp.Delivery) {
	next, requeue, err := c.processMessage(ctx, msg)
	if err != nil {
		c.logger.Error("Failed to process dispatch task",
			slog.String("message_id", msg.MessageId),
			slog.Any("error", err),
		)
	}

	if next != nil {
		if pubErr := c.publishRetry(ctx, next); pubErr != nil {
			c.logger.Error("Failed to republish dispatch task",
				slog.Int("attempt", next.Attempt),
				slog.Any("error", pubErr),
			)
			// Keep the original message alive so the task is not lost.
			requeue = true
		}
	}

	if requeue {
		if err := msg.Nack(false, true); err != nil {
			c.logger.Error("Failed to nack message", slog.Any("error", err))
		}

		return
	}

	if err := msg.Ack(false); err != nil {
		c.logger.Error("Failed to ack message", slog.Any("error", err))
	}
}

// processMessage runs one dispatch attempt. A retryable outcome yields a
// follow-up message carrying the incremented attempt counter; the original
// message is then settled so the counter survives the broker round trip.
// Requeue is reserved for infrastructure failures where no attempt was
// classified. Malformed payloads are settled and never redelivered.
func (c *AMQPConsumer) processMessage(ctx context.Context, msg amqp.Delivery) (next *service.DispatchTaskMessage, requeue bool, err error) {
	var taskMsg service.DispatchTaskMessage
	if err := json.Unmarshal(msg.Body, &taskMsg); err != nil {
		return nil, false, errors.Wrap(err, "failed to unmarshal dispatch task")
	}

	task, err := taskFromMessage(&taskMsg)
	if err != nil {
		return nil, false, err
	}

	if msg.Redelivered && task.Attempt == 0 {
		task.Attempt = 1
		task.State = entity.DispatchStateRetrying
	}

	logger := c.logger
	if taskMsg.RequestID != "" {
		logger = logger.With(slog.String("request_id", taskMsg.RequestID))
		ctx = deliverycontext.WithRequestID(ctx, taskMsg.RequestID)
		ctx = deliverycontext.WithLogger(ctx, logger)
	}

	outcome, err := c.dispatch.Dispatch(ctx, task)
	if err != nil {
		// Infrastructure failure before any classification; let the broker
		// hand the task to another worker.
		return nil, true, err
	}

	c.metrics.IncDispatchOutcome(string(outcome.State))

	if !outcome.Retryable {
		return nil, false, nil
	}

	return &service.DispatchTaskMessage{
		RequestID:      taskMsg.RequestID,
		SubscriptionID: taskMsg.SubscriptionID,
		EventID:        taskMsg.EventID,
		Attempt:        task.Attempt + 1,
	}, false, nil
}

// publishRetry puts the follow-up attempt back onto the dispatch exchange.
func (c *AMQPConsumer) publishRetry(ctx context.Context, next *service.DispatchTaskMessage) error {
	body, err := json.Marshal(next)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.channel.PublishWithContext(ctx, c.exchange, routingKeyDispatchTask, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}), "failed to publish retry")
}

func taskFromMessage(msg *service.DispatchTaskMessage) (*entity.DispatchTask, error) {
	subscriptionID, err := uuid.Parse(msg.SubscriptionID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subscription id")
	}

	eventID, err := uuid.Parse(msg.EventID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid event id")
	}

	state := entity.DispatchStatePending
	if msg.Attempt > 1 {
		state = entity.DispatchStateRetrying
	}

	return &entity.DispatchTask{
		SubscriptionID: subscriptionID,
		EventID:        eventID,
		Attempt:        msg.Attempt,
		State:          state,
	}, nil
}

// Close closes the consumer channel and connection.
func (c *AMQPConsumer) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Error("Failed to close channel", slog.Any("error", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return errors.Wrap(err, "failed to close connection")
		}
	}

	return nil
}
