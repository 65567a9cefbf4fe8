package impl

import (
	"context"
	"log/slog"
	"time"

	"geogram/config"
	deliverycontext "geogram/internal/delivery/context"
	"geogram/internal/domain/entity"
	"geogram/internal/domain/repository"
	"geogram/internal/domain/service"
	"geogram/internal/infra/metrics"
	"geogram/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dispatchService struct {
	subscriptionRepo repository.SubscriptionRepository
	eventRepo        repository.EventRepository
	deliveryLogRepo  repository.DeliveryLogRepository
	registry         service.ChannelRegistry
	metrics          *metrics.DispatchMetrics
	logger           *slog.Logger
	maxAttempts      int
	attemptTimeout   time.Duration
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	EventRepo        repository.EventRepository
	DeliveryLogRepo  repository.DeliveryLogRepository
	Registry         service.ChannelRegistry
	Metrics          *metrics.DispatchMetrics
	Logger           *slog.Logger
	Config           *config.Config
}

// NewDispatchService creates a new notification dispatcher instance
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		subscriptionRepo: params.SubscriptionRepo,
		eventRepo:        params.EventRepo,
		deliveryLogRepo:  params.DeliveryLogRepo,
		registry:         params.Registry,
		metrics:          params.Metrics,
		logger:           params.Logger,
		maxAttempts:      params.Config.Dispatch.MaxAttempts,
		attemptTimeout:   params.Config.Dispatch.AttemptTimeout,
	}
}

// Dispatch runs one delivery attempt for the task and classifies the result.
func (s *dispatchService) Dispatch(ctx context.Context, task *entity.DispatchTask) (*usecase.DispatchOutcome, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("subscription_id", task.SubscriptionID.String()),
		slog.String("event_id", task.EventID.String()),
		slog.Int("attempt", task.Attempt),
	)

	if task.Attempt <= 0 {
		task.Attempt = 1
	}

	// A task already in a terminal state is never re-dispatched.
	if task.Terminal() {
		logger.Warn("[Dispatch] Task already terminal, skipping",
			slog.String("state", string(task.State)),
		)

		return &usecase.DispatchOutcome{State: task.State, Retryable: false, Reason: "task already terminal"}, nil
	}
	if outcome := s.checkPriorTerminal(ctx, task, logger); outcome != nil {
		return outcome, nil
	}

	subscription, err := s.subscriptionRepo.FindActiveSubscriptionByID(ctx, task.SubscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			// The subscriber unsubscribed or was deleted between enqueue and
			// delivery; retrying can never succeed.
			return s.failTerminal(ctx, task, entity.Channel(""), "subscription missing or inactive", logger), nil
		}

		return nil, errors.Wrap(err, "failed to load subscription")
	}

	channel, err := s.registry.Resolve(subscription.Channel)
	if err != nil {
		if service.IsUnknownChannelError(err) {
			return s.failTerminal(ctx, task, subscription.Channel, err.Error(), logger), nil
		}

		return nil, errors.Wrap(err, "failed to resolve channel")
	}

	// Self-contained channels assemble their own content; the event stays nil.
	var event *entity.Event
	if channel.RequiresEvent() {
		event, err = s.eventRepo.FindEventByID(ctx, task.EventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return s.failTerminal(ctx, task, subscription.Channel, "event missing", logger), nil
			}

			return nil, errors.Wrap(err, "failed to load event")
		}
	}

	deliverErr := s.deliverWithTimeout(ctx, channel, subscription, event)
	if deliverErr == nil {
		task.State = entity.DispatchStateDelivered
		s.recordAttempt(ctx, task, subscription.Channel, entity.DeliveryStatusSent, "", true, logger)
		logger.Info("[Dispatch] Delivered", slog.String("channel", subscription.Channel.String()))

		return &usecase.DispatchOutcome{State: entity.DispatchStateDelivered, Retryable: false}, nil
	}

	if task.Attempt >= s.maxAttempts {
		// Attempt budget exhausted: terminal, escalated for operator
		// visibility rather than silently dropped.
		task.State = entity.DispatchStateFailed
		s.recordAttempt(ctx, task, subscription.Channel, entity.DeliveryStatusEscalated, deliverErr.Error(), true, logger)
		logger.Error("[Dispatch] Attempt budget exhausted, escalating",
			slog.String("channel", subscription.Channel.String()),
			slog.Int("max_attempts", s.maxAttempts),
			slog.Any("error", deliverErr),
		)

		return &usecase.DispatchOutcome{
			State:     entity.DispatchStateFailed,
			Retryable: false,
			Reason:    "attempt budget exhausted: " + deliverErr.Error(),
		}, nil
	}

	task.State = entity.DispatchStateRetrying
	s.recordAttempt(ctx, task, subscription.Channel, entity.DeliveryStatusFailed, deliverErr.Error(), false, logger)
	logger.Warn("[Dispatch] Transient delivery failure, will retry",
		slog.String("channel", subscription.Channel.String()),
		slog.Any("error", deliverErr),
	)

	return &usecase.DispatchOutcome{
		State:     entity.DispatchStateRetrying,
		Retryable: true,
		Reason:    deliverErr.Error(),
	}, nil
}

// checkPriorTerminal consults the delivery log so a redelivered message for
// an already-settled pair is acknowledged instead of re-sent.
func (s *dispatchService) checkPriorTerminal(ctx context.Context, task *entity.DispatchTask, logger *slog.Logger) *usecase.DispatchOutcome {
	latest, err := s.deliveryLogRepo.FindLatestDelivery(ctx, task.SubscriptionID, task.EventID)
	if err != nil {
		if !errors.Is(err, repository.ErrDeliveryLogNotFound) {
			// Guard lookup failures never block delivery; at-least-once wins.
			logger.Warn("[Dispatch] Delivery log lookup failed", slog.Any("error", err))
		}

		return nil
	}
	if latest == nil || !latest.Terminal {
		return nil
	}

	state := entity.DispatchStateDelivered
	if latest.Status != entity.DeliveryStatusSent {
		state = entity.DispatchStateFailed
	}
	task.State = state
	logger.Info("[Dispatch] Pair already settled, skipping",
		slog.String("status", latest.Status),
	)

	return &usecase.DispatchOutcome{State: state, Retryable: false, Reason: "already settled"}
}

// deliverWithTimeout runs one attempt under the per-attempt deadline. The
// attempt runs to completion or timeout; there is no mid-flight cancellation
// beyond the deadline.
func (s *dispatchService) deliverWithTimeout(ctx context.Context, channel service.Channel, subscription *entity.Subscription, event *entity.Event) error {
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()

	started := time.Now()
	err := channel.Deliver(attemptCtx, subscription, event)
	s.metrics.ObserveDeliveryDuration(subscription.Channel.String(), time.Since(started))
	if err == nil {
		return nil
	}
	if service.IsDeliveryError(err) {
		return err
	}

	// Timeouts and unclassified channel failures are treated as transient;
	// the attempt budget bounds the damage of a persistent one.
	return service.NewDeliveryError(channel.Name(), err)
}

func (s *dispatchService) failTerminal(ctx context.Context, task *entity.DispatchTask, channel entity.Channel, reason string, logger *slog.Logger) *usecase.DispatchOutcome {
	task.State = entity.DispatchStateFailed
	s.recordAttempt(ctx, task, channel, entity.DeliveryStatusFailed, reason, true, logger)
	logger.Error("[Dispatch] Terminal failure", slog.String("reason", reason))

	return &usecase.DispatchOutcome{
		State:     entity.DispatchStateFailed,
		Retryable: false,
		Reason:    reason,
	}
}

func (s *dispatchService) recordAttempt(ctx context.Context, task *entity.DispatchTask, channel entity.Channel, status, errMessage string, terminal bool, logger *slog.Logger) {
	log := &entity.DeliveryLog{
		ID:             uuid.New(),
		SubscriptionID: task.SubscriptionID,
		EventID:        task.EventID,
		Channel:        channel,
		Attempt:        task.Attempt,
		Status:         status,
		ErrorMessage:   errMessage,
		Terminal:       terminal,
		AttemptedAt:    time.Now(),
	}

	if err := s.deliveryLogRepo.CreateDeliveryLog(ctx, log); err != nil {
		logger.Warn("[Dispatch] Failed to record delivery attempt", slog.Any("error", err))
	}
}
