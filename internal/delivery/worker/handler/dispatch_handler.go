package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"geogram/config"
	deliverycontext "geogram/internal/delivery/context"
	"geogram/internal/domain/entity"
	"geogram/internal/domain/service"
	"geogram/internal/infra/metrics"
	"geogram/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandler handles Pub/Sub push messages carrying dispatch tasks.
// Retryable outcomes answer 503 so Pub/Sub redelivers with its own backoff;
// terminal outcomes answer 200 and settle the message.
type DispatchHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	dispatchSvc    usecase.DispatchUsecase
	metrics        *metrics.DispatchMetrics
}

// DispatchHandlerParams holds dependencies for the DispatchHandler
type DispatchHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	DispatchSvc usecase.DispatchUsecase
	Metrics     *metrics.DispatchMetrics
}

// NewDispatchHandler creates a new Pub/Sub dispatch handler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	verifyPushAuth := params.Config.PubSub != nil && params.Config.PubSub.VerifyPushAuth

	return &DispatchHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		dispatchSvc:    params.DispatchSvc,
		metrics:        params.Metrics,
	}
}

// HandlePush handles an incoming dispatch task push message
func (h *DispatchHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var taskMsg service.DispatchTaskMessage
	if err := json.Unmarshal(data, &taskMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse dispatch task", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, taskMsg.RequestID)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	task, err := h.buildTask(&pushMsg, &taskMsg)
	if err != nil {
		// Malformed task data can never dispatch; settle the message.
		reqLogger.Error("[Worker] Discarding malformed dispatch task",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing dispatch task",
		slog.String("subscription_id", taskMsg.SubscriptionID),
		slog.String("event_id", taskMsg.EventID),
		slog.Int("attempt", task.Attempt),
	)

	outcome, err := h.dispatchSvc.Dispatch(ctx, task)
	if err != nil {
		// Infrastructure failure before classification; let Pub/Sub retry.
		reqLogger.Error("[Worker] Dispatch failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	h.metrics.IncDispatchOutcome(string(outcome.State))

	if outcome.Retryable {
		reqLogger.Warn("[Worker] Dispatch retryable, requesting redelivery",
			slog.String("reason", outcome.Reason),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Dispatch settled",
		slog.String("state", string(outcome.State)),
	)

	return c.NoContent(http.StatusOK)
}

// buildTask assembles the dispatch task, preferring the transport's delivery
// attempt counter over the payload's when both are present.
func (h *DispatchHandler) buildTask(pushMsg *PubSubMessage, taskMsg *service.DispatchTaskMessage) (*entity.DispatchTask, error) {
	subscriptionID, err := uuid.Parse(taskMsg.SubscriptionID)
	if err != nil {
		return nil, err
	}

	eventID, err := uuid.Parse(taskMsg.EventID)
	if err != nil {
		return nil, err
	}

	attempt := taskMsg.Attempt
	if pushMsg.DeliveryAttempt != nil && *pushMsg.DeliveryAttempt > attempt {
		attempt = *pushMsg.DeliveryAttempt
	}
	if a, ok := pushMsg.Message.Attributes["attempt"]; ok && attempt == 0 {
		if parsed, parseErr := strconv.Atoi(a); parseErr == nil {
			attempt = parsed
		}
	}

	state := entity.DispatchStatePending
	if attempt > 1 {
		state = entity.DispatchStateRetrying
	}

	return &entity.DispatchTask{
		SubscriptionID: subscriptionID,
		EventID:        eventID,
		Attempt:        attempt,
		State:          state,
	}, nil
}
