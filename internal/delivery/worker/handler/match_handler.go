package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"geogram/config"
	deliverycontext "geogram/internal/delivery/context"
	"geogram/internal/domain/repository"
	"geogram/internal/domain/service"
	"geogram/internal/infra/metrics"
	"geogram/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EventPublishedMessage announces that an event landed in the store and is
// ready for matching.
type EventPublishedMessage struct {
	RequestID string `json:"request_id,omitempty"`
	EventID   string `json:"event_id"`
}

// MatchHandler handles event-published push messages. Each one fans out into
// dispatch tasks, one per subscription whose region the event intersects.
type MatchHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	matchSvc       usecase.MatchUsecase
	eventRepo      repository.EventRepository
	taskPublisher  service.TaskPublisher
	metrics        *metrics.DispatchMetrics
}

// MatchHandlerParams holds dependencies for the MatchHandler
type MatchHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	MatchSvc      usecase.MatchUsecase
	EventRepo     repository.EventRepository
	TaskPublisher service.TaskPublisher
	Metrics       *metrics.DispatchMetrics
}

// NewMatchHandler creates a new event-published push handler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	verifyPushAuth := params.Config.PubSub != nil && params.Config.PubSub.VerifyPushAuth

	return &MatchHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		matchSvc:       params.MatchSvc,
		eventRepo:      params.EventRepo,
		taskPublisher:  params.TaskPublisher,
		metrics:        params.Metrics,
	}
}

// HandlePush handles an incoming event-published push message
func (h *MatchHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Matcher] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Matcher] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Matcher] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var eventMsg EventPublishedMessage
	if err := json.Unmarshal(data, &eventMsg); err != nil {
		h.logger.Error("[Matcher] Failed to parse event message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, eventMsg.RequestID)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.matchAndPublish(ctx, &eventMsg, requestID, reqLogger); err != nil {
		reqLogger.Error("[Matcher] Failed to process event",
			slog.String("event_id", eventMsg.EventID),
			slog.Any("error", err),
		)

		if errors.Is(err, repository.ErrEventNotFound) {
			// The event vanished before matching; redelivery cannot help.
			return c.NoContent(http.StatusOK)
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

func (h *MatchHandler) matchAndPublish(ctx context.Context, eventMsg *EventPublishedMessage, requestID string, logger *slog.Logger) error {
	eventID, err := uuid.Parse(eventMsg.EventID)
	if err != nil {
		logger.Error("[Matcher] Discarding message with malformed event id",
			slog.String("event_id", eventMsg.EventID),
		)

		return nil
	}

	event, err := h.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return err
	}

	subscriptions, err := h.matchSvc.MatchSubscriptions(ctx, event)
	if err != nil {
		return errors.Wrap(err, "failed to match subscriptions")
	}

	logger.Info("[Matcher] Matched subscriptions",
		slog.String("event_id", eventMsg.EventID),
		slog.Int("match_count", len(subscriptions)),
	)

	for _, sub := range subscriptions {
		task := &service.DispatchTaskMessage{
			RequestID:      requestID,
			SubscriptionID: sub.ID.String(),
			EventID:        event.ID.String(),
			Attempt:        1,
		}
		if err := h.taskPublisher.PublishDispatchTask(ctx, task); err != nil {
			// A partial fan-out redelivers the whole message; the dispatcher's
			// terminal-state guard settles the pairs already delivered.
			return errors.Wrap(err, "failed to publish dispatch task")
		}
	}

	h.metrics.AddMatchedPairs(len(subscriptions))

	return nil
}
