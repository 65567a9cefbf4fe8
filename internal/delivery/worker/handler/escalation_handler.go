package handler

import (
	"net/http"
	"strconv"
	"time"

	"geogram/internal/delivery/response"
	"geogram/internal/domain/entity"
	"geogram/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxEscalationPageSize = 200

// EscalationView is the operator-facing projection of an escalated delivery.
type EscalationView struct {
	SubscriptionID string `json:"subscription_id"`
	EventID        string `json:"event_id"`
	Channel        string `json:"channel"`
	Attempt        int    `json:"attempt"`
	ErrorMessage   string `json:"error_message"`
	AttemptedAt    string `json:"attempted_at"`
}

// EscalationHandler lists dispatch tasks that exhausted their attempt budget.
type EscalationHandler struct {
	deliveryLogRepo repository.DeliveryLogRepository
}

// EscalationHandlerParams holds dependencies for EscalationHandler, injected by Fx.
type EscalationHandlerParams struct {
	fx.In

	DeliveryLogRepo repository.DeliveryLogRepository
}

// NewEscalationHandler is the constructor for EscalationHandler
func NewEscalationHandler(params EscalationHandlerParams) *EscalationHandler {
	return &EscalationHandler{
		deliveryLogRepo: params.DeliveryLogRepo,
	}
}

// ListEscalations returns escalated delivery records, newest first.
func (h *EscalationHandler) ListEscalations(c echo.Context) error {
	ctx := c.Request().Context()

	limit := parsePositiveInt(c.QueryParam("limit"), 50)
	if limit > maxEscalationPageSize {
		limit = maxEscalationPageSize
	}
	offset := parsePositiveInt(c.QueryParam("offset"), 0)

	escalations, err := h.deliveryLogRepo.FindEscalations(ctx, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*EscalationView, 0, len(escalations))
	for _, record := range escalations {
		views = append(views, newEscalationView(record))
	}

	return response.Success(c, http.StatusOK, views)
}

func newEscalationView(record *entity.DeliveryLog) *EscalationView {
	return &EscalationView{
		SubscriptionID: record.SubscriptionID.String(),
		EventID:        record.EventID.String(),
		Channel:        record.Channel.String(),
		Attempt:        record.Attempt,
		ErrorMessage:   record.ErrorMessage,
		AttemptedAt:    record.AttemptedAt.UTC().Format(time.RFC3339),
	}
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
