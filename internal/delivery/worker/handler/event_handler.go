package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "geogram/internal/delivery/context"
	"geogram/internal/delivery/response"
	"geogram/internal/domain/entity"
	"geogram/internal/geo"
	"geogram/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IngestEventRequest is the publisher-facing ingest payload. Geometry is the
// raw GeoJSON Feature document.
type IngestEventRequest struct {
	PublisherID string          `json:"publisher_id" validate:"required,uuid"`
	FeatureID   string          `json:"feature_id" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Geometry    json.RawMessage `json:"geometry" validate:"required"`
	Properties  map[string]any  `json:"properties"`
}

// EventView is the JSON shape of an event in responses.
type EventView struct {
	ID          string          `json:"id"`
	PublisherID string          `json:"publisher_id"`
	FeatureID   string          `json:"feature_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Feature     json.RawMessage `json:"feature"`
	Properties  map[string]any  `json:"properties,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewEventView converts an event entity for the response envelope.
func NewEventView(event *entity.Event) (*EventView, error) {
	feature, err := geo.EncodeFeature(event.Geom)
	if err != nil {
		return nil, err
	}

	return &EventView{
		ID:          event.ID.String(),
		PublisherID: event.PublisherID.String(),
		FeatureID:   event.FeatureID,
		Title:       event.Title,
		Description: event.Description,
		Feature:     feature,
		Properties:  event.Properties,
		CreatedAt:   event.CreatedAt,
	}, nil
}

// EventHandler exposes the publisher ingest endpoint. Re-publication with a
// known (publisher, feature) pair updates the stored event when its
// user-visible content changed and is a no-op otherwise.
type EventHandler struct {
	eventUC  usecase.EventUsecase
	validate *validator.Validate
	logger   *slog.Logger
}

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC:  params.EventUC,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

// IngestEvent handles publisher event ingestion
func (h *EventHandler) IngestEvent(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var req IngestEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	publisherID, err := uuid.Parse(req.PublisherID)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "publisher_id must be a UUID")
	}

	existing, err := h.eventUC.FindByFeature(ctx, publisherID, req.FeatureID)
	if err == nil {
		return h.refreshEvent(c, existing, &req, logger)
	}

	event, err := h.eventUC.Create(ctx, &usecase.CreateEventInput{
		PublisherID: publisherID,
		FeatureID:   req.FeatureID,
		Title:       req.Title,
		Description: req.Description,
		Geometry:    req.Geometry,
		Properties:  req.Properties,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logger.Info("[Ingest] Event created",
		slog.String("event_id", event.ID.String()),
		slog.String("feature_id", event.FeatureID),
	)

	view, err := NewEventView(event)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// refreshEvent applies the update-or-no-op path for a known feature.
func (h *EventHandler) refreshEvent(c echo.Context, existing *entity.Event, req *IngestEventRequest, logger *slog.Logger) error {
	ctx := c.Request().Context()

	feature, err := geo.DecodeFeature(req.Geometry)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	incoming := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Geom:        feature,
		Properties:  req.Properties,
	}

	if !h.eventUC.NeedsUpdate(existing, incoming) {
		view, viewErr := NewEventView(existing)
		if viewErr != nil {
			return response.HandleAppError(c, viewErr)
		}

		return response.Success(c, http.StatusOK, view)
	}

	update := &entity.EventUpdate{
		Title:       &req.Title,
		Description: &req.Description,
		Geom:        feature,
		Properties:  req.Properties,
	}
	if err := h.eventUC.Update(ctx, existing.ID, update); err != nil {
		return response.HandleAppError(c, err)
	}

	logger.Info("[Ingest] Event refreshed",
		slog.String("event_id", existing.ID.String()),
		slog.String("feature_id", existing.FeatureID),
	)

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Geom = feature
	existing.Properties = req.Properties

	view, err := NewEventView(existing)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
