package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"geogram/internal/delivery/response"
	"geogram/internal/geo"
	"geogram/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchQueryRequest asks for the events relevant to a region and window.
// All filters are optional and conjunctive.
type MatchQueryRequest struct {
	Region      json.RawMessage `json:"region"`
	PublisherID *string         `json:"publisher_id,omitempty"`
	After       *time.Time      `json:"after,omitempty"`
	Before      *time.Time      `json:"before,omitempty"`
}

// QueryHandler exposes the matching query over HTTP for subscriber-facing
// callers.
type QueryHandler struct {
	matchSvc usecase.MatchUsecase
}

// QueryHandlerParams holds dependencies for QueryHandler, injected by Fx.
type QueryHandlerParams struct {
	fx.In

	MatchSvc usecase.MatchUsecase
}

// NewQueryHandler is the constructor for QueryHandler
func NewQueryHandler(params QueryHandlerParams) *QueryHandler {
	return &QueryHandler{
		matchSvc: params.MatchSvc,
	}
}

// MatchEvents returns the events intersecting the region within the window,
// newest first.
func (h *QueryHandler) MatchEvents(c echo.Context) error {
	ctx := c.Request().Context()

	var req MatchQueryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid query input")
	}

	if len(req.Region) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "region is required")
	}

	region, err := geo.DecodeFeature(req.Region)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	filters := &usecase.MatchFilters{
		After:  req.After,
		Before: req.Before,
	}
	if req.PublisherID != nil {
		publisherID, parseErr := uuid.Parse(*req.PublisherID)
		if parseErr != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "publisher_id must be a UUID")
		}
		filters.PublisherID = &publisherID
	}

	events, err := h.matchSvc.MatchingEvents(ctx, region, filters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*EventView, 0, len(events))
	for _, event := range events {
		view, viewErr := NewEventView(event)
		if viewErr != nil {
			return response.HandleAppError(c, viewErr)
		}
		views = append(views, view)
	}

	return response.Success(c, http.StatusOK, views)
}
