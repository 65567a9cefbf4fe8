// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"
	"encoding/json"

	"geogram/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventInput carries the controlled creation surface for events. The
// geometry arrives as the raw GeoJSON Feature document and is decoded during
// validation, before anything touches the store.
type CreateEventInput struct {
	PublisherID uuid.UUID       `validate:"required"`
	FeatureID   string          `validate:"required"`
	Title       string          `validate:"required"`
	Description string
	Geometry    json.RawMessage `validate:"required"`
	Properties  map[string]any
}

// EventUsecase defines the interface for the event store use cases
type EventUsecase interface {
	// Create validates and persists a new event. Empty title or feature id,
	// undecodable geometry and duplicate (publisher, feature) pairs all fail
	// validation; nothing is partially written.
	Create(ctx context.Context, input *CreateEventInput) (*entity.Event, error)

	// FindByFeature retrieves an event by its publisher-scoped external id
	FindByFeature(ctx context.Context, publisherID uuid.UUID, featureID string) (*entity.Event, error)

	// NeedsUpdate reports whether incoming differs from existing in
	// user-visible content. Pure comparison, no side effects.
	NeedsUpdate(existing, incoming *entity.Event) bool

	// Update applies a whitelisted content update to an existing event
	Update(ctx context.Context, id uuid.UUID, update *entity.EventUpdate) error
}
