// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"geogram/internal/domain/entity"
	"geogram/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for event persistence.
var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrDuplicateEvent is returned when the (publisher_id, feature_id) pair
	// already exists. The unique index enforces this atomically; there is no
	// check-then-insert window.
	ErrDuplicateEvent = errors.New("event already exists for publisher and feature id")
)

// EventFilter narrows candidate selection for the matching engine. All
// supplied members combine conjunctively; nil members impose no constraint.
type EventFilter struct {
	// Bound restricts candidates to events whose geometry bounding box
	// intersects this box. The exact spatial predicate runs on the decoded
	// geometry afterwards.
	Bound *orb.Bound
	// PublisherID scopes the query to one publisher.
	PublisherID *uuid.UUID
	// After keeps events with created_at >= After.
	After *time.Time
	// Before keeps events with created_at <= Before.
	Before *time.Time
}

// EventRepository defines the interface for event-related database operations.
type EventRepository interface {
	// CreateEvent persists a new event. A duplicate (publisher_id, feature_id)
	// pair returns ErrDuplicateEvent.
	CreateEvent(ctx context.Context, event *entity.Event) error

	// FindEventByID retrieves an event by its unique ID.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// FindEventByFeature retrieves an event by its publisher-scoped external id.
	FindEventByFeature(ctx context.Context, publisherID uuid.UUID, featureID string) (*entity.Event, error)

	// UpdateEvent applies a whitelisted update to an existing event. Only
	// title, description, geometry and properties are settable.
	UpdateEvent(ctx context.Context, id uuid.UUID, update *entity.EventUpdate) error

	// FindCandidateEvents returns events passing the filter, ordered by
	// created_at descending. Spatial filtering here is a bounding-box
	// prefilter only.
	FindCandidateEvents(ctx context.Context, filter *EventFilter) ([]*entity.Event, error)
}
