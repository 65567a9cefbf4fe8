// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"geogram/internal/geo"

	"github.com/google/uuid"
)

// Event represents a geospatial event published by a publisher.
type Event struct {
	ID          uuid.UUID      `json:"id"`           // The unique identifier for the event.
	PublisherID uuid.UUID      `json:"publisher_id"` // The ID of the publisher who owns this event.
	FeatureID   string         `json:"feature_id"`   // The publisher-scoped external identifier.
	Title       string         `json:"title"`        // Human readable title, required.
	Description string         `json:"description"`  // Optional longer description.
	Geom        *geo.Feature   `json:"-"`            // The decoded GeoJSON Feature geometry.
	Properties  map[string]any `json:"properties"`   // Opaque publisher metadata, distinct from the Feature properties.
	CreatedAt   time.Time      `json:"created_at"`   // Timestamp of when the event was created.
}

// EventUpdate is the whitelisted mass-assignment surface for event updates.
// PublisherID, FeatureID and timestamps are only settable on creation.
type EventUpdate struct {
	Title       *string
	Description *string
	Geom        *geo.Feature
	Properties  map[string]any
}

// NeedsUpdate reports whether incoming carries different user-visible content
// than the receiver, using the supplied comparator. A nil comparator falls
// back to the title comparison.
func (e *Event) NeedsUpdate(incoming *Event, compare ContentComparator) bool {
	if incoming == nil {
		return false
	}
	if compare == nil {
		compare = CompareFields("title")
	}

	return compare(e, incoming)
}
