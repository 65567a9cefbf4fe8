// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"encoding/json"
	"time"

	"geogram/internal/domain/entity"
	"geogram/internal/geo"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// EventModel is the GORM-specific struct for the 'events' table. The unique
// index over (publisher_id, feature_id) enforces the re-publication rule
// atomically at insert time. The bounding box columns are a coarse spatial
// prefilter; the exact predicate runs on the decoded geometry in the engine.
type EventModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key"`
	PublisherID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_events_publisher_feature;index"`
	FeatureID   string         `gorm:"type:text;not null;uniqueIndex:idx_events_publisher_feature"`
	Title       string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text"`
	Geom        datatypes.JSON `gorm:"type:jsonb;not null"` // The GeoJSON Feature document.
	Properties  datatypes.JSON `gorm:"type:jsonb"`
	MinLon      float64        `gorm:"not null;index:idx_events_bbox"`
	MinLat      float64        `gorm:"not null;index:idx_events_bbox"`
	MaxLon      float64        `gorm:"not null;index:idx_events_bbox"`
	MaxLat      float64        `gorm:"not null;index:idx_events_bbox"`
	CreatedAt   time.Time      `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// FromEventDomain converts an entity to its persistence form, serializing
// the geometry and deriving the bounding box columns.
func FromEventDomain(event *entity.Event) (*EventModel, error) {
	geom, err := geo.EncodeFeature(event.Geom)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event geometry")
	}

	var properties datatypes.JSON
	if event.Properties != nil {
		properties, err = json.Marshal(event.Properties)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode event properties")
		}
	}

	bound := event.Geom.Geometry.Bound()

	return &EventModel{
		ID:          event.ID,
		PublisherID: event.PublisherID,
		FeatureID:   event.FeatureID,
		Title:       event.Title,
		Description: event.Description,
		Geom:        datatypes.JSON(geom),
		Properties:  properties,
		MinLon:      bound.Min[0],
		MinLat:      bound.Min[1],
		MaxLon:      bound.Max[0],
		MaxLat:      bound.Max[1],
		CreatedAt:   event.CreatedAt,
	}, nil
}

// ToEventDomain converts a persisted row back to the entity, decoding the
// stored GeoJSON Feature.
func ToEventDomain(m *EventModel) (*entity.Event, error) {
	feature, err := geo.DecodeFeature(m.Geom)
	if err != nil {
		return nil, errors.Wrap(err, "stored event geometry is not a valid feature")
	}

	var properties map[string]any
	if len(m.Properties) > 0 {
		if err := json.Unmarshal(m.Properties, &properties); err != nil {
			return nil, errors.Wrap(err, "failed to decode event properties")
		}
	}

	return &entity.Event{
		ID:          m.ID,
		PublisherID: m.PublisherID,
		FeatureID:   m.FeatureID,
		Title:       m.Title,
		Description: m.Description,
		Geom:        feature,
		Properties:  properties,
		CreatedAt:   m.CreatedAt,
	}, nil
}
