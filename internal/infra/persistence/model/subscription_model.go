package model

import (
	"time"

	"geogram/internal/domain/entity"
	"geogram/internal/geo"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions'
// table. The core only reads it; creation and deactivation happen in the
// subscription-management service.
type SubscriptionModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key"`
	Channel     string         `gorm:"type:text;not null"`
	Region      datatypes.JSON `gorm:"type:jsonb;not null"` // The GeoJSON Feature polygon.
	Target      string         `gorm:"type:text;not null"`
	Active      bool           `gorm:"not null;default:true;index"`
	PublisherID *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToSubscriptionDomain converts a persisted row back to the entity.
func ToSubscriptionDomain(m *SubscriptionModel) (*entity.Subscription, error) {
	region, err := geo.DecodeFeature(m.Region)
	if err != nil {
		return nil, errors.Wrap(err, "stored region is not a valid feature")
	}

	return &entity.Subscription{
		ID:          m.ID,
		Channel:     entity.Channel(m.Channel),
		Region:      region,
		Target:      m.Target,
		Active:      m.Active,
		PublisherID: m.PublisherID,
		CreatedAt:   m.CreatedAt,
	}, nil
}
