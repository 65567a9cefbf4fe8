package model

import (
	"time"

	"geogram/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs'
// table. One row per dispatch attempt.
type DeliveryLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_logs_pair"`
	EventID        uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_logs_pair"`
	Channel        string    `gorm:"type:text;not null"`
	Attempt        int       `gorm:"not null"`
	Status         string    `gorm:"type:text;not null"`
	ErrorMessage   string    `gorm:"type:text"`
	Terminal       bool      `gorm:"not null;default:false"`
	AttemptedAt    time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}

// FromDeliveryLogDomain converts an entity to its persistence form.
func FromDeliveryLogDomain(log *entity.DeliveryLog) *DeliveryLogModel {
	return &DeliveryLogModel{
		ID:             log.ID,
		SubscriptionID: log.SubscriptionID,
		EventID:        log.EventID,
		Channel:        log.Channel.String(),
		Attempt:        log.Attempt,
		Status:         log.Status,
		ErrorMessage:   log.ErrorMessage,
		Terminal:       log.Terminal,
		AttemptedAt:    log.AttemptedAt,
	}
}

// ToDeliveryLogDomain converts a persisted row back to the entity.
func ToDeliveryLogDomain(m *DeliveryLogModel) *entity.DeliveryLog {
	return &entity.DeliveryLog{
		ID:             m.ID,
		SubscriptionID: m.SubscriptionID,
		EventID:        m.EventID,
		Channel:        entity.Channel(m.Channel),
		Attempt:        m.Attempt,
		Status:         m.Status,
		ErrorMessage:   m.ErrorMessage,
		Terminal:       m.Terminal,
		AttemptedAt:    m.AttemptedAt,
	}
}
