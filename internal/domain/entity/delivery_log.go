package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery log statuses.
const (
	DeliveryStatusSent      = "sent"
	DeliveryStatusFailed    = "failed"
	DeliveryStatusEscalated = "escalated"
)

// DeliveryLog records one dispatch attempt for a (subscription, event) pair.
// Escalated rows surface exhausted tasks to operators and guard the
// dispatcher against re-dispatching a task that already reached a terminal
// state.
type DeliveryLog struct {
	ID             uuid.UUID `json:"id"`
	SubscriptionID uuid.UUID `json:"subscription_id"`
	EventID        uuid.UUID `json:"event_id"`
	Channel        Channel   `json:"channel"`
	Attempt        int       `json:"attempt"`
	Status         string    `json:"status"` // sent, failed or escalated.
	ErrorMessage   string    `json:"error_message"`
	Terminal       bool      `json:"terminal"`
	AttemptedAt    time.Time `json:"attempted_at"`
}
