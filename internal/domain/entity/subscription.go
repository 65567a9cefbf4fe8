package entity

import (
	"time"

	"geogram/internal/geo"

	"github.com/google/uuid"
)

// Subscription represents a standing request to be notified about events
// inside a geographic region through one delivery channel.
type Subscription struct {
	ID          uuid.UUID    `json:"id"`                     // The unique identifier for the subscription.
	Channel     Channel      `json:"channel"`                // The delivery channel name.
	Region      *geo.Feature `json:"-"`                      // The polygon area of interest.
	Target      string       `json:"target"`                 // Channel address: URL, email, phone number or device token.
	Active      bool         `json:"active"`                 // Only active subscriptions match and dispatch.
	PublisherID *uuid.UUID   `json:"publisher_id,omitempty"` // Optional scope to a single publisher.
	CreatedAt   time.Time    `json:"created_at"`             // Timestamp of when the subscription was created.
}
