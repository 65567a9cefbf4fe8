package service

import (
	"context"
)

// DispatchTaskMessage is the wire form of a dispatch task consumed from the
// external queue.
type DispatchTaskMessage struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	SubscriptionID string `json:"subscription_id"`
	EventID        string `json:"event_id"`
	Attempt        int    `json:"attempt,omitempty"` // Filled from the transport when available.
}

// TaskPublisher defines the interface for seeding dispatch tasks onto the
// queue. The matcher publishes one task per (subscription, event) match;
// scheduling, persistence and retry backoff belong to the queue itself.
type TaskPublisher interface {
	// PublishDispatchTask publishes one dispatch task for async delivery.
	PublishDispatchTask(ctx context.Context, task *DispatchTaskMessage) error

	// Close releases any resources held by the publisher.
	Close() error
}
