package repository

import (
	"context"

	"geogram/internal/domain/entity"
	"geogram/internal/errors"

	"github.com/google/uuid"
)

// ErrDeliveryLogNotFound is returned when no delivery has been recorded for
// a (subscription, event) pair.
var ErrDeliveryLogNotFound = errors.New("delivery log not found")

// DeliveryLogRepository defines the interface for dispatch attempt records.
type DeliveryLogRepository interface {
	// CreateDeliveryLog persists a single attempt record.
	CreateDeliveryLog(ctx context.Context, log *entity.DeliveryLog) error

	// FindLatestDelivery retrieves the most recent attempt record for a
	// (subscription, event) pair. Used as the terminal-state guard before
	// dispatching.
	FindLatestDelivery(ctx context.Context, subscriptionID, eventID uuid.UUID) (*entity.DeliveryLog, error)

	// FindEscalations lists escalated records for operator review.
	FindEscalations(ctx context.Context, limit, offset int) ([]*entity.DeliveryLog, error)
}
