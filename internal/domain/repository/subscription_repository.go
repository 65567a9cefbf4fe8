package repository

import (
	"context"

	"geogram/internal/domain/entity"
	"geogram/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription is missing or
// inactive. The dispatcher treats both alike: terminal, no retry.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the interface for subscription-related
// database operations. The core only ever reads subscriptions; creation and
// deactivation belong to the subscription-management flows outside it.
type SubscriptionRepository interface {
	// FindActiveSubscriptionByID retrieves a subscription only if it is
	// active. A row that exists but is inactive returns
	// ErrSubscriptionNotFound, the same as a missing row.
	FindActiveSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// ListActiveSubscriptions returns all active subscriptions, optionally
	// restricted to those scoped to the given publisher or unscoped.
	ListActiveSubscriptions(ctx context.Context, publisherID *uuid.UUID) ([]*entity.Subscription, error)
}
