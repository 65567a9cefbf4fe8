package usecase

import (
	"context"
	"time"

	"geogram/internal/domain/entity"
	"geogram/internal/geo"

	"github.com/google/uuid"
)

// MatchFilters narrows a matching query. All supplied filters apply
// conjunctively; nil members impose no constraint.
type MatchFilters struct {
	// PublisherID restricts candidates to one publisher.
	PublisherID *uuid.UUID
	// After keeps events created at or after this instant.
	After *time.Time
	// Before keeps events created at or before this instant.
	Before *time.Time
}

// MatchUsecase defines the interface for the spatial+temporal matching engine
type MatchUsecase interface {
	// MatchingEvents returns events whose geometry intersects the region and
	// whose created_at falls within the window, ordered by created_at
	// descending. An inverted window yields an empty result, not an error.
	// An invalid region is rejected before any querying.
	MatchingEvents(ctx context.Context, region *geo.Feature, filters *MatchFilters) ([]*entity.Event, error)

	// MatchSubscriptions returns the active subscriptions whose region
	// intersects the event's geometry, honoring each subscription's
	// publisher scope. These pairs seed the dispatch tasks.
	MatchSubscriptions(ctx context.Context, event *entity.Event) ([]*entity.Subscription, error)
}
