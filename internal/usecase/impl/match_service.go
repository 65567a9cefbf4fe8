package impl

import (
	"context"

	"geogram/internal/domain/entity"
	domainerrors "geogram/internal/domain/errors"
	"geogram/internal/domain/repository"
	"geogram/internal/geo"
	"geogram/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type matchService struct {
	eventRepo        repository.EventRepository
	subscriptionRepo repository.SubscriptionRepository
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	EventRepo        repository.EventRepository
	SubscriptionRepo repository.SubscriptionRepository
}

// NewMatchService creates a new matching query engine instance
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		eventRepo:        params.EventRepo,
		subscriptionRepo: params.SubscriptionRepo,
	}
}

// MatchingEvents returns events intersecting the region within the window
func (s *matchService) MatchingEvents(ctx context.Context, region *geo.Feature, filters *usecase.MatchFilters) ([]*entity.Event, error) {
	if err := geo.ValidateRegion(region); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if filters == nil {
		filters = &usecase.MatchFilters{}
	}

	// An inverted window can never contain a created_at; short-circuit to an
	// empty result rather than an error.
	if filters.After != nil && filters.Before != nil && !filters.After.Before(*filters.Before) {
		return []*entity.Event{}, nil
	}

	bound := region.Geometry.Bound()
	candidates, err := s.eventRepo.FindCandidateEvents(ctx, &repository.EventFilter{
		Bound:       &bound,
		PublisherID: filters.PublisherID,
		After:       filters.After,
		Before:      filters.Before,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query candidate events")
	}

	// The bounding-box prefilter overshoots; the exact predicate runs on the
	// decoded geometry here.
	matched := make([]*entity.Event, 0, len(candidates))
	for _, event := range candidates {
		if event.Geom == nil {
			continue
		}
		if geo.Intersects(region, event.Geom.Geometry) {
			matched = append(matched, event)
		}
	}

	return matched, nil
}

// MatchSubscriptions returns active subscriptions whose region intersects
// the event geometry
func (s *matchService) MatchSubscriptions(ctx context.Context, event *entity.Event) ([]*entity.Subscription, error) {
	if event == nil || event.Geom == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event has no geometry")
	}

	subscriptions, err := s.subscriptionRepo.ListActiveSubscriptions(ctx, &event.PublisherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active subscriptions")
	}

	matched := make([]*entity.Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		if subscription.Region == nil {
			continue
		}
		// A publisher-scoped subscription never matches another publisher's
		// events; the repository already applies the scope, this guards the
		// invariant against future query changes.
		if subscription.PublisherID != nil && *subscription.PublisherID != event.PublisherID {
			continue
		}
		if geo.Intersects(subscription.Region, event.Geom.Geometry) {
			matched = append(matched, subscription)
		}
	}

	return matched, nil
}
