package impl

import (
	"context"
	"testing"
	"time"

	"geogram/internal/domain/entity"
	domainerrors "geogram/internal/domain/errors"
	"geogram/internal/domain/repository"
	"geogram/internal/geo"
	mockRepo "geogram/internal/mocks/repository"
	"geogram/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// matchServiceFixtures holds all test dependencies for match service tests.
type matchServiceFixtures struct {
	service          usecase.MatchUsecase
	eventRepo        *mockRepo.MockEventRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
}

func createTestMatchService(t *testing.T) matchServiceFixtures {
	eventRepo := mockRepo.NewMockEventRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	service := NewMatchService(MatchServiceParams{
		EventRepo:        eventRepo,
		SubscriptionRepo: subscriptionRepo,
	})

	return matchServiceFixtures{
		service:          service,
		eventRepo:        eventRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func squareFeature(minX, minY, maxX, maxY float64) *geo.Feature {
	return &geo.Feature{
		Geometry: orb.Polygon{
			{
				{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
			},
		},
	}
}

func pointEvent(x, y float64) *entity.Event {
	return &entity.Event{
		ID:        uuid.New(),
		Geom:      &geo.Feature{Geometry: orb.Point{x, y}},
		CreatedAt: time.Now(),
	}
}

func TestMatchService_MatchingEvents_InvalidRegion(t *testing.T) {
	fx := createTestMatchService(t)

	_, err := fx.service.MatchingEvents(context.Background(), &geo.Feature{Geometry: orb.Point{1, 2}}, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestMatchService_MatchingEvents_InvertedWindow(t *testing.T) {
	fx := createTestMatchService(t)

	after := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	before := after.Add(-time.Hour)

	events, err := fx.service.MatchingEvents(context.Background(), squareFeature(0, 0, 10, 10), &usecase.MatchFilters{
		After:  &after,
		Before: &before,
	})
	require.NoError(t, err)
	assert.Empty(t, events)
	// The repository is never consulted for an impossible window.
	fx.eventRepo.AssertNotCalled(t, "FindCandidateEvents", mock.Anything, mock.Anything)
}

func TestMatchService_MatchingEvents_ExactPredicateFiltersBoundOvershoot(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	// L-shaped region: the bounding box covers (0,0)-(10,10) but the region
	// itself excludes the upper-right quadrant.
	region := &geo.Feature{
		Geometry: orb.Polygon{
			{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}, {0, 0}},
		},
	}

	inside := pointEvent(2, 2)
	inBoxOnly := pointEvent(8, 8)
	noGeometry := &entity.Event{ID: uuid.New()}

	fx.eventRepo.EXPECT().
		FindCandidateEvents(ctx, mock.AnythingOfType("*repository.EventFilter")).
		Return([]*entity.Event{inside, inBoxOnly, noGeometry}, nil)

	events, err := fx.service.MatchingEvents(ctx, region, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, inside.ID, events[0].ID)
}

func TestMatchService_MatchingEvents_PassesFiltersToRepository(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	publisherID := uuid.New()
	after := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	before := after.Add(24 * time.Hour)
	region := squareFeature(0, 0, 10, 10)

	fx.eventRepo.EXPECT().
		FindCandidateEvents(ctx, mock.MatchedBy(func(filter *repository.EventFilter) bool {
			return filter.Bound != nil &&
				filter.PublisherID != nil && *filter.PublisherID == publisherID &&
				filter.After != nil && filter.After.Equal(after) &&
				filter.Before != nil && filter.Before.Equal(before)
		})).
		Return([]*entity.Event{}, nil)

	events, err := fx.service.MatchingEvents(ctx, region, &usecase.MatchFilters{
		PublisherID: &publisherID,
		After:       &after,
		Before:      &before,
	})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMatchService_MatchingEvents_RepositoryError(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()

	fx.eventRepo.EXPECT().
		FindCandidateEvents(ctx, mock.AnythingOfType("*repository.EventFilter")).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.MatchingEvents(ctx, squareFeature(0, 0, 10, 10), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query candidate events")
}

func TestMatchService_MatchSubscriptions_NoGeometry(t *testing.T) {
	fx := createTestMatchService(t)

	_, err := fx.service.MatchSubscriptions(context.Background(), &entity.Event{ID: uuid.New()})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestMatchService_MatchSubscriptions_RegionIntersection(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	event := pointEvent(3, 3)
	event.PublisherID = uuid.New()

	covering := &entity.Subscription{ID: uuid.New(), Region: squareFeature(0, 0, 5, 5)}
	elsewhere := &entity.Subscription{ID: uuid.New(), Region: squareFeature(20, 20, 30, 30)}
	noRegion := &entity.Subscription{ID: uuid.New()}

	fx.subscriptionRepo.EXPECT().
		ListActiveSubscriptions(ctx, &event.PublisherID).
		Return([]*entity.Subscription{covering, elsewhere, noRegion}, nil)

	matched, err := fx.service.MatchSubscriptions(ctx, event)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, covering.ID, matched[0].ID)
}

func TestMatchService_MatchSubscriptions_PublisherScopeGuard(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	event := pointEvent(3, 3)
	event.PublisherID = uuid.New()
	otherPublisher := uuid.New()

	scopedElsewhere := &entity.Subscription{
		ID:          uuid.New(),
		PublisherID: &otherPublisher,
		Region:      squareFeature(0, 0, 5, 5),
	}
	scopedHere := &entity.Subscription{
		ID:          uuid.New(),
		PublisherID: &event.PublisherID,
		Region:      squareFeature(0, 0, 5, 5),
	}

	fx.subscriptionRepo.EXPECT().
		ListActiveSubscriptions(ctx, &event.PublisherID).
		Return([]*entity.Subscription{scopedElsewhere, scopedHere}, nil)

	matched, err := fx.service.MatchSubscriptions(ctx, event)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, scopedHere.ID, matched[0].ID)
}

func TestMatchService_MatchSubscriptions_RepositoryError(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	event := pointEvent(3, 3)

	fx.subscriptionRepo.EXPECT().
		ListActiveSubscriptions(ctx, &event.PublisherID).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.MatchSubscriptions(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list active subscriptions")
}
