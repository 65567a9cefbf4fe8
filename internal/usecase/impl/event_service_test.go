package impl

import (
	"context"
	"encoding/json"
	"testing"

	"geogram/config"
	"geogram/internal/domain/entity"
	domainerrors "geogram/internal/domain/errors"
	"geogram/internal/domain/repository"
	"geogram/internal/geo"
	mockRepo "geogram/internal/mocks/repository"
	"geogram/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pointFeatureJSON = `{"type":"Feature","geometry":{"type":"Point","coordinates":[-73.99,40.75]},"properties":{}}`

// eventServiceFixtures holds all test dependencies for event service tests.
type eventServiceFixtures struct {
	service   usecase.EventUsecase
	eventRepo *mockRepo.MockEventRepository
}

func createTestEventService(t *testing.T, compareFields ...string) eventServiceFixtures {
	eventRepo := mockRepo.NewMockEventRepository(t)
	service := NewEventService(EventServiceParams{
		EventRepo: eventRepo,
		Config: &config.Config{
			Matching: config.MatchingConfig{
				CompareFields: compareFields,
			},
		},
	})

	return eventServiceFixtures{
		service:   service,
		eventRepo: eventRepo,
	}
}

func validCreateInput() *usecase.CreateEventInput {
	return &usecase.CreateEventInput{
		PublisherID: uuid.New(),
		FeatureID:   "nyc-311-1234",
		Title:       "Noise complaint",
		Description: "Loud music reported",
		Geometry:    json.RawMessage(pointFeatureJSON),
		Properties:  map[string]any{"agency": "NYPD"},
	}
}

func TestEventService_Create_Success(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	input := validCreateInput()

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Return(nil)

	event, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, input.PublisherID, event.PublisherID)
	assert.Equal(t, input.FeatureID, event.FeatureID)
	assert.Equal(t, input.Title, event.Title)
	assert.NotNil(t, event.Geom)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestEventService_Create_EmptyTitle(t *testing.T) {
	fx := createTestEventService(t)

	input := validCreateInput()
	input.Title = ""

	_, err := fx.service.Create(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestEventService_Create_EmptyFeatureID(t *testing.T) {
	fx := createTestEventService(t)

	input := validCreateInput()
	input.FeatureID = ""

	_, err := fx.service.Create(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestEventService_Create_InvalidGeometry(t *testing.T) {
	fx := createTestEventService(t)

	input := validCreateInput()
	input.Geometry = json.RawMessage(`{"type":"Point","coordinates":[1,2]}`)

	_, err := fx.service.Create(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "expected a Feature")
}

func TestEventService_Create_DuplicateFeature(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	input := validCreateInput()

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Return(repository.ErrDuplicateEvent)

	_, err := fx.service.Create(ctx, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EVENT_CONFLICT", appErr.ErrorCode())
}

func TestEventService_Create_RepositoryError(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Return(errors.New("connection refused"))

	_, err := fx.service.Create(ctx, validCreateInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create event")
}

func TestEventService_FindByFeature_NotFound(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	publisherID := uuid.New()

	fx.eventRepo.EXPECT().
		FindEventByFeature(ctx, publisherID, "missing").
		Return(nil, repository.ErrEventNotFound)

	_, err := fx.service.FindByFeature(ctx, publisherID, "missing")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EVENT_NOT_FOUND", appErr.ErrorCode())
}

func TestEventService_NeedsUpdate_TitleChanged(t *testing.T) {
	fx := createTestEventService(t)

	existing := &entity.Event{Title: "Noise complaint"}
	incoming := &entity.Event{Title: "Noise complaint (updated)"}

	assert.True(t, fx.service.NeedsUpdate(existing, incoming))
}

func TestEventService_NeedsUpdate_SameTitle(t *testing.T) {
	fx := createTestEventService(t)

	existing := &entity.Event{Title: "Noise complaint", Description: "old"}
	incoming := &entity.Event{Title: "Noise complaint", Description: "new"}

	// Default comparator only inspects the title.
	assert.False(t, fx.service.NeedsUpdate(existing, incoming))
}

func TestEventService_NeedsUpdate_ConfiguredFields(t *testing.T) {
	fx := createTestEventService(t, "title", "description")

	existing := &entity.Event{Title: "Noise complaint", Description: "old"}
	incoming := &entity.Event{Title: "Noise complaint", Description: "new"}

	assert.True(t, fx.service.NeedsUpdate(existing, incoming))
}

func TestEventService_Update_EmptyTitleRejected(t *testing.T) {
	fx := createTestEventService(t)

	empty := ""
	err := fx.service.Update(context.Background(), uuid.New(), &entity.EventUpdate{Title: &empty})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestEventService_Update_Success(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	eventID := uuid.New()
	title := "Renamed"
	feature, err := geo.DecodeFeature([]byte(pointFeatureJSON))
	require.NoError(t, err)

	update := &entity.EventUpdate{Title: &title, Geom: feature}

	fx.eventRepo.EXPECT().
		UpdateEvent(ctx, eventID, update).
		Return(nil)

	require.NoError(t, fx.service.Update(ctx, eventID, update))
}

func TestEventService_Update_NotFound(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	eventID := uuid.New()
	title := "Renamed"

	fx.eventRepo.EXPECT().
		UpdateEvent(ctx, eventID, mock.AnythingOfType("*entity.EventUpdate")).
		Return(repository.ErrEventNotFound)

	err := fx.service.Update(ctx, eventID, &entity.EventUpdate{Title: &title})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EVENT_NOT_FOUND", appErr.ErrorCode())
}
