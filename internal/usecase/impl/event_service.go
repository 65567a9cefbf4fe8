// Package impl contains the use case implementations.
package impl

import (
	"context"
	"time"

	"geogram/config"
	"geogram/internal/domain/entity"
	domainerrors "geogram/internal/domain/errors"
	"geogram/internal/domain/repository"
	"geogram/internal/geo"
	"geogram/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	eventRepo repository.EventRepository
	validate  *validator.Validate
	compare   entity.ContentComparator
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Config    *config.Config
}

// NewEventService creates a new event store service instance
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		validate:  validator.New(),
		compare:   entity.CompareFields(params.Config.Matching.CompareFields...),
	}
}

// Create validates and persists a new event
func (s *eventService) Create(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	feature, err := geo.DecodeFeature(input.Geometry)
	if err != nil {
		// ParseError surfaces as a validation failure, never a crash.
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	event := &entity.Event{
		ID:          uuid.New(),
		PublisherID: input.PublisherID,
		FeatureID:   input.FeatureID,
		Title:       input.Title,
		Description: input.Description,
		Geom:        feature,
		Properties:  input.Properties,
		CreatedAt:   time.Now(),
	}

	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		if errors.Is(err, repository.ErrDuplicateEvent) {
			return nil, domainerrors.ErrEventConflict.WithDetails(
				"publisher " + input.PublisherID.String() + " already has feature " + input.FeatureID)
		}

		return nil, errors.Wrap(err, "failed to create event")
	}

	return event, nil
}

// FindByFeature retrieves an event by its publisher-scoped external id
func (s *eventService) FindByFeature(ctx context.Context, publisherID uuid.UUID, featureID string) (*entity.Event, error) {
	event, err := s.eventRepo.FindEventByFeature(ctx, publisherID, featureID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by feature")
	}

	return event, nil
}

// NeedsUpdate reports whether incoming differs in user-visible content
func (s *eventService) NeedsUpdate(existing, incoming *entity.Event) bool {
	if existing == nil {
		return incoming != nil
	}

	return existing.NeedsUpdate(incoming, s.compare)
}

// Update applies a whitelisted content update to an existing event
func (s *eventService) Update(ctx context.Context, id uuid.UUID, update *entity.EventUpdate) error {
	if update == nil {
		return domainerrors.ErrValidationFailed.WithDetails("empty update")
	}
	if update.Title != nil && *update.Title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}

	if err := s.eventRepo.UpdateEvent(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to update event")
	}

	return nil
}
