package postgres

import (
	"context"
	"encoding/json"

	"geogram/internal/domain/entity"
	domainerrors "geogram/internal/domain/errors"
	"geogram/internal/domain/repository"
	"geogram/internal/geo"
	"geogram/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// CreateEvent persists a new event. Uniqueness of (publisher_id, feature_id)
// rides on the unique index: the insert either lands or reports a duplicate,
// with no read-then-write window.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM, err := model.FromEventDomain(event)
	if err != nil {
		return errors.Wrap(err, "failed to convert event")
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEvent
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required event field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindEventByID retrieves an event by its unique ID.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return model.ToEventDomain(&eventM)
}

// FindEventByFeature retrieves an event by its publisher-scoped external id.
func (repo *eventRepository) FindEventByFeature(ctx context.Context, publisherID uuid.UUID, featureID string) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("publisher_id = ? AND feature_id = ?", publisherID, featureID).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by feature")
	}

	return model.ToEventDomain(&eventM)
}

// UpdateEvent applies the whitelisted content update. Only title,
// description, geometry and properties columns are ever written here.
func (repo *eventRepository) UpdateEvent(ctx context.Context, id uuid.UUID, update *entity.EventUpdate) error {
	columns := make(map[string]any, 4)
	if update.Title != nil {
		columns["title"] = *update.Title
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Geom != nil {
		geom, err := geo.EncodeFeature(update.Geom)
		if err != nil {
			return errors.Wrap(err, "failed to encode updated geometry")
		}
		bound := update.Geom.Geometry.Bound()
		columns["geom"] = geom
		columns["min_lon"] = bound.Min[0]
		columns["min_lat"] = bound.Min[1]
		columns["max_lon"] = bound.Max[0]
		columns["max_lat"] = bound.Max[1]
	}
	if update.Properties != nil {
		properties, err := json.Marshal(update.Properties)
		if err != nil {
			return errors.Wrap(err, "failed to encode updated properties")
		}
		columns["properties"] = properties
	}
	if len(columns) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// FindCandidateEvents returns events passing the filter, newest first. The
// bounding box comparison is the coarse spatial stage; rows whose stored
// geometry fails to decode are rejected rather than silently skipped.
func (repo *eventRepository) FindCandidateEvents(ctx context.Context, filter *repository.EventFilter) ([]*entity.Event, error) {
	query := repo.db.WithContext(ctx).Model(&model.EventModel{})

	if filter != nil {
		if filter.Bound != nil {
			query = query.Where(
				"max_lon >= ? AND min_lon <= ? AND max_lat >= ? AND min_lat <= ?",
				filter.Bound.Min[0], filter.Bound.Max[0],
				filter.Bound.Min[1], filter.Bound.Max[1],
			)
		}
		if filter.PublisherID != nil {
			query = query.Where("publisher_id = ?", *filter.PublisherID)
		}
		if filter.After != nil {
			query = query.Where("created_at >= ?", *filter.After)
		}
		if filter.Before != nil {
			query = query.Where("created_at <= ?", *filter.Before)
		}
	}

	var eventModels []*model.EventModel
	if err := query.Order("created_at DESC").Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find candidate events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		event, err := model.ToEventDomain(eventM)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
