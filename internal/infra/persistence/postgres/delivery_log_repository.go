package postgres

import (
	"context"

	"geogram/internal/domain/entity"
	"geogram/internal/domain/repository"
	"geogram/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// CreateDeliveryLog persists a single attempt record.
func (repo *deliveryLogRepository) CreateDeliveryLog(ctx context.Context, log *entity.DeliveryLog) error {
	logM := model.FromDeliveryLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to create delivery log")
	}

	log.ID = logM.ID
	log.AttemptedAt = logM.AttemptedAt

	return nil
}

// FindLatestDelivery retrieves the most recent attempt record for a
// (subscription, event) pair.
func (repo *deliveryLogRepository) FindLatestDelivery(ctx context.Context, subscriptionID, eventID uuid.UUID) (*entity.DeliveryLog, error) {
	var logM model.DeliveryLogModel

	if err := repo.db.WithContext(ctx).
		Where("subscription_id = ? AND event_id = ?", subscriptionID, eventID).
		Order("attempted_at DESC").
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest delivery")
	}

	return model.ToDeliveryLogDomain(&logM), nil
}

// FindEscalations lists escalated records for operator review, newest first.
func (repo *deliveryLogRepository) FindEscalations(ctx context.Context, limit, offset int) ([]*entity.DeliveryLog, error) {
	if limit <= 0 {
		limit = 50
	}

	var logModels []*model.DeliveryLogModel
	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.DeliveryStatusEscalated).
		Order("attempted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find escalations")
	}

	logs := make([]*entity.DeliveryLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, model.ToDeliveryLogDomain(logM))
	}

	return logs, nil
}
