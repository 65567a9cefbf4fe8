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

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindActiveSubscriptionByID retrieves a subscription that is still active.
// Deactivated or soft-deleted subscriptions report not found.
func (repo *subscriptionRepository) FindActiveSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active subscription")
	}

	return model.ToSubscriptionDomain(&subM)
}

// ListActiveSubscriptions returns the active subscriptions eligible for a
// publisher's events. Subscriptions without a publisher scope match every
// publisher; when publisherID is nil no scope filter is applied at all.
func (repo *subscriptionRepository) ListActiveSubscriptions(ctx context.Context, publisherID *uuid.UUID) ([]*entity.Subscription, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("active = ?", true)

	if publisherID != nil {
		query = query.Where("publisher_id IS NULL OR publisher_id = ?", *publisherID)
	}

	var subModels []*model.SubscriptionModel
	if err := query.Order("created_at ASC").Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active subscriptions")
	}

	subs := make([]*entity.Subscription, 0, len(subModels))
	for _, subM := range subModels {
		sub, err := model.ToSubscriptionDomain(subM)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, nil
}
