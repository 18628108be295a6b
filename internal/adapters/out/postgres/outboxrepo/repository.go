package outboxrepo

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/notification"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationOutboxRepository implements NotificationOutboxRepository using GORM.
type GormNotificationOutboxRepository struct {
	db *gorm.DB
}

// NewGormNotificationOutboxRepository creates a new GORM notification outbox repository.
func NewGormNotificationOutboxRepository(db *gorm.DB) *GormNotificationOutboxRepository {
	return &GormNotificationOutboxRepository{db: db}
}

// Enqueue saves a notification so it commits together with the business write.
func (r *GormNotificationOutboxRepository) Enqueue(ctx context.Context, message *notification.Notification) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageUnavailableError(err)
	}

	return nil
}

// GetPending retrieves unsent notifications, oldest first.
func (r *GormNotificationOutboxRepository) GetPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	if err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageUnavailableError(err)
	}

	messages := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		message, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkSent records the time a notification was delivered to the broker.
func (r *GormNotificationOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, sentAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", id.Bytes()).
		Update("sent_at", sentAt)
	if result.Error != nil {
		return errs.NewStorageUnavailableError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}
