package outboxrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents a pending or sent notification row.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Event     string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `gorm:"not null"`
	SentAt    *time.Time
}

// TableName overrides the table name.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a domain notification to a DTO.
func fromDomain(message *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        message.ID().Bytes(),
		OrderID:   message.Order().Bytes(),
		UserID:    message.User().Bytes(),
		Event:     message.Event().String(),
		CreatedAt: message.CreatedAt(),
		SentAt:    message.SentAt(),
	}
}

// toDomain converts a DTO to a domain notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, orderID, userID, notification.Event(dto.Event), dto.CreatedAt, dto.SentAt)
}
