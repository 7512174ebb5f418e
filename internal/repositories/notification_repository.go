package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

type INotificationRepository interface {
	CreateNotification(ctx context.Context, notification *db_models.Notification) error
	GetByID(ctx context.Context, notificationID string) (*db_models.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) (int64, error)
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) INotificationRepository {
	return &NotificationRepository{db: db}
}

func (n NotificationRepository) CreateNotification(ctx context.Context, notification *db_models.Notification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

func (n NotificationRepository) GetByID(ctx context.Context, notificationID string) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := n.db.WithContext(ctx).First(&notification, "id = ?", notificationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (n NotificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]db_models.Notification, error) {

	query := n.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notifications []db_models.Notification
	if err := query.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead is one-way; there is no unread transition.
func (n NotificationRepository) MarkRead(ctx context.Context, notificationID string) (int64, error) {
	result := n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ?", notificationID).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (n NotificationRepository) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}
