package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"policy-pilot-go/internal/model"
)

// NotificationRepository 定义了对 notifications 表的数据操作接口。
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) (string, error)
	FindByUser(ctx context.Context, tenantID, userID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建一个新的 NotificationRepository 实例。
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create 创建通知记录并返回分配的 ID。
func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) (string, error) {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return "", err
	}
	return notification.ID, nil
}

// FindByUser 返回指定用户的通知列表，按创建时间倒序。
func (r *notificationRepository) FindByUser(ctx context.Context, tenantID, userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead 把通知标记为已读。
func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}
