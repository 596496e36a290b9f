package service

import (
	"context"

	"policy-pilot-go/internal/model"
	"policy-pilot-go/internal/repository"
)

// NotificationService 接口定义了通知的查询与已读操作。
type NotificationService interface {
	ListNotifications(ctx context.Context, tenantID, userID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService 创建一个新的 NotificationService 实例。
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListNotifications(ctx context.Context, tenantID, userID string) ([]model.Notification, error) {
	return s.notificationRepo.FindByUser(ctx, tenantID, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.notificationRepo.MarkRead(ctx, id)
}
