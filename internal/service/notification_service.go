package service

import (
	"context"
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/config"
	infraKafka "fanhub-go/internal/infra/kafka"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrNotificationNotFound = errors.New("通知不存在")
)

type NotificationService struct {
	store storage.Storage
}

func NewNotificationService(store storage.Storage) *NotificationService {
	return &NotificationService{store: store}
}

// List 获取全部通知
func (s *NotificationService) List(ctx context.Context) ([]model.Notification, error) {
	return s.store.ListNotifications(ctx)
}

// Get 获取单条通知
func (s *NotificationService) Get(ctx context.Context, id int64) (*model.Notification, error) {
	notification, err := s.store.GetNotification(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return notification, nil
}

// Create 创建通知并向 Kafka 发布创建事件，由 worker 负责向订阅者分发
func (s *NotificationService) Create(ctx context.Context, req *dto.NotificationCreateRequest) (*model.Notification, error) {
	notification := &model.Notification{
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	}

	if err := s.store.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}

	if infraKafka.Enabled() {
		topic := config.GetKafka().Topics["notification"]
		event := &infraKafka.NotificationEvent{
			NotificationID: notification.ID,
			Title:          notification.Title,
			Message:        notification.Message,
			Type:           notification.Type,
			CreatedAt:      notification.CreatedAt.Unix(),
		}
		// 事件发送失败不影响通知本身的创建
		if err := infraKafka.SendNotificationEvent(ctx, topic, event); err != nil {
			logger.Warn("Send notification event failed",
				zap.Int64("notification_id", notification.ID), zap.Error(err))
		}
	}

	return notification, nil
}

// MarkRead 标记通知已读，重复标记幂等成功
func (s *NotificationService) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	if err := s.store.MarkNotificationRead(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return s.store.GetNotification(ctx, id)
}

// Delete 删除通知
func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteNotification(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}
