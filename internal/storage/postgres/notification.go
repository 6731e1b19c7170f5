package postgres

import (
	"context"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *Store) GetNotification(ctx context.Context, id int64) (*model.Notification, error) {
	var notification model.Notification
	if err := s.db.WithContext(ctx).First(&notification, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &notification, nil
}

func (s *Store) CreateNotification(ctx context.Context, notification *model.Notification) error {
	notification.Read = false
	return s.db.WithContext(ctx).Create(notification).Error
}

func (s *Store) MarkNotificationRead(ctx context.Context, id int64) error {
	// 不筛选 read 状态，重复标记幂等成功
	result := s.db.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteNotification(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
