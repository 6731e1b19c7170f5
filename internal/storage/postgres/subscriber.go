package postgres

import (
	"context"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	var subscribers []model.Subscriber
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (s *Store) GetSubscriber(ctx context.Context, id int64) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	if err := s.db.WithContext(ctx).First(&subscriber, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &subscriber, nil
}

func (s *Store) GetSubscriberByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&subscriber).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &subscriber, nil
}

func (s *Store) CreateSubscriber(ctx context.Context, subscriber *model.Subscriber) error {
	if subscriber.NotificationType == "" {
		subscriber.NotificationType = "all"
	}
	// 邮箱唯一性由数据库唯一索引兜底，请求层会先行查重
	return s.db.WithContext(ctx).Create(subscriber).Error
}

func (s *Store) DeleteSubscriber(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Subscriber{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
