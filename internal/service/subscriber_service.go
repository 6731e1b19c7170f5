package service

import (
	"context"
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

var (
	ErrSubscriberNotFound = errors.New("订阅者不存在")
	ErrEmailSubscribed    = errors.New("该邮箱已订阅")
)

type SubscriberService struct {
	store storage.Storage
}

func NewSubscriberService(store storage.Storage) *SubscriberService {
	return &SubscriberService{store: store}
}

// List 获取全部订阅者
func (s *SubscriberService) List(ctx context.Context) ([]model.Subscriber, error) {
	return s.store.ListSubscribers(ctx)
}

// Subscribe 新增订阅者，重复邮箱返回冲突错误
func (s *SubscriberService) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*model.Subscriber, error) {
	_, err := s.store.GetSubscriberByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailSubscribed
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	subscriber := &model.Subscriber{
		Email:            req.Email,
		NotificationType: req.NotificationType,
	}
	if err := s.store.CreateSubscriber(ctx, subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

// Unsubscribe 删除订阅者
func (s *SubscriberService) Unsubscribe(ctx context.Context, id int64) error {
	if err := s.store.DeleteSubscriber(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSubscriberNotFound
		}
		return err
	}
	return nil
}
