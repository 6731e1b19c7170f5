package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListSubscribers(_ context.Context) ([]model.Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscribers := make([]model.Subscriber, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subscribers = append(subscribers, *sub)
	}
	sort.Slice(subscribers, func(i, j int) bool { return subscribers[i].ID < subscribers[j].ID })
	return subscribers, nil
}

func (s *Store) GetSubscriber(_ context.Context, id int64) (*model.Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscriber, ok := s.subscribers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	sub := *subscriber
	return &sub, nil
}

func (s *Store) GetSubscriberByEmail(_ context.Context, email string) (*model.Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, subscriber := range s.subscribers {
		if subscriber.Email == email {
			sub := *subscriber
			return &sub, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) CreateSubscriber(_ context.Context, subscriber *model.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subscribers {
		if existing.Email == subscriber.Email {
			return fmt.Errorf("email %q already subscribed", subscriber.Email)
		}
	}

	s.subscriberSeq++
	subscriber.ID = s.subscriberSeq
	subscriber.CreatedAt = time.Now()
	if subscriber.NotificationType == "" {
		subscriber.NotificationType = "all"
	}

	sub := *subscriber
	s.subscribers[subscriber.ID] = &sub
	return nil
}

func (s *Store) DeleteSubscriber(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscribers[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.subscribers, id)
	return nil
}
