package memory

import (
	"context"
	"sort"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListNotifications(_ context.Context) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]model.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		notifications = append(notifications, *n)
	}
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID < notifications[j].ID })
	return notifications, nil
}

func (s *Store) GetNotification(_ context.Context, id int64) (*model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notification, ok := s.notifications[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	n := *notification
	return &n, nil
}

func (s *Store) CreateNotification(_ context.Context, notification *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	notification.ID = s.notificationSeq
	notification.Read = false
	notification.CreatedAt = time.Now()

	n := *notification
	s.notifications[notification.ID] = &n
	return nil
}

func (s *Store) MarkNotificationRead(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[id]
	if !ok {
		return storage.ErrNotFound
	}
	// 重复标记幂等
	notification.Read = true
	return nil
}

func (s *Store) DeleteNotification(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notifications[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.notifications, id)
	return nil
}
