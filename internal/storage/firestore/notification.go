package firestore

import (
	"context"
	"time"

	"fanhub-go/internal/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func (s *Store) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	iter := s.client.Collection(colNotifications).Documents(ctx)
	defer iter.Stop()

	notifications := make([]model.Notification, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return notifications, nil
		}
		if err != nil {
			return nil, err
		}

		var notification model.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
}

func (s *Store) GetNotification(ctx context.Context, id int64) (*model.Notification, error) {
	doc, err := s.client.Collection(colNotifications).Doc(docID(id)).Get(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	var notification model.Notification
	if err := doc.DataTo(&notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (s *Store) CreateNotification(ctx context.Context, notification *model.Notification) error {
	id, err := s.nextID(ctx, colNotifications)
	if err != nil {
		return err
	}

	notification.ID = id
	notification.Read = false
	notification.CreatedAt = time.Now()

	_, err = s.client.Collection(colNotifications).Doc(docID(id)).Set(ctx, notification)
	return err
}

func (s *Store) MarkNotificationRead(ctx context.Context, id int64) error {
	ref := s.client.Collection(colNotifications).Doc(docID(id))
	if _, err := ref.Get(ctx); err != nil {
		return wrapNotFound(err)
	}

	// 重复标记幂等
	_, err := ref.Update(ctx, []firestore.Update{{Path: "read", Value: true}})
	return wrapNotFound(err)
}

func (s *Store) DeleteNotification(ctx context.Context, id int64) error {
	ref := s.client.Collection(colNotifications).Doc(docID(id))
	if _, err := ref.Get(ctx); err != nil {
		return wrapNotFound(err)
	}
	_, err := ref.Delete(ctx)
	return err
}
