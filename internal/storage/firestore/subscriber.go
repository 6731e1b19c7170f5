package firestore

import (
	"context"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"

	"google.golang.org/api/iterator"
)

func (s *Store) ListSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	iter := s.client.Collection(colSubscribers).Documents(ctx)
	defer iter.Stop()

	subscribers := make([]model.Subscriber, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return subscribers, nil
		}
		if err != nil {
			return nil, err
		}

		var subscriber model.Subscriber
		if err := doc.DataTo(&subscriber); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, subscriber)
	}
}

func (s *Store) GetSubscriber(ctx context.Context, id int64) (*model.Subscriber, error) {
	doc, err := s.client.Collection(colSubscribers).Doc(docID(id)).Get(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	var subscriber model.Subscriber
	if err := doc.DataTo(&subscriber); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (s *Store) GetSubscriberByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	iter := s.client.Collection(colSubscribers).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var subscriber model.Subscriber
	if err := doc.DataTo(&subscriber); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (s *Store) CreateSubscriber(ctx context.Context, subscriber *model.Subscriber) error {
	id, err := s.nextID(ctx, colSubscribers)
	if err != nil {
		return err
	}

	subscriber.ID = id
	if subscriber.NotificationType == "" {
		subscriber.NotificationType = "all"
	}
	subscriber.CreatedAt = time.Now()

	_, err = s.client.Collection(colSubscribers).Doc(docID(id)).Set(ctx, subscriber)
	return err
}

func (s *Store) DeleteSubscriber(ctx context.Context, id int64) error {
	ref := s.client.Collection(colSubscribers).Doc(docID(id))
	if _, err := ref.Get(ctx); err != nil {
		return wrapNotFound(err)
	}
	_, err := ref.Delete(ctx)
	return err
}
