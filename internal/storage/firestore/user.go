package firestore

import (
	"context"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"

	"google.golang.org/api/iterator"
)

func (s *Store) GetUser(ctx context.Context, id int64) (*model.User, error) {
	doc, err := s.client.Collection(colUsers).Doc(docID(id)).Get(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	iter := s.client.Collection(colUsers).
		Where("username", "==", username).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	id, err := s.nextID(ctx, colUsers)
	if err != nil {
		return err
	}

	user.ID = id
	user.CreatedAt = time.Now()

	_, err = s.client.Collection(colUsers).Doc(docID(id)).Set(ctx, user)
	return err
}
