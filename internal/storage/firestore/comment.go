package firestore

import (
	"context"
	"sort"
	"time"

	"fanhub-go/internal/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func (s *Store) ListCommentsByVideo(ctx context.Context, videoID int64) ([]model.Comment, error) {
	iter := s.client.Collection(colComments).Where("videoId", "==", videoID).Documents(ctx)
	defer iter.Stop()

	comments := make([]model.Comment, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var comment model.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	// Where+OrderBy 需要组合索引，这里在内存中排序
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (s *Store) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	doc, err := s.client.Collection(colComments).Doc(docID(id)).Get(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	var comment model.Comment
	if err := doc.DataTo(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	id, err := s.nextID(ctx, colComments)
	if err != nil {
		return err
	}

	comment.ID = id
	comment.Approved = false
	comment.CreatedAt = time.Now()

	_, err = s.client.Collection(colComments).Doc(docID(id)).Set(ctx, comment)
	return err
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	ref := s.client.Collection(colComments).Doc(docID(id))
	if _, err := ref.Get(ctx); err != nil {
		return wrapNotFound(err)
	}
	_, err := ref.Delete(ctx)
	return err
}

func (s *Store) ApproveComment(ctx context.Context, id int64) error {
	ref := s.client.Collection(colComments).Doc(docID(id))
	if _, err := ref.Get(ctx); err != nil {
		return wrapNotFound(err)
	}
	_, err := ref.Update(ctx, []firestore.Update{{Path: "approved", Value: true}})
	return wrapNotFound(err)
}
