package memory

import (
	"context"
	"sort"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListCommentsByVideo(_ context.Context, videoID int64) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]model.Comment, 0)
	for _, c := range s.comments {
		if c.VideoID == videoID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (s *Store) GetComment(_ context.Context, id int64) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c := *comment
	return &c, nil
}

func (s *Store) CreateComment(_ context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commentSeq++
	comment.ID = s.commentSeq
	comment.Approved = false
	comment.CreatedAt = time.Now()

	c := *comment
	s.comments[comment.ID] = &c
	return nil
}

func (s *Store) DeleteComment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *Store) ApproveComment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return storage.ErrNotFound
	}
	comment.Approved = true
	return nil
}
