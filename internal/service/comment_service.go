package service

import (
	"context"
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

var (
	ErrCommentNotFound = errors.New("评论不存在")
)

type CommentService struct {
	store storage.Storage
}

func NewCommentService(store storage.Storage) *CommentService {
	return &CommentService{store: store}
}

// ListByVideo 获取视频评论。includeUnapproved 为 false 时只返回审核通过的评论
func (s *CommentService) ListByVideo(ctx context.Context, videoID int64, includeUnapproved bool) ([]model.Comment, error) {
	if _, err := s.store.GetVideo(ctx, videoID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, err := s.store.ListCommentsByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if includeUnapproved {
		return comments, nil
	}

	approved := make([]model.Comment, 0, len(comments))
	for i := range comments {
		if comments[i].Approved {
			approved = append(approved, comments[i])
		}
	}
	return approved, nil
}

// Create 创建评论，初始为待审核状态
func (s *CommentService) Create(ctx context.Context, videoID int64, req *dto.CommentCreateRequest) (*model.Comment, error) {
	if _, err := s.store.GetVideo(ctx, videoID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		VideoID: videoID,
		UserID:  req.UserID,
		Author:  req.Author,
		Content: req.Content,
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Approve 审核通过评论
func (s *CommentService) Approve(ctx context.Context, id int64) (*model.Comment, error) {
	if err := s.store.ApproveComment(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return s.store.GetComment(ctx, id)
}

// Delete 删除评论
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
