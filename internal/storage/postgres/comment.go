package postgres

import (
	"context"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListCommentsByVideo(ctx context.Context, videoID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).Where("video_id = ?", videoID).
		Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &comment, nil
}

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.Approved = false
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) ApproveComment(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).
		Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
