package postgres

import (
	"context"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"

	"gorm.io/gorm"
)

func (s *Store) ListVideos(ctx context.Context) ([]model.Video, error) {
	var videos []model.Video
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *Store) ListVideosByCategory(ctx context.Context, category string) ([]model.Video, error) {
	var videos []model.Video
	err := s.db.WithContext(ctx).Where("category = ?", category).
		Order("created_at DESC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *Store) GetVideo(ctx context.Context, id int64) (*model.Video, error) {
	var video model.Video
	if err := s.db.WithContext(ctx).First(&video, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &video, nil
}

func (s *Store) CreateVideo(ctx context.Context, video *model.Video) error {
	if video.Category == "" {
		video.Category = "general"
	}

	if !video.IsFeatured {
		return s.db.WithContext(ctx).Create(video).Error
	}

	// 带推荐标识创建时在同一事务内先清除其他视频的推荐标识
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Video{}).Where("is_featured = ?", true).
			Update("is_featured", false).Error; err != nil {
			return err
		}
		return tx.Create(video).Error
	})
}

func (s *Store) UpdateVideo(ctx context.Context, id int64, patch *storage.VideoUpdate) (*model.Video, error) {
	updates := videoUpdates(patch)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if patch.IsFeatured != nil && *patch.IsFeatured {
			if err := tx.Model(&model.Video{}).Where("is_featured = ? AND id != ?", true, id).
				Update("is_featured", false).Error; err != nil {
				return err
			}
		}

		if len(updates) == 0 {
			return nil
		}

		result := tx.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, wrapNotFound(err)
	}

	return s.GetVideo(ctx, id)
}

func (s *Store) DeleteVideo(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Video{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) GetFeaturedVideo(ctx context.Context) (*model.Video, error) {
	var video model.Video
	err := s.db.WithContext(ctx).Where("is_featured = ?", true).First(&video).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &video, nil
}

// SetFeaturedVideo 同一事务内执行“全部清除 + 设置目标”两条语句，
// 保证任意时刻最多一个视频带推荐标识
func (s *Store) SetFeaturedVideo(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.First(&video, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Video{}).Where("is_featured = ?", true).
			Update("is_featured", false).Error; err != nil {
			return err
		}

		return tx.Model(&model.Video{}).Where("id = ?", id).
			Update("is_featured", true).Error
	})
	return wrapNotFound(err)
}

func videoUpdates(patch *storage.VideoUpdate) map[string]interface{} {
	updates := make(map[string]interface{})
	if patch.YoutubeID != nil {
		updates["youtube_id"] = *patch.YoutubeID
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ThumbnailURL != nil {
		updates["thumbnail_url"] = *patch.ThumbnailURL
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.ViewCount != nil {
		updates["view_count"] = *patch.ViewCount
	}
	if patch.UploadDate != nil {
		updates["upload_date"] = *patch.UploadDate
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.IsFeatured != nil {
		updates["is_featured"] = *patch.IsFeatured
	}
	return updates
}
