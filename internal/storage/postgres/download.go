package postgres

import (
	"context"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListDownloads(ctx context.Context) ([]model.Download, error) {
	var downloads []model.Download
	if err := s.db.WithContext(ctx).Order("release_date DESC").Find(&downloads).Error; err != nil {
		return nil, err
	}
	return downloads, nil
}

func (s *Store) ListDownloadsByType(ctx context.Context, downloadType string) ([]model.Download, error) {
	var downloads []model.Download
	err := s.db.WithContext(ctx).Where("type = ?", downloadType).
		Order("release_date DESC").Find(&downloads).Error
	if err != nil {
		return nil, err
	}
	return downloads, nil
}

func (s *Store) GetDownload(ctx context.Context, id int64) (*model.Download, error) {
	var download model.Download
	if err := s.db.WithContext(ctx).First(&download, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &download, nil
}

func (s *Store) CreateDownload(ctx context.Context, download *model.Download) error {
	download.DownloadCount = 0
	download.Rating = 0
	download.RatingCount = 0
	if download.ReleaseDate.IsZero() {
		download.ReleaseDate = time.Now()
	}
	return s.db.WithContext(ctx).Create(download).Error
}

func (s *Store) UpdateDownload(ctx context.Context, id int64, patch *storage.DownloadUpdate) (*model.Download, error) {
	updates := downloadUpdates(patch)
	if len(updates) > 0 {
		result := s.db.WithContext(ctx).Model(&model.Download{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, storage.ErrNotFound
		}
	}
	return s.GetDownload(ctx, id)
}

func (s *Store) DeleteDownload(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Download{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// IncrementDownloadCount 单条原子 UPDATE ... RETURNING，
// 自增与读回在同一次往返内完成，并发调用不丢更新
func (s *Store) IncrementDownloadCount(ctx context.Context, id int64) (int, error) {
	var count int
	result := s.db.WithContext(ctx).Raw(
		"UPDATE downloads SET download_count = download_count + 1 WHERE id = ? RETURNING download_count", id,
	).Scan(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, storage.ErrNotFound
	}
	return count, nil
}

func downloadUpdates(patch *storage.DownloadUpdate) map[string]interface{} {
	updates := make(map[string]interface{})
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Version != nil {
		updates["version"] = *patch.Version
	}
	if patch.DownloadURL != nil {
		updates["download_url"] = *patch.DownloadURL
	}
	if patch.ThumbnailURL != nil {
		updates["thumbnail_url"] = *patch.ThumbnailURL
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.RatingCount != nil {
		updates["rating_count"] = *patch.RatingCount
	}
	if patch.ReleaseDate != nil {
		updates["release_date"] = *patch.ReleaseDate
	}
	return updates
}
