package service

import (
	"context"
	"errors"
	"time"

	"fanhub-go/internal/api/dto"
	infraES "fanhub-go/internal/infra/elasticsearch"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrVideoNotFound = errors.New("视频不存在")
)

type VideoService struct {
	store storage.Storage
}

func NewVideoService(store storage.Storage) *VideoService {
	return &VideoService{store: store}
}

// List 获取视频列表，category 为空时返回全部
func (s *VideoService) List(ctx context.Context, category string) ([]model.Video, error) {
	if category == "" {
		return s.store.ListVideos(ctx)
	}
	return s.store.ListVideosByCategory(ctx, category)
}

// Get 获取视频详情
func (s *VideoService) Get(ctx context.Context, id int64) (*model.Video, error) {
	video, err := s.store.GetVideo(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

// Create 创建视频并同步到搜索索引
func (s *VideoService) Create(ctx context.Context, req *dto.VideoCreateRequest) (*model.Video, error) {
	category := req.Category
	if category == "" {
		category = "general"
	}

	video := &model.Video{
		YoutubeID:    req.YoutubeID,
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		ViewCount:    req.ViewCount,
		UploadDate:   req.UploadDate,
		Category:     category,
		IsFeatured:   req.IsFeatured,
	}

	if err := s.store.CreateVideo(ctx, video); err != nil {
		return nil, err
	}

	s.syncToIndex(video)
	return video, nil
}

// Update 部分更新视频并同步到搜索索引
func (s *VideoService) Update(ctx context.Context, id int64, req *dto.VideoUpdateRequest) (*model.Video, error) {
	patch := &storage.VideoUpdate{
		YoutubeID:    req.YoutubeID,
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		ViewCount:    req.ViewCount,
		UploadDate:   req.UploadDate,
		Category:     req.Category,
		IsFeatured:   req.IsFeatured,
	}

	video, err := s.store.UpdateVideo(ctx, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	s.syncToIndex(video)
	return video, nil
}

// Delete 删除视频并移除搜索索引
func (s *VideoService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteVideo(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if infraES.Enabled() {
		delCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := infraES.DeleteVideo(delCtx, id); err != nil {
			logger.Warn("Delete video from ES failed", zap.Int64("video_id", id), zap.Error(err))
		}
	}
	return nil
}

// Featured 获取当前推荐视频
func (s *VideoService) Featured(ctx context.Context) (*model.Video, error) {
	video, err := s.store.GetFeaturedVideo(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

// Feature 设置唯一推荐视频
func (s *VideoService) Feature(ctx context.Context, id int64) (*model.Video, error) {
	if err := s.store.SetFeaturedVideo(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.store.GetVideo(ctx, id)
}

// syncToIndex 同步视频到 ES，索引失败只记日志不影响主流程
func (s *VideoService) syncToIndex(video *model.Video) {
	if !infraES.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := infraES.SyncVideo(ctx, video); err != nil {
		logger.Warn("Sync video to ES failed", zap.Int64("video_id", video.ID), zap.Error(err))
	}
}

// RebuildIndex 全量重建视频搜索索引（启动时调用）
func (s *VideoService) RebuildIndex(ctx context.Context) error {
	if !infraES.Enabled() {
		return nil
	}

	videos, err := s.store.ListVideos(ctx)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return nil
	}

	syncCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	_, _, err = infraES.BulkSyncVideos(syncCtx, videos)
	return err
}
