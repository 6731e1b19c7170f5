package service

import (
	"context"
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

var (
	ErrSettingsNotFound     = errors.New("站点设置不存在")
	ErrLiveStreamIDRequired = errors.New("开播时必须提供直播视频ID")
)

type SettingsService struct {
	store storage.Storage
}

func NewSettingsService(store storage.Storage) *SettingsService {
	return &SettingsService{store: store}
}

// Get 获取站点设置单例
func (s *SettingsService) Get(ctx context.Context) (*model.SiteSetting, error) {
	settings, err := s.store.GetSiteSettings(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return settings, nil
}

// Update 部分合并更新站点设置（upsert 语义）
func (s *SettingsService) Update(ctx context.Context, req *dto.SettingsUpdateRequest) (*model.SiteSetting, error) {
	patch := &storage.SiteSettingsUpdate{
		YoutubeChannelID: req.YoutubeChannelID,
		FeaturedVideoID:  req.FeaturedVideoID,
		NewsTickerItems:  req.NewsTickerItems,
		IsLiveStreaming:  req.IsLiveStreaming,
		LiveStreamID:     req.LiveStreamID,
	}
	return s.store.UpdateSiteSettings(ctx, patch)
}

// LiveStream 获取当前直播状态
func (s *SettingsService) LiveStream(ctx context.Context) (*model.SiteSetting, error) {
	return s.Get(ctx)
}

// UpdateLiveStream 更新直播状态。开播要求提供直播ID，停播时清空直播ID
func (s *SettingsService) UpdateLiveStream(ctx context.Context, req *dto.LiveStreamRequest) (*model.SiteSetting, error) {
	isLive := *req.IsLiveStreaming
	if isLive && req.LiveStreamID == "" {
		return nil, ErrLiveStreamIDRequired
	}
	return s.store.UpdateLiveStreamStatus(ctx, isLive, req.LiveStreamID)
}
