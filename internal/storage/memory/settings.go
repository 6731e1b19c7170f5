package memory

import (
	"context"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) GetSiteSettings(_ context.Context) (*model.SiteSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return nil, storage.ErrNotFound
	}
	settings := *s.settings
	return &settings, nil
}

func (s *Store) UpdateSiteSettings(_ context.Context, patch *storage.SiteSettingsUpdate) (*model.SiteSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		s.settings = &model.SiteSetting{ID: 1}
	}

	if patch.YoutubeChannelID != nil {
		s.settings.YoutubeChannelID = patch.YoutubeChannelID
	}
	if patch.FeaturedVideoID != nil {
		s.settings.FeaturedVideoID = patch.FeaturedVideoID
	}
	if patch.NewsTickerItems != nil {
		s.settings.NewsTickerItems = *patch.NewsTickerItems
	}
	if patch.IsLiveStreaming != nil {
		s.settings.IsLiveStreaming = *patch.IsLiveStreaming
	}
	if patch.LiveStreamID != nil {
		s.settings.LiveStreamID = patch.LiveStreamID
	}
	s.settings.LastUpdated = time.Now()

	settings := *s.settings
	return &settings, nil
}

func (s *Store) UpdateLiveStreamStatus(_ context.Context, isLive bool, streamID string) (*model.SiteSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		s.settings = &model.SiteSetting{ID: 1}
	}

	s.settings.IsLiveStreaming = isLive
	if isLive {
		s.settings.LiveStreamID = &streamID
	} else {
		// 停播时清空直播ID
		s.settings.LiveStreamID = nil
	}
	s.settings.LastUpdated = time.Now()

	settings := *s.settings
	return &settings, nil
}
