package postgres

import (
	"context"
	"errors"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"

	"gorm.io/gorm"
)

func (s *Store) GetSiteSettings(ctx context.Context) (*model.SiteSetting, error) {
	var settings model.SiteSetting
	if err := s.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &settings, nil
}

// UpdateSiteSettings 部分合并更新；表为空时创建首条记录（upsert 语义），
// 保证全系统始终只有一条设置记录
func (s *Store) UpdateSiteSettings(ctx context.Context, patch *storage.SiteSettingsUpdate) (*model.SiteSetting, error) {
	var settings model.SiteSetting

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&settings).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			applySettingsPatch(&settings, patch)
			settings.LastUpdated = time.Now()
			return tx.Create(&settings).Error
		}

		applySettingsPatch(&settings, patch)
		settings.LastUpdated = time.Now()
		return tx.Save(&settings).Error
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Store) UpdateLiveStreamStatus(ctx context.Context, isLive bool, streamID string) (*model.SiteSetting, error) {
	patch := &storage.SiteSettingsUpdate{IsLiveStreaming: &isLive}
	if isLive {
		patch.LiveStreamID = &streamID
	} else {
		// 停播时清空直播ID
		empty := ""
		patch.LiveStreamID = &empty
	}
	return s.UpdateSiteSettings(ctx, patch)
}

func applySettingsPatch(settings *model.SiteSetting, patch *storage.SiteSettingsUpdate) {
	if patch.YoutubeChannelID != nil {
		settings.YoutubeChannelID = patch.YoutubeChannelID
	}
	if patch.FeaturedVideoID != nil {
		settings.FeaturedVideoID = patch.FeaturedVideoID
	}
	if patch.NewsTickerItems != nil {
		settings.NewsTickerItems = *patch.NewsTickerItems
	}
	if patch.IsLiveStreaming != nil {
		settings.IsLiveStreaming = *patch.IsLiveStreaming
	}
	if patch.LiveStreamID != nil {
		if *patch.LiveStreamID == "" {
			settings.LiveStreamID = nil
		} else {
			settings.LiveStreamID = patch.LiveStreamID
		}
	}
}
