package firestore

import (
	"context"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *Store) GetSiteSettings(ctx context.Context) (*model.SiteSetting, error) {
	doc, err := s.client.Collection(colSiteSettings).Doc(settingsDocID).Get(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	var settings model.SiteSetting
	if err := doc.DataTo(&settings); err != nil {
		return nil, err
	}
	settings.ID = 1
	return &settings, nil
}

// UpdateSiteSettings 在事务内读取-合并-回写，保证并发更新不丢字段
func (s *Store) UpdateSiteSettings(ctx context.Context, patch *storage.SiteSettingsUpdate) (*model.SiteSetting, error) {
	ref := s.client.Collection(colSiteSettings).Doc(settingsDocID)

	var merged model.SiteSetting
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		switch {
		case err == nil:
			if err := doc.DataTo(&merged); err != nil {
				return err
			}
		case status.Code(err) == codes.NotFound:
			merged = model.SiteSetting{}
		default:
			return err
		}

		merged.ID = 1
		if patch.YoutubeChannelID != nil {
			merged.YoutubeChannelID = patch.YoutubeChannelID
		}
		if patch.FeaturedVideoID != nil {
			merged.FeaturedVideoID = patch.FeaturedVideoID
		}
		if patch.NewsTickerItems != nil {
			merged.NewsTickerItems = *patch.NewsTickerItems
		}
		if patch.IsLiveStreaming != nil {
			merged.IsLiveStreaming = *patch.IsLiveStreaming
		}
		if patch.LiveStreamID != nil {
			if *patch.LiveStreamID == "" {
				merged.LiveStreamID = nil
			} else {
				merged.LiveStreamID = patch.LiveStreamID
			}
		}
		merged.LastUpdated = time.Now()

		return tx.Set(ref, &merged)
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
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
