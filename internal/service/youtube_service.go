package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/config"
	infraRedis "fanhub-go/internal/infra/redis"
	"fanhub-go/internal/storage"
	"fanhub-go/pkg/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	ErrYouTubeNotConfigured = errors.New("未配置YouTube API密钥或频道ID")
	ErrYouTubeVideoNotFound = errors.New("YouTube视频不存在")
)

const youtubeAPIBase = "https://www.googleapis.com/youtube/v3"

type YouTubeService struct {
	store  storage.Storage
	client *resty.Client
}

func NewYouTubeService(store storage.Storage) *YouTubeService {
	cfg := config.GetYouTube()
	client := resty.New().
		SetBaseURL(youtubeAPIBase).
		SetTimeout(cfg.TimeoutDuration())

	return &YouTubeService{store: store, client: client}
}

// resolveChannelID 站点设置里的频道ID优先于配置文件
func (s *YouTubeService) resolveChannelID(ctx context.Context) (channelID, apiKey string, err error) {
	cfg := config.GetYouTube()

	channelID = cfg.ChannelID
	if settings, err := s.store.GetSiteSettings(ctx); err == nil && settings.YoutubeChannelID != nil && *settings.YoutubeChannelID != "" {
		channelID = *settings.YoutubeChannelID
	}
	if cfg.APIKey == "" || channelID == "" {
		return "", "", ErrYouTubeNotConfigured
	}
	return channelID, cfg.APIKey, nil
}

// ChannelInfo 获取频道概览（标题、订阅数、视频数）。结果缓存在 Redis 中
func (s *YouTubeService) ChannelInfo(ctx context.Context) (*dto.YouTubeChannelInfo, error) {
	channelID, apiKey, err := s.resolveChannelID(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := "youtube:channel:" + channelID
	var cached dto.YouTubeChannelInfo
	if s.cacheGet(ctx, cacheKey, &cached) {
		cached.Cached = true
		return &cached, nil
	}

	var channelResp struct {
		Items []struct {
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				Thumbnails  struct {
					High struct {
						URL string `json:"url"`
					} `json:"high"`
				} `json:"thumbnails"`
			} `json:"snippet"`
			Statistics struct {
				SubscriberCount string `json:"subscriberCount"`
				VideoCount      string `json:"videoCount"`
				ViewCount       string `json:"viewCount"`
			} `json:"statistics"`
		} `json:"items"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,statistics",
			"id":   channelID,
			"key":  apiKey,
		}).
		SetResult(&channelResp).
		Get("/channels")
	if err != nil {
		return nil, fmt.Errorf("查询频道信息失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("YouTube API 返回错误: %s", resp.Status())
	}
	if len(channelResp.Items) == 0 {
		return nil, fmt.Errorf("频道不存在: %s", channelID)
	}

	item := channelResp.Items[0]
	info := &dto.YouTubeChannelInfo{
		ChannelID:       channelID,
		Title:           item.Snippet.Title,
		Description:     item.Snippet.Description,
		ThumbnailURL:    item.Snippet.Thumbnails.High.URL,
		SubscriberCount: item.Statistics.SubscriberCount,
		VideoCount:      item.Statistics.VideoCount,
		ViewCount:       item.Statistics.ViewCount,
	}
	s.cacheSet(ctx, cacheKey, info)
	return info, nil
}

// ChannelVideos 获取频道最新视频列表。结果缓存在 Redis 中，
// 避免每次页面加载都消耗 YouTube API 配额
func (s *YouTubeService) ChannelVideos(ctx context.Context) (*dto.YouTubeVideoList, error) {
	channelID, apiKey, err := s.resolveChannelID(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := "youtube:videos:" + channelID
	var cached dto.YouTubeVideoList
	if s.cacheGet(ctx, cacheKey, &cached) {
		cached.Cached = true
		return &cached, nil
	}

	videos, err := s.fetchChannelVideos(ctx, apiKey, channelID)
	if err != nil {
		return nil, err
	}

	data := &dto.YouTubeVideoList{ChannelID: channelID, Videos: videos}
	s.cacheSet(ctx, cacheKey, data)
	return data, nil
}

// Video 获取单条视频详情（时长、播放量、点赞数）
func (s *YouTubeService) Video(ctx context.Context, videoID string) (*dto.YouTubeVideoDetail, error) {
	apiKey := config.GetYouTube().APIKey
	if apiKey == "" {
		return nil, ErrYouTubeNotConfigured
	}

	cacheKey := "youtube:video:" + videoID
	var cached dto.YouTubeVideoDetail
	if s.cacheGet(ctx, cacheKey, &cached) {
		cached.Cached = true
		return &cached, nil
	}

	var videoResp struct {
		Items []struct {
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				PublishedAt string `json:"publishedAt"`
				Thumbnails  struct {
					High struct {
						URL string `json:"url"`
					} `json:"high"`
				} `json:"thumbnails"`
			} `json:"snippet"`
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
			Statistics struct {
				ViewCount string `json:"viewCount"`
				LikeCount string `json:"likeCount"`
			} `json:"statistics"`
		} `json:"items"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,contentDetails,statistics",
			"id":   videoID,
			"key":  apiKey,
		}).
		SetResult(&videoResp).
		Get("/videos")
	if err != nil {
		return nil, fmt.Errorf("查询视频详情失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("YouTube API 返回错误: %s", resp.Status())
	}
	if len(videoResp.Items) == 0 {
		return nil, ErrYouTubeVideoNotFound
	}

	item := videoResp.Items[0]
	detail := &dto.YouTubeVideoDetail{
		VideoID:      videoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ThumbnailURL: item.Snippet.Thumbnails.High.URL,
		PublishedAt:  item.Snippet.PublishedAt,
		Duration:     item.ContentDetails.Duration,
		ViewCount:    item.Statistics.ViewCount,
		LikeCount:    item.Statistics.LikeCount,
	}
	s.cacheSet(ctx, cacheKey, detail)
	return detail, nil
}

// fetchChannelVideos 两段式调用：先取频道的上传播放列表ID，再取播放列表条目
func (s *YouTubeService) fetchChannelVideos(ctx context.Context, apiKey, channelID string) ([]dto.YouTubeVideo, error) {
	var channelResp struct {
		Items []struct {
			ContentDetails struct {
				RelatedPlaylists struct {
					Uploads string `json:"uploads"`
				} `json:"relatedPlaylists"`
			} `json:"contentDetails"`
		} `json:"items"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "contentDetails",
			"id":   channelID,
			"key":  apiKey,
		}).
		SetResult(&channelResp).
		Get("/channels")
	if err != nil {
		return nil, fmt.Errorf("查询频道信息失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("YouTube API 返回错误: %s", resp.Status())
	}
	if len(channelResp.Items) == 0 {
		return nil, fmt.Errorf("频道不存在: %s", channelID)
	}

	playlistID := channelResp.Items[0].ContentDetails.RelatedPlaylists.Uploads

	var playlistResp struct {
		Items []struct {
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				PublishedAt string `json:"publishedAt"`
				ResourceID  struct {
					VideoID string `json:"videoId"`
				} `json:"resourceId"`
				Thumbnails struct {
					High struct {
						URL string `json:"url"`
					} `json:"high"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
	}

	resp, err = s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"playlistId": playlistID,
			"maxResults": "25",
			"key":        apiKey,
		}).
		SetResult(&playlistResp).
		Get("/playlistItems")
	if err != nil {
		return nil, fmt.Errorf("查询播放列表失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("YouTube API 返回错误: %s", resp.Status())
	}

	videos := make([]dto.YouTubeVideo, 0, len(playlistResp.Items))
	for _, item := range playlistResp.Items {
		videos = append(videos, dto.YouTubeVideo{
			VideoID:      item.Snippet.ResourceID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

// cacheGet 从 Redis 取缓存并反序列化到 v，命中返回 true
func (s *YouTubeService) cacheGet(ctx context.Context, key string, v interface{}) bool {
	client := infraRedis.Get()
	if client == nil {
		return false
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// cacheSet 缓存写失败只记日志，不影响请求
func (s *YouTubeService) cacheSet(ctx context.Context, key string, v interface{}) {
	client := infraRedis.Get()
	if client == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	ttl := config.GetYouTube().CacheTTLDuration()
	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		logger.Warn("Cache youtube response failed", zap.String("key", key), zap.Error(err))
	}
}
