package storage

import (
	"context"
	"errors"
	"time"

	"fanhub-go/internal/model"
)

// ErrNotFound 目标记录不存在。所有适配器统一用它表示“未找到”，
// 调用方通过 errors.Is 区分“未找到”与后端故障。
var ErrNotFound = errors.New("record not found")

// Storage 存储端口：所有持久化后端（PostgreSQL/Firestore/内存）实现同一份契约，
// 上层只依赖本接口，不感知具体后端。
type Storage interface {
	// Name 返回当前后端名称（postgres/firestore/memory），仅用于日志与诊断
	Name() string

	// Close 释放后端连接
	Close() error

	// --- 用户 ---
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// CreateUser 创建用户。Password 字段必须已经是 bcrypt 哈希（由服务层完成）
	CreateUser(ctx context.Context, user *model.User) error

	// --- 视频 ---
	ListVideos(ctx context.Context) ([]model.Video, error)
	ListVideosByCategory(ctx context.Context, category string) ([]model.Video, error)
	GetVideo(ctx context.Context, id int64) (*model.Video, error)
	// CreateVideo 创建视频；若 IsFeatured 为 true，须先清除其他视频的推荐标识
	CreateVideo(ctx context.Context, video *model.Video) error
	UpdateVideo(ctx context.Context, id int64, patch *VideoUpdate) (*model.Video, error)
	DeleteVideo(ctx context.Context, id int64) error
	// GetFeaturedVideo 获取当前推荐视频，不存在时返回 ErrNotFound
	GetFeaturedVideo(ctx context.Context) (*model.Video, error)
	// SetFeaturedVideo 设置唯一推荐视频：清除其他所有视频的推荐标识后设置目标视频；
	// 目标不存在时返回 ErrNotFound 且不产生任何副作用
	SetFeaturedVideo(ctx context.Context, id int64) error

	// --- 下载资源 ---
	ListDownloads(ctx context.Context) ([]model.Download, error)
	ListDownloadsByType(ctx context.Context, downloadType string) ([]model.Download, error)
	GetDownload(ctx context.Context, id int64) (*model.Download, error)
	// CreateDownload 创建资源，DownloadCount/Rating/RatingCount 初始化为 0
	CreateDownload(ctx context.Context, download *model.Download) error
	UpdateDownload(ctx context.Context, id int64, patch *DownloadUpdate) (*model.Download, error)
	DeleteDownload(ctx context.Context, id int64) error
	// IncrementDownloadCount 下载次数 +1，返回新值
	IncrementDownloadCount(ctx context.Context, id int64) (int, error)

	// --- 通知 ---
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	GetNotification(ctx context.Context, id int64) (*model.Notification, error)
	// CreateNotification 创建通知，Read 初始为 false
	CreateNotification(ctx context.Context, notification *model.Notification) error
	// MarkNotificationRead 标记已读。已读→未读不提供；重复标记为幂等成功
	MarkNotificationRead(ctx context.Context, id int64) error
	DeleteNotification(ctx context.Context, id int64) error

	// --- 订阅者 ---
	ListSubscribers(ctx context.Context) ([]model.Subscriber, error)
	GetSubscriber(ctx context.Context, id int64) (*model.Subscriber, error)
	GetSubscriberByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	CreateSubscriber(ctx context.Context, subscriber *model.Subscriber) error
	DeleteSubscriber(ctx context.Context, id int64) error

	// --- 站点设置（单例） ---
	// GetSiteSettings 首次写入前返回 ErrNotFound
	GetSiteSettings(ctx context.Context) (*model.SiteSetting, error)
	// UpdateSiteSettings 部分合并更新，记录不存在时创建（upsert 语义）
	UpdateSiteSettings(ctx context.Context, patch *SiteSettingsUpdate) (*model.SiteSetting, error)
	// UpdateLiveStreamStatus isLive 为 false 时清空 streamID
	UpdateLiveStreamStatus(ctx context.Context, isLive bool, streamID string) (*model.SiteSetting, error)

	// --- 评论 ---
	ListCommentsByVideo(ctx context.Context, videoID int64) ([]model.Comment, error)
	GetComment(ctx context.Context, id int64) (*model.Comment, error)
	// CreateComment 创建评论，Approved 初始为 false
	CreateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id int64) error
	ApproveComment(ctx context.Context, id int64) error
}

// VideoUpdate 视频部分更新字段，nil 表示不修改
type VideoUpdate struct {
	YoutubeID    *string
	Title        *string
	Description  *string
	ThumbnailURL *string
	Duration     *string
	ViewCount    *int
	UploadDate   *time.Time
	Category     *string
	IsFeatured   *bool
}

// DownloadUpdate 下载资源部分更新字段，nil 表示不修改
type DownloadUpdate struct {
	Title        *string
	Description  *string
	Type         *string
	Version      *string
	DownloadURL  *string
	ThumbnailURL *string
	Rating       *int
	RatingCount  *int
	ReleaseDate  *time.Time
}

// SiteSettingsUpdate 站点设置部分更新字段，nil 表示不修改
type SiteSettingsUpdate struct {
	YoutubeChannelID *string
	FeaturedVideoID  *string
	NewsTickerItems  *[]string
	IsLiveStreaming  *bool
	LiveStreamID     *string
}
