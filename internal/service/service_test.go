package service

import (
	"context"
	"testing"
	"time"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/internal/storage/memory"
	"fanhub-go/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()
	return memory.New()
}

func seedAdmin(t *testing.T, store storage.Storage) *model.User {
	t.Helper()

	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	admin := &model.User{Username: "admin", Password: hash, IsAdmin: true}
	require.NoError(t, store.CreateUser(context.Background(), admin))
	return admin
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seedAdmin(t, store)
	svc := NewAuthService(store)

	data, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", data.Username)
	assert.True(t, data.IsAdmin)
	assert.Equal(t, "test-admin-token", data.Token)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	// 未知用户与密码错误返回同一个错误，不暴露用户是否存在
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVideoServiceCreateDefaultsCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewVideoService(newTestStore(t))

	video, err := svc.Create(ctx, &dto.VideoCreateRequest{YoutubeID: "abc", Title: "无分类视频"})
	require.NoError(t, err)
	assert.Equal(t, "general", video.Category)
}

func TestVideoServiceFeature(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewVideoService(store)

	_, err := svc.Featured(ctx)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	first, err := svc.Create(ctx, &dto.VideoCreateRequest{YoutubeID: "v1", Title: "第一个"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &dto.VideoCreateRequest{YoutubeID: "v2", Title: "第二个"})
	require.NoError(t, err)

	featured, err := svc.Feature(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, featured.IsFeatured)

	featured, err = svc.Feature(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, featured.ID)

	current, err := svc.Featured(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	_, err = svc.Feature(ctx, 9999)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestSearchServiceStorageFallback(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	videoSvc := NewVideoService(store)
	searchSvc := NewSearchService(store)

	desc := "附带速通技巧讲解"
	_, err := videoSvc.Create(ctx, &dto.VideoCreateRequest{YoutubeID: "v1", Title: "像素地牢攻略", Description: &desc})
	require.NoError(t, err)
	_, err = videoSvc.Create(ctx, &dto.VideoCreateRequest{YoutubeID: "v2", Title: "周末闲聊"})
	require.NoError(t, err)

	// 标题命中
	videos, err := searchSvc.SearchVideos(ctx, "地牢")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "像素地牢攻略", videos[0].Title)

	// 描述命中
	videos, err = searchSvc.SearchVideos(ctx, "速通")
	require.NoError(t, err)
	assert.Len(t, videos, 1)

	// 空查询返回全部
	videos, err = searchSvc.SearchVideos(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, videos, 2)

	videos, err = searchSvc.SearchVideos(ctx, "不存在的词")
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestDownloadServiceCreateAndIncrement(t *testing.T) {
	ctx := context.Background()
	svc := NewDownloadService(newTestStore(t))

	download, err := svc.Create(ctx, &dto.DownloadCreateRequest{
		Title:       "Pixel Dungeon",
		Type:        model.DownloadTypeGame,
		Version:     "1.2.0",
		DownloadURL: "/downloads/pixel-dungeon.zip",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, download.DownloadCount)
	assert.WithinDuration(t, time.Now(), download.ReleaseDate, time.Minute)

	data, err := svc.Increment(ctx, download.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, data.DownloadCount)

	_, err = svc.Increment(ctx, 9999)
	assert.ErrorIs(t, err, ErrDownloadNotFound)
}

func TestDownloadServiceUploadArtifactStorageOff(t *testing.T) {
	ctx := context.Background()
	svc := NewDownloadService(newTestStore(t))

	// MinIO 未初始化时制品上传直接拒绝
	_, err := svc.UploadArtifact(ctx, 1, nil, 0, "a.zip", "application/zip")
	assert.ErrorIs(t, err, ErrArtifactStorageOff)
}

func TestNotificationServiceCreateAndMarkRead(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(newTestStore(t))

	notification, err := svc.Create(ctx, &dto.NotificationCreateRequest{
		Title:   "新视频上线",
		Message: "速通教程已发布",
		Type:    model.NotificationTypeVideo,
	})
	require.NoError(t, err)
	assert.False(t, notification.Read)

	read, err := svc.MarkRead(ctx, notification.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	// 重复标记幂等
	read, err = svc.MarkRead(ctx, notification.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	_, err = svc.MarkRead(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestSubscriberServiceDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewSubscriberService(newTestStore(t))

	subscriber, err := svc.Subscribe(ctx, &dto.SubscribeRequest{Email: "fan@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "all", subscriber.NotificationType)

	_, err = svc.Subscribe(ctx, &dto.SubscribeRequest{Email: "fan@example.com", NotificationType: "videos"})
	assert.ErrorIs(t, err, ErrEmailSubscribed)

	require.NoError(t, svc.Unsubscribe(ctx, subscriber.ID))
	assert.ErrorIs(t, svc.Unsubscribe(ctx, subscriber.ID), ErrSubscriberNotFound)
}

func TestSettingsServiceLiveStream(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(newTestStore(t))

	isLive := true
	_, err := svc.UpdateLiveStream(ctx, &dto.LiveStreamRequest{IsLiveStreaming: &isLive})
	assert.ErrorIs(t, err, ErrLiveStreamIDRequired)

	settings, err := svc.UpdateLiveStream(ctx, &dto.LiveStreamRequest{IsLiveStreaming: &isLive, LiveStreamID: "live123"})
	require.NoError(t, err)
	assert.True(t, settings.IsLiveStreaming)
	require.NotNil(t, settings.LiveStreamID)
	assert.Equal(t, "live123", *settings.LiveStreamID)

	notLive := false
	settings, err = svc.UpdateLiveStream(ctx, &dto.LiveStreamRequest{IsLiveStreaming: &notLive})
	require.NoError(t, err)
	assert.False(t, settings.IsLiveStreaming)
	assert.Nil(t, settings.LiveStreamID)
}

func TestCommentServiceVisibility(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	videoSvc := NewVideoService(store)
	commentSvc := NewCommentService(store)

	video, err := videoSvc.Create(ctx, &dto.VideoCreateRequest{YoutubeID: "v1", Title: "带评论的视频"})
	require.NoError(t, err)

	var ids []int64
	for _, author := range []string{"粉丝甲", "粉丝乙", "路人丙"} {
		comment, err := commentSvc.Create(ctx, video.ID, &dto.CommentCreateRequest{Author: author, Content: "内容"})
		require.NoError(t, err)
		assert.False(t, comment.Approved)
		ids = append(ids, comment.ID)
	}

	_, err = commentSvc.Approve(ctx, ids[0])
	require.NoError(t, err)
	_, err = commentSvc.Approve(ctx, ids[1])
	require.NoError(t, err)

	// 游客只能看到审核通过的评论
	visible, err := commentSvc.ListByVideo(ctx, video.ID, false)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	// 管理员能看到全部
	all, err := commentSvc.ListByVideo(ctx, video.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = commentSvc.ListByVideo(ctx, 9999, false)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	_, err = commentSvc.Create(ctx, 9999, &dto.CommentCreateRequest{Author: "某人", Content: "内容"})
	assert.ErrorIs(t, err, ErrVideoNotFound)
}
