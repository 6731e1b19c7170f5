// Package storagetest 提供存储端口的契约测试套件。
// 三个后端适配器共享同一份语义，任何适配器的测试都应跑同一套用例。
package storagetest

import (
	"context"
	"testing"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory 为每个用例构造一个干净的存储实例
type Factory func(t *testing.T) storage.Storage

// Run 对一个存储后端运行完整契约测试
func Run(t *testing.T, factory Factory) {
	t.Run("UserRoundTrip", func(t *testing.T) { testUserRoundTrip(t, factory(t)) })
	t.Run("VideoReadYourWrite", func(t *testing.T) { testVideoReadYourWrite(t, factory(t)) })
	t.Run("VideoCategoryFilter", func(t *testing.T) { testVideoCategoryFilter(t, factory(t)) })
	t.Run("SingleFeaturedVideo", func(t *testing.T) { testSingleFeaturedVideo(t, factory(t)) })
	t.Run("SetFeaturedMissing", func(t *testing.T) { testSetFeaturedMissing(t, factory(t)) })
	t.Run("VideoPartialUpdate", func(t *testing.T) { testVideoPartialUpdate(t, factory(t)) })
	t.Run("DownloadCounter", func(t *testing.T) { testDownloadCounter(t, factory(t)) })
	t.Run("DownloadTypeFilter", func(t *testing.T) { testDownloadTypeFilter(t, factory(t)) })
	t.Run("NotificationReadTransition", func(t *testing.T) { testNotificationReadTransition(t, factory(t)) })
	t.Run("SubscriberEmailLookup", func(t *testing.T) { testSubscriberEmailLookup(t, factory(t)) })
	t.Run("SettingsSingletonMerge", func(t *testing.T) { testSettingsSingletonMerge(t, factory(t)) })
	t.Run("LiveStreamStatus", func(t *testing.T) { testLiveStreamStatus(t, factory(t)) })
	t.Run("CommentApproval", func(t *testing.T) { testCommentApproval(t, factory(t)) })
	t.Run("NotFoundSentinel", func(t *testing.T) { testNotFoundSentinel(t, factory(t)) })
}

func testUserRoundTrip(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	user := &model.User{Username: "admin", Password: "$2a$10$hash", IsAdmin: true}
	require.NoError(t, store.CreateUser(ctx, user))
	require.NotZero(t, user.ID)

	byID, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)
	assert.True(t, byID.IsAdmin)

	byName, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = store.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testVideoReadYourWrite(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	desc := "速通教程第一期"
	video := &model.Video{
		YoutubeID:   "dQw4w9WgXcQ",
		Title:       "速通教程",
		Description: &desc,
		Category:    "tutorial",
	}
	require.NoError(t, store.CreateVideo(ctx, video))
	require.NotZero(t, video.ID)
	assert.False(t, video.CreatedAt.IsZero())

	got, err := store.GetVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, video.YoutubeID, got.YoutubeID)
	assert.Equal(t, video.Title, got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	assert.Equal(t, "tutorial", got.Category)
}

func testVideoCategoryFilter(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	for _, v := range []model.Video{
		{YoutubeID: "a1", Title: "教程一", Category: "tutorial"},
		{YoutubeID: "a2", Title: "教程二", Category: "tutorial"},
		{YoutubeID: "b1", Title: "实况一", Category: "letsplay"},
	} {
		video := v
		require.NoError(t, store.CreateVideo(ctx, &video))
	}

	all, err := store.ListVideos(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tutorials, err := store.ListVideosByCategory(ctx, "tutorial")
	require.NoError(t, err)
	assert.Len(t, tutorials, 2)

	none, err := store.ListVideosByCategory(ctx, "music")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testSingleFeaturedVideo(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	first := &model.Video{YoutubeID: "v1", Title: "第一个", Category: "general", IsFeatured: true}
	require.NoError(t, store.CreateVideo(ctx, first))

	// 创建时带推荐标识应清掉旧的推荐视频
	second := &model.Video{YoutubeID: "v2", Title: "第二个", Category: "general", IsFeatured: true}
	require.NoError(t, store.CreateVideo(ctx, second))
	assertSingleFeatured(t, store, second.ID)

	// 更新时带推荐标识同样如此
	third := &model.Video{YoutubeID: "v3", Title: "第三个", Category: "general"}
	require.NoError(t, store.CreateVideo(ctx, third))
	featured := true
	_, err := store.UpdateVideo(ctx, third.ID, &storage.VideoUpdate{IsFeatured: &featured})
	require.NoError(t, err)
	assertSingleFeatured(t, store, third.ID)

	// 显式设置推荐
	require.NoError(t, store.SetFeaturedVideo(ctx, first.ID))
	assertSingleFeatured(t, store, first.ID)

	got, err := store.GetFeaturedVideo(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func assertSingleFeatured(t *testing.T, store storage.Storage, wantID int64) {
	t.Helper()

	videos, err := store.ListVideos(context.Background())
	require.NoError(t, err)

	featured := make([]int64, 0, 1)
	for i := range videos {
		if videos[i].IsFeatured {
			featured = append(featured, videos[i].ID)
		}
	}
	require.Len(t, featured, 1, "exactly one featured video expected")
	assert.Equal(t, wantID, featured[0])
}

func testSetFeaturedMissing(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	video := &model.Video{YoutubeID: "v1", Title: "唯一", Category: "general", IsFeatured: true}
	require.NoError(t, store.CreateVideo(ctx, video))

	err := store.SetFeaturedVideo(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// 失败的设置不应产生副作用
	assertSingleFeatured(t, store, video.ID)
}

func testVideoPartialUpdate(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	video := &model.Video{YoutubeID: "v1", Title: "旧标题", Category: "general"}
	require.NoError(t, store.CreateVideo(ctx, video))

	title := "新标题"
	updated, err := store.UpdateVideo(ctx, video.ID, &storage.VideoUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "v1", updated.YoutubeID, "untouched field must survive partial update")
	assert.Equal(t, "general", updated.Category)

	_, err = store.UpdateVideo(ctx, 9999, &storage.VideoUpdate{Title: &title})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testDownloadCounter(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	download := &model.Download{
		Title:       "Pixel Dungeon",
		Type:        model.DownloadTypeGame,
		Version:     "1.2.0",
		DownloadURL: "/d.zip",
	}
	require.NoError(t, store.CreateDownload(ctx, download))
	assert.Equal(t, 0, download.DownloadCount)
	assert.Equal(t, 0, download.Rating)

	prev := 0
	for i := 1; i <= 3; i++ {
		count, err := store.IncrementDownloadCount(ctx, download.ID)
		require.NoError(t, err)
		assert.Greater(t, count, prev, "counter must be monotonic")
		prev = count
	}
	assert.Equal(t, 3, prev)

	got, err := store.GetDownload(ctx, download.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.DownloadCount)

	_, err = store.IncrementDownloadCount(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testDownloadTypeFilter(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	game := &model.Download{Title: "Pixel Dungeon", Type: model.DownloadTypeGame, Version: "1.2.0", DownloadURL: "/d.zip"}
	require.NoError(t, store.CreateDownload(ctx, game))

	mod := &model.Download{Title: "Enhanced Biomes", Type: model.DownloadTypeMod, Version: "2.4.1", DownloadURL: "/m.zip"}
	require.NoError(t, store.CreateDownload(ctx, mod))

	games, err := store.ListDownloadsByType(ctx, model.DownloadTypeGame)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, game.ID, games[0].ID)

	mods, err := store.ListDownloadsByType(ctx, model.DownloadTypeMod)
	require.NoError(t, err)
	require.Len(t, mods, 1)
	assert.NotEqual(t, game.ID, mods[0].ID)
}

func testNotificationReadTransition(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	notification := &model.Notification{
		Title:   "新视频上线",
		Message: "速通教程已发布",
		Type:    model.NotificationTypeVideo,
		Read:    true, // 创建时必须被重置为未读
	}
	require.NoError(t, store.CreateNotification(ctx, notification))
	assert.False(t, notification.Read)

	require.NoError(t, store.MarkNotificationRead(ctx, notification.ID))
	got, err := store.GetNotification(ctx, notification.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	// 重复标记幂等
	require.NoError(t, store.MarkNotificationRead(ctx, notification.ID))
	got, err = store.GetNotification(ctx, notification.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
}

func testSubscriberEmailLookup(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	subscriber := &model.Subscriber{Email: "fan@example.com"}
	require.NoError(t, store.CreateSubscriber(ctx, subscriber))
	assert.Equal(t, "all", subscriber.NotificationType)

	got, err := store.GetSubscriberByEmail(ctx, "fan@example.com")
	require.NoError(t, err)
	assert.Equal(t, subscriber.ID, got.ID)

	_, err = store.GetSubscriberByEmail(ctx, "other@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.DeleteSubscriber(ctx, subscriber.ID))
	_, err = store.GetSubscriber(ctx, subscriber.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testSettingsSingletonMerge(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	channelID := "UC123"
	first, err := store.UpdateSiteSettings(ctx, &storage.SiteSettingsUpdate{YoutubeChannelID: &channelID})
	require.NoError(t, err)
	require.NotNil(t, first.YoutubeChannelID)
	assert.Equal(t, "UC123", *first.YoutubeChannelID)

	items := []string{"新视频发布", "周末直播"}
	second, err := store.UpdateSiteSettings(ctx, &storage.SiteSettingsUpdate{NewsTickerItems: &items})
	require.NoError(t, err)

	// 第二次更新叠加在第一次之上，而不是生成第二条记录
	require.NotNil(t, second.YoutubeChannelID)
	assert.Equal(t, "UC123", *second.YoutubeChannelID)
	assert.Equal(t, items, second.NewsTickerItems)
	assert.Equal(t, first.ID, second.ID)

	got, err := store.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func testLiveStreamStatus(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	settings, err := store.UpdateLiveStreamStatus(ctx, true, "live123")
	require.NoError(t, err)
	assert.True(t, settings.IsLiveStreaming)
	require.NotNil(t, settings.LiveStreamID)
	assert.Equal(t, "live123", *settings.LiveStreamID)

	// 停播必须清空直播ID
	settings, err = store.UpdateLiveStreamStatus(ctx, false, "")
	require.NoError(t, err)
	assert.False(t, settings.IsLiveStreaming)
	assert.Nil(t, settings.LiveStreamID)
}

func testCommentApproval(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	video := &model.Video{YoutubeID: "v1", Title: "带评论的视频", Category: "general"}
	require.NoError(t, store.CreateVideo(ctx, video))

	for _, c := range []model.Comment{
		{VideoID: video.ID, Author: "粉丝甲", Content: "太棒了"},
		{VideoID: video.ID, Author: "粉丝乙", Content: "学到了"},
		{VideoID: video.ID, Author: "路人丙", Content: "广告内容", Approved: true}, // 创建时必须重置为未审核
	} {
		comment := c
		require.NoError(t, store.CreateComment(ctx, &comment))
		assert.False(t, comment.Approved)
	}

	comments, err := store.ListCommentsByVideo(ctx, video.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	require.NoError(t, store.ApproveComment(ctx, comments[0].ID))
	require.NoError(t, store.ApproveComment(ctx, comments[1].ID))

	comments, err = store.ListCommentsByVideo(ctx, video.ID)
	require.NoError(t, err)
	approved := 0
	for i := range comments {
		if comments[i].Approved {
			approved++
		}
	}
	assert.Equal(t, 2, approved)

	require.NoError(t, store.DeleteComment(ctx, comments[2].ID))
	remaining, err := store.ListCommentsByVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func testNotFoundSentinel(t *testing.T, store storage.Storage) {
	ctx := context.Background()

	_, err := store.GetVideo(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.GetDownload(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.GetNotification(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.GetComment(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, store.DeleteVideo(ctx, 42), storage.ErrNotFound)
	assert.ErrorIs(t, store.DeleteDownload(ctx, 42), storage.ErrNotFound)
	assert.ErrorIs(t, store.MarkNotificationRead(ctx, 42), storage.ErrNotFound)
	assert.ErrorIs(t, store.ApproveComment(ctx, 42), storage.ErrNotFound)
}
