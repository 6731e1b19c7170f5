package router

import (
	"fanhub-go/internal/api/handler"
	"fanhub-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	videoHandler *handler.VideoHandler,
	downloadHandler *handler.DownloadHandler,
	notificationHandler *handler.NotificationHandler,
	subscriberHandler *handler.SubscriberHandler,
	settingsHandler *handler.SettingsHandler,
	commentHandler *handler.CommentHandler,
	linkHandler *handler.LinkHandler,
	qrcodeHandler *handler.QRCodeHandler,
	youtubeHandler *handler.YouTubeHandler,
) {
	api := r.Group("/api")
	admin := middleware.AdminRequired()

	// --- 认证模块 ---
	api.POST("/auth/login", authHandler.Login)

	// --- 视频模块 ---
	videos := api.Group("/videos")
	{
		videos.GET("", videoHandler.List)
		videos.GET("/search", videoHandler.Search)
		videos.GET("/featured", videoHandler.Featured)
		videos.GET("/:id", videoHandler.Get)

		// 视频评论（公开读写，未认证只返回已审核评论）
		videos.GET("/:id/comments", commentHandler.ListByVideo)
		videos.POST("/:id/comments", commentHandler.Create)

		// 管理员接口
		videos.POST("", admin, videoHandler.Create)
		videos.PUT("/:id", admin, videoHandler.Update)
		videos.DELETE("/:id", admin, videoHandler.Delete)
		videos.POST("/:id/feature", admin, videoHandler.Feature)
	}

	// --- 下载资源模块 ---
	downloads := api.Group("/downloads")
	{
		downloads.GET("", downloadHandler.List)
		downloads.GET("/:id", downloadHandler.Get)
		downloads.POST("/:id/increment", downloadHandler.Increment)

		downloads.POST("", admin, downloadHandler.Create)
		downloads.PUT("/:id", admin, downloadHandler.Update)
		downloads.DELETE("/:id", admin, downloadHandler.Delete)
		downloads.POST("/:id/artifact", admin, downloadHandler.UploadArtifact)
	}

	// --- 通知模块 ---
	notifications := api.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)

		notifications.POST("", admin, notificationHandler.Create)
		notifications.DELETE("/:id", admin, notificationHandler.Delete)
	}

	// --- 订阅者模块 ---
	subscribers := api.Group("/subscribers")
	{
		subscribers.POST("", subscriberHandler.Subscribe)

		subscribers.GET("", admin, subscriberHandler.List)
		subscribers.DELETE("/:id", admin, subscriberHandler.Unsubscribe)
	}

	// --- 站点设置模块 ---
	api.GET("/settings", settingsHandler.Get)
	api.PUT("/settings", admin, settingsHandler.Update)
	api.GET("/livestream", settingsHandler.LiveStream)
	api.POST("/livestream", admin, settingsHandler.UpdateLiveStream)

	// --- 评论审核模块 ---
	comments := api.Group("/comments")
	{
		comments.POST("/:id/approve", admin, commentHandler.Approve)
		comments.DELETE("/:id", admin, commentHandler.Delete)
	}

	// --- 工具模块 ---
	api.POST("/convert-link", linkHandler.Convert)
	api.GET("/qrcode/channel", qrcodeHandler.Channel)
	api.GET("/qrcode/video/:id", qrcodeHandler.Video)
	api.GET("/youtube/channel", youtubeHandler.ChannelInfo)
	api.GET("/youtube/videos", youtubeHandler.ChannelVideos)
	api.GET("/youtube/video/:videoId", youtubeHandler.Video)
}
