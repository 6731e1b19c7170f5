package handler

import (
	"errors"

	"fanhub-go/internal/api/response"
	"fanhub-go/internal/service"
	"fanhub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type YouTubeHandler struct {
	youtubeService *service.YouTubeService
}

func NewYouTubeHandler(youtubeService *service.YouTubeService) *YouTubeHandler {
	return &YouTubeHandler{youtubeService: youtubeService}
}

// ChannelInfo GET /api/youtube/channel
func (h *YouTubeHandler) ChannelInfo(c *gin.Context) {
	data, err := h.youtubeService.ChannelInfo(c.Request.Context())
	if err != nil {
		handleYouTubeError(c, err, "获取YouTube频道信息失败")
		return
	}
	response.OK(c, "获取YouTube频道信息成功", data)
}

// ChannelVideos GET /api/youtube/videos
func (h *YouTubeHandler) ChannelVideos(c *gin.Context) {
	data, err := h.youtubeService.ChannelVideos(c.Request.Context())
	if err != nil {
		handleYouTubeError(c, err, "获取YouTube视频失败")
		return
	}
	response.OK(c, "获取YouTube视频成功", data)
}

// Video GET /api/youtube/video/:videoId
func (h *YouTubeHandler) Video(c *gin.Context) {
	videoID := c.Param("videoId")
	if videoID == "" {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	data, err := h.youtubeService.Video(c.Request.Context(), videoID)
	if err != nil {
		handleYouTubeError(c, err, "获取YouTube视频详情失败")
		return
	}
	response.OK(c, "获取YouTube视频详情成功", data)
}

func handleYouTubeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrYouTubeNotConfigured):
		response.NotFound(c, "未配置YouTube API")
	case errors.Is(err, service.ErrYouTubeVideoNotFound):
		response.NotFound(c, "YouTube视频不存在")
	default:
		logger.Error("YouTube proxy request failed", zap.Error(err))
		response.InternalError(c, msg)
	}
}
