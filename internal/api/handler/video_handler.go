package handler

import (
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/api/response"
	"fanhub-go/internal/service"
	"fanhub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService  *service.VideoService
	searchService *service.SearchService
}

func NewVideoHandler(videoService *service.VideoService, searchService *service.SearchService) *VideoHandler {
	return &VideoHandler{videoService: videoService, searchService: searchService}
}

// List GET /api/videos?category=
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c, "获取视频列表失败")
		return
	}
	response.OK(c, "获取视频列表成功", videos)
}

// Search GET /api/videos/search?q=
func (h *VideoHandler) Search(c *gin.Context) {
	videos, err := h.searchService.SearchVideos(c.Request.Context(), c.Query("q"))
	if err != nil {
		logger.Error("Search videos failed", zap.String("q", c.Query("q")), zap.Error(err))
		response.InternalError(c, "搜索视频失败")
		return
	}
	response.OK(c, "搜索视频成功", videos)
}

// Featured GET /api/videos/featured
func (h *VideoHandler) Featured(c *gin.Context) {
	video, err := h.videoService.Featured(c.Request.Context())
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "获取推荐视频成功", video)
}

// Get GET /api/videos/:id
func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	video, err := h.videoService.Get(c.Request.Context(), id)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "获取视频详情成功", video)
}

// Create POST /api/videos（管理员）
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.VideoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	video, err := h.videoService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Create video failed", zap.Error(err))
		response.InternalError(c, "创建视频失败")
		return
	}
	response.Created(c, "创建视频成功", video)
}

// Update PUT /api/videos/:id（管理员）
func (h *VideoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	video, err := h.videoService.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "更新视频成功", video)
}

// Delete DELETE /api/videos/:id（管理员）
func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), id); err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "删除视频成功", nil)
}

// Feature POST /api/videos/:id/feature（管理员）
func (h *VideoHandler) Feature(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	video, err := h.videoService.Feature(c.Request.Context(), id)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, "设置推荐视频成功", video)
}

func handleVideoError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrVideoNotFound) {
		response.NotFound(c, "视频不存在")
		return
	}
	logger.Error("Video operation failed", zap.Error(err))
	response.InternalError(c, "视频操作失败")
}
